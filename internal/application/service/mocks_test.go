package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/saravanan/rentify-api/internal/domain/entity"
	"github.com/saravanan/rentify-api/pkg/money"
)

// mockProductRepo is an in-memory ProductRepository for service tests.
type mockProductRepo struct {
	products map[uuid.UUID]*entity.Product

	getErr       error
	decrementErr error
	// forceDecrementFail makes AtomicDecrementStock report insufficient stock
	forceDecrementFail bool
	decrementCalls     int
}

func newMockProductRepo(products ...*entity.Product) *mockProductRepo {
	m := &mockProductRepo{products: make(map[uuid.UUID]*entity.Product)}
	for _, p := range products {
		m.products[p.ID] = p
	}
	return m
}

func (m *mockProductRepo) Create(ctx context.Context, p *entity.Product) error {
	m.products[p.ID] = p
	return nil
}

func (m *mockProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	p, ok := m.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *mockProductRepo) List(ctx context.Context) ([]entity.Product, error) {
	out := make([]entity.Product, 0, len(m.products))
	for _, p := range m.products {
		out = append(out, *p)
	}
	return out, nil
}

func (m *mockProductRepo) ListAvailable(ctx context.Context) ([]entity.Product, error) {
	var out []entity.Product
	for _, p := range m.products {
		if p.IsPurchasable() {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *mockProductRepo) Search(ctx context.Context, text string) ([]entity.Product, error) {
	return m.List(ctx)
}

func (m *mockProductRepo) Update(ctx context.Context, p *entity.Product) error {
	m.products[p.ID] = p
	return nil
}

func (m *mockProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(m.products, id)
	return nil
}

func (m *mockProductRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(m.products)), nil
}

func (m *mockProductRepo) UpdateStock(ctx context.Context, id uuid.UUID, quantity int) error {
	p, ok := m.products[id]
	if !ok {
		return errors.New("product not found")
	}
	p.StockQuantity = quantity
	return nil
}

func (m *mockProductRepo) AtomicDecrementStock(ctx context.Context, id uuid.UUID, amount int) (bool, error) {
	m.decrementCalls++
	if m.decrementErr != nil {
		return false, m.decrementErr
	}
	if m.forceDecrementFail {
		return false, nil
	}
	p, ok := m.products[id]
	if !ok || p.StockQuantity < amount {
		return false, nil
	}
	p.StockQuantity -= amount
	return true, nil
}

// mockContactRepo is an in-memory ContactRepository.
type mockContactRepo struct {
	latest *entity.ContactInfo
	getErr error
}

func (m *mockContactRepo) GetLatest(ctx context.Context) (*entity.ContactInfo, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.latest, nil
}

func (m *mockContactRepo) Create(ctx context.Context, info *entity.ContactInfo) error {
	m.latest = info
	return nil
}

func (m *mockContactRepo) Count(ctx context.Context) (int64, error) {
	if m.latest == nil {
		return 0, nil
	}
	return 1, nil
}

// mockRenderer records the invoices it rendered.
type mockRenderer struct {
	path     string
	err      error
	rendered []*entity.InvoiceContent
}

func (m *mockRenderer) Render(content *entity.InvoiceContent) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.rendered = append(m.rendered, content)
	if m.path == "" {
		return "/tmp/invoices/test.pdf", nil
	}
	return m.path, nil
}

// mockReceiptPrinter records printed invoices.
type mockReceiptPrinter struct {
	err     error
	printed []*entity.InvoiceContent
}

func (m *mockReceiptPrinter) PrintInvoice(content *entity.InvoiceContent) error {
	if m.err != nil {
		return m.err
	}
	m.printed = append(m.printed, content)
	return nil
}

// mockMailer records sent invoices.
type mockMailer struct {
	err  error
	sent []string
}

func (m *mockMailer) SendInvoice(to string, content *entity.InvoiceContent, artifactPath string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, to)
	return nil
}

func testProduct(name string, priceRupees float64, stock int) *entity.Product {
	return &entity.Product{
		ID:            uuid.New(),
		Name:          name,
		PricePerHour:  money.FromRupees(priceRupees),
		StockQuantity: stock,
		IsAvailable:   true,
	}
}

func testCustomer() *entity.CustomerIdentity {
	return &entity.CustomerIdentity{
		Name:    "Arjun Kumar",
		Address: "42 Temple Road, Chennai",
		Phone:   "+91 98765 43210",
		Email:   "arjun@example.com",
	}
}

func futureDate(days int) time.Time {
	return time.Now().AddDate(0, 0, days)
}
