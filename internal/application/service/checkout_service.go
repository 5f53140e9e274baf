package service

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/saravanan/rentify-api/internal/domain/entity"
	"github.com/saravanan/rentify-api/internal/domain/enum"
	"github.com/saravanan/rentify-api/internal/domain/repository"
	"github.com/saravanan/rentify-api/pkg/apperror"
	"github.com/saravanan/rentify-api/pkg/money"
)

// InvoiceRenderer produces the printable artifact for an invoice and returns
// its location
type InvoiceRenderer interface {
	Render(content *entity.InvoiceContent) (string, error)
}

// ReceiptPrinter prints a counter-top receipt for an invoice. Printing is
// best-effort; failures never affect the checkout.
type ReceiptPrinter interface {
	PrintInvoice(content *entity.InvoiceContent) error
}

// InvoiceMailer sends the invoice to the customer by email, best-effort
type InvoiceMailer interface {
	SendInvoice(to string, content *entity.InvoiceContent, artifactPath string) error
}

type checkoutState int

const (
	stateIdle checkoutState = iota
	stateStockChecked
	statePlanChosen
	stateIdentityCollected
)

// CheckoutService walks a checkout attempt through its steps:
// validate stock, choose a payment plan, collect the customer identity,
// render the invoice, then commit (decrement stock, clear the cart).
//
// Any failure before the commit aborts the attempt and leaves the cart
// untouched. Once the invoice artifact exists, the commit always runs to
// completion: a failed stock decrement is reported but never rolls back the
// already-issued invoice.
type CheckoutService struct {
	mu       sync.Mutex
	state    checkoutState
	line     *entity.CartLine
	plan     *entity.PaymentPlan
	customer *entity.CustomerIdentity

	carts       *CartService
	validator   *StockValidator
	productRepo repository.ProductRepository
	contactRepo repository.ContactRepository
	renderer    InvoiceRenderer
	receipts    ReceiptPrinter
	mailer      InvoiceMailer
	storeName   string
	now         func() time.Time
}

// NewCheckoutService creates a new checkout orchestrator. receipts and mailer
// may be nil when no printer/SMTP is configured.
func NewCheckoutService(
	carts *CartService,
	validator *StockValidator,
	productRepo repository.ProductRepository,
	contactRepo repository.ContactRepository,
	renderer InvoiceRenderer,
	receipts ReceiptPrinter,
	mailer InvoiceMailer,
	storeName string,
) *CheckoutService {
	return &CheckoutService{
		carts:       carts,
		validator:   validator,
		productRepo: productRepo,
		contactRepo: contactRepo,
		renderer:    renderer,
		receipts:    receipts,
		mailer:      mailer,
		storeName:   storeName,
		now:         time.Now,
	}
}

// PlanInput is the caller's payment plan choice
type PlanInput struct {
	Kind          enum.PaymentKind
	Method        enum.PaymentMethod
	AdvanceAmount money.Paise
	DueDate       time.Time
}

// CheckoutResult reports a committed checkout
type CheckoutResult struct {
	ArtifactPath string                 `json:"artifact_path"`
	Invoice      *entity.InvoiceContent `json:"invoice"`
	Units        int                    `json:"units"`
	StockUpdated bool                   `json:"stock_updated"`
	Warning      string                 `json:"warning,omitempty"`
	WarningKind  string                 `json:"warning_kind,omitempty"`
}

// Begin validates the current cart against a fresh stock read and opens a
// checkout attempt. A shortfall aborts with INSUFFICIENT_STOCK and the cart
// is left as it was.
func (s *CheckoutService) Begin(ctx context.Context) (*entity.CartLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()

	line := s.carts.Snapshot()
	if err := s.validator.Validate(ctx, line); err != nil {
		return nil, err
	}

	s.line = line
	s.state = stateStockChecked
	return line, nil
}

// ChoosePlan applies the full/advance choice to the open attempt. A
// validation failure aborts the attempt; the cart is untouched.
func (s *CheckoutService) ChoosePlan(ctx context.Context, in *PlanInput) (*entity.PaymentPlan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != stateStockChecked {
		return nil, errInvalidState("begin checkout before choosing a payment plan")
	}

	var (
		plan *entity.PaymentPlan
		err  error
	)
	switch in.Kind {
	case enum.PaymentKindAdvance:
		plan, err = entity.AdvancePaymentPlan(s.line.LineTotal, in.AdvanceAmount, in.DueDate, in.Method)
	default:
		plan = entity.FullPaymentPlan(s.line.LineTotal, in.Method)
	}
	if err != nil {
		s.reset()
		return nil, err
	}

	s.plan = plan
	s.state = statePlanChosen
	return plan, nil
}

// SubmitIdentity records the customer block for the open attempt. Missing
// required fields abort the attempt; the cart is untouched.
func (s *CheckoutService) SubmitIdentity(ctx context.Context, customer *entity.CustomerIdentity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != statePlanChosen {
		return errInvalidState("choose a payment plan before submitting customer details")
	}

	if err := customer.Validate(); err != nil {
		s.reset()
		return err
	}

	s.customer = customer
	s.state = stateIdentityCollected
	return nil
}

// Finalize composes and renders the invoice, then commits the sale.
//
// A renderer failure aborts with RENDER_FAILURE and no state change. After a
// successful render the commit always completes: the stock decrement is
// best-effort (a failure is logged and reported in the result, never rolled
// back) and the cart is cleared unconditionally.
func (s *CheckoutService) Finalize(ctx context.Context) (*CheckoutResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != stateIdentityCollected {
		return nil, errInvalidState("submit customer details before finalizing")
	}

	contact, err := s.contactRepo.GetLatest(ctx)
	if err != nil {
		log.Printf("contact info read failed, using defaults: %v", err)
	}
	if contact == nil {
		contact = defaultContactInfo()
	}

	content := ComposeInvoice(s.line, s.plan, s.customer, contact, s.storeName, s.now())

	path, err := s.renderer.Render(content)
	if err != nil {
		s.reset()
		return nil, apperror.NewKindError(http.StatusInternalServerError, apperror.KindRenderFailure,
			fmt.Sprintf("failed to generate invoice %s: %v", content.InvoiceNo, err))
	}

	// Commit point. The invoice exists; from here nothing aborts.
	result := &CheckoutResult{
		ArtifactPath: path,
		Invoice:      content,
		Units:        s.line.Quantity,
		StockUpdated: true,
	}

	ok, err := s.productRepo.AtomicDecrementStock(ctx, s.line.ProductID, s.line.Quantity)
	if err != nil || !ok {
		result.StockUpdated = false
		result.WarningKind = apperror.KindStockUpdateFailure
		result.Warning = fmt.Sprintf("stock update failed for %s (quantity %d); invoice %s was still issued",
			s.line.Name, s.line.Quantity, content.InvoiceNo)
		log.Printf("%s: %v", result.Warning, err)
	}

	customerEmail := s.customer.Email
	s.carts.Clear()
	s.reset()

	if s.receipts != nil {
		if err := s.receipts.PrintInvoice(content); err != nil {
			log.Printf("receipt print failed for %s: %v", content.InvoiceNo, err)
		}
	}
	if s.mailer != nil && customerEmail != "" {
		if err := s.mailer.SendInvoice(customerEmail, content, path); err != nil {
			log.Printf("invoice email failed for %s: %v", content.InvoiceNo, err)
		}
	}

	return result, nil
}

// Abort cancels the open attempt; the cart keeps its line
func (s *CheckoutService) Abort() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
}

func (s *CheckoutService) reset() {
	s.state = stateIdle
	s.line = nil
	s.plan = nil
	s.customer = nil
}

func errInvalidState(msg string) *apperror.AppError {
	return apperror.NewKindError(http.StatusConflict, apperror.KindInvalidState, msg)
}

// defaultContactInfo mirrors the seeded store contact block, used if the
// contact table is unreadable at invoice time
func defaultContactInfo() *entity.ContactInfo {
	return &entity.ContactInfo{
		Phone:   "+91 12345 67890",
		Email:   "support@premiumstore.com",
		Address: "123 Business Street, City, State 123456",
	}
}
