package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/saravanan/rentify-api/pkg/money"
)

// Product represents a rental item in the inventory
type Product struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name          string         `gorm:"size:255;not null" json:"name"`
	Description   string         `gorm:"type:text" json:"description"`
	PricePerHour  money.Paise    `gorm:"not null" json:"-"` // Stored in paise, excluded from JSON
	ImagePath     *string        `gorm:"size:255" json:"image_path,omitempty"`
	StockQuantity int            `gorm:"default:1" json:"stock_quantity"`
	IsAvailable   bool           `gorm:"default:true" json:"is_available"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// MarshalJSON custom marshaler to convert paise to decimal for API responses
func (p Product) MarshalJSON() ([]byte, error) {
	type Alias Product
	return json.Marshal(&struct {
		Alias
		PricePerHour float64 `json:"price_per_hour"`
	}{
		Alias:        Alias(p),
		PricePerHour: p.PricePerHour.Rupees(),
	})
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// IsPurchasable reports whether the product can be added to a cart
func (p *Product) IsPurchasable() bool {
	return p.IsAvailable && p.StockQuantity > 0
}

// SetPriceFromDecimal sets the hourly price from a decimal rupee value
func (p *Product) SetPriceFromDecimal(price float64) {
	p.PricePerHour = money.FromRupees(price)
}
