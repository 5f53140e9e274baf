package request

// CreateProductRequest represents the create product request
type CreateProductRequest struct {
	Name          string  `json:"name" binding:"required"`
	Description   string  `json:"description"`
	PricePerHour  float64 `json:"price_per_hour" binding:"min=0"`
	StockQuantity int     `json:"stock_quantity" binding:"min=0"`
	IsAvailable   *bool   `json:"is_available"`
}

// UpdateProductRequest represents the update product request; omitted
// fields are left unchanged
type UpdateProductRequest struct {
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	PricePerHour  *float64 `json:"price_per_hour"`
	StockQuantity *int     `json:"stock_quantity"`
	IsAvailable   *bool    `json:"is_available"`
}

// UpdateStockRequest represents the absolute stock update request
type UpdateStockRequest struct {
	StockQuantity int `json:"stock_quantity" binding:"min=0"`
}
