package request

// AddToCartRequest represents the add-to-cart request
type AddToCartRequest struct {
	ProductID string `json:"product_id" binding:"required,uuid"`
}
