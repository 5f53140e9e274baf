package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/saravanan/rentify-api/internal/application/service"
	"github.com/saravanan/rentify-api/internal/presentation/http/dto/request"
	"github.com/saravanan/rentify-api/internal/presentation/http/dto/response"
)

// CartHandler handles cart-related HTTP requests
type CartHandler struct {
	cartService *service.CartService
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// Get handles reading the current cart
func (h *CartHandler) Get(c *gin.Context) {
	response.OK(c, "Cart retrieved successfully", h.cartService.Summary())
}

// Add handles adding a product to the cart. When a different product is
// already in the cart the response carries a REPLACEMENT_REQUIRED error and
// the caller confirms via ConfirmReplace.
func (h *CartHandler) Add(c *gin.Context) {
	productID, ok := h.bindProductID(c)
	if !ok {
		return
	}

	line, err := h.cartService.Add(c.Request.Context(), productID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Product added to cart", line)
}

// ConfirmReplace handles swapping the cart line after the user confirmed
func (h *CartHandler) ConfirmReplace(c *gin.Context) {
	productID, ok := h.bindProductID(c)
	if !ok {
		return
	}

	line, err := h.cartService.ConfirmReplace(c.Request.Context(), productID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Cart item replaced", line)
}

// Increase handles bumping the quantity of the current cart line
func (h *CartHandler) Increase(c *gin.Context) {
	line, err := h.cartService.Increase(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Quantity increased", line)
}

// Remove handles emptying the cart
func (h *CartHandler) Remove(c *gin.Context) {
	h.cartService.Remove()
	response.OK(c, "Cart cleared", h.cartService.Summary())
}

func (h *CartHandler) bindProductID(c *gin.Context) (uuid.UUID, bool) {
	var req request.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "A valid product_id is required")
		return uuid.Nil, false
	}
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return uuid.Nil, false
	}
	return productID, true
}
