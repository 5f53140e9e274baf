package handler

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/saravanan/rentify-api/internal/application/service"
	"github.com/saravanan/rentify-api/internal/config"
	"github.com/saravanan/rentify-api/internal/presentation/http/dto/request"
	"github.com/saravanan/rentify-api/internal/presentation/http/dto/response"
)

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	productService *service.ProductService
	storage        config.StorageConfig
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *service.ProductService, storage config.StorageConfig) *ProductHandler {
	return &ProductHandler{productService: productService, storage: storage}
}

// List handles listing rentable products for the storefront
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.productService.ListAvailable(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Products retrieved successfully", products)
}

// ListAll handles listing every product, including hidden ones (admin view)
func (h *ProductHandler) ListAll(c *gin.Context) {
	products, err := h.productService.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Products retrieved successfully", products)
}

// Search handles searching products by name or description
func (h *ProductHandler) Search(c *gin.Context) {
	products, err := h.productService.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Products retrieved successfully", products)
}

// Get handles getting a single product
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	product, err := h.productService.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Product retrieved successfully", product)
}

// Create handles creating a product
func (h *ProductHandler) Create(c *gin.Context) {
	var req request.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}

	product, err := h.productService.Create(c.Request.Context(), &service.CreateProductInput{
		Name:          req.Name,
		Description:   req.Description,
		PricePerHour:  req.PricePerHour,
		StockQuantity: req.StockQuantity,
		IsAvailable:   available,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Product created successfully", product)
}

// Update handles a partial product update
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	var req request.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	product, err := h.productService.Update(c.Request.Context(), id, &service.UpdateProductInput{
		Name:          req.Name,
		Description:   req.Description,
		PricePerHour:  req.PricePerHour,
		StockQuantity: req.StockQuantity,
		IsAvailable:   req.IsAvailable,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product updated successfully", product)
}

// UpdateStock handles setting the absolute stock quantity
func (h *ProductHandler) UpdateStock(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	var req request.UpdateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	product, err := h.productService.SetStock(c.Request.Context(), id, req.StockQuantity)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stock updated successfully", product)
}

// UploadImage handles attaching an image to a product
func (h *ProductHandler) UploadImage(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		response.BadRequest(c, "Image file is required")
		return
	}
	if file.Size > h.storage.UploadMaxSize {
		response.BadRequest(c, fmt.Sprintf("Image exceeds the maximum size of %d bytes", h.storage.UploadMaxSize))
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
	default:
		response.BadRequest(c, "Only JPG, PNG and WebP images are allowed")
		return
	}

	filename := fmt.Sprintf("%s%s", uuid.New().String(), ext)
	dst := filepath.Join(h.storage.Path, "products", filename)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		response.InternalServerError(c, "Failed to save image")
		return
	}

	imagePath := filepath.ToSlash(filepath.Join("products", filename))
	product, err := h.productService.Update(c.Request.Context(), id, &service.UpdateProductInput{
		ImagePath: &imagePath,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Image uploaded successfully", product)
}

// Delete handles deleting a product
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	if err := h.productService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
