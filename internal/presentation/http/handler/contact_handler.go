package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/saravanan/rentify-api/internal/application/service"
	"github.com/saravanan/rentify-api/internal/presentation/http/dto/request"
	"github.com/saravanan/rentify-api/internal/presentation/http/dto/response"
)

// ContactHandler handles store contact info requests
type ContactHandler struct {
	contactService *service.ContactService
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// Get handles reading the current store contact info
func (h *ContactHandler) Get(c *gin.Context) {
	info, err := h.contactService.Get(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Contact info retrieved successfully", info)
}

// Update handles recording new store contact info
func (h *ContactHandler) Update(c *gin.Context) {
	var req request.UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Store address is required")
		return
	}

	info, err := h.contactService.Update(c.Request.Context(), &service.UpdateContactInput{
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Contact info updated successfully", info)
}
