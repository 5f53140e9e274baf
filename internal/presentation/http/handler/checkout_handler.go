package handler

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/saravanan/rentify-api/internal/application/service"
	"github.com/saravanan/rentify-api/internal/domain/entity"
	"github.com/saravanan/rentify-api/internal/domain/enum"
	"github.com/saravanan/rentify-api/internal/presentation/http/dto/request"
	"github.com/saravanan/rentify-api/internal/presentation/http/dto/response"
	"github.com/saravanan/rentify-api/pkg/money"
)

// CheckoutHandler walks the client through the checkout steps
type CheckoutHandler struct {
	checkoutService *service.CheckoutService
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// Begin handles opening a checkout attempt against a fresh stock read
func (h *CheckoutHandler) Begin(c *gin.Context) {
	line, err := h.checkoutService.Begin(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Checkout started", line)
}

// ChoosePlan handles the full/advance payment choice
func (h *CheckoutHandler) ChoosePlan(c *gin.Context) {
	var req request.ChoosePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if !strings.EqualFold(req.Kind, "full") && !strings.EqualFold(req.Kind, "advance") {
		response.BadRequest(c, "Payment kind must be Full or Advance")
		return
	}

	input := &service.PlanInput{
		Method: enum.ParsePaymentMethod(req.PaymentMethod),
	}
	if strings.EqualFold(req.Kind, "advance") {
		input.Kind = enum.PaymentKindAdvance
		input.AdvanceAmount = money.FromRupees(req.AdvanceAmount)
		if req.DueDate != "" {
			due, err := time.ParseInLocation("2006-01-02", req.DueDate, time.Local)
			if err != nil {
				response.BadRequest(c, "Due date must be in YYYY-MM-DD format")
				return
			}
			input.DueDate = due
		}
	}

	plan, err := h.checkoutService.ChoosePlan(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Payment plan recorded", plan)
}

// SubmitIdentity handles recording the customer block
func (h *CheckoutHandler) SubmitIdentity(c *gin.Context) {
	var req request.CustomerDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Customer name and address are required")
		return
	}

	customer := &entity.CustomerIdentity{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
		Email:   req.Email,
	}
	if err := h.checkoutService.SubmitIdentity(c.Request.Context(), customer); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Customer details recorded", customer)
}

// Finalize handles rendering the invoice and committing the sale
func (h *CheckoutHandler) Finalize(c *gin.Context) {
	result, err := h.checkoutService.Finalize(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Checkout complete", result)
}

// Abort handles cancelling the open checkout attempt
func (h *CheckoutHandler) Abort(c *gin.Context) {
	h.checkoutService.Abort()
	response.OK(c, "Checkout cancelled", nil)
}
