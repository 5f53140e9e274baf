package request

// ChoosePlanRequest represents the payment plan choice.
// Kind is "Full" or "Advance"; AdvanceAmount and DueDate ("2006-01-02")
// are required for advance payments with an outstanding balance.
type ChoosePlanRequest struct {
	Kind          string  `json:"kind" binding:"required"`
	PaymentMethod string  `json:"payment_method" binding:"required"`
	AdvanceAmount float64 `json:"advance_amount"`
	DueDate       string  `json:"due_date"`
}

// CustomerDetailsRequest represents the customer identity block
type CustomerDetailsRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address" binding:"required"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}
