package request

// UpdateContactRequest represents the store contact info update request
type UpdateContactRequest struct {
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address" binding:"required"`
}
