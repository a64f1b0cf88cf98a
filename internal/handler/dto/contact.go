package dto

import (
	"time"

	"github.com/avtostrahovanie/landing/internal/model"
)

// ContactRequest represents the request body of a contact form submission.
type ContactRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email,omitempty"`
	Message string `json:"message,omitempty"`
}

// ToModel converts the body into a model.ContactRequest.
func (r ContactRequest) ToModel() model.ContactRequest {
	return model.ContactRequest{
		Name:    r.Name,
		Phone:   r.Phone,
		Email:   r.Email,
		Message: r.Message,
	}
}

// ContactReceiptResponse acknowledges a contact submission.
type ContactReceiptResponse struct {
	Reference   string    `json:"reference"`
	Status      string    `json:"status"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// ToContactReceiptResponse converts a ContactReceipt model to its DTO.
func ToContactReceiptResponse(r *model.ContactReceipt) *ContactReceiptResponse {
	return &ContactReceiptResponse{
		Reference:   r.Reference,
		Status:      string(r.Status),
		SubmittedAt: r.SubmittedAt,
	}
}
