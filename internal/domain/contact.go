package domain

import "context"

// ContactRequest represents a contact form submission
type ContactRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100,valid_name"`
	Email    string `json:"email" binding:"required,email,max=255"`
	LoanType string `json:"loanType" binding:"required"`
	Message  string `json:"message" binding:"required,min=5,max=4000"`
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SubmitContact relays a validated contact submission as an email notification
	SubmitContact(ctx context.Context, req *ContactRequest) error
}
