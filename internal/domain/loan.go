package domain

import "context"

// LoanApplicationRequest represents a loan application submission.
// referenceId is caller-supplied, not generated here. The optional
// descriptive fields appear in the notification only when present.
type LoanApplicationRequest struct {
	ReferenceID string `json:"referenceId" binding:"required"`
	LoanType    string `json:"loanType" binding:"required"`
	FullName    string `json:"fullName" binding:"required,min=2,max=100,valid_name"`
	Mobile      string `json:"mobile" binding:"required,valid_phone"`
	Email       string `json:"email" binding:"required,email,max=255"`

	DOB        string `json:"dob" binding:"omitempty,max=50"`
	Income     string `json:"income" binding:"omitempty,max=100"`
	Employment string `json:"employment" binding:"omitempty,max=100"`
	LoanAmount string `json:"loanAmount" binding:"omitempty,max=100"`
	City       string `json:"city" binding:"omitempty,max=100"`
}

// LoanUsecase defines the interface for loan application operations
type LoanUsecase interface {
	// SubmitApplication queues the notification for background delivery
	// (fire-and-forget); the response does not wait on the provider.
	SubmitApplication(ctx context.Context, req *LoanApplicationRequest) error
}
