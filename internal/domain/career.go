package domain

import "context"

// CareerRequest represents a career application submitted as a multipart form
type CareerRequest struct {
	FullName   string `form:"fullName" binding:"required,min=2,max=100,valid_name"`
	Email      string `form:"email" binding:"required,email,max=255"`
	Phone      string `form:"phone" binding:"required,min=7,valid_phone"`
	Role       string `form:"role" binding:"required"`
	Experience string `form:"experience" binding:"required"`
	Message    string `form:"message" binding:"omitempty,max=4000"`
}

// ResumeFile is the optional attachment accompanying a career application
type ResumeFile struct {
	Filename    string
	ContentType string
	Size        int64
	Data        []byte
}

// CareerUsecase defines the interface for career application operations
type CareerUsecase interface {
	// SubmitApplication relays a validated career application, with the
	// resume attached when one was uploaded.
	SubmitApplication(ctx context.Context, req *CareerRequest, resume *ResumeFile) error
}
