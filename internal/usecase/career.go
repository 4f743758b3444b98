package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/YashPro8158/credifybackend/internal/domain"
	"github.com/YashPro8158/credifybackend/pkg/mailer"
)

type careerUsecase struct {
	sender mailer.Sender
}

// NewCareerUsecase creates a new career application usecase
func NewCareerUsecase(sender mailer.Sender) domain.CareerUsecase {
	return &careerUsecase{
		sender: sender,
	}
}

// SubmitApplication builds the notification, attaches the resume when
// one was uploaded, and delivers synchronously.
func (uc *careerUsecase) SubmitApplication(ctx context.Context, req *domain.CareerRequest, resume *domain.ResumeFile) error {
	data := mailer.CareerEmailData{
		FullName:   strings.TrimSpace(req.FullName),
		Email:      strings.TrimSpace(req.Email),
		Phone:      strings.TrimSpace(req.Phone),
		Role:       strings.TrimSpace(req.Role),
		Experience: strings.TrimSpace(req.Experience),
		Message:    strings.TrimSpace(req.Message),
	}
	if resume != nil {
		data.ResumeFilename = resume.Filename
	}

	msg, err := mailer.NewCareerMessage(data)
	if err != nil {
		return fmt.Errorf("failed to build career notification: %w", err)
	}

	if resume != nil {
		msg.Attachments = append(msg.Attachments, mailer.Attachment{
			Filename:    resume.Filename,
			ContentType: resume.ContentType,
			Data:        resume.Data,
		})
	}

	if err := uc.sender.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send career application email: %w", err)
	}

	return nil
}
