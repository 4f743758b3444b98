package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/YashPro8158/credifybackend/internal/domain"
	"github.com/YashPro8158/credifybackend/pkg/mailer"
)

type contactUsecase struct {
	sender mailer.Sender
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(sender mailer.Sender) domain.ContactUsecase {
	return &contactUsecase{
		sender: sender,
	}
}

// SubmitContact builds the notification and delivers it synchronously;
// a transport failure surfaces to the handler as a delivery error.
func (uc *contactUsecase) SubmitContact(ctx context.Context, req *domain.ContactRequest) error {
	msg, err := mailer.NewContactMessage(mailer.ContactEmailData{
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.TrimSpace(req.Email),
		LoanType: strings.TrimSpace(req.LoanType),
		Message:  strings.TrimSpace(req.Message),
	})
	if err != nil {
		return fmt.Errorf("failed to build contact notification: %w", err)
	}

	if err := uc.sender.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send contact email: %w", err)
	}

	return nil
}
