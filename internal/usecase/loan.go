package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/YashPro8158/credifybackend/internal/domain"
	"github.com/YashPro8158/credifybackend/pkg/mailer"
)

type loanUsecase struct {
	dispatcher *mailer.Dispatcher
}

// NewLoanUsecase creates a new loan application usecase
func NewLoanUsecase(dispatcher *mailer.Dispatcher) domain.LoanUsecase {
	return &loanUsecase{
		dispatcher: dispatcher,
	}
}

// SubmitApplication queues the notification for background delivery.
// The caller gets a success as soon as the message is built; transport
// failures are only logged by the dispatcher worker.
func (uc *loanUsecase) SubmitApplication(ctx context.Context, req *domain.LoanApplicationRequest) error {
	msg, err := mailer.NewLoanMessage(mailer.LoanEmailData{
		ReferenceID: strings.TrimSpace(req.ReferenceID),
		LoanType:    strings.TrimSpace(req.LoanType),
		FullName:    strings.TrimSpace(req.FullName),
		Mobile:      strings.TrimSpace(req.Mobile),
		Email:       strings.TrimSpace(req.Email),
		DOB:         strings.TrimSpace(req.DOB),
		Income:      strings.TrimSpace(req.Income),
		Employment:  strings.TrimSpace(req.Employment),
		LoanAmount:  strings.TrimSpace(req.LoanAmount),
		City:        strings.TrimSpace(req.City),
	})
	if err != nil {
		return fmt.Errorf("failed to build loan notification: %w", err)
	}

	uc.dispatcher.Enqueue(msg)
	return nil
}
