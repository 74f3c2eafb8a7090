package mailer

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"

	"github.com/vporoshin/accounts-server/internal/logger"
	"github.com/vporoshin/accounts-server/internal/model"
)

var _ model.Mailer = (*Resend)(nil)

// Resend delivers password-reset links through the Resend email API.
type Resend struct {
	client *resend.Client
	sender string
	logger *logger.Logger
}

// NewResend creates a Resend-backed mailer sending from the given address.
func NewResend(apiKey, sender string, logger *logger.Logger) *Resend {
	return &Resend{
		client: resend.NewClient(apiKey),
		sender: sender,
		logger: logger,
	}
}

// SendResetLink mails the reset link to toAddress. Delivery failures are
// returned to the caller, not suppressed.
func (m *Resend) SendResetLink(ctx context.Context, toAddress, resetLink string) error {
	params := &resend.SendEmailRequest{
		From:    m.sender,
		To:      []string{toAddress},
		Subject: "Reset your password",
		Text: fmt.Sprintf("Follow this link to reset your password: %s\n\n"+
			"The link expires in one hour. If you did not request a reset, ignore this email.", resetLink),
	}

	sent, err := m.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to send reset email: %w", err)
	}

	m.logger.Debug("Mailer: reset email sent",
		"email_id", sent.Id)

	return nil
}
