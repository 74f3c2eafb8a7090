package model

import "context"

// Mailer delivers password-reset links to account owners.
type Mailer interface {
	SendResetLink(ctx context.Context, toAddress, resetLink string) error
}
