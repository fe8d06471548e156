package email

import (
	"context"
	"time"
)

// Nop satisfies every notifier when no Redis queue is configured.
type Nop struct{}

func (Nop) SendMembershipConfirmation(context.Context, string, string, *time.Time) error { return nil }

func (Nop) SendEventRegistration(context.Context, string, string, time.Time, string) error {
	return nil
}

func (Nop) SendPaymentReceipt(context.Context, string, float64, string, string, string) error {
	return nil
}

func (Nop) SendClubStatus(context.Context, string, string, string) error { return nil }
