package email

import (
	"context"
	"fmt"
	"strings"
	"time"
)

const dateLayout = "Jan 2, 2006 at 3:04 PM"

func (s *Service) SendMembershipConfirmation(ctx context.Context, to, clubName string, expiresAt *time.Time) error {
	validity := "Your membership has no expiry date."
	if expiresAt != nil {
		validity = "Your membership is valid until " + expiresAt.Format(dateLayout) + "."
	}

	subject := "Welcome to " + clubName
	body := fmt.Sprintf(`Hi,

You are now a member of %s.
%s

- ClubSphere Team`, clubName, validity)

	return s.Send(ctx, to, subject, body)
}

func (s *Service) SendEventRegistration(ctx context.Context, to, title string, when time.Time, location string) error {
	subject := "Registration Confirmed - " + title
	body := fmt.Sprintf(`Hi,

You are registered for %s.

When: %s
Where: %s

See you there!

- ClubSphere Team`, title, when.Format(dateLayout), location)

	return s.Send(ctx, to, subject, body)
}

func (s *Service) SendPaymentReceipt(ctx context.Context, to string, amount float64, currency, description, transactionID string) error {
	subject := "Payment Received"
	body := fmt.Sprintf(`Hi,

We received your payment of %.2f %s for %s.
Transaction: %s

- ClubSphere Team`, amount, strings.ToUpper(currency), description, transactionID)

	return s.Send(ctx, to, subject, body)
}

func (s *Service) SendClubStatus(ctx context.Context, to, clubName, status string) error {
	subject := fmt.Sprintf("Your club %s was %s", clubName, status)
	body := fmt.Sprintf(`Hi,

An administrator has %s your club "%s".

- ClubSphere Team`, status, clubName)

	return s.Send(ctx, to, subject, body)
}
