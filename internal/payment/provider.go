package payment

import "context"

type CheckoutRequest struct {
	CustomerEmail string
	Name          string
	Description   string
	Currency      string
	// AmountCents is in the currency's minor unit.
	AmountCents int64
	SuccessURL  string
	CancelURL   string
	Metadata    map[string]string
}

type CheckoutSession struct {
	ID              string
	URL             string
	PaymentStatus   string
	PaymentIntentID string
	AmountTotal     int64
	Metadata        map[string]string
}

// Provider is a hosted checkout service.
type Provider interface {
	CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error)
	GetCheckoutSession(ctx context.Context, sessionID string) (*CheckoutSession, error)
}
