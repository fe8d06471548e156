package payment

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeMembership = "membership"
	TypeEvent      = "event"

	StatusPaid = "paid"
)

// Payment is one row of the append-only ledger.
type Payment struct {
	ID                    uuid.UUID  `db:"id" json:"_id"`
	UserEmail             string     `db:"user_email" json:"userEmail"`
	Amount                float64    `db:"amount" json:"amount"`
	Type                  string     `db:"type" json:"type"`
	StripePaymentIntentID string     `db:"stripe_payment_intent_id" json:"stripePaymentIntentId"`
	TransactionID         string     `db:"transaction_id" json:"transactionId"`
	PaymentStatus         string     `db:"payment_status" json:"paymentStatus"`
	ClubID                uuid.UUID  `db:"club_id" json:"clubId"`
	EventID               *uuid.UUID `db:"event_id" json:"eventId"`
	CreatedAt             time.Time  `db:"created_at" json:"createdAt"`
}

type MemberPayment struct {
	Payment
	ClubName   string `db:"club_name" json:"clubName"`
	EventTitle string `db:"event_title" json:"eventTitle,omitempty"`
}

type MembershipCheckoutRequest struct {
	ClubID    string `json:"clubId" binding:"required,uuid"`
	UserEmail string `json:"userEmail" binding:"required,email"`
}

type EventCheckoutRequest struct {
	EventID   string `json:"eventId" binding:"required,uuid"`
	UserEmail string `json:"userEmail" binding:"required,email"`
}

type CheckoutResponse struct {
	URL       string `json:"url"`
	SessionID string `json:"sessionId"`
}

type ReconcileResponse struct {
	Message          string   `json:"message"`
	AlreadyProcessed bool     `json:"alreadyProcessed"`
	Type             string   `json:"type,omitempty"`
	Payment          *Payment `json:"payment,omitempty"`
}
