package payment

import (
	"context"

	"clubsphere/internal/event"
	"clubsphere/internal/membership"
)

type Repository interface {
	// ReconcileMembership records the membership, the ledger row and the
	// member-set entry atomically. created is false on replay.
	ReconcileMembership(ctx context.Context, m *membership.Membership, p *Payment) (created bool, err error)
	// ReconcileEvent records the registration and the ledger row atomically.
	ReconcileEvent(ctx context.Context, r *event.Registration, p *Payment) (created bool, err error)
	ListForMember(ctx context.Context, email string) ([]MemberPayment, error)
}
