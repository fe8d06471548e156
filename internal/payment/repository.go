package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"clubsphere/internal/club"
	"clubsphere/internal/db"
	"clubsphere/internal/event"
	"clubsphere/internal/membership"
)

// errReplay aborts the transaction when the session was already reconciled.
var errReplay = errors.New("session already reconciled")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// ReconcileMembership writes the ledger row first. Its transaction_id is the
// replay key; the active-membership index alone does not cover expired rows.
func (r *repository) ReconcileMembership(ctx context.Context, m *membership.Membership, p *Payment) (bool, error) {
	err := db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if err := insertPayment(ctx, tx, p); err != nil {
			return err
		}

		created, err := membership.Insert(ctx, tx, m)
		if err != nil {
			return err
		}
		if !created {
			return errReplay
		}
		return club.AddMember(ctx, tx, m.ClubID, m.UserEmail)
	})
	return settle(err)
}

func (r *repository) ReconcileEvent(ctx context.Context, reg *event.Registration, p *Payment) (bool, error) {
	err := db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if err := insertPayment(ctx, tx, p); err != nil {
			return err
		}

		created, err := event.InsertRegistration(ctx, tx, reg)
		if err != nil {
			return err
		}
		if !created {
			return errReplay
		}
		return nil
	})
	return settle(err)
}

func (r *repository) ListForMember(ctx context.Context, email string) ([]MemberPayment, error) {
	payments := []MemberPayment{}
	err := r.db.SelectContext(ctx, &payments, `
		SELECT p.id, p.user_email, p.amount, p.type, p.stripe_payment_intent_id, p.transaction_id,
			p.payment_status, p.club_id, p.event_id, p.created_at,
			COALESCE(c.club_name, '') AS club_name,
			COALESCE(e.title, '') AS event_title
		FROM payments p
		LEFT JOIN clubs c ON c.id = p.club_id
		LEFT JOIN events e ON e.id = p.event_id
		WHERE p.user_email = $1
		ORDER BY p.created_at DESC
	`, email)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return payments, nil
}

// insertPayment returns errReplay when the session already has a ledger row.
func insertPayment(ctx context.Context, tx *sqlx.Tx, p *Payment) error {
	res, err := tx.ExecContext(ctx, `
		INSERT INTO payments (id, user_email, amount, type, stripe_payment_intent_id,
			transaction_id, payment_status, club_id, event_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (transaction_id) DO NOTHING
	`, p.ID, p.UserEmail, p.Amount, p.Type, p.StripePaymentIntentID,
		p.TransactionID, p.PaymentStatus, p.ClubID, p.EventID)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	if n == 0 {
		return errReplay
	}
	return nil
}

func settle(err error) (bool, error) {
	if errors.Is(err, errReplay) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
