package membership

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"clubsphere/internal/club"
	"clubsphere/internal/db"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// Insert adds an active membership unless one already exists for the same
// user and club. The partial unique index decides; no read precedes it.
func Insert(ctx context.Context, exec sqlx.ExecerContext, m *Membership) (bool, error) {
	res, err := exec.ExecContext(ctx, `
		INSERT INTO memberships (id, user_email, club_id, status, payment_id, joined_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_email, club_id) WHERE status = 'active' DO NOTHING
	`, m.ID, m.UserEmail, m.ClubID, m.Status, m.PaymentID, m.JoinedAt, m.ExpiresAt)
	if err != nil {
		return false, fmt.Errorf("insert membership: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *repository) GetApprovedClub(ctx context.Context, clubID uuid.UUID) (*ClubInfo, error) {
	var info ClubInfo
	err := r.db.GetContext(ctx, &info, `
		SELECT id, club_name, membership_fee
		FROM clubs
		WHERE id = $1 AND status = $2
	`, clubID, club.StatusApproved)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrClubNotFound
		}
		return nil, fmt.Errorf("get club: %w", err)
	}
	return &info, nil
}

func (r *repository) HasActive(ctx context.Context, email string, clubID uuid.UUID) (bool, error) {
	return db.Exists(ctx, r.db, `
		SELECT EXISTS (
			SELECT 1 FROM memberships
			WHERE user_email = $1 AND club_id = $2 AND status = 'active'
		)
	`, email, clubID)
}

func (r *repository) JoinFree(ctx context.Context, m *Membership) (bool, error) {
	var created bool
	err := db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var err error
		created, err = Insert(ctx, tx, m)
		if err != nil || !created {
			return err
		}
		return club.AddMember(ctx, tx, m.ClubID, m.UserEmail)
	})
	return created, err
}

func (r *repository) Expire(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE memberships SET status = 'expired'
		WHERE id = $1 AND status = 'active'
	`, id)
	if err != nil {
		return false, fmt.Errorf("expire membership: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *repository) ExpireOverdue(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE memberships SET status = 'expired'
		WHERE status = 'active' AND expires_at IS NOT NULL AND expires_at < $1
	`, now)
	if err != nil {
		return 0, fmt.Errorf("expire overdue memberships: %w", err)
	}
	return res.RowsAffected()
}

func (r *repository) ListForMember(ctx context.Context, email string) ([]MemberClub, error) {
	memberships := []MemberClub{}
	err := r.db.SelectContext(ctx, &memberships, `
		SELECT m.id, m.user_email, m.club_id, m.status, m.payment_id, m.joined_at, m.expires_at,
			COALESCE(c.club_name, '') AS club_name,
			COALESCE(c.location, '') AS location,
			COALESCE(c.category, '') AS category,
			COALESCE(c.membership_fee, 0) AS membership_fee
		FROM memberships m
		LEFT JOIN clubs c ON c.id = m.club_id
		WHERE m.user_email = $1
		ORDER BY m.joined_at DESC
	`, email)
	if err != nil {
		return nil, fmt.Errorf("list member clubs: %w", err)
	}
	return memberships, nil
}

func (r *repository) ListByClub(ctx context.Context, clubID uuid.UUID) ([]ClubMember, error) {
	members := []ClubMember{}
	err := r.db.SelectContext(ctx, &members, `
		SELECT m.id, m.user_email, m.club_id, m.status, m.payment_id, m.joined_at, m.expires_at,
			COALESCE(u.name, '') AS user_name,
			COALESCE(u.photo_url, '') AS photo_url
		FROM memberships m
		LEFT JOIN users u ON u.email = m.user_email
		WHERE m.club_id = $1
		ORDER BY m.joined_at DESC
	`, clubID)
	if err != nil {
		return nil, fmt.Errorf("list club members: %w", err)
	}
	return members, nil
}
