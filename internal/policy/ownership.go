// Package policy resolves resource ownership for club managers. Events and
// memberships carry no owner of their own; they are owned through their club.
package policy

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// ErrNotOwned covers both a missing resource and one owned by someone else.
var ErrNotOwned = errors.New("resource not found or not owned by caller")

// ClubRef is the owning club of a resource.
type ClubRef struct {
	ID       uuid.UUID `db:"id"`
	ClubName string    `db:"club_name"`
	Status   string    `db:"status"`
}

type Ownership struct {
	db sqlx.QueryerContext
}

func New(db sqlx.QueryerContext) *Ownership {
	return &Ownership{db: db}
}

func (o *Ownership) ClubOwnedBy(ctx context.Context, clubID uuid.UUID, email string) (*ClubRef, error) {
	return o.resolve(ctx, `
		SELECT c.id, c.club_name, c.status
		FROM clubs c
		WHERE c.id = $1 AND c.manager_email = $2
	`, clubID, email)
}

func (o *Ownership) EventOwnedBy(ctx context.Context, eventID uuid.UUID, email string) (*ClubRef, error) {
	return o.resolve(ctx, `
		SELECT c.id, c.club_name, c.status
		FROM events e
		JOIN clubs c ON c.id = e.club_id
		WHERE e.id = $1 AND c.manager_email = $2
	`, eventID, email)
}

func (o *Ownership) MembershipOwnedBy(ctx context.Context, membershipID uuid.UUID, email string) (*ClubRef, error) {
	return o.resolve(ctx, `
		SELECT c.id, c.club_name, c.status
		FROM memberships m
		JOIN clubs c ON c.id = m.club_id
		WHERE m.id = $1 AND c.manager_email = $2
	`, membershipID, email)
}

func (o *Ownership) resolve(ctx context.Context, query string, id uuid.UUID, email string) (*ClubRef, error) {
	var ref ClubRef
	if err := sqlx.GetContext(ctx, o.db, &ref, query, id, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotOwned
		}
		return nil, fmt.Errorf("resolve ownership: %w", err)
	}
	return &ref, nil
}
