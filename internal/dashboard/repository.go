package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"clubsphere/internal/event"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ManagerStats(ctx context.Context, managerEmail string) (*ManagerStats, error) {
	query := `
		WITH managed AS (SELECT id FROM clubs WHERE manager_email = $1)
		SELECT
			(SELECT COUNT(*) FROM managed) AS total_clubs,
			(SELECT COUNT(*) FROM memberships m
				WHERE m.status = 'active' AND m.club_id IN (SELECT id FROM managed)) AS total_members,
			(SELECT COUNT(*) FROM events e WHERE e.club_id IN (SELECT id FROM managed)) AS total_events,
			(SELECT COALESCE(SUM(p.amount), 0) FROM payments p
				WHERE p.club_id IN (SELECT id FROM managed)) AS total_revenue
	`
	var s ManagerStats
	if err := r.db.GetContext(ctx, &s, query, managerEmail); err != nil {
		return nil, fmt.Errorf("manager stats: %w", err)
	}
	return &s, nil
}

func (r *repository) MemberStats(ctx context.Context, email string) (*MemberStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM memberships WHERE user_email = $1 AND status = 'active') AS total_clubs,
			(SELECT COUNT(*) FROM event_registrations WHERE user_email = $1) AS total_events,
			(SELECT COUNT(*) FROM payments WHERE user_email = $1) AS total_payments
	`
	var s MemberStats
	if err := r.db.GetContext(ctx, &s, query, email); err != nil {
		return nil, fmt.Errorf("member stats: %w", err)
	}
	return &s, nil
}

func (r *repository) UpcomingEvents(ctx context.Context, email string, now time.Time, limit int) ([]event.Event, error) {
	query := `
		SELECT e.id, e.club_id, e.club_name, e.title, e.description, e.event_date, e.location,
			e.is_paid, e.event_fee, e.max_attendees, e.banner_image, e.created_at, e.updated_at
		FROM events e
		WHERE e.event_date >= $2
		  AND e.club_id IN (
			SELECT club_id FROM memberships WHERE user_email = $1 AND status = 'active'
		  )
		ORDER BY e.event_date ASC
		LIMIT $3
	`
	events := []event.Event{}
	if err := r.db.SelectContext(ctx, &events, query, email, now, limit); err != nil {
		return nil, fmt.Errorf("upcoming events: %w", err)
	}
	return events, nil
}

func (r *repository) AdminStats(ctx context.Context) (*AdminStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM users) AS total_users,
			(SELECT COUNT(*) FROM clubs) AS total_clubs,
			(SELECT COUNT(*) FROM clubs WHERE status = 'pending') AS pending_clubs,
			(SELECT COUNT(*) FROM memberships WHERE status = 'active') AS total_memberships,
			(SELECT COUNT(*) FROM events) AS total_events,
			(SELECT COALESCE(SUM(amount), 0) FROM payments) AS total_revenue
	`
	var s AdminStats
	if err := r.db.GetContext(ctx, &s, query); err != nil {
		return nil, fmt.Errorf("admin stats: %w", err)
	}
	return &s, nil
}
