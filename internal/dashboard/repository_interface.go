package dashboard

import (
	"context"
	"time"

	"clubsphere/internal/event"
)

type Repository interface {
	ManagerStats(ctx context.Context, managerEmail string) (*ManagerStats, error)
	MemberStats(ctx context.Context, email string) (*MemberStats, error)
	// UpcomingEvents returns events dated at or after now in clubs where
	// email holds an active membership, soonest first.
	UpcomingEvents(ctx context.Context, email string, now time.Time, limit int) ([]event.Event, error)
	AdminStats(ctx context.Context) (*AdminStats, error)
}
