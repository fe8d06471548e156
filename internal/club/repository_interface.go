package club

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	// Create inserts the club and its manager as the first member.
	Create(ctx context.Context, c *Club) error
	ListAll(ctx context.Context) ([]ClubWithStats, error)
	ListByManager(ctx context.Context, managerEmail string) ([]ClubWithStats, error)
	SetStatus(ctx context.Context, id uuid.UUID, status string) (*Club, error)
	UpdateOwned(ctx context.Context, id uuid.UUID, managerEmail string, req UpdateClubRequest) (*Club, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	DeleteOwned(ctx context.Context, id uuid.UUID, managerEmail string) (bool, error)
	ListApproved(ctx context.Context, f ListFilter) ([]ClubWithStats, error)
	GetApproved(ctx context.Context, id uuid.UUID) (*ClubWithStats, error)
	ListCategories(ctx context.Context) ([]string, error)
}
