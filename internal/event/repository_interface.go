package event

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, e *Event) error
	Get(ctx context.Context, id uuid.UUID) (*EventWithCount, error)
	Update(ctx context.Context, e *Event) error
	// Delete removes the event's registrations and then the event.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	ListByManager(ctx context.Context, managerEmail string) ([]EventWithCount, error)
	ListPublic(ctx context.Context, f ListFilter) ([]EventWithCount, error)
	ClubsByID(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]ClubSummary, error)
	ListRegistrations(ctx context.Context, eventID uuid.UUID) ([]RegistrationWithUser, error)
	IsRegistered(ctx context.Context, email string, eventID uuid.UUID) (bool, error)
	RegisterFree(ctx context.Context, r *Registration) (created bool, err error)
	ListForMember(ctx context.Context, email string) ([]MemberEvent, error)
}
