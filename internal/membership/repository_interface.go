package membership

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	GetApprovedClub(ctx context.Context, clubID uuid.UUID) (*ClubInfo, error)
	HasActive(ctx context.Context, email string, clubID uuid.UUID) (bool, error)
	// JoinFree records the membership and the member-set entry together.
	// created is false when an active membership already exists.
	JoinFree(ctx context.Context, m *Membership) (created bool, err error)
	Expire(ctx context.Context, id uuid.UUID) (bool, error)
	ExpireOverdue(ctx context.Context, now time.Time) (int64, error)
	ListForMember(ctx context.Context, email string) ([]MemberClub, error)
	ListByClub(ctx context.Context, clubID uuid.UUID) ([]ClubMember, error)
}
