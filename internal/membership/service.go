package membership

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"clubsphere/internal/audit"
	"clubsphere/internal/logger"
	"clubsphere/internal/metrics"
	"clubsphere/internal/policy"
)

var (
	ErrClubNotFound       = errors.New("club not found or not approved")
	ErrPaidClub           = errors.New("club requires a membership fee")
	ErrAlreadyMember      = errors.New("already an active member")
	ErrMembershipNotFound = errors.New("membership not found")
)

// Ownership resolves which manager owns a club or membership.
type Ownership interface {
	ClubOwnedBy(ctx context.Context, clubID uuid.UUID, email string) (*policy.ClubRef, error)
	MembershipOwnedBy(ctx context.Context, membershipID uuid.UUID, email string) (*policy.ClubRef, error)
}

type Notifier interface {
	SendMembershipConfirmation(ctx context.Context, to, clubName string, expiresAt *time.Time) error
}

type Service interface {
	JoinFree(ctx context.Context, email string, clubID uuid.UUID) (*Membership, error)
	// Expire reports false when the membership was already expired.
	Expire(ctx context.Context, managerEmail string, membershipID uuid.UUID) (bool, error)
	ExpireOverdue(ctx context.Context, now time.Time) (int64, error)
	ListForMember(ctx context.Context, email string) ([]MemberClub, error)
	ListClubMembers(ctx context.Context, clubID uuid.UUID, managerEmail string) ([]ClubMember, error)
}

type service struct {
	repo     Repository
	owners   Ownership
	notifier Notifier
	audit    *audit.Logger
}

func NewService(repo Repository, owners Ownership, notifier Notifier, auditLog *audit.Logger) Service {
	return &service{
		repo:     repo,
		owners:   owners,
		notifier: notifier,
		audit:    auditLog,
	}
}

func (s *service) JoinFree(ctx context.Context, email string, clubID uuid.UUID) (*Membership, error) {
	info, err := s.repo.GetApprovedClub(ctx, clubID)
	if err != nil {
		return nil, err
	}
	if info.MembershipFee > 0 {
		return nil, ErrPaidClub
	}

	m := &Membership{
		ID:        uuid.New(),
		UserEmail: email,
		ClubID:    clubID,
		Status:    StatusActive,
		PaymentID: FreeJoinPaymentID,
		JoinedAt:  time.Now().UTC(),
	}

	created, err := s.repo.JoinFree(ctx, m)
	if err != nil {
		return nil, err
	}
	if !created {
		return nil, ErrAlreadyMember
	}

	metrics.RecordMembership("free")
	if s.notifier != nil {
		if err := s.notifier.SendMembershipConfirmation(ctx, email, info.ClubName, nil); err != nil {
			logger.Warn("membership email not queued", "error", err, "email", email)
		}
	}
	return m, nil
}

func (s *service) Expire(ctx context.Context, managerEmail string, membershipID uuid.UUID) (bool, error) {
	if _, err := s.owners.MembershipOwnedBy(ctx, membershipID, managerEmail); err != nil {
		if errors.Is(err, policy.ErrNotOwned) {
			return false, ErrMembershipNotFound
		}
		return false, err
	}

	changed, err := s.repo.Expire(ctx, membershipID)
	if err != nil {
		return false, err
	}
	if changed {
		metrics.RecordMembershipsExpired("manager", 1)
		s.audit.MembershipExpired(ctx, managerEmail, membershipID.String())
	}
	return changed, nil
}

func (s *service) ExpireOverdue(ctx context.Context, now time.Time) (int64, error) {
	n, err := s.repo.ExpireOverdue(ctx, now)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		metrics.RecordMembershipsExpired("term_ended", n)
	}
	return n, nil
}

func (s *service) ListForMember(ctx context.Context, email string) ([]MemberClub, error) {
	return s.repo.ListForMember(ctx, email)
}

func (s *service) ListClubMembers(ctx context.Context, clubID uuid.UUID, managerEmail string) ([]ClubMember, error) {
	if _, err := s.owners.ClubOwnedBy(ctx, clubID, managerEmail); err != nil {
		if errors.Is(err, policy.ErrNotOwned) {
			return nil, ErrClubNotFound
		}
		return nil, err
	}
	return s.repo.ListByClub(ctx, clubID)
}
