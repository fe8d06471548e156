package dashboard

import (
	"context"
	"time"
)

type Service interface {
	ManagerStats(ctx context.Context, managerEmail string) (*ManagerStats, error)
	MemberOverview(ctx context.Context, email string) (*MemberOverview, error)
	AdminStats(ctx context.Context) (*AdminStats, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) ManagerStats(ctx context.Context, managerEmail string) (*ManagerStats, error) {
	return s.repo.ManagerStats(ctx, managerEmail)
}

func (s *service) MemberOverview(ctx context.Context, email string) (*MemberOverview, error) {
	stats, err := s.repo.MemberStats(ctx, email)
	if err != nil {
		return nil, err
	}
	upcoming, err := s.repo.UpcomingEvents(ctx, email, s.now().UTC(), UpcomingLimit)
	if err != nil {
		return nil, err
	}
	return &MemberOverview{MemberStats: *stats, UpcomingEvents: upcoming}, nil
}

func (s *service) AdminStats(ctx context.Context) (*AdminStats, error) {
	return s.repo.AdminStats(ctx)
}
