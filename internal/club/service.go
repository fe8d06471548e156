package club

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"clubsphere/internal/audit"
	"clubsphere/internal/logger"
	"clubsphere/internal/metrics"
	"clubsphere/internal/queue"
	"clubsphere/internal/sanitize"
)

var (
	ErrClubNotFound  = errors.New("club not found")
	ErrInvalidStatus = errors.New("invalid club status")
	ErrNoFields      = errors.New("no fields to update")
)

// Notifier tells a manager about a status decision on their club.
type Notifier interface {
	SendClubStatus(ctx context.Context, to, clubName, status string) error
}

type Service interface {
	Register(ctx context.Context, managerEmail string, req CreateClubRequest) (*Club, error)
	ListForAdmin(ctx context.Context) ([]ClubWithStats, error)
	ListForManager(ctx context.Context, managerEmail string) ([]ClubWithStats, error)
	SetStatus(ctx context.Context, actor string, id uuid.UUID, status string) (*Club, error)
	Update(ctx context.Context, id uuid.UUID, managerEmail string, req UpdateClubRequest) (*Club, error)
	DeleteAsAdmin(ctx context.Context, actor string, id uuid.UUID) error
	DeleteAsManager(ctx context.Context, id uuid.UUID, managerEmail string) error
	ListApproved(ctx context.Context, f ListFilter) ([]ClubWithStats, error)
	GetApproved(ctx context.Context, id uuid.UUID) (*ClubWithStats, error)
	ListCategories(ctx context.Context) ([]string, error)
}

type service struct {
	repo      Repository
	notifier  Notifier
	publisher queue.Publisher
	audit     *audit.Logger
}

func NewService(repo Repository, notifier Notifier, publisher queue.Publisher, auditLog *audit.Logger) Service {
	if publisher == nil {
		publisher = queue.Nop{}
	}
	return &service{
		repo:      repo,
		notifier:  notifier,
		publisher: publisher,
		audit:     auditLog,
	}
}

func (s *service) Register(ctx context.Context, managerEmail string, req CreateClubRequest) (*Club, error) {
	schedule := sanitize.Text(req.MeetingSchedule)
	if schedule == "" {
		schedule = DefaultMeetingSchedule
	}

	c := &Club{
		ID:              uuid.New(),
		ClubName:        sanitize.Text(req.Name),
		Description:     sanitize.Text(req.Description),
		Category:        sanitize.Text(req.Category),
		Location:        sanitize.Text(req.Location),
		BannerImage:     req.BannerImage,
		MembershipFee:   *req.MembershipFee,
		MeetingSchedule: schedule,
		ManagerEmail:    managerEmail,
		Status:          StatusPending,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) ListForAdmin(ctx context.Context) ([]ClubWithStats, error) {
	return s.repo.ListAll(ctx)
}

func (s *service) ListForManager(ctx context.Context, managerEmail string) ([]ClubWithStats, error) {
	return s.repo.ListByManager(ctx, managerEmail)
}

func (s *service) SetStatus(ctx context.Context, actor string, id uuid.UUID, status string) (*Club, error) {
	if status != StatusApproved && status != StatusRejected {
		return nil, ErrInvalidStatus
	}

	c, err := s.repo.SetStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	metrics.RecordClubStatus(status)
	s.audit.ClubStatusChanged(ctx, actor, id.String(), status)

	if s.notifier != nil {
		if err := s.notifier.SendClubStatus(ctx, c.ManagerEmail, c.ClubName, status); err != nil {
			logger.Warn("club status email not queued", "error", err, "club_id", id)
		}
	}

	event := queue.ClubStatusChanged{
		ClubID:       id.String(),
		ClubName:     c.ClubName,
		ManagerEmail: c.ManagerEmail,
		Status:       status,
		ChangedAt:    time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, queue.TopicClubStatusChanged, event); err != nil {
		logger.Warn("club status event not published", "error", err, "club_id", id)
	}

	return c, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, managerEmail string, req UpdateClubRequest) (*Club, error) {
	if req.empty() {
		return nil, ErrNoFields
	}

	req.Name = sanitize.Ptr(req.Name)
	req.Description = sanitize.Ptr(req.Description)
	req.Category = sanitize.Ptr(req.Category)
	req.Location = sanitize.Ptr(req.Location)
	req.MeetingSchedule = sanitize.Ptr(req.MeetingSchedule)

	return s.repo.UpdateOwned(ctx, id, managerEmail, req)
}

func (s *service) DeleteAsAdmin(ctx context.Context, actor string, id uuid.UUID) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrClubNotFound
	}
	s.audit.ClubDeleted(ctx, actor, id.String())
	return nil
}

func (s *service) DeleteAsManager(ctx context.Context, id uuid.UUID, managerEmail string) error {
	deleted, err := s.repo.DeleteOwned(ctx, id, managerEmail)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrClubNotFound
	}
	return nil
}

func (s *service) ListApproved(ctx context.Context, f ListFilter) ([]ClubWithStats, error) {
	return s.repo.ListApproved(ctx, f)
}

func (s *service) GetApproved(ctx context.Context, id uuid.UUID) (*ClubWithStats, error) {
	return s.repo.GetApproved(ctx, id)
}

func (s *service) ListCategories(ctx context.Context) ([]string, error) {
	return s.repo.ListCategories(ctx)
}
