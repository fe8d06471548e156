package event

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"clubsphere/internal/club"
	"clubsphere/internal/logger"
	"clubsphere/internal/metrics"
	"clubsphere/internal/policy"
	"clubsphere/internal/sanitize"
)

var (
	ErrEventNotFound     = errors.New("event not found")
	ErrClubNotFound      = errors.New("club not found or not owned")
	ErrClubNotApproved   = errors.New("club is not approved")
	ErrFeeRequired       = errors.New("paid event needs a positive fee")
	ErrNoFields          = errors.New("no fields to update")
	ErrPaidEvent         = errors.New("event requires payment")
	ErrEventFull         = errors.New("event is full")
	ErrAlreadyRegistered = errors.New("already registered")
)

// Ownership resolves which manager owns a club or event.
type Ownership interface {
	ClubOwnedBy(ctx context.Context, clubID uuid.UUID, email string) (*policy.ClubRef, error)
	EventOwnedBy(ctx context.Context, eventID uuid.UUID, email string) (*policy.ClubRef, error)
}

type Notifier interface {
	SendEventRegistration(ctx context.Context, to, title string, when time.Time, location string) error
}

type Service interface {
	Create(ctx context.Context, managerEmail string, req CreateEventRequest) (*Event, error)
	Update(ctx context.Context, id uuid.UUID, managerEmail string, req UpdateEventRequest) (*Event, error)
	Delete(ctx context.Context, id uuid.UUID, managerEmail string) error
	ListForManager(ctx context.Context, managerEmail string) ([]EventWithCount, error)
	ListRegistrations(ctx context.Context, eventID uuid.UUID, managerEmail string) ([]RegistrationWithUser, error)
	List(ctx context.Context, f ListFilter) ([]PublicEvent, error)
	Get(ctx context.Context, id uuid.UUID) (*PublicEvent, error)
	RegisterFree(ctx context.Context, email string, eventID uuid.UUID) (*Registration, error)
	ListForMember(ctx context.Context, email string) ([]MemberEvent, error)
}

type service struct {
	repo     Repository
	owners   Ownership
	notifier Notifier
}

func NewService(repo Repository, owners Ownership, notifier Notifier) Service {
	return &service{
		repo:     repo,
		owners:   owners,
		notifier: notifier,
	}
}

func (s *service) Create(ctx context.Context, managerEmail string, req CreateEventRequest) (*Event, error) {
	clubID, err := uuid.Parse(req.ClubID)
	if err != nil {
		return nil, ErrClubNotFound
	}

	ref, err := s.owners.ClubOwnedBy(ctx, clubID, managerEmail)
	if err != nil {
		if errors.Is(err, policy.ErrNotOwned) {
			return nil, ErrClubNotFound
		}
		return nil, err
	}
	if ref.Status != club.StatusApproved {
		return nil, ErrClubNotApproved
	}

	fee, err := normalizeFee(req.IsPaid, req.EventFee)
	if err != nil {
		return nil, err
	}

	e := &Event{
		ID:           uuid.New(),
		ClubID:       clubID,
		ClubName:     ref.ClubName,
		Title:        sanitize.Text(req.Title),
		Description:  sanitize.Text(req.Description),
		EventDate:    req.EventDate.UTC(),
		Location:     sanitize.Text(req.Location),
		IsPaid:       req.IsPaid,
		EventFee:     fee,
		MaxAttendees: parseCapacity(req.MaxAttendees),
		BannerImage:  strings.TrimSpace(req.BannerImage),
	}

	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, managerEmail string, req UpdateEventRequest) (*Event, error) {
	if req.empty() {
		return nil, ErrNoFields
	}
	if err := s.checkOwner(ctx, id, managerEmail); err != nil {
		return nil, err
	}

	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	e := current.Event

	if req.Title != nil {
		e.Title = sanitize.Text(*req.Title)
	}
	if req.Description != nil {
		e.Description = sanitize.Text(*req.Description)
	}
	if req.EventDate != nil {
		e.EventDate = req.EventDate.UTC()
	}
	if req.Location != nil {
		e.Location = sanitize.Text(*req.Location)
	}
	if req.BannerImage != nil {
		e.BannerImage = strings.TrimSpace(*req.BannerImage)
	}
	if req.IsPaid != nil {
		e.IsPaid = *req.IsPaid
	}
	if req.EventFee != nil {
		e.EventFee = *req.EventFee
	}
	if len(req.MaxAttendees) > 0 {
		e.MaxAttendees = parseCapacity(req.MaxAttendees)
	}

	if e.EventFee, err = normalizeFee(e.IsPaid, e.EventFee); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID, managerEmail string) error {
	if err := s.checkOwner(ctx, id, managerEmail); err != nil {
		return err
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrEventNotFound
	}
	return nil
}

func (s *service) ListForManager(ctx context.Context, managerEmail string) ([]EventWithCount, error) {
	return s.repo.ListByManager(ctx, managerEmail)
}

func (s *service) ListRegistrations(ctx context.Context, eventID uuid.UUID, managerEmail string) ([]RegistrationWithUser, error) {
	if err := s.checkOwner(ctx, eventID, managerEmail); err != nil {
		return nil, err
	}
	return s.repo.ListRegistrations(ctx, eventID)
}

func (s *service) List(ctx context.Context, f ListFilter) ([]PublicEvent, error) {
	events, err := s.repo.ListPublic(ctx, f)
	if err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]struct{})
	ids := make([]uuid.UUID, 0, len(events))
	for _, e := range events {
		if _, ok := seen[e.ClubID]; !ok {
			seen[e.ClubID] = struct{}{}
			ids = append(ids, e.ClubID)
		}
	}

	clubs, err := s.repo.ClubsByID(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]PublicEvent, len(events))
	for i, e := range events {
		out[i] = PublicEvent{EventWithCount: e}
		if c, ok := clubs[e.ClubID]; ok {
			out[i].Club = &c
		}
	}
	return out, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*PublicEvent, error) {
	e, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	clubs, err := s.repo.ClubsByID(ctx, []uuid.UUID{e.ClubID})
	if err != nil {
		return nil, err
	}

	out := &PublicEvent{EventWithCount: *e}
	if c, ok := clubs[e.ClubID]; ok {
		out.Club = &c
	}
	return out, nil
}

func (s *service) RegisterFree(ctx context.Context, email string, eventID uuid.UUID) (*Registration, error) {
	e, err := s.repo.Get(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if e.RequiresPayment() {
		return nil, ErrPaidEvent
	}
	if e.Full() {
		return nil, ErrEventFull
	}

	reg := &Registration{
		ID:           uuid.New(),
		UserEmail:    email,
		EventID:      eventID,
		ClubID:       e.ClubID,
		Status:       StatusRegistered,
		PaymentID:    FreeRegistrationPaymentID,
		RegisteredAt: time.Now().UTC(),
	}

	created, err := s.repo.RegisterFree(ctx, reg)
	if err != nil {
		return nil, err
	}
	if !created {
		return nil, ErrAlreadyRegistered
	}

	metrics.RecordEventRegistration("free")
	if s.notifier != nil {
		if err := s.notifier.SendEventRegistration(ctx, email, e.Title, e.EventDate, e.Location); err != nil {
			logger.Warn("registration email not queued", "error", err, "email", email)
		}
	}
	return reg, nil
}

func (s *service) ListForMember(ctx context.Context, email string) ([]MemberEvent, error) {
	return s.repo.ListForMember(ctx, email)
}

func (s *service) checkOwner(ctx context.Context, eventID uuid.UUID, managerEmail string) error {
	if _, err := s.owners.EventOwnedBy(ctx, eventID, managerEmail); err != nil {
		if errors.Is(err, policy.ErrNotOwned) {
			return ErrEventNotFound
		}
		return err
	}
	return nil
}

func normalizeFee(isPaid bool, fee float64) (float64, error) {
	if !isPaid {
		return 0, nil
	}
	if fee <= 0 {
		return 0, ErrFeeRequired
	}
	return fee, nil
}

func parseCapacity(raw json.RawMessage) *int {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		s = string(raw)
	}

	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return nil
	}
	return &n
}
