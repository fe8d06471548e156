package payment

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"

	"clubsphere/internal/audit"
	"clubsphere/internal/event"
	"clubsphere/internal/logger"
	"clubsphere/internal/membership"
	"clubsphere/internal/metrics"
	"clubsphere/internal/queue"
)

var (
	ErrEmailMismatch     = errors.New("checkout email does not match caller")
	ErrClubNotFound      = errors.New("club not found or not approved")
	ErrFreeClub          = errors.New("club has no membership fee")
	ErrAlreadyMember     = errors.New("already an active member")
	ErrEventNotFound     = errors.New("event not found")
	ErrFreeEvent         = errors.New("event is free")
	ErrEventFull         = errors.New("event is full")
	ErrAlreadyRegistered = errors.New("already registered")
	ErrMissingSession    = errors.New("session id is required")
	ErrNotPaid           = errors.New("payment not completed")
	ErrBadMetadata       = errors.New("session metadata is invalid")
	ErrProvider          = errors.New("payment provider error")
)

// Metadata keys written at checkout and read back at reconciliation.
const (
	metaType      = "type"
	metaUserEmail = "userEmail"
	metaAmount    = "amount"
	metaClubID    = "clubId"
	metaEventID   = "eventId"
)

type MembershipLookup interface {
	GetApprovedClub(ctx context.Context, clubID uuid.UUID) (*membership.ClubInfo, error)
	HasActive(ctx context.Context, email string, clubID uuid.UUID) (bool, error)
}

type EventLookup interface {
	Get(ctx context.Context, id uuid.UUID) (*event.EventWithCount, error)
	IsRegistered(ctx context.Context, email string, eventID uuid.UUID) (bool, error)
}

type Notifier interface {
	SendPaymentReceipt(ctx context.Context, to string, amount float64, currency, description, transactionID string) error
}

type Config struct {
	Currency  string
	ClientURL string
}

type Service interface {
	CreateMembershipCheckout(ctx context.Context, principal string, req MembershipCheckoutRequest) (*CheckoutResponse, error)
	CreateEventCheckout(ctx context.Context, principal string, req EventCheckoutRequest) (*CheckoutResponse, error)
	Reconcile(ctx context.Context, sessionID string) (*ReconcileResponse, error)
	ListForMember(ctx context.Context, email string) ([]MemberPayment, error)
}

type service struct {
	provider    Provider
	repo        Repository
	memberships MembershipLookup
	events      EventLookup
	notifier    Notifier
	publisher   queue.Publisher
	audit       *audit.Logger
	config      Config
}

func NewService(
	provider Provider,
	repo Repository,
	memberships MembershipLookup,
	events EventLookup,
	notifier Notifier,
	publisher queue.Publisher,
	auditLog *audit.Logger,
	config Config,
) Service {
	if publisher == nil {
		publisher = queue.Nop{}
	}
	if config.Currency == "" {
		config.Currency = "usd"
	}
	return &service{
		provider:    provider,
		repo:        repo,
		memberships: memberships,
		events:      events,
		notifier:    notifier,
		publisher:   publisher,
		audit:       auditLog,
		config:      config,
	}
}

func (s *service) CreateMembershipCheckout(ctx context.Context, principal string, req MembershipCheckoutRequest) (*CheckoutResponse, error) {
	if req.UserEmail != principal {
		return nil, ErrEmailMismatch
	}
	clubID, err := uuid.Parse(req.ClubID)
	if err != nil {
		return nil, ErrClubNotFound
	}

	info, err := s.memberships.GetApprovedClub(ctx, clubID)
	if err != nil {
		if errors.Is(err, membership.ErrClubNotFound) {
			return nil, ErrClubNotFound
		}
		return nil, err
	}
	if info.MembershipFee <= 0 {
		return nil, ErrFreeClub
	}

	active, err := s.memberships.HasActive(ctx, principal, clubID)
	if err != nil {
		return nil, err
	}
	if active {
		return nil, ErrAlreadyMember
	}

	sess, err := s.provider.CreateCheckoutSession(ctx, CheckoutRequest{
		CustomerEmail: principal,
		Name:          info.ClubName + " Membership",
		Description:   "30-day club membership",
		Currency:      s.config.Currency,
		AmountCents:   toCents(info.MembershipFee),
		SuccessURL:    s.config.ClientURL + "/payment-success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:     s.config.ClientURL + "/clubs/" + clubID.String(),
		Metadata: map[string]string{
			metaType:      TypeMembership,
			metaUserEmail: principal,
			metaAmount:    formatAmount(info.MembershipFee),
			metaClubID:    clubID.String(),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProvider, err)
	}

	metrics.RecordCheckoutSession(TypeMembership)
	return &CheckoutResponse{URL: sess.URL, SessionID: sess.ID}, nil
}

func (s *service) CreateEventCheckout(ctx context.Context, principal string, req EventCheckoutRequest) (*CheckoutResponse, error) {
	if req.UserEmail != principal {
		return nil, ErrEmailMismatch
	}
	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		return nil, ErrEventNotFound
	}

	e, err := s.events.Get(ctx, eventID)
	if err != nil {
		if errors.Is(err, event.ErrEventNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	if !e.RequiresPayment() {
		return nil, ErrFreeEvent
	}
	if e.Full() {
		return nil, ErrEventFull
	}

	registered, err := s.events.IsRegistered(ctx, principal, eventID)
	if err != nil {
		return nil, err
	}
	if registered {
		return nil, ErrAlreadyRegistered
	}

	sess, err := s.provider.CreateCheckoutSession(ctx, CheckoutRequest{
		CustomerEmail: principal,
		Name:          e.Title,
		Description:   e.ClubName,
		Currency:      s.config.Currency,
		AmountCents:   toCents(e.EventFee),
		SuccessURL:    s.config.ClientURL + "/event-payment-success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:     s.config.ClientURL + "/events/" + eventID.String(),
		Metadata: map[string]string{
			metaType:      TypeEvent,
			metaUserEmail: principal,
			metaAmount:    formatAmount(e.EventFee),
			metaClubID:    e.ClubID.String(),
			metaEventID:   eventID.String(),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProvider, err)
	}

	metrics.RecordCheckoutSession(TypeEvent)
	return &CheckoutResponse{URL: sess.URL, SessionID: sess.ID}, nil
}

// Reconcile turns a paid checkout session into a membership or registration
// plus a ledger row. Replaying a session changes nothing.
func (s *service) Reconcile(ctx context.Context, sessionID string) (*ReconcileResponse, error) {
	if sessionID == "" {
		return nil, ErrMissingSession
	}

	sess, err := s.provider.GetCheckoutSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProvider, err)
	}

	kind := sess.Metadata[metaType]
	if sess.PaymentStatus != paymentStatusPaid {
		s.reject(ctx, kind, sessionID, "payment status "+sess.PaymentStatus)
		return nil, ErrNotPaid
	}

	meta, err := parseMetadata(sess.Metadata)
	if err != nil {
		s.reject(ctx, kind, sessionID, err.Error())
		return nil, err
	}

	now := time.Now().UTC()
	p := &Payment{
		ID:                    uuid.New(),
		UserEmail:             meta.userEmail,
		Amount:                meta.amount,
		Type:                  meta.kind,
		StripePaymentIntentID: sess.PaymentIntentID,
		TransactionID:         sess.ID,
		PaymentStatus:         StatusPaid,
		ClubID:                meta.clubID,
		CreatedAt:             now,
	}

	var created bool
	switch meta.kind {
	case TypeMembership:
		expires := now.Add(membership.PaidTerm)
		created, err = s.repo.ReconcileMembership(ctx, &membership.Membership{
			ID:        uuid.New(),
			UserEmail: meta.userEmail,
			ClubID:    meta.clubID,
			Status:    membership.StatusActive,
			PaymentID: sess.PaymentIntentID,
			JoinedAt:  now,
			ExpiresAt: &expires,
		}, p)
	case TypeEvent:
		p.EventID = &meta.eventID
		created, err = s.repo.ReconcileEvent(ctx, &event.Registration{
			ID:           uuid.New(),
			UserEmail:    meta.userEmail,
			EventID:      meta.eventID,
			ClubID:       meta.clubID,
			Status:       event.StatusRegistered,
			PaymentID:    sess.PaymentIntentID,
			RegisteredAt: now,
		}, p)
	}
	if err != nil {
		return nil, err
	}

	if !created {
		metrics.RecordReconciliation(meta.kind, "duplicate")
		return &ReconcileResponse{Message: "already processed", AlreadyProcessed: true, Type: meta.kind}, nil
	}

	s.afterReconcile(ctx, p)

	msg := "Payment successful! Membership activated."
	if meta.kind == TypeEvent {
		msg = "Payment successful! You are registered for the event."
	}
	return &ReconcileResponse{Message: msg, Type: meta.kind, Payment: p}, nil
}

func (s *service) ListForMember(ctx context.Context, email string) ([]MemberPayment, error) {
	return s.repo.ListForMember(ctx, email)
}

// afterReconcile runs the side effects of a committed reconciliation. None of
// them can fail the request.
func (s *service) afterReconcile(ctx context.Context, p *Payment) {
	metrics.RecordReconciliation(p.Type, "reconciled")
	if p.Type == TypeMembership {
		metrics.RecordMembership("paid")
	} else {
		metrics.RecordEventRegistration("paid")
	}

	details := map[string]string{
		"type":    p.Type,
		"amount":  formatAmount(p.Amount),
		"club_id": p.ClubID.String(),
	}
	if p.EventID != nil {
		details["event_id"] = p.EventID.String()
	}
	s.audit.PaymentReconciled(ctx, p.UserEmail, p.TransactionID, details)

	if s.notifier != nil {
		desc := "Club membership"
		if p.Type == TypeEvent {
			desc = "Event registration"
		}
		if err := s.notifier.SendPaymentReceipt(ctx, p.UserEmail, p.Amount, s.config.Currency, desc, p.TransactionID); err != nil {
			logger.Warn("payment receipt not queued", "error", err, "transaction_id", p.TransactionID)
		}
	}

	evt := queue.PaymentReconciled{
		Type:            p.Type,
		UserEmail:       p.UserEmail,
		ClubID:          p.ClubID.String(),
		Amount:          p.Amount,
		TransactionID:   p.TransactionID,
		PaymentIntentID: p.StripePaymentIntentID,
		ReconciledAt:    p.CreatedAt,
	}
	if p.EventID != nil {
		evt.EventID = p.EventID.String()
	}
	if err := s.publisher.Publish(ctx, queue.TopicPaymentReconciled, evt); err != nil {
		logger.Warn("payment event not published", "error", err, "transaction_id", p.TransactionID)
	}
}

func (s *service) reject(ctx context.Context, kind, sessionID, reason string) {
	if kind == "" {
		kind = "unknown"
	}
	metrics.RecordReconciliation(kind, "rejected")
	s.audit.PaymentRejected(ctx, sessionID, reason)
}

type sessionMetadata struct {
	kind      string
	userEmail string
	amount    float64
	clubID    uuid.UUID
	eventID   uuid.UUID
}

func parseMetadata(md map[string]string) (*sessionMetadata, error) {
	meta := &sessionMetadata{
		kind:      md[metaType],
		userEmail: md[metaUserEmail],
	}
	if meta.kind != TypeMembership && meta.kind != TypeEvent {
		return nil, fmt.Errorf("%w: unknown type %q", ErrBadMetadata, meta.kind)
	}
	if meta.userEmail == "" {
		return nil, fmt.Errorf("%w: missing user email", ErrBadMetadata)
	}

	amount, err := strconv.ParseFloat(md[metaAmount], 64)
	if err != nil || amount < 0 {
		return nil, fmt.Errorf("%w: bad amount", ErrBadMetadata)
	}
	meta.amount = amount

	if meta.clubID, err = uuid.Parse(md[metaClubID]); err != nil {
		return nil, fmt.Errorf("%w: bad club id", ErrBadMetadata)
	}
	if meta.kind == TypeEvent {
		if meta.eventID, err = uuid.Parse(md[metaEventID]); err != nil {
			return nil, fmt.Errorf("%w: bad event id", ErrBadMetadata)
		}
	}
	return meta, nil
}

func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
