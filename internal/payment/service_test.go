package payment

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"clubsphere/internal/event"
	"clubsphere/internal/membership"
	"clubsphere/internal/queue"
)

type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*CheckoutSession), args.Error(1)
}

func (m *MockProvider) GetCheckoutSession(ctx context.Context, sessionID string) (*CheckoutSession, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*CheckoutSession), args.Error(1)
}

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ReconcileMembership(ctx context.Context, ms *membership.Membership, p *Payment) (bool, error) {
	args := m.Called(ctx, ms, p)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) ReconcileEvent(ctx context.Context, r *event.Registration, p *Payment) (bool, error) {
	args := m.Called(ctx, r, p)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) ListForMember(ctx context.Context, email string) ([]MemberPayment, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]MemberPayment), args.Error(1)
}

type MockMemberships struct {
	mock.Mock
}

func (m *MockMemberships) GetApprovedClub(ctx context.Context, clubID uuid.UUID) (*membership.ClubInfo, error) {
	args := m.Called(ctx, clubID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*membership.ClubInfo), args.Error(1)
}

func (m *MockMemberships) HasActive(ctx context.Context, email string, clubID uuid.UUID) (bool, error) {
	args := m.Called(ctx, email, clubID)
	return args.Bool(0), args.Error(1)
}

type MockEvents struct {
	mock.Mock
}

func (m *MockEvents) Get(ctx context.Context, id uuid.UUID) (*event.EventWithCount, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*event.EventWithCount), args.Error(1)
}

func (m *MockEvents) IsRegistered(ctx context.Context, email string, eventID uuid.UUID) (bool, error) {
	args := m.Called(ctx, email, eventID)
	return args.Bool(0), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) SendPaymentReceipt(ctx context.Context, to string, amount float64, currency, description, transactionID string) error {
	return m.Called(ctx, to, amount, currency, description, transactionID).Error(0)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, topic string, evt interface{}) error {
	return m.Called(ctx, topic, evt).Error(0)
}

type fixture struct {
	provider    *MockProvider
	repo        *MockRepository
	memberships *MockMemberships
	events      *MockEvents
	notifier    *MockNotifier
	publisher   *MockPublisher
	svc         Service
}

func newFixture() *fixture {
	f := &fixture{
		provider:    new(MockProvider),
		repo:        new(MockRepository),
		memberships: new(MockMemberships),
		events:      new(MockEvents),
		notifier:    new(MockNotifier),
		publisher:   new(MockPublisher),
	}
	f.svc = NewService(f.provider, f.repo, f.memberships, f.events, f.notifier, f.publisher, nil,
		Config{Currency: "usd", ClientURL: "http://localhost:5173"})
	return f
}

func TestCreateMembershipCheckout(t *testing.T) {
	ctx := context.Background()
	clubID := uuid.New()
	req := MembershipCheckoutRequest{ClubID: clubID.String(), UserEmail: "u@example.com"}

	t.Run("creates session with cents and metadata", func(t *testing.T) {
		f := newFixture()
		f.memberships.On("GetApprovedClub", mock.Anything, clubID).
			Return(&membership.ClubInfo{ID: clubID, ClubName: "Chess Club", MembershipFee: 19.99}, nil)
		f.memberships.On("HasActive", mock.Anything, "u@example.com", clubID).Return(false, nil)
		f.provider.On("CreateCheckoutSession", mock.Anything, mock.MatchedBy(func(r CheckoutRequest) bool {
			return r.AmountCents == 1999 &&
				r.Currency == "usd" &&
				r.Metadata["type"] == TypeMembership &&
				r.Metadata["userEmail"] == "u@example.com" &&
				r.Metadata["amount"] == "19.99" &&
				r.Metadata["clubId"] == clubID.String() &&
				r.SuccessURL == "http://localhost:5173/payment-success?session_id={CHECKOUT_SESSION_ID}"
		})).Return(&CheckoutSession{ID: "cs_1", URL: "https://checkout/cs_1"}, nil)

		resp, err := f.svc.CreateMembershipCheckout(ctx, "u@example.com", req)
		require.NoError(t, err)
		assert.Equal(t, &CheckoutResponse{URL: "https://checkout/cs_1", SessionID: "cs_1"}, resp)
		f.provider.AssertExpectations(t)
	})

	t.Run("email must match caller", func(t *testing.T) {
		f := newFixture()
		_, err := f.svc.CreateMembershipCheckout(ctx, "someone-else@example.com", req)
		assert.ErrorIs(t, err, ErrEmailMismatch)
		f.memberships.AssertNotCalled(t, "GetApprovedClub", mock.Anything, mock.Anything)
	})

	t.Run("free club", func(t *testing.T) {
		f := newFixture()
		f.memberships.On("GetApprovedClub", mock.Anything, clubID).
			Return(&membership.ClubInfo{ID: clubID}, nil)

		_, err := f.svc.CreateMembershipCheckout(ctx, "u@example.com", req)
		assert.ErrorIs(t, err, ErrFreeClub)
	})

	t.Run("already member", func(t *testing.T) {
		f := newFixture()
		f.memberships.On("GetApprovedClub", mock.Anything, clubID).
			Return(&membership.ClubInfo{ID: clubID, MembershipFee: 5}, nil)
		f.memberships.On("HasActive", mock.Anything, "u@example.com", clubID).Return(true, nil)

		_, err := f.svc.CreateMembershipCheckout(ctx, "u@example.com", req)
		assert.ErrorIs(t, err, ErrAlreadyMember)
		f.provider.AssertNotCalled(t, "CreateCheckoutSession", mock.Anything, mock.Anything)
	})

	t.Run("unapproved club", func(t *testing.T) {
		f := newFixture()
		f.memberships.On("GetApprovedClub", mock.Anything, clubID).Return(nil, membership.ErrClubNotFound)

		_, err := f.svc.CreateMembershipCheckout(ctx, "u@example.com", req)
		assert.ErrorIs(t, err, ErrClubNotFound)
	})
}

func TestCreateEventCheckout(t *testing.T) {
	ctx := context.Background()
	eventID, clubID := uuid.New(), uuid.New()
	req := EventCheckoutRequest{EventID: eventID.String(), UserEmail: "u@example.com"}

	t.Run("paid event", func(t *testing.T) {
		f := newFixture()
		f.events.On("Get", mock.Anything, eventID).Return(&event.EventWithCount{Event: event.Event{
			ID: eventID, ClubID: clubID, Title: "Blitz Night", IsPaid: true, EventFee: 10,
		}}, nil)
		f.events.On("IsRegistered", mock.Anything, "u@example.com", eventID).Return(false, nil)
		f.provider.On("CreateCheckoutSession", mock.Anything, mock.MatchedBy(func(r CheckoutRequest) bool {
			return r.AmountCents == 1000 &&
				r.Metadata["type"] == TypeEvent &&
				r.Metadata["eventId"] == eventID.String() &&
				r.Metadata["clubId"] == clubID.String()
		})).Return(&CheckoutSession{ID: "cs_2", URL: "https://checkout/cs_2"}, nil)

		resp, err := f.svc.CreateEventCheckout(ctx, "u@example.com", req)
		require.NoError(t, err)
		assert.Equal(t, "cs_2", resp.SessionID)
	})

	t.Run("free event", func(t *testing.T) {
		f := newFixture()
		f.events.On("Get", mock.Anything, eventID).Return(&event.EventWithCount{Event: event.Event{ID: eventID}}, nil)

		_, err := f.svc.CreateEventCheckout(ctx, "u@example.com", req)
		assert.ErrorIs(t, err, ErrFreeEvent)
	})

	t.Run("provider failure", func(t *testing.T) {
		f := newFixture()
		f.events.On("Get", mock.Anything, eventID).Return(&event.EventWithCount{Event: event.Event{
			ID: eventID, ClubID: clubID, IsPaid: true, EventFee: 10,
		}}, nil)
		f.events.On("IsRegistered", mock.Anything, "u@example.com", eventID).Return(false, nil)
		f.provider.On("CreateCheckoutSession", mock.Anything, mock.Anything).Return(nil, errors.New("card_declined"))

		_, err := f.svc.CreateEventCheckout(ctx, "u@example.com", req)
		assert.ErrorIs(t, err, ErrProvider)
	})
}

func TestReconcile(t *testing.T) {
	ctx := context.Background()
	clubID, eventID := uuid.New(), uuid.New()

	membershipSession := &CheckoutSession{
		ID:              "cs_1",
		PaymentStatus:   "paid",
		PaymentIntentID: "pi_1",
		Metadata: map[string]string{
			"type": TypeMembership, "userEmail": "u@example.com", "amount": "20", "clubId": clubID.String(),
		},
	}

	t.Run("missing session id", func(t *testing.T) {
		f := newFixture()
		_, err := f.svc.Reconcile(ctx, "")
		assert.ErrorIs(t, err, ErrMissingSession)
	})

	t.Run("membership is activated for thirty days", func(t *testing.T) {
		f := newFixture()
		f.provider.On("GetCheckoutSession", mock.Anything, "cs_1").Return(membershipSession, nil)
		f.repo.On("ReconcileMembership", mock.Anything,
			mock.MatchedBy(func(m *membership.Membership) bool {
				return m.ClubID == clubID && m.PaymentID == "pi_1" && m.ExpiresAt != nil &&
					m.ExpiresAt.Sub(m.JoinedAt) == membership.PaidTerm
			}),
			mock.MatchedBy(func(p *Payment) bool {
				return p.TransactionID == "cs_1" && p.Amount == 20 && p.Type == TypeMembership && p.EventID == nil
			}),
		).Return(true, nil)
		f.notifier.On("SendPaymentReceipt", mock.Anything, "u@example.com", 20.0, "usd", "Club membership", "cs_1").Return(nil)
		f.publisher.On("Publish", mock.Anything, queue.TopicPaymentReconciled, mock.AnythingOfType("queue.PaymentReconciled")).
			Return(errors.New("broker down"))

		resp, err := f.svc.Reconcile(ctx, "cs_1")
		require.NoError(t, err)
		assert.False(t, resp.AlreadyProcessed)
		assert.Equal(t, TypeMembership, resp.Type)
		require.NotNil(t, resp.Payment)
		f.notifier.AssertExpectations(t)
		f.publisher.AssertExpectations(t)
	})

	t.Run("replay is idempotent", func(t *testing.T) {
		f := newFixture()
		f.provider.On("GetCheckoutSession", mock.Anything, "cs_1").Return(membershipSession, nil)
		f.repo.On("ReconcileMembership", mock.Anything, mock.Anything, mock.Anything).Return(false, nil)

		resp, err := f.svc.Reconcile(ctx, "cs_1")
		require.NoError(t, err)
		assert.Equal(t, &ReconcileResponse{Message: "already processed", AlreadyProcessed: true, Type: TypeMembership}, resp)
		f.notifier.AssertNotCalled(t, "SendPaymentReceipt", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		f.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("paid event records registration and ledger row", func(t *testing.T) {
		f := newFixture()
		f.provider.On("GetCheckoutSession", mock.Anything, "cs_2").Return(&CheckoutSession{
			ID:              "cs_2",
			PaymentStatus:   "paid",
			PaymentIntentID: "pi_2",
			Metadata: map[string]string{
				"type": TypeEvent, "userEmail": "u@example.com", "amount": "10",
				"clubId": clubID.String(), "eventId": eventID.String(),
			},
		}, nil)
		f.repo.On("ReconcileEvent", mock.Anything,
			mock.MatchedBy(func(r *event.Registration) bool {
				return r.EventID == eventID && r.ClubID == clubID && r.PaymentID == "pi_2"
			}),
			mock.MatchedBy(func(p *Payment) bool {
				return p.Amount == 10 && p.EventID != nil && *p.EventID == eventID
			}),
		).Return(true, nil)
		f.notifier.On("SendPaymentReceipt", mock.Anything, "u@example.com", 10.0, "usd", "Event registration", "cs_2").Return(nil)
		f.publisher.On("Publish", mock.Anything, queue.TopicPaymentReconciled, mock.MatchedBy(func(e queue.PaymentReconciled) bool {
			return e.EventID == eventID.String() && e.Amount == 10
		})).Return(nil)

		resp, err := f.svc.Reconcile(ctx, "cs_2")
		require.NoError(t, err)
		assert.Equal(t, TypeEvent, resp.Type)
		f.repo.AssertExpectations(t)
	})

	t.Run("unpaid session", func(t *testing.T) {
		f := newFixture()
		f.provider.On("GetCheckoutSession", mock.Anything, "cs_3").
			Return(&CheckoutSession{ID: "cs_3", PaymentStatus: "unpaid"}, nil)

		_, err := f.svc.Reconcile(ctx, "cs_3")
		assert.ErrorIs(t, err, ErrNotPaid)
		f.repo.AssertNotCalled(t, "ReconcileMembership", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown type", func(t *testing.T) {
		f := newFixture()
		f.provider.On("GetCheckoutSession", mock.Anything, "cs_4").Return(&CheckoutSession{
			ID: "cs_4", PaymentStatus: "paid", Metadata: map[string]string{"type": "donation"},
		}, nil)

		_, err := f.svc.Reconcile(ctx, "cs_4")
		assert.ErrorIs(t, err, ErrBadMetadata)
	})

	t.Run("provider error", func(t *testing.T) {
		f := newFixture()
		f.provider.On("GetCheckoutSession", mock.Anything, "cs_5").Return(nil, errors.New("timeout"))

		_, err := f.svc.Reconcile(ctx, "cs_5")
		assert.ErrorIs(t, err, ErrProvider)
	})
}

func TestParseMetadata(t *testing.T) {
	clubID := uuid.New()
	tests := []struct {
		name string
		md   map[string]string
		ok   bool
	}{
		{"membership", map[string]string{"type": "membership", "userEmail": "u@x.com", "amount": "5", "clubId": clubID.String()}, true},
		{"event without event id", map[string]string{"type": "event", "userEmail": "u@x.com", "amount": "5", "clubId": clubID.String()}, false},
		{"bad amount", map[string]string{"type": "membership", "userEmail": "u@x.com", "amount": "five", "clubId": clubID.String()}, false},
		{"missing email", map[string]string{"type": "membership", "amount": "5", "clubId": clubID.String()}, false},
		{"bad club", map[string]string{"type": "membership", "userEmail": "u@x.com", "amount": "5", "clubId": "x"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseMetadata(tt.md)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrBadMetadata)
			}
		})
	}
}

func TestToCents(t *testing.T) {
	assert.Equal(t, int64(1999), toCents(19.99))
	assert.Equal(t, int64(1000), toCents(10))
	assert.Equal(t, int64(5), toCents(0.05))
}
