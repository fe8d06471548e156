package event

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"clubsphere/internal/policy"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, e *Event) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockRepository) Get(ctx context.Context, id uuid.UUID) (*EventWithCount, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*EventWithCount), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, e *Event) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) ListByManager(ctx context.Context, managerEmail string) ([]EventWithCount, error) {
	args := m.Called(ctx, managerEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]EventWithCount), args.Error(1)
}

func (m *MockRepository) ListPublic(ctx context.Context, f ListFilter) ([]EventWithCount, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]EventWithCount), args.Error(1)
}

func (m *MockRepository) ClubsByID(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]ClubSummary, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]ClubSummary), args.Error(1)
}

func (m *MockRepository) ListRegistrations(ctx context.Context, eventID uuid.UUID) ([]RegistrationWithUser, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]RegistrationWithUser), args.Error(1)
}

func (m *MockRepository) IsRegistered(ctx context.Context, email string, eventID uuid.UUID) (bool, error) {
	args := m.Called(ctx, email, eventID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) RegisterFree(ctx context.Context, r *Registration) (bool, error) {
	args := m.Called(ctx, r)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) ListForMember(ctx context.Context, email string) ([]MemberEvent, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]MemberEvent), args.Error(1)
}

type MockOwnership struct {
	mock.Mock
}

func (m *MockOwnership) ClubOwnedBy(ctx context.Context, clubID uuid.UUID, email string) (*policy.ClubRef, error) {
	args := m.Called(ctx, clubID, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*policy.ClubRef), args.Error(1)
}

func (m *MockOwnership) EventOwnedBy(ctx context.Context, eventID uuid.UUID, email string) (*policy.ClubRef, error) {
	args := m.Called(ctx, eventID, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*policy.ClubRef), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) SendEventRegistration(ctx context.Context, to, title string, when time.Time, location string) error {
	return m.Called(ctx, to, title, when, location).Error(0)
}

func createRequest(clubID uuid.UUID) CreateEventRequest {
	return CreateEventRequest{
		ClubID:      clubID.String(),
		Title:       "Blitz Night",
		Description: "Fast games",
		EventDate:   time.Date(2030, 1, 2, 18, 0, 0, 0, time.UTC),
		Location:    "Hall A",
		BannerImage: "https://img/banner.png",
	}
}

func TestCreate_Service(t *testing.T) {
	clubID := uuid.New()

	t.Run("free event forces fee to zero", func(t *testing.T) {
		repo, owners := new(MockRepository), new(MockOwnership)
		svc := NewService(repo, owners, nil)

		owners.On("ClubOwnedBy", mock.Anything, clubID, "m@example.com").
			Return(&policy.ClubRef{ID: clubID, ClubName: "Chess Club", Status: "approved"}, nil)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(e *Event) bool {
			return e.ClubName == "Chess Club" && !e.IsPaid && e.EventFee == 0 &&
				e.MaxAttendees != nil && *e.MaxAttendees == 30
		})).Return(nil)

		req := createRequest(clubID)
		req.EventFee = 12
		req.MaxAttendees = json.RawMessage(`"30"`)

		e, err := svc.Create(context.Background(), "m@example.com", req)
		require.NoError(t, err)
		assert.Equal(t, 0.0, e.EventFee)
		repo.AssertExpectations(t)
	})

	t.Run("non-numeric capacity means no limit", func(t *testing.T) {
		repo, owners := new(MockRepository), new(MockOwnership)
		svc := NewService(repo, owners, nil)

		owners.On("ClubOwnedBy", mock.Anything, clubID, "m@example.com").
			Return(&policy.ClubRef{ID: clubID, ClubName: "Chess Club", Status: "approved"}, nil)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(e *Event) bool {
			return e.MaxAttendees == nil
		})).Return(nil)

		req := createRequest(clubID)
		req.MaxAttendees = json.RawMessage(`"12abc"`)

		e, err := svc.Create(context.Background(), "m@example.com", req)
		require.NoError(t, err)
		assert.Nil(t, e.MaxAttendees)
		repo.AssertExpectations(t)
	})

	t.Run("paid event without fee", func(t *testing.T) {
		repo, owners := new(MockRepository), new(MockOwnership)
		svc := NewService(repo, owners, nil)

		owners.On("ClubOwnedBy", mock.Anything, clubID, "m@example.com").
			Return(&policy.ClubRef{ID: clubID, Status: "approved"}, nil)

		req := createRequest(clubID)
		req.IsPaid = true

		_, err := svc.Create(context.Background(), "m@example.com", req)
		assert.ErrorIs(t, err, ErrFeeRequired)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("club not owned", func(t *testing.T) {
		repo, owners := new(MockRepository), new(MockOwnership)
		svc := NewService(repo, owners, nil)

		owners.On("ClubOwnedBy", mock.Anything, clubID, "x@example.com").Return(nil, policy.ErrNotOwned)

		_, err := svc.Create(context.Background(), "x@example.com", createRequest(clubID))
		assert.ErrorIs(t, err, ErrClubNotFound)
	})

	t.Run("club pending", func(t *testing.T) {
		repo, owners := new(MockRepository), new(MockOwnership)
		svc := NewService(repo, owners, nil)

		owners.On("ClubOwnedBy", mock.Anything, clubID, "m@example.com").
			Return(&policy.ClubRef{ID: clubID, Status: "pending"}, nil)

		_, err := svc.Create(context.Background(), "m@example.com", createRequest(clubID))
		assert.ErrorIs(t, err, ErrClubNotApproved)
	})
}

func TestParseCapacity(t *testing.T) {
	tests := []struct {
		raw  string
		want *int
	}{
		{``, nil},
		{`null`, nil},
		{`""`, nil},
		{`25`, intPtr(25)},
		{`"25"`, intPtr(25)},
		{`0`, nil},
		{`-3`, nil},
		{`"lots"`, nil},
		{`2.5`, nil},
		{`12.5`, nil},
		{`"12abc"`, nil},
		{`true`, nil},
		{`{"max":5}`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, parseCapacity(json.RawMessage(tt.raw)))
		})
	}
}

func intPtr(n int) *int { return &n }

func TestUpdate_Service(t *testing.T) {
	id := uuid.New()
	current := &EventWithCount{Event: Event{ID: id, Title: "Old", IsPaid: true, EventFee: 10}}

	t.Run("switching to free clears fee", func(t *testing.T) {
		repo, owners := new(MockRepository), new(MockOwnership)
		svc := NewService(repo, owners, nil)

		owners.On("EventOwnedBy", mock.Anything, id, "m@example.com").Return(&policy.ClubRef{}, nil)
		repo.On("Get", mock.Anything, id).Return(current, nil)
		repo.On("Update", mock.Anything, mock.MatchedBy(func(e *Event) bool {
			return !e.IsPaid && e.EventFee == 0 && e.Title == "New"
		})).Return(nil)

		isPaid := false
		title := "New"
		e, err := svc.Update(context.Background(), id, "m@example.com", UpdateEventRequest{IsPaid: &isPaid, Title: &title})
		require.NoError(t, err)
		assert.Equal(t, "New", e.Title)
		assert.Equal(t, "Old", current.Title)
	})

	t.Run("other manager", func(t *testing.T) {
		repo, owners := new(MockRepository), new(MockOwnership)
		svc := NewService(repo, owners, nil)

		owners.On("EventOwnedBy", mock.Anything, id, "x@example.com").Return(nil, policy.ErrNotOwned)

		title := "Mine"
		_, err := svc.Update(context.Background(), id, "x@example.com", UpdateEventRequest{Title: &title})
		assert.ErrorIs(t, err, ErrEventNotFound)
		repo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})
}

func TestDelete_Service(t *testing.T) {
	id := uuid.New()
	repo, owners := new(MockRepository), new(MockOwnership)
	svc := NewService(repo, owners, nil)

	owners.On("EventOwnedBy", mock.Anything, id, "m@example.com").Return(&policy.ClubRef{}, nil)
	repo.On("Delete", mock.Anything, id).Return(true, nil)

	assert.NoError(t, svc.Delete(context.Background(), id, "m@example.com"))
}

func TestList_Service(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, new(MockOwnership), nil)

	clubA, clubB := uuid.New(), uuid.New()
	events := []EventWithCount{
		{Event: Event{Title: "One", ClubID: clubA}},
		{Event: Event{Title: "Two", ClubID: clubB}},
		{Event: Event{Title: "Three", ClubID: clubA}},
	}

	repo.On("ListPublic", mock.Anything, ListFilter{}).Return(events, nil)
	repo.On("ClubsByID", mock.Anything, []uuid.UUID{clubA, clubB}).
		Return(map[uuid.UUID]ClubSummary{clubA: {ID: clubA, ClubName: "Chess Club", Category: "Games"}}, nil)

	out, err := svc.List(context.Background(), ListFilter{})
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "Games", out[0].Club.Category)
	assert.Nil(t, out[1].Club)
	assert.Equal(t, "Chess Club", out[2].Club.ClubName)
}

func TestRegisterFree_Service(t *testing.T) {
	eventID, clubID := uuid.New(), uuid.New()
	ctx := context.Background()

	t.Run("registers", func(t *testing.T) {
		repo := new(MockRepository)
		notifier := new(MockNotifier)
		svc := NewService(repo, new(MockOwnership), notifier)

		e := &EventWithCount{Event: Event{ID: eventID, ClubID: clubID, Title: "Blitz Night", Location: "Hall A"}}
		repo.On("Get", mock.Anything, eventID).Return(e, nil)
		repo.On("RegisterFree", mock.Anything, mock.MatchedBy(func(r *Registration) bool {
			return r.ClubID == clubID && r.PaymentID == FreeRegistrationPaymentID && r.Status == StatusRegistered
		})).Return(true, nil)
		notifier.On("SendEventRegistration", mock.Anything, "u@example.com", "Blitz Night", e.EventDate, "Hall A").Return(nil)

		reg, err := svc.RegisterFree(ctx, "u@example.com", eventID)
		require.NoError(t, err)
		assert.Equal(t, eventID, reg.EventID)
		notifier.AssertExpectations(t)
	})

	t.Run("paid event rejected", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, new(MockOwnership), nil)

		repo.On("Get", mock.Anything, eventID).
			Return(&EventWithCount{Event: Event{ID: eventID, IsPaid: true, EventFee: 10}}, nil)

		_, err := svc.RegisterFree(ctx, "u@example.com", eventID)
		assert.ErrorIs(t, err, ErrPaidEvent)
		repo.AssertNotCalled(t, "RegisterFree", mock.Anything, mock.Anything)
	})

	t.Run("full", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, new(MockOwnership), nil)

		repo.On("Get", mock.Anything, eventID).
			Return(&EventWithCount{Event: Event{ID: eventID, MaxAttendees: intPtr(2)}, RegistrationCount: 2}, nil)

		_, err := svc.RegisterFree(ctx, "u@example.com", eventID)
		assert.ErrorIs(t, err, ErrEventFull)
	})

	t.Run("duplicate", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, new(MockOwnership), nil)

		repo.On("Get", mock.Anything, eventID).Return(&EventWithCount{Event: Event{ID: eventID}}, nil)
		repo.On("RegisterFree", mock.Anything, mock.Anything).Return(false, nil)

		_, err := svc.RegisterFree(ctx, "u@example.com", eventID)
		assert.ErrorIs(t, err, ErrAlreadyRegistered)
	})
}
