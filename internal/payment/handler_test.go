package payment

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"clubsphere/internal/auth"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) CreateMembershipCheckout(ctx context.Context, principal string, req MembershipCheckoutRequest) (*CheckoutResponse, error) {
	args := m.Called(ctx, principal, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*CheckoutResponse), args.Error(1)
}

func (m *MockService) CreateEventCheckout(ctx context.Context, principal string, req EventCheckoutRequest) (*CheckoutResponse, error) {
	args := m.Called(ctx, principal, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*CheckoutResponse), args.Error(1)
}

func (m *MockService) Reconcile(ctx context.Context, sessionID string) (*ReconcileResponse, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ReconcileResponse), args.Error(1)
}

func (m *MockService) ListForMember(ctx context.Context, email string) ([]MemberPayment, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]MemberPayment), args.Error(1)
}

func setupRouter(svc Service, email string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) { auth.SetEmail(c, email) })

	h := NewHandler(svc)
	router.POST("/payment/create-checkout-session", h.CreateMembershipCheckout)
	router.POST("/event-payment/create-checkout-session", h.CreateEventCheckout)
	router.GET("/payment/success", h.Success)
	router.GET("/event-payment/success", h.Success)
	router.GET("/member/payments", h.ListForMember)
	return router
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandler_CreateMembershipCheckout(t *testing.T) {
	clubID := uuid.New().String()
	body := `{"clubId":"` + clubID + `","userEmail":"u@example.com"}`
	req := MembershipCheckoutRequest{ClubID: clubID, UserEmail: "u@example.com"}

	tests := []struct {
		name     string
		svcErr   error
		wantCode int
		wantMsg  string
	}{
		{"created", nil, http.StatusOK, `"url":"https://checkout/cs_1"`},
		{"email mismatch", ErrEmailMismatch, http.StatusForbidden, "Forbidden access: email mismatch."},
		{"unapproved club", ErrClubNotFound, http.StatusNotFound, "Club not found or not approved."},
		{"free club", ErrFreeClub, http.StatusBadRequest, "This club is free to join. No payment needed."},
		{"already member", ErrAlreadyMember, http.StatusBadRequest, "You are already a member of this club."},
		{"provider down", ErrProvider, http.StatusInternalServerError, "Failed to create checkout session."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			if tt.svcErr != nil {
				svc.On("CreateMembershipCheckout", mock.Anything, "u@example.com", req).Return(nil, tt.svcErr)
			} else {
				svc.On("CreateMembershipCheckout", mock.Anything, "u@example.com", req).
					Return(&CheckoutResponse{URL: "https://checkout/cs_1", SessionID: "cs_1"}, nil)
			}

			w := doJSON(setupRouter(svc, "u@example.com"), http.MethodPost, "/payment/create-checkout-session", body)
			assert.Equal(t, tt.wantCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantMsg)
		})
	}

	t.Run("missing fields", func(t *testing.T) {
		svc := new(MockService)
		w := doJSON(setupRouter(svc, "u@example.com"), http.MethodPost, "/payment/create-checkout-session", `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Club ID and user email are required.")
		svc.AssertNotCalled(t, "CreateMembershipCheckout", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestHandler_CreateEventCheckout(t *testing.T) {
	eventID := uuid.New().String()
	body := `{"eventId":"` + eventID + `","userEmail":"u@example.com"}`
	req := EventCheckoutRequest{EventID: eventID, UserEmail: "u@example.com"}

	tests := []struct {
		name     string
		svcErr   error
		wantCode int
		wantMsg  string
	}{
		{"full", ErrEventFull, http.StatusBadRequest, "This event is full."},
		{"free", ErrFreeEvent, http.StatusBadRequest, "This event is free. No payment needed."},
		{"registered", ErrAlreadyRegistered, http.StatusBadRequest, "You are already registered for this event."},
		{"missing", ErrEventNotFound, http.StatusNotFound, "Event not found."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			svc.On("CreateEventCheckout", mock.Anything, "u@example.com", req).Return(nil, tt.svcErr)

			w := doJSON(setupRouter(svc, "u@example.com"), http.MethodPost, "/event-payment/create-checkout-session", body)
			assert.Equal(t, tt.wantCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantMsg)
		})
	}
}

func TestHandler_Success(t *testing.T) {
	t.Run("reconciled", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Reconcile", mock.Anything, "cs_1").Return(&ReconcileResponse{
			Message: "Payment successful! Membership activated.",
			Type:    TypeMembership,
		}, nil)

		w := doJSON(setupRouter(svc, ""), http.MethodGet, "/payment/success?session_id=cs_1", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Payment successful! Membership activated.","alreadyProcessed":false,"type":"membership"}`, w.Body.String())
	})

	t.Run("replay", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Reconcile", mock.Anything, "cs_2").Return(&ReconcileResponse{
			Message: "already processed", AlreadyProcessed: true, Type: TypeEvent,
		}, nil)

		w := doJSON(setupRouter(svc, ""), http.MethodGet, "/event-payment/success?session_id=cs_2", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"alreadyProcessed":true`)
	})

	t.Run("missing session", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Reconcile", mock.Anything, "").Return(nil, ErrMissingSession)

		w := doJSON(setupRouter(svc, ""), http.MethodGet, "/payment/success", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Session ID is required.")
	})

	t.Run("unpaid", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Reconcile", mock.Anything, "cs_3").Return(nil, ErrNotPaid)

		w := doJSON(setupRouter(svc, ""), http.MethodGet, "/payment/success?session_id=cs_3", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Payment not completed.")
	})

	t.Run("store failure", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Reconcile", mock.Anything, "cs_4").Return(nil, errors.New("db"))

		w := doJSON(setupRouter(svc, ""), http.MethodGet, "/payment/success?session_id=cs_4", "")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Failed to verify payment.")
	})
}

func TestHandler_ListForMember(t *testing.T) {
	svc := new(MockService)
	svc.On("ListForMember", mock.Anything, "u@example.com").
		Return([]MemberPayment{{Payment: Payment{Amount: 20, Type: TypeMembership}, ClubName: "Chess Club"}}, nil)

	w := doJSON(setupRouter(svc, "u@example.com"), http.MethodGet, "/member/payments", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"clubName":"Chess Club"`)
	assert.Contains(t, w.Body.String(), `"amount":20`)
}
