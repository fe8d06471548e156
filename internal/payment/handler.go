package payment

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"clubsphere/internal/api"
	"clubsphere/internal/auth"
	"clubsphere/internal/logger"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// @Summary      Start membership checkout
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body payment.MembershipCheckoutRequest true "Club and payer"
// @Success      200 {object} payment.CheckoutResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /payment/create-checkout-session [post]
func (h *Handler) CreateMembershipCheckout(c *gin.Context) {
	email, _ := auth.GetEmail(c)

	var req MembershipCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BindFailed(c, "Club ID and user email are required.", err)
		return
	}

	resp, err := h.service.CreateMembershipCheckout(c.Request.Context(), email, req)
	if err != nil {
		h.writeError(c, err, "membership checkout failed", "Failed to create checkout session.")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary      Start event checkout
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body payment.EventCheckoutRequest true "Event and payer"
// @Success      200 {object} payment.CheckoutResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /event-payment/create-checkout-session [post]
func (h *Handler) CreateEventCheckout(c *gin.Context) {
	email, _ := auth.GetEmail(c)

	var req EventCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BindFailed(c, "Event ID and user email are required.", err)
		return
	}

	resp, err := h.service.CreateEventCheckout(c.Request.Context(), email, req)
	if err != nil {
		h.writeError(c, err, "event checkout failed", "Failed to create checkout session.")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary      Confirm checkout
// @Description  Reconciles a paid checkout session. Safe to call repeatedly.
// @Tags         payments
// @Produce      json
// @Param        session_id query string true "Checkout session ID"
// @Success      200 {object} payment.ReconcileResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /payment/success [get]
// @Router       /event-payment/success [get]
func (h *Handler) Success(c *gin.Context) {
	sessionID := c.Query("session_id")

	resp, err := h.service.Reconcile(c.Request.Context(), sessionID)
	if err != nil {
		h.writeError(c, err, "payment reconciliation failed", "Failed to verify payment.")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary      My payments
// @Tags         member,payments
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} payment.MemberPayment
// @Failure      403 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /member/payments [get]
func (h *Handler) ListForMember(c *gin.Context) {
	email, _ := auth.GetEmail(c)

	payments, err := h.service.ListForMember(c.Request.Context(), email)
	if err != nil {
		logger.Error("payment history failed", "error", err, "email", email)
		api.Internal(c, "Failed to fetch payment history.")
		return
	}
	c.JSON(http.StatusOK, payments)
}

func (h *Handler) writeError(c *gin.Context, err error, logMsg, internalMsg string) {
	switch {
	case errors.Is(err, ErrEmailMismatch):
		api.Fail(c, http.StatusForbidden, "Forbidden access: email mismatch.")
	case errors.Is(err, ErrClubNotFound):
		api.NotFound(c, "Club not found or not approved.")
	case errors.Is(err, ErrEventNotFound):
		api.NotFound(c, "Event not found.")
	case errors.Is(err, ErrFreeClub):
		api.BadRequest(c, "This club is free to join. No payment needed.")
	case errors.Is(err, ErrFreeEvent):
		api.BadRequest(c, "This event is free. No payment needed.")
	case errors.Is(err, ErrAlreadyMember):
		api.BadRequest(c, "You are already a member of this club.")
	case errors.Is(err, ErrAlreadyRegistered):
		api.BadRequest(c, "You are already registered for this event.")
	case errors.Is(err, ErrEventFull):
		api.BadRequest(c, "This event is full.")
	case errors.Is(err, ErrMissingSession):
		api.BadRequest(c, "Session ID is required.")
	case errors.Is(err, ErrNotPaid):
		api.BadRequest(c, "Payment not completed.")
	case errors.Is(err, ErrBadMetadata):
		api.BadRequest(c, "Invalid payment session.")
	default:
		logger.Error(logMsg, "error", err)
		api.Internal(c, internalMsg)
	}
}
