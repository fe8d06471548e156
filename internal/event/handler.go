package event

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

// @Summary      Create event
// @Description  Creates an event for an approved club the caller manages.
// @Tags         manager,events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body event.CreateEventRequest true "Event details"
// @Success      201 {object} event.EventResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /manager/events [post]
func (h *Handler) Create(c *gin.Context) {
	email, _ := auth.GetEmail(c)

	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BindFailed(c, "Please provide all required event information.", err)
		return
	}

	e, err := h.service.Create(c.Request.Context(), email, req)
	if err != nil {
		if !h.writeError(c, err) {
			logger.Error("event creation failed", "error", err, "manager", email)
			api.Internal(c, "Failed to create event.")
		}
		return
	}

	c.JSON(http.StatusCreated, EventResponse{Message: "Event created successfully.", Event: e})
}

// @Summary      Update event
// @Tags         manager,events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        eventId path string true "Event ID"
// @Param        request body event.UpdateEventRequest true "Fields to change"
// @Success      200 {object} event.EventResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /manager/events/{eventId} [patch]
func (h *Handler) Update(c *gin.Context) {
	id, ok := api.ParamID(c, "eventId", "event")
	if !ok {
		return
	}
	email, _ := auth.GetEmail(c)

	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BindFailed(c, "Invalid event update data.", err)
		return
	}

	e, err := h.service.Update(c.Request.Context(), id, email, req)
	if err != nil {
		if !h.writeError(c, err) {
			logger.Error("event update failed", "error", err, "event_id", id)
			api.Internal(c, "Failed to update event.")
		}
		return
	}

	c.JSON(http.StatusOK, EventResponse{Message: "Event updated successfully.", Event: e})
}

// @Summary      Delete event
// @Description  Deletes the event together with its registrations.
// @Tags         manager,events
// @Produce      json
// @Security     BearerAuth
// @Param        eventId path string true "Event ID"
// @Success      200 {object} api.MessageResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /manager/events/{eventId} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, ok := api.ParamID(c, "eventId", "event")
	if !ok {
		return
	}
	email, _ := auth.GetEmail(c)

	if err := h.service.Delete(c.Request.Context(), id, email); err != nil {
		if !h.writeError(c, err) {
			logger.Error("event delete failed", "error", err, "event_id", id)
			api.Internal(c, "Failed to delete event.")
		}
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Event deleted successfully."})
}

// @Summary      Events of managed clubs
// @Tags         manager,events
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} event.EventWithCount
// @Failure      403 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /manager/events [get]
func (h *Handler) ListForManager(c *gin.Context) {
	email, _ := auth.GetEmail(c)

	events, err := h.service.ListForManager(c.Request.Context(), email)
	if err != nil {
		logger.Error("manager event list failed", "error", err, "manager", email)
		api.Internal(c, "Failed to fetch events.")
		return
	}
	c.JSON(http.StatusOK, events)
}

// @Summary      Event registrations
// @Tags         manager,events
// @Produce      json
// @Security     BearerAuth
// @Param        eventId path string true "Event ID"
// @Success      200 {array} event.RegistrationWithUser
// @Failure      400 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /manager/events/{eventId}/registrations [get]
func (h *Handler) ListRegistrations(c *gin.Context) {
	id, ok := api.ParamID(c, "eventId", "event")
	if !ok {
		return
	}
	email, _ := auth.GetEmail(c)

	regs, err := h.service.ListRegistrations(c.Request.Context(), id, email)
	if err != nil {
		if !h.writeError(c, err) {
			logger.Error("registration list failed", "error", err, "event_id", id)
			api.Internal(c, "Failed to fetch registrations.")
		}
		return
	}
	c.JSON(http.StatusOK, regs)
}

// @Summary      Browse events
// @Tags         events
// @Produce      json
// @Param        search query string false "Case-insensitive title filter"
// @Param        sort   query string false "eventDate, createdAt or eventFee"
// @Param        order  query string false "asc or desc"
// @Success      200 {array} event.PublicEvent
// @Failure      500 {object} api.ErrorResponse
// @Router       /events [get]
func (h *Handler) List(c *gin.Context) {
	filter := ListFilter{
		Search: c.Query("search"),
		Sort:   c.Query("sort"),
		Order:  c.Query("order"),
	}

	events, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		logger.Error("public event list failed", "error", err)
		api.Internal(c, "Failed to fetch events.")
		return
	}
	c.JSON(http.StatusOK, events)
}

// @Summary      Event details
// @Tags         events
// @Produce      json
// @Param        id path string true "Event ID"
// @Success      200 {object} event.PublicEvent
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /events/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, ok := api.ParamID(c, "id", "event")
	if !ok {
		return
	}

	e, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if !h.writeError(c, err) {
			logger.Error("event fetch failed", "error", err, "event_id", id)
			api.Internal(c, "Failed to fetch event.")
		}
		return
	}
	c.JSON(http.StatusOK, e)
}

// @Summary      Register for a free event
// @Tags         member,events
// @Produce      json
// @Security     BearerAuth
// @Param        eventId path string true "Event ID"
// @Success      201 {object} event.RegisterResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /events/register/{eventId} [post]
func (h *Handler) RegisterFree(c *gin.Context) {
	id, ok := api.ParamID(c, "eventId", "event")
	if !ok {
		return
	}
	email, _ := auth.GetEmail(c)

	reg, err := h.service.RegisterFree(c.Request.Context(), email, id)
	if err != nil {
		if !h.writeError(c, err) {
			logger.Error("event registration failed", "error", err, "event_id", id, "email", email)
			api.Internal(c, "Failed to register for event.")
		}
		return
	}

	c.JSON(http.StatusCreated, RegisterResponse{Message: "Successfully registered for the event!", Registration: reg})
}

// @Summary      My event registrations
// @Tags         member,events
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} event.MemberEvent
// @Failure      403 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /member/events [get]
func (h *Handler) ListForMember(c *gin.Context) {
	email, _ := auth.GetEmail(c)

	events, err := h.service.ListForMember(c.Request.Context(), email)
	if err != nil {
		logger.Error("member event list failed", "error", err, "email", email)
		api.Internal(c, "Failed to fetch your events.")
		return
	}
	c.JSON(http.StatusOK, events)
}

// writeError renders the package's sentinel errors and reports whether it did.
func (h *Handler) writeError(c *gin.Context, err error) bool {
	switch {
	case errors.Is(err, ErrEventNotFound):
		api.NotFound(c, "Event not found.")
	case errors.Is(err, ErrClubNotFound):
		api.NotFound(c, "Club not found or you are not its manager.")
	case errors.Is(err, ErrClubNotApproved):
		api.BadRequest(c, "Events can only be created for approved clubs.")
	case errors.Is(err, ErrFeeRequired):
		api.BadRequest(c, "Paid events must have a fee greater than 0.")
	case errors.Is(err, ErrNoFields):
		api.BadRequest(c, "No valid fields provided for update.")
	case errors.Is(err, ErrPaidEvent):
		api.BadRequest(c, "This is a paid event. Please complete payment to register.")
	case errors.Is(err, ErrEventFull):
		api.BadRequest(c, "This event is full.")
	case errors.Is(err, ErrAlreadyRegistered):
		api.BadRequest(c, "You are already registered for this event.")
	default:
		return false
	}
	return true
}
