package event

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	StatusRegistered = "registered"

	// FreeRegistrationPaymentID marks registrations that were not paid for.
	FreeRegistrationPaymentID = "FREE_REGISTRATION"
)

type Event struct {
	ID           uuid.UUID `db:"id" json:"_id"`
	ClubID       uuid.UUID `db:"club_id" json:"clubId"`
	ClubName     string    `db:"club_name" json:"clubName"`
	Title        string    `db:"title" json:"title"`
	Description  string    `db:"description" json:"description"`
	EventDate    time.Time `db:"event_date" json:"eventDate"`
	Location     string    `db:"location" json:"location"`
	IsPaid       bool      `db:"is_paid" json:"isPaid"`
	EventFee     float64   `db:"event_fee" json:"eventFee"`
	MaxAttendees *int      `db:"max_attendees" json:"maxAttendees"`
	BannerImage  string    `db:"banner_image" json:"bannerImage"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

// RequiresPayment reports whether registering needs a checkout.
func (e *Event) RequiresPayment() bool {
	return e.IsPaid && e.EventFee > 0
}

type EventWithCount struct {
	Event
	RegistrationCount int `db:"registration_count" json:"registrationCount"`
}

// Full reports whether the attendee cap has been reached.
func (e *EventWithCount) Full() bool {
	return e.MaxAttendees != nil && e.RegistrationCount >= *e.MaxAttendees
}

type ClubSummary struct {
	ID       uuid.UUID `db:"id" json:"_id"`
	ClubName string    `db:"club_name" json:"clubName"`
	Category string    `db:"category" json:"category"`
	Location string    `db:"location" json:"location"`
}

type PublicEvent struct {
	EventWithCount
	Club *ClubSummary `json:"club"`
}

type Registration struct {
	ID           uuid.UUID `db:"id" json:"_id"`
	UserEmail    string    `db:"user_email" json:"userEmail"`
	EventID      uuid.UUID `db:"event_id" json:"eventId"`
	ClubID       uuid.UUID `db:"club_id" json:"clubId"`
	Status       string    `db:"status" json:"status"`
	PaymentID    string    `db:"payment_id" json:"paymentId"`
	RegisteredAt time.Time `db:"registered_at" json:"registeredAt"`
}

type RegistrationWithUser struct {
	Registration
	UserName string `db:"user_name" json:"userName"`
	PhotoURL string `db:"photo_url" json:"photoURL"`
}

// MemberEvent is a registration as the attendee sees it.
type MemberEvent struct {
	Registration
	Title     string     `db:"title" json:"title"`
	EventDate *time.Time `db:"event_date" json:"eventDate"`
	Location  string     `db:"location" json:"location"`
	ClubName  string     `db:"club_name" json:"clubName"`
	IsPaid    bool       `db:"is_paid" json:"isPaid"`
	EventFee  float64    `db:"event_fee" json:"eventFee"`
}

type CreateEventRequest struct {
	ClubID       string          `json:"clubId" binding:"required,uuid"`
	Title        string          `json:"title" binding:"required"`
	Description  string          `json:"description" binding:"required"`
	EventDate    time.Time       `json:"eventDate" binding:"required"`
	Location     string          `json:"location" binding:"required"`
	BannerImage  string          `json:"bannerImage" binding:"required"`
	IsPaid       bool            `json:"isPaid"`
	EventFee     float64         `json:"eventFee" binding:"gte=0"`
	// Number, numeric string, empty string or null. Anything that is not a
	// positive integer means no limit.
	MaxAttendees json.RawMessage `json:"maxAttendees" swaggertype:"integer"`
}

type UpdateEventRequest struct {
	Title        *string         `json:"title"`
	Description  *string         `json:"description"`
	EventDate    *time.Time      `json:"eventDate"`
	Location     *string         `json:"location"`
	BannerImage  *string         `json:"bannerImage"`
	IsPaid       *bool           `json:"isPaid"`
	EventFee     *float64        `json:"eventFee" binding:"omitempty,gte=0"`
	MaxAttendees json.RawMessage `json:"maxAttendees" swaggertype:"integer"`
}

func (r UpdateEventRequest) empty() bool {
	return r.Title == nil && r.Description == nil && r.EventDate == nil && r.Location == nil &&
		r.BannerImage == nil && r.IsPaid == nil && r.EventFee == nil && len(r.MaxAttendees) == 0
}

type EventResponse struct {
	Message string `json:"message"`
	Event   *Event `json:"event"`
}

type RegisterResponse struct {
	Message      string        `json:"message"`
	Registration *Registration `json:"registration"`
}

const (
	SortEventDate = "eventDate"
	SortCreatedAt = "createdAt"
	SortEventFee  = "eventFee"
)

type ListFilter struct {
	Search string
	Sort   string
	Order  string
}
