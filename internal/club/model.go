package club

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

const DefaultMeetingSchedule = "TBD"

type Club struct {
	ID              uuid.UUID `db:"id" json:"_id"`
	ClubName        string    `db:"club_name" json:"clubName"`
	Description     string    `db:"description" json:"description"`
	Category        string    `db:"category" json:"category"`
	Location        string    `db:"location" json:"location"`
	BannerImage     *string   `db:"banner_image" json:"bannerImage"`
	MembershipFee   float64   `db:"membership_fee" json:"membershipFee"`
	MeetingSchedule string    `db:"meeting_schedule" json:"meetingSchedule"`
	ManagerEmail    string    `db:"manager_email" json:"managerEmail"`
	Status          string    `db:"status" json:"status"`
	CreatedAt       time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt       time.Time `db:"updated_at" json:"updatedAt"`
}

// ClubWithStats carries the aggregates computed at read time.
type ClubWithStats struct {
	Club
	MembersCount int `db:"members_count" json:"membersCount"`
	EventsCount  int `db:"events_count" json:"eventsCount"`
}

type CreateClubRequest struct {
	Name            string   `json:"name" binding:"required"`
	Description     string   `json:"description" binding:"required"`
	Category        string   `json:"category" binding:"required"`
	Location        string   `json:"location" binding:"required"`
	BannerImage     *string  `json:"bannerImage"`
	MembershipFee   *float64 `json:"membershipFee" binding:"required"`
	MeetingSchedule string   `json:"meetingSchedule"`
}

type CreateClubResponse struct {
	Message string    `json:"message"`
	ClubID  uuid.UUID `json:"clubId"`
	Club    *Club     `json:"club"`
}

// UpdateClubRequest is a partial update; nil fields are left unchanged.
// Status is not editable here.
type UpdateClubRequest struct {
	Name            *string  `json:"name"`
	Description     *string  `json:"description"`
	Category        *string  `json:"category"`
	Location        *string  `json:"location"`
	BannerImage     *string  `json:"bannerImage"`
	MembershipFee   *float64 `json:"membershipFee" binding:"omitempty,gte=0"`
	MeetingSchedule *string  `json:"meetingSchedule"`
}

func (r UpdateClubRequest) empty() bool {
	return r.Name == nil && r.Description == nil && r.Category == nil && r.Location == nil &&
		r.BannerImage == nil && r.MembershipFee == nil && r.MeetingSchedule == nil
}

type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ClubResponse struct {
	Message string `json:"message"`
	Club    *Club  `json:"club"`
}

const (
	SortFeeAsc  = "fee_asc"
	SortFeeDesc = "fee_desc"
	SortNewest  = "newest"
	SortOldest  = "oldest"
)

type ListFilter struct {
	Search   string
	Category string
	Sort     string
}
