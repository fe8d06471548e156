package membership

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusActive  = "active"
	StatusExpired = "expired"

	// FreeJoinPaymentID marks memberships that were not paid for.
	FreeJoinPaymentID = "FREE_JOIN"

	// PaidTerm is how long a paid membership lasts.
	PaidTerm = 30 * 24 * time.Hour
)

type Membership struct {
	ID        uuid.UUID  `db:"id" json:"_id"`
	UserEmail string     `db:"user_email" json:"userEmail"`
	ClubID    uuid.UUID  `db:"club_id" json:"clubId"`
	Status    string     `db:"status" json:"status"`
	PaymentID string     `db:"payment_id" json:"paymentId"`
	JoinedAt  time.Time  `db:"joined_at" json:"joinedAt"`
	ExpiresAt *time.Time `db:"expires_at" json:"expiresAt"`
}

// ClubInfo is the slice of a club needed to decide whether it can be joined.
type ClubInfo struct {
	ID            uuid.UUID `db:"id"`
	ClubName      string    `db:"club_name"`
	MembershipFee float64   `db:"membership_fee"`
}

// MemberClub is a membership as its holder sees it.
type MemberClub struct {
	Membership
	ClubName      string  `db:"club_name" json:"clubName"`
	Location      string  `db:"location" json:"location"`
	Category      string  `db:"category" json:"category"`
	MembershipFee float64 `db:"membership_fee" json:"membershipFee"`
}

// ClubMember is a membership as the club's manager sees it.
type ClubMember struct {
	Membership
	UserName string `db:"user_name" json:"userName"`
	PhotoURL string `db:"photo_url" json:"photoURL"`
}

type JoinResponse struct {
	Message    string      `json:"message"`
	Membership *Membership `json:"membership"`
}
