package dashboard

import "clubsphere/internal/event"

// UpcomingLimit caps the upcoming events on the member dashboard.
const UpcomingLimit = 5

type ManagerStats struct {
	TotalClubs   int64   `db:"total_clubs" json:"totalClubs"`
	TotalMembers int64   `db:"total_members" json:"totalMembers"`
	TotalEvents  int64   `db:"total_events" json:"totalEvents"`
	TotalRevenue float64 `db:"total_revenue" json:"totalRevenue"`
}

type MemberStats struct {
	TotalClubs    int64 `db:"total_clubs" json:"totalClubs"`
	TotalEvents   int64 `db:"total_events" json:"totalEvents"`
	TotalPayments int64 `db:"total_payments" json:"totalPayments"`
}

type MemberOverview struct {
	MemberStats
	UpcomingEvents []event.Event `json:"upcomingEvents"`
}

type AdminStats struct {
	TotalUsers       int64   `db:"total_users" json:"totalUsers"`
	TotalClubs       int64   `db:"total_clubs" json:"totalClubs"`
	PendingClubs     int64   `db:"pending_clubs" json:"pendingClubs"`
	TotalMemberships int64   `db:"total_memberships" json:"totalMemberships"`
	TotalEvents      int64   `db:"total_events" json:"totalEvents"`
	TotalRevenue     float64 `db:"total_revenue" json:"totalRevenue"`
}
