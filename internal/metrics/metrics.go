package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clubsphere_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "clubsphere_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	MembershipsCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clubsphere_memberships_created_total",
			Help: "Total number of memberships created",
		},
		[]string{"source"},
	)

	MembershipsExpiredTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clubsphere_memberships_expired_total",
			Help: "Total number of memberships moved to expired",
		},
		[]string{"reason"},
	)

	EventRegistrationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clubsphere_event_registrations_total",
			Help: "Total number of event registrations",
		},
		[]string{"source"},
	)

	CheckoutSessionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clubsphere_checkout_sessions_created_total",
			Help: "Total number of checkout sessions created",
		},
		[]string{"type"},
	)

	PaymentsReconciledTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clubsphere_payments_reconciled_total",
			Help: "Total number of payment success callbacks by outcome",
		},
		[]string{"type", "outcome"},
	)

	ClubStatusChangesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clubsphere_club_status_changes_total",
			Help: "Total number of club status transitions",
		},
		[]string{"status"},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clubsphere_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "clubsphere_email_queue_length",
			Help: "Current length of email queue",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordMembership(source string) {
	MembershipsCreatedTotal.WithLabelValues(source).Inc()
}

func RecordMembershipsExpired(reason string, n int64) {
	if n > 0 {
		MembershipsExpiredTotal.WithLabelValues(reason).Add(float64(n))
	}
}

func RecordEventRegistration(source string) {
	EventRegistrationsTotal.WithLabelValues(source).Inc()
}

func RecordCheckoutSession(paymentType string) {
	CheckoutSessionsTotal.WithLabelValues(paymentType).Inc()
}

func RecordReconciliation(paymentType, outcome string) {
	PaymentsReconciledTotal.WithLabelValues(paymentType, outcome).Inc()
}

func RecordClubStatus(status string) {
	ClubStatusChangesTotal.WithLabelValues(status).Inc()
}

func RecordEmail(status string) {
	EmailsSentTotal.WithLabelValues(status).Inc()
}
