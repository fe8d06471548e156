package audit

import (
	"context"

	"go.uber.org/zap"
)

// Config selects the destination per category.
// Values: "all" (MongoDB + zap), "db" (MongoDB only), "log" (zap only), "off".
type Config struct {
	Admin   string
	Payment string
}

// Logger records audit events to MongoDB and the structured log. A nil
// *Logger is a valid no-op, and a nil store degrades to log-only.
type Logger struct {
	store  *Store
	zapLog *zap.Logger
	config Config
}

func New(store *Store, zapLog *zap.Logger, config Config) *Logger {
	if zapLog == nil {
		zapLog = zap.NewNop()
	}
	return &Logger{store: store, zapLog: zapLog, config: config}
}

func (l *Logger) logToZap(event Event) {
	fields := []zap.Field{
		zap.Bool("audit", true),
		zap.String("category", event.Category),
		zap.String("event_type", event.EventType),
		zap.Bool("success", event.Success),
	}
	if event.Actor != "" {
		fields = append(fields, zap.String("actor", event.Actor))
	}
	if event.Target != "" {
		fields = append(fields, zap.String("target", event.Target))
	}
	if event.FailureReason != "" {
		fields = append(fields, zap.String("failure_reason", event.FailureReason))
	}
	for k, v := range event.Details {
		fields = append(fields, zap.String("detail_"+k, v))
	}

	if event.Success {
		l.zapLog.Info("audit event", fields...)
	} else {
		l.zapLog.Warn("audit event", fields...)
	}
}

func (l *Logger) Log(ctx context.Context, event Event) {
	if l == nil {
		return
	}

	var setting string
	switch event.Category {
	case CategoryAdmin:
		setting = l.config.Admin
	case CategoryPayment:
		setting = l.config.Payment
	default:
		setting = "all"
	}
	if setting == "" {
		setting = "all"
	}

	if setting == "off" {
		return
	}

	if setting == "all" || setting == "log" {
		l.logToZap(event)
	}

	if l.store != nil && (setting == "all" || setting == "db") {
		if err := l.store.Log(ctx, event); err != nil {
			l.zapLog.Error("failed to store audit event",
				zap.Error(err),
				zap.String("event_type", event.EventType),
			)
		}
	}
}

func (l *Logger) RoleChanged(ctx context.Context, actor, target, role string) {
	l.Log(ctx, Event{
		Category:  CategoryAdmin,
		EventType: EventRoleChanged,
		Actor:     actor,
		Target:    target,
		Success:   true,
		Details:   map[string]string{"role": role},
	})
}

func (l *Logger) UserDeleted(ctx context.Context, actor, target string) {
	l.Log(ctx, Event{
		Category:  CategoryAdmin,
		EventType: EventUserDeleted,
		Actor:     actor,
		Target:    target,
		Success:   true,
	})
}

func (l *Logger) ClubStatusChanged(ctx context.Context, actor, clubID, status string) {
	l.Log(ctx, Event{
		Category:  CategoryAdmin,
		EventType: EventClubStatusChanged,
		Actor:     actor,
		Target:    clubID,
		Success:   true,
		Details:   map[string]string{"status": status},
	})
}

func (l *Logger) ClubDeleted(ctx context.Context, actor, clubID string) {
	l.Log(ctx, Event{
		Category:  CategoryAdmin,
		EventType: EventClubDeleted,
		Actor:     actor,
		Target:    clubID,
		Success:   true,
	})
}

func (l *Logger) MembershipExpired(ctx context.Context, actor, membershipID string) {
	l.Log(ctx, Event{
		Category:  CategoryAdmin,
		EventType: EventMembershipExpired,
		Actor:     actor,
		Target:    membershipID,
		Success:   true,
	})
}

func (l *Logger) PaymentReconciled(ctx context.Context, userEmail, sessionID string, details map[string]string) {
	if details == nil {
		details = map[string]string{}
	}
	details["session_id"] = sessionID
	l.Log(ctx, Event{
		Category:  CategoryPayment,
		EventType: EventPaymentReconciled,
		Actor:     userEmail,
		Target:    sessionID,
		Success:   true,
		Details:   details,
	})
}

func (l *Logger) PaymentRejected(ctx context.Context, sessionID, reason string) {
	l.Log(ctx, Event{
		Category:      CategoryPayment,
		EventType:     EventPaymentRejected,
		Target:        sessionID,
		Success:       false,
		FailureReason: reason,
	})
}
