package event

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"clubsphere/internal/db"
)

const eventColumns = `e.id, e.club_id, e.club_name, e.title, e.description, e.event_date, e.location,
	e.is_paid, e.event_fee, e.max_attendees, e.banner_image, e.created_at, e.updated_at`

const countedColumns = eventColumns + `,
	(SELECT COUNT(*) FROM event_registrations r
	 WHERE r.event_id = e.id AND r.status = 'registered') AS registration_count`

var sortColumns = map[string]string{
	SortEventDate: "e.event_date",
	SortCreatedAt: "e.created_at",
	SortEventFee:  "e.event_fee",
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// InsertRegistration adds a registration unless the user already holds one
// for the event.
func InsertRegistration(ctx context.Context, exec sqlx.ExecerContext, r *Registration) (bool, error) {
	res, err := exec.ExecContext(ctx, `
		INSERT INTO event_registrations (id, user_email, event_id, club_id, status, payment_id, registered_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_email, event_id) WHERE status = 'registered' DO NOTHING
	`, r.ID, r.UserEmail, r.EventID, r.ClubID, r.Status, r.PaymentID, r.RegisteredAt)
	if err != nil {
		return false, fmt.Errorf("insert registration: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *repository) Create(ctx context.Context, e *Event) error {
	query := `
		INSERT INTO events (id, club_id, club_name, title, description, event_date, location,
			is_paid, event_fee, max_attendees, banner_image)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRowxContext(ctx, query,
		e.ID, e.ClubID, e.ClubName, e.Title, e.Description, e.EventDate, e.Location,
		e.IsPaid, e.EventFee, e.MaxAttendees, e.BannerImage,
	).Scan(&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

func (r *repository) Get(ctx context.Context, id uuid.UUID) (*EventWithCount, error) {
	var e EventWithCount
	err := r.db.GetContext(ctx, &e, `SELECT `+countedColumns+` FROM events e WHERE e.id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return &e, nil
}

func (r *repository) Update(ctx context.Context, e *Event) error {
	query := `
		UPDATE events SET
			title = $2, description = $3, event_date = $4, location = $5,
			is_paid = $6, event_fee = $7, max_attendees = $8, banner_image = $9,
			updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	err := r.db.QueryRowxContext(ctx, query,
		e.ID, e.Title, e.Description, e.EventDate, e.Location,
		e.IsPaid, e.EventFee, e.MaxAttendees, e.BannerImage,
	).Scan(&e.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrEventNotFound
		}
		return fmt.Errorf("update event: %w", err)
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	var deleted bool
	err := db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM event_registrations WHERE event_id = $1`, id); err != nil {
			return fmt.Errorf("delete registrations: %w", err)
		}

		res, err := tx.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("delete event: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		deleted = n > 0
		return nil
	})
	return deleted, err
}

func (r *repository) ListByManager(ctx context.Context, managerEmail string) ([]EventWithCount, error) {
	events := []EventWithCount{}
	err := r.db.SelectContext(ctx, &events, `
		SELECT `+countedColumns+`
		FROM events e
		JOIN clubs c ON c.id = e.club_id
		WHERE c.manager_email = $1
		ORDER BY e.event_date ASC
	`, managerEmail)
	if err != nil {
		return nil, fmt.Errorf("list manager events: %w", err)
	}
	return events, nil
}

func (r *repository) ListPublic(ctx context.Context, f ListFilter) ([]EventWithCount, error) {
	var b strings.Builder
	var args []interface{}

	b.WriteString(`SELECT ` + countedColumns + ` FROM events e`)
	if f.Search != "" {
		args = append(args, "%"+escapeLike(f.Search)+"%")
		b.WriteString(` WHERE e.title ILIKE $1`)
	}

	column, ok := sortColumns[f.Sort]
	if !ok {
		column = sortColumns[SortEventDate]
	}
	direction := "ASC"
	if strings.EqualFold(f.Order, "desc") {
		direction = "DESC"
	}
	b.WriteString(` ORDER BY ` + column + ` ` + direction)

	events := []EventWithCount{}
	if err := r.db.SelectContext(ctx, &events, b.String(), args...); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (r *repository) ClubsByID(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]ClubSummary, error) {
	out := make(map[uuid.UUID]ClubSummary, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = id.String()
	}

	var clubs []ClubSummary
	err := r.db.SelectContext(ctx, &clubs, `
		SELECT id, club_name, category, location
		FROM clubs
		WHERE id = ANY($1::uuid[])
	`, pq.Array(keys))
	if err != nil {
		return nil, fmt.Errorf("batch clubs: %w", err)
	}

	for _, c := range clubs {
		out[c.ID] = c
	}
	return out, nil
}

func (r *repository) ListRegistrations(ctx context.Context, eventID uuid.UUID) ([]RegistrationWithUser, error) {
	regs := []RegistrationWithUser{}
	err := r.db.SelectContext(ctx, &regs, `
		SELECT r.id, r.user_email, r.event_id, r.club_id, r.status, r.payment_id, r.registered_at,
			COALESCE(u.name, '') AS user_name,
			COALESCE(u.photo_url, '') AS photo_url
		FROM event_registrations r
		LEFT JOIN users u ON u.email = r.user_email
		WHERE r.event_id = $1
		ORDER BY r.registered_at ASC
	`, eventID)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	return regs, nil
}

func (r *repository) IsRegistered(ctx context.Context, email string, eventID uuid.UUID) (bool, error) {
	return db.Exists(ctx, r.db, `
		SELECT EXISTS (
			SELECT 1 FROM event_registrations
			WHERE user_email = $1 AND event_id = $2 AND status = 'registered'
		)
	`, email, eventID)
}

// RegisterFree locks the event row so concurrent registrations see each
// other's counts before the capacity check.
func (r *repository) RegisterFree(ctx context.Context, reg *Registration) (bool, error) {
	var created bool
	err := db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var limit sql.NullInt64
		err := tx.GetContext(ctx, &limit, `SELECT max_attendees FROM events WHERE id = $1 FOR UPDATE`, reg.EventID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrEventNotFound
			}
			return fmt.Errorf("lock event: %w", err)
		}

		if limit.Valid {
			var registered int64
			err := tx.GetContext(ctx, &registered, `
				SELECT COUNT(*) FROM event_registrations
				WHERE event_id = $1 AND status = 'registered'
			`, reg.EventID)
			if err != nil {
				return fmt.Errorf("count registrations: %w", err)
			}
			if registered >= limit.Int64 {
				return ErrEventFull
			}
		}

		created, err = InsertRegistration(ctx, tx, reg)
		return err
	})
	if err != nil {
		return false, err
	}
	return created, nil
}

func (r *repository) ListForMember(ctx context.Context, email string) ([]MemberEvent, error) {
	events := []MemberEvent{}
	err := r.db.SelectContext(ctx, &events, `
		SELECT r.id, r.user_email, r.event_id, r.club_id, r.status, r.payment_id, r.registered_at,
			COALESCE(e.title, '') AS title,
			e.event_date,
			COALESCE(e.location, '') AS location,
			COALESCE(e.club_name, '') AS club_name,
			COALESCE(e.is_paid, FALSE) AS is_paid,
			COALESCE(e.event_fee, 0) AS event_fee
		FROM event_registrations r
		LEFT JOIN events e ON e.id = r.event_id
		WHERE r.user_email = $1
		ORDER BY r.registered_at DESC
	`, email)
	if err != nil {
		return nil, fmt.Errorf("list member events: %w", err)
	}
	return events, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
