package club

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"clubsphere/internal/db"
)

const clubColumns = `c.id, c.club_name, c.description, c.category, c.location, c.banner_image,
	c.membership_fee, c.meeting_schedule, c.manager_email, c.status, c.created_at, c.updated_at`

const statsColumns = clubColumns + `,
	(SELECT COUNT(*) FROM club_members cm WHERE cm.club_id = c.id) AS members_count,
	(SELECT COUNT(*) FROM events e WHERE e.club_id = c.id) AS events_count`

const returningColumns = `id, club_name, description, category, location, banner_image,
	membership_fee, meeting_schedule, manager_email, status, created_at, updated_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// AddMember puts email into the club's member set. It is the only writer of
// club_members and is safe to call repeatedly.
func AddMember(ctx context.Context, exec sqlx.ExecerContext, clubID uuid.UUID, email string) error {
	_, err := exec.ExecContext(ctx, `
		INSERT INTO club_members (club_id, user_email)
		VALUES ($1, $2)
		ON CONFLICT (club_id, user_email) DO NOTHING
	`, clubID, email)
	if err != nil {
		return fmt.Errorf("add club member: %w", err)
	}
	return nil
}

func (r *repository) Create(ctx context.Context, c *Club) error {
	return db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		query := `
			INSERT INTO clubs (id, club_name, description, category, location, banner_image,
				membership_fee, meeting_schedule, manager_email, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING created_at, updated_at
		`
		err := tx.QueryRowxContext(ctx, query,
			c.ID, c.ClubName, c.Description, c.Category, c.Location, c.BannerImage,
			c.MembershipFee, c.MeetingSchedule, c.ManagerEmail, c.Status,
		).Scan(&c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return fmt.Errorf("insert club: %w", err)
		}

		return AddMember(ctx, tx, c.ID, c.ManagerEmail)
	})
}

func (r *repository) ListAll(ctx context.Context) ([]ClubWithStats, error) {
	return r.selectStats(ctx, `SELECT `+statsColumns+` FROM clubs c ORDER BY c.created_at DESC`)
}

func (r *repository) ListByManager(ctx context.Context, managerEmail string) ([]ClubWithStats, error) {
	return r.selectStats(ctx, `SELECT `+statsColumns+` FROM clubs c
		WHERE c.manager_email = $1 ORDER BY c.created_at DESC`, managerEmail)
}

func (r *repository) SetStatus(ctx context.Context, id uuid.UUID, status string) (*Club, error) {
	query := `UPDATE clubs SET status = $2, updated_at = NOW() WHERE id = $1 RETURNING ` + returningColumns
	return r.getClub(ctx, query, id, status)
}

func (r *repository) UpdateOwned(ctx context.Context, id uuid.UUID, managerEmail string, req UpdateClubRequest) (*Club, error) {
	query := `
		UPDATE clubs SET
			club_name        = COALESCE($3, club_name),
			description      = COALESCE($4, description),
			category         = COALESCE($5, category),
			location         = COALESCE($6, location),
			banner_image     = COALESCE($7, banner_image),
			membership_fee   = COALESCE($8, membership_fee),
			meeting_schedule = COALESCE($9, meeting_schedule),
			updated_at       = NOW()
		WHERE id = $1 AND manager_email = $2
		RETURNING ` + returningColumns

	return r.getClub(ctx, query, id, managerEmail,
		req.Name, req.Description, req.Category, req.Location,
		req.BannerImage, req.MembershipFee, req.MeetingSchedule,
	)
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.exec(ctx, `DELETE FROM clubs WHERE id = $1`, id)
}

func (r *repository) DeleteOwned(ctx context.Context, id uuid.UUID, managerEmail string) (bool, error) {
	return r.exec(ctx, `DELETE FROM clubs WHERE id = $1 AND manager_email = $2`, id, managerEmail)
}

func (r *repository) ListApproved(ctx context.Context, f ListFilter) ([]ClubWithStats, error) {
	var b strings.Builder
	args := []interface{}{StatusApproved}

	b.WriteString(`SELECT ` + statsColumns + ` FROM clubs c WHERE c.status = $1`)
	if f.Search != "" {
		args = append(args, "%"+escapeLike(f.Search)+"%")
		fmt.Fprintf(&b, ` AND c.club_name ILIKE $%d`, len(args))
	}
	if f.Category != "" {
		args = append(args, f.Category)
		fmt.Fprintf(&b, ` AND c.category = $%d`, len(args))
	}
	b.WriteString(` ORDER BY ` + orderClause(f.Sort))

	return r.selectStats(ctx, b.String(), args...)
}

func (r *repository) GetApproved(ctx context.Context, id uuid.UUID) (*ClubWithStats, error) {
	var c ClubWithStats
	err := r.db.GetContext(ctx, &c, `SELECT `+statsColumns+` FROM clubs c
		WHERE c.id = $1 AND c.status = $2`, id, StatusApproved)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrClubNotFound
		}
		return nil, fmt.Errorf("get club: %w", err)
	}
	return &c, nil
}

func (r *repository) ListCategories(ctx context.Context) ([]string, error) {
	categories := []string{}
	err := r.db.SelectContext(ctx, &categories,
		`SELECT DISTINCT category FROM clubs WHERE status = $1 ORDER BY category`, StatusApproved)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (r *repository) selectStats(ctx context.Context, query string, args ...interface{}) ([]ClubWithStats, error) {
	clubs := []ClubWithStats{}
	if err := r.db.SelectContext(ctx, &clubs, query, args...); err != nil {
		return nil, fmt.Errorf("list clubs: %w", err)
	}
	return clubs, nil
}

func (r *repository) getClub(ctx context.Context, query string, args ...interface{}) (*Club, error) {
	var c Club
	if err := r.db.GetContext(ctx, &c, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrClubNotFound
		}
		return nil, fmt.Errorf("update club: %w", err)
	}
	return &c, nil
}

func (r *repository) exec(ctx context.Context, query string, args ...interface{}) (bool, error) {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete club: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func orderClause(sort string) string {
	switch sort {
	case SortFeeAsc:
		return "c.membership_fee ASC, c.created_at DESC"
	case SortFeeDesc:
		return "c.membership_fee DESC, c.created_at DESC"
	case SortOldest:
		return "c.created_at ASC"
	default:
		return "c.created_at DESC"
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
