package club

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(sqlx.NewDb(db, "sqlmock")), mock
}

var (
	clubCols = []string{"id", "club_name", "description", "category", "location", "banner_image",
		"membership_fee", "meeting_schedule", "manager_email", "status", "created_at", "updated_at"}
	statsCols = append(append([]string{}, clubCols...), "members_count", "events_count")
)

func clubRow(id uuid.UUID, name, status string, fee float64) []driver.Value {
	now := time.Now()
	return []driver.Value{id.String(), name, "desc", "Games", "Hall A", nil, fee, "TBD", "m@example.com", status, now, now}
}

func TestCreateClub(t *testing.T) {
	ctx := context.Background()
	c := &Club{
		ID:              uuid.New(),
		ClubName:        "Chess Club",
		Description:     "Weekly games",
		Category:        "Games",
		Location:        "Hall A",
		MembershipFee:   0,
		MeetingSchedule: DefaultMeetingSchedule,
		ManagerEmail:    "m@example.com",
		Status:          StatusPending,
	}

	t.Run("inserts club and manager membership", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		now := time.Now()

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO clubs .* RETURNING created_at, updated_at`).
			WithArgs(c.ID, c.ClubName, c.Description, c.Category, c.Location, c.BannerImage,
				c.MembershipFee, c.MeetingSchedule, c.ManagerEmail, c.Status).
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))
		mock.ExpectExec(`INSERT INTO club_members .* ON CONFLICT \(club_id, user_email\) DO NOTHING`).
			WithArgs(c.ID, c.ManagerEmail).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.Create(ctx, c))
		assert.Equal(t, now, c.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back when member insert fails", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		now := time.Now()

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO clubs`).
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))
		mock.ExpectExec(`INSERT INTO club_members`).
			WillReturnError(errors.New("connection reset"))
		mock.ExpectRollback()

		err := repo.Create(ctx, c)
		assert.ErrorContains(t, err, "add club member")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAddMember(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	clubID := uuid.New()
	mock.ExpectExec(`INSERT INTO club_members`).
		WithArgs(clubID, "u@example.com").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, AddMember(context.Background(), sqlx.NewDb(db, "sqlmock"), clubID, "u@example.com"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByManager(t *testing.T) {
	repo, mock := newMockRepo(t)
	id := uuid.New()

	mock.ExpectQuery(`SELECT .* members_count, .* events_count FROM clubs c WHERE c.manager_email = \$1`).
		WithArgs("m@example.com").
		WillReturnRows(sqlmock.NewRows(statsCols).
			AddRow(append(clubRow(id, "Chess Club", StatusApproved, 0), 3, 2)...))

	clubs, err := repo.ListByManager(context.Background(), "m@example.com")
	require.NoError(t, err)
	require.Len(t, clubs, 1)
	assert.Equal(t, id, clubs[0].ID)
	assert.Equal(t, 3, clubs[0].MembersCount)
	assert.Equal(t, 2, clubs[0].EventsCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListApproved(t *testing.T) {
	ctx := context.Background()

	t.Run("no filters sorts newest", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery(`WHERE c.status = \$1 ORDER BY c.created_at DESC$`).
			WithArgs(StatusApproved).
			WillReturnRows(sqlmock.NewRows(statsCols))

		clubs, err := repo.ListApproved(ctx, ListFilter{Sort: "bogus"})
		require.NoError(t, err)
		assert.Empty(t, clubs)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("search and category", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery(`AND c.club_name ILIKE \$2 AND c.category = \$3 ORDER BY c.membership_fee ASC`).
			WithArgs(StatusApproved, `%100\%\_club%`, "Games").
			WillReturnRows(sqlmock.NewRows(statsCols).
				AddRow(append(clubRow(uuid.New(), "100%_club", StatusApproved, 5), 1, 0)...))

		clubs, err := repo.ListApproved(ctx, ListFilter{Search: "100%_club", Category: "Games", Sort: SortFeeAsc})
		require.NoError(t, err)
		require.Len(t, clubs, 1)
		assert.Equal(t, 5.0, clubs[0].MembershipFee)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetApproved(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		id := uuid.New()
		mock.ExpectQuery(`WHERE c.id = \$1 AND c.status = \$2`).
			WithArgs(id, StatusApproved).
			WillReturnRows(sqlmock.NewRows(statsCols).
				AddRow(append(clubRow(id, "Chess Club", StatusApproved, 0), 1, 0)...))

		c, err := repo.GetApproved(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Chess Club", c.ClubName)
	})

	t.Run("pending club is hidden", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery(`WHERE c.id = \$1 AND c.status = \$2`).
			WillReturnError(sql.ErrNoRows)

		c, err := repo.GetApproved(ctx, uuid.New())
		assert.Nil(t, c)
		assert.ErrorIs(t, err, ErrClubNotFound)
	})
}

func TestSetStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("updated", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		id := uuid.New()
		mock.ExpectQuery(`UPDATE clubs SET status = \$2, updated_at = NOW\(\) WHERE id = \$1 RETURNING`).
			WithArgs(id, StatusApproved).
			WillReturnRows(sqlmock.NewRows(clubCols).AddRow(clubRow(id, "Chess Club", StatusApproved, 0)...))

		c, err := repo.SetStatus(ctx, id, StatusApproved)
		require.NoError(t, err)
		assert.Equal(t, StatusApproved, c.Status)
	})

	t.Run("unknown club", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery(`UPDATE clubs SET status`).WillReturnError(sql.ErrNoRows)

		_, err := repo.SetStatus(ctx, uuid.New(), StatusRejected)
		assert.ErrorIs(t, err, ErrClubNotFound)
	})
}

func TestUpdateOwned(t *testing.T) {
	repo, mock := newMockRepo(t)
	id := uuid.New()
	name := "Chess Masters"
	fee := 15.0

	mock.ExpectQuery(`UPDATE clubs SET .* WHERE id = \$1 AND manager_email = \$2`).
		WithArgs(id, "other@example.com", &name, nil, nil, nil, nil, &fee, nil).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateOwned(context.Background(), id, "other@example.com",
		UpdateClubRequest{Name: &name, MembershipFee: &fee})
	assert.ErrorIs(t, err, ErrClubNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteOwned(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("owner", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectExec(`DELETE FROM clubs WHERE id = \$1 AND manager_email = \$2`).
			WithArgs(id, "m@example.com").
			WillReturnResult(sqlmock.NewResult(0, 1))

		deleted, err := repo.DeleteOwned(ctx, id, "m@example.com")
		require.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("not owner", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectExec(`DELETE FROM clubs`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		deleted, err := repo.DeleteOwned(ctx, id, "x@example.com")
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}

func TestListCategories(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(`SELECT DISTINCT category FROM clubs WHERE status = \$1 ORDER BY category`).
		WithArgs(StatusApproved).
		WillReturnRows(sqlmock.NewRows([]string{"category"}).AddRow("Games").AddRow("Sports"))

	categories, err := repo.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Games", "Sports"}, categories)
}
