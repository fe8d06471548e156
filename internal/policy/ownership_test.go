package policy

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOwnership(t *testing.T) (*Ownership, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(sqlx.NewDb(db, "sqlmock")), mock
}

func TestClubOwnedBy(t *testing.T) {
	clubID := uuid.New()

	t.Run("owner", func(t *testing.T) {
		o, mock := newOwnership(t)
		mock.ExpectQuery(`FROM clubs c WHERE c.id = \$1 AND c.manager_email = \$2`).
			WithArgs(clubID, "m@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"id", "club_name", "status"}).
				AddRow(clubID.String(), "Chess Club", "approved"))

		ref, err := o.ClubOwnedBy(context.Background(), clubID, "m@example.com")
		require.NoError(t, err)
		assert.Equal(t, clubID, ref.ID)
		assert.Equal(t, "Chess Club", ref.ClubName)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("other manager looks like missing club", func(t *testing.T) {
		o, mock := newOwnership(t)
		mock.ExpectQuery(`FROM clubs c`).
			WithArgs(clubID, "other@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"id", "club_name", "status"}))

		ref, err := o.ClubOwnedBy(context.Background(), clubID, "other@example.com")
		assert.Nil(t, ref)
		assert.ErrorIs(t, err, ErrNotOwned)
	})

	t.Run("storage failure is not ErrNotOwned", func(t *testing.T) {
		o, mock := newOwnership(t)
		mock.ExpectQuery(`FROM clubs c`).WillReturnError(errors.New("conn reset"))

		_, err := o.ClubOwnedBy(context.Background(), clubID, "m@example.com")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotOwned)
	})
}

func TestEventOwnedBy(t *testing.T) {
	o, mock := newOwnership(t)
	eventID, clubID := uuid.New(), uuid.New()

	mock.ExpectQuery(`FROM events e JOIN clubs c ON c.id = e.club_id WHERE e.id = \$1 AND c.manager_email = \$2`).
		WithArgs(eventID, "m@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "club_name", "status"}).
			AddRow(clubID.String(), "Chess Club", "approved"))

	ref, err := o.EventOwnedBy(context.Background(), eventID, "m@example.com")
	require.NoError(t, err)
	assert.Equal(t, clubID, ref.ID)
}

func TestMembershipOwnedBy(t *testing.T) {
	o, mock := newOwnership(t)
	membershipID := uuid.New()

	mock.ExpectQuery(`FROM memberships m JOIN clubs c ON c.id = m.club_id`).
		WithArgs(membershipID, "m@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "club_name", "status"}))

	_, err := o.MembershipOwnedBy(context.Background(), membershipID, "m@example.com")
	assert.ErrorIs(t, err, ErrNotOwned)
}
