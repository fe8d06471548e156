package integration_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clubsphere/internal/membership"
	"clubsphere/internal/policy"
)

func TestJoinFree_ConcurrentRequestsCreateOneMembership(t *testing.T) {
	database := setupTestDB(t)
	createTestUser(t, database, "m@example.com", "clubManager")
	createTestUser(t, database, "u@example.com", "member")
	clubID := createTestClub(t, database, "m@example.com", "approved", 0)

	svc := membership.NewService(membership.NewRepository(database), policy.New(database), nil, nil)

	const attempts = 10
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		joined    int
		duplicate int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.JoinFree(context.Background(), "u@example.com", clubID)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				joined++
			case errors.Is(err, membership.ErrAlreadyMember):
				duplicate++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, joined)
	assert.Equal(t, attempts-1, duplicate)
	assert.Equal(t, 1, count(t, database,
		`SELECT COUNT(*) FROM memberships WHERE user_email = $1 AND club_id = $2 AND status = 'active'`,
		"u@example.com", clubID))
	assert.Equal(t, 2, count(t, database, `SELECT COUNT(*) FROM club_members WHERE club_id = $1`, clubID))
}

func TestExpire_AllowsRejoin(t *testing.T) {
	database := setupTestDB(t)
	createTestUser(t, database, "m@example.com", "clubManager")
	clubID := createTestClub(t, database, "m@example.com", "approved", 0)

	ctx := context.Background()
	svc := membership.NewService(membership.NewRepository(database), policy.New(database), nil, nil)

	m, err := svc.JoinFree(ctx, "u@example.com", clubID)
	require.NoError(t, err)

	_, err = svc.Expire(ctx, "other@example.com", m.ID)
	assert.ErrorIs(t, err, membership.ErrMembershipNotFound)

	changed, err := svc.Expire(ctx, "m@example.com", m.ID)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = svc.Expire(ctx, "m@example.com", m.ID)
	require.NoError(t, err)
	assert.False(t, changed)

	_, err = svc.JoinFree(ctx, "u@example.com", clubID)
	require.NoError(t, err)
	assert.Equal(t, 2, count(t, database, `SELECT COUNT(*) FROM memberships WHERE club_id = $1`, clubID))
}

func TestJoinFree_RejectsPaidAndPendingClubs(t *testing.T) {
	database := setupTestDB(t)
	paid := createTestClub(t, database, "m@example.com", "approved", 25)
	pending := createTestClub(t, database, "m@example.com", "pending", 0)

	svc := membership.NewService(membership.NewRepository(database), policy.New(database), nil, nil)

	_, err := svc.JoinFree(context.Background(), "u@example.com", paid)
	assert.ErrorIs(t, err, membership.ErrPaidClub)

	_, err = svc.JoinFree(context.Background(), "u@example.com", pending)
	assert.ErrorIs(t, err, membership.ErrClubNotFound)
}
