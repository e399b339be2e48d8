package repositories

import (
	"testing"

	"github.com/devgrain/confide/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowToggle(t *testing.T) {
	gdb := newTestDB(t)
	alice := seedUser(t, gdb, "alice")
	bob := seedUser(t, gdb, "bob")

	repo := NewPostgresFollowRepository(gdb)

	active, err := repo.Toggle(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, active)

	following, err := repo.IsFollowing(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, following)

	// The edge is directed: bob does not follow alice.
	following, err = repo.IsFollowing(bob.ID, alice.ID)
	require.NoError(t, err)
	assert.False(t, following)

	active, err = repo.Toggle(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, active)
}

func TestFollowSelfRejected(t *testing.T) {
	gdb := newTestDB(t)
	alice := seedUser(t, gdb, "alice")
	bob := seedUser(t, gdb, "bob")

	repo := NewPostgresFollowRepository(gdb)

	_, err := repo.Toggle(alice.ID, alice.ID)
	assert.ErrorIs(t, err, ErrSelfAction)

	// Still rejected when the user already has other edges.
	_, err = repo.Toggle(alice.ID, bob.ID)
	require.NoError(t, err)
	_, err = repo.Toggle(alice.ID, alice.ID)
	assert.ErrorIs(t, err, ErrSelfAction)

	var rows int64
	require.NoError(t, gdb.Model(&models.Follow{}).
		Where("follower_id = ? AND following_id = ?", alice.ID, alice.ID).
		Count(&rows).Error)
	assert.Equal(t, int64(0), rows)
}

func TestFollowLists(t *testing.T) {
	gdb := newTestDB(t)
	alice := seedUser(t, gdb, "alice")
	bob := seedUser(t, gdb, "bob")
	carol := seedUser(t, gdb, "carol")

	repo := NewPostgresFollowRepository(gdb)

	_, err := repo.Toggle(bob.ID, alice.ID)
	require.NoError(t, err)
	_, err = repo.Toggle(carol.ID, alice.ID)
	require.NoError(t, err)
	_, err = repo.Toggle(alice.ID, carol.ID)
	require.NoError(t, err)

	followers, err := repo.Followers(alice.ID, alice.ID)
	require.NoError(t, err)
	require.Len(t, followers, 2)
	names := []string{followers[0].Username, followers[1].Username}
	assert.ElementsMatch(t, []string{"bob", "carol"}, names)
	for _, entry := range followers {
		if entry.Username == "carol" {
			assert.True(t, entry.YouFollow)
		} else {
			assert.False(t, entry.YouFollow)
		}
	}

	following, err := repo.Following(alice.ID, bob.ID)
	require.NoError(t, err)
	require.Len(t, following, 1)
	assert.Equal(t, "carol", following[0].Username)
	assert.False(t, following[0].YouFollow)
}
