package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReactionKindsToggleIndependently(t *testing.T) {
	gdb := newTestDB(t)
	author := seedUser(t, gdb, "author")
	reactor := seedUser(t, gdb, "reactor")
	post := seedPost(t, gdb, author.ID, "feelings")

	repo := NewPostgresReactionRepository(gdb)

	active, counts, kinds, err := repo.Toggle(reactor.ID, post.ID, "love")
	require.NoError(t, err)
	assert.True(t, active)
	assert.Equal(t, map[string]int64{"love": 1}, counts)
	assert.Equal(t, []string{"love"}, kinds)

	// A second kind on the same post coexists with the first.
	active, counts, kinds, err = repo.Toggle(reactor.ID, post.ID, "fire")
	require.NoError(t, err)
	assert.True(t, active)
	assert.Equal(t, map[string]int64{"love": 1, "fire": 1}, counts)
	assert.Equal(t, []string{"fire", "love"}, kinds)

	// Toggling one kind off leaves the other untouched.
	active, counts, kinds, err = repo.Toggle(reactor.ID, post.ID, "love")
	require.NoError(t, err)
	assert.False(t, active)
	assert.Equal(t, map[string]int64{"fire": 1}, counts)
	assert.Equal(t, []string{"fire"}, kinds)
}

func TestReactionCountsAggregateAcrossUsers(t *testing.T) {
	gdb := newTestDB(t)
	author := seedUser(t, gdb, "author")
	alice := seedUser(t, gdb, "alice")
	bob := seedUser(t, gdb, "bob")
	post := seedPost(t, gdb, author.ID, "hot take")

	repo := NewPostgresReactionRepository(gdb)

	_, _, _, err := repo.Toggle(alice.ID, post.ID, "haha")
	require.NoError(t, err)
	_, counts, kinds, err := repo.Toggle(bob.ID, post.ID, "haha")
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"haha": 2}, counts)
	// The kind set is scoped to the toggling user, not the post.
	assert.Equal(t, []string{"haha"}, kinds)

	aliceKinds, err := repo.KindsForUser(alice.ID, post.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"haha"}, aliceKinds)
}
