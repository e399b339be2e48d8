package repositories

import (
	"testing"

	"github.com/devgrain/confide/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUserByUsernameCaseInsensitive(t *testing.T) {
	gdb := newTestDB(t)
	seedUser(t, gdb, "Alice")

	repo := NewPostgresUserRepository(gdb)

	user, err := repo.GetUserByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, "Alice", user.Username)

	_, err = repo.GetUserByUsername("nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSearchUsers(t *testing.T) {
	gdb := newTestDB(t)
	seedUser(t, gdb, "night_owl")
	seedUser(t, gdb, "owlette")
	seedUser(t, gdb, "sparrow")

	repo := NewPostgresUserRepository(gdb)

	results, err := repo.SearchUsers("OWL", 20)
	require.NoError(t, err)
	require.Len(t, results, 2)

	results, err = repo.SearchUsers("owl", 1)
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestProfile(t *testing.T) {
	gdb := newTestDB(t)
	alice := seedUser(t, gdb, "alice")
	bob := seedUser(t, gdb, "bob")
	seedPost(t, gdb, alice.ID, "one")
	seedPost(t, gdb, alice.ID, "two")

	follows := NewPostgresFollowRepository(gdb)
	_, err := follows.Toggle(bob.ID, alice.ID)
	require.NoError(t, err)
	_, err = follows.Toggle(alice.ID, bob.ID)
	require.NoError(t, err)

	repo := NewPostgresUserRepository(gdb)

	profile, err := repo.Profile("alice", bob.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), profile.PostCount)
	assert.Equal(t, int64(1), profile.FollowerCount)
	assert.Equal(t, int64(1), profile.FollowingCount)
	assert.True(t, profile.IsFollowing)
	assert.False(t, profile.IsSelf)

	profile, err = repo.Profile("alice", alice.ID)
	require.NoError(t, err)
	assert.True(t, profile.IsSelf)
}

func TestDeleteAccountCascade(t *testing.T) {
	gdb := newTestDB(t)
	leaver := seedUser(t, gdb, "leaver")
	stayer := seedUser(t, gdb, "stayer")

	leaverPost := seedPost(t, gdb, leaver.ID, "leaver post")
	stayerPost := seedPost(t, gdb, stayer.ID, "stayer post")

	// The leaver interacts outward, the stayer interacts with the
	// leaver's content. Both directions must vanish.
	require.NoError(t, gdb.Create(&models.Like{UserID: leaver.ID, PostID: stayerPost.ID}).Error)
	require.NoError(t, gdb.Create(&models.Like{UserID: stayer.ID, PostID: leaverPost.ID}).Error)
	require.NoError(t, gdb.Create(&models.Reply{UserID: stayer.ID, PostID: leaverPost.ID, Text: "hi"}).Error)
	require.NoError(t, gdb.Create(&models.Bookmark{UserID: stayer.ID, PostID: leaverPost.ID}).Error)
	require.NoError(t, gdb.Create(&models.Follow{FollowerID: stayer.ID, FollowingID: leaver.ID}).Error)
	require.NoError(t, gdb.Create(&models.Message{SenderID: leaver.ID, ReceiverID: stayer.ID, Text: "bye"}).Error)

	notifs := NewPostgresNotificationRepository(gdb)
	ref := leaverPost.ID
	require.NoError(t, notifs.Notify(models.NotificationLike, stayer.ID, leaver.ID, &ref))

	repo := NewPostgresUserRepository(gdb)
	require.NoError(t, repo.DeleteAccount(leaver.ID))

	_, err := repo.GetUserByID(leaver.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Every table is clean of rows referencing the leaver or their posts.
	type countCase struct {
		model interface{}
		where string
		args  []interface{}
	}
	for _, tc := range []countCase{
		{&models.Post{}, "user_id = ?", []interface{}{leaver.ID}},
		{&models.Like{}, "user_id = ? OR post_id = ?", []interface{}{leaver.ID, leaverPost.ID}},
		{&models.Reply{}, "user_id = ? OR post_id = ?", []interface{}{leaver.ID, leaverPost.ID}},
		{&models.Bookmark{}, "user_id = ? OR post_id = ?", []interface{}{leaver.ID, leaverPost.ID}},
		{&models.Follow{}, "follower_id = ? OR following_id = ?", []interface{}{leaver.ID, leaver.ID}},
		{&models.Message{}, "sender_id = ? OR receiver_id = ?", []interface{}{leaver.ID, leaver.ID}},
		{&models.Notification{}, "recipient_id = ? OR actor_id = ?", []interface{}{leaver.ID, leaver.ID}},
	} {
		var rows int64
		require.NoError(t, gdb.Model(tc.model).Where(tc.where, tc.args...).Count(&rows).Error)
		assert.Equal(t, int64(0), rows)
	}

	// The stayer and their post are intact.
	_, err = repo.GetUserByID(stayer.ID)
	require.NoError(t, err)
	var posts int64
	require.NoError(t, gdb.Model(&models.Post{}).Where("user_id = ?", stayer.ID).Count(&posts).Error)
	assert.Equal(t, int64(1), posts)
}
