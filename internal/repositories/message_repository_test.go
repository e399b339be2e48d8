package repositories

import (
	"testing"

	"github.com/devgrain/confide/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendRejectsSelf(t *testing.T) {
	gdb := newTestDB(t)
	alice := seedUser(t, gdb, "alice")

	repo := NewPostgresMessageRepository(gdb)
	err := repo.Send(&models.Message{SenderID: alice.ID, ReceiverID: alice.ID, Text: "hi"})
	assert.ErrorIs(t, err, ErrSelfAction)
}

func TestThreadMarksIncomingRead(t *testing.T) {
	gdb := newTestDB(t)
	alice := seedUser(t, gdb, "alice")
	bob := seedUser(t, gdb, "bob")

	repo := NewPostgresMessageRepository(gdb)
	require.NoError(t, repo.Send(&models.Message{SenderID: alice.ID, ReceiverID: bob.ID, Text: "hey bob"}))
	require.NoError(t, repo.Send(&models.Message{SenderID: bob.ID, ReceiverID: alice.ID, Text: "hey alice"}))

	// Bob opens the thread: alice's message flips to read, bob's own
	// outgoing message does not.
	views, err := repo.Thread(bob.ID, alice.ID)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "hey bob", views[0].Text)
	assert.Equal(t, "hey alice", views[1].Text)
	assert.Equal(t, "alice", views[0].SenderUsername)

	var unreadToBob int64
	require.NoError(t, gdb.Model(&models.Message{}).
		Where("receiver_id = ? AND is_read = ?", bob.ID, false).
		Count(&unreadToBob).Error)
	assert.Equal(t, int64(0), unreadToBob)

	var unreadToAlice int64
	require.NoError(t, gdb.Model(&models.Message{}).
		Where("receiver_id = ? AND is_read = ?", alice.ID, false).
		Count(&unreadToAlice).Error)
	assert.Equal(t, int64(1), unreadToAlice)
}

func TestConversations(t *testing.T) {
	gdb := newTestDB(t)
	alice := seedUser(t, gdb, "alice")
	bob := seedUser(t, gdb, "bob")
	carol := seedUser(t, gdb, "carol")

	repo := NewPostgresMessageRepository(gdb)
	require.NoError(t, repo.Send(&models.Message{SenderID: bob.ID, ReceiverID: alice.ID, Text: "first"}))
	require.NoError(t, repo.Send(&models.Message{SenderID: bob.ID, ReceiverID: alice.ID, Text: "second"}))
	require.NoError(t, repo.Send(&models.Message{SenderID: alice.ID, ReceiverID: carol.ID, Text: "to carol"}))

	views, err := repo.Conversations(alice.ID)
	require.NoError(t, err)
	require.Len(t, views, 2)

	byName := map[string]models.ConversationView{}
	for _, v := range views {
		byName[v.Username] = v
	}
	require.Contains(t, byName, "bob")
	require.Contains(t, byName, "carol")

	// One row per counterpart, carrying the latest message.
	assert.Equal(t, "second", byName["bob"].LastMessage)
	assert.Equal(t, int64(2), byName["bob"].UnreadCount)

	// Alice sent the carol message herself, so nothing is unread.
	assert.Equal(t, "to carol", byName["carol"].LastMessage)
	assert.Equal(t, int64(0), byName["carol"].UnreadCount)
}
