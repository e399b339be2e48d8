package repositories

import (
	"testing"

	"github.com/devgrain/confide/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepliesOldestFirst(t *testing.T) {
	gdb := newTestDB(t)
	author := seedUser(t, gdb, "author")
	replier := seedUser(t, gdb, "replier")
	post := seedPost(t, gdb, author.ID, "question")

	repo := NewPostgresReplyRepository(gdb)
	require.NoError(t, repo.Create(&models.Reply{PostID: post.ID, UserID: replier.ID, Text: "first"}))
	require.NoError(t, repo.Create(&models.Reply{PostID: post.ID, UserID: author.ID, Text: "second"}))

	views, err := repo.ForPost(post.ID)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "first", views[0].Text)
	assert.Equal(t, "second", views[1].Text)
	assert.Equal(t, "replier", views[0].Username)
}

func TestDeleteOwned(t *testing.T) {
	gdb := newTestDB(t)
	author := seedUser(t, gdb, "author")
	replier := seedUser(t, gdb, "replier")
	post := seedPost(t, gdb, author.ID, "question")

	repo := NewPostgresReplyRepository(gdb)
	reply := &models.Reply{PostID: post.ID, UserID: replier.ID, Text: "mine"}
	require.NoError(t, repo.Create(reply))

	// The post author cannot delete someone else's reply.
	assert.ErrorIs(t, repo.DeleteOwned(reply.ID, author.ID), ErrNotFound)

	require.NoError(t, repo.DeleteOwned(reply.ID, replier.ID))
	assert.ErrorIs(t, repo.DeleteOwned(reply.ID, replier.ID), ErrNotFound)
}
