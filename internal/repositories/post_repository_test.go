package repositories

import (
	"testing"

	"github.com/devgrain/confide/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteCascadeRemovesEveryReferencingRow(t *testing.T) {
	gdb := newTestDB(t)
	author := seedUser(t, gdb, "author")
	fan := seedUser(t, gdb, "fan")
	post := seedPost(t, gdb, author.ID, "doomed")
	other := seedPost(t, gdb, author.ID, "survivor")

	require.NoError(t, gdb.Create(&models.Like{UserID: fan.ID, PostID: post.ID}).Error)
	require.NoError(t, gdb.Create(&models.Repost{UserID: fan.ID, PostID: post.ID}).Error)
	require.NoError(t, gdb.Create(&models.Reaction{UserID: fan.ID, PostID: post.ID, Type: "fire"}).Error)
	require.NoError(t, gdb.Create(&models.Reply{UserID: fan.ID, PostID: post.ID, Text: "nice"}).Error)
	require.NoError(t, gdb.Create(&models.Bookmark{UserID: fan.ID, PostID: post.ID}).Error)
	require.NoError(t, gdb.Create(&models.Like{UserID: fan.ID, PostID: other.ID}).Error)

	repo := NewPostgresPostRepository(gdb)
	require.NoError(t, repo.DeleteCascade(post.ID, author.ID))

	_, err := repo.GetByID(post.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	for _, child := range []interface{}{
		&models.Like{},
		&models.Repost{},
		&models.Reaction{},
		&models.Reply{},
		&models.Bookmark{},
	} {
		var rows int64
		require.NoError(t, gdb.Model(child).Where("post_id = ?", post.ID).Count(&rows).Error)
		assert.Equal(t, int64(0), rows)
	}

	// The sibling post and its rows are untouched.
	_, err = repo.GetByID(other.ID)
	require.NoError(t, err)
	var rows int64
	require.NoError(t, gdb.Model(&models.Like{}).Where("post_id = ?", other.ID).Count(&rows).Error)
	assert.Equal(t, int64(1), rows)
}

func TestDeleteCascadeRejectsNonOwner(t *testing.T) {
	gdb := newTestDB(t)
	author := seedUser(t, gdb, "author")
	intruder := seedUser(t, gdb, "intruder")
	post := seedPost(t, gdb, author.ID, "mine")

	repo := NewPostgresPostRepository(gdb)

	err := repo.DeleteCascade(post.ID, intruder.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Nothing was deleted.
	_, err = repo.GetByID(post.ID)
	require.NoError(t, err)
}

func TestDeleteCascadeMissingPost(t *testing.T) {
	gdb := newTestDB(t)
	author := seedUser(t, gdb, "author")

	repo := NewPostgresPostRepository(gdb)
	assert.ErrorIs(t, repo.DeleteCascade(9999, author.ID), ErrNotFound)
}
