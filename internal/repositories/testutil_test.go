package repositories

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/devgrain/confide/backend/internal/models"
	"github.com/devgrain/confide/backend/pkg/db"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens a throwaway SQLite database with the full schema. The
// queries in this package stay on the portable subset of SQL, so what
// passes here holds on PostgreSQL too.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))
	return gdb
}

func seedUser(t *testing.T, gdb *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username:     username,
		PasswordHash: "irrelevant",
		DisplayName:  username,
	}
	require.NoError(t, gdb.Create(user).Error)
	return user
}

func seedPost(t *testing.T, gdb *gorm.DB, userID uint, text string) *models.Post {
	t.Helper()
	post := &models.Post{UserID: userID, Text: text, Mood: "none"}
	require.NoError(t, gdb.Create(post).Error)
	return post
}

// seedPostAt pins the creation time, for ordering assertions.
func seedPostAt(t *testing.T, gdb *gorm.DB, userID uint, text string, at time.Time) *models.Post {
	t.Helper()
	post := &models.Post{UserID: userID, Text: text, Mood: "none", CreatedAt: at}
	require.NoError(t, gdb.Create(post).Error)
	return post
}
