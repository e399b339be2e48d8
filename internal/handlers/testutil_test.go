package handlers

import (
	"path/filepath"
	"testing"

	"github.com/devgrain/confide/backend/internal/models"
	"github.com/devgrain/confide/backend/pkg/db"
	"github.com/devgrain/confide/backend/validators"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestEnv(t *testing.T) (*echo.Echo, *gorm.DB) {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))

	e := echo.New()
	e.Validator = validators.NewValidator()
	return e, gdb
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

// asUser attaches authenticated claims the way the JWT middleware does.
func asUser(c echo.Context, userID uint) {
	c.Set("user", &models.JwtCustomClaims{UserID: userID})
}
