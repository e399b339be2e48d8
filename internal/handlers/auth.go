package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/devgrain/confide/backend/internal/models"
	"github.com/devgrain/confide/backend/internal/repositories"
	"github.com/devgrain/confide/backend/pkg/password"
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

const tokenLifetime = 7 * 24 * time.Hour

// AuthHandler handles registration, login and account removal.
type AuthHandler struct {
	userRepository repositories.UserRepository
	jwtSecret      string
}

func NewAuthHandler(userRepo repositories.UserRepository, jwtSecret string) *AuthHandler {
	return &AuthHandler{
		userRepository: userRepo,
		jwtSecret:      jwtSecret,
	}
}

// RegisterAuthRoutes registers the unauthenticated auth routes.
func (h *AuthHandler) RegisterAuthRoutes(g *echo.Group) {
	g.POST("/register", h.Register)
	g.POST("/login", h.Login)
}

// RegisterAccountRoutes registers the auth routes that require a session.
func (h *AuthHandler) RegisterAccountRoutes(g *echo.Group) {
	g.GET("/auth/me", h.Me)
	g.DELETE("/auth/account", h.DeleteAccount)
}

// getUserIDFromContext returns the authenticated user id, or 0 when the
// request carries no valid claims.
func getUserIDFromContext(c echo.Context) uint {
	claims, ok := c.Get("user").(*models.JwtCustomClaims)
	if !ok {
		return 0
	}
	return claims.UserID
}

// Register creates an account. Handles are unique case-insensitively, so
// a differently-cased duplicate is still a conflict.
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if _, err := h.userRepository.GetUserByUsername(req.Username); err == nil {
		return echo.NewHTTPError(http.StatusConflict, "Username already taken")
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to check username")
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to hash password")
	}

	user := &models.User{
		Username:     req.Username,
		PasswordHash: hash,
		DisplayName:  req.Username,
	}
	if err := h.userRepository.CreateUser(user); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create user")
	}

	return c.JSON(http.StatusCreated, user)
}

// Login verifies credentials and issues a signed token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.userRepository.GetUserByUsername(req.Username)
	if err != nil || !password.Verify(req.Password, user.PasswordHash) {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid username or password")
	}

	token, err := h.generateJWT(user)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate token")
	}

	return c.JSON(http.StatusOK, echo.Map{"token": token, "user": user})
}

// Me returns the authenticated user's own record.
func (h *AuthHandler) Me(c echo.Context) error {
	user, err := h.userRepository.GetUserByID(getUserIDFromContext(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	}
	return c.JSON(http.StatusOK, user)
}

// DeleteAccount removes the caller's account and its full closure.
func (h *AuthHandler) DeleteAccount(c echo.Context) error {
	if err := h.userRepository.DeleteAccount(getUserIDFromContext(c)); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete account")
	}
	return c.JSON(http.StatusOK, echo.Map{"deleted": true})
}

func (h *AuthHandler) generateJWT(user *models.User) (string, error) {
	claims := &models.JwtCustomClaims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenLifetime)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.jwtSecret))
}
