package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// User is an account holder. The password hash never leaves the server.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"size:20;not null;uniqueIndex"`
	PasswordHash string    `json:"-" gorm:"not null"`
	DisplayName  string    `json:"display_name" gorm:"size:30;not null;default:'Anonymous'"`
	Bio          string    `json:"bio" gorm:"size:160;default:''"`
	AvatarURL    *string   `json:"avatar_url"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserCompact is the author/actor shape embedded in feed and list responses.
type UserCompact struct {
	ID          uint    `json:"id"`
	Username    string  `json:"username"`
	DisplayName string  `json:"display_name"`
	AvatarURL   *string `json:"avatar_url"`
}

func (u *User) ToCompact() UserCompact {
	return UserCompact{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		AvatarURL:   u.AvatarURL,
	}
}

// Profile is a user page: compact fields plus counts and the viewer's
// relationship to the profiled user.
type Profile struct {
	UserCompact
	Bio            string    `json:"bio"`
	CreatedAt      time.Time `json:"created_at"`
	PostCount      int64     `json:"post_count"`
	FollowerCount  int64     `json:"follower_count"`
	FollowingCount int64     `json:"following_count"`
	IsFollowing    bool      `json:"is_following"`
	IsSelf         bool      `json:"is_self"`
}

// FollowListEntry is one row of a followers/following listing, with the
// viewer's own relationship to the listed user.
type FollowListEntry struct {
	UserCompact
	YouFollow bool `json:"you_follow"`
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required,handle"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfileRequest struct {
	DisplayName string `json:"display_name" validate:"omitempty,max=30"`
	Bio         string `json:"bio" validate:"omitempty,max=160"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
