// internal/model/user.go
package model

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User は学習者(および管理者)の基本情報とプロフィールを表します
type User struct {
	UserID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"user_id"`
	Username      string         `gorm:"unique;not null" json:"username"`
	Email         string         `gorm:"unique;not null" json:"email"`
	PasswordHash  string         `gorm:"not null" json:"-"`
	IsAdmin       bool           `gorm:"default:false" json:"is_admin"`
	IsBlocked     bool           `gorm:"default:false" json:"is_blocked"`
	Bio           string         `json:"bio,omitempty"`
	SkillsSummary string         `json:"skills_summary,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}

type ContextKey string

const (
	UserIDKey  ContextKey = "userID"
	IsAdminKey ContextKey = "isAdmin"
)

// RegisterRequest は新規登録APIのリクエストボディ (DTO)
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=1,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest はログインAPIのリクエストボディ
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse はログイン成功時のレスポンス
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

// UserResponse はクライアントに返すユーザー情報
type UserResponse struct {
	UserID    uuid.UUID `json:"user_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"is_admin"`
	IsBlocked bool      `json:"is_blocked"`
	CreatedAt time.Time `json:"created_at"`
}

// JWTCustomClaims はJWTに含めるカスタムクレーム
type JWTCustomClaims struct {
	IsAdmin              bool `json:"is_admin"`
	jwt.RegisteredClaims      // 標準クレーム (iss, sub, exp など)
}

// UpdateProfileRequest はプロフィール更新リクエストのDTO
type UpdateProfileRequest struct {
	Bio           *string `json:"bio,omitempty" validate:"omitempty,max=1000"`
	SkillsSummary *string `json:"skills_summary,omitempty" validate:"omitempty,max=255"`
}
