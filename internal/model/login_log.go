// internal/model/login_log.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// LoginLog はログイン/ログアウトの監査記録です
type LoginLog struct {
	LogID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"log_id"`
	UserID          uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	IPAddress       string     `json:"ip_address"`
	LoginTime       time.Time  `gorm:"not null;index" json:"login_time"`
	LogoutTime      *time.Time `json:"logout_time,omitempty"`
	SessionDuration *int64     `json:"session_duration_seconds,omitempty"`

	// 関連 (Preload用)
	User *User `gorm:"foreignKey:UserID;references:UserID" json:"user,omitempty"`
}

func (LoginLog) TableName() string {
	return "login_logs"
}
