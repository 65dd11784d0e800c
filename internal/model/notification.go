// internal/model/notification.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Notification はユーザーへのお知らせです。
// UserID が nil のレコードは全学習者向けのブロードキャストとして扱います。
type Notification struct {
	NotificationID uuid.UUID  `gorm:"type:uuid;primaryKey" json:"notification_id"`
	UserID         *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Title          string     `json:"title,omitempty"`
	Message        string     `gorm:"not null" json:"message"`
	Type           string     `gorm:"default:'info'" json:"type"` // info / update / material など
	Read           bool       `gorm:"default:false" json:"read"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (Notification) TableName() string {
	return "notifications"
}

// AnnounceRequest は管理者からの個別アナウンス送信リクエストのDTO
type AnnounceRequest struct {
	Title   string `json:"title" validate:"omitempty,max=200"`
	Message string `json:"message" validate:"required,min=1,max=2000"`
	Type    string `json:"type" validate:"omitempty,oneof=info update material"`
	// メール通知も併せて送るかどうか
	SendEmail bool `json:"send_email"`
}
