// internal/model/internship.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// ApplicationStatus は応募のステータスを表します
type ApplicationStatus string

const (
	ApplicationPending   ApplicationStatus = "Pending"
	ApplicationAccepted  ApplicationStatus = "Accepted"
	ApplicationRejected  ApplicationStatus = "Rejected"
	ApplicationCompleted ApplicationStatus = "Completed"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationPending, ApplicationAccepted, ApplicationRejected, ApplicationCompleted:
		return true
	}
	return false
}

// MicroInternship はマイクロインターンシップの募集を表します
type MicroInternship struct {
	InternshipID  uuid.UUID `gorm:"type:uuid;primaryKey" json:"internship_id"`
	Title         string    `gorm:"not null" json:"title"`
	Description   string    `gorm:"not null" json:"description"`
	SkillID       uuid.UUID `gorm:"type:uuid;not null;index" json:"skill_id"`
	DurationWeeks int       `gorm:"not null;default:1" json:"duration_weeks"`
	RewardPoints  int       `gorm:"not null;default:50" json:"reward_points"`
	Mentor        string    `gorm:"default:'AI Mentor'" json:"mentor"`
	PostedOn      time.Time `gorm:"autoCreateTime" json:"posted_on"`
	UpdatedAt     time.Time `json:"updated_at"`

	// 関連 (Preload用)
	Skill *Skill `gorm:"foreignKey:SkillID;references:SkillID" json:"skill,omitempty"`
}

func (MicroInternship) TableName() string {
	return "micro_internships"
}

// Application はユーザーのインターンシップ応募を表します (ユーザー×募集で一意)
type Application struct {
	ApplicationID uuid.UUID         `gorm:"type:uuid;primaryKey" json:"application_id"`
	UserID        uuid.UUID         `gorm:"type:uuid;not null;index:idx_user_internship,unique" json:"user_id"`
	InternshipID  uuid.UUID         `gorm:"type:uuid;not null;index:idx_user_internship,unique" json:"internship_id"`
	Motivation    string            `json:"motivation,omitempty"`
	Status        ApplicationStatus `gorm:"not null;default:'Pending'" json:"status"`
	AppliedOn     time.Time         `gorm:"autoCreateTime" json:"applied_on"`
	UpdatedAt     time.Time         `json:"updated_at"`

	// 関連 (Preload用)
	Internship *MicroInternship `gorm:"foreignKey:InternshipID;references:InternshipID" json:"internship,omitempty"`
	User       *User            `gorm:"foreignKey:UserID;references:UserID" json:"-"`
}

func (Application) TableName() string {
	return "applications"
}

// CreateInternshipRequest は管理者向け募集作成リクエストのDTO
type CreateInternshipRequest struct {
	Title         string    `json:"title" validate:"required,min=1,max=150"`
	Description   string    `json:"description" validate:"required"`
	SkillID       uuid.UUID `json:"skill_id" validate:"required"`
	DurationWeeks int       `json:"duration_weeks" validate:"omitempty,min=1,max=52"`
	RewardPoints  int       `json:"reward_points" validate:"omitempty,min=0"`
	Mentor        string    `json:"mentor" validate:"omitempty,max=100"`
}

// ApplyInternshipRequest は応募リクエストのDTO
type ApplyInternshipRequest struct {
	Motivation string `json:"motivation" validate:"omitempty,max=2000"`
}

// UpdateApplicationStatusRequest は管理者による応募ステータス更新のDTO
type UpdateApplicationStatusRequest struct {
	Status ApplicationStatus `json:"status" validate:"required"`
}
