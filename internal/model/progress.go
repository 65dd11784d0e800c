// internal/model/progress.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserSkillProgress はユーザーごと・スキルごとの進捗を表します。
// 変更経路は (1) 回答送信によるXP加算、(2) 自由入力スキルの直接セット、の2つだけです。
type UserSkillProgress struct {
	ProgressID uuid.UUID `gorm:"type:uuid;primaryKey" json:"progress_id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index:idx_user_skill,unique" json:"user_id"`
	SkillID    uuid.UUID `gorm:"type:uuid;not null;index:idx_user_skill,unique" json:"skill_id"`
	Level      int       `gorm:"not null;default:1" json:"level"`    // 1以上
	XP         int       `gorm:"not null;default:0" json:"xp"`       // レベルアップで減算される残XP
	Progress   int       `gorm:"not null;default:0" json:"progress"` // 0-100
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// 次レベルに必要なXP (レスポンス組み立て時に算出、永続化しない)
	RequiredXP int `gorm:"-" json:"required_xp,omitempty"`

	// 関連 (Preload用)
	Skill *Skill `gorm:"foreignKey:SkillID;references:SkillID" json:"skill,omitempty"`
	User  *User  `gorm:"foreignKey:UserID;references:UserID" json:"-"`
}

func (UserSkillProgress) TableName() string {
	return "user_skill_progress"
}

// UserSkillSummary はユーザーのスキル一覧に添える集計値です
type UserSkillSummary struct {
	TotalSkills  int `json:"total_skills"`
	TotalXP      int `json:"total_xp"`
	AvgProgress  int `json:"avg_progress"`
	HighestLevel int `json:"highest_level"`
}

// UserSkillListResponse は /me/skills のレスポンスDTO
type UserSkillListResponse struct {
	Skills  []*UserSkillProgress `json:"skills"`
	Summary UserSkillSummary     `json:"summary"`
}

// TierStatus はスキルのティアごとの進捗と解放状態を表します
type TierStatus struct {
	Name      Difficulty `json:"name"`
	Total     int        `json:"total"`
	Completed int        `json:"completed"`
	Progress  int        `json:"progress"` // 0-100
	Unlocked  bool       `json:"unlocked"`
	Color     string     `json:"color"`
}
