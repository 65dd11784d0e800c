// internal/model/material.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// SkillMaterial はスキルに紐づく学習教材です。
// ファイル本体は外部ストレージ側にあり、ここではURLだけを持ちます。
type SkillMaterial struct {
	MaterialID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"material_id"`
	SkillID      uuid.UUID `gorm:"type:uuid;not null;index" json:"skill_id"`
	Title        string    `gorm:"not null" json:"title"`
	Description  string    `json:"description,omitempty"`
	MaterialType string    `gorm:"not null" json:"material_type"` // pdf / video / link など
	FileURL      string    `json:"file_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// 関連 (Preload用)
	Skill *Skill `gorm:"foreignKey:SkillID;references:SkillID" json:"-"`
}

func (SkillMaterial) TableName() string {
	return "skill_materials"
}

// CreateMaterialRequest は管理者向け教材登録リクエストのDTO
type CreateMaterialRequest struct {
	SkillID      uuid.UUID `json:"skill_id" validate:"required"`
	Title        string    `json:"title" validate:"required,min=1,max=200"`
	Description  string    `json:"description" validate:"omitempty,max=2000"`
	MaterialType string    `json:"material_type" validate:"required,oneof=pdf video link article"`
	FileURL      string    `json:"file_url" validate:"omitempty,url"`
}
