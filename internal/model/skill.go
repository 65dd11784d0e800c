// internal/model/skill.go
package model

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

// Skill はカタログ上のスキルを表します。
// 管理者が登録するほか、ユーザーの自由入力から get-or-create でも作られます。
type Skill struct {
	SkillID     uuid.UUID  `gorm:"type:uuid;primaryKey" json:"skill_id"`
	Name        string     `gorm:"unique;not null" json:"name"`
	Slug        string     `gorm:"uniqueIndex;not null" json:"slug"`
	Category    string     `json:"category,omitempty"`
	Difficulty  Difficulty `json:"difficulty,omitempty"` // カタログ上の目安 (出題の難易度とは別)
	Description string     `json:"description,omitempty"`
	Icon        string     `json:"icon,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// 関連 (スキル削除時に設問もカスケード削除)
	Questions []PracticeQuestion `gorm:"foreignKey:SkillID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Skill) TableName() string {
	return "skills"
}

// Slugify はスキル名をURLセーフなスラッグに正規化します。
// 小文字化したうえで英数字以外の連続をハイフン1つに畳み込みます
// ("C/C++" → "c-c", "Data  Analysis" → "data-analysis")。
// 日本語などの非ASCII文字はそのまま残します。
func Slugify(name string) string {
	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		} else {
			pendingHyphen = true
		}
	}
	return b.String()
}

// CreateSkillRequest は管理者向けスキル作成リクエストのDTO
type CreateSkillRequest struct {
	Name        string     `json:"name" validate:"required,min=1,max=100"`
	Category    string     `json:"category" validate:"omitempty,max=100"`
	Difficulty  Difficulty `json:"difficulty" validate:"omitempty,max=50"`
	Description string     `json:"description" validate:"omitempty,max=2000"`
	Icon        string     `json:"icon" validate:"omitempty,max=100"`
}

// UpdateSkillRequest は管理者向けスキル更新リクエストのDTO
type UpdateSkillRequest struct {
	Name        *string     `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Category    *string     `json:"category,omitempty" validate:"omitempty,max=100"`
	Difficulty  *Difficulty `json:"difficulty,omitempty" validate:"omitempty,max=50"`
	Description *string     `json:"description,omitempty" validate:"omitempty,max=2000"`
	Icon        *string     `json:"icon,omitempty" validate:"omitempty,max=100"`
}

// AddUserSkillRequest はユーザーの自由入力によるスキル追加リクエストのDTO。
// progress はXP計算を経由せず直接セットされます (管理・自己申告用の別経路)。
type AddUserSkillRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Progress *int   `json:"progress" validate:"required,min=0,max=100"`
}
