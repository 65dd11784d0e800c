// internal/model/question.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Difficulty は設問の難易度帯 (ティア) を表します
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
	DifficultyExpert       Difficulty = "Expert"
)

// Difficulties はティアの固定順リストです (解放判定はこの順で行う)
var Difficulties = []Difficulty{
	DifficultyBeginner,
	DifficultyIntermediate,
	DifficultyAdvanced,
	DifficultyExpert,
}

// XPReward は難易度に対応する固定XP報酬を返します。
// 設問の xp_reward は保存時に必ずこの値で上書きされます。
func (d Difficulty) XPReward() int {
	switch d {
	case DifficultyBeginner:
		return 5
	case DifficultyIntermediate:
		return 10
	case DifficultyAdvanced:
		return 15
	case DifficultyExpert:
		return 20
	default:
		return 0
	}
}

func (d Difficulty) Valid() bool {
	return d.XPReward() > 0
}

// QuestionType は設問の形式を表します
type QuestionType string

const (
	QuestionTypeMCQ         QuestionType = "mcq"
	QuestionTypeShortAnswer QuestionType = "short_answer"
	QuestionTypeCoding      QuestionType = "coding"
)

func (t QuestionType) Valid() bool {
	switch t {
	case QuestionTypeMCQ, QuestionTypeShortAnswer, QuestionTypeCoding:
		return true
	}
	return false
}

// PracticeQuestion はスキルに紐づく練習問題を表します
type PracticeQuestion struct {
	QuestionID        uuid.UUID    `gorm:"type:uuid;primaryKey" json:"question_id"`
	SkillID           uuid.UUID    `gorm:"type:uuid;not null;index" json:"skill_id"`
	QuestionType      QuestionType `gorm:"not null" json:"question_type"`
	Difficulty        Difficulty   `gorm:"not null;index" json:"difficulty"`
	QuestionText      string       `gorm:"not null" json:"question_text"`
	OptionA           string       `json:"option_a,omitempty"`
	OptionB           string       `json:"option_b,omitempty"`
	OptionC           string       `json:"option_c,omitempty"`
	OptionD           string       `json:"option_d,omitempty"`
	CorrectOption     string       `json:"-"` // 選択式の正解記号 (A-D)
	CorrectTextAnswer string       `json:"-"` // 記述式の正解
	XPReward          int          `gorm:"not null" json:"xp_reward"`
	CreatedAt         time.Time    `json:"created_at"`
	UpdatedAt         time.Time    `json:"updated_at"`

	// 関連 (Preload用)
	Skill *Skill `gorm:"foreignKey:SkillID;references:SkillID" json:"-"`
}

func (PracticeQuestion) TableName() string {
	return "practice_questions"
}

// BeforeSave で xp_reward を難易度テーブルの値に固定します。
// リクエストで何を渡されても難易度から導出した値しか保存されません。
func (q *PracticeQuestion) BeforeSave(tx *gorm.DB) error {
	q.XPReward = q.Difficulty.XPReward()
	return nil
}

// CreateQuestionRequest は管理者向け設問作成リクエストのDTO
type CreateQuestionRequest struct {
	SkillID           uuid.UUID    `json:"skill_id" validate:"required"`
	QuestionType      QuestionType `json:"question_type" validate:"required"`
	Difficulty        Difficulty   `json:"difficulty" validate:"required"`
	QuestionText      string       `json:"question_text" validate:"required"`
	OptionA           string       `json:"option_a"`
	OptionB           string       `json:"option_b"`
	OptionC           string       `json:"option_c"`
	OptionD           string       `json:"option_d"`
	CorrectOption     string       `json:"correct_option" validate:"omitempty,oneof=A B C D a b c d"`
	CorrectTextAnswer string       `json:"correct_text_answer"`
	XPReward          int          `json:"xp_reward"` // 受け取るが無視される (難易度から導出)
}

// UpdateQuestionRequest は管理者向け設問更新リクエストのDTO
type UpdateQuestionRequest struct {
	QuestionType      *QuestionType `json:"question_type,omitempty"`
	Difficulty        *Difficulty   `json:"difficulty,omitempty"`
	QuestionText      *string       `json:"question_text,omitempty" validate:"omitempty,min=1"`
	OptionA           *string       `json:"option_a,omitempty"`
	OptionB           *string       `json:"option_b,omitempty"`
	OptionC           *string       `json:"option_c,omitempty"`
	OptionD           *string       `json:"option_d,omitempty"`
	CorrectOption     *string       `json:"correct_option,omitempty" validate:"omitempty,oneof=A B C D a b c d"`
	CorrectTextAnswer *string       `json:"correct_text_answer,omitempty"`
}

// QuizQuestionResponse は出題時のレスポンスDTO (正解は含めない)
type QuizQuestionResponse struct {
	QuestionID   uuid.UUID    `json:"question_id"`
	QuestionType QuestionType `json:"question_type"`
	Difficulty   Difficulty   `json:"difficulty"`
	QuestionText string       `json:"question_text"`
	OptionA      string       `json:"option_a,omitempty"`
	OptionB      string       `json:"option_b,omitempty"`
	OptionC      string       `json:"option_c,omitempty"`
	OptionD      string       `json:"option_d,omitempty"`
	XPReward     int          `json:"xp_reward"`
}
