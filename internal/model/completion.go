// internal/model/completion.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// TaskCompletion はユーザーごと・設問ごとの正答記録です。
// 一度 completed=true になったレコードを通常フローで false に戻すことはありません
// (XPの二重獲得を防ぐための台帳)。
type TaskCompletion struct {
	CompletionID uuid.UUID `gorm:"type:uuid;primaryKey" json:"completion_id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index:idx_user_question,unique" json:"user_id"`
	QuestionID   uuid.UUID `gorm:"type:uuid;not null;index:idx_user_question,unique" json:"question_id"`
	Completed    bool      `gorm:"not null;default:false" json:"completed"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	// 関連 (Preload用)
	Question *PracticeQuestion `gorm:"foreignKey:QuestionID;references:QuestionID" json:"-"`
}

func (TaskCompletion) TableName() string {
	return "task_completions"
}

// SubmitAnswersRequest は回答送信リクエストのDTO。
// answers は設問ID → 回答 (選択肢の記号または記述テキスト) のマップです。
type SubmitAnswersRequest struct {
	Difficulty Difficulty        `json:"difficulty" validate:"required"`
	Answers    map[string]string `json:"answers" validate:"required,min=1"`
}

// AnswerResult は設問ごとの採点結果です
type AnswerResult struct {
	QuestionID       uuid.UUID `json:"question_id"`
	Correct          bool      `json:"correct"`
	AlreadyCompleted bool      `json:"already_completed"`
	XPEarned         int       `json:"xp_earned"`
}

// SubmitAnswersResponse は回答送信のレスポンスDTO
type SubmitAnswersResponse struct {
	Results       []AnswerResult `json:"results"`
	Score         int            `json:"score"`
	Total         int            `json:"total"`
	Percent       int            `json:"percent"`
	TotalXPEarned int            `json:"total_xp_earned"`
	LeveledUp     bool           `json:"leveled_up"`
	Level         int            `json:"level"`
	XP            int            `json:"xp"`
	Progress      int            `json:"progress"`
}
