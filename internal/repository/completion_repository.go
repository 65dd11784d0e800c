// internal/repository/completion_repository.go
package repository

import (
	"context"
	"errors"

	"skillsphere/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CompletionRepository interface {
	Create(ctx context.Context, tx *gorm.DB, completion *model.TaskCompletion) error
	// FindForUpdate は行ロック付きで完了記録を取得します (トランザクション内で使うこと)
	FindForUpdate(ctx context.Context, tx *gorm.DB, userID, questionID uuid.UUID) (*model.TaskCompletion, error)
	Update(ctx context.Context, tx *gorm.DB, completion *model.TaskCompletion) error
	// CountCompletedBySkill はユーザーがそのスキルで正答済みの設問数を返します
	CountCompletedBySkill(ctx context.Context, db *gorm.DB, userID, skillID uuid.UUID) (int64, error)
	// CountCompletedPerDifficulty はティアごとの正答済み数を返します
	CountCompletedPerDifficulty(ctx context.Context, db *gorm.DB, userID, skillID uuid.UUID) (map[model.Difficulty]int, error)
}

type gormCompletionRepository struct{}

func NewGormCompletionRepository() CompletionRepository {
	return &gormCompletionRepository{}
}

func (r *gormCompletionRepository) Create(ctx context.Context, tx *gorm.DB, completion *model.TaskCompletion) error {
	result := tx.WithContext(ctx).Create(completion)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return model.ErrConflict
		}
		return result.Error
	}
	return nil
}

func (r *gormCompletionRepository) FindForUpdate(ctx context.Context, tx *gorm.DB, userID, questionID uuid.UUID) (*model.TaskCompletion, error) {
	var completion model.TaskCompletion
	result := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ? AND question_id = ?", userID, questionID).
		First(&completion)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &completion, nil
}

func (r *gormCompletionRepository) Update(ctx context.Context, tx *gorm.DB, completion *model.TaskCompletion) error {
	return tx.WithContext(ctx).Save(completion).Error
}

func (r *gormCompletionRepository) CountCompletedBySkill(ctx context.Context, db *gorm.DB, userID, skillID uuid.UUID) (int64, error) {
	var count int64
	result := db.WithContext(ctx).Model(&model.TaskCompletion{}).
		Joins("JOIN practice_questions ON practice_questions.question_id = task_completions.question_id").
		Where("task_completions.user_id = ? AND task_completions.completed = ? AND practice_questions.skill_id = ?", userID, true, skillID).
		Count(&count)
	return count, result.Error
}

func (r *gormCompletionRepository) CountCompletedPerDifficulty(ctx context.Context, db *gorm.DB, userID, skillID uuid.UUID) (map[model.Difficulty]int, error) {
	type row struct {
		Difficulty model.Difficulty
		Count      int
	}
	var rows []row
	result := db.WithContext(ctx).Model(&model.TaskCompletion{}).
		Select("practice_questions.difficulty AS difficulty, COUNT(*) AS count").
		Joins("JOIN practice_questions ON practice_questions.question_id = task_completions.question_id").
		Where("task_completions.user_id = ? AND task_completions.completed = ? AND practice_questions.skill_id = ?", userID, true, skillID).
		Group("practice_questions.difficulty").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	counts := make(map[model.Difficulty]int, len(rows))
	for _, r := range rows {
		counts[r.Difficulty] = r.Count
	}
	return counts, nil
}
