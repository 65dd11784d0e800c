// internal/repository/question_repository.go
package repository

import (
	"context"
	"errors"

	"skillsphere/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(ctx context.Context, tx *gorm.DB, question *model.PracticeQuestion) error
	FindByID(ctx context.Context, db *gorm.DB, questionID uuid.UUID) (*model.PracticeQuestion, error)
	// FindByIDsForSkill は指定スキルに属する設問だけを返します。
	// 他スキルのIDが混ざっていても黙って除外されます。
	FindByIDsForSkill(ctx context.Context, db *gorm.DB, skillID uuid.UUID, questionIDs []uuid.UUID) ([]*model.PracticeQuestion, error)
	ListBySkill(ctx context.Context, db *gorm.DB, skillID uuid.UUID, difficulty model.Difficulty, limit int) ([]*model.PracticeQuestion, error)
	List(ctx context.Context, db *gorm.DB, skillID *uuid.UUID, difficulty model.Difficulty) ([]*model.PracticeQuestion, error)
	Count(ctx context.Context, db *gorm.DB) (int64, error)
	CountBySkill(ctx context.Context, db *gorm.DB, skillID uuid.UUID) (int64, error)
	CountBySkillPerDifficulty(ctx context.Context, db *gorm.DB, skillID uuid.UUID) (map[model.Difficulty]int, error)
	Update(ctx context.Context, tx *gorm.DB, question *model.PracticeQuestion) error
	Delete(ctx context.Context, tx *gorm.DB, questionID uuid.UUID) error
}

type gormQuestionRepository struct{}

func NewGormQuestionRepository() QuestionRepository {
	return &gormQuestionRepository{}
}

func (r *gormQuestionRepository) Create(ctx context.Context, tx *gorm.DB, question *model.PracticeQuestion) error {
	return tx.WithContext(ctx).Create(question).Error
}

func (r *gormQuestionRepository) FindByID(ctx context.Context, db *gorm.DB, questionID uuid.UUID) (*model.PracticeQuestion, error) {
	var question model.PracticeQuestion
	result := db.WithContext(ctx).Where("question_id = ?", questionID).First(&question)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &question, nil
}

func (r *gormQuestionRepository) FindByIDsForSkill(ctx context.Context, db *gorm.DB, skillID uuid.UUID, questionIDs []uuid.UUID) ([]*model.PracticeQuestion, error) {
	var questions []*model.PracticeQuestion
	result := db.WithContext(ctx).
		Where("skill_id = ? AND question_id IN ?", skillID, questionIDs).
		Find(&questions)
	if result.Error != nil {
		return nil, result.Error
	}
	return questions, nil
}

func (r *gormQuestionRepository) ListBySkill(ctx context.Context, db *gorm.DB, skillID uuid.UUID, difficulty model.Difficulty, limit int) ([]*model.PracticeQuestion, error) {
	var questions []*model.PracticeQuestion
	query := db.WithContext(ctx).Where("skill_id = ?", skillID)
	if difficulty != "" {
		query = query.Where("difficulty = ?", difficulty)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if result := query.Order("created_at ASC").Find(&questions); result.Error != nil {
		return nil, result.Error
	}
	return questions, nil
}

func (r *gormQuestionRepository) List(ctx context.Context, db *gorm.DB, skillID *uuid.UUID, difficulty model.Difficulty) ([]*model.PracticeQuestion, error) {
	var questions []*model.PracticeQuestion
	query := db.WithContext(ctx).Order("created_at DESC")
	if skillID != nil {
		query = query.Where("skill_id = ?", *skillID)
	}
	if difficulty != "" {
		query = query.Where("difficulty = ?", difficulty)
	}
	if result := query.Find(&questions); result.Error != nil {
		return nil, result.Error
	}
	return questions, nil
}

func (r *gormQuestionRepository) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	if result := db.WithContext(ctx).Model(&model.PracticeQuestion{}).Count(&count); result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

func (r *gormQuestionRepository) CountBySkill(ctx context.Context, db *gorm.DB, skillID uuid.UUID) (int64, error) {
	var count int64
	result := db.WithContext(ctx).Model(&model.PracticeQuestion{}).
		Where("skill_id = ?", skillID).
		Count(&count)
	return count, result.Error
}

func (r *gormQuestionRepository) CountBySkillPerDifficulty(ctx context.Context, db *gorm.DB, skillID uuid.UUID) (map[model.Difficulty]int, error) {
	type row struct {
		Difficulty model.Difficulty
		Count      int
	}
	var rows []row
	result := db.WithContext(ctx).Model(&model.PracticeQuestion{}).
		Select("difficulty, COUNT(*) AS count").
		Where("skill_id = ?", skillID).
		Group("difficulty").
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

func (r *gormQuestionRepository) Update(ctx context.Context, tx *gorm.DB, question *model.PracticeQuestion) error {
	// Save は BeforeSave フックを通るので xp_reward の導出が必ず効く
	result := tx.WithContext(ctx).Save(question)
	return result.Error
}

func (r *gormQuestionRepository) Delete(ctx context.Context, tx *gorm.DB, questionID uuid.UUID) error {
	result := tx.WithContext(ctx).Where("question_id = ?", questionID).Delete(&model.PracticeQuestion{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
