// internal/repository/skill_repository.go
package repository

import (
	"context"
	"errors"

	"skillsphere/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SkillRepository interface {
	Create(ctx context.Context, tx *gorm.DB, skill *model.Skill) error
	FindByID(ctx context.Context, db *gorm.DB, skillID uuid.UUID) (*model.Skill, error)
	FindBySlug(ctx context.Context, db *gorm.DB, slug string) (*model.Skill, error)
	FindByName(ctx context.Context, db *gorm.DB, name string) (*model.Skill, error)
	List(ctx context.Context, db *gorm.DB, category, difficulty string) ([]*model.Skill, error)
	Update(ctx context.Context, tx *gorm.DB, skillID uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, skillID uuid.UUID) error
	Count(ctx context.Context, db *gorm.DB) (int64, error)
}

type gormSkillRepository struct{}

func NewGormSkillRepository() SkillRepository {
	return &gormSkillRepository{}
}

func (r *gormSkillRepository) Create(ctx context.Context, tx *gorm.DB, skill *model.Skill) error {
	result := tx.WithContext(ctx).Create(skill)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return model.ErrConflict
		}
		return result.Error
	}
	return nil
}

func (r *gormSkillRepository) FindByID(ctx context.Context, db *gorm.DB, skillID uuid.UUID) (*model.Skill, error) {
	var skill model.Skill
	result := db.WithContext(ctx).Where("skill_id = ?", skillID).First(&skill)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &skill, nil
}

func (r *gormSkillRepository) FindBySlug(ctx context.Context, db *gorm.DB, slug string) (*model.Skill, error) {
	var skill model.Skill
	result := db.WithContext(ctx).Where("slug = ?", slug).First(&skill)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &skill, nil
}

func (r *gormSkillRepository) FindByName(ctx context.Context, db *gorm.DB, name string) (*model.Skill, error) {
	var skill model.Skill
	result := db.WithContext(ctx).Where("name = ?", name).First(&skill)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &skill, nil
}

func (r *gormSkillRepository) List(ctx context.Context, db *gorm.DB, category, difficulty string) ([]*model.Skill, error) {
	var skills []*model.Skill
	query := db.WithContext(ctx).Order("name ASC")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if difficulty != "" {
		query = query.Where("difficulty = ?", difficulty)
	}
	if result := query.Find(&skills); result.Error != nil {
		return nil, result.Error
	}
	return skills, nil
}

func (r *gormSkillRepository) Update(ctx context.Context, tx *gorm.DB, skillID uuid.UUID, updates map[string]interface{}) error {
	result := tx.WithContext(ctx).Model(&model.Skill{}).Where("skill_id = ?", skillID).Updates(updates)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return model.ErrConflict
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormSkillRepository) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	if result := db.WithContext(ctx).Model(&model.Skill{}).Count(&count); result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

func (r *gormSkillRepository) Delete(ctx context.Context, tx *gorm.DB, skillID uuid.UUID) error {
	// スキル削除は設問にもカスケードする (DB制約 + 明示削除の両方で担保)
	if err := tx.WithContext(ctx).Where("skill_id = ?", skillID).Delete(&model.PracticeQuestion{}).Error; err != nil {
		return err
	}
	result := tx.WithContext(ctx).Where("skill_id = ?", skillID).Delete(&model.Skill{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
