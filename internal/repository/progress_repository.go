// internal/repository/progress_repository.go
package repository

import (
	"context"
	"errors"

	"skillsphere/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository interface {
	Create(ctx context.Context, tx *gorm.DB, progress *model.UserSkillProgress) error
	Find(ctx context.Context, db *gorm.DB, userID, skillID uuid.UUID) (*model.UserSkillProgress, error)
	// FindForUpdate は行ロック付きで進捗を取得します (トランザクション内で使うこと)
	FindForUpdate(ctx context.Context, tx *gorm.DB, userID, skillID uuid.UUID) (*model.UserSkillProgress, error)
	Update(ctx context.Context, tx *gorm.DB, progress *model.UserSkillProgress) error
	ListByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.UserSkillProgress, error)
	SummaryByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.UserSkillSummary, error)
	LeaderboardBySkill(ctx context.Context, db *gorm.DB, skillID uuid.UUID, limit int) ([]*model.UserSkillProgress, error)
}

type gormProgressRepository struct{}

func NewGormProgressRepository() ProgressRepository {
	return &gormProgressRepository{}
}

func (r *gormProgressRepository) Create(ctx context.Context, tx *gorm.DB, progress *model.UserSkillProgress) error {
	result := tx.WithContext(ctx).Create(progress)
	if result.Error != nil {
		// (user, skill) の複合ユニーク制約違反
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return model.ErrConflict
		}
		return result.Error
	}
	return nil
}

func (r *gormProgressRepository) Find(ctx context.Context, db *gorm.DB, userID, skillID uuid.UUID) (*model.UserSkillProgress, error) {
	var progress model.UserSkillProgress
	result := db.WithContext(ctx).
		Where("user_id = ? AND skill_id = ?", userID, skillID).
		First(&progress)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &progress, nil
}

func (r *gormProgressRepository) FindForUpdate(ctx context.Context, tx *gorm.DB, userID, skillID uuid.UUID) (*model.UserSkillProgress, error) {
	var progress model.UserSkillProgress
	result := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ? AND skill_id = ?", userID, skillID).
		First(&progress)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &progress, nil
}

func (r *gormProgressRepository) Update(ctx context.Context, tx *gorm.DB, progress *model.UserSkillProgress) error {
	// 事前に存在確認している前提 (Saveは主キーに基づくUpdate)
	return tx.WithContext(ctx).Save(progress).Error
}

func (r *gormProgressRepository) ListByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.UserSkillProgress, error) {
	var progresses []*model.UserSkillProgress
	result := db.WithContext(ctx).
		Preload("Skill").
		Where("user_id = ?", userID).
		Order("progress DESC").
		Find(&progresses)
	if result.Error != nil {
		return nil, result.Error
	}
	return progresses, nil
}

func (r *gormProgressRepository) SummaryByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.UserSkillSummary, error) {
	type row struct {
		TotalSkills  int
		TotalXP      int
		AvgProgress  float64
		HighestLevel int
	}
	var agg row
	result := db.WithContext(ctx).Model(&model.UserSkillProgress{}).
		Select("COUNT(*) AS total_skills, COALESCE(SUM(xp),0) AS total_xp, COALESCE(AVG(progress),0) AS avg_progress, COALESCE(MAX(level),0) AS highest_level").
		Where("user_id = ?", userID).
		Scan(&agg)
	if result.Error != nil {
		return nil, result.Error
	}
	return &model.UserSkillSummary{
		TotalSkills:  agg.TotalSkills,
		TotalXP:      agg.TotalXP,
		AvgProgress:  int(agg.AvgProgress),
		HighestLevel: agg.HighestLevel,
	}, nil
}

func (r *gormProgressRepository) LeaderboardBySkill(ctx context.Context, db *gorm.DB, skillID uuid.UUID, limit int) ([]*model.UserSkillProgress, error) {
	var progresses []*model.UserSkillProgress
	result := db.WithContext(ctx).
		Preload("User").
		Where("skill_id = ?", skillID).
		Order("xp DESC, level DESC").
		Limit(limit).
		Find(&progresses)
	if result.Error != nil {
		return nil, result.Error
	}
	return progresses, nil
}
