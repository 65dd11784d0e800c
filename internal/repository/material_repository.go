// internal/repository/material_repository.go
package repository

import (
	"context"
	"errors"

	"skillsphere/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MaterialRepository interface {
	Create(ctx context.Context, tx *gorm.DB, material *model.SkillMaterial) error
	FindByID(ctx context.Context, db *gorm.DB, materialID uuid.UUID) (*model.SkillMaterial, error)
	List(ctx context.Context, db *gorm.DB, skillID *uuid.UUID) ([]*model.SkillMaterial, error)
	Delete(ctx context.Context, tx *gorm.DB, materialID uuid.UUID) error
}

type gormMaterialRepository struct{}

func NewGormMaterialRepository() MaterialRepository {
	return &gormMaterialRepository{}
}

func (r *gormMaterialRepository) Create(ctx context.Context, tx *gorm.DB, material *model.SkillMaterial) error {
	return tx.WithContext(ctx).Create(material).Error
}

func (r *gormMaterialRepository) FindByID(ctx context.Context, db *gorm.DB, materialID uuid.UUID) (*model.SkillMaterial, error) {
	var material model.SkillMaterial
	result := db.WithContext(ctx).Where("material_id = ?", materialID).First(&material)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &material, nil
}

func (r *gormMaterialRepository) List(ctx context.Context, db *gorm.DB, skillID *uuid.UUID) ([]*model.SkillMaterial, error) {
	var materials []*model.SkillMaterial
	query := db.WithContext(ctx).Order("created_at DESC")
	if skillID != nil {
		query = query.Where("skill_id = ?", *skillID)
	}
	if result := query.Find(&materials); result.Error != nil {
		return nil, result.Error
	}
	return materials, nil
}

func (r *gormMaterialRepository) Delete(ctx context.Context, tx *gorm.DB, materialID uuid.UUID) error {
	result := tx.WithContext(ctx).Where("material_id = ?", materialID).Delete(&model.SkillMaterial{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
