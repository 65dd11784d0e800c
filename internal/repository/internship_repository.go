// internal/repository/internship_repository.go
package repository

import (
	"context"
	"errors"

	"skillsphere/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InternshipRepository interface {
	Create(ctx context.Context, tx *gorm.DB, internship *model.MicroInternship) error
	FindByID(ctx context.Context, db *gorm.DB, internshipID uuid.UUID) (*model.MicroInternship, error)
	List(ctx context.Context, db *gorm.DB) ([]*model.MicroInternship, error)
	Update(ctx context.Context, tx *gorm.DB, internshipID uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, internshipID uuid.UUID) error
	Count(ctx context.Context, db *gorm.DB) (int64, error)
}

type gormInternshipRepository struct{}

func NewGormInternshipRepository() InternshipRepository {
	return &gormInternshipRepository{}
}

func (r *gormInternshipRepository) Create(ctx context.Context, tx *gorm.DB, internship *model.MicroInternship) error {
	return tx.WithContext(ctx).Create(internship).Error
}

func (r *gormInternshipRepository) FindByID(ctx context.Context, db *gorm.DB, internshipID uuid.UUID) (*model.MicroInternship, error) {
	var internship model.MicroInternship
	result := db.WithContext(ctx).Preload("Skill").Where("internship_id = ?", internshipID).First(&internship)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &internship, nil
}

func (r *gormInternshipRepository) List(ctx context.Context, db *gorm.DB) ([]*model.MicroInternship, error) {
	var internships []*model.MicroInternship
	result := db.WithContext(ctx).Preload("Skill").Order("posted_on DESC").Find(&internships)
	if result.Error != nil {
		return nil, result.Error
	}
	return internships, nil
}

func (r *gormInternshipRepository) Update(ctx context.Context, tx *gorm.DB, internshipID uuid.UUID, updates map[string]interface{}) error {
	result := tx.WithContext(ctx).Model(&model.MicroInternship{}).Where("internship_id = ?", internshipID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormInternshipRepository) Delete(ctx context.Context, tx *gorm.DB, internshipID uuid.UUID) error {
	// 紐づく応募も削除する
	if err := tx.WithContext(ctx).Where("internship_id = ?", internshipID).Delete(&model.Application{}).Error; err != nil {
		return err
	}
	result := tx.WithContext(ctx).Where("internship_id = ?", internshipID).Delete(&model.MicroInternship{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormInternshipRepository) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	result := db.WithContext(ctx).Model(&model.MicroInternship{}).Count(&count)
	return count, result.Error
}
