// internal/repository/application_repository.go
package repository

import (
	"context"
	"errors"

	"skillsphere/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ApplicationRepository interface {
	Create(ctx context.Context, tx *gorm.DB, application *model.Application) error
	Find(ctx context.Context, db *gorm.DB, userID, internshipID uuid.UUID) (*model.Application, error)
	FindByID(ctx context.Context, db *gorm.DB, applicationID uuid.UUID) (*model.Application, error)
	ListByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Application, error)
	UpdateStatus(ctx context.Context, tx *gorm.DB, applicationID uuid.UUID, status model.ApplicationStatus) error
	Count(ctx context.Context, db *gorm.DB) (int64, error)
}

type gormApplicationRepository struct{}

func NewGormApplicationRepository() ApplicationRepository {
	return &gormApplicationRepository{}
}

func (r *gormApplicationRepository) Create(ctx context.Context, tx *gorm.DB, application *model.Application) error {
	result := tx.WithContext(ctx).Create(application)
	if result.Error != nil {
		// (user, internship) の複合ユニーク制約違反 = 二重応募
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return model.ErrConflict
		}
		return result.Error
	}
	return nil
}

func (r *gormApplicationRepository) Find(ctx context.Context, db *gorm.DB, userID, internshipID uuid.UUID) (*model.Application, error) {
	var application model.Application
	result := db.WithContext(ctx).
		Where("user_id = ? AND internship_id = ?", userID, internshipID).
		First(&application)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &application, nil
}

func (r *gormApplicationRepository) FindByID(ctx context.Context, db *gorm.DB, applicationID uuid.UUID) (*model.Application, error) {
	var application model.Application
	result := db.WithContext(ctx).Where("application_id = ?", applicationID).First(&application)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &application, nil
}

func (r *gormApplicationRepository) ListByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Application, error) {
	var applications []*model.Application
	result := db.WithContext(ctx).
		Preload("Internship").
		Where("user_id = ?", userID).
		Order("applied_on DESC").
		Find(&applications)
	if result.Error != nil {
		return nil, result.Error
	}
	return applications, nil
}

func (r *gormApplicationRepository) UpdateStatus(ctx context.Context, tx *gorm.DB, applicationID uuid.UUID, status model.ApplicationStatus) error {
	result := tx.WithContext(ctx).Model(&model.Application{}).
		Where("application_id = ?", applicationID).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormApplicationRepository) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	result := db.WithContext(ctx).Model(&model.Application{}).Count(&count)
	return count, result.Error
}
