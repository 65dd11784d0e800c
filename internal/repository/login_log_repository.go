// internal/repository/login_log_repository.go
package repository

import (
	"context"
	"errors"
	"time"

	"skillsphere/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LoginLogRepository interface {
	Create(ctx context.Context, tx *gorm.DB, log *model.LoginLog) error
	// FindLatestOpen はログアウト未記録の最新ログを返します
	FindLatestOpen(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.LoginLog, error)
	CloseSession(ctx context.Context, tx *gorm.DB, logID uuid.UUID, logoutTime time.Time) error
	List(ctx context.Context, db *gorm.DB, limit int) ([]*model.LoginLog, error)
}

type gormLoginLogRepository struct{}

func NewGormLoginLogRepository() LoginLogRepository {
	return &gormLoginLogRepository{}
}

func (r *gormLoginLogRepository) Create(ctx context.Context, tx *gorm.DB, log *model.LoginLog) error {
	return tx.WithContext(ctx).Create(log).Error
}

func (r *gormLoginLogRepository) FindLatestOpen(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.LoginLog, error) {
	var log model.LoginLog
	result := db.WithContext(ctx).
		Where("user_id = ? AND logout_time IS NULL", userID).
		Order("login_time DESC").
		First(&log)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &log, nil
}

func (r *gormLoginLogRepository) CloseSession(ctx context.Context, tx *gorm.DB, logID uuid.UUID, logoutTime time.Time) error {
	var log model.LoginLog
	if err := tx.WithContext(ctx).Where("log_id = ?", logID).First(&log).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.ErrNotFound
		}
		return err
	}

	duration := int64(logoutTime.Sub(log.LoginTime).Seconds())
	return tx.WithContext(ctx).Model(&log).Updates(map[string]interface{}{
		"logout_time":      logoutTime,
		"session_duration": duration,
	}).Error
}

func (r *gormLoginLogRepository) List(ctx context.Context, db *gorm.DB, limit int) ([]*model.LoginLog, error) {
	var logs []*model.LoginLog
	query := db.WithContext(ctx).Preload("User").Order("login_time DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if result := query.Find(&logs); result.Error != nil {
		return nil, result.Error
	}
	return logs, nil
}
