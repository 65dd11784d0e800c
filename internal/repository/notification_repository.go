// internal/repository/notification_repository.go
package repository

import (
	"context"
	"errors"

	"skillsphere/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(ctx context.Context, tx *gorm.DB, notification *model.Notification) error
	// ListForUser はユーザー宛てと全体向け (user_id IS NULL) の両方を返します
	ListForUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Notification, error)
	MarkRead(ctx context.Context, tx *gorm.DB, userID, notificationID uuid.UUID) error
}

type gormNotificationRepository struct{}

func NewGormNotificationRepository() NotificationRepository {
	return &gormNotificationRepository{}
}

func (r *gormNotificationRepository) Create(ctx context.Context, tx *gorm.DB, notification *model.Notification) error {
	return tx.WithContext(ctx).Create(notification).Error
}

func (r *gormNotificationRepository) ListForUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Notification, error) {
	var notifications []*model.Notification
	result := db.WithContext(ctx).
		Where("user_id = ? OR user_id IS NULL", userID).
		Order("created_at DESC").
		Find(&notifications)
	if result.Error != nil {
		return nil, result.Error
	}
	return notifications, nil
}

func (r *gormNotificationRepository) MarkRead(ctx context.Context, tx *gorm.DB, userID, notificationID uuid.UUID) error {
	result := tx.WithContext(ctx).Model(&model.Notification{}).
		Where("notification_id = ? AND (user_id = ? OR user_id IS NULL)", notificationID, userID).
		Update("read", true)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return model.ErrNotFound
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
