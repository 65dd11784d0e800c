// internal/service/notification_service.go
package service

import (
	"context"
	"errors"

	"skillsphere/internal/middleware"
	"skillsphere/internal/model"
	"skillsphere/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationService はお知らせの閲覧・既読化・管理者からの配信を扱います
type NotificationService interface {
	ListNotifications(ctx context.Context, userID uuid.UUID) ([]*model.Notification, error)
	MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error
	Announce(ctx context.Context, targetUserID uuid.UUID, req *model.AnnounceRequest) (*model.Notification, error)
	Broadcast(ctx context.Context, req *model.AnnounceRequest) (*model.Notification, error)
}

type notificationService struct {
	db               *gorm.DB
	notificationRepo repository.NotificationRepository
	userRepo         repository.UserRepository
	mailer           Mailer
}

func NewNotificationService(
	db *gorm.DB,
	notificationRepo repository.NotificationRepository,
	userRepo repository.UserRepository,
	mailer Mailer,
) NotificationService {
	return &notificationService{
		db:               db,
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		mailer:           mailer,
	}
}

func (s *notificationService) ListNotifications(ctx context.Context, userID uuid.UUID) ([]*model.Notification, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	notifications, err := s.notificationRepo.ListForUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to list notifications", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "お知らせの取得に失敗しました。", "", err)
	}
	return notifications, nil
}

func (s *notificationService) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "notification_id", notificationID)

	if err := s.notificationRepo.MarkRead(ctx, s.db, userID, notificationID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.NewAppError("NOTIFICATION_NOT_FOUND", "お知らせが見つかりません。", "", model.ErrNotFound)
		}
		logger.Error("Failed to mark notification as read", "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "既読処理に失敗しました。", "", err)
	}
	return nil
}

// Announce は特定ユーザー宛てのお知らせを作成し、希望があればメールも送ります
func (s *notificationService) Announce(ctx context.Context, targetUserID uuid.UUID, req *model.AnnounceRequest) (*model.Notification, error) {
	logger := middleware.GetLogger(ctx).With("target_user_id", targetUserID)

	user, err := s.userRepo.FindByID(ctx, s.db, targetUserID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("USER_NOT_FOUND", "対象のユーザーが見つかりません。", "", model.ErrNotFound)
		}
		logger.Error("Failed to find target user", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "ユーザーの取得に失敗しました。", "", err)
	}

	notification, err := s.createNotification(ctx, &targetUserID, req)
	if err != nil {
		return nil, err
	}

	if req.SendEmail {
		// メール失敗で通知作成は巻き戻さない
		if err := s.mailer.Send(ctx, user.Email, "【SkillSphere】"+req.Title, req.Message); err != nil {
			logger.Warn("Failed to send announcement email", "error", err, "email", user.Email)
		}
	}

	logger.Info("Announcement sent", "notification_id", notification.NotificationID)
	return notification, nil
}

// Broadcast は全学習者向けのお知らせ (user_id IS NULL) を作成します
func (s *notificationService) Broadcast(ctx context.Context, req *model.AnnounceRequest) (*model.Notification, error) {
	logger := middleware.GetLogger(ctx)

	notification, err := s.createNotification(ctx, nil, req)
	if err != nil {
		return nil, err
	}

	logger.Info("Broadcast notification created", "notification_id", notification.NotificationID)
	return notification, nil
}

func (s *notificationService) createNotification(ctx context.Context, userID *uuid.UUID, req *model.AnnounceRequest) (*model.Notification, error) {
	logger := middleware.GetLogger(ctx)

	notificationType := req.Type
	if notificationType == "" {
		notificationType = "info"
	}
	notification := &model.Notification{
		NotificationID: uuid.New(),
		UserID:         userID,
		Title:          req.Title,
		Message:        req.Message,
		Type:           notificationType,
	}
	if err := s.notificationRepo.Create(ctx, s.db, notification); err != nil {
		logger.Error("Failed to create notification", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "お知らせの作成に失敗しました。", "", err)
	}
	return notification, nil
}
