// internal/service/internship_service.go
package service

import (
	"context"
	"errors"
	"fmt"

	"skillsphere/internal/middleware"
	"skillsphere/internal/model"
	"skillsphere/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InternshipService はマイクロインターンシップの募集と応募を扱います
type InternshipService interface {
	ListInternships(ctx context.Context) ([]*model.MicroInternship, error)
	GetInternship(ctx context.Context, internshipID uuid.UUID) (*model.MicroInternship, error)
	CreateInternship(ctx context.Context, req *model.CreateInternshipRequest) (*model.MicroInternship, error)
	DeleteInternship(ctx context.Context, internshipID uuid.UUID) error
	Apply(ctx context.Context, userID, internshipID uuid.UUID, req *model.ApplyInternshipRequest) (*model.Application, error)
	ListMyApplications(ctx context.Context, userID uuid.UUID) ([]*model.Application, error)
	UpdateApplicationStatus(ctx context.Context, applicationID uuid.UUID, status model.ApplicationStatus) error
}

type internshipService struct {
	db               *gorm.DB
	internshipRepo   repository.InternshipRepository
	applicationRepo  repository.ApplicationRepository
	skillRepo        repository.SkillRepository
	notificationRepo repository.NotificationRepository
}

func NewInternshipService(
	db *gorm.DB,
	internshipRepo repository.InternshipRepository,
	applicationRepo repository.ApplicationRepository,
	skillRepo repository.SkillRepository,
	notificationRepo repository.NotificationRepository,
) InternshipService {
	return &internshipService{
		db:               db,
		internshipRepo:   internshipRepo,
		applicationRepo:  applicationRepo,
		skillRepo:        skillRepo,
		notificationRepo: notificationRepo,
	}
}

func (s *internshipService) ListInternships(ctx context.Context) ([]*model.MicroInternship, error) {
	logger := middleware.GetLogger(ctx)

	internships, err := s.internshipRepo.List(ctx, s.db)
	if err != nil {
		logger.Error("Failed to list internships", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "募集一覧の取得に失敗しました。", "", err)
	}
	return internships, nil
}

func (s *internshipService) GetInternship(ctx context.Context, internshipID uuid.UUID) (*model.MicroInternship, error) {
	logger := middleware.GetLogger(ctx).With("internship_id", internshipID)

	internship, err := s.internshipRepo.FindByID(ctx, s.db, internshipID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("INTERNSHIP_NOT_FOUND", "募集が見つかりません。", "", model.ErrNotFound)
		}
		logger.Error("Failed to find internship", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "募集の取得に失敗しました。", "", err)
	}
	return internship, nil
}

func (s *internshipService) CreateInternship(ctx context.Context, req *model.CreateInternshipRequest) (*model.MicroInternship, error) {
	logger := middleware.GetLogger(ctx).With("title", req.Title)

	// 紐づけ先スキルの存在チェック
	if _, err := s.skillRepo.FindByID(ctx, s.db, req.SkillID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("SKILL_NOT_FOUND", "指定されたスキルが見つかりません。", "skill_id", model.ErrInvalidInput)
		}
		logger.Error("Failed to check skill existence", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "スキルの確認に失敗しました。", "", err)
	}

	internship := &model.MicroInternship{
		InternshipID:  uuid.New(),
		Title:         req.Title,
		Description:   req.Description,
		SkillID:       req.SkillID,
		DurationWeeks: req.DurationWeeks,
		RewardPoints:  req.RewardPoints,
		Mentor:        req.Mentor,
	}
	if internship.DurationWeeks == 0 {
		internship.DurationWeeks = 1
	}
	if internship.RewardPoints == 0 {
		internship.RewardPoints = 50
	}
	if internship.Mentor == "" {
		internship.Mentor = "AI Mentor"
	}

	if err := s.internshipRepo.Create(ctx, s.db, internship); err != nil {
		logger.Error("Failed to create internship", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "募集の作成に失敗しました。", "", err)
	}

	// 新規募集は全体向けのお知らせとして配信する (失敗しても作成は成立)
	notification := &model.Notification{
		NotificationID: uuid.New(),
		Title:          "新しいマイクロインターンシップ",
		Message:        fmt.Sprintf("「%s」の募集が公開されました。", internship.Title),
		Type:           "update",
	}
	if err := s.notificationRepo.Create(ctx, s.db, notification); err != nil {
		logger.Warn("Failed to broadcast internship notification", "error", err)
	}

	logger.Info("Internship created", "internship_id", internship.InternshipID)
	return internship, nil
}

func (s *internshipService) DeleteInternship(ctx context.Context, internshipID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("internship_id", internshipID)

	if err := s.internshipRepo.Delete(ctx, s.db, internshipID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.NewAppError("INTERNSHIP_NOT_FOUND", "募集が見つかりません。", "", model.ErrNotFound)
		}
		logger.Error("Failed to delete internship", "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "募集の削除に失敗しました。", "", err)
	}
	logger.Info("Internship deleted")
	return nil
}

// Apply は募集への応募を登録します。同じ募集への二重応募はできません。
func (s *internshipService) Apply(ctx context.Context, userID, internshipID uuid.UUID, req *model.ApplyInternshipRequest) (*model.Application, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "internship_id", internshipID)

	internship, err := s.internshipRepo.FindByID(ctx, s.db, internshipID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("INTERNSHIP_NOT_FOUND", "募集が見つかりません。", "", model.ErrNotFound)
		}
		logger.Error("Failed to find internship for application", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "募集の取得に失敗しました。", "", err)
	}

	application := &model.Application{
		ApplicationID: uuid.New(),
		UserID:        userID,
		InternshipID:  internshipID,
		Motivation:    req.Motivation,
		Status:        model.ApplicationPending,
	}
	if err := s.applicationRepo.Create(ctx, s.db, application); err != nil {
		// ユーザー×募集の一意制約に任せる
		if errors.Is(err, model.ErrConflict) {
			logger.Warn("Duplicate application rejected")
			return nil, model.NewAppError("ALREADY_APPLIED", "この募集には既に応募しています。", "", model.ErrConflict)
		}
		logger.Error("Failed to create application", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "応募の登録に失敗しました。", "", err)
	}

	application.Internship = internship
	logger.Info("Application submitted", "application_id", application.ApplicationID)
	return application, nil
}

func (s *internshipService) ListMyApplications(ctx context.Context, userID uuid.UUID) ([]*model.Application, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	applications, err := s.applicationRepo.ListByUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to list applications", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "応募一覧の取得に失敗しました。", "", err)
	}
	return applications, nil
}

// UpdateApplicationStatus は応募のステータスを変更し、本人に通知します
func (s *internshipService) UpdateApplicationStatus(ctx context.Context, applicationID uuid.UUID, status model.ApplicationStatus) error {
	logger := middleware.GetLogger(ctx).With("application_id", applicationID, "status", status)

	if !status.Valid() {
		return model.NewAppError("INVALID_STATUS", "ステータスの指定が正しくありません。", "status", model.ErrInvalidInput)
	}

	application, err := s.applicationRepo.FindByID(ctx, s.db, applicationID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.NewAppError("APPLICATION_NOT_FOUND", "応募が見つかりません。", "", model.ErrNotFound)
		}
		logger.Error("Failed to find application", "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "応募の取得に失敗しました。", "", err)
	}

	if err := s.applicationRepo.UpdateStatus(ctx, s.db, applicationID, status); err != nil {
		logger.Error("Failed to update application status", "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "ステータスの更新に失敗しました。", "", err)
	}

	title := "応募ステータスの更新"
	message := fmt.Sprintf("応募のステータスが「%s」に更新されました。", status)
	notification := &model.Notification{
		NotificationID: uuid.New(),
		UserID:         &application.UserID,
		Title:          title,
		Message:        message,
		Type:           "update",
	}
	if err := s.notificationRepo.Create(ctx, s.db, notification); err != nil {
		logger.Warn("Failed to notify applicant", "error", err)
	}

	logger.Info("Application status updated")
	return nil
}
