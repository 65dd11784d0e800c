// internal/service/material_service.go
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

// MaterialService はスキル教材の管理と閲覧を扱います
type MaterialService interface {
	ListMaterials(ctx context.Context, skillID *uuid.UUID) ([]*model.SkillMaterial, error)
	CreateMaterial(ctx context.Context, req *model.CreateMaterialRequest) (*model.SkillMaterial, error)
	DeleteMaterial(ctx context.Context, materialID uuid.UUID) error
}

type materialService struct {
	db               *gorm.DB
	materialRepo     repository.MaterialRepository
	skillRepo        repository.SkillRepository
	notificationRepo repository.NotificationRepository
}

func NewMaterialService(
	db *gorm.DB,
	materialRepo repository.MaterialRepository,
	skillRepo repository.SkillRepository,
	notificationRepo repository.NotificationRepository,
) MaterialService {
	return &materialService{
		db:               db,
		materialRepo:     materialRepo,
		skillRepo:        skillRepo,
		notificationRepo: notificationRepo,
	}
}

func (s *materialService) ListMaterials(ctx context.Context, skillID *uuid.UUID) ([]*model.SkillMaterial, error) {
	logger := middleware.GetLogger(ctx)

	materials, err := s.materialRepo.List(ctx, s.db, skillID)
	if err != nil {
		logger.Error("Failed to list materials", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "教材一覧の取得に失敗しました。", "", err)
	}
	return materials, nil
}

// CreateMaterial は教材を登録し、全学習者にお知らせを配信します
func (s *materialService) CreateMaterial(ctx context.Context, req *model.CreateMaterialRequest) (*model.SkillMaterial, error) {
	logger := middleware.GetLogger(ctx).With("title", req.Title)

	skill, err := s.skillRepo.FindByID(ctx, s.db, req.SkillID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("SKILL_NOT_FOUND", "指定されたスキルが見つかりません。", "skill_id", model.ErrInvalidInput)
		}
		logger.Error("Failed to check skill existence", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "スキルの確認に失敗しました。", "", err)
	}

	material := &model.SkillMaterial{
		MaterialID:   uuid.New(),
		SkillID:      req.SkillID,
		Title:        req.Title,
		Description:  req.Description,
		MaterialType: req.MaterialType,
		FileURL:      req.FileURL,
	}
	if err := s.materialRepo.Create(ctx, s.db, material); err != nil {
		logger.Error("Failed to create material", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "教材の登録に失敗しました。", "", err)
	}

	// 教材追加はブロードキャスト通知 (失敗しても登録は成立)
	notification := &model.Notification{
		NotificationID: uuid.New(),
		Title:          "新しい教材",
		Message:        fmt.Sprintf("%s の教材「%s」が追加されました。", skill.Name, material.Title),
		Type:           "material",
	}
	if err := s.notificationRepo.Create(ctx, s.db, notification); err != nil {
		logger.Warn("Failed to broadcast material notification", "error", err)
	}

	logger.Info("Material created", "material_id", material.MaterialID, "skill_id", material.SkillID)
	return material, nil
}

func (s *materialService) DeleteMaterial(ctx context.Context, materialID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("material_id", materialID)

	if err := s.materialRepo.Delete(ctx, s.db, materialID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.NewAppError("MATERIAL_NOT_FOUND", "教材が見つかりません。", "", model.ErrNotFound)
		}
		logger.Error("Failed to delete material", "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "教材の削除に失敗しました。", "", err)
	}
	logger.Info("Material deleted")
	return nil
}
