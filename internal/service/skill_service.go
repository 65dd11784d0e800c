// internal/service/skill_service.go
package service

import (
	"context"
	"errors"

	"skillsphere/internal/middleware"
	"skillsphere/internal/model"
	"skillsphere/internal/progression"
	"skillsphere/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SkillService はスキルカタログと利用者のスキル登録・進捗を扱います
type SkillService interface {
	ListSkills(ctx context.Context, category string, difficulty model.Difficulty) ([]*model.Skill, error)
	GetSkillBySlug(ctx context.Context, slug string) (*model.Skill, error)
	CreateSkill(ctx context.Context, req *model.CreateSkillRequest) (*model.Skill, error)
	UpdateSkill(ctx context.Context, skillID uuid.UUID, req *model.UpdateSkillRequest) (*model.Skill, error)
	DeleteSkill(ctx context.Context, skillID uuid.UUID) error
	AddOrUpdateUserSkill(ctx context.Context, userID uuid.UUID, req *model.AddUserSkillRequest) (*model.UserSkillProgress, error)
	ListUserSkills(ctx context.Context, userID uuid.UUID) (*model.UserSkillListResponse, error)
}

type skillService struct {
	db           *gorm.DB
	skillRepo    repository.SkillRepository
	progressRepo repository.ProgressRepository
}

func NewSkillService(db *gorm.DB, skillRepo repository.SkillRepository, progressRepo repository.ProgressRepository) SkillService {
	return &skillService{db: db, skillRepo: skillRepo, progressRepo: progressRepo}
}

func (s *skillService) ListSkills(ctx context.Context, category string, difficulty model.Difficulty) ([]*model.Skill, error) {
	logger := middleware.GetLogger(ctx)

	if difficulty != "" && !difficulty.Valid() {
		return nil, model.NewAppError("INVALID_DIFFICULTY", "難易度の指定が正しくありません。", "difficulty", model.ErrInvalidInput)
	}

	skills, err := s.skillRepo.List(ctx, s.db, category, string(difficulty))
	if err != nil {
		logger.Error("Failed to list skills", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "スキル一覧の取得に失敗しました。", "", err)
	}
	return skills, nil
}

func (s *skillService) GetSkillBySlug(ctx context.Context, slug string) (*model.Skill, error) {
	logger := middleware.GetLogger(ctx).With("skill_slug", slug)

	skill, err := s.skillRepo.FindBySlug(ctx, s.db, slug)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("SKILL_NOT_FOUND", "スキルが見つかりません。", "slug", model.ErrNotFound)
		}
		logger.Error("Failed to find skill by slug", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "スキルの取得に失敗しました。", "", err)
	}
	return skill, nil
}

func (s *skillService) CreateSkill(ctx context.Context, req *model.CreateSkillRequest) (*model.Skill, error) {
	logger := middleware.GetLogger(ctx).With("skill_name", req.Name)

	if !req.Difficulty.Valid() {
		return nil, model.NewAppError("INVALID_DIFFICULTY", "難易度の指定が正しくありません。", "difficulty", model.ErrInvalidInput)
	}

	skill := &model.Skill{
		SkillID:     uuid.New(),
		Name:        req.Name,
		Slug:        model.Slugify(req.Name),
		Category:    req.Category,
		Difficulty:  req.Difficulty,
		Description: req.Description,
		Icon:        req.Icon,
	}
	if err := s.skillRepo.Create(ctx, s.db, skill); err != nil {
		if errors.Is(err, model.ErrConflict) {
			return nil, model.NewAppError("SKILL_ALREADY_EXISTS", "同名のスキルが既に存在します。", "name", model.ErrConflict)
		}
		logger.Error("Failed to create skill", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "スキルの作成に失敗しました。", "", err)
	}

	logger.Info("Skill created", "skill_id", skill.SkillID, "slug", skill.Slug)
	return skill, nil
}

func (s *skillService) UpdateSkill(ctx context.Context, skillID uuid.UUID, req *model.UpdateSkillRequest) (*model.Skill, error) {
	logger := middleware.GetLogger(ctx).With("skill_id", skillID)

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
		updates["slug"] = model.Slugify(*req.Name)
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Difficulty != nil {
		if !req.Difficulty.Valid() {
			return nil, model.NewAppError("INVALID_DIFFICULTY", "難易度の指定が正しくありません。", "difficulty", model.ErrInvalidInput)
		}
		updates["difficulty"] = *req.Difficulty
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Icon != nil {
		updates["icon"] = *req.Icon
	}
	if len(updates) == 0 {
		return nil, model.NewAppError("NO_UPDATE_FIELDS", "更新する項目がありません。", "", model.ErrInvalidInput)
	}

	if err := s.skillRepo.Update(ctx, s.db, skillID, updates); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("SKILL_NOT_FOUND", "スキルが見つかりません。", "", model.ErrNotFound)
		}
		if errors.Is(err, model.ErrConflict) {
			return nil, model.NewAppError("SKILL_ALREADY_EXISTS", "同名のスキルが既に存在します。", "name", model.ErrConflict)
		}
		logger.Error("Failed to update skill", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "スキルの更新に失敗しました。", "", err)
	}

	skill, err := s.skillRepo.FindByID(ctx, s.db, skillID)
	if err != nil {
		logger.Error("Failed to reload skill after update", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "スキルの取得に失敗しました。", "", err)
	}
	logger.Info("Skill updated")
	return skill, nil
}

func (s *skillService) DeleteSkill(ctx context.Context, skillID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("skill_id", skillID)

	if err := s.skillRepo.Delete(ctx, s.db, skillID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.NewAppError("SKILL_NOT_FOUND", "スキルが見つかりません。", "", model.ErrNotFound)
		}
		logger.Error("Failed to delete skill", "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "スキルの削除に失敗しました。", "", err)
	}
	logger.Info("Skill deleted")
	return nil
}

// AddOrUpdateUserSkill は自由入力のスキル名を get-or-create し、
// そのスキルの進捗率を指定値で直接設定します。既存の Level と XP には
// 一切触れません (進捗率のみの上書き)。
func (s *skillService) AddOrUpdateUserSkill(ctx context.Context, userID uuid.UUID, req *model.AddUserSkillRequest) (*model.UserSkillProgress, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "skill_name", req.Name)

	var result *model.UserSkillProgress
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		skill, err := s.skillRepo.FindByName(ctx, tx, req.Name)
		if err != nil {
			if !errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("INTERNAL_SERVER_ERROR", "スキルの取得に失敗しました。", "", err)
			}
			skill = &model.Skill{
				SkillID:    uuid.New(),
				Name:       req.Name,
				Slug:       model.Slugify(req.Name),
				Category:   "General",
				Difficulty: model.DifficultyBeginner,
			}
			if createErr := s.skillRepo.Create(ctx, tx, skill); createErr != nil {
				// 同名スキルの同時作成に負けた場合は既存行を引き直す
				if !errors.Is(createErr, model.ErrConflict) {
					return model.NewAppError("INTERNAL_SERVER_ERROR", "スキルの作成に失敗しました。", "", createErr)
				}
				skill, err = s.skillRepo.FindByName(ctx, tx, req.Name)
				if err != nil {
					return model.NewAppError("INTERNAL_SERVER_ERROR", "スキルの取得に失敗しました。", "", err)
				}
			}
		}

		progress, err := s.progressRepo.FindForUpdate(ctx, tx, userID, skill.SkillID)
		if err != nil {
			if !errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("INTERNAL_SERVER_ERROR", "進捗の取得に失敗しました。", "", err)
			}
			progress = &model.UserSkillProgress{
				ProgressID: uuid.New(),
				UserID:     userID,
				SkillID:    skill.SkillID,
				Level:      1,
				XP:         0,
				Progress:   *req.Progress,
			}
			if createErr := s.progressRepo.Create(ctx, tx, progress); createErr != nil {
				if errors.Is(createErr, model.ErrConflict) {
					return createErr
				}
				return model.NewAppError("INTERNAL_SERVER_ERROR", "進捗の作成に失敗しました。", "", createErr)
			}
		} else {
			progress.Progress = *req.Progress
			if updateErr := s.progressRepo.Update(ctx, tx, progress); updateErr != nil {
				return model.NewAppError("INTERNAL_SERVER_ERROR", "進捗の更新に失敗しました。", "", updateErr)
			}
		}

		progress.Skill = skill
		result = progress
		return nil
	})

	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		if errors.Is(err, model.ErrConflict) {
			return nil, model.NewAppError("SKILL_ALREADY_REGISTERED", "このスキルは既に登録されています。", "name", model.ErrConflict)
		}
		logger.Error("Transaction failed for AddOrUpdateUserSkill", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "スキルの登録に失敗しました。", "", err)
	}

	logger.Info("User skill registered", "skill_id", result.SkillID, "progress", result.Progress)
	return result, nil
}

func (s *skillService) ListUserSkills(ctx context.Context, userID uuid.UUID) (*model.UserSkillListResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	progresses, err := s.progressRepo.ListByUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to list user skills", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "スキル一覧の取得に失敗しました。", "", err)
	}

	summary, err := s.progressRepo.SummaryByUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to summarize user skills", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "スキル統計の集計に失敗しました。", "", err)
	}

	for _, p := range progresses {
		p.RequiredXP = progression.RequiredXP(p.Level)
	}

	return &model.UserSkillListResponse{
		Skills:  progresses,
		Summary: *summary,
	}, nil
}
