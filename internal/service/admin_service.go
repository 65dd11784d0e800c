// internal/service/admin_service.go
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

const defaultLeaderboardLimit = 20

// AdminService は管理者向けの設問管理・ユーザー管理・集計を担います
type AdminService interface {
	GetDashboardStats(ctx context.Context) (*model.DashboardStats, error)
	ListQuestions(ctx context.Context, skillID *uuid.UUID, difficulty model.Difficulty) ([]*model.PracticeQuestion, error)
	CreateQuestion(ctx context.Context, req *model.CreateQuestionRequest) (*model.PracticeQuestion, error)
	UpdateQuestion(ctx context.Context, questionID uuid.UUID, req *model.UpdateQuestionRequest) (*model.PracticeQuestion, error)
	DeleteQuestion(ctx context.Context, questionID uuid.UUID) error
	ListUsers(ctx context.Context, search string) ([]*model.AdminUserResponse, error)
	GetUserSkillDetail(ctx context.Context, userID uuid.UUID) (*model.UserSkillListResponse, error)
	SetUserBlocked(ctx context.Context, userID uuid.UUID, blocked bool) error
	DeleteUser(ctx context.Context, userID uuid.UUID) error
	GetLeaderboard(ctx context.Context, slug string, limit int) ([]*model.LeaderboardEntry, error)
	ListLoginLogs(ctx context.Context, limit int) ([]*model.LoginLog, error)
}

type adminService struct {
	db              *gorm.DB
	userRepo        repository.UserRepository
	skillRepo       repository.SkillRepository
	questionRepo    repository.QuestionRepository
	progressRepo    repository.ProgressRepository
	internshipRepo  repository.InternshipRepository
	applicationRepo repository.ApplicationRepository
	loginLogRepo    repository.LoginLogRepository
}

func NewAdminService(
	db *gorm.DB,
	userRepo repository.UserRepository,
	skillRepo repository.SkillRepository,
	questionRepo repository.QuestionRepository,
	progressRepo repository.ProgressRepository,
	internshipRepo repository.InternshipRepository,
	applicationRepo repository.ApplicationRepository,
	loginLogRepo repository.LoginLogRepository,
) AdminService {
	return &adminService{
		db:              db,
		userRepo:        userRepo,
		skillRepo:       skillRepo,
		questionRepo:    questionRepo,
		progressRepo:    progressRepo,
		internshipRepo:  internshipRepo,
		applicationRepo: applicationRepo,
		loginLogRepo:    loginLogRepo,
	}
}

func (s *adminService) GetDashboardStats(ctx context.Context) (*model.DashboardStats, error) {
	logger := middleware.GetLogger(ctx)

	stats := &model.DashboardStats{}
	var err error
	if stats.TotalUsers, err = s.userRepo.Count(ctx, s.db); err != nil {
		logger.Error("Failed to count users", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "集計に失敗しました。", "", err)
	}
	if stats.TotalSkills, err = s.skillRepo.Count(ctx, s.db); err != nil {
		logger.Error("Failed to count skills", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "集計に失敗しました。", "", err)
	}
	if stats.TotalQuestions, err = s.questionRepo.Count(ctx, s.db); err != nil {
		logger.Error("Failed to count questions", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "集計に失敗しました。", "", err)
	}
	if stats.TotalInternships, err = s.internshipRepo.Count(ctx, s.db); err != nil {
		logger.Error("Failed to count internships", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "集計に失敗しました。", "", err)
	}
	if stats.TotalApplications, err = s.applicationRepo.Count(ctx, s.db); err != nil {
		logger.Error("Failed to count applications", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "集計に失敗しました。", "", err)
	}
	return stats, nil
}

func (s *adminService) ListQuestions(ctx context.Context, skillID *uuid.UUID, difficulty model.Difficulty) ([]*model.PracticeQuestion, error) {
	logger := middleware.GetLogger(ctx)

	if difficulty != "" && !difficulty.Valid() {
		return nil, model.NewAppError("INVALID_DIFFICULTY", "難易度の指定が正しくありません。", "difficulty", model.ErrInvalidInput)
	}

	questions, err := s.questionRepo.List(ctx, s.db, skillID, difficulty)
	if err != nil {
		logger.Error("Failed to list questions", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "設問一覧の取得に失敗しました。", "", err)
	}
	return questions, nil
}

func (s *adminService) CreateQuestion(ctx context.Context, req *model.CreateQuestionRequest) (*model.PracticeQuestion, error) {
	logger := middleware.GetLogger(ctx).With("skill_id", req.SkillID)

	if !req.Difficulty.Valid() {
		return nil, model.NewAppError("INVALID_DIFFICULTY", "難易度の指定が正しくありません。", "difficulty", model.ErrInvalidInput)
	}
	if !req.QuestionType.Valid() {
		return nil, model.NewAppError("INVALID_QUESTION_TYPE", "設問形式の指定が正しくありません。", "question_type", model.ErrInvalidInput)
	}
	if req.QuestionType == model.QuestionTypeMCQ && req.CorrectOption == "" {
		return nil, model.NewAppError("MISSING_CORRECT_OPTION", "選択式の設問には正解の選択肢が必要です。", "correct_option", model.ErrInvalidInput)
	}
	if req.QuestionType != model.QuestionTypeMCQ && req.CorrectTextAnswer == "" {
		return nil, model.NewAppError("MISSING_CORRECT_ANSWER", "記述式の設問には正解テキストが必要です。", "correct_text_answer", model.ErrInvalidInput)
	}

	if _, err := s.skillRepo.FindByID(ctx, s.db, req.SkillID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("SKILL_NOT_FOUND", "指定されたスキルが見つかりません。", "skill_id", model.ErrInvalidInput)
		}
		logger.Error("Failed to check skill existence", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "スキルの確認に失敗しました。", "", err)
	}

	// xp_reward はリクエスト値に関係なく BeforeSave で難易度から導出される
	question := &model.PracticeQuestion{
		QuestionID:        uuid.New(),
		SkillID:           req.SkillID,
		QuestionType:      req.QuestionType,
		Difficulty:        req.Difficulty,
		QuestionText:      req.QuestionText,
		OptionA:           req.OptionA,
		OptionB:           req.OptionB,
		OptionC:           req.OptionC,
		OptionD:           req.OptionD,
		CorrectOption:     normalizeOption(req.CorrectOption),
		CorrectTextAnswer: req.CorrectTextAnswer,
	}
	if err := s.questionRepo.Create(ctx, s.db, question); err != nil {
		logger.Error("Failed to create question", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "設問の作成に失敗しました。", "", err)
	}

	logger.Info("Question created", "question_id", question.QuestionID, "difficulty", question.Difficulty)
	return question, nil
}

func (s *adminService) UpdateQuestion(ctx context.Context, questionID uuid.UUID, req *model.UpdateQuestionRequest) (*model.PracticeQuestion, error) {
	logger := middleware.GetLogger(ctx).With("question_id", questionID)

	question, err := s.questionRepo.FindByID(ctx, s.db, questionID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("QUESTION_NOT_FOUND", "設問が見つかりません。", "", model.ErrNotFound)
		}
		logger.Error("Failed to find question", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "設問の取得に失敗しました。", "", err)
	}

	if req.QuestionType != nil {
		if !req.QuestionType.Valid() {
			return nil, model.NewAppError("INVALID_QUESTION_TYPE", "設問形式の指定が正しくありません。", "question_type", model.ErrInvalidInput)
		}
		question.QuestionType = *req.QuestionType
	}
	if req.Difficulty != nil {
		if !req.Difficulty.Valid() {
			return nil, model.NewAppError("INVALID_DIFFICULTY", "難易度の指定が正しくありません。", "difficulty", model.ErrInvalidInput)
		}
		question.Difficulty = *req.Difficulty
	}
	if req.QuestionText != nil {
		question.QuestionText = *req.QuestionText
	}
	if req.OptionA != nil {
		question.OptionA = *req.OptionA
	}
	if req.OptionB != nil {
		question.OptionB = *req.OptionB
	}
	if req.OptionC != nil {
		question.OptionC = *req.OptionC
	}
	if req.OptionD != nil {
		question.OptionD = *req.OptionD
	}
	if req.CorrectOption != nil {
		question.CorrectOption = normalizeOption(*req.CorrectOption)
	}
	if req.CorrectTextAnswer != nil {
		question.CorrectTextAnswer = *req.CorrectTextAnswer
	}

	// Save経由なので難易度を変えると xp_reward も追従する
	if err := s.questionRepo.Update(ctx, s.db, question); err != nil {
		logger.Error("Failed to update question", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "設問の更新に失敗しました。", "", err)
	}

	logger.Info("Question updated")
	return question, nil
}

func (s *adminService) DeleteQuestion(ctx context.Context, questionID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("question_id", questionID)

	if err := s.questionRepo.Delete(ctx, s.db, questionID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.NewAppError("QUESTION_NOT_FOUND", "設問が見つかりません。", "", model.ErrNotFound)
		}
		logger.Error("Failed to delete question", "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "設問の削除に失敗しました。", "", err)
	}
	logger.Info("Question deleted")
	return nil
}

func (s *adminService) ListUsers(ctx context.Context, search string) ([]*model.AdminUserResponse, error) {
	logger := middleware.GetLogger(ctx)

	users, err := s.userRepo.List(ctx, s.db, search)
	if err != nil {
		logger.Error("Failed to list users", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "ユーザー一覧の取得に失敗しました。", "", err)
	}

	responses := make([]*model.AdminUserResponse, 0, len(users))
	for _, u := range users {
		summary, err := s.progressRepo.SummaryByUser(ctx, s.db, u.UserID)
		if err != nil {
			logger.Error("Failed to summarize user skills", "error", err, "user_id", u.UserID)
			return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "スキル統計の集計に失敗しました。", "", err)
		}
		responses = append(responses, &model.AdminUserResponse{
			User: model.UserResponse{
				UserID:    u.UserID,
				Username:  u.Username,
				Email:     u.Email,
				IsAdmin:   u.IsAdmin,
				IsBlocked: u.IsBlocked,
				CreatedAt: u.CreatedAt,
			},
			Summary: *summary,
		})
	}
	return responses, nil
}

func (s *adminService) GetUserSkillDetail(ctx context.Context, userID uuid.UUID) (*model.UserSkillListResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	if _, err := s.userRepo.FindByID(ctx, s.db, userID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("USER_NOT_FOUND", "ユーザーが見つかりません。", "", model.ErrNotFound)
		}
		logger.Error("Failed to find user", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "ユーザーの取得に失敗しました。", "", err)
	}

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

	return &model.UserSkillListResponse{
		Skills:  progresses,
		Summary: *summary,
	}, nil
}

func (s *adminService) SetUserBlocked(ctx context.Context, userID uuid.UUID, blocked bool) error {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "blocked", blocked)

	if err := s.userRepo.Update(ctx, s.db, userID, map[string]interface{}{"is_blocked": blocked}); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.NewAppError("USER_NOT_FOUND", "ユーザーが見つかりません。", "", model.ErrNotFound)
		}
		logger.Error("Failed to update blocked flag", "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "利用停止状態の更新に失敗しました。", "", err)
	}
	logger.Info("User blocked flag updated")
	return nil
}

func (s *adminService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.userRepo.Delete(ctx, tx, userID)
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.NewAppError("USER_NOT_FOUND", "ユーザーが見つかりません。", "", model.ErrNotFound)
		}
		logger.Error("Failed to delete user", "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "ユーザーの削除に失敗しました。", "", err)
	}
	logger.Info("User deleted")
	return nil
}

func (s *adminService) GetLeaderboard(ctx context.Context, slug string, limit int) ([]*model.LeaderboardEntry, error) {
	logger := middleware.GetLogger(ctx).With("skill_slug", slug)

	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}

	skill, err := s.skillRepo.FindBySlug(ctx, s.db, slug)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("SKILL_NOT_FOUND", "スキルが見つかりません。", "slug", model.ErrNotFound)
		}
		logger.Error("Failed to find skill by slug", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "スキルの取得に失敗しました。", "", err)
	}

	progresses, err := s.progressRepo.LeaderboardBySkill(ctx, s.db, skill.SkillID, limit)
	if err != nil {
		logger.Error("Failed to load leaderboard", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "ランキングの取得に失敗しました。", "", err)
	}

	entries := make([]*model.LeaderboardEntry, 0, len(progresses))
	for i, p := range progresses {
		entry := &model.LeaderboardEntry{
			Rank:     i + 1,
			UserID:   p.UserID,
			Level:    p.Level,
			XP:       p.XP,
			Progress: p.Progress,
		}
		if p.User != nil {
			entry.Username = p.User.Username
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (s *adminService) ListLoginLogs(ctx context.Context, limit int) ([]*model.LoginLog, error) {
	logger := middleware.GetLogger(ctx)

	logs, err := s.loginLogRepo.List(ctx, s.db, limit)
	if err != nil {
		logger.Error("Failed to list login logs", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "ログイン履歴の取得に失敗しました。", "", err)
	}
	return logs, nil
}

// normalizeOption は選択肢の記号を大文字に揃えます
func normalizeOption(option string) string {
	switch option {
	case "a":
		return "A"
	case "b":
		return "B"
	case "c":
		return "C"
	case "d":
		return "D"
	default:
		return option
	}
}
