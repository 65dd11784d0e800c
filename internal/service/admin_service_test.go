// internal/service/admin_service_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"skillsphere/internal/model"
	"skillsphere/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// --- テストヘルパー関数 ---
func setupTestDBAdmin() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect database for testing: " + err.Error())
	}
	return db
}

func newAdminServiceForTest(t *testing.T) (AdminService, *mocks.UserRepository, *mocks.SkillRepository, *mocks.QuestionRepository, *mocks.ProgressRepository, *mocks.InternshipRepository, *mocks.ApplicationRepository, *mocks.LoginLogRepository) {
	t.Helper()
	db := setupTestDBAdmin()
	userRepo := new(mocks.UserRepository)
	skillRepo := new(mocks.SkillRepository)
	questionRepo := new(mocks.QuestionRepository)
	progressRepo := new(mocks.ProgressRepository)
	internshipRepo := new(mocks.InternshipRepository)
	applicationRepo := new(mocks.ApplicationRepository)
	loginLogRepo := new(mocks.LoginLogRepository)
	svc := NewAdminService(db, userRepo, skillRepo, questionRepo, progressRepo, internshipRepo, applicationRepo, loginLogRepo)
	return svc, userRepo, skillRepo, questionRepo, progressRepo, internshipRepo, applicationRepo, loginLogRepo
}

// --- Test GetDashboardStats ---
func Test_adminService_GetDashboardStats(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: 各テーブルの件数を集計する", func(t *testing.T) {
		svc, userRepo, skillRepo, questionRepo, _, internshipRepo, applicationRepo, _ := newAdminServiceForTest(t)
		userRepo.On("Count", ctx, mock.AnythingOfType("*gorm.DB")).Return(int64(25), nil).Once()
		skillRepo.On("Count", ctx, mock.AnythingOfType("*gorm.DB")).Return(int64(8), nil).Once()
		questionRepo.On("Count", ctx, mock.AnythingOfType("*gorm.DB")).Return(int64(120), nil).Once()
		internshipRepo.On("Count", ctx, mock.AnythingOfType("*gorm.DB")).Return(int64(5), nil).Once()
		applicationRepo.On("Count", ctx, mock.AnythingOfType("*gorm.DB")).Return(int64(14), nil).Once()

		stats, err := svc.GetDashboardStats(ctx)

		require.NoError(t, err)
		assert.Equal(t, int64(25), stats.TotalUsers)
		assert.Equal(t, int64(8), stats.TotalSkills)
		assert.Equal(t, int64(120), stats.TotalQuestions)
		assert.Equal(t, int64(5), stats.TotalInternships)
		assert.Equal(t, int64(14), stats.TotalApplications)
		userRepo.AssertExpectations(t)
		applicationRepo.AssertExpectations(t)
	})

	t.Run("異常系: 集計に失敗すると内部エラー", func(t *testing.T) {
		svc, userRepo, _, _, _, _, _, _ := newAdminServiceForTest(t)
		userRepo.On("Count", ctx, mock.AnythingOfType("*gorm.DB")).Return(int64(0), errors.New("db error")).Once()

		_, err := svc.GetDashboardStats(ctx)

		require.Error(t, err)
		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "INTERNAL_SERVER_ERROR", appErr.Detail.Code)
	})
}

// --- Test CreateQuestion ---
func Test_adminService_CreateQuestion(t *testing.T) {
	ctx := context.Background()
	skillID := uuid.New()
	skill := &model.Skill{SkillID: skillID, Name: "Python", Slug: "python"}

	validReq := &model.CreateQuestionRequest{
		SkillID:       skillID,
		QuestionType:  model.QuestionTypeMCQ,
		Difficulty:    model.DifficultyIntermediate,
		QuestionText:  "リスト内包表記の説明として正しいものは?",
		OptionA:       "選択肢A",
		OptionB:       "選択肢B",
		CorrectOption: "b", // 小文字で渡しても正規化される
	}

	t.Run("正常系: MCQを作成し選択肢が正規化される", func(t *testing.T) {
		svc, _, skillRepo, questionRepo, _, _, _, _ := newAdminServiceForTest(t)
		skillRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), skillID).Return(skill, nil).Once()
		questionRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.PracticeQuestion")).
			Run(func(args mock.Arguments) {
				q := args.Get(2).(*model.PracticeQuestion)
				assert.Equal(t, "B", q.CorrectOption)
				assert.Equal(t, model.DifficultyIntermediate, q.Difficulty)
				assert.NotEqual(t, uuid.Nil, q.QuestionID)
			}).
			Return(nil).Once()

		question, err := svc.CreateQuestion(ctx, validReq)

		require.NoError(t, err)
		assert.Equal(t, "B", question.CorrectOption)
		skillRepo.AssertExpectations(t)
		questionRepo.AssertExpectations(t)
	})

	t.Run("異常系: 難易度が不正", func(t *testing.T) {
		svc, _, _, _, _, _, _, _ := newAdminServiceForTest(t)
		req := *validReq
		req.Difficulty = model.Difficulty("Legendary")

		_, err := svc.CreateQuestion(ctx, &req)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})

	t.Run("異常系: MCQなのに正解の選択肢がない", func(t *testing.T) {
		svc, _, _, _, _, _, _, _ := newAdminServiceForTest(t)
		req := *validReq
		req.CorrectOption = ""

		_, err := svc.CreateQuestion(ctx, &req)

		require.Error(t, err)
		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "MISSING_CORRECT_OPTION", appErr.Detail.Code)
	})

	t.Run("異常系: 記述式なのに正解テキストがない", func(t *testing.T) {
		svc, _, _, _, _, _, _, _ := newAdminServiceForTest(t)
		req := *validReq
		req.QuestionType = model.QuestionTypeShortAnswer
		req.CorrectOption = ""
		req.CorrectTextAnswer = ""

		_, err := svc.CreateQuestion(ctx, &req)

		require.Error(t, err)
		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "MISSING_CORRECT_ANSWER", appErr.Detail.Code)
	})

	t.Run("異常系: スキルが存在しない", func(t *testing.T) {
		svc, _, skillRepo, _, _, _, _, _ := newAdminServiceForTest(t)
		skillRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), skillID).
			Return(nil, model.ErrNotFound).Once()

		_, err := svc.CreateQuestion(ctx, validReq)

		require.Error(t, err)
		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "SKILL_NOT_FOUND", appErr.Detail.Code)
	})
}

// --- Test GetLeaderboard ---
func Test_adminService_GetLeaderboard(t *testing.T) {
	ctx := context.Background()
	skillID := uuid.New()
	skill := &model.Skill{SkillID: skillID, Name: "Python", Slug: "python"}

	t.Run("正常系: XP順に順位が振られる", func(t *testing.T) {
		svc, _, skillRepo, _, progressRepo, _, _, _ := newAdminServiceForTest(t)
		alice := &model.User{UserID: uuid.New(), Username: "alice"}
		bob := &model.User{UserID: uuid.New(), Username: "bob"}
		rows := []*model.UserSkillProgress{
			{UserID: alice.UserID, SkillID: skillID, Level: 5, XP: 80, Progress: 90, User: alice},
			{UserID: bob.UserID, SkillID: skillID, Level: 3, XP: 40, Progress: 55, User: bob},
		}
		skillRepo.On("FindBySlug", ctx, mock.AnythingOfType("*gorm.DB"), "python").Return(skill, nil).Once()
		progressRepo.On("LeaderboardBySkill", ctx, mock.AnythingOfType("*gorm.DB"), skillID, 10).
			Return(rows, nil).Once()

		entries, err := svc.GetLeaderboard(ctx, "python", 10)

		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, 1, entries[0].Rank)
		assert.Equal(t, "alice", entries[0].Username)
		assert.Equal(t, 2, entries[1].Rank)
		assert.Equal(t, "bob", entries[1].Username)
	})

	t.Run("正常系: limit未指定はデフォルト値になる", func(t *testing.T) {
		svc, _, skillRepo, _, progressRepo, _, _, _ := newAdminServiceForTest(t)
		skillRepo.On("FindBySlug", ctx, mock.AnythingOfType("*gorm.DB"), "python").Return(skill, nil).Once()
		progressRepo.On("LeaderboardBySkill", ctx, mock.AnythingOfType("*gorm.DB"), skillID, defaultLeaderboardLimit).
			Return([]*model.UserSkillProgress{}, nil).Once()

		entries, err := svc.GetLeaderboard(ctx, "python", 0)

		require.NoError(t, err)
		assert.Empty(t, entries)
		progressRepo.AssertExpectations(t)
	})

	t.Run("異常系: スキルが存在しない", func(t *testing.T) {
		svc, _, skillRepo, _, _, _, _, _ := newAdminServiceForTest(t)
		skillRepo.On("FindBySlug", ctx, mock.AnythingOfType("*gorm.DB"), "unknown").
			Return(nil, model.ErrNotFound).Once()

		_, err := svc.GetLeaderboard(ctx, "unknown", 10)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

// --- Test SetUserBlocked ---
func Test_adminService_SetUserBlocked(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("正常系: ブロックフラグを更新できる", func(t *testing.T) {
		svc, userRepo, _, _, _, _, _, _ := newAdminServiceForTest(t)
		userRepo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), userID, map[string]interface{}{"is_blocked": true}).
			Return(nil).Once()

		err := svc.SetUserBlocked(ctx, userID, true)

		require.NoError(t, err)
		userRepo.AssertExpectations(t)
	})

	t.Run("異常系: ユーザーが存在しない", func(t *testing.T) {
		svc, userRepo, _, _, _, _, _, _ := newAdminServiceForTest(t)
		userRepo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), userID, mock.Anything).
			Return(model.ErrNotFound).Once()

		err := svc.SetUserBlocked(ctx, userID, false)

		require.Error(t, err)
		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "USER_NOT_FOUND", appErr.Detail.Code)
	})
}

// --- Test GetUserSkillDetail ---
func Test_adminService_GetUserSkillDetail(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	user := &model.User{UserID: userID, Username: "alice"}

	t.Run("正常系: スキル一覧とサマリーを返す", func(t *testing.T) {
		svc, userRepo, _, _, progressRepo, _, _, _ := newAdminServiceForTest(t)
		rows := []*model.UserSkillProgress{
			{UserID: userID, SkillID: uuid.New(), Level: 2, XP: 30, Progress: 45},
		}
		summary := &model.UserSkillSummary{TotalSkills: 1, TotalXP: 30, AvgProgress: 45, HighestLevel: 2}
		userRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), userID).Return(user, nil).Once()
		progressRepo.On("ListByUser", ctx, mock.AnythingOfType("*gorm.DB"), userID).Return(rows, nil).Once()
		progressRepo.On("SummaryByUser", ctx, mock.AnythingOfType("*gorm.DB"), userID).Return(summary, nil).Once()

		detail, err := svc.GetUserSkillDetail(ctx, userID)

		require.NoError(t, err)
		require.Len(t, detail.Skills, 1)
		assert.Equal(t, 1, detail.Summary.TotalSkills)
	})

	t.Run("異常系: ユーザーが存在しない", func(t *testing.T) {
		svc, userRepo, _, _, _, _, _, _ := newAdminServiceForTest(t)
		userRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), userID).
			Return(nil, model.ErrNotFound).Once()

		_, err := svc.GetUserSkillDetail(ctx, userID)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}
