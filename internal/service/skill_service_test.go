// internal/service/skill_service_test.go
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

func setupTestDBSkill() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect database for testing: " + err.Error())
	}
	return db
}

func intPtr(v int) *int { return &v }

// --- Test AddOrUpdateUserSkill ---
func Test_skillService_AddOrUpdateUserSkill(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBSkill()
	mockSkillRepo := new(mocks.SkillRepository)
	mockProgressRepo := new(mocks.ProgressRepository)
	skillService := NewSkillService(db, mockSkillRepo, mockProgressRepo)

	userID := uuid.New()
	skillID := uuid.New()
	existingSkill := &model.Skill{SkillID: skillID, Name: "Machine Learning", Slug: "machine-learning"}

	tests := []struct {
		name      string
		req       *model.AddUserSkillRequest
		setupMock func()
		wantErr   error
		wantCode  string
		check     func(t *testing.T, progress *model.UserSkillProgress)
	}{
		{
			name: "正常系: 未知のスキル名はスキルごと新規作成される",
			req:  &model.AddUserSkillRequest{Name: "Rust Programming", Progress: intPtr(40)},
			setupMock: func() {
				mockSkillRepo.On("FindByName", ctx, mock.AnythingOfType("*gorm.DB"), "Rust Programming").
					Return(nil, model.ErrNotFound).Once()
				mockSkillRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Skill")).
					Run(func(args mock.Arguments) {
						skill := args.Get(2).(*model.Skill)
						assert.Equal(t, "Rust Programming", skill.Name)
						assert.Equal(t, "rust-programming", skill.Slug)
						assert.Equal(t, "General", skill.Category)
						assert.Equal(t, model.DifficultyBeginner, skill.Difficulty)
					}).Return(nil).Once()
				mockProgressRepo.On("FindForUpdate", ctx, mock.AnythingOfType("*gorm.DB"), userID, mock.AnythingOfType("uuid.UUID")).
					Return(nil, model.ErrNotFound).Once()
				mockProgressRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.UserSkillProgress")).
					Run(func(args mock.Arguments) {
						progress := args.Get(2).(*model.UserSkillProgress)
						assert.Equal(t, 1, progress.Level)
						assert.Equal(t, 0, progress.XP)
						assert.Equal(t, 40, progress.Progress)
					}).Return(nil).Once()
			},
			check: func(t *testing.T, progress *model.UserSkillProgress) {
				assert.Equal(t, 40, progress.Progress)
				require.NotNil(t, progress.Skill)
				assert.Equal(t, "rust-programming", progress.Skill.Slug)
			},
		},
		{
			name: "正常系: 既存スキルへの再登録は進捗率だけを上書きする",
			req:  &model.AddUserSkillRequest{Name: "Machine Learning", Progress: intPtr(75)},
			setupMock: func() {
				mockSkillRepo.On("FindByName", ctx, mock.AnythingOfType("*gorm.DB"), "Machine Learning").
					Return(existingSkill, nil).Once()
				mockProgressRepo.On("FindForUpdate", ctx, mock.AnythingOfType("*gorm.DB"), userID, skillID).
					Return(&model.UserSkillProgress{
						ProgressID: uuid.New(), UserID: userID, SkillID: skillID,
						Level: 3, XP: 120, Progress: 30,
					}, nil).Once()
				mockProgressRepo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.UserSkillProgress")).
					Run(func(args mock.Arguments) {
						progress := args.Get(2).(*model.UserSkillProgress)
						// レベルとXPには触れない
						assert.Equal(t, 3, progress.Level)
						assert.Equal(t, 120, progress.XP)
						assert.Equal(t, 75, progress.Progress)
					}).Return(nil).Once()
			},
			check: func(t *testing.T, progress *model.UserSkillProgress) {
				assert.Equal(t, 75, progress.Progress)
				assert.Equal(t, 3, progress.Level)
				assert.Equal(t, 120, progress.XP)
			},
		},
		{
			name: "正常系: スキル作成の競合に負けたら既存行を引き直す",
			req:  &model.AddUserSkillRequest{Name: "Machine Learning", Progress: intPtr(10)},
			setupMock: func() {
				mockSkillRepo.On("FindByName", ctx, mock.AnythingOfType("*gorm.DB"), "Machine Learning").
					Return(nil, model.ErrNotFound).Once()
				mockSkillRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Skill")).
					Return(model.ErrConflict).Once()
				mockSkillRepo.On("FindByName", ctx, mock.AnythingOfType("*gorm.DB"), "Machine Learning").
					Return(existingSkill, nil).Once()
				mockProgressRepo.On("FindForUpdate", ctx, mock.AnythingOfType("*gorm.DB"), userID, skillID).
					Return(nil, model.ErrNotFound).Once()
				mockProgressRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.UserSkillProgress")).
					Return(nil).Once()
			},
			check: func(t *testing.T, progress *model.UserSkillProgress) {
				assert.Equal(t, skillID, progress.SkillID)
			},
		},
		{
			name: "異常系: スキル検索でDBエラー",
			req:  &model.AddUserSkillRequest{Name: "Machine Learning", Progress: intPtr(10)},
			setupMock: func() {
				mockSkillRepo.On("FindByName", ctx, mock.AnythingOfType("*gorm.DB"), "Machine Learning").
					Return(nil, errors.New("db error")).Once()
			},
			wantCode: "INTERNAL_SERVER_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSkillRepo.Mock = mock.Mock{}
			mockProgressRepo.Mock = mock.Mock{}
			if tt.setupMock != nil {
				tt.setupMock()
			}

			progress, err := skillService.AddOrUpdateUserSkill(ctx, userID, tt.req)

			if tt.wantErr != nil || tt.wantCode != "" {
				require.Error(t, err)
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				}
				if tt.wantCode != "" {
					var appErr *model.AppError
					require.ErrorAs(t, err, &appErr)
					assert.Equal(t, tt.wantCode, appErr.Detail.Code)
				}
				assert.Nil(t, progress)
			} else {
				require.NoError(t, err)
				require.NotNil(t, progress)
				if tt.check != nil {
					tt.check(t, progress)
				}
			}

			mockSkillRepo.AssertExpectations(t)
			mockProgressRepo.AssertExpectations(t)
		})
	}
}

// --- Test CreateSkill ---
func Test_skillService_CreateSkill(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBSkill()
	mockSkillRepo := new(mocks.SkillRepository)
	mockProgressRepo := new(mocks.ProgressRepository)
	skillService := NewSkillService(db, mockSkillRepo, mockProgressRepo)

	tests := []struct {
		name      string
		req       *model.CreateSkillRequest
		setupMock func()
		wantErr   error
	}{
		{
			name: "正常系: スラグが名前から導出される",
			req: &model.CreateSkillRequest{
				Name:       "Data Analysis",
				Category:   "Data",
				Difficulty: model.DifficultyIntermediate,
			},
			setupMock: func() {
				mockSkillRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Skill")).
					Run(func(args mock.Arguments) {
						skill := args.Get(2).(*model.Skill)
						assert.Equal(t, "data-analysis", skill.Slug)
						assert.NotEqual(t, uuid.Nil, skill.SkillID)
					}).Return(nil).Once()
			},
		},
		{
			name: "異常系: 同名スキルが既に存在する",
			req: &model.CreateSkillRequest{
				Name:       "Data Analysis",
				Category:   "Data",
				Difficulty: model.DifficultyIntermediate,
			},
			setupMock: func() {
				mockSkillRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Skill")).
					Return(model.ErrConflict).Once()
			},
			wantErr: model.ErrConflict,
		},
		{
			name: "異常系: 難易度が不正",
			req: &model.CreateSkillRequest{
				Name:       "Data Analysis",
				Category:   "Data",
				Difficulty: "Mythic",
			},
			setupMock: func() {},
			wantErr:   model.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSkillRepo.Mock = mock.Mock{}
			if tt.setupMock != nil {
				tt.setupMock()
			}

			skill, err := skillService.CreateSkill(ctx, tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, skill)
			} else {
				require.NoError(t, err)
				require.NotNil(t, skill)
				assert.Equal(t, tt.req.Name, skill.Name)
			}

			mockSkillRepo.AssertExpectations(t)
		})
	}
}

// --- Test UpdateSkill ---
func Test_skillService_UpdateSkill(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBSkill()
	mockSkillRepo := new(mocks.SkillRepository)
	mockProgressRepo := new(mocks.ProgressRepository)
	skillService := NewSkillService(db, mockSkillRepo, mockProgressRepo)

	skillID := uuid.New()
	advanced := model.DifficultyAdvanced
	mythic := model.Difficulty("Mythic")

	tests := []struct {
		name      string
		req       *model.UpdateSkillRequest
		setupMock func()
		wantErr   error
	}{
		{
			name: "正常系: 難易度を更新できる",
			req:  &model.UpdateSkillRequest{Difficulty: &advanced},
			setupMock: func() {
				mockSkillRepo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), skillID, mock.AnythingOfType("map[string]interface {}")).
					Run(func(args mock.Arguments) {
						updates := args.Get(3).(map[string]interface{})
						assert.Equal(t, model.DifficultyAdvanced, updates["difficulty"])
					}).Return(nil).Once()
				mockSkillRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), skillID).
					Return(&model.Skill{SkillID: skillID, Name: "Go", Difficulty: model.DifficultyAdvanced}, nil).Once()
			},
		},
		{
			name:      "異常系: 難易度が不正",
			req:       &model.UpdateSkillRequest{Difficulty: &mythic},
			setupMock: func() {},
			wantErr:   model.ErrInvalidInput,
		},
		{
			name:      "異常系: 更新フィールドが空",
			req:       &model.UpdateSkillRequest{},
			setupMock: func() {},
			wantErr:   model.ErrInvalidInput,
		},
		{
			name: "異常系: スキルが存在しない",
			req:  &model.UpdateSkillRequest{Difficulty: &advanced},
			setupMock: func() {
				mockSkillRepo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), skillID, mock.AnythingOfType("map[string]interface {}")).
					Return(model.ErrNotFound).Once()
			},
			wantErr: model.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSkillRepo.Mock = mock.Mock{}
			if tt.setupMock != nil {
				tt.setupMock()
			}

			skill, err := skillService.UpdateSkill(ctx, skillID, tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, skill)
			} else {
				require.NoError(t, err)
				require.NotNil(t, skill)
				assert.Equal(t, model.DifficultyAdvanced, skill.Difficulty)
			}

			mockSkillRepo.AssertExpectations(t)
		})
	}
}

// --- Test ListUserSkills ---
func Test_skillService_ListUserSkills(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBSkill()
	mockSkillRepo := new(mocks.SkillRepository)
	mockProgressRepo := new(mocks.ProgressRepository)
	skillService := NewSkillService(db, mockSkillRepo, mockProgressRepo)

	userID := uuid.New()

	t.Run("正常系: 一覧と集計に加えて必要XPが算出される", func(t *testing.T) {
		mockProgressRepo.Mock = mock.Mock{}
		mockProgressRepo.On("ListByUser", ctx, mock.AnythingOfType("*gorm.DB"), userID).
			Return([]*model.UserSkillProgress{
				{ProgressID: uuid.New(), UserID: userID, Level: 1, XP: 50, Progress: 20},
				{ProgressID: uuid.New(), UserID: userID, Level: 3, XP: 10, Progress: 80},
			}, nil).Once()
		mockProgressRepo.On("SummaryByUser", ctx, mock.AnythingOfType("*gorm.DB"), userID).
			Return(&model.UserSkillSummary{
				TotalSkills: 2, TotalXP: 60, AvgProgress: 50, HighestLevel: 3,
			}, nil).Once()

		resp, err := skillService.ListUserSkills(ctx, userID)

		require.NoError(t, err)
		require.Len(t, resp.Skills, 2)
		// レベル1は100、レベル3は200が次レベルの必要量
		assert.Equal(t, 100, resp.Skills[0].RequiredXP)
		assert.Equal(t, 200, resp.Skills[1].RequiredXP)
		assert.Equal(t, 2, resp.Summary.TotalSkills)
		mockProgressRepo.AssertExpectations(t)
	})

	t.Run("異常系: 一覧取得でDBエラー", func(t *testing.T) {
		mockProgressRepo.Mock = mock.Mock{}
		mockProgressRepo.On("ListByUser", ctx, mock.AnythingOfType("*gorm.DB"), userID).
			Return(nil, errors.New("db error")).Once()

		resp, err := skillService.ListUserSkills(ctx, userID)

		require.Error(t, err)
		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "INTERNAL_SERVER_ERROR", appErr.Detail.Code)
		assert.Nil(t, resp)
	})
}
