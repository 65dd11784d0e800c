// internal/service/quiz_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"skillsphere/internal/config"
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
func setupTestDBQuiz() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect database for testing: " + err.Error())
	}
	return db
}

func testQuizConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.QuizPageSize = 10
	return cfg
}

// --- Test SubmitAnswers ---
func Test_quizService_SubmitAnswers(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBQuiz() // トランザクション用DB (インメモリ)
	mockSkillRepo := new(mocks.SkillRepository)
	mockQuestionRepo := new(mocks.QuestionRepository)
	mockProgressRepo := new(mocks.ProgressRepository)
	mockCompletionRepo := new(mocks.CompletionRepository)
	quizService := NewQuizService(db, mockSkillRepo, mockQuestionRepo, mockProgressRepo, mockCompletionRepo, testQuizConfig())

	userID := uuid.New()
	skillID := uuid.New()
	questionID := uuid.New()
	skill := &model.Skill{SkillID: skillID, Name: "Python", Slug: "python"}
	// Intermediate の正答1問で +10 XP
	question := &model.PracticeQuestion{
		QuestionID:    questionID,
		SkillID:       skillID,
		QuestionType:  model.QuestionTypeMCQ,
		Difficulty:    model.DifficultyIntermediate,
		CorrectOption: "B",
		XPReward:      10,
	}

	tests := []struct {
		name      string
		req       *model.SubmitAnswersRequest
		setupMock func()
		wantErr   error
		check     func(t *testing.T, resp *model.SubmitAnswersResponse)
	}{
		{
			name: "正常系: 初回正答でXP付与・ちょうど必要量でレベルアップ",
			req: &model.SubmitAnswersRequest{
				Difficulty: model.DifficultyIntermediate,
				Answers:    map[string]string{questionID.String(): "B"},
			},
			setupMock: func() {
				mockSkillRepo.On("FindBySlug", ctx, mock.AnythingOfType("*gorm.DB"), "python").
					Return(skill, nil).Once()
				mockQuestionRepo.On("FindByIDsForSkill", ctx, mock.AnythingOfType("*gorm.DB"), skillID, mock.AnythingOfType("[]uuid.UUID")).
					Return([]*model.PracticeQuestion{question}, nil).Once()
				// レベル1・90XP保持 → +10 でちょうど100に達する
				mockProgressRepo.On("FindForUpdate", ctx, mock.AnythingOfType("*gorm.DB"), userID, skillID).
					Return(&model.UserSkillProgress{
						ProgressID: uuid.New(), UserID: userID, SkillID: skillID,
						Level: 1, XP: 90, Progress: 50,
					}, nil).Once()
				mockCompletionRepo.On("FindForUpdate", ctx, mock.AnythingOfType("*gorm.DB"), userID, questionID).
					Return(nil, model.ErrNotFound).Once()
				mockCompletionRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.TaskCompletion")).
					Return(nil).Once()
				mockCompletionRepo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.TaskCompletion")).
					Run(func(args mock.Arguments) {
						completion := args.Get(2).(*model.TaskCompletion)
						assert.True(t, completion.Completed)
						require.NotNil(t, completion.CompletedAt)
						assert.WithinDuration(t, time.Now(), *completion.CompletedAt, time.Second*5)
					}).Return(nil).Once()
				mockQuestionRepo.On("CountBySkill", ctx, mock.AnythingOfType("*gorm.DB"), skillID).
					Return(int64(4), nil).Once()
				mockCompletionRepo.On("CountCompletedBySkill", ctx, mock.AnythingOfType("*gorm.DB"), userID, skillID).
					Return(int64(1), nil).Once()
				mockProgressRepo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.UserSkillProgress")).
					Return(nil).Once()
			},
			check: func(t *testing.T, resp *model.SubmitAnswersResponse) {
				assert.Equal(t, 1, resp.Score)
				assert.Equal(t, 1, resp.Total)
				assert.Equal(t, 10, resp.TotalXPEarned)
				assert.True(t, resp.LeveledUp)
				assert.Equal(t, 2, resp.Level)
				assert.Equal(t, 0, resp.XP)
				// スキル進捗は完了率ベース (1/4 = 25%)
				assert.Equal(t, 25, resp.Progress)
			},
		},
		{
			name: "正常系: 完了済み設問の再正答はXPを与えない",
			req: &model.SubmitAnswersRequest{
				Difficulty: model.DifficultyIntermediate,
				Answers:    map[string]string{questionID.String(): "B"},
			},
			setupMock: func() {
				completedAt := time.Now().Add(-time.Hour)
				mockSkillRepo.On("FindBySlug", ctx, mock.AnythingOfType("*gorm.DB"), "python").
					Return(skill, nil).Once()
				mockQuestionRepo.On("FindByIDsForSkill", ctx, mock.AnythingOfType("*gorm.DB"), skillID, mock.AnythingOfType("[]uuid.UUID")).
					Return([]*model.PracticeQuestion{question}, nil).Once()
				mockProgressRepo.On("FindForUpdate", ctx, mock.AnythingOfType("*gorm.DB"), userID, skillID).
					Return(&model.UserSkillProgress{
						ProgressID: uuid.New(), UserID: userID, SkillID: skillID,
						Level: 2, XP: 30, Progress: 25,
					}, nil).Once()
				mockCompletionRepo.On("FindForUpdate", ctx, mock.AnythingOfType("*gorm.DB"), userID, questionID).
					Return(&model.TaskCompletion{
						CompletionID: uuid.New(), UserID: userID, QuestionID: questionID,
						Completed: true, CompletedAt: &completedAt,
					}, nil).Once()
				// completion.Update は呼ばれない
				mockQuestionRepo.On("CountBySkill", ctx, mock.AnythingOfType("*gorm.DB"), skillID).
					Return(int64(4), nil).Once()
				mockCompletionRepo.On("CountCompletedBySkill", ctx, mock.AnythingOfType("*gorm.DB"), userID, skillID).
					Return(int64(1), nil).Once()
				mockProgressRepo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.UserSkillProgress")).
					Run(func(args mock.Arguments) {
						progress := args.Get(2).(*model.UserSkillProgress)
						// レベルとXPは変わらない
						assert.Equal(t, 2, progress.Level)
						assert.Equal(t, 30, progress.XP)
					}).Return(nil).Once()
			},
			check: func(t *testing.T, resp *model.SubmitAnswersResponse) {
				assert.Equal(t, 1, resp.Score)
				assert.Equal(t, 0, resp.TotalXPEarned)
				assert.False(t, resp.LeveledUp)
				assert.Equal(t, 2, resp.Level)
				assert.Equal(t, 30, resp.XP)
				require.Len(t, resp.Results, 1)
				assert.True(t, resp.Results[0].AlreadyCompleted)
				assert.Equal(t, 0, resp.Results[0].XPEarned)
			},
		},
		{
			name: "正常系: 誤答はXPなし・完了記録は未完了のまま作成される",
			req: &model.SubmitAnswersRequest{
				Difficulty: model.DifficultyIntermediate,
				Answers:    map[string]string{questionID.String(): "C"},
			},
			setupMock: func() {
				mockSkillRepo.On("FindBySlug", ctx, mock.AnythingOfType("*gorm.DB"), "python").
					Return(skill, nil).Once()
				mockQuestionRepo.On("FindByIDsForSkill", ctx, mock.AnythingOfType("*gorm.DB"), skillID, mock.AnythingOfType("[]uuid.UUID")).
					Return([]*model.PracticeQuestion{question}, nil).Once()
				mockProgressRepo.On("FindForUpdate", ctx, mock.AnythingOfType("*gorm.DB"), userID, skillID).
					Return(&model.UserSkillProgress{
						ProgressID: uuid.New(), UserID: userID, SkillID: skillID,
						Level: 1, XP: 0, Progress: 0,
					}, nil).Once()
				mockCompletionRepo.On("FindForUpdate", ctx, mock.AnythingOfType("*gorm.DB"), userID, questionID).
					Return(nil, model.ErrNotFound).Once()
				mockCompletionRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.TaskCompletion")).
					Run(func(args mock.Arguments) {
						completion := args.Get(2).(*model.TaskCompletion)
						assert.False(t, completion.Completed)
						assert.Nil(t, completion.CompletedAt)
					}).Return(nil).Once()
				mockQuestionRepo.On("CountBySkill", ctx, mock.AnythingOfType("*gorm.DB"), skillID).
					Return(int64(4), nil).Once()
				mockCompletionRepo.On("CountCompletedBySkill", ctx, mock.AnythingOfType("*gorm.DB"), userID, skillID).
					Return(int64(0), nil).Once()
				mockProgressRepo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.UserSkillProgress")).
					Return(nil).Once()
			},
			check: func(t *testing.T, resp *model.SubmitAnswersResponse) {
				assert.Equal(t, 0, resp.Score)
				assert.Equal(t, 0, resp.TotalXPEarned)
				assert.False(t, resp.LeveledUp)
				assert.Equal(t, 0, resp.Progress)
			},
		},
		{
			name: "正常系: 他スキルの設問IDは黙って採点対象から外れる",
			req: &model.SubmitAnswersRequest{
				Difficulty: model.DifficultyIntermediate,
				Answers: map[string]string{
					questionID.String(): "B",
					uuid.New().String(): "A", // 他スキルの設問ID
				},
			},
			setupMock: func() {
				mockSkillRepo.On("FindBySlug", ctx, mock.AnythingOfType("*gorm.DB"), "python").
					Return(skill, nil).Once()
				// リポジトリが該当スキルの設問だけを返す
				mockQuestionRepo.On("FindByIDsForSkill", ctx, mock.AnythingOfType("*gorm.DB"), skillID, mock.AnythingOfType("[]uuid.UUID")).
					Return([]*model.PracticeQuestion{question}, nil).Once()
				mockProgressRepo.On("FindForUpdate", ctx, mock.AnythingOfType("*gorm.DB"), userID, skillID).
					Return(&model.UserSkillProgress{
						ProgressID: uuid.New(), UserID: userID, SkillID: skillID,
						Level: 1, XP: 0, Progress: 0,
					}, nil).Once()
				mockCompletionRepo.On("FindForUpdate", ctx, mock.AnythingOfType("*gorm.DB"), userID, questionID).
					Return(nil, model.ErrNotFound).Once()
				mockCompletionRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.TaskCompletion")).
					Return(nil).Once()
				mockCompletionRepo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.TaskCompletion")).
					Return(nil).Once()
				mockQuestionRepo.On("CountBySkill", ctx, mock.AnythingOfType("*gorm.DB"), skillID).
					Return(int64(4), nil).Once()
				mockCompletionRepo.On("CountCompletedBySkill", ctx, mock.AnythingOfType("*gorm.DB"), userID, skillID).
					Return(int64(1), nil).Once()
				mockProgressRepo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.UserSkillProgress")).
					Return(nil).Once()
			},
			check: func(t *testing.T, resp *model.SubmitAnswersResponse) {
				// 除外されたIDは結果にもカウントにも現れない
				assert.Equal(t, 1, resp.Total)
				assert.Len(t, resp.Results, 1)
				assert.Equal(t, 10, resp.TotalXPEarned)
			},
		},
		{
			name: "正常系: 進捗行がなければ新規作成される",
			req: &model.SubmitAnswersRequest{
				Difficulty: model.DifficultyIntermediate,
				Answers:    map[string]string{questionID.String(): "B"},
			},
			setupMock: func() {
				mockSkillRepo.On("FindBySlug", ctx, mock.AnythingOfType("*gorm.DB"), "python").
					Return(skill, nil).Once()
				mockQuestionRepo.On("FindByIDsForSkill", ctx, mock.AnythingOfType("*gorm.DB"), skillID, mock.AnythingOfType("[]uuid.UUID")).
					Return([]*model.PracticeQuestion{question}, nil).Once()
				mockProgressRepo.On("FindForUpdate", ctx, mock.AnythingOfType("*gorm.DB"), userID, skillID).
					Return(nil, model.ErrNotFound).Once()
				mockCompletionRepo.On("FindForUpdate", ctx, mock.AnythingOfType("*gorm.DB"), userID, questionID).
					Return(nil, model.ErrNotFound).Once()
				mockCompletionRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.TaskCompletion")).
					Return(nil).Once()
				mockCompletionRepo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.TaskCompletion")).
					Return(nil).Once()
				mockQuestionRepo.On("CountBySkill", ctx, mock.AnythingOfType("*gorm.DB"), skillID).
					Return(int64(1), nil).Once()
				mockCompletionRepo.On("CountCompletedBySkill", ctx, mock.AnythingOfType("*gorm.DB"), userID, skillID).
					Return(int64(1), nil).Once()
				mockProgressRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.UserSkillProgress")).
					Run(func(args mock.Arguments) {
						progress := args.Get(2).(*model.UserSkillProgress)
						assert.Equal(t, userID, progress.UserID)
						assert.Equal(t, skillID, progress.SkillID)
						assert.Equal(t, 1, progress.Level)
						assert.Equal(t, 10, progress.XP)
						assert.Equal(t, 100, progress.Progress)
					}).Return(nil).Once()
			},
			check: func(t *testing.T, resp *model.SubmitAnswersResponse) {
				assert.Equal(t, 10, resp.TotalXPEarned)
				assert.Equal(t, 1, resp.Level)
				assert.Equal(t, 100, resp.Progress)
			},
		},
		{
			name: "異常系: 回答が空",
			req: &model.SubmitAnswersRequest{
				Difficulty: model.DifficultyIntermediate,
				Answers:    map[string]string{},
			},
			setupMock: func() {
				// リポジトリは呼ばれないはず
			},
			wantErr: model.ErrInvalidInput,
		},
		{
			name: "異常系: 設問IDがUUIDでない",
			req: &model.SubmitAnswersRequest{
				Difficulty: model.DifficultyIntermediate,
				Answers:    map[string]string{"not-a-uuid": "A"},
			},
			setupMock: func() {
				// 変更が起きる前に拒否される
			},
			wantErr: model.ErrInvalidInput,
		},
		{
			name: "異常系: 難易度が不正",
			req: &model.SubmitAnswersRequest{
				Difficulty: "Legendary",
				Answers:    map[string]string{questionID.String(): "A"},
			},
			setupMock: func() {},
			wantErr:   model.ErrInvalidInput,
		},
		{
			name: "異常系: スキルが存在しない",
			req: &model.SubmitAnswersRequest{
				Difficulty: model.DifficultyIntermediate,
				Answers:    map[string]string{questionID.String(): "B"},
			},
			setupMock: func() {
				mockSkillRepo.On("FindBySlug", ctx, mock.AnythingOfType("*gorm.DB"), "python").
					Return(nil, model.ErrNotFound).Once()
			},
			wantErr: model.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// モックのリセットと再設定
			mockSkillRepo.Mock = mock.Mock{}
			mockQuestionRepo.Mock = mock.Mock{}
			mockProgressRepo.Mock = mock.Mock{}
			mockCompletionRepo.Mock = mock.Mock{}
			if tt.setupMock != nil {
				tt.setupMock()
			}

			resp, err := quizService.SubmitAnswers(ctx, userID, "python", tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, resp)
			} else {
				require.NoError(t, err)
				require.NotNil(t, resp)
				if tt.check != nil {
					tt.check(t, resp)
				}
			}

			mockSkillRepo.AssertExpectations(t)
			mockQuestionRepo.AssertExpectations(t)
			mockProgressRepo.AssertExpectations(t)
			mockCompletionRepo.AssertExpectations(t)
		})
	}
}

// --- Test SubmitAnswers (書き込み競合のリトライ) ---
func Test_quizService_SubmitAnswers_ConflictRetry(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBQuiz()

	userID := uuid.New()
	skillID := uuid.New()
	questionID := uuid.New()
	skill := &model.Skill{SkillID: skillID, Name: "Go", Slug: "go"}
	question := &model.PracticeQuestion{
		QuestionID:    questionID,
		SkillID:       skillID,
		QuestionType:  model.QuestionTypeMCQ,
		Difficulty:    model.DifficultyBeginner,
		CorrectOption: "A",
		XPReward:      5,
	}
	req := &model.SubmitAnswersRequest{
		Difficulty: model.DifficultyBeginner,
		Answers:    map[string]string{questionID.String(): "A"},
	}

	t.Run("正常系: 進捗Createの競合後リトライで成功する", func(t *testing.T) {
		mockSkillRepo := new(mocks.SkillRepository)
		mockQuestionRepo := new(mocks.QuestionRepository)
		mockProgressRepo := new(mocks.ProgressRepository)
		mockCompletionRepo := new(mocks.CompletionRepository)
		quizService := NewQuizService(db, mockSkillRepo, mockQuestionRepo, mockProgressRepo, mockCompletionRepo, testQuizConfig())

		// 各試行で一連の読み取りが走る (1回目はロールバックされる)
		mockSkillRepo.On("FindBySlug", ctx, mock.AnythingOfType("*gorm.DB"), "go").
			Return(skill, nil).Twice()
		mockQuestionRepo.On("FindByIDsForSkill", ctx, mock.AnythingOfType("*gorm.DB"), skillID, mock.AnythingOfType("[]uuid.UUID")).
			Return([]*model.PracticeQuestion{question}, nil).Twice()
		mockCompletionRepo.On("FindForUpdate", ctx, mock.AnythingOfType("*gorm.DB"), userID, questionID).
			Return(nil, model.ErrNotFound).Twice()
		mockCompletionRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.TaskCompletion")).
			Return(nil).Twice()
		mockCompletionRepo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.TaskCompletion")).
			Return(nil).Twice()
		mockQuestionRepo.On("CountBySkill", ctx, mock.AnythingOfType("*gorm.DB"), skillID).
			Return(int64(2), nil).Twice()
		mockCompletionRepo.On("CountCompletedBySkill", ctx, mock.AnythingOfType("*gorm.DB"), userID, skillID).
			Return(int64(1), nil).Twice()

		// 1回目: 行なし → Create が一意制約で負ける
		mockProgressRepo.On("FindForUpdate", ctx, mock.AnythingOfType("*gorm.DB"), userID, skillID).
			Return(nil, model.ErrNotFound).Once()
		mockProgressRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.UserSkillProgress")).
			Return(model.ErrConflict).Once()
		// 2回目: 競合相手が作った行が見える → Update で成功
		mockProgressRepo.On("FindForUpdate", ctx, mock.AnythingOfType("*gorm.DB"), userID, skillID).
			Return(&model.UserSkillProgress{
				ProgressID: uuid.New(), UserID: userID, SkillID: skillID,
				Level: 1, XP: 5, Progress: 50,
			}, nil).Once()
		mockProgressRepo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.UserSkillProgress")).
			Return(nil).Once()

		resp, err := quizService.SubmitAnswers(ctx, userID, "go", req)

		require.NoError(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, 5, resp.TotalXPEarned)
		mockProgressRepo.AssertExpectations(t)
		mockCompletionRepo.AssertExpectations(t)
	})

	t.Run("異常系: リトライ後も競合が続けばエラーを返す", func(t *testing.T) {
		mockSkillRepo := new(mocks.SkillRepository)
		mockQuestionRepo := new(mocks.QuestionRepository)
		mockProgressRepo := new(mocks.ProgressRepository)
		mockCompletionRepo := new(mocks.CompletionRepository)
		quizService := NewQuizService(db, mockSkillRepo, mockQuestionRepo, mockProgressRepo, mockCompletionRepo, testQuizConfig())

		mockSkillRepo.On("FindBySlug", ctx, mock.AnythingOfType("*gorm.DB"), "go").
			Return(skill, nil).Twice()
		mockQuestionRepo.On("FindByIDsForSkill", ctx, mock.AnythingOfType("*gorm.DB"), skillID, mock.AnythingOfType("[]uuid.UUID")).
			Return([]*model.PracticeQuestion{question}, nil).Twice()
		mockCompletionRepo.On("FindForUpdate", ctx, mock.AnythingOfType("*gorm.DB"), userID, questionID).
			Return(nil, model.ErrNotFound).Twice()
		mockCompletionRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.TaskCompletion")).
			Return(nil).Twice()
		mockCompletionRepo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.TaskCompletion")).
			Return(nil).Twice()
		mockQuestionRepo.On("CountBySkill", ctx, mock.AnythingOfType("*gorm.DB"), skillID).
			Return(int64(2), nil).Twice()
		mockCompletionRepo.On("CountCompletedBySkill", ctx, mock.AnythingOfType("*gorm.DB"), userID, skillID).
			Return(int64(1), nil).Twice()

		mockProgressRepo.On("FindForUpdate", ctx, mock.AnythingOfType("*gorm.DB"), userID, skillID).
			Return(nil, model.ErrNotFound).Twice()
		mockProgressRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.UserSkillProgress")).
			Return(model.ErrConflict).Twice()

		resp, err := quizService.SubmitAnswers(ctx, userID, "go", req)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrConflict)
		assert.Nil(t, resp)
		mockProgressRepo.AssertExpectations(t)
	})
}

// --- Test GetTierBoard ---
func Test_quizService_GetTierBoard(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBQuiz()
	mockSkillRepo := new(mocks.SkillRepository)
	mockQuestionRepo := new(mocks.QuestionRepository)
	mockProgressRepo := new(mocks.ProgressRepository)
	mockCompletionRepo := new(mocks.CompletionRepository)
	quizService := NewQuizService(db, mockSkillRepo, mockQuestionRepo, mockProgressRepo, mockCompletionRepo, testQuizConfig())

	userID := uuid.New()
	skillID := uuid.New()
	skill := &model.Skill{SkillID: skillID, Name: "SQL", Slug: "sql"}

	t.Run("正常系: 70%以上のティアまで順に解放される", func(t *testing.T) {
		mockSkillRepo.Mock = mock.Mock{}
		mockQuestionRepo.Mock = mock.Mock{}
		mockCompletionRepo.Mock = mock.Mock{}

		mockSkillRepo.On("FindBySlug", ctx, mock.AnythingOfType("*gorm.DB"), "sql").
			Return(skill, nil).Once()
		mockQuestionRepo.On("CountBySkillPerDifficulty", ctx, mock.AnythingOfType("*gorm.DB"), skillID).
			Return(map[model.Difficulty]int{
				model.DifficultyBeginner:     10,
				model.DifficultyIntermediate: 10,
				model.DifficultyAdvanced:     10,
				model.DifficultyExpert:       10,
			}, nil).Once()
		mockCompletionRepo.On("CountCompletedPerDifficulty", ctx, mock.AnythingOfType("*gorm.DB"), userID, skillID).
			Return(map[model.Difficulty]int{
				model.DifficultyBeginner:     8, // 80%
				model.DifficultyIntermediate: 6, // 60% → ここで頭打ち
				model.DifficultyAdvanced:     9,
			}, nil).Once()

		board, err := quizService.GetTierBoard(ctx, userID, "sql")

		require.NoError(t, err)
		require.Len(t, board, 4)
		assert.True(t, board[0].Unlocked)  // Beginner は常に解放
		assert.True(t, board[1].Unlocked)  // Beginner 80% ≥ 70%
		assert.False(t, board[2].Unlocked) // Intermediate 60% < 70%
		assert.False(t, board[3].Unlocked) // それ以降も閉じたまま
		assert.Equal(t, 80, board[0].Progress)
		assert.Equal(t, 60, board[1].Progress)
	})

	t.Run("異常系: スキルが存在しない", func(t *testing.T) {
		mockSkillRepo.Mock = mock.Mock{}
		mockQuestionRepo.Mock = mock.Mock{}
		mockCompletionRepo.Mock = mock.Mock{}

		mockSkillRepo.On("FindBySlug", ctx, mock.AnythingOfType("*gorm.DB"), "sql").
			Return(nil, model.ErrNotFound).Once()

		board, err := quizService.GetTierBoard(ctx, userID, "sql")

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
		assert.Nil(t, board)
	})
}

// --- Test GetQuizQuestions ---
func Test_quizService_GetQuizQuestions(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBQuiz()
	mockSkillRepo := new(mocks.SkillRepository)
	mockQuestionRepo := new(mocks.QuestionRepository)
	mockProgressRepo := new(mocks.ProgressRepository)
	mockCompletionRepo := new(mocks.CompletionRepository)
	quizService := NewQuizService(db, mockSkillRepo, mockQuestionRepo, mockProgressRepo, mockCompletionRepo, testQuizConfig())

	userID := uuid.New()
	skillID := uuid.New()
	skill := &model.Skill{SkillID: skillID, Name: "Python", Slug: "python"}

	t.Run("正常系: 解放済みティアの設問を正解抜きで返す", func(t *testing.T) {
		mockSkillRepo.Mock = mock.Mock{}
		mockQuestionRepo.Mock = mock.Mock{}
		mockCompletionRepo.Mock = mock.Mock{}

		mockSkillRepo.On("FindBySlug", ctx, mock.AnythingOfType("*gorm.DB"), "python").
			Return(skill, nil).Once()
		mockQuestionRepo.On("CountBySkillPerDifficulty", ctx, mock.AnythingOfType("*gorm.DB"), skillID).
			Return(map[model.Difficulty]int{model.DifficultyBeginner: 2}, nil).Once()
		mockCompletionRepo.On("CountCompletedPerDifficulty", ctx, mock.AnythingOfType("*gorm.DB"), userID, skillID).
			Return(map[model.Difficulty]int{}, nil).Once()
		mockQuestionRepo.On("ListBySkill", ctx, mock.AnythingOfType("*gorm.DB"), skillID, model.DifficultyBeginner, 10).
			Return([]*model.PracticeQuestion{
				{
					QuestionID:    uuid.New(),
					SkillID:       skillID,
					QuestionType:  model.QuestionTypeMCQ,
					Difficulty:    model.DifficultyBeginner,
					QuestionText:  "What does len() return?",
					CorrectOption: "A",
					XPReward:      5,
				},
			}, nil).Once()

		questions, err := quizService.GetQuizQuestions(ctx, userID, "python", model.DifficultyBeginner)

		require.NoError(t, err)
		require.Len(t, questions, 1)
		assert.Equal(t, model.DifficultyBeginner, questions[0].Difficulty)
		assert.Equal(t, 5, questions[0].XPReward)
	})

	t.Run("異常系: 未解放ティアの出題は拒否される", func(t *testing.T) {
		mockSkillRepo.Mock = mock.Mock{}
		mockQuestionRepo.Mock = mock.Mock{}
		mockCompletionRepo.Mock = mock.Mock{}

		mockSkillRepo.On("FindBySlug", ctx, mock.AnythingOfType("*gorm.DB"), "python").
			Return(skill, nil).Once()
		mockQuestionRepo.On("CountBySkillPerDifficulty", ctx, mock.AnythingOfType("*gorm.DB"), skillID).
			Return(map[model.Difficulty]int{
				model.DifficultyBeginner:     10,
				model.DifficultyIntermediate: 10,
			}, nil).Once()
		// Beginner 50% なので Intermediate は未解放
		mockCompletionRepo.On("CountCompletedPerDifficulty", ctx, mock.AnythingOfType("*gorm.DB"), userID, skillID).
			Return(map[model.Difficulty]int{model.DifficultyBeginner: 5}, nil).Once()

		questions, err := quizService.GetQuizQuestions(ctx, userID, "python", model.DifficultyIntermediate)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrForbidden)
		assert.Nil(t, questions)
	})

	t.Run("異常系: 難易度が不正", func(t *testing.T) {
		mockSkillRepo.Mock = mock.Mock{}

		questions, err := quizService.GetQuizQuestions(ctx, userID, "python", "Impossible")

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
		assert.Nil(t, questions)
	})
}
