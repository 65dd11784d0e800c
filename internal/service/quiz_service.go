// internal/service/quiz_service.go
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"skillsphere/internal/config"
	"skillsphere/internal/middleware"
	"skillsphere/internal/model"
	"skillsphere/internal/progression"
	"skillsphere/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QuizService は出題・採点・XP付与・ティア解放判定を担います
type QuizService interface {
	GetQuizQuestions(ctx context.Context, userID uuid.UUID, slug string, difficulty model.Difficulty) ([]*model.QuizQuestionResponse, error)
	SubmitAnswers(ctx context.Context, userID uuid.UUID, slug string, req *model.SubmitAnswersRequest) (*model.SubmitAnswersResponse, error)
	GetTierBoard(ctx context.Context, userID uuid.UUID, slug string) ([]model.TierStatus, error)
}

type quizService struct {
	db             *gorm.DB
	skillRepo      repository.SkillRepository
	questionRepo   repository.QuestionRepository
	progressRepo   repository.ProgressRepository
	completionRepo repository.CompletionRepository
	cfg            *config.Config
}

func NewQuizService(
	db *gorm.DB,
	skillRepo repository.SkillRepository,
	questionRepo repository.QuestionRepository,
	progressRepo repository.ProgressRepository,
	completionRepo repository.CompletionRepository,
	cfg *config.Config,
) QuizService {
	return &quizService{
		db:             db,
		skillRepo:      skillRepo,
		questionRepo:   questionRepo,
		progressRepo:   progressRepo,
		completionRepo: completionRepo,
		cfg:            cfg,
	}
}

func (s *quizService) GetQuizQuestions(ctx context.Context, userID uuid.UUID, slug string, difficulty model.Difficulty) ([]*model.QuizQuestionResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "skill_slug", slug)

	if !difficulty.Valid() {
		return nil, model.NewAppError("INVALID_DIFFICULTY", "難易度の指定が正しくありません。", "difficulty", model.ErrInvalidInput)
	}

	skill, err := s.skillRepo.FindBySlug(ctx, s.db, slug)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("SKILL_NOT_FOUND", "スキルが見つかりません。", "slug", model.ErrNotFound)
		}
		logger.Error("Failed to find skill by slug", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "スキルの取得に失敗しました。", "", err)
	}

	// 解放されていないティアは出題しない
	board, err := s.buildTierBoard(ctx, userID, skill.SkillID)
	if err != nil {
		logger.Error("Failed to build tier board for gating", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "出題状況の取得に失敗しました。", "", err)
	}
	for _, tier := range board {
		if tier.Name == difficulty && !tier.Unlocked {
			return nil, model.NewAppError("TIER_LOCKED", "このティアはまだ解放されていません。", "difficulty", model.ErrForbidden)
		}
	}

	questions, err := s.questionRepo.ListBySkill(ctx, s.db, skill.SkillID, difficulty, s.cfg.App.QuizPageSize)
	if err != nil {
		logger.Error("Failed to list quiz questions", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "設問の取得に失敗しました。", "", err)
	}

	responses := make([]*model.QuizQuestionResponse, 0, len(questions))
	for _, q := range questions {
		responses = append(responses, &model.QuizQuestionResponse{
			QuestionID:   q.QuestionID,
			QuestionType: q.QuestionType,
			Difficulty:   q.Difficulty,
			QuestionText: q.QuestionText,
			OptionA:      q.OptionA,
			OptionB:      q.OptionB,
			OptionC:      q.OptionC,
			OptionD:      q.OptionD,
			XPReward:     q.XPReward,
		})
	}

	logger.Info("Quiz questions retrieved", "count", len(responses), "difficulty", difficulty)
	return responses, nil
}

// SubmitAnswers は回答を採点し、初回正答にだけXPを付与して進捗を更新します。
// 進捗行の read-modify-write を1トランザクションで行い、書き込み競合は
// 1回だけリトライします。
func (s *quizService) SubmitAnswers(ctx context.Context, userID uuid.UUID, slug string, req *model.SubmitAnswersRequest) (*model.SubmitAnswersResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "skill_slug", slug)

	// --- 変更なしの事前バリデーション ---
	if len(req.Answers) == 0 {
		return nil, model.NewAppError("EMPTY_ANSWERS", "回答が1件も含まれていません。", "answers", model.ErrInvalidInput)
	}
	if !req.Difficulty.Valid() {
		return nil, model.NewAppError("INVALID_DIFFICULTY", "難易度の指定が正しくありません。", "difficulty", model.ErrInvalidInput)
	}
	answers := make(map[uuid.UUID]string, len(req.Answers))
	for idStr, answer := range req.Answers {
		id, err := uuid.Parse(idStr)
		if err != nil {
			return nil, model.NewAppError("INVALID_QUESTION_ID", "設問IDの形式が正しくありません。", "answers", model.ErrInvalidInput)
		}
		answers[id] = answer
	}

	var resp *model.SubmitAnswersResponse
	var err error
	for attempt := 0; attempt < 2; attempt++ {
		resp, err = s.submitOnce(ctx, userID, slug, answers)
		if err == nil || !errors.Is(err, model.ErrConflict) {
			break
		}
		logger.Warn("Write conflict during answer submission, retrying once", "attempt", attempt+1)
	}
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			return nil, model.NewAppError("CONFLICT_RETRY_EXHAUSTED", "混み合っています。時間をおいて再度お試しください。", "", model.ErrConflict)
		}
		return nil, err
	}

	logger.Info("Answers submitted",
		"score", resp.Score,
		"total", resp.Total,
		"xp_earned", resp.TotalXPEarned,
		"leveled_up", resp.LeveledUp,
	)
	return resp, nil
}

func (s *quizService) submitOnce(ctx context.Context, userID uuid.UUID, slug string, answers map[uuid.UUID]string) (*model.SubmitAnswersResponse, error) {
	logger := middleware.GetLogger(ctx)
	var resp *model.SubmitAnswersResponse

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		skill, err := s.skillRepo.FindBySlug(ctx, tx, slug)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("SKILL_NOT_FOUND", "スキルが見つかりません。", "slug", model.ErrNotFound)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "スキルの取得に失敗しました。", "", err)
		}

		questionIDs := make([]uuid.UUID, 0, len(answers))
		for id := range answers {
			questionIDs = append(questionIDs, id)
		}

		// スキルに属さない設問IDはここで自然に除外される
		questions, err := s.questionRepo.FindByIDsForSkill(ctx, tx, skill.SkillID, questionIDs)
		if err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "設問の取得に失敗しました。", "", err)
		}

		// --- 進捗行を行ロック付きで確保 (なければ新規作成) ---
		progress, err := s.progressRepo.FindForUpdate(ctx, tx, userID, skill.SkillID)
		created := false
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
				Progress:   0,
			}
			created = true
		}

		results := make([]model.AnswerResult, 0, len(questions))
		score := 0
		totalXPEarned := 0

		for _, q := range questions {
			answer := answers[q.QuestionID]
			correct := gradeAnswer(q, answer)
			if correct {
				score++
			}

			completion, err := s.completionRepo.FindForUpdate(ctx, tx, userID, q.QuestionID)
			if err != nil {
				if !errors.Is(err, model.ErrNotFound) {
					return model.NewAppError("INTERNAL_SERVER_ERROR", "完了記録の取得に失敗しました。", "", err)
				}
				// 初遭遇時に遅延作成
				completion = &model.TaskCompletion{
					CompletionID: uuid.New(),
					UserID:       userID,
					QuestionID:   q.QuestionID,
					Completed:    false,
				}
				if createErr := s.completionRepo.Create(ctx, tx, completion); createErr != nil {
					return createErr // ErrConflict は競合としてリトライ対象
				}
			}

			result := model.AnswerResult{
				QuestionID:       q.QuestionID,
				Correct:          correct,
				AlreadyCompleted: completion.Completed,
			}

			// XPは「未完了 → 正答で完了」への遷移時にだけ付与する。
			// completed=true のレコードを false に戻すことはない。
			if correct && !completion.Completed {
				now := time.Now()
				completion.Completed = true
				completion.CompletedAt = &now
				if updateErr := s.completionRepo.Update(ctx, tx, completion); updateErr != nil {
					return model.NewAppError("INTERNAL_SERVER_ERROR", "完了記録の更新に失敗しました。", "", updateErr)
				}
				result.XPEarned = q.XPReward
				totalXPEarned += q.XPReward
			}

			results = append(results, result)
		}

		// --- XP加算とレベルアップ (まとめて1回で加算しても分割と等価) ---
		leveledUp := false
		if totalXPEarned > 0 {
			var level, xp, levelProgress int
			level, xp, levelProgress, leveledUp = progression.AddXP(progress.Level, progress.XP, totalXPEarned)
			progress.Level = level
			progress.XP = xp
			progress.Progress = levelProgress
		}

		// --- スキル全体の進捗率を設問完了ベースで再計算 ---
		// XP由来の progress とは別定義で、こちらを正とする (最後に書く)。
		totalQuestions, err := s.questionRepo.CountBySkill(ctx, tx, skill.SkillID)
		if err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "設問数の集計に失敗しました。", "", err)
		}
		completedQuestions, err := s.completionRepo.CountCompletedBySkill(ctx, tx, userID, skill.SkillID)
		if err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "完了数の集計に失敗しました。", "", err)
		}
		progress.Progress = progression.Percent(int(completedQuestions), int(totalQuestions))

		if created {
			if err := s.progressRepo.Create(ctx, tx, progress); err != nil {
				return err // ErrConflict は競合としてリトライ対象
			}
		} else {
			if err := s.progressRepo.Update(ctx, tx, progress); err != nil {
				return model.NewAppError("INTERNAL_SERVER_ERROR", "進捗の更新に失敗しました。", "", err)
			}
		}

		resp = &model.SubmitAnswersResponse{
			Results:       results,
			Score:         score,
			Total:         len(questions),
			Percent:       progression.Percent(score, len(questions)),
			TotalXPEarned: totalXPEarned,
			LeveledUp:     leveledUp,
			Level:         progress.Level,
			XP:            progress.XP,
			Progress:      progress.Progress,
		}
		return nil
	})

	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) || errors.Is(err, model.ErrConflict) {
			return nil, err
		}
		logger.Error("Transaction failed for SubmitAnswers", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "回答の処理に失敗しました。", "", err)
	}
	return resp, nil
}

func (s *quizService) GetTierBoard(ctx context.Context, userID uuid.UUID, slug string) ([]model.TierStatus, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "skill_slug", slug)

	skill, err := s.skillRepo.FindBySlug(ctx, s.db, slug)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("SKILL_NOT_FOUND", "スキルが見つかりません。", "slug", model.ErrNotFound)
		}
		logger.Error("Failed to find skill by slug", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "スキルの取得に失敗しました。", "", err)
	}

	board, err := s.buildTierBoard(ctx, userID, skill.SkillID)
	if err != nil {
		logger.Error("Failed to build tier board", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "ティア情報の取得に失敗しました。", "", err)
	}
	return board, nil
}

func (s *quizService) buildTierBoard(ctx context.Context, userID, skillID uuid.UUID) ([]model.TierStatus, error) {
	totals, err := s.questionRepo.CountBySkillPerDifficulty(ctx, s.db, skillID)
	if err != nil {
		return nil, err
	}
	completed, err := s.completionRepo.CountCompletedPerDifficulty(ctx, s.db, userID, skillID)
	if err != nil {
		return nil, err
	}

	counts := make(map[model.Difficulty]progression.TierCount, len(model.Difficulties))
	for _, tier := range model.Difficulties {
		counts[tier] = progression.TierCount{
			Total:     totals[tier],
			Completed: completed[tier],
		}
	}
	return progression.BuildTierBoard(counts), nil
}

// gradeAnswer は設問形式に応じて回答を採点します。
// 選択式は記号の完全一致 (大文字小文字は無視)、記述式・コーディングは
// 前後空白を除いた大文字小文字無視の一致で判定します。
func gradeAnswer(q *model.PracticeQuestion, answer string) bool {
	switch q.QuestionType {
	case model.QuestionTypeMCQ:
		return q.CorrectOption != "" &&
			strings.EqualFold(strings.TrimSpace(answer), q.CorrectOption)
	case model.QuestionTypeShortAnswer, model.QuestionTypeCoding:
		return q.CorrectTextAnswer != "" &&
			strings.EqualFold(strings.TrimSpace(answer), strings.TrimSpace(q.CorrectTextAnswer))
	default:
		return false
	}
}
