// internal/handlers/quiz_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"skillsphere/internal/model"
	"skillsphere/internal/service"
	"skillsphere/internal/webutil"

	"github.com/go-chi/chi/v5"
)

// QuizHandler は演習問題の出題・回答・ティア進捗のHTTPリクエストを処理します
type QuizHandler struct {
	service service.QuizService
	logger  *slog.Logger
}

func NewQuizHandler(s service.QuizService, logger *slog.Logger) *QuizHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &QuizHandler{service: s, logger: logger}
}

// GetQuizQuestions は指定ティアの出題を取得するハンドラ。
// ロック中のティアを指定した場合は403を返します。
func (h *QuizHandler) GetQuizQuestions(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetQuizQuestions"))

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	slug := chi.URLParam(r, "slug")
	logger = logger.With(slog.String("user_id", userID.String()), slog.String("slug", slug))

	difficulty := model.Difficulty(r.URL.Query().Get("difficulty"))

	questions, err := h.service.GetQuizQuestions(r.Context(), userID, slug, difficulty)
	if err != nil {
		if errors.Is(err, model.ErrForbidden) {
			logger.Info("Quiz tier is locked", slog.String("difficulty", string(difficulty)))
		} else {
			logger.Error("Error getting quiz questions from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	if questions == nil {
		questions = []*model.QuizQuestionResponse{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, questions, logger)
}

// SubmitAnswers は回答一括提出のハンドラ。採点・XP付与・レベルアップを行います。
func (h *QuizHandler) SubmitAnswers(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "SubmitAnswers"))

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	slug := chi.URLParam(r, "slug")
	logger = logger.With(slog.String("user_id", userID.String()), slog.String("slug", slug))

	var req model.SubmitAnswersRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	result, err := h.service.SubmitAnswers(r.Context(), userID, slug, &req)
	if err != nil {
		if errors.Is(err, model.ErrInvalidInput) || errors.Is(err, model.ErrNotFound) {
			logger.Info("Answer submission rejected", slog.Any("error", err))
		} else {
			logger.Error("Error submitting answers in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Answers submitted successfully",
		slog.Int("total_xp_earned", result.TotalXPEarned),
		slog.Bool("leveled_up", result.LeveledUp))
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}

// GetTierBoard は難易度ティアごとの進捗と解放状況を取得するハンドラ
func (h *QuizHandler) GetTierBoard(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetTierBoard"))

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	slug := chi.URLParam(r, "slug")
	logger = logger.With(slog.String("user_id", userID.String()), slog.String("slug", slug))

	board, err := h.service.GetTierBoard(r.Context(), userID, slug)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Skill not found in service", slog.Any("error", err))
		} else {
			logger.Error("Error getting tier board from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, board, logger)
}
