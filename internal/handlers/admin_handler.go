// internal/handlers/admin_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"skillsphere/internal/model"
	"skillsphere/internal/service"
	"skillsphere/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// AdminHandler は管理パネル向けのHTTPリクエストを処理します
type AdminHandler struct {
	service service.AdminService
	logger  *slog.Logger
}

func NewAdminHandler(s service.AdminService, logger *slog.Logger) *AdminHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AdminHandler{service: s, logger: logger}
}

// GetDashboardStats はダッシュボード統計を取得するハンドラ
func (h *AdminHandler) GetDashboardStats(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetDashboardStats"))

	stats, err := h.service.GetDashboardStats(r.Context())
	if err != nil {
		logger.Error("Error getting dashboard stats from service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, stats, logger)
}

// ListQuestions は設問一覧を取得するハンドラ。
// skill_id / difficulty クエリパラメータで絞り込みできます。
func (h *AdminHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ListQuestions"))

	var skillID *uuid.UUID
	if raw := r.URL.Query().Get("skill_id"); raw != "" {
		id, ok := parseUUIDParam(w, logger, "skill_id", raw)
		if !ok {
			return
		}
		skillID = &id
	}
	difficulty := model.Difficulty(r.URL.Query().Get("difficulty"))

	questions, err := h.service.ListQuestions(r.Context(), skillID, difficulty)
	if err != nil {
		logger.Error("Error listing questions from service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if questions == nil {
		questions = []*model.PracticeQuestion{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, questions, logger)
}

// CreateQuestion は設問作成のハンドラ。XP報酬は難易度から導出されます。
func (h *AdminHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "CreateQuestion"))

	var req model.CreateQuestionRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	question, err := h.service.CreateQuestion(r.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrInvalidInput) || errors.Is(err, model.ErrNotFound) {
			logger.Info("Question creation rejected", slog.Any("error", err))
		} else {
			logger.Error("Error creating question in service", slog.Any("error", err), slog.Any("request", req))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Question created successfully", slog.String("question_id", question.QuestionID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, question, logger)
}

// UpdateQuestion は設問更新のハンドラ
func (h *AdminHandler) UpdateQuestion(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "UpdateQuestion"))

	questionID, ok := parseUUIDParam(w, logger, "question_id", chi.URLParam(r, "question_id"))
	if !ok {
		return
	}
	logger = logger.With(slog.String("question_id", questionID.String()))

	var req model.UpdateQuestionRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	question, err := h.service.UpdateQuestion(r.Context(), questionID, &req)
	if err != nil {
		logger.Error("Error updating question in service", slog.Any("error", err), slog.Any("request", req))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Question updated successfully")
	webutil.RespondWithJSON(w, http.StatusOK, question, logger)
}

// DeleteQuestion は設問削除のハンドラ
func (h *AdminHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteQuestion"))

	questionID, ok := parseUUIDParam(w, logger, "question_id", chi.URLParam(r, "question_id"))
	if !ok {
		return
	}
	logger = logger.With(slog.String("question_id", questionID.String()))

	if err := h.service.DeleteQuestion(r.Context(), questionID); err != nil {
		logger.Error("Error deleting question in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Question deleted successfully")
	w.WriteHeader(http.StatusNoContent)
}

// ListUsers はユーザー一覧(学習サマリー付き)を取得するハンドラ。
// search クエリでユーザー名・メールアドレスを部分一致検索できます。
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ListUsers"))

	search := r.URL.Query().Get("search")

	users, err := h.service.ListUsers(r.Context(), search)
	if err != nil {
		logger.Error("Error listing users from service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if users == nil {
		users = []*model.AdminUserResponse{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, users, logger)
}

// GetUserSkillDetail は特定ユーザーのスキル進捗詳細を取得するハンドラ
func (h *AdminHandler) GetUserSkillDetail(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetUserSkillDetail"))

	userID, ok := parseUUIDParam(w, logger, "user_id", chi.URLParam(r, "user_id"))
	if !ok {
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	detail, err := h.service.GetUserSkillDetail(r.Context(), userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("User not found in service", slog.Any("error", err))
		} else {
			logger.Error("Error getting user skill detail from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, detail, logger)
}

// SetUserBlocked はユーザーのブロック/解除を行うハンドラ
func (h *AdminHandler) SetUserBlocked(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "SetUserBlocked"))

	userID, ok := parseUUIDParam(w, logger, "user_id", chi.URLParam(r, "user_id"))
	if !ok {
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	var req model.SetUserBlockedRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	if err := h.service.SetUserBlocked(r.Context(), userID, *req.Blocked); err != nil {
		logger.Error("Error setting user blocked state in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("User blocked state updated", slog.Bool("blocked", *req.Blocked))
	w.WriteHeader(http.StatusNoContent)
}

// DeleteUser はユーザー削除のハンドラ (関連する進捗・応募もまとめて消えます)
func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteUser"))

	userID, ok := parseUUIDParam(w, logger, "user_id", chi.URLParam(r, "user_id"))
	if !ok {
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	if err := h.service.DeleteUser(r.Context(), userID); err != nil {
		logger.Error("Error deleting user in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("User deleted successfully")
	w.WriteHeader(http.StatusNoContent)
}

// GetLeaderboard はスキル別リーダーボードを取得するハンドラ
func (h *AdminHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetLeaderboard"))

	slug := chi.URLParam(r, "slug")
	logger = logger.With(slog.String("slug", slug))

	limit := parseLimitQuery(r, 0)

	entries, err := h.service.GetLeaderboard(r.Context(), slug, limit)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Skill not found in service", slog.Any("error", err))
		} else {
			logger.Error("Error getting leaderboard from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	if entries == nil {
		entries = []*model.LeaderboardEntry{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, entries, logger)
}

// ListLoginLogs はログイン履歴を新しい順に取得するハンドラ
func (h *AdminHandler) ListLoginLogs(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ListLoginLogs"))

	limit := parseLimitQuery(r, 0)

	logs, err := h.service.ListLoginLogs(r.Context(), limit)
	if err != nil {
		logger.Error("Error listing login logs from service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if logs == nil {
		logs = []*model.LoginLog{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, logs, logger)
}

// parseLimitQuery は limit クエリパラメータを解釈します。不正値はフォールバックします。
func parseLimitQuery(r *http.Request, fallback int) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return fallback
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return fallback
	}
	return limit
}
