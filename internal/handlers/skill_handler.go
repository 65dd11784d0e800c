// internal/handlers/skill_handler.go
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

// SkillHandler はスキルカタログとユーザースキル関連のHTTPリクエストを処理します
type SkillHandler struct {
	service service.SkillService
	logger  *slog.Logger
}

func NewSkillHandler(s service.SkillService, logger *slog.Logger) *SkillHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SkillHandler{service: s, logger: logger}
}

// ListSkills はスキルカタログ一覧を取得するハンドラ。
// category / difficulty クエリパラメータで絞り込みできます。
func (h *SkillHandler) ListSkills(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ListSkills"))

	category := r.URL.Query().Get("category")
	difficulty := model.Difficulty(r.URL.Query().Get("difficulty"))

	skills, err := h.service.ListSkills(r.Context(), category, difficulty)
	if err != nil {
		logger.Error("Error listing skills from service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if skills == nil {
		skills = []*model.Skill{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, skills, logger)
}

// GetSkill はスラッグ指定でスキル詳細を取得するハンドラ
func (h *SkillHandler) GetSkill(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetSkill"))

	slug := chi.URLParam(r, "slug")
	logger = logger.With(slog.String("slug", slug))

	skill, err := h.service.GetSkillBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Skill not found in service", slog.Any("error", err))
		} else {
			logger.Error("Error getting skill from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, skill, logger)
}

// CreateSkill は管理者向けのスキル作成ハンドラ
func (h *SkillHandler) CreateSkill(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "CreateSkill"))

	var req model.CreateSkillRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	skill, err := h.service.CreateSkill(r.Context(), &req)
	if err != nil {
		logger.Error("Error creating skill in service", slog.Any("error", err), slog.Any("request", req))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Skill created successfully", slog.String("skill_id", skill.SkillID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, skill, logger)
}

// UpdateSkill は管理者向けのスキル更新ハンドラ
func (h *SkillHandler) UpdateSkill(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "UpdateSkill"))

	skillID, ok := parseUUIDParam(w, logger, "skill_id", chi.URLParam(r, "skill_id"))
	if !ok {
		return
	}
	logger = logger.With(slog.String("skill_id", skillID.String()))

	var req model.UpdateSkillRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	skill, err := h.service.UpdateSkill(r.Context(), skillID, &req)
	if err != nil {
		logger.Error("Error updating skill in service", slog.Any("error", err), slog.Any("request", req))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Skill updated successfully")
	webutil.RespondWithJSON(w, http.StatusOK, skill, logger)
}

// DeleteSkill は管理者向けのスキル削除ハンドラ (設問もカスケード削除されます)
func (h *SkillHandler) DeleteSkill(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteSkill"))

	skillID, ok := parseUUIDParam(w, logger, "skill_id", chi.URLParam(r, "skill_id"))
	if !ok {
		return
	}
	logger = logger.With(slog.String("skill_id", skillID.String()))

	if err := h.service.DeleteSkill(r.Context(), skillID); err != nil {
		logger.Error("Error deleting skill in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Skill deleted successfully")
	w.WriteHeader(http.StatusNoContent)
}

// AddUserSkill は自由入力によるスキル登録のハンドラ。
// 未知のスキル名はカタログに自動登録され、進捗が直接セットされます。
func (h *SkillHandler) AddUserSkill(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "AddUserSkill"))

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	var req model.AddUserSkillRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	progress, err := h.service.AddOrUpdateUserSkill(r.Context(), userID, &req)
	if err != nil {
		logger.Error("Error adding user skill in service", slog.Any("error", err), slog.Any("request", req))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("User skill added successfully", slog.String("skill_id", progress.SkillID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, progress, logger)
}

// ListUserSkills は自分の登録スキル一覧とサマリーを取得するハンドラ
func (h *SkillHandler) ListUserSkills(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ListUserSkills"))

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	resp, err := h.service.ListUserSkills(r.Context(), userID)
	if err != nil {
		logger.Error("Error listing user skills from service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if resp.Skills == nil {
		resp.Skills = []*model.UserSkillProgress{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}
