// internal/handlers/material_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"skillsphere/internal/model"
	"skillsphere/internal/service"
	"skillsphere/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// MaterialHandler は学習教材関連のHTTPリクエストを処理します
type MaterialHandler struct {
	service service.MaterialService
	logger  *slog.Logger
}

func NewMaterialHandler(s service.MaterialService, logger *slog.Logger) *MaterialHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &MaterialHandler{service: s, logger: logger}
}

// ListMaterials は教材一覧を取得するハンドラ。skill_id クエリで絞り込みできます。
func (h *MaterialHandler) ListMaterials(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ListMaterials"))

	var skillID *uuid.UUID
	if raw := r.URL.Query().Get("skill_id"); raw != "" {
		id, ok := parseUUIDParam(w, logger, "skill_id", raw)
		if !ok {
			return
		}
		skillID = &id
	}

	materials, err := h.service.ListMaterials(r.Context(), skillID)
	if err != nil {
		logger.Error("Error listing materials from service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if materials == nil {
		materials = []*model.SkillMaterial{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, materials, logger)
}

// CreateMaterial は管理者向けの教材登録ハンドラ
func (h *MaterialHandler) CreateMaterial(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "CreateMaterial"))

	var req model.CreateMaterialRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	material, err := h.service.CreateMaterial(r.Context(), &req)
	if err != nil {
		logger.Error("Error creating material in service", slog.Any("error", err), slog.Any("request", req))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Material created successfully", slog.String("material_id", material.MaterialID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, material, logger)
}

// DeleteMaterial は管理者向けの教材削除ハンドラ
func (h *MaterialHandler) DeleteMaterial(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteMaterial"))

	materialID, ok := parseUUIDParam(w, logger, "material_id", chi.URLParam(r, "material_id"))
	if !ok {
		return
	}
	logger = logger.With(slog.String("material_id", materialID.String()))

	if err := h.service.DeleteMaterial(r.Context(), materialID); err != nil {
		logger.Error("Error deleting material in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Material deleted successfully")
	w.WriteHeader(http.StatusNoContent)
}
