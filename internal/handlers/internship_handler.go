// internal/handlers/internship_handler.go
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

// InternshipHandler はマイクロインターンシップ関連のHTTPリクエストを処理します
type InternshipHandler struct {
	service service.InternshipService
	logger  *slog.Logger
}

func NewInternshipHandler(s service.InternshipService, logger *slog.Logger) *InternshipHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &InternshipHandler{service: s, logger: logger}
}

// ListInternships は募集一覧を取得するハンドラ
func (h *InternshipHandler) ListInternships(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ListInternships"))

	internships, err := h.service.ListInternships(r.Context())
	if err != nil {
		logger.Error("Error listing internships from service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if internships == nil {
		internships = []*model.MicroInternship{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, internships, logger)
}

// GetInternship は募集詳細を取得するハンドラ
func (h *InternshipHandler) GetInternship(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetInternship"))

	internshipID, ok := parseUUIDParam(w, logger, "internship_id", chi.URLParam(r, "internship_id"))
	if !ok {
		return
	}
	logger = logger.With(slog.String("internship_id", internshipID.String()))

	internship, err := h.service.GetInternship(r.Context(), internshipID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Internship not found in service", slog.Any("error", err))
		} else {
			logger.Error("Error getting internship from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, internship, logger)
}

// CreateInternship は管理者向けの募集作成ハンドラ
func (h *InternshipHandler) CreateInternship(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "CreateInternship"))

	var req model.CreateInternshipRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	internship, err := h.service.CreateInternship(r.Context(), &req)
	if err != nil {
		logger.Error("Error creating internship in service", slog.Any("error", err), slog.Any("request", req))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Internship created successfully", slog.String("internship_id", internship.InternshipID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, internship, logger)
}

// DeleteInternship は管理者向けの募集削除ハンドラ
func (h *InternshipHandler) DeleteInternship(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteInternship"))

	internshipID, ok := parseUUIDParam(w, logger, "internship_id", chi.URLParam(r, "internship_id"))
	if !ok {
		return
	}
	logger = logger.With(slog.String("internship_id", internshipID.String()))

	if err := h.service.DeleteInternship(r.Context(), internshipID); err != nil {
		logger.Error("Error deleting internship in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Internship deleted successfully")
	w.WriteHeader(http.StatusNoContent)
}

// Apply は募集への応募ハンドラ。ユーザー×募集で一意で、重複応募は409になります。
func (h *InternshipHandler) Apply(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Apply"))

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	internshipID, ok := parseUUIDParam(w, logger, "internship_id", chi.URLParam(r, "internship_id"))
	if !ok {
		return
	}
	logger = logger.With(
		slog.String("user_id", userID.String()),
		slog.String("internship_id", internshipID.String()))

	var req model.ApplyInternshipRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	application, err := h.service.Apply(r.Context(), userID, internshipID, &req)
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			logger.Info("Duplicate application", slog.Any("error", err))
		} else {
			logger.Error("Error applying for internship in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Application submitted successfully", slog.String("application_id", application.ApplicationID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, application, logger)
}

// ListMyApplications は自分の応募一覧を取得するハンドラ
func (h *InternshipHandler) ListMyApplications(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ListMyApplications"))

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	applications, err := h.service.ListMyApplications(r.Context(), userID)
	if err != nil {
		logger.Error("Error listing applications from service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if applications == nil {
		applications = []*model.Application{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, applications, logger)
}

// UpdateApplicationStatus は管理者による応募ステータス更新のハンドラ
func (h *InternshipHandler) UpdateApplicationStatus(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "UpdateApplicationStatus"))

	applicationID, ok := parseUUIDParam(w, logger, "application_id", chi.URLParam(r, "application_id"))
	if !ok {
		return
	}
	logger = logger.With(slog.String("application_id", applicationID.String()))

	var req model.UpdateApplicationStatusRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	if err := h.service.UpdateApplicationStatus(r.Context(), applicationID, req.Status); err != nil {
		logger.Error("Error updating application status in service", slog.Any("error", err), slog.Any("request", req))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Application status updated successfully", slog.String("status", string(req.Status)))
	w.WriteHeader(http.StatusNoContent)
}
