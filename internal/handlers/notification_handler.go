// internal/handlers/notification_handler.go
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

// NotificationHandler はお知らせ関連のHTTPリクエストを処理します
type NotificationHandler struct {
	service service.NotificationService
	logger  *slog.Logger
}

func NewNotificationHandler(s service.NotificationService, logger *slog.Logger) *NotificationHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &NotificationHandler{service: s, logger: logger}
}

// ListNotifications は自分宛て(全体向け含む)のお知らせ一覧を取得するハンドラ
func (h *NotificationHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ListNotifications"))

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	notifications, err := h.service.ListNotifications(r.Context(), userID)
	if err != nil {
		logger.Error("Error listing notifications from service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if notifications == nil {
		notifications = []*model.Notification{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, notifications, logger)
}

// MarkRead はお知らせを既読にするハンドラ
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "MarkRead"))

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	notificationID, ok := parseUUIDParam(w, logger, "notification_id", chi.URLParam(r, "notification_id"))
	if !ok {
		return
	}
	logger = logger.With(
		slog.String("user_id", userID.String()),
		slog.String("notification_id", notificationID.String()))

	if err := h.service.MarkRead(r.Context(), userID, notificationID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Notification not found in service", slog.Any("error", err))
		} else {
			logger.Error("Error marking notification as read in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Notification marked as read")
	w.WriteHeader(http.StatusNoContent)
}

// Announce は管理者から特定ユーザーへのアナウンス送信ハンドラ
func (h *NotificationHandler) Announce(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Announce"))

	targetUserID, ok := parseUUIDParam(w, logger, "user_id", chi.URLParam(r, "user_id"))
	if !ok {
		return
	}
	logger = logger.With(slog.String("target_user_id", targetUserID.String()))

	var req model.AnnounceRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	notification, err := h.service.Announce(r.Context(), targetUserID, &req)
	if err != nil {
		logger.Error("Error announcing to user in service", slog.Any("error", err), slog.Any("request", req))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Announcement sent successfully", slog.String("notification_id", notification.NotificationID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, notification, logger)
}

// Broadcast は管理者から全学習者向けのアナウンス送信ハンドラ
func (h *NotificationHandler) Broadcast(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Broadcast"))

	var req model.AnnounceRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	notification, err := h.service.Broadcast(r.Context(), &req)
	if err != nil {
		logger.Error("Error broadcasting announcement in service", slog.Any("error", err), slog.Any("request", req))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Broadcast sent successfully", slog.String("notification_id", notification.NotificationID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, notification, logger)
}
