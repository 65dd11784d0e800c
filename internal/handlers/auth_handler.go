// internal/handlers/auth_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"skillsphere/internal/model"
	"skillsphere/internal/service"
	"skillsphere/internal/webutil"
)

// AuthHandler は認証・アカウント関連のHTTPリクエストを処理します
type AuthHandler struct {
	service service.AuthService
	logger  *slog.Logger
}

func NewAuthHandler(s service.AuthService, logger *slog.Logger) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{service: s, logger: logger}
}

// Register は新規ユーザー登録のハンドラ
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Register"))

	var req model.RegisterRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	user, err := h.service.Register(r.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			logger.Info("Registration conflict", slog.Any("error", err))
		} else {
			logger.Error("Error registering user in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("User registered successfully", slog.String("user_id", user.UserID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, toUserResponse(user), logger)
}

// Login はログインのハンドラ。成功時はアクセストークンを返します。
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Login"))

	var req model.LoginRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	// RealIPミドルウェア適用後のRemoteAddrをログイン履歴に残す
	resp, err := h.service.Login(r.Context(), &req, r.RemoteAddr)
	if err != nil {
		logger.Warn("Login failed", slog.String("email", req.Email), slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("User logged in successfully", slog.String("user_id", resp.User.UserID.String()))
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// Logout はログアウトのハンドラ。未クローズのログイン履歴を閉じます。
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Logout"))

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	if err := h.service.Logout(r.Context(), userID); err != nil {
		logger.Error("Error logging out in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("User logged out successfully")
	w.WriteHeader(http.StatusNoContent)
}

// GetMe は自分のアカウント情報を取得するハンドラ
func (h *AuthHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetMe"))

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	user, err := h.service.GetUser(r.Context(), userID)
	if err != nil {
		logger.Error("Error getting user from service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, user, logger)
}

// UpdateProfile はプロフィール(自己紹介・スキル概要)を更新するハンドラ
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "UpdateProfile"))

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	var req model.UpdateProfileRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	if req.Bio == nil && req.SkillsSummary == nil {
		logger.Warn("UpdateProfile called with no fields provided for update")
		appErr := model.NewAppError("VALIDATION_ERROR", "更新するフィールドが指定されていません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	user, err := h.service.UpdateProfile(r.Context(), userID, &req)
	if err != nil {
		logger.Error("Error updating profile in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Profile updated successfully")
	webutil.RespondWithJSON(w, http.StatusOK, user, logger)
}

func toUserResponse(u *model.User) model.UserResponse {
	return model.UserResponse{
		UserID:    u.UserID,
		Username:  u.Username,
		Email:     u.Email,
		IsAdmin:   u.IsAdmin,
		IsBlocked: u.IsBlocked,
		CreatedAt: u.CreatedAt,
	}
}
