// internal/handlers/helpers.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"skillsphere/internal/middleware"
	"skillsphere/internal/model"
	"skillsphere/internal/webutil"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// decodeAndValidate はJSONボディのデコードとバリデーションをまとめて行います。
// エラー時はレスポンスを書き込み済みで false を返します。
func decodeAndValidate(w http.ResponseWriter, r *http.Request, logger *slog.Logger, dst interface{}) bool {
	if err := webutil.DecodeJSONBody(r, dst); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return false
	}

	if err := webutil.Validator.Struct(dst); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed", slog.Any("errors", validationErrors.Error()))

			// 最初のエラーを代表としてクライアントに返す
			firstErr := validationErrors[0]
			translatedMsg := firstErr.Translate(webutil.Trans)
			appErr := model.NewAppError(
				"VALIDATION_ERROR",
				translatedMsg,
				firstErr.Field(),
				model.ErrInvalidInput,
			)
			webutil.HandleError(w, logger, appErr)
		} else {
			logger.Error("Unexpected error during validation", slog.Any("error", err))
			webutil.HandleError(w, logger, err)
		}
		return false
	}
	return true
}

// requireUserID は認証済みユーザーIDをコンテキストから取り出します。
// 取得できない場合はレスポンス書き込み済みで uuid.Nil, false を返します。
func requireUserID(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (uuid.UUID, bool) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return uuid.Nil, false
	}
	return userID, true
}

// parseUUIDParam はURLパラメータをUUIDとして解釈します。
func parseUUIDParam(w http.ResponseWriter, logger *slog.Logger, name, raw string) (uuid.UUID, bool) {
	id, err := uuid.Parse(raw)
	if err != nil {
		logger.Warn("Invalid UUID in URL parameter", slog.String("param", name), slog.String("value", raw))
		appErr := model.NewAppError("INVALID_ID", "IDの形式が正しくありません。", name, model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return uuid.Nil, false
	}
	return id, true
}
