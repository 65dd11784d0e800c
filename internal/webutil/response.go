// internal/webutil/response.go
package webutil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"skillsphere/internal/model"
)

// HandleError はエラーを解釈し、適切なJSONエラーレスポンスを返します。
// アプリケーションのエラーハンドリングの中心です。
func HandleError(w http.ResponseWriter, logger *slog.Logger, err error) {
	statusCode := MapErrorToStatusCode(err)

	var errResp model.APIErrorResponse
	var appErr *model.AppError

	if errors.As(err, &appErr) {
		errResp = model.APIErrorResponse{Error: appErr.Detail}
	} else {
		// AppError ではない予期せぬエラー。詳細はログにのみ出す。
		logger.Error("Unhandled error", slog.Any("error", err))
		errResp = model.APIErrorResponse{
			Error: model.ErrorDetail{
				Code:    "INTERNAL_SERVER_ERROR",
				Message: "サーバー内部でエラーが発生しました。",
			},
		}
	}

	RespondWithJSON(w, statusCode, errResp, logger)
}

// MapErrorToStatusCode はアプリケーションエラーをHTTPステータスコードにマッピングします
func MapErrorToStatusCode(err error) int {
	var appErr *model.AppError
	if errors.As(err, &appErr) {
		err = appErr.Unwrap()
	}

	switch {
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, model.ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// RespondWithJSON はJSONレスポンスを返します
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}, logger *slog.Logger) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Error marshaling JSON response", slog.Any("error", err))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"code":"INTERNAL_SERVER_ERROR","message":"レスポンス生成中にエラーが発生しました。"}}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
