// internal/middleware/dev_auth.go
package middleware

import (
	"context"
	"net/http"

	"skillsphere/internal/model"
	"skillsphere/internal/webutil"

	"github.com/google/uuid"
)

// DevUserContextMiddleware は X-User-ID ヘッダーをそのまま信用してユーザーIDを
// コンテキストにセットする開発・テスト用ミドルウェアです。本番では使いません。
func DevUserContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLogger(r.Context())

		userIDStr := r.Header.Get("X-User-ID")
		if userIDStr == "" {
			appErr := model.NewAppError("UNAUTHORIZED", "X-User-IDヘッダーが必要です。", "", model.ErrForbidden)
			webutil.HandleError(w, logger, appErr)
			return
		}

		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			appErr := model.NewAppError("UNAUTHORIZED", "X-User-IDヘッダーの形式が正しくありません。", "", model.ErrForbidden)
			webutil.HandleError(w, logger, appErr)
			return
		}

		ctx := context.WithValue(r.Context(), model.UserIDKey, userID)
		if r.Header.Get("X-Admin") == "true" {
			ctx = context.WithValue(ctx, model.IsAdminKey, true)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
