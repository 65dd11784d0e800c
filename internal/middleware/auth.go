// internal/middleware/auth.go
package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"skillsphere/internal/config"
	"skillsphere/internal/model"
	"skillsphere/internal/webutil"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWTAuthMiddleware は Authorization ヘッダーの Bearer トークンを検証するミドルウェア
func JWTAuthMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("JWT auth failed: Authorization header missing")
				appErr := model.NewAppError("UNAUTHORIZED", "Authorizationヘッダーが必要です。", "", model.ErrForbidden)
				webutil.HandleError(w, logger, appErr)
				return
			}

			// "Bearer {token}" の形式を検証
			headerParts := strings.Split(authHeader, " ")
			if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
				logger.Warn("JWT auth failed: Invalid Authorization header format")
				appErr := model.NewAppError("UNAUTHORIZED", "Authorizationヘッダーの形式が正しくありません。", "", model.ErrForbidden)
				webutil.HandleError(w, logger, appErr)
				return
			}
			tokenString := headerParts[1]

			// jwt.ParseWithClaims は署名と有効期限(exp)の両方を検証してくれる
			claims := &model.JWTCustomClaims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, errors.New("unexpected signing method")
				}
				return []byte(cfg.JWT.SecretKey), nil
			})

			if err != nil || !token.Valid {
				logger.Warn("JWT auth failed: Invalid token", "error", err)
				appErr := model.NewAppError("INVALID_TOKEN", "トークンが無効です。", "", model.ErrForbidden)
				webutil.HandleError(w, logger, appErr)
				return
			}

			subject, err := claims.GetSubject()
			if err != nil {
				logger.Warn("JWT auth failed: Subject (sub) claim missing", "error", err)
				appErr := model.NewAppError("INVALID_TOKEN", "トークンにユーザー情報が含まれていません。", "", model.ErrForbidden)
				webutil.HandleError(w, logger, appErr)
				return
			}

			userID, err := uuid.Parse(subject)
			if err != nil {
				logger.Warn("JWT auth failed: Invalid subject (sub) format", "subject", subject, "error", err)
				appErr := model.NewAppError("INVALID_TOKEN", "トークンのユーザー情報が不正です。", "", model.ErrForbidden)
				webutil.HandleError(w, logger, appErr)
				return
			}

			ctx := context.WithValue(r.Context(), model.UserIDKey, userID)
			ctx = context.WithValue(ctx, model.IsAdminKey, claims.IsAdmin)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminOnlyMiddleware は管理者クレームを持つリクエストだけを通します。
// JWTAuthMiddleware の後段で使う前提です。
func AdminOnlyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLogger(r.Context())

		isAdmin, ok := r.Context().Value(model.IsAdminKey).(bool)
		if !ok || !isAdmin {
			logger.Warn("Admin gate: non-admin access attempt")
			appErr := model.NewAppError("FORBIDDEN", "管理者権限が必要です。", "", model.ErrForbidden)
			webutil.HandleError(w, logger, appErr)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetUserIDFromContext はコンテキストから認証済みユーザーIDを取得します
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, error) {
	value, ok := ctx.Value(model.UserIDKey).(uuid.UUID)
	if !ok {
		// ミドルウェアが正しく動作していない等の内部エラー
		return uuid.Nil, model.NewAppError("INTERNAL_SERVER_ERROR", "コンテキストからユーザー情報を取得できませんでした。", "", model.ErrInternalServer)
	}
	return value, nil
}
