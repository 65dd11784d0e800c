// internal/handlers/auth_handler_test.go
package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"skillsphere/internal/handlers"
	"skillsphere/internal/middleware"
	"skillsphere/internal/model"
	"skillsphere/internal/service/mocks"
)

func setupAuthRouter(t *testing.T) (*chi.Mux, *mocks.AuthService) {
	t.Helper()

	mockService := mocks.NewAuthService(t)
	handler := handlers.NewAuthHandler(mockService, nil)

	router := chi.NewRouter()
	router.Post("/api/v1/auth/register", handler.Register)
	router.Post("/api/v1/auth/login", handler.Login)
	router.Group(func(r chi.Router) {
		r.Use(middleware.DevUserContextMiddleware)
		r.Post("/api/v1/auth/logout", handler.Logout)
		r.Get("/api/v1/me", handler.GetMe)
		r.Patch("/api/v1/me", handler.UpdateProfile)
	})
	return router, mockService
}

func TestAuthHandler_Register(t *testing.T) {
	validReqBody := model.RegisterRequest{
		Username: "testuser",
		Email:    "test@example.com",
		Password: "password123",
	}
	createdUser := &model.User{
		UserID:    uuid.New(),
		Username:  validReqBody.Username,
		Email:     validReqBody.Email,
		CreatedAt: time.Now(),
	}

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(m *mocks.AuthService)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "正常系: 新規登録できる",
			body: validReqBody,
			setupMock: func(m *mocks.AuthService) {
				m.On("Register", mock.Anything, &validReqBody).
					Return(createdUser, nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "異常系: メールアドレスの形式が不正",
			body:           model.RegisterRequest{Username: "testuser", Email: "not-an-email", Password: "password123"},
			setupMock:      func(m *mocks.AuthService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:           "異常系: パスワードが短すぎる",
			body:           model.RegisterRequest{Username: "testuser", Email: "test@example.com", Password: "short"},
			setupMock:      func(m *mocks.AuthService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name: "異常系: メールアドレス重複",
			body: validReqBody,
			setupMock: func(m *mocks.AuthService) {
				m.On("Register", mock.Anything, &validReqBody).
					Return(nil, model.NewAppError("DUPLICATE_EMAIL", "このメールアドレスは既に登録されています。", "email", model.ErrConflict)).Once()
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   "DUPLICATE_EMAIL",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			router, mockService := setupAuthRouter(t)
			tc.setupMock(mockService)

			req := createRequest(t, "POST", "/api/v1/auth/register", tc.body, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedCode != "" {
				errResp := decodeErrorResponse(t, rr)
				assert.Equal(t, tc.expectedCode, errResp.Error.Code)
				return
			}

			var resp model.UserResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, createdUser.UserID, resp.UserID)
			assert.Equal(t, createdUser.Username, resp.Username)
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	validReqBody := model.LoginRequest{
		Email:    "test@example.com",
		Password: "password123",
	}
	loginResp := &model.LoginResponse{
		AccessToken: "header.payload.signature",
		User: model.UserResponse{
			UserID:   uuid.New(),
			Username: "testuser",
			Email:    validReqBody.Email,
		},
	}

	t.Run("正常系: ログインしてトークンを受け取る", func(t *testing.T) {
		router, mockService := setupAuthRouter(t)
		mockService.On("Login", mock.Anything, &validReqBody, mock.AnythingOfType("string")).
			Return(loginResp, nil).Once()

		req := createRequest(t, "POST", "/api/v1/auth/login", validReqBody, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp model.LoginResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, loginResp.AccessToken, resp.AccessToken)
		assert.Equal(t, loginResp.User.UserID, resp.User.UserID)
	})

	t.Run("異常系: 認証失敗は400", func(t *testing.T) {
		router, mockService := setupAuthRouter(t)
		mockService.On("Login", mock.Anything, &validReqBody, mock.AnythingOfType("string")).
			Return(nil, model.NewAppError("AUTHENTICATION_FAILED", "メールアドレスまたはパスワードが正しくありません。", "", model.ErrInvalidInput)).Once()

		req := createRequest(t, "POST", "/api/v1/auth/login", validReqBody, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		errResp := decodeErrorResponse(t, rr)
		assert.Equal(t, "AUTHENTICATION_FAILED", errResp.Error.Code)
	})

	t.Run("異常系: ブロック中のアカウントは403", func(t *testing.T) {
		router, mockService := setupAuthRouter(t)
		mockService.On("Login", mock.Anything, &validReqBody, mock.AnythingOfType("string")).
			Return(nil, model.NewAppError("ACCOUNT_BLOCKED", "このアカウントは利用を制限されています。", "", model.ErrForbidden)).Once()

		req := createRequest(t, "POST", "/api/v1/auth/login", validReqBody, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		errResp := decodeErrorResponse(t, rr)
		assert.Equal(t, "ACCOUNT_BLOCKED", errResp.Error.Code)
	})
}

func TestAuthHandler_UpdateProfile(t *testing.T) {
	testUserID := uuid.New()
	bio := "Goを勉強しています。"

	t.Run("正常系: プロフィールを更新できる", func(t *testing.T) {
		router, mockService := setupAuthRouter(t)
		reqBody := model.UpdateProfileRequest{Bio: &bio}
		updated := &model.User{UserID: testUserID, Username: "testuser", Bio: bio}
		mockService.On("UpdateProfile", mock.AnythingOfType("*context.valueCtx"), testUserID, &reqBody).
			Return(updated, nil).Once()

		req := createRequest(t, "PATCH", "/api/v1/me", reqBody, &testUserID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp model.User
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, bio, resp.Bio)
	})

	t.Run("異常系: 更新フィールドなし", func(t *testing.T) {
		router, _ := setupAuthRouter(t)

		req := createRequest(t, "PATCH", "/api/v1/me", model.UpdateProfileRequest{}, &testUserID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		errResp := decodeErrorResponse(t, rr)
		assert.Equal(t, "VALIDATION_ERROR", errResp.Error.Code)
	})
}
