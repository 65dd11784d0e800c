// internal/handlers/skill_handler_test.go
package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

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

func setupSkillRouter(t *testing.T) (*chi.Mux, *mocks.SkillService) {
	t.Helper()

	mockService := mocks.NewSkillService(t)
	handler := handlers.NewSkillHandler(mockService, nil)

	router := chi.NewRouter()
	router.Get("/api/v1/skills", handler.ListSkills)
	router.Get("/api/v1/skills/{slug}", handler.GetSkill)
	router.Group(func(r chi.Router) {
		r.Use(middleware.DevUserContextMiddleware)
		r.Get("/api/v1/me/skills", handler.ListUserSkills)
		r.Post("/api/v1/me/skills", handler.AddUserSkill)
	})
	return router, mockService
}

func intPtr(i int) *int { return &i }

func TestSkillHandler_ListSkills(t *testing.T) {
	t.Run("正常系: カタログ一覧を取得できる", func(t *testing.T) {
		router, mockService := setupSkillRouter(t)
		expected := []*model.Skill{
			{SkillID: uuid.New(), Name: "Go Programming", Slug: "go-programming", Category: "Programming"},
			{SkillID: uuid.New(), Name: "SQL", Slug: "sql", Category: "Data"},
		}
		mockService.On("ListSkills", mock.Anything, "", model.Difficulty("")).
			Return(expected, nil).Once()

		req := createRequest(t, "GET", "/api/v1/skills", nil, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp []*model.Skill
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Len(t, resp, 2)
	})

	t.Run("正常系: クエリパラメータで絞り込める", func(t *testing.T) {
		router, mockService := setupSkillRouter(t)
		mockService.On("ListSkills", mock.Anything, "Programming", model.DifficultyBeginner).
			Return([]*model.Skill{}, nil).Once()

		req := createRequest(t, "GET", "/api/v1/skills?category=Programming&difficulty=Beginner", nil, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, "[]", rr.Body.String())
	})
}

func TestSkillHandler_GetSkill(t *testing.T) {
	t.Run("正常系: スラッグで詳細を取得できる", func(t *testing.T) {
		router, mockService := setupSkillRouter(t)
		expected := &model.Skill{SkillID: uuid.New(), Name: "Go Programming", Slug: "go-programming"}
		mockService.On("GetSkillBySlug", mock.Anything, "go-programming").
			Return(expected, nil).Once()

		req := createRequest(t, "GET", "/api/v1/skills/go-programming", nil, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp model.Skill
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, expected.Name, resp.Name)
	})

	t.Run("異常系: 存在しないスラッグは404", func(t *testing.T) {
		router, mockService := setupSkillRouter(t)
		mockService.On("GetSkillBySlug", mock.Anything, "unknown").
			Return(nil, model.NewAppError("SKILL_NOT_FOUND", "スキルが見つかりません。", "", model.ErrNotFound)).Once()

		req := createRequest(t, "GET", "/api/v1/skills/unknown", nil, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		errResp := decodeErrorResponse(t, rr)
		assert.Equal(t, "SKILL_NOT_FOUND", errResp.Error.Code)
	})
}

func TestSkillHandler_AddUserSkill(t *testing.T) {
	testUserID := uuid.New()
	testSkillID := uuid.New()

	validReqBody := model.AddUserSkillRequest{
		Name:     "Rust Programming",
		Progress: intPtr(40),
	}
	expectedProgress := &model.UserSkillProgress{
		ProgressID: uuid.New(),
		UserID:     testUserID,
		SkillID:    testSkillID,
		Level:      1,
		XP:         0,
		Progress:   40,
	}

	tests := []struct {
		name           string
		userID         *uuid.UUID
		body           interface{}
		setupMock      func(m *mocks.SkillService)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:   "正常系: 自由入力でスキルを登録できる",
			userID: &testUserID,
			body:   validReqBody,
			setupMock: func(m *mocks.SkillService) {
				m.On("AddOrUpdateUserSkill", mock.AnythingOfType("*context.valueCtx"), testUserID, &validReqBody).
					Return(expectedProgress, nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "異常系: 認証ヘッダーなし",
			userID:         nil,
			body:           validReqBody,
			setupMock:      func(m *mocks.SkillService) {},
			expectedStatus: http.StatusForbidden,
			expectedCode:   "UNAUTHORIZED",
		},
		{
			name:           "異常系: progress未指定",
			userID:         &testUserID,
			body:           map[string]interface{}{"name": "Rust Programming"},
			setupMock:      func(m *mocks.SkillService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:           "異常系: progressが範囲外",
			userID:         &testUserID,
			body:           model.AddUserSkillRequest{Name: "Rust Programming", Progress: intPtr(150)},
			setupMock:      func(m *mocks.SkillService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			router, mockService := setupSkillRouter(t)
			tc.setupMock(mockService)

			req := createRequest(t, "POST", "/api/v1/me/skills", tc.body, tc.userID)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedCode != "" {
				errResp := decodeErrorResponse(t, rr)
				assert.Equal(t, tc.expectedCode, errResp.Error.Code)
				return
			}

			var resp model.UserSkillProgress
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, expectedProgress.SkillID, resp.SkillID)
			assert.Equal(t, 40, resp.Progress)
			assert.Equal(t, 1, resp.Level)
		})
	}
}

func TestSkillHandler_ListUserSkills(t *testing.T) {
	testUserID := uuid.New()

	t.Run("正常系: 登録スキルとサマリーを取得できる", func(t *testing.T) {
		router, mockService := setupSkillRouter(t)
		expected := &model.UserSkillListResponse{
			Skills: []*model.UserSkillProgress{
				{ProgressID: uuid.New(), UserID: testUserID, Level: 3, XP: 120, Progress: 60, RequiredXP: 200},
			},
			Summary: model.UserSkillSummary{TotalSkills: 1, TotalXP: 120, AvgProgress: 60, HighestLevel: 3},
		}
		mockService.On("ListUserSkills", mock.AnythingOfType("*context.valueCtx"), testUserID).
			Return(expected, nil).Once()

		req := createRequest(t, "GET", "/api/v1/me/skills", nil, &testUserID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp model.UserSkillListResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		require.Len(t, resp.Skills, 1)
		assert.Equal(t, 200, resp.Skills[0].RequiredXP)
		assert.Equal(t, 1, resp.Summary.TotalSkills)
	})
}
