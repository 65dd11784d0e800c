// internal/handlers/helpers_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// createRequest はテスト用のHTTPリクエストを組み立てるヘルパーです。
// userID が指定された場合は開発用認証ミドルウェアが読む X-User-ID ヘッダーを付与します。
func createRequest(t *testing.T, method, target string, body interface{}, userID *uuid.UUID) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if userID != nil {
		req.Header.Set("X-User-ID", userID.String())
	}
	return req
}

// decodeErrorResponse はエラーレスポンスのJSONをデコードするヘルパーです
func decodeErrorResponse(t *testing.T, rr *httptest.ResponseRecorder) errorResponseBody {
	t.Helper()

	var resp errorResponseBody
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}

type errorResponseBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Field   string `json:"field,omitempty"`
	} `json:"error"`
}
