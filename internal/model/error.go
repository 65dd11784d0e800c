// internal/model/error.go
package model

import "errors"

// アプリケーション固有のエラー
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrInternalServer = errors.New("internal server error")
	ErrForbidden      = errors.New("forbidden")
	ErrConflict       = errors.New("resource conflict") // 重複・競合エラー用
)

// ErrorDetail はクライアントに返すエラーの詳細情報
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// APIErrorResponse はAPIエラーレスポンスの構造体
type APIErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// AppError はエラーコード・メッセージ・原因エラーをまとめたアプリケーションエラー
type AppError struct {
	Detail ErrorDetail
	Err    error // 根本原因 (上記 sentinel エラーのいずれかを想定)
}

func NewAppError(code, message, field string, err error) *AppError {
	return &AppError{
		Detail: ErrorDetail{Code: code, Message: message, Field: field},
		Err:    err,
	}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Detail.Code + ": " + e.Detail.Message + " (" + e.Err.Error() + ")"
	}
	return e.Detail.Code + ": " + e.Detail.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}
