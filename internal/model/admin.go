// internal/model/admin.go
package model

import "github.com/google/uuid"

// DashboardStats は管理ダッシュボードに表示する集計値です
type DashboardStats struct {
	TotalUsers        int64 `json:"total_users"`
	TotalSkills       int64 `json:"total_skills"`
	TotalQuestions    int64 `json:"total_questions"`
	TotalInternships  int64 `json:"total_internships"`
	TotalApplications int64 `json:"total_applications"`
}

// LeaderboardEntry はスキル別ランキングの1行です
type LeaderboardEntry struct {
	Rank     int       `json:"rank"`
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	Level    int       `json:"level"`
	XP       int       `json:"xp"`
	Progress int       `json:"progress"`
}

// SetUserBlockedRequest はユーザーのブロック/解除リクエストのDTO
type SetUserBlockedRequest struct {
	Blocked *bool `json:"blocked" validate:"required"`
}

// AdminUserResponse は管理画面のユーザー一覧に返す情報です
type AdminUserResponse struct {
	User    UserResponse     `json:"user"`
	Summary UserSkillSummary `json:"summary"`
}
