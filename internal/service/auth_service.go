// internal/service/auth_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"skillsphere/internal/config"
	"skillsphere/internal/middleware"
	"skillsphere/internal/model"
	"skillsphere/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService はユーザー登録・認証・プロフィール操作を担います
type AuthService interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error)
	Login(ctx context.Context, req *model.LoginRequest, ipAddress string) (*model.LoginResponse, error)
	Logout(ctx context.Context, userID uuid.UUID) error
	GetUser(ctx context.Context, userID uuid.UUID) (*model.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *model.UpdateProfileRequest) (*model.User, error)
}

type authService struct {
	db           *gorm.DB
	userRepo     repository.UserRepository
	loginLogRepo repository.LoginLogRepository
	mailer       Mailer
	cfg          *config.Config
}

func NewAuthService(db *gorm.DB, userRepo repository.UserRepository, loginLogRepo repository.LoginLogRepository, mailer Mailer, cfg *config.Config) AuthService {
	return &authService{
		db:           db,
		userRepo:     userRepo,
		loginLogRepo: loginLogRepo,
		mailer:       mailer,
		cfg:          cfg,
	}
}

// Register は新しいユーザーを登録し、ウェルカムメールを送信します
func (s *authService) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	logger := middleware.GetLogger(ctx)
	var newUser *model.User

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Emailでの重複チェック
		_, err := s.userRepo.FindByEmail(ctx, tx, req.Email)
		if err == nil {
			logger.Warn("Email already exists", "email", req.Email)
			return model.NewAppError("DUPLICATE_EMAIL", "このメールアドレスは既に使用されています。", "email", model.ErrConflict)
		}
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Failed to check email existence", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
		}

		// ユーザー名での重複チェック
		_, err = s.userRepo.FindByUsername(ctx, tx, req.Username)
		if err == nil {
			logger.Warn("Username already exists", "username", req.Username)
			return model.NewAppError("DUPLICATE_USERNAME", "そのユーザー名は既に使用されています。", "username", model.ErrConflict)
		}
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Failed to check username existence", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
		}

		// パスワードのハッシュ化
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			logger.Error("Failed to hash password", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "パスワードの処理中にエラーが発生しました。", "", err)
		}

		user := &model.User{
			UserID:       uuid.New(),
			Username:     req.Username,
			Email:        req.Email,
			PasswordHash: string(hashedPassword),
			IsAdmin:      false,
			IsBlocked:    false,
		}

		if err := s.userRepo.Create(ctx, tx, user); err != nil {
			// Create内で重複エラーが検知された場合 (レースコンディション対策)
			if errors.Is(err, model.ErrConflict) {
				logger.Warn("Conflict during user creation (race condition)", "error", err)
				return model.NewAppError("DUPLICATE_ENTRY", "指定されたユーザー名またはEmailは既に使用されています。", "username,email", model.ErrConflict)
			}
			logger.Error("Failed to create user in DB", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "ユーザーの作成に失敗しました。", "", err)
		}
		newUser = user
		return nil
	})

	if err != nil {
		return nil, err
	}

	// メール送信失敗で登録自体は失敗させない
	if err := s.sendWelcomeEmail(ctx, newUser.Email, newUser.Username); err != nil {
		logger.Warn("Failed to send welcome email", "error", err, "email", newUser.Email)
	}

	logger.Info("User registered", "user_id", newUser.UserID, "email", newUser.Email)
	return newUser, nil
}

// Login はユーザーを認証し、JWTを発行してログイン履歴を記録します
func (s *authService) Login(ctx context.Context, req *model.LoginRequest, ipAddress string) (*model.LoginResponse, error) {
	logger := middleware.GetLogger(ctx).With("email", req.Email)

	user, err := s.userRepo.FindByEmail(ctx, s.db, req.Email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("Login failed: user not found")
			return nil, model.NewAppError("AUTHENTICATION_FAILED", "メールアドレスまたはパスワードが正しくありません。", "", model.ErrInvalidInput)
		}
		logger.Error("Login failed: db error on FindByEmail", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部エラー", "", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		logger.Warn("Login failed: password mismatch", "user_id", user.UserID)
		return nil, model.NewAppError("AUTHENTICATION_FAILED", "メールアドレスまたはパスワードが正しくありません。", "", model.ErrInvalidInput)
	}

	if user.IsBlocked {
		logger.Warn("Login failed: account blocked", "user_id", user.UserID)
		return nil, model.NewAppError("ACCOUNT_BLOCKED", "このアカウントは利用停止されています。管理者にお問い合わせください。", "", model.ErrForbidden)
	}

	now := time.Now()
	claims := &model.JWTCustomClaims{
		IsAdmin: user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    config.AppName,
			Subject:   user.UserID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.cfg.JWT.ExpiryMinutes) * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(s.cfg.JWT.SecretKey))
	if err != nil {
		logger.Error("Failed to sign JWT", "error", err, "user_id", user.UserID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "トークンの生成に失敗しました。", "", err)
	}

	// ログイン履歴はベストエフォートで記録する
	loginLog := &model.LoginLog{
		LogID:     uuid.New(),
		UserID:    user.UserID,
		IPAddress: ipAddress,
		LoginTime: now,
	}
	if err := s.loginLogRepo.Create(ctx, s.db, loginLog); err != nil {
		logger.Warn("Failed to record login log", "error", err, "user_id", user.UserID)
	}

	logger.Info("Login successful", "user_id", user.UserID)
	return &model.LoginResponse{
		AccessToken: signedToken,
		User: model.UserResponse{
			UserID:   user.UserID,
			Username: user.Username,
			Email:    user.Email,
			IsAdmin:  user.IsAdmin,
		},
	}, nil
}

// Logout は直近の未終了セッションに滞在時間を記録します
func (s *authService) Logout(ctx context.Context, userID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	log, err := s.loginLogRepo.FindLatestOpen(ctx, s.db, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			// 開いているセッションがなければ何もしない
			logger.Debug("No open session found on logout")
			return nil
		}
		logger.Error("Failed to find open session", "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "ログアウト処理に失敗しました。", "", err)
	}

	if err := s.loginLogRepo.CloseSession(ctx, s.db, log.LogID, time.Now()); err != nil {
		logger.Error("Failed to close session", "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "ログアウト処理に失敗しました。", "", err)
	}

	logger.Info("Session closed")
	return nil
}

// GetUser は指定されたIDのユーザーを取得します
func (s *authService) GetUser(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	logger := middleware.GetLogger(ctx)

	user, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("User not found", "user_id", userID.String())
			return nil, model.NewAppError("USER_NOT_FOUND", "ユーザーが見つかりません。", "", model.ErrNotFound)
		}
		logger.Error("Error finding user by ID", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部エラー", "", err)
	}
	return user, nil
}

// UpdateProfile は自己紹介とスキル概要を更新します
func (s *authService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *model.UpdateProfileRequest) (*model.User, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	updates := map[string]interface{}{}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}
	if req.SkillsSummary != nil {
		updates["skills_summary"] = *req.SkillsSummary
	}
	if len(updates) == 0 {
		return nil, model.NewAppError("NO_UPDATE_FIELDS", "更新する項目がありません。", "", model.ErrInvalidInput)
	}

	if err := s.userRepo.Update(ctx, s.db, userID, updates); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("USER_NOT_FOUND", "ユーザーが見つかりません。", "", model.ErrNotFound)
		}
		logger.Error("Failed to update profile", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "プロフィールの更新に失敗しました。", "", err)
	}

	user, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to reload user after update", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "ユーザーの取得に失敗しました。", "", err)
	}
	logger.Info("Profile updated")
	return user, nil
}

func (s *authService) sendWelcomeEmail(ctx context.Context, email, username string) error {
	subject := "【SkillSphere】ご登録ありがとうございます"
	body := fmt.Sprintf("%s さん\n\nSkillSphereへようこそ。\nスキルを登録して、練習問題でXPを獲得しましょう。", username)
	return s.mailer.Send(ctx, email, subject, body)
}
