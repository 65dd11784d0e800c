// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"skillsphere/internal/config"
	"skillsphere/internal/handlers"
	"skillsphere/internal/middleware"
	"skillsphere/internal/repository"
	"skillsphere/internal/service"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	// 設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)
	log.Println("Log Config Loading...")

	// Configを読み込み
	if err := config.LoadConfig("./configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// === 設定に基づいて slog ロガーを初期化 ===
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(config.Cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
	}

	// 開発時は色付きテキスト、それ以外はJSONで出力
	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		tintOpts := &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		}
		handler = tint.NewHandler(os.Stderr, tintOpts)
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		jsonOpts := &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		}
		handler = slog.NewJSONHandler(os.Stderr, jsonOpts)
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	logger := slog.New(handler)
	log.Println("Log Config Loaded...")

	slog.SetDefault(logger)
	slog.Info("Application starting...")

	// 2. Initialize Database Connection (GORM)
	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	if err := repository.AutoMigrate(db); err != nil {
		slog.Error("Error migrating database schema", slog.Any("error", err))
		os.Exit(1)
	}

	// 3. Dependency Injection
	userRepo := repository.NewGormUserRepository()
	skillRepo := repository.NewGormSkillRepository()
	questionRepo := repository.NewGormQuestionRepository()
	progressRepo := repository.NewGormProgressRepository()
	completionRepo := repository.NewGormCompletionRepository()
	internshipRepo := repository.NewGormInternshipRepository()
	applicationRepo := repository.NewGormApplicationRepository()
	notificationRepo := repository.NewGormNotificationRepository()
	materialRepo := repository.NewGormMaterialRepository()
	loginLogRepo := repository.NewGormLoginLogRepository()

	mailer := service.NewMailer(&config.Cfg)

	authService := service.NewAuthService(db, userRepo, loginLogRepo, mailer, &config.Cfg)
	skillService := service.NewSkillService(db, skillRepo, progressRepo)
	quizService := service.NewQuizService(db, skillRepo, questionRepo, progressRepo, completionRepo, &config.Cfg)
	internshipService := service.NewInternshipService(db, internshipRepo, applicationRepo, skillRepo, notificationRepo)
	materialService := service.NewMaterialService(db, materialRepo, skillRepo, notificationRepo)
	notificationService := service.NewNotificationService(db, notificationRepo, userRepo, mailer)
	adminService := service.NewAdminService(db, userRepo, skillRepo, questionRepo, progressRepo, internshipRepo, applicationRepo, loginLogRepo)

	authHandler := handlers.NewAuthHandler(authService, logger)
	skillHandler := handlers.NewSkillHandler(skillService, logger)
	quizHandler := handlers.NewQuizHandler(quizService, logger)
	internshipHandler := handlers.NewInternshipHandler(internshipService, logger)
	materialHandler := handlers.NewMaterialHandler(materialService, logger)
	notificationHandler := handlers.NewNotificationHandler(notificationService, logger)
	adminHandler := handlers.NewAdminHandler(adminService, logger)

	// 4. Setup Router
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	// CORS 設定と適用 (設定ファイルから読み込んだ値を使用)
	corsOptions := cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
		Debug:            false,
	}
	corsHandler := cors.New(corsOptions)
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// API Routes
	r.Route("/api/v1", func(r chi.Router) {
		// --- Public routes ---
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// --- Protected routes (require JWT) ---
		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuthMiddleware(&config.Cfg))

			r.Post("/auth/logout", authHandler.Logout)

			r.Get("/skills", skillHandler.ListSkills)
			r.Get("/skills/{slug}", skillHandler.GetSkill)
			r.Get("/internships", internshipHandler.ListInternships)
			r.Get("/internships/{internship_id}", internshipHandler.GetInternship)
			r.Get("/materials", materialHandler.ListMaterials)

			r.Route("/me", func(r chi.Router) {
				r.Get("/", authHandler.GetMe)
				r.Patch("/", authHandler.UpdateProfile)
				r.Get("/skills", skillHandler.ListUserSkills)
				r.Post("/skills", skillHandler.AddUserSkill)
				r.Get("/applications", internshipHandler.ListMyApplications)
				r.Get("/notifications", notificationHandler.ListNotifications)
				r.Post("/notifications/{notification_id}/read", notificationHandler.MarkRead)
			})

			// Quiz routes (スキルのスラッグ配下)
			r.Get("/skills/{slug}/tiers", quizHandler.GetTierBoard)
			r.Get("/skills/{slug}/questions", quizHandler.GetQuizQuestions)
			r.Post("/skills/{slug}/submit", quizHandler.SubmitAnswers)

			r.Post("/internships/{internship_id}/apply", internshipHandler.Apply)

			// --- Admin routes ---
			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.AdminOnlyMiddleware)

				r.Get("/stats", adminHandler.GetDashboardStats)

				r.Route("/skills", func(r chi.Router) {
					r.Post("/", skillHandler.CreateSkill)
					r.Patch("/{skill_id}", skillHandler.UpdateSkill)
					r.Delete("/{skill_id}", skillHandler.DeleteSkill)
				})

				r.Route("/questions", func(r chi.Router) {
					r.Get("/", adminHandler.ListQuestions)
					r.Post("/", adminHandler.CreateQuestion)
					r.Patch("/{question_id}", adminHandler.UpdateQuestion)
					r.Delete("/{question_id}", adminHandler.DeleteQuestion)
				})

				r.Route("/users", func(r chi.Router) {
					r.Get("/", adminHandler.ListUsers)
					r.Get("/{user_id}/skills", adminHandler.GetUserSkillDetail)
					r.Put("/{user_id}/blocked", adminHandler.SetUserBlocked)
					r.Delete("/{user_id}", adminHandler.DeleteUser)
					r.Post("/{user_id}/announce", notificationHandler.Announce)
				})

				r.Route("/internships", func(r chi.Router) {
					r.Post("/", internshipHandler.CreateInternship)
					r.Delete("/{internship_id}", internshipHandler.DeleteInternship)
				})
				r.Put("/applications/{application_id}/status", internshipHandler.UpdateApplicationStatus)

				r.Route("/materials", func(r chi.Router) {
					r.Post("/", materialHandler.CreateMaterial)
					r.Delete("/{material_id}", materialHandler.DeleteMaterial)
				})

				r.Post("/broadcast", notificationHandler.Broadcast)
				r.Get("/leaderboard/{slug}", adminHandler.GetLeaderboard)
				r.Get("/login-logs", adminHandler.ListLoginLogs)
			})
		})
	})

	// Health Check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sqlDB, err := db.DB()
		if err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not get DB object", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// 5. Start Server
	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}
