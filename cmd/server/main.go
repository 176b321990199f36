package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"

	"github.com/flextrackapp/flextrack-backend/internal/config"
	"github.com/flextrackapp/flextrack-backend/internal/database"
	"github.com/flextrackapp/flextrack-backend/internal/handlers"
	"github.com/flextrackapp/flextrack-backend/internal/logging"
	"github.com/flextrackapp/flextrack-backend/internal/middleware"
	"github.com/flextrackapp/flextrack-backend/internal/repository"
	"github.com/flextrackapp/flextrack-backend/internal/routes"
	"github.com/flextrackapp/flextrack-backend/internal/services"
	"github.com/flextrackapp/flextrack-backend/internal/session"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	// Structured logging (JSON to stdout)
	logging.Setup()

	cfg := config.Load()

	if cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET environment variable is required")
		os.Exit(1)
	}
	if cfg.DBPassword == "" {
		slog.Error("DB_PASSWORD environment variable is required")
		os.Exit(1)
	}

	// Database
	db, err := database.Connect(cfg)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	if err := database.Migrate(db); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	// Database log handler (ERROR+ async batch)
	dbLogHandler := logging.NewDBHandler(db)
	slog.SetDefault(slog.New(logging.NewMultiHandler(
		slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		dbLogHandler,
	)))

	// Log and session cleanup (30-day log retention, expired session purge)
	cleanupDone := make(chan struct{})
	logging.StartCleanup(db, cleanupDone)

	// Repositories
	accountRepo := repository.NewAccountRepository(db)
	exerciseRepo := repository.NewExerciseRepository(db)
	planRepo := repository.NewPlanRepository(db)
	challengeRepo := repository.NewChallengeRepository(db)
	postRepo := repository.NewPostRepository(db)

	// Sessions
	sessions := session.NewStore(db, cfg.SessionTTL)

	// Services
	authService := services.NewAuthService(accountRepo, sessions, cfg)
	friendService := services.NewFriendService(accountRepo)
	profileService := services.NewProfileService(accountRepo)
	exerciseService := services.NewExerciseService(exerciseRepo)
	workoutService := services.NewWorkoutService(planRepo, exerciseRepo)
	challengeService := services.NewChallengeService(challengeRepo, exerciseRepo, accountRepo)
	postService := services.NewPostService(postRepo, planRepo, challengeRepo, accountRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, cfg)
	friendHandler := handlers.NewFriendHandler(friendService)
	exerciseHandler := handlers.NewExerciseHandler(exerciseService)
	workoutHandler := handlers.NewWorkoutHandler(workoutService)
	profileHandler := handlers.NewProfileHandler(profileService, friendService)
	postHandler := handlers.NewPostHandler(postService)
	challengeHandler := handlers.NewChallengeHandler(challengeService)
	healthHandler := handlers.NewHealthHandler(db)

	// Sentry error tracking
	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              dsn,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      os.Getenv("APP_ENV"),
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit:    4 * 1024 * 1024,
		ErrorHandler: customErrorHandler,
	})

	// Sentry middleware
	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		return c.Next()
	})
	app.Use(middleware.Identity(sessions, cfg))

	// Routes
	routes.Setup(app, authHandler, friendHandler, exerciseHandler, workoutHandler, profileHandler, postHandler, challengeHandler, healthHandler)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	close(cleanupDone)
	dbLogHandler.Stop()
	sentry.Flush(2 * time.Second)

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	// Close database connections
	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			slog.Error("database close error", "error", err)
		}
	}

	slog.Info("server stopped")
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Only expose error details for client errors (4xx), not server errors (5xx)
	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Internal server error"
	}

	return c.Status(code).JSON(fiber.Map{"error": message})
}
