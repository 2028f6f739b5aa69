// Package main is the entry point for the BudgetWise API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/budgetwise/backend/config"
	"github.com/budgetwise/backend/internal/application/usecase/auth"
	"github.com/budgetwise/backend/internal/application/usecase/budget"
	"github.com/budgetwise/backend/internal/application/usecase/goal"
	"github.com/budgetwise/backend/internal/application/usecase/insight"
	"github.com/budgetwise/backend/internal/application/usecase/stats"
	"github.com/budgetwise/backend/internal/application/usecase/transaction"
	"github.com/budgetwise/backend/internal/application/usecase/user"
	"github.com/budgetwise/backend/internal/infra/db"
	"github.com/budgetwise/backend/internal/infra/server/router"
	"github.com/budgetwise/backend/internal/integration/adapters"
	"github.com/budgetwise/backend/internal/integration/email"
	"github.com/budgetwise/backend/internal/integration/email/templates"
	"github.com/budgetwise/backend/internal/integration/entrypoint/controller"
	"github.com/budgetwise/backend/internal/integration/entrypoint/middleware"
	"github.com/budgetwise/backend/internal/integration/persistence"
	"github.com/budgetwise/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting BudgetWise API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	var database *db.Database
	var dbHealthChecker func() bool

	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Warn("Database connection failed, running without database",
			"error", err,
		)
		database = nil
		dbHealthChecker = func() bool { return false }
	} else {
		// Run database migrations
		if err := database.AutoMigrate(
			&model.UserModel{},
			&model.RefreshTokenModel{},
			&model.PasswordResetTokenModel{},
			&model.TransactionModel{},
			&model.BudgetModel{},
			&model.GoalModel{},
			&model.EmailQueueModel{},
			&model.InsightModel{},
		); err != nil {
			slog.Error("Failed to run database migrations", "error", err)
			os.Exit(1)
		}
		slog.Info("Database migrations completed successfully")

		dbHealthChecker = database.HealthCheck
		defer func() {
			if err := database.Close(); err != nil {
				slog.Error("Failed to close database connection", "error", err)
			}
		}()
	}

	// Initialize Redis for the login rate limiter
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 2*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		slog.Warn("Redis connection failed, login rate limiting disabled", "error", err)
		redisClient = nil
	}
	pingCancel()

	// Create health controller with database health checker
	healthController := controller.NewHealthController(dbHealthChecker)

	// Create controllers and middleware (only if database is available)
	var authController *controller.AuthController
	var userController *controller.UserController
	var transactionController *controller.TransactionController
	var budgetController *controller.BudgetController
	var goalController *controller.GoalController
	var statsController *controller.StatsController
	var insightController *controller.InsightController
	var loginRateLimiter *middleware.RateLimiter
	var authMiddleware *middleware.AuthMiddleware
	var adminMiddleware *middleware.AdminMiddleware

	// Email worker lifecycle
	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()

	if database != nil {
		// Create repositories
		userRepo := persistence.NewUserRepository(database.DB())
		tokenRepo := persistence.NewTokenRepository(database.DB())
		transactionRepo := persistence.NewTransactionRepository(database.DB())
		budgetRepo := persistence.NewBudgetRepository(database.DB())
		goalRepo := persistence.NewGoalRepository(database.DB())
		emailQueueRepo := persistence.NewEmailQueueRepository(database.DB())
		insightRepo := persistence.NewInsightRepository(database.DB())

		// Create adapters/services
		passwordService := adapters.NewPasswordService()
		tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
		resetTokenService := adapters.NewPasswordResetTokenService(tokenRepo)
		geminiService := adapters.NewGeminiService(cfg.Insights.GeminiAPIKey, cfg.Insights.Model)
		emailService := email.NewService(emailQueueRepo)

		// Start the email delivery worker
		if cfg.Email.WorkerEnabled && cfg.Email.ResendAPIKey != "" {
			renderer, err := templates.NewRenderer()
			if err != nil {
				slog.Error("Failed to load email templates", "error", err)
				os.Exit(1)
			}
			sender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
			worker := email.NewWorker(emailQueueRepo, sender, renderer, email.WorkerConfig{
				PollInterval: cfg.Email.PollInterval,
				BatchSize:    cfg.Email.BatchSize,
			})
			go worker.Start(workerCtx)
			slog.Info("Email worker started",
				"poll_interval", cfg.Email.PollInterval.String(),
				"batch_size", cfg.Email.BatchSize,
			)
		} else {
			slog.Warn("Email worker disabled, queued emails will not be delivered")
		}

		// Create auth use cases
		registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
		loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
		refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
		logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
		forgotPasswordUseCase := auth.NewForgotPasswordUseCase(userRepo, resetTokenService, emailService, cfg.Email.AppBaseURL)
		resetPasswordUseCase := auth.NewResetPasswordUseCase(userRepo, passwordService, resetTokenService, tokenService)

		// Create user use cases
		getProfileUseCase := user.NewGetProfileUseCase(userRepo)
		updateProfileUseCase := user.NewUpdateProfileUseCase(userRepo)
		listUsersUseCase := user.NewListUsersUseCase(userRepo)
		setUserStatusUseCase := user.NewSetUserStatusUseCase(userRepo, tokenService)

		// Create transaction use cases
		createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo)
		listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
		getTransactionUseCase := transaction.NewGetTransactionUseCase(transactionRepo)
		updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo)
		deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)

		// Create budget use cases
		createBudgetUseCase := budget.NewCreateBudgetUseCase(budgetRepo)
		listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo)
		updateBudgetUseCase := budget.NewUpdateBudgetUseCase(budgetRepo)
		deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(budgetRepo)

		// Create goal use cases
		createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo)
		listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo)
		updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo)
		deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo)
		contributeToGoalUseCase := goal.NewContributeToGoalUseCase(goalRepo, userRepo, emailService)

		// Create stats use cases
		transactionStatsUseCase := stats.NewGetTransactionStatsUseCase(transactionRepo)
		budgetStatsUseCase := stats.NewGetBudgetStatsUseCase(budgetRepo, transactionRepo)
		goalStatsUseCase := stats.NewGetGoalStatsUseCase(goalRepo)
		monthlySeriesUseCase := stats.NewGetMonthlySeriesUseCase(transactionRepo)

		// Create insight use cases
		generateInsightUseCase := insight.NewGenerateInsightUseCase(insightRepo, transactionRepo, userRepo, geminiService)
		listInsightsUseCase := insight.NewListInsightsUseCase(insightRepo)

		// Create controllers
		authController = controller.NewAuthController(
			registerUseCase,
			loginUseCase,
			refreshTokenUseCase,
			logoutUseCase,
			forgotPasswordUseCase,
			resetPasswordUseCase,
		)
		userController = controller.NewUserController(
			getProfileUseCase,
			updateProfileUseCase,
			listUsersUseCase,
			setUserStatusUseCase,
		)
		transactionController = controller.NewTransactionController(
			createTransactionUseCase,
			listTransactionsUseCase,
			getTransactionUseCase,
			updateTransactionUseCase,
			deleteTransactionUseCase,
		)
		budgetController = controller.NewBudgetController(
			createBudgetUseCase,
			listBudgetsUseCase,
			updateBudgetUseCase,
			deleteBudgetUseCase,
		)
		goalController = controller.NewGoalController(
			createGoalUseCase,
			listGoalsUseCase,
			updateGoalUseCase,
			deleteGoalUseCase,
			contributeToGoalUseCase,
		)
		statsController = controller.NewStatsController(
			transactionStatsUseCase,
			budgetStatsUseCase,
			goalStatsUseCase,
			monthlySeriesUseCase,
		)
		insightController = controller.NewInsightController(
			generateInsightUseCase,
			listInsightsUseCase,
		)

		// Create middleware
		loginRateLimiter = middleware.NewRateLimiter(redisClient)
		authMiddleware = middleware.NewAuthMiddleware(tokenService)
		adminMiddleware = middleware.NewAdminMiddleware(userRepo)

		slog.Info("Application systems initialized successfully")
	} else {
		slog.Warn("API routes not initialized due to missing database connection")
	}

	// Setup router
	r := router.NewRouter(
		healthController,
		authController,
		userController,
		transactionController,
		budgetController,
		goalController,
		statsController,
		insightController,
		loginRateLimiter,
		authMiddleware,
		adminMiddleware,
	)
	engine := r.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")
	stopWorker()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
