package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/bimbelhub/platform/internal/pkg/config"
	"github.com/bimbelhub/platform/internal/pkg/database"
	"github.com/bimbelhub/platform/internal/pkg/health"
	"github.com/bimbelhub/platform/internal/pkg/logger"
	"github.com/bimbelhub/platform/internal/pkg/middleware"
	"github.com/bimbelhub/platform/internal/pkg/server"
	"github.com/bimbelhub/platform/services/auth/gateway"
	"github.com/bimbelhub/platform/services/auth/handler"
	httpHandler "github.com/bimbelhub/platform/services/auth/handler/http"
	"github.com/bimbelhub/platform/services/auth/repository"
	"github.com/bimbelhub/platform/services/auth/usecase"
)

func main() {
	appName := "auth-service"
	configPath := config.GetEnv("CONFIG_PATH", "config/auth.env")
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepo(postgresClient.GetDB())
	otpRepo := repository.NewOTPRepo(configs, redisClient)
	flowRepo := repository.NewFlowStateRepo(redisClient)
	limiter := repository.NewRateLimiter(configs, redisClient)

	// Initialize gateway
	notifyGW := gateway.NewEmailGW(configs)

	// Initialize usecase
	authUC := usecase.NewAuthUC(configs, userRepo, otpRepo, flowRepo, limiter, notifyGW)

	// Initialize handlers
	authHandler := httpHandler.NewAuthHandler(authUC)
	Handler := handler.NewHandler(authHandler, configs)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(logger.EchoMiddleware(zapLogger))

	// Register health endpoints
	healthService := health.NewHealthService(appName, zapLogger)
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	healthService.RegisterHealthEndpoints(e)

	// Register service routes
	Handler.RegisterRoutes(e)

	// Start server with graceful shutdown
	srv := server.NewGracefulServer(e, zapLogger, configs.Server)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server error",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
}
