package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/careercanvas/api/adapters/event"
	httpAdapter "github.com/careercanvas/api/adapters/http"
	"github.com/careercanvas/api/adapters/media_storage"
	"github.com/careercanvas/api/adapters/persistence"
	"github.com/careercanvas/api/internal/application/service"
	authUC "github.com/careercanvas/api/internal/application/usecase/auth"
	portfolioUC "github.com/careercanvas/api/internal/application/usecase/portfolio"
	"github.com/careercanvas/api/internal/config"
	"github.com/careercanvas/api/pkg/auth"
	"github.com/careercanvas/api/pkg/logger"
	"github.com/careercanvas/api/pkg/tracing"
)

func main() {

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	if cfg.Jaeger.OTLPEndpoint != "" {
		tp, err := tracing.NewTracerProvider(cfg, appLogger, "careercanvas-api")
		if err != nil {
			appLogger.Fatal("cannot init tracer", err)
		}
		defer tp.Shutdown(context.Background())
	}

	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Postgres", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Redis", err)
	}
	defer redisClient.Close()

	kafkaClient, err := event.NewKafkaProducerClient(cfg)
	if err != nil {
		appLogger.Fatal("cannot init Kafka", err)
	}
	defer kafkaClient.Close()

	// Repositories & services
	portfolioRepo := persistence.NewPostgresPortfolioRepo(dbPool, appLogger)
	publicViewCache := persistence.NewRedisPortfolioCache(redisClient, cfg.Redis.PublicViewTTL)
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)

	var uploader service.Uploader
	if cfg.Cloudinary.CloudName != "" {
		uploader, err = media_storage.NewCloudinaryAdapter(cfg)
		if err != nil {
			appLogger.Fatal("failed to initialize uploader", err)
		}
	} else {
		appLogger.Warn("Cloudinary not configured, profile picture upload disabled")
	}

	// Use cases
	registerUseCase := authUC.NewRegisterUseCase(portfolioRepo, jwtSvc, kafkaClient, appLogger)
	loginUseCase := authUC.NewLoginUseCase(portfolioRepo, jwtSvc, appLogger)
	portfolioUseCase := portfolioUC.NewPortfolioUseCase(portfolioRepo, publicViewCache, kafkaClient, uploader, appLogger)

	// HTTP handlers & middleware
	authHandler := httpAdapter.NewAuthHandler(registerUseCase, loginUseCase, appLogger)
	portfolioHandler := httpAdapter.NewPortfolioHandler(portfolioUseCase, appLogger)
	authMiddleware := httpAdapter.AuthMiddleware(jwtSvc, appLogger)
	errorMiddleware := httpAdapter.ErrorMiddleware(appLogger)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	router.Use(errorMiddleware)

	httpAdapter.RegisterRoutes(router, authHandler, portfolioHandler, authMiddleware)

	appLogger.Info("CareerCanvas API running on port " + cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		appLogger.Fatal("cannot run server", err)
	}
}
