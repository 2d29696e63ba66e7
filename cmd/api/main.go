package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"llm-eval/internal/config"
	"llm-eval/internal/db"
	apihttp "llm-eval/internal/http"
	"llm-eval/internal/llm"
	"llm-eval/internal/repository"
	"llm-eval/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	mongoClient, err := db.Connect(ctx, cfg)
	if err != nil {
		logger.Fatal("mongo connect", zap.Error(err))
	}
	defer db.Disconnect(mongoClient)

	evaluationRepo := repository.NewMongoEvaluationRepository(mongoClient, cfg.DatabaseName, cfg.CollectionName)

	var submitLimiter service.SubmitRateLimiter
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			submitLimiter = service.NewRedisSubmitRateLimiter(
				redisClient,
				time.Duration(cfg.SubmitRateWindowMinutes)*time.Minute,
				cfg.SubmitRateMax,
			)
		}
		cancel()
	}

	llmClient := llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, logger)
	evaluationSvc := service.NewEvaluationService(logger, evaluationRepo, submitLimiter)
	generationSvc := service.NewGenerationService(logger, llmClient)

	evaluationHandler := apihttp.NewEvaluationHandler(logger, evaluationSvc)
	generationHandler := apihttp.NewGenerationHandler(logger, generationSvc)
	metaHandler := apihttp.NewMetaHandler(logger, evaluationRepo, cfg.AppName, cfg.AppVersion)
	router := apihttp.NewRouter(logger, evaluationHandler, generationHandler, metaHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
