package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"resumebuilder/internal/api"
	"resumebuilder/internal/config"
	"resumebuilder/internal/database"
	"resumebuilder/internal/document"
	"resumebuilder/internal/pdf"
	"resumebuilder/internal/repository"
	"resumebuilder/internal/resume"
	"resumebuilder/internal/storage"
)

func main() {
	cfg := config.MustLoad()
	gin.SetMode(cfg.API.GinMode)

	logger := cfg.Log.NewLogger(os.Stdout)
	slog.SetDefault(logger)

	db, err := database.InitDatabase(cfg.Database)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}
	logger.Info("database ready",
		slog.String("host", cfg.Database.Host),
		slog.Int("port", cfg.Database.Port),
		slog.String("db", cfg.Database.Name),
	)

	ctx := context.Background()
	storageClient, err := storage.NewClient(ctx, cfg.MinIO)
	if err != nil {
		log.Fatalf("init storage client: %v", err)
	}

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr()})
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Error("close redis client failed", slog.Any("error", err))
		}
	}()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("ping redis: %v", err)
	}

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{Addr: cfg.Redis.Addr()})
	defer func() {
		if err := asynqClient.Close(); err != nil {
			logger.Error("close asynq client failed", slog.Any("error", err))
		}
	}()

	svc := resume.NewService(repository.New(db))
	exporter := document.NewExporter(svc, pdf.NewRodRenderer(cfg.Renderer), logger)

	router := api.NewRouter(logger)
	api.RegisterRoutes(router, api.Deps{
		Service:     svc,
		Documents:   exporter,
		Exports:     repository.NewExportRepository(db),
		Queue:       asynqClient,
		RateCounter: redisClient,
		Subscriber:  redisClient,
		Storage:     storageClient,
		Export:      cfg.Export,
		MaxRetry:    cfg.Worker.MaxRetry,
		Logger:      logger,
	})

	address := fmt.Sprintf(":%d", cfg.API.Port)
	logger.Info("api listening", slog.String("addr", address))
	if err := router.Run(address); err != nil {
		log.Fatalf("failed to start api server: %v", err)
	}
}
