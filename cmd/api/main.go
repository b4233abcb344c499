package main

import (
	"funfans/internal/app"
	"funfans/pkg/cache"
	"funfans/pkg/config"
	"funfans/pkg/database"
	"funfans/pkg/logger"
	"funfans/pkg/queue"
	"funfans/pkg/storage"
)

// @title           funfans API
// @version         1.0
// @description     Credits, entitlement and content marketplace backend

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if cfg.JWTSecret == "your-secret-key-change-in-production" || cfg.JWTSecret == "" {
		panic("JWT_SECRET must be set in environment variables")
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v", err)
		panic(err)
	}

	storageClient, err := storage.NewClient(cfg)
	if err != nil {
		log.Error("Failed to create S3 client: %v", err)
		panic(err)
	}

	// Sale notifications degrade gracefully when the broker is down.
	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Warn("RabbitMQ unavailable, sale events disabled: %v", err)
		queueClient = nil
	}

	app.Run(cfg, log, db, redisClient, queueClient, storageClient)
}
