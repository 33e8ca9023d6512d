package main

import (
	"vibe-coding-tools/internal/app"
	"vibe-coding-tools/pkg/cache"
	"vibe-coding-tools/pkg/config"
	"vibe-coding-tools/pkg/database"
	"vibe-coding-tools/pkg/logger"
	"vibe-coding-tools/pkg/queue"

	_ "vibe-coding-tools/docs"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.ReleaseMode)
}

// @title           Vibe Coding Tools API
// @version         1.0
// @description     Like-toggle backend for the Vibe Coding Tools landing page

// @host      localhost:8080
// @BasePath  /api

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New()

	// The page must keep rendering without a database: read endpoints
	// degrade to static defaults, write endpoints return 503.
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database, continuing in degraded mode: %v", err)
		db = nil
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis, continuing without cache: %v", err)
		redisClient = nil
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Error("Failed to connect to RabbitMQ, continuing without events: %v", err)
		queueClient = nil
	}

	app.Run(cfg, log, db, redisClient, queueClient)
}
