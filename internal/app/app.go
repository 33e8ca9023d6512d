package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	appHTTP "vibe-coding-tools/internal/controller/http"
	"vibe-coding-tools/internal/repo/persistent"
	"vibe-coding-tools/internal/usecase"
	"vibe-coding-tools/pkg/config"
	"vibe-coding-tools/pkg/logger"
	"vibe-coding-tools/pkg/middleware"
	"vibe-coding-tools/pkg/queue"
	"vibe-coding-tools/pkg/session"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Run wires the service and blocks until shutdown. db, redisClient, and
// queueClient may each be nil: repositories then report storage as
// unavailable and read handlers degrade instead of crashing the page.
func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, redisClient *redis.Client, queueClient *queue.Client) {
	sessionService := session.NewService(cfg.SessionSecret)

	// Repositories
	userRepo := persistent.NewUserRepository(db)
	toolRepo := persistent.NewToolRepository(db)
	likeRepo := persistent.NewLikeRepository(db)

	// Use cases
	sessionUseCase := usecase.NewSessionUseCase(userRepo, sessionService, log)
	toolUseCase := usecase.NewToolUseCase(toolRepo, userRepo, likeRepo, redisClient, queueClient, log)

	// HTTP handlers
	sessionHandler := appHTTP.NewSessionHandler(sessionUseCase, log)
	toolHandler := appHTTP.NewToolHandler(toolUseCase, log)

	// Setup router
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin, "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	api.Use(middleware.SessionMiddleware(sessionService))
	{
		api.GET("/user/session", sessionHandler.GetSession)

		api.GET("/tools", toolHandler.GetTools)
		api.POST("/tools", toolHandler.CreateTool)
		api.POST("/tools/:toolId/like", toolHandler.ToggleLike)
		api.GET("/tools/likes", toolHandler.GetLikes)
		api.GET("/tools/likes/:userId", toolHandler.GetLikesByUser)
		api.POST("/tools/reset-likes", toolHandler.ResetLikes)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	go func() {
		log.Info("Vibe tools service starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down vibe tools service...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if db != nil {
		if sqlDB, err := db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				log.Error("Error closing database: %v", err)
			}
		}
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	if queueClient != nil {
		queueClient.Close()
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("Vibe tools service exited")
}
