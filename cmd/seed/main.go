package main

import (
	"vibe-coding-tools/internal/entity"
	"vibe-coding-tools/internal/repo/persistent"
	"vibe-coding-tools/internal/usecase"
	"vibe-coding-tools/pkg/config"
	"vibe-coding-tools/pkg/database"
	"vibe-coding-tools/pkg/logger"
)

// Seeds the default tool catalog. Safe to run repeatedly: existing tools are
// returned unchanged and their counts preserved.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	toolRepo := persistent.NewToolRepository(db)
	userRepo := persistent.NewUserRepository(db)
	likeRepo := persistent.NewLikeRepository(db)
	toolUseCase := usecase.NewToolUseCase(toolRepo, userRepo, likeRepo, nil, nil, log)

	for _, name := range entity.DefaultToolNames {
		tool, created, err := toolUseCase.EnsureTool(name)
		if err != nil {
			log.Error("Failed to seed tool %s: %v", name, err)
			continue
		}
		if created {
			log.Info("Created tool: %s (%s)", tool.Name, tool.ID)
		} else {
			log.Info("Tool %s already exists with %d likes, skipping", tool.Name, tool.LikeCount)
		}
	}

	log.Info("Catalog seeded successfully!")
}
