package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"vibe-coding-tools/internal/entity"
	"vibe-coding-tools/internal/repo/persistent"
	"vibe-coding-tools/pkg/logger"
	"vibe-coding-tools/pkg/queue"

	"github.com/redis/go-redis/v9"
)

const (
	catalogCacheKey = "tools:catalog"
	catalogCacheTTL = 30 * time.Second
)

type ToolUseCase interface {
	EnsureTool(name string) (*entity.Tool, bool, error)
	ListTools() ([]*entity.Tool, error)
	ToggleLike(userID, toolID string) (*entity.ToggleResult, error)
	GetLikeVector(userID string) ([]entity.ToolLike, error)
	ResetAllLikes() error
}

type toolUseCase struct {
	toolRepo    persistent.ToolRepository
	userRepo    persistent.UserRepository
	likeRepo    persistent.LikeRepository
	redisClient *redis.Client
	queueClient *queue.Client
	logger      *logger.Logger
}

// NewToolUseCase wires the catalog, ledger, and counter logic. redisClient
// and queueClient may be nil; the cache and event publishing are then
// skipped and every read comes from the database.
func NewToolUseCase(
	toolRepo persistent.ToolRepository,
	userRepo persistent.UserRepository,
	likeRepo persistent.LikeRepository,
	redisClient *redis.Client,
	queueClient *queue.Client,
	logger *logger.Logger,
) ToolUseCase {
	return &toolUseCase{
		toolRepo:    toolRepo,
		userRepo:    userRepo,
		likeRepo:    likeRepo,
		redisClient: redisClient,
		queueClient: queueClient,
		logger:      logger,
	}
}

// EnsureTool seeds a tool by name. First write wins: an existing tool is
// returned unchanged, count preserved. The second return value reports
// whether a row was created.
func (uc *toolUseCase) EnsureTool(name string) (*entity.Tool, bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, false, entity.ErrInvalidArgument
	}

	existing, err := uc.toolRepo.GetByName(name)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, entity.ErrNotFound) {
		return nil, false, err
	}

	tool := &entity.Tool{Name: name}
	if err := uc.toolRepo.Create(tool); err != nil {
		uc.logger.Error("Failed to create tool %q: %v", name, err)
		return nil, false, err
	}

	uc.invalidateCatalog()
	return tool, true, nil
}

func (uc *toolUseCase) ListTools() ([]*entity.Tool, error) {
	if uc.redisClient != nil {
		ctx := context.Background()
		if cached, err := uc.redisClient.Get(ctx, catalogCacheKey).Result(); err == nil {
			var tools []*entity.Tool
			if err := json.Unmarshal([]byte(cached), &tools); err == nil {
				return tools, nil
			}
		}
	}

	tools, err := uc.toolRepo.List()
	if err != nil {
		return nil, err
	}

	if uc.redisClient != nil {
		if payload, err := json.Marshal(tools); err == nil {
			ctx := context.Background()
			uc.redisClient.Set(ctx, catalogCacheKey, payload, catalogCacheTTL)
		}
	}

	return tools, nil
}

// ToggleLike validates both identifiers, then runs the atomic ledger +
// counter transaction. The returned state and count come from the committed
// transaction, never from the cache.
func (uc *toolUseCase) ToggleLike(userID, toolID string) (*entity.ToggleResult, error) {
	if userID == "" || toolID == "" {
		return nil, entity.ErrInvalidArgument
	}

	if _, err := uc.userRepo.GetByID(userID); err != nil {
		return nil, err
	}
	if _, err := uc.toolRepo.GetByID(toolID); err != nil {
		return nil, err
	}

	result, err := uc.likeRepo.Toggle(userID, toolID)
	if err != nil {
		uc.logger.Error("Failed to toggle like for user=%s tool=%s: %v", userID, toolID, err)
		return nil, err
	}

	uc.invalidateCatalog()

	if uc.queueClient != nil {
		event := queue.LikeEvent{
			UserID:    userID,
			ToolID:    toolID,
			Liked:     result.Liked,
			LikeCount: result.NewCount,
		}
		go func() {
			if err := uc.queueClient.PublishLikeEvent(event); err != nil {
				uc.logger.Error("[EVENT QUEUE] Failed to publish like event: %v", err)
			}
		}()
	}

	return result, nil
}

// GetLikeVector reports, for every tool, whether the user currently likes
// it. A missing ledger row reads as false.
func (uc *toolUseCase) GetLikeVector(userID string) ([]entity.ToolLike, error) {
	if userID == "" {
		return nil, entity.ErrInvalidArgument
	}

	tools, err := uc.toolRepo.List()
	if err != nil {
		return nil, err
	}

	likes, err := uc.likeRepo.GetByUser(userID)
	if err != nil {
		return nil, err
	}

	likedByTool := make(map[string]bool, len(likes))
	for _, like := range likes {
		likedByTool[like.ToolID] = like.Liked
	}

	vector := make([]entity.ToolLike, len(tools))
	for i, tool := range tools {
		vector[i] = entity.ToolLike{
			ToolID: tool.ID,
			Liked:  likedByTool[tool.ID],
		}
	}
	return vector, nil
}

func (uc *toolUseCase) ResetAllLikes() error {
	if err := uc.likeRepo.ResetAll(); err != nil {
		uc.logger.Error("Failed to reset likes: %v", err)
		return err
	}
	uc.invalidateCatalog()
	return nil
}

func (uc *toolUseCase) invalidateCatalog() {
	if uc.redisClient == nil {
		return
	}
	ctx := context.Background()
	if err := uc.redisClient.Del(ctx, catalogCacheKey).Err(); err != nil {
		uc.logger.Warn("Failed to invalidate catalog cache: %v", err)
	}
}
