package http

import (
	"errors"
	"net/http"

	"vibe-coding-tools/internal/entity"
	"vibe-coding-tools/internal/usecase"
	"vibe-coding-tools/pkg/logger"

	"github.com/gin-gonic/gin"
)

type ToolHandler struct {
	toolUseCase usecase.ToolUseCase
	logger      *logger.Logger
}

func NewToolHandler(toolUseCase usecase.ToolUseCase, logger *logger.Logger) *ToolHandler {
	return &ToolHandler{
		toolUseCase: toolUseCase,
		logger:      logger,
	}
}

type createToolRequest struct {
	Name string `json:"name" binding:"required"`
}

type toggleLikeRequest struct {
	UserID string `json:"user_id"`
}

// GetTools godoc
// @Summary      List the tool catalog
// @Description  Returns every tool with its like count; serves the static default catalog with zeroed counts if storage is down
// @Tags         tools
// @Produce      json
// @Success      200  {array}  entity.Tool
// @Router       /tools [get]
func (h *ToolHandler) GetTools(c *gin.Context) {
	tools, err := h.toolUseCase.ListTools()
	if err != nil {
		if errors.Is(err, entity.ErrStorageUnavailable) {
			// Degraded mode: keep the page rendering on the default catalog.
			h.logger.Error("Serving fallback catalog, storage unavailable: %v", err)
			c.JSON(http.StatusOK, entity.FallbackTools())
			return
		}
		h.logger.Error("Failed to list tools: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch tools"})
		return
	}

	c.JSON(http.StatusOK, tools)
}

// CreateTool godoc
// @Summary      Seed a tool by name
// @Description  Idempotent create: an existing name returns the stored tool unchanged
// @Tags         tools
// @Accept       json
// @Produce      json
// @Param        tool body createToolRequest true "Tool name"
// @Success      200  {object}  entity.Tool
// @Success      201  {object}  entity.Tool
// @Failure      400  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /tools [post]
func (h *ToolHandler) CreateTool(c *gin.Context) {
	var req createToolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	tool, created, err := h.toolUseCase.EnsureTool(req.Name)
	if err != nil {
		h.respondError(c, err, "Failed to create tool")
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, tool)
}

// ToggleLike godoc
// @Summary      Toggle a like for a tool
// @Description  Flips the session user's like state and atomically adjusts the tool's counter
// @Tags         tools
// @Accept       json
// @Produce      json
// @Param        toolId path string true "Tool ID"
// @Param        body body toggleLikeRequest false "Explicit user id (session cookie takes precedence)"
// @Success      200  {object}  entity.ToggleResult
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /tools/{toolId}/like [post]
func (h *ToolHandler) ToggleLike(c *gin.Context) {
	toolID := c.Param("toolId")

	userID := c.GetString("user_id")
	if userID == "" {
		var req toggleLikeRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			userID = req.UserID
		}
	}
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session required"})
		return
	}

	result, err := h.toolUseCase.ToggleLike(userID, toolID)
	if err != nil {
		h.respondError(c, err, "Failed to toggle like")
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetLikes godoc
// @Summary      Get the session user's like vector
// @Description  Reports for every tool whether the session user likes it; empty vector when no session or storage is down
// @Tags         tools
// @Produce      json
// @Success      200  {array}  entity.ToolLike
// @Router       /tools/likes [get]
func (h *ToolHandler) GetLikes(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusOK, []entity.ToolLike{})
		return
	}

	h.respondLikeVector(c, userID)
}

// GetLikesByUser godoc
// @Summary      Get a user's like vector
// @Tags         tools
// @Produce      json
// @Param        userId path string true "User ID"
// @Success      200  {array}  entity.ToolLike
// @Router       /tools/likes/{userId} [get]
func (h *ToolHandler) GetLikesByUser(c *gin.Context) {
	h.respondLikeVector(c, c.Param("userId"))
}

func (h *ToolHandler) respondLikeVector(c *gin.Context, userID string) {
	vector, err := h.toolUseCase.GetLikeVector(userID)
	if err != nil {
		if errors.Is(err, entity.ErrStorageUnavailable) {
			// "No likes known" keeps the page usable; log the real failure.
			h.logger.Error("Serving empty like vector, storage unavailable: %v", err)
			c.JSON(http.StatusOK, []entity.ToolLike{})
			return
		}
		h.respondError(c, err, "Failed to fetch like vector")
		return
	}

	c.JSON(http.StatusOK, vector)
}

// ResetLikes godoc
// @Summary      Reset every like
// @Description  Administrative and irreversible: zeroes every counter and clears the ledger
// @Tags         tools
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /tools/reset-likes [post]
func (h *ToolHandler) ResetLikes(c *gin.Context) {
	if err := h.toolUseCase.ResetAllLikes(); err != nil {
		h.respondError(c, err, "Failed to reset likes")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "all like counts reset"})
}

func (h *ToolHandler) respondError(c *gin.Context, err error, logMsg string) {
	switch {
	case errors.Is(err, entity.ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid argument"})
	case errors.Is(err, entity.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, entity.ErrStorageUnavailable):
		h.logger.Error("%s, storage unavailable: %v", logMsg, err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service unavailable"})
	default:
		h.logger.Error("%s: %v", logMsg, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
