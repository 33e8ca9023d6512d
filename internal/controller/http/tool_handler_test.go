package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"vibe-coding-tools/internal/entity"
	"vibe-coding-tools/internal/usecase"
	"vibe-coding-tools/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockToolUseCase is a mock implementation of ToolUseCase
type MockToolUseCase struct {
	mock.Mock
}

func (m *MockToolUseCase) EnsureTool(name string) (*entity.Tool, bool, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*entity.Tool), args.Bool(1), args.Error(2)
}

func (m *MockToolUseCase) ListTools() ([]*entity.Tool, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Tool), args.Error(1)
}

func (m *MockToolUseCase) ToggleLike(userID, toolID string) (*entity.ToggleResult, error) {
	args := m.Called(userID, toolID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ToggleResult), args.Error(1)
}

func (m *MockToolUseCase) GetLikeVector(userID string) ([]entity.ToolLike, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ToolLike), args.Error(1)
}

func (m *MockToolUseCase) ResetAllLikes() error {
	args := m.Called()
	return args.Error(0)
}

var _ usecase.ToolUseCase = (*MockToolUseCase)(nil)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestGetTools_Success(t *testing.T) {
	mockUseCase := new(MockToolUseCase)
	handler := NewToolHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/tools", handler.GetTools)

	mockUseCase.On("ListTools").Return([]*entity.Tool{
		{ID: "tool-1", Name: "ChatGPT", LikeCount: 3},
		{ID: "tool-2", Name: "Claude", LikeCount: 5},
	}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/tools", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response []map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Len(t, response, 2)
	assert.Equal(t, "ChatGPT", response[0]["name"])
	assert.Equal(t, float64(3), response[0]["like_count"])

	mockUseCase.AssertExpectations(t)
}

func TestGetTools_StorageDown_ServesFallback(t *testing.T) {
	mockUseCase := new(MockToolUseCase)
	handler := NewToolHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/tools", handler.GetTools)

	mockUseCase.On("ListTools").Return(nil, entity.ErrStorageUnavailable)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/tools", nil)

	router.ServeHTTP(w, req)

	// Degraded mode keeps the page rendering with the default catalog.
	assert.Equal(t, http.StatusOK, w.Code)
	var response []map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Len(t, response, len(entity.DefaultToolNames))
	assert.Equal(t, "ChatGPT", response[0]["name"])
	assert.Equal(t, float64(0), response[0]["like_count"])

	mockUseCase.AssertExpectations(t)
}

func TestCreateTool_Created(t *testing.T) {
	mockUseCase := new(MockToolUseCase)
	handler := NewToolHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/tools", handler.CreateTool)

	mockUseCase.On("EnsureTool", "Cursor").Return(&entity.Tool{ID: "tool-3", Name: "Cursor"}, true, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/tools", bytes.NewBufferString(`{"name":"Cursor"}`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestCreateTool_AlreadyExists(t *testing.T) {
	mockUseCase := new(MockToolUseCase)
	handler := NewToolHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/tools", handler.CreateTool)

	mockUseCase.On("EnsureTool", "Cursor").Return(&entity.Tool{ID: "tool-3", Name: "Cursor", LikeCount: 7}, false, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/tools", bytes.NewBufferString(`{"name":"Cursor"}`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, float64(7), response["like_count"])

	mockUseCase.AssertExpectations(t)
}

func TestCreateTool_MissingName(t *testing.T) {
	mockUseCase := new(MockToolUseCase)
	handler := NewToolHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/tools", handler.CreateTool)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/tools", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestToggleLike_SessionUser(t *testing.T) {
	mockUseCase := new(MockToolUseCase)
	handler := NewToolHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/tools/:toolId/like", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		handler.ToggleLike(c)
	})

	mockUseCase.On("ToggleLike", "user-123", "tool-1").Return(&entity.ToggleResult{Liked: true, NewCount: 1}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/tools/tool-1/like", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, true, response["liked"])
	assert.Equal(t, float64(1), response["new_count"])

	mockUseCase.AssertExpectations(t)
}

func TestToggleLike_BodyUserID(t *testing.T) {
	mockUseCase := new(MockToolUseCase)
	handler := NewToolHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/tools/:toolId/like", handler.ToggleLike)

	mockUseCase.On("ToggleLike", "user-456", "tool-1").Return(&entity.ToggleResult{Liked: false, NewCount: 0}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/tools/tool-1/like", bytes.NewBufferString(`{"user_id":"user-456"}`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestToggleLike_NoSession(t *testing.T) {
	mockUseCase := new(MockToolUseCase)
	handler := NewToolHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/tools/:toolId/like", handler.ToggleLike)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/tools/tool-1/like", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "session required")
}

func TestToggleLike_ToolNotFound(t *testing.T) {
	mockUseCase := new(MockToolUseCase)
	handler := NewToolHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/tools/:toolId/like", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		handler.ToggleLike(c)
	})

	mockUseCase.On("ToggleLike", "user-123", "missing").Return(nil, entity.ErrNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/tools/missing/like", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestToggleLike_StorageDown(t *testing.T) {
	mockUseCase := new(MockToolUseCase)
	handler := NewToolHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/tools/:toolId/like", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		handler.ToggleLike(c)
	})

	mockUseCase.On("ToggleLike", "user-123", "tool-1").Return(nil, entity.ErrStorageUnavailable)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/tools/tool-1/like", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestGetLikes_NoSession(t *testing.T) {
	mockUseCase := new(MockToolUseCase)
	handler := NewToolHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/tools/likes", handler.GetLikes)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/tools/likes", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestGetLikes_SessionUser(t *testing.T) {
	mockUseCase := new(MockToolUseCase)
	handler := NewToolHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/tools/likes", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		handler.GetLikes(c)
	})

	mockUseCase.On("GetLikeVector", "user-123").Return([]entity.ToolLike{
		{ToolID: "tool-1", Liked: true},
		{ToolID: "tool-2", Liked: false},
	}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/tools/likes", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response []map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Len(t, response, 2)

	mockUseCase.AssertExpectations(t)
}

func TestGetLikesByUser_StorageDown_EmptyVector(t *testing.T) {
	mockUseCase := new(MockToolUseCase)
	handler := NewToolHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/tools/likes/:userId", handler.GetLikesByUser)

	mockUseCase.On("GetLikeVector", "user-123").Return(nil, entity.ErrStorageUnavailable)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/tools/likes/user-123", nil)

	router.ServeHTTP(w, req)

	// "No likes known" rather than failing the whole page
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())

	mockUseCase.AssertExpectations(t)
}

func TestResetLikes_Success(t *testing.T) {
	mockUseCase := new(MockToolUseCase)
	handler := NewToolHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/tools/reset-likes", handler.ResetLikes)

	mockUseCase.On("ResetAllLikes").Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/tools/reset-likes", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "reset")

	mockUseCase.AssertExpectations(t)
}

func TestResetLikes_StorageDown(t *testing.T) {
	mockUseCase := new(MockToolUseCase)
	handler := NewToolHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/tools/reset-likes", handler.ResetLikes)

	mockUseCase.On("ResetAllLikes").Return(entity.ErrStorageUnavailable)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/tools/reset-likes", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	mockUseCase.AssertExpectations(t)
}
