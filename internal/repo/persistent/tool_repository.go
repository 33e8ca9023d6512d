package persistent

import (
	"errors"
	"fmt"

	"vibe-coding-tools/internal/entity"
	"vibe-coding-tools/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ToolRepository interface {
	Create(tool *entity.Tool) error
	GetByID(id string) (*entity.Tool, error)
	GetByName(name string) (*entity.Tool, error)
	List() ([]*entity.Tool, error)
}

type toolRepository struct {
	db *gorm.DB
}

func NewToolRepository(db *gorm.DB) ToolRepository {
	return &toolRepository{db: db}
}

func (r *toolRepository) Create(tool *entity.Tool) error {
	if r.db == nil {
		return entity.ErrStorageUnavailable
	}

	toolModel := ToToolModel(tool)
	if toolModel.ID == "" {
		toolModel.ID = uuid.New().String()
	}
	if err := r.db.Create(toolModel).Error; err != nil {
		return fmt.Errorf("%w: %v", entity.ErrStorageUnavailable, err)
	}
	*tool = *ToToolEntity(toolModel)
	return nil
}

func (r *toolRepository) GetByID(id string) (*entity.Tool, error) {
	if r.db == nil {
		return nil, entity.ErrStorageUnavailable
	}

	var toolModel model.ToolModel
	if err := r.db.Where("id = ?", id).First(&toolModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", entity.ErrStorageUnavailable, err)
	}
	return ToToolEntity(&toolModel), nil
}

func (r *toolRepository) GetByName(name string) (*entity.Tool, error) {
	if r.db == nil {
		return nil, entity.ErrStorageUnavailable
	}

	var toolModel model.ToolModel
	if err := r.db.Where("name = ?", name).First(&toolModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", entity.ErrStorageUnavailable, err)
	}
	return ToToolEntity(&toolModel), nil
}

func (r *toolRepository) List() ([]*entity.Tool, error) {
	if r.db == nil {
		return nil, entity.ErrStorageUnavailable
	}

	var toolModels []model.ToolModel
	if err := r.db.Find(&toolModels).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrStorageUnavailable, err)
	}

	tools := make([]*entity.Tool, len(toolModels))
	for i := range toolModels {
		tools[i] = ToToolEntity(&toolModels[i])
	}
	return tools, nil
}
