package persistent

import (
	"errors"
	"fmt"

	"vibe-coding-tools/internal/entity"
	"vibe-coding-tools/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository wraps the shared gorm handle. A nil handle is tolerated:
// every method then reports ErrStorageUnavailable so callers can degrade.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *entity.User) error {
	if r.db == nil {
		return entity.ErrStorageUnavailable
	}

	userModel := ToUserModel(user)
	if userModel.ID == "" {
		userModel.ID = uuid.New().String()
	}
	if err := r.db.Create(userModel).Error; err != nil {
		return fmt.Errorf("%w: %v", entity.ErrStorageUnavailable, err)
	}
	*user = *ToUserEntity(userModel)
	return nil
}

func (r *userRepository) GetByID(id string) (*entity.User, error) {
	if r.db == nil {
		return nil, entity.ErrStorageUnavailable
	}

	var userModel model.UserModel
	if err := r.db.Where("id = ?", id).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", entity.ErrStorageUnavailable, err)
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) GetByUsername(username string) (*entity.User, error) {
	if r.db == nil {
		return nil, entity.ErrStorageUnavailable
	}

	var userModel model.UserModel
	if err := r.db.Where("username = ?", username).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", entity.ErrStorageUnavailable, err)
	}
	return ToUserEntity(&userModel), nil
}
