package persistent

import (
	"errors"
	"fmt"

	"vibe-coding-tools/internal/entity"
	"vibe-coding-tools/internal/model"

	"gorm.io/gorm"
)

type LikeRepository interface {
	Toggle(userID, toolID string) (*entity.ToggleResult, error)
	GetByUser(userID string) ([]*entity.Like, error)
	ResetAll() error
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

// Toggle flips the user's like state for a tool and applies the matching
// delta to the tool's aggregate counter, all inside one transaction. The
// counter update is relative (no read-modify-write outside the transaction)
// and clamped at zero. Concurrent first-time toggles on the same
// (user, tool) pair serialize on the unique index: the loser rolls back
// whole, leaving the ledger and counter consistent.
func (r *likeRepository) Toggle(userID, toolID string) (*entity.ToggleResult, error) {
	if r.db == nil {
		return nil, entity.ErrStorageUnavailable
	}

	var result entity.ToggleResult
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var record model.UserToolLikeModel
		err := tx.Where("user_id = ? AND tool_id = ?", userID, toolID).First(&record).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			record = model.UserToolLikeModel{
				UserID: userID,
				ToolID: toolID,
				Liked:  true,
			}
			if err := tx.Create(&record).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			record.Liked = !record.Liked
			if err := tx.Model(&record).Update("liked", record.Liked).Error; err != nil {
				return err
			}
		}

		delta := -1
		if record.Liked {
			delta = 1
		}

		// Clamped relative update; CASE keeps it portable across postgres
		// and the sqlite used in tests.
		err = tx.Model(&model.ToolModel{}).
			Where("id = ?", toolID).
			UpdateColumn("like_count", gorm.Expr(
				"CASE WHEN like_count + ? > 0 THEN like_count + ? ELSE 0 END", delta, delta,
			)).Error
		if err != nil {
			return err
		}

		var tool model.ToolModel
		if err := tx.Where("id = ?", toolID).First(&tool).Error; err != nil {
			return err
		}

		result = entity.ToggleResult{
			Liked:    record.Liked,
			NewCount: tool.LikeCount,
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", entity.ErrStorageUnavailable, err)
	}

	return &result, nil
}

func (r *likeRepository) GetByUser(userID string) ([]*entity.Like, error) {
	if r.db == nil {
		return nil, entity.ErrStorageUnavailable
	}

	var likeModels []model.UserToolLikeModel
	if err := r.db.Where("user_id = ?", userID).Find(&likeModels).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrStorageUnavailable, err)
	}

	likes := make([]*entity.Like, len(likeModels))
	for i := range likeModels {
		likes[i] = ToLikeEntity(&likeModels[i])
	}
	return likes, nil
}

// ResetAll zeroes every counter and removes every ledger row in one
// transaction. Operator use only.
func (r *likeRepository) ResetAll() error {
	if r.db == nil {
		return entity.ErrStorageUnavailable
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.ToolModel{}).
			Where("1 = 1").
			UpdateColumn("like_count", 0).Error; err != nil {
			return err
		}
		return tx.Where("1 = 1").Delete(&model.UserToolLikeModel{}).Error
	})
	if err != nil {
		return fmt.Errorf("%w: %v", entity.ErrStorageUnavailable, err)
	}
	return nil
}
