package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserToolLikeModel rows are flipped in place, never soft-deleted: the unique
// index on (user_id, tool_id) is what serializes concurrent first-time
// toggles on the same pair.
type UserToolLikeModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_user_tool" json:"user_id"`
	ToolID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_user_tool" json:"tool_id"`
	Liked     bool      `gorm:"not null;default:true" json:"liked"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (UserToolLikeModel) TableName() string {
	return "user_tool_likes"
}

func (l *UserToolLikeModel) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}
