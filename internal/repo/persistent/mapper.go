package persistent

import (
	"vibe-coding-tools/internal/entity"
	"vibe-coding-tools/internal/model"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:        m.ID,
		Username:  m.Username,
		Password:  m.Password,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:        e.ID,
		Username:  e.Username,
		Password:  e.Password,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToToolEntity(m *model.ToolModel) *entity.Tool {
	if m == nil {
		return nil
	}

	return &entity.Tool{
		ID:        m.ID,
		Name:      m.Name,
		LikeCount: m.LikeCount,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToToolModel(e *entity.Tool) *model.ToolModel {
	if e == nil {
		return nil
	}

	return &model.ToolModel{
		ID:        e.ID,
		Name:      e.Name,
		LikeCount: e.LikeCount,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToLikeEntity(m *model.UserToolLikeModel) *entity.Like {
	if m == nil {
		return nil
	}

	return &entity.Like{
		ID:        m.ID,
		UserID:    m.UserID,
		ToolID:    m.ToolID,
		Liked:     m.Liked,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
