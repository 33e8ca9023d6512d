package entity

import "time"

// Like is the per (user, tool) preference row. At most one exists per pair;
// toggles flip Liked in place rather than deleting the row.
type Like struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ToolID    string    `json:"tool_id"`
	Liked     bool      `json:"liked"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToggleResult is what a committed toggle transaction reports back.
type ToggleResult struct {
	Liked    bool `json:"liked"`
	NewCount int  `json:"new_count"`
}

// ToolLike is one element of a user's like-state vector: for every tool,
// whether the user currently likes it (absent ledger row = false).
type ToolLike struct {
	ToolID string `json:"tool_id"`
	Liked  bool   `json:"liked"`
}
