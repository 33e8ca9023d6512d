package entity

import "time"

// Tool is a catalog entry representing a votable coding product. LikeCount is
// the denormalized aggregate; it is mutated only inside the toggle
// transaction and never goes negative.
type Tool struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	LikeCount int       `json:"like_count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DefaultToolNames is the catalog the landing page ships with. The seeder
// creates these idempotently and read handlers fall back to them with zeroed
// counts when storage is unavailable.
var DefaultToolNames = []string{
	"ChatGPT",
	"Claude",
	"Gemini",
	"Copilot",
	"Cursor",
	"Windsurf",
	"Replit",
	"Lovable",
	"Canva",
	"Figma",
}

// FallbackTools returns the default catalog with zeroed counts and no ids,
// used to keep the page rendering when the store is down.
func FallbackTools() []*Tool {
	tools := make([]*Tool, len(DefaultToolNames))
	for i, name := range DefaultToolNames {
		tools[i] = &Tool{Name: name}
	}
	return tools
}
