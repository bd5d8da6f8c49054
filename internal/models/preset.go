package models

import (
	"time"

	"github.com/crucial707/cronlens/internal/recurrence"
)

// Preset is a named, stored recurrence configuration. Description is
// derived from Config whenever the preset is served and is never persisted.
type Preset struct {
	ID          int               `json:"id"`
	Name        string            `json:"name"`
	Config      recurrence.Config `json:"config"`
	Description string            `json:"description"`
	CreatedAt   time.Time         `json:"created_at"`
}

// Describe fills Description from Config.
func (p *Preset) Describe() {
	p.Description = recurrence.Describe(p.Config)
}
