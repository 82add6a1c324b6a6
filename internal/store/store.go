// Package store persists generated scripts and daily usage counters.
package store

import (
	"context"

	"github.com/voxforge/studio/internal/script"
)

// SavedScript is a script document plus the analysis attached to it, as it
// lives in history.
type SavedScript struct {
	script.Document
	Analysis *script.Analysis `json:"analysis,omitempty"`
}

// Plan is the caller's subscription tier for quota checks.
type Plan string

const (
	PlanFree Plan = "free"
	PlanPro  Plan = "pro"
)

// FreeDailyLimit is the number of script generations a free plan gets per
// UTC day.
const FreeDailyLimit = 3

// Store is the script history and usage persistence contract. Save is
// upsert by document id: re-saving an existing script (e.g. after attaching
// an analysis) updates it in place instead of duplicating the entry.
type Store interface {
	Save(ctx context.Context, entry *SavedScript) error
	Get(ctx context.Context, id string) (*SavedScript, error)
	List(ctx context.Context, limit int, cursor string) ([]SavedScript, string, error)
	Delete(ctx context.Context, id string) error

	IncrementUsage(ctx context.Context) (int, error)
	Usage(ctx context.Context) (int, error)
	CheckLimit(ctx context.Context, plan Plan) (bool, error)
}
