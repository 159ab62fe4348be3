package entries

import (
	"context"

	"calorielog/internal/intake"
)

// Repository defines the data-access contract for the food log.
// Rows come back untyped; Service parses them.
type Repository interface {
	Save(ctx context.Context, entry *intake.FoodEntry) error
	List(ctx context.Context) ([]intake.FoodRecord, error)
	Reset(ctx context.Context) error
}
