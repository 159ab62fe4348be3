package entries

import (
	"context"
	"sync"
	"time"

	"calorielog/internal/intake"

	"github.com/google/uuid"
)

type InMemoryRepository struct {
	mu      sync.RWMutex
	records []intake.FoodRecord
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Save(ctx context.Context, entry *intake.FoodEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, intake.ToRecord(*entry))
	return nil
}

// SaveRecord stores a raw row as-is, bypassing validation.
func (r *InMemoryRepository) SaveRecord(rec intake.FoodRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, rec)
}

func (r *InMemoryRepository) List(ctx context.Context) ([]intake.FoodRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]intake.FoodRecord, len(r.records))
	copy(out, r.records)
	return out, nil
}

func (r *InMemoryRepository) Reset(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = nil
	return nil
}
