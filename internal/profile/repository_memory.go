package profile

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type InMemoryRepository struct {
	mu      sync.RWMutex
	profile *UserProfile
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

// Save stores the profile once; later calls return ErrProfileExists.
func (r *InMemoryRepository) Save(ctx context.Context, p *UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.profile != nil {
		return ErrProfileExists
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	stored := *p
	r.profile = &stored
	return nil
}

func (r *InMemoryRepository) Get(ctx context.Context) (*UserProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.profile == nil {
		return nil, ErrNoProfile
	}
	p := *r.profile
	return &p, nil
}
