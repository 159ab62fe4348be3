package profile

import (
	"context"
	"errors"
)

var ErrNoProfile = errors.New("no profile has been created")

// Repository defines the data-access contract.
// Save returns ErrProfileExists when a profile is already stored.
// Get returns ErrNoProfile when the profile does not exist yet.
type Repository interface {
	Save(ctx context.Context, p *UserProfile) error
	Get(ctx context.Context) (*UserProfile, error)
}
