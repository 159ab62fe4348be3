package core

import (
	"context"

	"calorielog/internal/intake"
	"calorielog/internal/profile"
)

// EntryReader hands out the raw food rows, unfiltered by date.
type EntryReader interface {
	Records(ctx context.Context) ([]intake.FoodRecord, error)
}

// ProfileReader returns the stored profile or profile.ErrNoProfile.
type ProfileReader interface {
	Get(ctx context.Context) (*profile.UserProfile, error)
}
