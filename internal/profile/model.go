package profile

import (
	"time"

	"calorielog/internal/recommend"
)

// UserProfile is the single profile of an installation.
type UserProfile struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Age          int              `json:"age"`
	Gender       recommend.Gender `json:"gender"`
	PasscodeHash string           `json:"-"`
	CreatedAt    time.Time        `json:"created_at"`
}

// Engine returns the fields the recommendation engine uses.
func (p *UserProfile) Engine() recommend.Profile {
	return recommend.Profile{Age: p.Age, Gender: p.Gender}
}
