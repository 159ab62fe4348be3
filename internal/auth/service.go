package auth

import (
	"context"
	"errors"

	"calorielog/internal/profile"
)

var ErrInvalidCredentials = errors.New("invalid passcode")

type Service struct {
	profiles *profile.Service
}

func NewService(profiles *profile.Service) *Service {
	return &Service{profiles: profiles}
}

// LOGIN
func (s *Service) Login(ctx context.Context, passcode string) (string, error) {
	p, ok, err := s.profiles.CheckPasscode(ctx, passcode)
	if err != nil {
		if errors.Is(err, profile.ErrNoProfile) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if !ok {
		return "", ErrInvalidCredentials
	}

	return GenerateToken(p.ID)
}
