package profile

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"calorielog/internal/logger"
	"calorielog/internal/recommend"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const minPasscodeLength = 4

var (
	ErrProfileExists  = errors.New("profile already exists")
	ErrInvalidProfile = errors.New("invalid profile")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create stores the installation's profile. It can only succeed once.
func (s *Service) Create(
	ctx context.Context,
	name string,
	age int,
	gender string,
	passcode string,
) (*UserProfile, error) {
	g := recommend.ParseGender(gender)
	if age <= 0 {
		return nil, fmt.Errorf("%w: age must be positive", ErrInvalidProfile)
	}
	if !g.Valid() {
		return nil, fmt.Errorf("%w: gender must be Male or Female", ErrInvalidProfile)
	}
	if len(passcode) < minPasscodeLength {
		return nil, fmt.Errorf("%w: passcode must be at least %d characters", ErrInvalidProfile, minPasscodeLength)
	}

	if _, err := s.repo.Get(ctx); err == nil {
		return nil, ErrProfileExists
	} else if !errors.Is(err, ErrNoProfile) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(passcode), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	p := &UserProfile{
		Name:         strings.TrimSpace(name),
		Age:          age,
		Gender:       g,
		PasscodeHash: string(hashed),
	}
	if err := s.repo.Save(ctx, p); err != nil {
		return nil, err
	}

	logger.Info("profile created", zap.String("id", p.ID), zap.Int("age", p.Age), zap.String("gender", string(p.Gender)))
	return p, nil
}

// Get returns the profile or ErrNoProfile.
func (s *Service) Get(ctx context.Context) (*UserProfile, error) {
	return s.repo.Get(ctx)
}

// CheckPasscode reports whether passcode unlocks the profile.
func (s *Service) CheckPasscode(ctx context.Context, passcode string) (*UserProfile, bool, error) {
	p, err := s.repo.Get(ctx)
	if err != nil {
		return nil, false, err
	}
	if bcrypt.CompareHashAndPassword([]byte(p.PasscodeHash), []byte(passcode)) != nil {
		return nil, false, nil
	}
	return p, true, nil
}
