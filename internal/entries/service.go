package entries

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"calorielog/internal/intake"
	"calorielog/internal/logger"

	"go.uber.org/zap"
)

var ErrInvalidEntry = errors.New("invalid food entry")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// LogFood validates and stores a new entry. The date must be a real
// dd/MM/yyyy day; it is stored exactly as given.
func (s *Service) LogFood(
	ctx context.Context,
	name string,
	calories int,
	quantity int,
	date string,
) (*intake.FoodEntry, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidEntry)
	}
	if calories < 0 || quantity < 0 {
		return nil, fmt.Errorf("%w: calories and quantity must not be negative", ErrInvalidEntry)
	}
	if _, err := time.Parse(intake.DateLayout, date); err != nil {
		return nil, fmt.Errorf("%w: date must be dd/MM/yyyy", ErrInvalidEntry)
	}

	entry := &intake.FoodEntry{
		Name:     name,
		Calories: calories,
		Quantity: quantity,
		Date:     date,
	}
	if err := s.repo.Save(ctx, entry); err != nil {
		return nil, err
	}

	logger.Debug("food logged",
		zap.String("id", entry.ID),
		zap.Int("calories", entry.Calories),
		zap.String("date", entry.Date),
	)
	return entry, nil
}

// Records returns the raw rows for callers that parse lazily.
func (s *Service) Records(ctx context.Context) ([]intake.FoodRecord, error) {
	return s.repo.List(ctx)
}

// List returns every entry. A malformed row surfaces as *intake.FormatError.
func (s *Service) List(ctx context.Context) ([]intake.FoodEntry, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return intake.ParseRecords(records)
}

// ListByDate returns entries whose date contains date. Only matching
// rows are parsed, so a malformed row from another day is ignored.
func (s *Service) ListByDate(ctx context.Context, date string) ([]intake.FoodEntry, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return intake.ParseRecords(intake.FilterRecordsByDate(records, date))
}

// Reset deletes every entry.
func (s *Service) Reset(ctx context.Context) error {
	if err := s.repo.Reset(ctx); err != nil {
		return err
	}
	logger.Info("food log reset")
	return nil
}
