package report

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"calorielog/internal/core"
	"calorielog/internal/history"
	"calorielog/internal/intake"
	"calorielog/internal/logger"
	"calorielog/internal/profile"
	"calorielog/internal/recommend"

	"go.uber.org/zap"
)

var ErrMissingDate = errors.New("date is required")

type Service struct {
	entries  core.EntryReader
	profiles core.ProfileReader
	now      func() time.Time
}

func NewService(entries core.EntryReader, profiles core.ProfileReader) *Service {
	return &Service{
		entries:  entries,
		profiles: profiles,
		now:      time.Now,
	}
}

// Today returns the current date in the layout entries are logged with.
func (s *Service) Today() string {
	return s.now().Format(intake.DateLayout)
}

// --------------------------------------------------
// Daily report: consumed + remaining for one date
// --------------------------------------------------
func (s *Service) Daily(ctx context.Context, date string) (*recommend.Recommendation, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return nil, ErrMissingDate
	}

	records, err := s.entries.Records(ctx)
	if err != nil {
		return nil, fmt.Errorf("load entries: %w", err)
	}

	consumed, err := intake.SumRecordsForDate(records, date)
	if err != nil {
		return nil, err
	}

	p, err := s.engineProfile(ctx)
	if err != nil {
		return nil, err
	}

	rec := recommend.Evaluate(p, date, consumed)
	if !rec.RuleMatched {
		logger.Debug("no target rule matched",
			zap.Int("age", p.Age),
			zap.String("gender", string(p.Gender)),
		)
	}
	return &rec, nil
}

// --------------------------------------------------
// History: every logged day plus aggregate stats
// --------------------------------------------------
func (s *Service) History(ctx context.Context) (*history.Overview, error) {
	records, err := s.entries.Records(ctx)
	if err != nil {
		return nil, fmt.Errorf("load entries: %w", err)
	}

	entries, err := intake.ParseRecords(records)
	if err != nil {
		return nil, err
	}

	p, err := s.engineProfile(ctx)
	if err != nil {
		return nil, err
	}
	target, _ := recommend.TargetFor(p.Age, p.Gender)

	days := history.Summaries(entries)
	return &history.Overview{
		Days:  days,
		Stats: history.Compute(days, target),
	}, nil
}

// A missing profile is not an error: it evaluates like one that
// matches no rule.
func (s *Service) engineProfile(ctx context.Context) (recommend.Profile, error) {
	p, err := s.profiles.Get(ctx)
	if err != nil {
		if errors.Is(err, profile.ErrNoProfile) {
			return recommend.Profile{}, nil
		}
		return recommend.Profile{}, fmt.Errorf("load profile: %w", err)
	}
	return p.Engine(), nil
}
