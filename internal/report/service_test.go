package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"calorielog/internal/entries"
	"calorielog/internal/intake"
	"calorielog/internal/profile"
)

// --------------------------------------------------
// Mock readers
// --------------------------------------------------

type mockEntries struct {
	records []intake.FoodRecord
	err     error
}

func (m *mockEntries) Records(ctx context.Context) ([]intake.FoodRecord, error) {
	return m.records, m.err
}

type mockProfiles struct {
	profile *profile.UserProfile
	err     error
}

func (m *mockProfiles) Get(ctx context.Context) (*profile.UserProfile, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.profile == nil {
		return nil, profile.ErrNoProfile
	}
	return m.profile, nil
}

func scenarioRecords() []intake.FoodRecord {
	return []intake.FoodRecord{
		{ID: "1", Name: "Banana", Calories: "200", Quantity: "1", Date: "01/05/2024"},
		{ID: "2", Name: "Hamburger", Calories: "300", Quantity: "1", Date: "01/05/2024"},
		{ID: "3", Name: "Apple", Calories: "100", Quantity: "1", Date: "02/05/2024"},
	}
}

// --------------------------------------------------
// TESTS
// --------------------------------------------------

func TestDaily_Scenario(t *testing.T) {
	service := NewService(
		&mockEntries{records: scenarioRecords()},
		&mockProfiles{profile: &profile.UserProfile{Age: 25, Gender: "Male"}},
	)

	rec, err := service.Daily(context.Background(), "01/05/2024")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.ConsumedCalories != 500 {
		t.Errorf("expected consumed 500, got %d", rec.ConsumedCalories)
	}
	if rec.RemainingCalories != 1900 {
		t.Errorf("expected remaining 1900, got %d", rec.RemainingCalories)
	}
}

func TestDaily_BoundaryAgeFallsThrough(t *testing.T) {
	service := NewService(
		&mockEntries{},
		&mockProfiles{profile: &profile.UserProfile{Age: 51, Gender: "Female"}},
	)

	rec, err := service.Daily(context.Background(), "01/05/2024")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.RemainingCalories != 0 || rec.RuleMatched {
		t.Fatalf("expected zero-target fallback, got %+v", rec)
	}
}

func TestDaily_NoProfile(t *testing.T) {
	service := NewService(&mockEntries{records: scenarioRecords()}, &mockProfiles{})

	rec, err := service.Daily(context.Background(), "01/05/2024")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.RemainingCalories != -500 {
		t.Fatalf("expected -500, got %d", rec.RemainingCalories)
	}
}

func TestDaily_FormatError(t *testing.T) {
	records := append(scenarioRecords(), intake.FoodRecord{ID: "4", Calories: "abc", Date: "01/05/2024"})
	service := NewService(&mockEntries{records: records}, &mockProfiles{})

	_, err := service.Daily(context.Background(), "01/05/2024")
	if !errors.Is(err, intake.ErrFormat) {
		t.Fatalf("expected ErrFormat, got %v", err)
	}
}

func TestDaily_StoreErrors(t *testing.T) {
	boom := errors.New("boom")

	service := NewService(&mockEntries{err: boom}, &mockProfiles{})
	if _, err := service.Daily(context.Background(), "01/05/2024"); !errors.Is(err, boom) {
		t.Errorf("expected entries error, got %v", err)
	}

	service = NewService(&mockEntries{}, &mockProfiles{err: boom})
	if _, err := service.Daily(context.Background(), "01/05/2024"); !errors.Is(err, boom) {
		t.Errorf("expected profile error, got %v", err)
	}
}

func TestDaily_MissingDate(t *testing.T) {
	service := NewService(&mockEntries{}, &mockProfiles{})

	if _, err := service.Daily(context.Background(), "  "); !errors.Is(err, ErrMissingDate) {
		t.Fatalf("expected ErrMissingDate, got %v", err)
	}
}

func TestHistory(t *testing.T) {
	service := NewService(
		&mockEntries{records: scenarioRecords()},
		&mockProfiles{profile: &profile.UserProfile{Age: 8, Gender: "Female"}},
	)

	overview, err := service.History(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(overview.Days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(overview.Days))
	}
	if overview.Stats.Target != 1200 || overview.Stats.TotalCalories != 600 {
		t.Errorf("unexpected stats: %+v", overview.Stats)
	}
}

func TestToday(t *testing.T) {
	service := NewService(&mockEntries{}, &mockProfiles{})
	service.now = func() time.Time { return time.Date(2024, time.May, 1, 9, 0, 0, 0, time.UTC) }

	if got := service.Today(); got != "01/05/2024" {
		t.Fatalf("expected 01/05/2024, got %s", got)
	}
}

// Entries logged through the real service feed the report unchanged.
func TestDaily_WithEntriesService(t *testing.T) {
	ctx := context.Background()
	log := entries.NewService(entries.NewInMemoryRepository())
	profiles := profile.NewService(profile.NewInMemoryRepository())

	profiles.Create(ctx, "Adama", 40, "Female", "4821")
	log.LogFood(ctx, "Rice", 230, 1, "03/05/2024")
	log.LogFood(ctx, "Salmon", 140, 1, "03/05/2024")

	rec, err := NewService(log, profiles).Daily(ctx, "03/05/2024")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.ConsumedCalories != 370 || rec.RemainingCalories != 1430 {
		t.Fatalf("unexpected recommendation: %+v", rec)
	}
}
