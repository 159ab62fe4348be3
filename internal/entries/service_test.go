package entries

import (
	"context"
	"errors"
	"testing"

	"calorielog/internal/intake"
)

func TestLogFood_Success(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo)

	entry, err := service.LogFood(context.Background(), "Banana", 105, 1, "01/05/2024")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.ID == "" {
		t.Errorf("expected ID to be set")
	}

	records, _ := repo.List(context.Background())
	if len(records) != 1 || records[0].Calories != "105" {
		t.Fatalf("unexpected stored rows: %+v", records)
	}
}

func TestLogFood_Validation(t *testing.T) {
	service := NewService(NewInMemoryRepository())
	ctx := context.Background()

	cases := []struct {
		name     string
		food     string
		calories int
		quantity int
		date     string
	}{
		{"missing name", " ", 100, 1, "01/05/2024"},
		{"negative calories", "Apple", -1, 1, "01/05/2024"},
		{"negative quantity", "Apple", 52, -2, "01/05/2024"},
		{"iso date", "Apple", 52, 1, "2024-05-01"},
		{"month out of range", "Apple", 52, 1, "01/13/2024"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.LogFood(ctx, tc.food, tc.calories, tc.quantity, tc.date)
			if !errors.Is(err, ErrInvalidEntry) {
				t.Fatalf("expected ErrInvalidEntry, got %v", err)
			}
		})
	}
}

func TestListByDate(t *testing.T) {
	service := NewService(NewInMemoryRepository())
	ctx := context.Background()

	service.LogFood(ctx, "Pancake", 60, 2, "01/05/2024")
	service.LogFood(ctx, "Waffle", 245, 1, "01/05/2024")
	service.LogFood(ctx, "Kiwi", 45, 1, "02/05/2024")

	list, err := service.ListByDate(ctx, "01/05/2024")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(list))
	}
	if list[0].Name != "Pancake" || list[1].Name != "Waffle" {
		t.Errorf("unexpected order: %+v", list)
	}
}

func TestList_MalformedRow(t *testing.T) {
	repo := NewInMemoryRepository()
	repo.SaveRecord(intake.FoodRecord{ID: "bad", Name: "Mystery", Calories: "n/a", Quantity: "1", Date: "01/05/2024"})

	_, err := NewService(repo).List(context.Background())
	if !errors.Is(err, intake.ErrFormat) {
		t.Fatalf("expected ErrFormat, got %v", err)
	}
}

func TestListByDate_MalformedRowOnOtherDay(t *testing.T) {
	repo := NewInMemoryRepository()
	repo.SaveRecord(intake.FoodRecord{ID: "a", Name: "Banana", Calories: "200", Quantity: "1", Date: "01/05/2024"})
	repo.SaveRecord(intake.FoodRecord{ID: "b", Name: "Mystery", Calories: "lots", Quantity: "1", Date: "02/05/2024"})
	service := NewService(repo)
	ctx := context.Background()

	list, err := service.ListByDate(ctx, "01/05/2024")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 1 || list[0].Calories != 200 {
		t.Fatalf("unexpected entries: %+v", list)
	}

	records, _ := service.Records(ctx)
	sum, err := intake.SumRecordsForDate(records, "01/05/2024")
	if err != nil || sum != 200 {
		t.Fatalf("report path disagrees: sum=%d err=%v", sum, err)
	}

	if _, err := service.ListByDate(ctx, "02/05/2024"); !errors.Is(err, intake.ErrFormat) {
		t.Fatalf("expected ErrFormat for the malformed day, got %v", err)
	}
}

func TestReset(t *testing.T) {
	service := NewService(NewInMemoryRepository())
	ctx := context.Background()

	service.LogFood(ctx, "Orange", 60, 1, "01/05/2024")
	if err := service.Reset(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	list, _ := service.List(ctx)
	if len(list) != 0 {
		t.Fatalf("expected empty log, got %d", len(list))
	}
}
