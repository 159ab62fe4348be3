package intake

import (
	"errors"
	"strconv"
	"strings"
)

var errNegative = errors.New("value must not be negative")

// Matches reports whether a stored date belongs to the query date.
// Matching is string containment, not calendar equality: the caller
// must use the same dd/MM/yyyy representation the entry was logged with.
func Matches(storedDate, date string) bool {
	return strings.Contains(storedDate, date)
}

// SumCaloriesForDate sums the calories of every entry whose date
// contains date. It returns 0 when nothing matches.
func SumCaloriesForDate(entries []FoodEntry, date string) int {
	total := 0
	for _, e := range entries {
		if Matches(e.Date, date) {
			total += e.Calories
		}
	}
	return total
}

// SumRecordsForDate is SumCaloriesForDate over raw store rows.
// A matching row whose calories do not parse aborts the sum with a
// *FormatError; rows for other dates are never inspected.
func SumRecordsForDate(records []FoodRecord, date string) (int, error) {
	total := 0
	for _, r := range records {
		if !Matches(r.Date, date) {
			continue
		}
		cal, err := parseCount(r.ID, "calories", r.Calories)
		if err != nil {
			return 0, err
		}
		total += cal
	}
	return total, nil
}

// Summarize builds the DailySummary for date.
func Summarize(entries []FoodEntry, date string) DailySummary {
	s := DailySummary{Date: date}
	for _, e := range entries {
		if Matches(e.Date, date) {
			s.ConsumedCalories += e.Calories
			s.EntryCount++
		}
	}
	return s
}

// FilterRecordsByDate keeps the rows belonging to date, preserving order.
// Rows are not parsed.
func FilterRecordsByDate(records []FoodRecord, date string) []FoodRecord {
	out := make([]FoodRecord, 0, len(records))
	for _, r := range records {
		if Matches(r.Date, date) {
			out = append(out, r)
		}
	}
	return out
}

// ParseRecord converts a stored row into a FoodEntry.
func ParseRecord(r FoodRecord) (FoodEntry, error) {
	cal, err := parseCount(r.ID, "calories", r.Calories)
	if err != nil {
		return FoodEntry{}, err
	}
	qty, err := parseCount(r.ID, "quantity", r.Quantity)
	if err != nil {
		return FoodEntry{}, err
	}
	return FoodEntry{
		ID:        r.ID,
		Name:      r.Name,
		Calories:  cal,
		Quantity:  qty,
		Date:      r.Date,
		CreatedAt: r.CreatedAt,
	}, nil
}

// ParseRecords converts every row, stopping at the first malformed one.
func ParseRecords(records []FoodRecord) ([]FoodEntry, error) {
	entries := make([]FoodEntry, 0, len(records))
	for _, r := range records {
		e, err := ParseRecord(r)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// ToRecord is the inverse of ParseRecord, used by stores that keep text columns.
func ToRecord(e FoodEntry) FoodRecord {
	return FoodRecord{
		ID:        e.ID,
		Name:      e.Name,
		Calories:  strconv.Itoa(e.Calories),
		Quantity:  strconv.Itoa(e.Quantity),
		Date:      e.Date,
		CreatedAt: e.CreatedAt,
	}
}

func parseCount(id, field, value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, &FormatError{RecordID: id, Field: field, Value: value, Err: err}
	}
	if n < 0 {
		return 0, &FormatError{RecordID: id, Field: field, Value: value, Err: errNegative}
	}
	return n, nil
}
