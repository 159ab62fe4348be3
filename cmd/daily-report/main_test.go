package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"calorielog/internal/recommend"
)

type stubReporter struct {
	rec *recommend.Recommendation
	err error
}

func (s stubReporter) Daily(ctx context.Context, date string) (*recommend.Recommendation, error) {
	if s.err != nil {
		return nil, s.err
	}
	rec := *s.rec
	rec.Date = date
	return &rec, nil
}

func TestWriteReport_Text(t *testing.T) {
	var buf bytes.Buffer
	r := stubReporter{rec: &recommend.Recommendation{ConsumedCalories: 500, TargetCalories: 2400, RemainingCalories: 1900}}

	if err := writeReport(context.Background(), &buf, r, "01/05/2024", false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "01/05/2024") || !strings.Contains(out, "500 cal") || !strings.Contains(out, "1900 cal") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestWriteReport_JSON(t *testing.T) {
	var buf bytes.Buffer
	r := stubReporter{rec: &recommend.Recommendation{ConsumedCalories: 300, RemainingCalories: -300}}

	if err := writeReport(context.Background(), &buf, r, "02/05/2024", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got recommend.Recommendation
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if got.RemainingCalories != -300 || got.RuleMatched {
		t.Errorf("unexpected report: %+v", got)
	}
}

func TestWriteReport_ErrorWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	failure := errors.New("db down")

	err := writeReport(context.Background(), &buf, stubReporter{err: failure}, "01/05/2024", false)
	if !errors.Is(err, failure) {
		t.Fatalf("expected wrapped failure, got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}
