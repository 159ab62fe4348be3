package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"calorielog/internal/intake"
	"calorielog/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrDisabled = errors.New("export storage is not configured")

type Uploader interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}

type EntryLister interface {
	List(ctx context.Context) ([]intake.FoodEntry, error)
}

type Service struct {
	entries  EntryLister
	uploader Uploader
}

// NewService accepts a nil uploader; Export then returns ErrDisabled.
func NewService(entries EntryLister, uploader Uploader) *Service {
	return &Service{entries: entries, uploader: uploader}
}

// Export uploads the whole food log as CSV and returns its URL.
func (s *Service) Export(ctx context.Context) (string, error) {
	if s.uploader == nil {
		return "", ErrDisabled
	}

	list, err := s.entries.List(ctx)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, list); err != nil {
		return "", fmt.Errorf("encode csv: %w", err)
	}

	key := fmt.Sprintf("exports/%s.csv", uuid.New().String())
	url, err := s.uploader.Upload(ctx, key, &buf, "text/csv")
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}

	logger.Info("food log exported", zap.String("key", key), zap.Int("entries", len(list)))
	return url, nil
}

// WriteCSV writes a header row followed by one row per entry.
func WriteCSV(w io.Writer, list []intake.FoodEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "name", "calories", "quantity", "date"}); err != nil {
		return err
	}
	for _, e := range list {
		row := []string{
			e.ID,
			e.Name,
			strconv.Itoa(e.Calories),
			strconv.Itoa(e.Quantity),
			e.Date,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
