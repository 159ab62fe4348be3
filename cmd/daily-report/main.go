package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"calorielog/internal/config"
	"calorielog/internal/db"
	"calorielog/internal/entries"
	"calorielog/internal/intake"
	"calorielog/internal/logger"
	"calorielog/internal/profile"
	"calorielog/internal/recommend"
	"calorielog/internal/report"

	"go.uber.org/zap"
)

type dailyReporter interface {
	Daily(ctx context.Context, date string) (*recommend.Recommendation, error)
}

func main() {
	os.Exit(run())
}

// run returns the process exit code so deferred cleanup always happens.
func run() int {
	date := flag.String("date", time.Now().Format(intake.DateLayout), "day to report, dd/MM/yyyy")
	asJSON := flag.Bool("json", false, "print the report as JSON")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("config", zap.Error(err))
		return 1
	}
	logger.Init(cfg.Env)
	defer logger.Sync()

	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	service := report.NewService(
		entries.NewService(entries.NewPostgresRepository(pgDB)),
		profile.NewService(profile.NewPostgresRepository(pgDB)),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := writeReport(ctx, os.Stdout, service, *date, *asJSON); err != nil {
		logger.Error("report failed", zap.String("date", *date), zap.Error(err))
		return 1
	}
	return 0
}

func writeReport(ctx context.Context, w io.Writer, r dailyReporter, date string, asJSON bool) error {
	rec, err := r.Daily(ctx, date)
	if err != nil {
		return err
	}

	if asJSON {
		return json.NewEncoder(w).Encode(rec)
	}

	_, err = fmt.Fprintf(w, "%s\n  eaten:     %d cal\n  remaining: %d cal\n",
		rec.Date, rec.ConsumedCalories, rec.RemainingCalories)
	return err
}
