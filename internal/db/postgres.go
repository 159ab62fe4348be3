package db

import (
	"context"
	"os"
	"time"

	"calorielog/internal/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		logger.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Fatal("invalid DATABASE_URL", zap.Error(err))
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		logger.Fatal("postgres pool", zap.Error(err))
	}

	if err := db.Ping(context.Background()); err != nil {
		logger.Fatal("Postgres connection failed", zap.Error(err))
	}

	logger.Info("connected to PostgreSQL")

	if err := InitSchema(context.Background(), db); err != nil {
		logger.Fatal("Failed to initialize schema", zap.Error(err))
	}

	return db
}

// InitSchema creates the tables if they are missing.
func InitSchema(ctx context.Context, db *pgxpool.Pool) error {
	// -------------------------------
	// PROFILE (one row per installation)
	// -------------------------------
	profileTableSQL := `
		CREATE TABLE IF NOT EXISTS user_profile (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL DEFAULT '',
			age INTEGER NOT NULL,
			gender VARCHAR(16) NOT NULL,
			passcode_hash VARCHAR(255) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, profileTableSQL); err != nil {
		return err
	}

	// at most one row: every row indexes the same key
	singletonSQL := `
		CREATE UNIQUE INDEX IF NOT EXISTS user_profile_singleton
		ON user_profile ((true))
	`
	if _, err := db.Exec(ctx, singletonSQL); err != nil {
		return err
	}

	// -------------------------------
	// FOOD ENTRIES
	// calories/quantity stay TEXT: values are parsed on read
	// -------------------------------
	foodTableSQL := `
		CREATE TABLE IF NOT EXISTS food_entries (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			calories TEXT NOT NULL,
			quantity TEXT NOT NULL,
			entry_date VARCHAR(32) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, foodTableSQL); err != nil {
		return err
	}

	indexSQL := `
		CREATE INDEX IF NOT EXISTS idx_food_entries_created_at
		ON food_entries (created_at)
	`
	if _, err := db.Exec(ctx, indexSQL); err != nil {
		logger.Warn("index creation skipped", zap.Error(err))
	}

	logger.Info("schema initialized")
	return nil
}
