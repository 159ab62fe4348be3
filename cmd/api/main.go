package main

import (
	"context"

	"calorielog/internal/auth"
	"calorielog/internal/config"
	"calorielog/internal/db"
	"calorielog/internal/entries"
	"calorielog/internal/export"
	"calorielog/internal/logger"
	"calorielog/internal/profile"
	"calorielog/internal/report"
	"calorielog/internal/router"
	"calorielog/internal/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("config", zap.Error(err))
	}

	logger.Init(cfg.Env)
	defer logger.Sync()

	if err := config.Require("JWT_SECRET", "DATABASE_URL"); err != nil {
		logger.Fatal("environment", zap.Error(err))
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── STORAGE ─────────────────────────
	var uploader export.Uploader
	if cfg.Storage.Enabled() {
		r2Client, err := storage.NewR2Client(context.Background(), cfg.Storage)
		if err != nil {
			logger.Fatal("R2 init failed", zap.Error(err))
		}
		uploader = r2Client
	} else {
		logger.Warn("object storage not configured, exports disabled")
	}

	// ───────────────────────── SERVICES ─────────────────────────
	entryService := entries.NewService(entries.NewPostgresRepository(pgDB))
	profileService := profile.NewService(profile.NewPostgresRepository(pgDB))

	r := router.NewRouter(router.Services{
		Entries: entryService,
		Profile: profileService,
		Auth:    auth.NewService(profileService),
		Report:  report.NewService(entryService, profileService),
		Export:  export.NewService(entryService, uploader),
	}, cfg.CORSOrigins)

	// ───────────────────────── START ─────────────────────────
	logger.Info("API running", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
