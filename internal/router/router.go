package router

import (
	"time"

	"calorielog/internal/auth"
	"calorielog/internal/entries"
	"calorielog/internal/export"
	"calorielog/internal/middleware"
	"calorielog/internal/profile"
	"calorielog/internal/report"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Services is everything the HTTP layer needs.
type Services struct {
	Entries *entries.Service
	Profile *profile.Service
	Auth    *auth.Service
	Report  *report.Service
	Export  *export.Service
}

func NewRouter(s Services, corsOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger())

	if len(corsOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     corsOrigins,
			AllowMethods:     []string{"GET", "POST", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	profileHandler := profile.NewHandler(s.Profile)
	authHandler := auth.NewHandler(s.Auth)
	entryHandler := entries.NewHandler(s.Entries)
	reportHandler := report.NewHandler(s.Report)
	exportHandler := export.NewHandler(s.Export)

	// ───────────────────────── PUBLIC ─────────────────────────
	r.POST("/profile", profileHandler.Create)
	r.POST("/auth/login", authHandler.Login)
	r.GET("/rules", reportHandler.Rules)

	// ───────────────────────── PROTECTED ─────────────────────────
	protected := r.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/profile", profileHandler.Get)

		protected.POST("/entries", entryHandler.Create)
		protected.GET("/entries", entryHandler.List)
		protected.DELETE("/entries", entryHandler.Reset)
		protected.POST("/entries/export", exportHandler.Export)

		protected.GET("/report", reportHandler.Daily)
		protected.GET("/report/history", reportHandler.History)
	}

	return r
}
