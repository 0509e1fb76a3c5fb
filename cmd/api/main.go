package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fadebook/fadebook-api/internal/config"
	dbpkg "github.com/fadebook/fadebook-api/internal/db"
	"github.com/fadebook/fadebook-api/internal/logging"
	"github.com/fadebook/fadebook-api/internal/metrics"
	"github.com/fadebook/fadebook-api/internal/routes"
)

func main() {

	cfg := config.Load()
	log := logging.New(cfg.LogLevel, cfg.LogFormat)

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}
	if err := dbpkg.Seed(db); err != nil {
		log.Fatal().Err(err).Msg("failed to seed database")
	}

	metrics.Register()

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, log)

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
