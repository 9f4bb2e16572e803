package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/royalrinse/carwash-booking/internal/config"
	dbpkg "github.com/royalrinse/carwash-booking/internal/db"
	"github.com/royalrinse/carwash-booking/internal/logging"
	"github.com/royalrinse/carwash-booking/internal/metrics"
	"github.com/royalrinse/carwash-booking/internal/middleware"
	"github.com/royalrinse/carwash-booking/internal/routes"
)

func main() {

	cfg := config.Load()
	log := logging.New(cfg)

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("database setup failed")
	}

	rdb, err := dbpkg.NewRedis(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("redis setup failed")
	}

	metrics.Register()

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Metrics())
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, cfg, log)

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
