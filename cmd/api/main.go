package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/provider-scheduler/internal/cache"
	"github.com/BruksfildServices01/provider-scheduler/internal/config"
	croned "github.com/BruksfildServices01/provider-scheduler/internal/cron"
	dbpkg "github.com/BruksfildServices01/provider-scheduler/internal/db"
	"github.com/BruksfildServices01/provider-scheduler/internal/mailer"
	"github.com/BruksfildServices01/provider-scheduler/internal/notify"
	"github.com/BruksfildServices01/provider-scheduler/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	cch := cache.New(cfg)
	m := mailer.New(cfg)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, cch, m)

	scheduler := croned.NewScheduler(db, notify.New(db, m))
	scheduler.Start()
	defer scheduler.Stop()

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
