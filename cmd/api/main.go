package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/nobrecorte/booking-api/internal/config"
	dbpkg "github.com/nobrecorte/booking-api/internal/db"
	"github.com/nobrecorte/booking-api/internal/middleware"
	"github.com/nobrecorte/booking-api/internal/notify"
	"github.com/nobrecorte/booking-api/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, cfg)

	reminders := notify.NewReminderService(db, cfg)
	reminders.StartScheduler()

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
