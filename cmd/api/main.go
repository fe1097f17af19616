package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Elishanunana/hostel-booking-app-integrated/internal/backend"
	"github.com/Elishanunana/hostel-booking-app-integrated/internal/config"
	"github.com/Elishanunana/hostel-booking-app-integrated/internal/middleware"
	"github.com/Elishanunana/hostel-booking-app-integrated/internal/modules/auth"
	"github.com/Elishanunana/hostel-booking-app-integrated/internal/modules/booking"
	"github.com/Elishanunana/hostel-booking-app-integrated/internal/modules/catalog"
	"github.com/Elishanunana/hostel-booking-app-integrated/internal/session"
)

func main() {
	// .env is optional; deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}

	api := backend.New(cfg.BackendBaseURL, cfg.BackendTimeout)

	sessions := session.NewStore(cfg.SessionTTL)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sessions.StartJanitor(ctx, cfg.SweepInterval)

	router := buildRouter(api, sessions)

	log.Printf("gateway listening addr=%s backend=%s", cfg.ListenAddr, cfg.BackendBaseURL)
	if err := router.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("server: %v", err)
	}
}

func buildRouter(api *backend.Client, sessions *session.Store) *gin.Engine {
	authHandler := auth.NewHandler(auth.NewService(api, sessions))
	catalogHandler := catalog.NewHandler(catalog.NewService(api))
	bookingHandler := booking.NewHandler(booking.NewService(api, sessions))

	router := gin.New()
	router.Use(middleware.RequestLogger(), gin.Recovery(), middleware.CORS())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"status": "ok"}})
	})

	v1 := router.Group("/api/v1")
	{
		authHandler.RegisterPublicRoutes(v1)
		catalogHandler.RegisterRoutes(v1)
		bookingHandler.RegisterPublicRoutes(v1)

		protected := v1.Group("")
		protected.Use(middleware.SessionAuth(sessions))
		{
			authHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterProtectedRoutes(protected)
		}
	}
	return router
}
