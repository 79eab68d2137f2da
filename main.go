package main

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/nanao-dev/bingo-party-backend/config"
	"github.com/nanao-dev/bingo-party-backend/game"
	"github.com/nanao-dev/bingo-party-backend/routes"
	"github.com/nanao-dev/bingo-party-backend/services"
	"github.com/nanao-dev/bingo-party-backend/store"
	"github.com/nanao-dev/bingo-party-backend/utils/logger"
)

// newRoomStore picks the persistence backend: postgres when DATABASE_URL
// is configured, the in-memory store otherwise.
func newRoomStore(cfg *config.Config) game.RoomStore {
	if cfg.DatabaseURL != "" {
		db := config.SetupDatabase(cfg.DatabaseURL)
		return store.NewGorm(db)
	}
	logger.Infof("DATABASE_URL not set, using in-memory room store")
	return store.NewMemory()
}

func setupRouter(cfg *config.Config, service *game.Service, gateway *services.Gateway) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.SetupRoutes(r, cfg, service, gateway)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now()})
	})

	return r
}

func main() {
	cfg := config.Load()

	service := game.NewService(newRoomStore(cfg))
	gateway := services.NewGateway(service)

	router := setupRouter(cfg, service, gateway)

	logger.Infof("bingo backend starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatalf("failed to start server: %v", err)
	}
}
