package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/nanao-dev/bingo-party-backend/config"
	"github.com/nanao-dev/bingo-party-backend/controllers"
	"github.com/nanao-dev/bingo-party-backend/game"
	"github.com/nanao-dev/bingo-party-backend/services"
)

func SetupRoutes(r *gin.Engine, cfg *config.Config, service *game.Service, gateway *services.Gateway) {
	api := r.Group("/api")

	// ----------------------
	// Admin auth routes
	// ----------------------
	api.POST("/auth/login", controllers.Login(cfg))
	api.POST("/auth/logout", controllers.Logout())

	// ----------------------
	// Admin game routes
	// ----------------------
	admin := api.Group("/game", controllers.AdminAuth(cfg.JWTSecret))
	admin.GET("/rooms", controllers.ListRooms(service))

	// ----------------------
	// Realtime endpoint
	// ----------------------
	r.GET("/ws", gateway.HandleWebSocket)
}
