package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"backlog/backend/internal/auth"
	"backlog/backend/internal/handler"
	"backlog/backend/internal/metrics"
	"backlog/backend/internal/telemetry"
)

// New wires the gin engine: observability endpoints stay open, every /games
// route sits behind the API-key middleware.
func New(apiKey string, h *handler.GameHandler, m *metrics.Metrics, logger zerolog.Logger, tc telemetry.Client) *gin.Engine {
	router := gin.Default()
	router.Use(m.Middleware())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", m.Handler())
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	games := router.Group("/games")
	games.Use(auth.APIKeyMiddleware(apiKey, logger, tc))
	{
		games.GET("", h.ListGames)
		games.GET("/:key", h.GetGame)
		games.POST("", h.CreateGame)
		games.PUT("/:id", h.UpdateGame)
		games.DELETE("/:id", h.DeleteGame)
		games.PATCH("/validate", h.ValidateGames)
	}

	return router
}
