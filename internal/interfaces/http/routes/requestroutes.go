package routes

import (
	"github.com/gin-gonic/gin"

	requesthandlers "github.com/opsdesk-inc/opsdesk/internal/interfaces/http/handlers/request"
	"github.com/opsdesk-inc/opsdesk/internal/interfaces/http/middleware"
	"github.com/opsdesk-inc/opsdesk/internal/shared/authorization"
)

type RequestRouteConfig struct {
	RequestHandler *requesthandlers.Handler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupRequestRoutes(api *gin.RouterGroup, config *RequestRouteConfig) {
	requests := api.Group("/requests")
	requests.Use(config.AuthMiddleware.RequireAuth())
	{
		// Register specific paths before parameterized paths to avoid route
		// conflicts.
		requests.POST("",
			authorization.RequireAgent(),
			config.RequestHandler.Create)
		requests.GET("",
			config.RequestHandler.List)

		requests.POST("/:id/generate-reply",
			authorization.RequireAgent(),
			config.RequestHandler.GenerateReply)
		requests.POST("/:id/recategorize",
			authorization.RequireAgent(),
			config.RequestHandler.Recategorize)

		requests.GET("/:id",
			config.RequestHandler.Get)
		requests.PUT("/:id",
			authorization.RequireAgent(),
			config.RequestHandler.Update)
		requests.DELETE("/:id",
			authorization.RequireAgent(),
			config.RequestHandler.Delete)
	}
}
