package routes

import (
	"github.com/gin-gonic/gin"

	kbhandlers "github.com/opsdesk-inc/opsdesk/internal/interfaces/http/handlers/kb"
	"github.com/opsdesk-inc/opsdesk/internal/interfaces/http/middleware"
	"github.com/opsdesk-inc/opsdesk/internal/shared/authorization"
)

type KBRouteConfig struct {
	KBHandler      *kbhandlers.Handler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupKBRoutes(api *gin.RouterGroup, config *KBRouteConfig) {
	kb := api.Group("/kb")
	kb.Use(config.AuthMiddleware.RequireAuth())
	{
		kb.POST("",
			authorization.RequireAgent(),
			config.KBHandler.Create)
		kb.GET("",
			config.KBHandler.List)

		kb.POST("/from-request",
			authorization.RequireAgent(),
			config.KBHandler.CreateFromRequest)
		kb.GET("/search/:query",
			config.KBHandler.Search)

		kb.GET("/:id",
			config.KBHandler.Get)
		kb.PUT("/:id",
			authorization.RequireAgent(),
			config.KBHandler.Update)
		kb.DELETE("/:id",
			authorization.RequireAgent(),
			config.KBHandler.Delete)
	}
}
