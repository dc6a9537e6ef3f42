package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/opsdesk-inc/opsdesk/internal/interfaces/http/handlers"
	"github.com/opsdesk-inc/opsdesk/internal/interfaces/http/middleware"
	"github.com/opsdesk-inc/opsdesk/internal/shared/authorization"
)

type CategoryRouteConfig struct {
	CategoryHandler *handlers.CategoryHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

func SetupCategoryRoutes(api *gin.RouterGroup, config *CategoryRouteConfig) {
	categories := api.Group("/categories")
	categories.Use(config.AuthMiddleware.RequireAuth())
	{
		categories.GET("", config.CategoryHandler.List)
		categories.POST("",
			authorization.RequireAdmin(),
			config.CategoryHandler.Create)
		categories.DELETE("/:id",
			authorization.RequireAdmin(),
			config.CategoryHandler.Delete)
	}
}
