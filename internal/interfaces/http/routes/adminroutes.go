package routes

import (
	"github.com/gin-gonic/gin"

	adminhandlers "github.com/opsdesk-inc/opsdesk/internal/interfaces/http/handlers/admin"
	"github.com/opsdesk-inc/opsdesk/internal/interfaces/http/middleware"
	"github.com/opsdesk-inc/opsdesk/internal/shared/authorization"
)

type AdminRouteConfig struct {
	AdminHandler   *adminhandlers.Handler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupAdminRoutes(api *gin.RouterGroup, config *AdminRouteConfig) {
	admin := api.Group("/admin")
	admin.Use(config.AuthMiddleware.RequireAuth(), authorization.RequireAdmin())
	{
		admin.GET("/ai-settings", config.AdminHandler.GetAISettings)
		admin.PUT("/ai-settings", config.AdminHandler.UpdateAISettings)
	}
}
