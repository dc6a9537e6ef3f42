package routes

import (
	"github.com/gin-gonic/gin"

	dashboardhandlers "github.com/opsdesk-inc/opsdesk/internal/interfaces/http/handlers/dashboard"
	"github.com/opsdesk-inc/opsdesk/internal/interfaces/http/middleware"
)

type DashboardRouteConfig struct {
	DashboardHandler *dashboardhandlers.Handler
	AuthMiddleware   *middleware.AuthMiddleware
}

func SetupDashboardRoutes(api *gin.RouterGroup, config *DashboardRouteConfig) {
	dashboard := api.Group("/dashboard")
	dashboard.Use(config.AuthMiddleware.RequireAuth())
	{
		dashboard.GET("/metrics", config.DashboardHandler.GetMetrics)
		dashboard.GET("/categories", config.DashboardHandler.GetCategoryBreakdown)
		dashboard.GET("/daily-summary/:date", config.DashboardHandler.GetDailySummary)
	}
}
