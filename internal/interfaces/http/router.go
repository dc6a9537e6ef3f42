package http

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	adminusecases "github.com/opsdesk-inc/opsdesk/internal/application/admin/usecases"
	categoryusecases "github.com/opsdesk-inc/opsdesk/internal/application/category/usecases"
	dashboardusecases "github.com/opsdesk-inc/opsdesk/internal/application/dashboard/usecases"
	identityusecases "github.com/opsdesk-inc/opsdesk/internal/application/identity/usecases"
	kbusecases "github.com/opsdesk-inc/opsdesk/internal/application/kb/usecases"
	requestusecases "github.com/opsdesk-inc/opsdesk/internal/application/request/usecases"
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/ai"
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/auth"
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/config"
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/repository"
	"github.com/opsdesk-inc/opsdesk/internal/interfaces/http/handlers"
	adminhandlers "github.com/opsdesk-inc/opsdesk/internal/interfaces/http/handlers/admin"
	dashboardhandlers "github.com/opsdesk-inc/opsdesk/internal/interfaces/http/handlers/dashboard"
	kbhandlers "github.com/opsdesk-inc/opsdesk/internal/interfaces/http/handlers/kb"
	requesthandlers "github.com/opsdesk-inc/opsdesk/internal/interfaces/http/handlers/request"
	"github.com/opsdesk-inc/opsdesk/internal/interfaces/http/middleware"
	"github.com/opsdesk-inc/opsdesk/internal/interfaces/http/routes"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
	"github.com/opsdesk-inc/opsdesk/internal/shared/services/markdown"
)

// Router wires repositories, use cases and handlers into a Gin engine.
type Router struct {
	engine   *gin.Engine
	aiClient ai.Client
}

// NewRouter creates the HTTP router with all dependencies wired.
func NewRouter(cfg *config.Config, db *gorm.DB, log logger.Interface) *Router {
	engine := gin.New()

	requestRepo := repository.NewSupportRequestRepository(db)
	kbRepo := repository.NewKBArticleRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	userRepo := repository.NewUserRepository(db)
	settingsRepo := repository.NewAISettingsRepository(db)

	aiClient := ai.NewOpenAIClient(settingsRepo, cfg.AI, log)
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	markdownService := markdown.NewService()

	createRequestUC := requestusecases.NewCreateRequestUseCase(requestRepo, categoryRepo, aiClient, log)
	updateRequestUC := requestusecases.NewUpdateRequestUseCase(requestRepo, kbRepo, log)
	getRequestUC := requestusecases.NewGetRequestUseCase(requestRepo, categoryRepo, log)
	listRequestsUC := requestusecases.NewListRequestsUseCase(requestRepo, categoryRepo, log)
	deleteRequestUC := requestusecases.NewDeleteRequestUseCase(requestRepo, log)
	generateReplyUC := requestusecases.NewGenerateReplyUseCase(requestRepo, categoryRepo, aiClient, log)
	recategorizeUC := requestusecases.NewRecategorizeUseCase(requestRepo, categoryRepo, aiClient, log)

	createArticleUC := kbusecases.NewCreateArticleUseCase(kbRepo, aiClient, log)
	createFromRequestUC := kbusecases.NewCreateFromRequestUseCase(kbRepo, requestRepo, log)
	updateArticleUC := kbusecases.NewUpdateArticleUseCase(kbRepo, log)
	deleteArticleUC := kbusecases.NewDeleteArticleUseCase(kbRepo, log)
	getArticleUC := kbusecases.NewGetArticleUseCase(kbRepo, categoryRepo, markdownService, log)
	listArticlesUC := kbusecases.NewListArticlesUseCase(kbRepo, categoryRepo, log)
	searchArticlesUC := kbusecases.NewSearchArticlesUseCase(kbRepo, log)

	getMetricsUC := dashboardusecases.NewGetMetricsUseCase(requestRepo, log)
	categoryBreakdownUC := dashboardusecases.NewCategoryBreakdownUseCase(requestRepo, categoryRepo, log)
	dailySummaryUC := dashboardusecases.NewDailySummaryUseCase(requestRepo, categoryRepo, aiClient, log)

	getAISettingsUC := adminusecases.NewGetAISettingsUseCase(settingsRepo, log)
	updateAISettingsUC := adminusecases.NewUpdateAISettingsUseCase(settingsRepo, aiClient, log)

	listCategoriesUC := categoryusecases.NewListCategoriesUseCase(categoryRepo, log)
	createCategoryUC := categoryusecases.NewCreateCategoryUseCase(categoryRepo, log)
	deleteCategoryUC := categoryusecases.NewDeleteCategoryUseCase(categoryRepo, log)

	loginUC := identityusecases.NewLoginUseCase(userRepo, hasher, jwtService, log)

	requestHandler := requesthandlers.NewHandler(
		createRequestUC, updateRequestUC, getRequestUC, listRequestsUC,
		deleteRequestUC, generateReplyUC, recategorizeUC,
	)
	kbHandler := kbhandlers.NewHandler(
		createArticleUC, createFromRequestUC, updateArticleUC,
		deleteArticleUC, getArticleUC, listArticlesUC, searchArticlesUC,
	)
	dashboardHandler := dashboardhandlers.NewHandler(getMetricsUC, categoryBreakdownUC, dailySummaryUC)
	adminHandler := adminhandlers.NewHandler(getAISettingsUC, updateAISettingsUC)
	categoryHandler := handlers.NewCategoryHandler(listCategoriesUC, createCategoryUC, deleteCategoryUC)
	authHandler := handlers.NewAuthHandler(loginUC)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)

	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := engine.Group("/api")

	routes.SetupAuthRoutes(api, &routes.AuthRouteConfig{
		AuthHandler: authHandler,
	})
	routes.SetupRequestRoutes(api, &routes.RequestRouteConfig{
		RequestHandler: requestHandler,
		AuthMiddleware: authMiddleware,
	})
	routes.SetupKBRoutes(api, &routes.KBRouteConfig{
		KBHandler:      kbHandler,
		AuthMiddleware: authMiddleware,
	})
	routes.SetupDashboardRoutes(api, &routes.DashboardRouteConfig{
		DashboardHandler: dashboardHandler,
		AuthMiddleware:   authMiddleware,
	})
	routes.SetupAdminRoutes(api, &routes.AdminRouteConfig{
		AdminHandler:   adminHandler,
		AuthMiddleware: authMiddleware,
	})
	routes.SetupCategoryRoutes(api, &routes.CategoryRouteConfig{
		CategoryHandler: categoryHandler,
		AuthMiddleware:  authMiddleware,
	})

	return &Router{
		engine:   engine,
		aiClient: aiClient,
	}
}

// AIClient exposes the wired AI client so startup code can warm its settings.
func (r *Router) AIClient() ai.Client {
	return r.aiClient
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
