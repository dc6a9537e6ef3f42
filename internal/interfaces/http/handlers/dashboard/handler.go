package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/opsdesk-inc/opsdesk/internal/application/dashboard/usecases"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
	"github.com/opsdesk-inc/opsdesk/internal/shared/utils"
)

type Handler struct {
	getMetricsUC        usecases.GetMetricsExecutor
	categoryBreakdownUC usecases.CategoryBreakdownExecutor
	dailySummaryUC      usecases.DailySummaryExecutor
	logger              logger.Interface
}

func NewHandler(
	getMetricsUC usecases.GetMetricsExecutor,
	categoryBreakdownUC usecases.CategoryBreakdownExecutor,
	dailySummaryUC usecases.DailySummaryExecutor,
) *Handler {
	return &Handler{
		getMetricsUC:        getMetricsUC,
		categoryBreakdownUC: categoryBreakdownUC,
		dailySummaryUC:      dailySummaryUC,
		logger:              logger.NewLogger(),
	}
}

// GetMetrics handles GET /api/dashboard/metrics
func (h *Handler) GetMetrics(c *gin.Context) {
	result, err := h.getMetricsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetCategoryBreakdown handles GET /api/dashboard/categories
func (h *Handler) GetCategoryBreakdown(c *gin.Context) {
	result, err := h.categoryBreakdownUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetDailySummary handles GET /api/dashboard/daily-summary/:date
func (h *Handler) GetDailySummary(c *gin.Context) {
	query := usecases.DailySummaryQuery{Date: c.Param("date")}

	result, err := h.dailySummaryUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
