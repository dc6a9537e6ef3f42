package kb

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/opsdesk-inc/opsdesk/internal/application/kb/usecases"
	"github.com/opsdesk-inc/opsdesk/internal/shared/authorization"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
	"github.com/opsdesk-inc/opsdesk/internal/shared/utils"
)

type Handler struct {
	createArticleUC     usecases.CreateArticleExecutor
	createFromRequestUC usecases.CreateFromRequestExecutor
	updateArticleUC     usecases.UpdateArticleExecutor
	deleteArticleUC     usecases.DeleteArticleExecutor
	getArticleUC        usecases.GetArticleExecutor
	listArticlesUC      usecases.ListArticlesExecutor
	searchArticlesUC    usecases.SearchArticlesExecutor
	logger              logger.Interface
}

func NewHandler(
	createArticleUC usecases.CreateArticleExecutor,
	createFromRequestUC usecases.CreateFromRequestExecutor,
	updateArticleUC usecases.UpdateArticleExecutor,
	deleteArticleUC usecases.DeleteArticleExecutor,
	getArticleUC usecases.GetArticleExecutor,
	listArticlesUC usecases.ListArticlesExecutor,
	searchArticlesUC usecases.SearchArticlesExecutor,
) *Handler {
	return &Handler{
		createArticleUC:     createArticleUC,
		createFromRequestUC: createFromRequestUC,
		updateArticleUC:     updateArticleUC,
		deleteArticleUC:     deleteArticleUC,
		getArticleUC:        getArticleUC,
		listArticlesUC:      listArticlesUC,
		searchArticlesUC:    searchArticlesUC,
		logger:              logger.NewLogger(),
	}
}

// Create handles POST /api/kb
func (h *Handler) Create(c *gin.Context) {
	var body CreateArticleBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.logger.Warnw("invalid request body for create KB article", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := body.ToCommand(authorization.UserIDFromContext(c))

	result, err := h.createArticleUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "KB article created successfully")
}

// CreateFromRequest handles POST /api/kb/from-request
func (h *Handler) CreateFromRequest(c *gin.Context) {
	var body CreateFromRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.logger.Warnw("invalid request body for create KB article from request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := usecases.CreateFromRequestCommand{
		RequestID: body.RequestID,
		CreatedBy: authorization.UserIDFromContext(c),
	}

	result, err := h.createFromRequestUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "KB article created from request successfully")
}

// Get handles GET /api/kb/:id
func (h *Handler) Get(c *gin.Context) {
	articleID, err := utils.ParseIDParam(c, "id", "KB article")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getArticleUC.Execute(c.Request.Context(), usecases.GetArticleQuery{ArticleID: articleID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// List handles GET /api/kb
func (h *Handler) List(c *gin.Context) {
	params, err := parseListArticlesParams(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listArticlesUC.Execute(c.Request.Context(), params.ToQuery())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Articles, result.Total, result.Page, result.PageSize)
}

// Search handles GET /api/kb/search/:query
func (h *Handler) Search(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	query := usecases.SearchArticlesQuery{
		Query: c.Param("query"),
		Limit: limit,
	}

	result, err := h.searchArticlesUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Update handles PUT /api/kb/:id
func (h *Handler) Update(c *gin.Context) {
	articleID, err := utils.ParseIDParam(c, "id", "KB article")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var body UpdateArticleBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.logger.Warnw("invalid request body for update KB article", "article_id", articleID, "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.updateArticleUC.Execute(c.Request.Context(), body.ToCommand(articleID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "KB article updated successfully", result)
}

// Delete handles DELETE /api/kb/:id
func (h *Handler) Delete(c *gin.Context) {
	articleID, err := utils.ParseIDParam(c, "id", "KB article")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if _, err := h.deleteArticleUC.Execute(c.Request.Context(), usecases.DeleteArticleCommand{ArticleID: articleID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
