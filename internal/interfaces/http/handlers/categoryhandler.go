package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/opsdesk-inc/opsdesk/internal/application/category/usecases"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
	"github.com/opsdesk-inc/opsdesk/internal/shared/utils"
)

type CreateCategoryBody struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description,omitempty" binding:"omitempty,max=500"`
}

type CategoryHandler struct {
	listCategoriesUC usecases.ListCategoriesExecutor
	createCategoryUC usecases.CreateCategoryExecutor
	deleteCategoryUC usecases.DeleteCategoryExecutor
	logger           logger.Interface
}

func NewCategoryHandler(
	listCategoriesUC usecases.ListCategoriesExecutor,
	createCategoryUC usecases.CreateCategoryExecutor,
	deleteCategoryUC usecases.DeleteCategoryExecutor,
) *CategoryHandler {
	return &CategoryHandler{
		listCategoriesUC: listCategoriesUC,
		createCategoryUC: createCategoryUC,
		deleteCategoryUC: deleteCategoryUC,
		logger:           logger.NewLogger(),
	}
}

// List handles GET /api/categories
func (h *CategoryHandler) List(c *gin.Context) {
	result, err := h.listCategoriesUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Create handles POST /api/categories
func (h *CategoryHandler) Create(c *gin.Context) {
	var body CreateCategoryBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.logger.Warnw("invalid request body for create category", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := usecases.CreateCategoryCommand{
		Name:        body.Name,
		Description: body.Description,
	}

	result, err := h.createCategoryUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Category created successfully")
}

// Delete handles DELETE /api/categories/:id
func (h *CategoryHandler) Delete(c *gin.Context) {
	categoryID, err := utils.ParseIDParam(c, "id", "category")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteCategoryUC.Execute(c.Request.Context(), usecases.DeleteCategoryCommand{CategoryID: categoryID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
