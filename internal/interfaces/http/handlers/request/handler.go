package request

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/opsdesk-inc/opsdesk/internal/application/request/usecases"
	"github.com/opsdesk-inc/opsdesk/internal/shared/authorization"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
	"github.com/opsdesk-inc/opsdesk/internal/shared/utils"
)

type Handler struct {
	createRequestUC usecases.CreateRequestExecutor
	updateRequestUC usecases.UpdateRequestExecutor
	getRequestUC    usecases.GetRequestExecutor
	listRequestsUC  usecases.ListRequestsExecutor
	deleteRequestUC usecases.DeleteRequestExecutor
	generateReplyUC usecases.GenerateReplyExecutor
	recategorizeUC  usecases.RecategorizeExecutor
	logger          logger.Interface
}

func NewHandler(
	createRequestUC usecases.CreateRequestExecutor,
	updateRequestUC usecases.UpdateRequestExecutor,
	getRequestUC usecases.GetRequestExecutor,
	listRequestsUC usecases.ListRequestsExecutor,
	deleteRequestUC usecases.DeleteRequestExecutor,
	generateReplyUC usecases.GenerateReplyExecutor,
	recategorizeUC usecases.RecategorizeExecutor,
) *Handler {
	return &Handler{
		createRequestUC: createRequestUC,
		updateRequestUC: updateRequestUC,
		getRequestUC:    getRequestUC,
		listRequestsUC:  listRequestsUC,
		deleteRequestUC: deleteRequestUC,
		generateReplyUC: generateReplyUC,
		recategorizeUC:  recategorizeUC,
		logger:          logger.NewLogger(),
	}
}

// Create handles POST /api/requests
func (h *Handler) Create(c *gin.Context) {
	var body CreateRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.logger.Warnw("invalid request body for create support request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := body.ToCommand(authorization.UserIDFromContext(c))

	result, err := h.createRequestUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Support request created successfully")
}

// Get handles GET /api/requests/:id
func (h *Handler) Get(c *gin.Context) {
	requestID, err := utils.ParseIDParam(c, "id", "request")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getRequestUC.Execute(c.Request.Context(), usecases.GetRequestQuery{RequestID: requestID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// List handles GET /api/requests
func (h *Handler) List(c *gin.Context) {
	params, err := parseListRequestsParams(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listRequestsUC.Execute(c.Request.Context(), params.ToQuery())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Requests, result.Total, result.Page, result.PageSize)
}

// Update handles PUT /api/requests/:id
func (h *Handler) Update(c *gin.Context) {
	requestID, err := utils.ParseIDParam(c, "id", "request")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var body UpdateRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.logger.Warnw("invalid request body for update support request", "request_id", requestID, "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := body.ToCommand(requestID, authorization.UserIDFromContext(c))

	result, err := h.updateRequestUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Support request updated successfully", result)
}

// Delete handles DELETE /api/requests/:id
func (h *Handler) Delete(c *gin.Context) {
	requestID, err := utils.ParseIDParam(c, "id", "request")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.deleteRequestUC.Execute(c.Request.Context(), usecases.DeleteRequestCommand{RequestID: requestID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	// The deleted identity comes back so clients can confirm what went away.
	utils.SuccessResponse(c, http.StatusOK, "Support request deleted successfully", result)
}

// GenerateReply handles POST /api/requests/:id/generate-reply
func (h *Handler) GenerateReply(c *gin.Context) {
	requestID, err := utils.ParseIDParam(c, "id", "request")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.generateReplyUC.Execute(c.Request.Context(), usecases.GenerateReplyCommand{RequestID: requestID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Reply generated successfully", result)
}

// Recategorize handles POST /api/requests/:id/recategorize
func (h *Handler) Recategorize(c *gin.Context) {
	requestID, err := utils.ParseIDParam(c, "id", "request")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.recategorizeUC.Execute(c.Request.Context(), usecases.RecategorizeCommand{RequestID: requestID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Support request recategorized successfully", result)
}
