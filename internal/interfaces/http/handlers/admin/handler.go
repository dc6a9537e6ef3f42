package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/opsdesk-inc/opsdesk/internal/application/admin/usecases"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
	"github.com/opsdesk-inc/opsdesk/internal/shared/utils"
)

type UpdateAISettingsBody struct {
	Provider              *string  `json:"provider,omitempty"`
	APIKey                *string  `json:"api_key,omitempty"`
	ModelName             *string  `json:"model_name,omitempty"`
	Temperature           *float64 `json:"temperature,omitempty"`
	MaxTokens             *int     `json:"max_tokens,omitempty"`
	ClassifyEnabled       *bool    `json:"classify_enabled,omitempty"`
	DraftReplyEnabled     *bool    `json:"draft_reply_enabled,omitempty"`
	SummarizeEnabled      *bool    `json:"summarize_enabled,omitempty"`
	ImproveArticleEnabled *bool    `json:"improve_article_enabled,omitempty"`
}

func (r *UpdateAISettingsBody) ToCommand() usecases.UpdateAISettingsCommand {
	return usecases.UpdateAISettingsCommand{
		Provider:              r.Provider,
		APIKey:                r.APIKey,
		ModelName:             r.ModelName,
		Temperature:           r.Temperature,
		MaxTokens:             r.MaxTokens,
		ClassifyEnabled:       r.ClassifyEnabled,
		DraftReplyEnabled:     r.DraftReplyEnabled,
		SummarizeEnabled:      r.SummarizeEnabled,
		ImproveArticleEnabled: r.ImproveArticleEnabled,
	}
}

type Handler struct {
	getAISettingsUC    usecases.GetAISettingsExecutor
	updateAISettingsUC usecases.UpdateAISettingsExecutor
	logger             logger.Interface
}

func NewHandler(
	getAISettingsUC usecases.GetAISettingsExecutor,
	updateAISettingsUC usecases.UpdateAISettingsExecutor,
) *Handler {
	return &Handler{
		getAISettingsUC:    getAISettingsUC,
		updateAISettingsUC: updateAISettingsUC,
		logger:             logger.NewLogger(),
	}
}

// GetAISettings handles GET /api/admin/ai-settings
func (h *Handler) GetAISettings(c *gin.Context) {
	result, err := h.getAISettingsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateAISettings handles PUT /api/admin/ai-settings
func (h *Handler) UpdateAISettings(c *gin.Context) {
	var body UpdateAISettingsBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.logger.Warnw("invalid request body for update AI settings", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.updateAISettingsUC.Execute(c.Request.Context(), body.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "AI settings updated successfully", result)
}
