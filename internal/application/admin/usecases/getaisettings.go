package usecases

import (
	"context"
	"time"

	"github.com/opsdesk-inc/opsdesk/internal/domain/aisettings"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
)

// AISettingsView is what admins see. The API key never leaves the server,
// only whether one is set.
type AISettingsView struct {
	Provider              string    `json:"provider"`
	HasAPIKey             bool      `json:"has_api_key"`
	ModelName             string    `json:"model_name"`
	Temperature           float64   `json:"temperature"`
	MaxTokens             int       `json:"max_tokens"`
	ClassifyEnabled       bool      `json:"classify_enabled"`
	DraftReplyEnabled     bool      `json:"draft_reply_enabled"`
	SummarizeEnabled      bool      `json:"summarize_enabled"`
	ImproveArticleEnabled bool      `json:"improve_article_enabled"`
	UpdatedAt             time.Time `json:"updated_at"`
}

func viewFromSettings(settings *aisettings.Settings) *AISettingsView {
	return &AISettingsView{
		Provider:              settings.Provider(),
		HasAPIKey:             settings.HasAPIKey(),
		ModelName:             settings.ModelName(),
		Temperature:           settings.Temperature(),
		MaxTokens:             settings.MaxTokens(),
		ClassifyEnabled:       settings.ClassifyEnabled(),
		DraftReplyEnabled:     settings.DraftReplyEnabled(),
		SummarizeEnabled:      settings.SummarizeEnabled(),
		ImproveArticleEnabled: settings.ImproveArticleEnabled(),
		UpdatedAt:             settings.UpdatedAt(),
	}
}

type GetAISettingsUseCase struct {
	settingsRepo aisettings.Repository
	logger       logger.Interface
}

func NewGetAISettingsUseCase(
	settingsRepo aisettings.Repository,
	logger logger.Interface,
) *GetAISettingsUseCase {
	return &GetAISettingsUseCase{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

func (uc *GetAISettingsUseCase) Execute(ctx context.Context) (*AISettingsView, error) {
	settings, err := uc.settingsRepo.Load(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load AI settings", "error", err)
		return nil, err
	}
	return viewFromSettings(settings), nil
}
