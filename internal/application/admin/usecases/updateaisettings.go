package usecases

import (
	"context"

	"github.com/opsdesk-inc/opsdesk/internal/domain/aisettings"
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/ai"
	"github.com/opsdesk-inc/opsdesk/internal/shared/errors"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
)

type UpdateAISettingsCommand struct {
	Provider              *string
	APIKey                *string
	ModelName             *string
	Temperature           *float64
	MaxTokens             *int
	ClassifyEnabled       *bool
	DraftReplyEnabled     *bool
	SummarizeEnabled      *bool
	ImproveArticleEnabled *bool
}

type UpdateAISettingsUseCase struct {
	settingsRepo aisettings.Repository
	aiClient     ai.Client
	logger       logger.Interface
}

func NewUpdateAISettingsUseCase(
	settingsRepo aisettings.Repository,
	aiClient ai.Client,
	logger logger.Interface,
) *UpdateAISettingsUseCase {
	return &UpdateAISettingsUseCase{
		settingsRepo: settingsRepo,
		aiClient:     aiClient,
		logger:       logger,
	}
}

// Execute applies a partial settings patch and reloads the AI client so the
// next AI call runs with the new configuration.
func (uc *UpdateAISettingsUseCase) Execute(ctx context.Context, cmd UpdateAISettingsCommand) (*AISettingsView, error) {
	settings, err := uc.settingsRepo.Load(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load AI settings", "error", err)
		return nil, err
	}

	if cmd.Provider != nil {
		if err := settings.SetProvider(*cmd.Provider); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.APIKey != nil {
		settings.SetAPIKey(*cmd.APIKey)
	}
	if cmd.ModelName != nil {
		if err := settings.SetModelName(*cmd.ModelName); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Temperature != nil {
		if err := settings.SetTemperature(*cmd.Temperature); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.MaxTokens != nil {
		if err := settings.SetMaxTokens(*cmd.MaxTokens); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.ClassifyEnabled != nil {
		settings.SetClassifyEnabled(*cmd.ClassifyEnabled)
	}
	if cmd.DraftReplyEnabled != nil {
		settings.SetDraftReplyEnabled(*cmd.DraftReplyEnabled)
	}
	if cmd.SummarizeEnabled != nil {
		settings.SetSummarizeEnabled(*cmd.SummarizeEnabled)
	}
	if cmd.ImproveArticleEnabled != nil {
		settings.SetImproveArticleEnabled(*cmd.ImproveArticleEnabled)
	}

	if err := uc.settingsRepo.Update(ctx, settings); err != nil {
		uc.logger.Errorw("failed to update AI settings", "error", err)
		return nil, err
	}

	if err := uc.aiClient.Reload(ctx); err != nil {
		uc.logger.Warnw("AI client reload failed, stale settings may be in use", "error", err)
	}

	uc.logger.Infow("AI settings updated", "provider", settings.Provider(), "model", settings.ModelName())

	return viewFromSettings(settings), nil
}
