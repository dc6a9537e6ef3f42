package mappers

import (
	"github.com/opsdesk-inc/opsdesk/internal/domain/aisettings"
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/persistence/models"
)

type AISettingsMapper interface {
	ToModel(settings *aisettings.Settings) *models.AISettingsModel
	ToDomain(model *models.AISettingsModel) *aisettings.Settings
}

type AISettingsMapperImpl struct{}

func NewAISettingsMapper() AISettingsMapper {
	return &AISettingsMapperImpl{}
}

func (m *AISettingsMapperImpl) ToModel(settings *aisettings.Settings) *models.AISettingsModel {
	return &models.AISettingsModel{
		ID:                    settings.ID(),
		Provider:              settings.Provider(),
		APIKey:                settings.APIKey(),
		ModelName:             settings.ModelName(),
		Temperature:           settings.Temperature(),
		MaxTokens:             settings.MaxTokens(),
		ClassifyEnabled:       settings.ClassifyEnabled(),
		DraftReplyEnabled:     settings.DraftReplyEnabled(),
		SummarizeEnabled:      settings.SummarizeEnabled(),
		ImproveArticleEnabled: settings.ImproveArticleEnabled(),
		UpdatedAt:             settings.UpdatedAt().UnixMilli(),
	}
}

func (m *AISettingsMapperImpl) ToDomain(model *models.AISettingsModel) *aisettings.Settings {
	return aisettings.ReconstructSettings(
		model.ID,
		model.Provider,
		model.APIKey,
		model.ModelName,
		model.Temperature,
		model.MaxTokens,
		model.ClassifyEnabled,
		model.DraftReplyEnabled,
		model.SummarizeEnabled,
		model.ImproveArticleEnabled,
		millisToTime(model.UpdatedAt),
	)
}
