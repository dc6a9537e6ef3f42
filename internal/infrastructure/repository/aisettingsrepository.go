package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/opsdesk-inc/opsdesk/internal/domain/aisettings"
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/persistence/mappers"
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/persistence/models"
	db "github.com/opsdesk-inc/opsdesk/internal/shared/db"
)

type AISettingsRepository struct {
	db     *gorm.DB
	mapper mappers.AISettingsMapper
}

func NewAISettingsRepository(gdb *gorm.DB) *AISettingsRepository {
	return &AISettingsRepository{
		db:     gdb,
		mapper: mappers.NewAISettingsMapper(),
	}
}

// Load returns the singleton settings row, seeding the default row the
// first time it is asked for.
func (r *AISettingsRepository) Load(ctx context.Context) (*aisettings.Settings, error) {
	var model models.AISettingsModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		defaults := aisettings.DefaultSettings()
		seed := r.mapper.ToModel(defaults)
		if createErr := tx.Create(seed).Error; createErr != nil {
			return nil, fmt.Errorf("failed to seed AI settings: %w", createErr)
		}
		return r.mapper.ToDomain(seed), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load AI settings: %w", err)
	}

	return r.mapper.ToDomain(&model), nil
}

func (r *AISettingsRepository) Update(ctx context.Context, settings *aisettings.Settings) error {
	model := r.mapper.ToModel(settings)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.AISettingsModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"provider":                model.Provider,
			"api_key":                 model.APIKey,
			"model_name":              model.ModelName,
			"temperature":             model.Temperature,
			"max_tokens":              model.MaxTokens,
			"classify_enabled":        model.ClassifyEnabled,
			"draft_reply_enabled":     model.DraftReplyEnabled,
			"summarize_enabled":       model.SummarizeEnabled,
			"improve_article_enabled": model.ImproveArticleEnabled,
			"updated_at":              model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update AI settings: %w", result.Error)
	}

	return nil
}
