package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsdesk-inc/opsdesk/internal/domain/aisettings"
)

func TestAISettingsRepository_Load(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAISettingsRepository(db)
	ctx := context.Background()

	t.Run("seeds defaults on first load", func(t *testing.T) {
		settings, err := repo.Load(ctx)
		require.NoError(t, err)
		require.NotNil(t, settings)

		defaults := aisettings.DefaultSettings()
		assert.NotZero(t, settings.ID())
		assert.Equal(t, defaults.Provider(), settings.Provider())
		assert.Equal(t, defaults.ModelName(), settings.ModelName())
		assert.False(t, settings.HasAPIKey())
	})

	t.Run("second load returns the same row", func(t *testing.T) {
		first, err := repo.Load(ctx)
		require.NoError(t, err)

		second, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, first.ID(), second.ID())

		var count int64
		require.NoError(t, db.Table("ai_settings").Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})
}

func TestAISettingsRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAISettingsRepository(db)
	ctx := context.Background()

	settings, err := repo.Load(ctx)
	require.NoError(t, err)

	settings.SetAPIKey("sk-test-key")
	require.NoError(t, settings.SetModelName("gpt-4o-mini"))
	require.NoError(t, settings.SetTemperature(0.2))
	settings.SetClassifyEnabled(false)

	err = repo.Update(ctx, settings)
	require.NoError(t, err)

	reloaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.True(t, reloaded.HasAPIKey())
	assert.Equal(t, "gpt-4o-mini", reloaded.ModelName())
	assert.InDelta(t, 0.2, reloaded.Temperature(), 0.0001)
	assert.False(t, reloaded.ClassifyEnabled())
	assert.True(t, reloaded.DraftReplyEnabled())
}
