package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsdesk-inc/opsdesk/internal/domain/category"
	"github.com/opsdesk-inc/opsdesk/internal/domain/request"
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/ai"
	"github.com/opsdesk-inc/opsdesk/internal/shared/errors"
)

func TestDailySummary(t *testing.T) {
	t.Run("summarizes the day's requests", func(t *testing.T) {
		catID := uint(3)
		repo := &mockRequestRepository{
			ListCreatedBetweenFunc: func(ctx context.Context, from, to time.Time) ([]*request.Request, error) {
				return []*request.Request{storedRequest(t, 1, &catID)}, nil
			},
		}
		categoryRepo := &mockCategoryRepository{
			ListFunc: func(ctx context.Context) ([]*category.Category, error) {
				return []*category.Category{
					category.ReconstructCategory(3, "Network / VPN", "", testTime()),
				}, nil
			},
		}
		aiClient := &mockAIClient{
			SummarizeFunc: func(ctx context.Context, date string, entries []ai.SummaryEntry) (string, error) {
				assert.Equal(t, "2025-06-01", date)
				require.Len(t, entries, 1)
				assert.Equal(t, "Network / VPN", entries[0].CategoryName)
				return "One VPN issue was reported.", nil
			},
		}
		uc := NewDailySummaryUseCase(repo, categoryRepo, aiClient, &mockLogger{})

		result, err := uc.Execute(context.Background(), DailySummaryQuery{Date: "2025-06-01"})
		require.NoError(t, err)

		assert.Equal(t, 1, result.RequestCount)
		assert.Equal(t, "One VPN issue was reported.", result.Summary)
	})

	t.Run("rejects malformed dates", func(t *testing.T) {
		uc := NewDailySummaryUseCase(&mockRequestRepository{}, &mockCategoryRepository{}, &mockAIClient{}, &mockLogger{})

		_, err := uc.Execute(context.Background(), DailySummaryQuery{Date: "June 1st"})
		require.Error(t, err)
		assert.True(t, errors.IsValidation(err))
	})

	t.Run("empty day skips the AI call", func(t *testing.T) {
		aiCalled := false
		aiClient := &mockAIClient{
			SummarizeFunc: func(ctx context.Context, date string, entries []ai.SummaryEntry) (string, error) {
				aiCalled = true
				return "", nil
			},
		}
		uc := NewDailySummaryUseCase(&mockRequestRepository{}, &mockCategoryRepository{}, aiClient, &mockLogger{})

		result, err := uc.Execute(context.Background(), DailySummaryQuery{Date: "2025-06-01"})
		require.NoError(t, err)

		assert.False(t, aiCalled)
		assert.Equal(t, 0, result.RequestCount)
		assert.NotEmpty(t, result.Summary)
	})

	t.Run("AI failure is surfaced typed", func(t *testing.T) {
		repo := &mockRequestRepository{
			ListCreatedBetweenFunc: func(ctx context.Context, from, to time.Time) ([]*request.Request, error) {
				return []*request.Request{storedRequest(t, 1, nil)}, nil
			},
		}
		aiClient := &mockAIClient{
			SummarizeFunc: func(ctx context.Context, date string, entries []ai.SummaryEntry) (string, error) {
				return "", errors.NewAIRateLimitedError("AI provider rate limit exceeded")
			},
		}
		uc := NewDailySummaryUseCase(repo, &mockCategoryRepository{}, aiClient, &mockLogger{})

		_, err := uc.Execute(context.Background(), DailySummaryQuery{Date: "2025-06-01"})
		require.Error(t, err)
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrorTypeAIRateLimited, appErr.Type)
	})
}
