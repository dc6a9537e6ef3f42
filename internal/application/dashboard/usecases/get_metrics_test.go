package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsdesk-inc/opsdesk/internal/domain/request"
	vo "github.com/opsdesk-inc/opsdesk/internal/domain/request/valueobjects"
)

func TestGetMetrics(t *testing.T) {
	t.Run("assembles counts and recent requests", func(t *testing.T) {
		var recentLimit int
		repo := &mockRequestRepository{
			CountTotalFunc: func(ctx context.Context) (int64, error) {
				return 42, nil
			},
			CountCreatedBetweenFunc: func(ctx context.Context, from, to time.Time) (int64, error) {
				assert.True(t, from.Before(to))
				return 3, nil
			},
			CountByStatusFunc: func(ctx context.Context) (map[vo.Status]int64, error) {
				return map[vo.Status]int64{
					vo.StatusOpen:   30,
					vo.StatusClosed: 12,
				}, nil
			},
			ListRecentFunc: func(ctx context.Context, limit int) ([]*request.Request, error) {
				recentLimit = limit
				return []*request.Request{storedRequest(t, 1, nil)}, nil
			},
		}
		uc := NewGetMetricsUseCase(repo, &mockLogger{})

		result, err := uc.Execute(context.Background())
		require.NoError(t, err)

		assert.Equal(t, int64(42), result.TotalRequests)
		assert.Equal(t, int64(3), result.TodayRequests)
		assert.Equal(t, int64(30), result.StatusCounts["open"])
		assert.Equal(t, int64(12), result.StatusCounts["closed"])
		// Statuses with no rows still appear.
		assert.Equal(t, int64(0), result.StatusCounts["in_progress"])
		assert.Equal(t, recentRequestsLimit, recentLimit)
		require.Len(t, result.RecentRequests, 1)
		assert.Equal(t, "Alice", result.RecentRequests[0].RequesterName)
	})

	t.Run("count failure is returned", func(t *testing.T) {
		repo := &mockRequestRepository{
			CountTotalFunc: func(ctx context.Context) (int64, error) {
				return 0, assert.AnError
			},
		}
		uc := NewGetMetricsUseCase(repo, &mockLogger{})

		_, err := uc.Execute(context.Background())
		assert.Error(t, err)
	})
}
