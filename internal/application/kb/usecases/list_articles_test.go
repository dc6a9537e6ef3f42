package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsdesk-inc/opsdesk/internal/domain/category"
	"github.com/opsdesk-inc/opsdesk/internal/domain/kb"
)

func TestListArticles(t *testing.T) {
	t.Run("applies pagination defaults", func(t *testing.T) {
		var captured kb.Filter
		kbRepo := &mockKBRepository{
			ListFunc: func(ctx context.Context, filter kb.Filter) ([]*kb.Article, int64, error) {
				captured = filter
				return nil, 0, nil
			},
		}
		uc := NewListArticlesUseCase(kbRepo, &mockCategoryRepository{}, &mockLogger{})

		_, err := uc.Execute(context.Background(), ListArticlesQuery{})
		require.NoError(t, err)

		assert.Equal(t, 1, captured.Page)
		assert.Equal(t, defaultPageSize, captured.PageSize)
	})

	t.Run("resolves category names", func(t *testing.T) {
		catID := uint(3)
		stored := storedArticle(t, 9)
		stored.SetCategory(&catID)

		kbRepo := &mockKBRepository{
			ListFunc: func(ctx context.Context, filter kb.Filter) ([]*kb.Article, int64, error) {
				return []*kb.Article{stored}, 1, nil
			},
		}
		categoryRepo := &mockCategoryRepository{
			ListFunc: func(ctx context.Context) ([]*category.Category, error) {
				return []*category.Category{
					category.ReconstructCategory(3, "Network / VPN", "", testTime()),
				}, nil
			},
		}
		uc := NewListArticlesUseCase(kbRepo, categoryRepo, &mockLogger{})

		result, err := uc.Execute(context.Background(), ListArticlesQuery{})
		require.NoError(t, err)

		require.Len(t, result.Articles, 1)
		require.NotNil(t, result.Articles[0].CategoryName)
		assert.Equal(t, "Network / VPN", *result.Articles[0].CategoryName)
		assert.Equal(t, int64(1), result.Total)
	})
}
