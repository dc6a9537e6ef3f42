package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsdesk-inc/opsdesk/internal/domain/kb"
	"github.com/opsdesk-inc/opsdesk/internal/shared/errors"
)

func TestSearchArticles(t *testing.T) {
	t.Run("trims the query before searching", func(t *testing.T) {
		var searchedFor string
		kbRepo := &mockKBRepository{
			SearchFunc: func(ctx context.Context, query string, limit int) ([]*kb.Article, error) {
				searchedFor = query
				return []*kb.Article{storedArticle(t, 9)}, nil
			},
		}
		uc := NewSearchArticlesUseCase(kbRepo, &mockLogger{})

		result, err := uc.Execute(context.Background(), SearchArticlesQuery{Query: "  vpn  "})
		require.NoError(t, err)

		assert.Equal(t, "vpn", searchedFor)
		assert.Equal(t, "vpn", result.Query)
		require.Len(t, result.Articles, 1)
		assert.Equal(t, uint(9), result.Articles[0].ID)
	})

	t.Run("rejects a blank query", func(t *testing.T) {
		uc := NewSearchArticlesUseCase(&mockKBRepository{}, &mockLogger{})

		_, err := uc.Execute(context.Background(), SearchArticlesQuery{Query: "   "})
		require.Error(t, err)
		assert.True(t, errors.IsValidation(err))
	})

	t.Run("no matches yields an empty list", func(t *testing.T) {
		kbRepo := &mockKBRepository{
			SearchFunc: func(ctx context.Context, query string, limit int) ([]*kb.Article, error) {
				return nil, nil
			},
		}
		uc := NewSearchArticlesUseCase(kbRepo, &mockLogger{})

		result, err := uc.Execute(context.Background(), SearchArticlesQuery{Query: "printer"})
		require.NoError(t, err)
		assert.Empty(t, result.Articles)
	})
}
