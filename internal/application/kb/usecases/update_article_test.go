package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsdesk-inc/opsdesk/internal/domain/kb"
	"github.com/opsdesk-inc/opsdesk/internal/shared/errors"
)

func TestUpdateArticle(t *testing.T) {
	t.Run("updates the provided fields", func(t *testing.T) {
		var updated *kb.Article
		kbRepo := &mockKBRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*kb.Article, error) {
				return storedArticle(t, id), nil
			},
			UpdateFunc: func(ctx context.Context, article *kb.Article) error {
				updated = article
				return nil
			},
		}
		uc := NewUpdateArticleUseCase(kbRepo, &mockLogger{})

		result, err := uc.Execute(context.Background(), UpdateArticleCommand{
			ArticleID:  9,
			Solution:   strPtr("Update the VPN client to the latest version"),
			Confidence: intPtr(5),
		})
		require.NoError(t, err)

		assert.Equal(t, "Update the VPN client to the latest version", result.Solution)
		assert.Equal(t, 5, result.Confidence)
		require.NotNil(t, updated)
		assert.Equal(t, "VPN keeps disconnecting", updated.ProblemSummary())
	})

	t.Run("clears the category", func(t *testing.T) {
		catID := uint(3)
		stored := storedArticle(t, 9)
		stored.SetCategory(&catID)

		var updated *kb.Article
		kbRepo := &mockKBRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*kb.Article, error) {
				return stored, nil
			},
			UpdateFunc: func(ctx context.Context, article *kb.Article) error {
				updated = article
				return nil
			},
		}
		uc := NewUpdateArticleUseCase(kbRepo, &mockLogger{})

		_, err := uc.Execute(context.Background(), UpdateArticleCommand{
			ArticleID:     9,
			ClearCategory: true,
		})
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Nil(t, updated.CategoryID())
	})

	t.Run("rejects out of range confidence", func(t *testing.T) {
		kbRepo := &mockKBRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*kb.Article, error) {
				return storedArticle(t, id), nil
			},
		}
		uc := NewUpdateArticleUseCase(kbRepo, &mockLogger{})

		_, err := uc.Execute(context.Background(), UpdateArticleCommand{
			ArticleID:  9,
			Confidence: intPtr(6),
		})
		require.Error(t, err)
		assert.True(t, errors.IsValidation(err))
	})

	t.Run("empty patch is rejected", func(t *testing.T) {
		kbRepo := &mockKBRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*kb.Article, error) {
				return storedArticle(t, id), nil
			},
		}
		uc := NewUpdateArticleUseCase(kbRepo, &mockLogger{})

		_, err := uc.Execute(context.Background(), UpdateArticleCommand{ArticleID: 9})
		require.Error(t, err)
		assert.True(t, errors.IsValidation(err))
	})

	t.Run("missing article passes through not found", func(t *testing.T) {
		kbRepo := &mockKBRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*kb.Article, error) {
				return nil, errors.NewNotFoundError("KB article not found")
			},
		}
		uc := NewUpdateArticleUseCase(kbRepo, &mockLogger{})

		_, err := uc.Execute(context.Background(), UpdateArticleCommand{
			ArticleID: 99,
			Solution:  strPtr("anything"),
		})
		require.Error(t, err)
		assert.True(t, errors.IsNotFound(err))
	})
}
