package usecases

import (
	"context"

	"github.com/opsdesk-inc/opsdesk/internal/application/kb/dto"
)

type CreateArticleExecutor interface {
	Execute(ctx context.Context, cmd CreateArticleCommand) (*CreateArticleResult, error)
}

type CreateFromRequestExecutor interface {
	Execute(ctx context.Context, cmd CreateFromRequestCommand) (*CreateFromRequestResult, error)
}

type UpdateArticleExecutor interface {
	Execute(ctx context.Context, cmd UpdateArticleCommand) (*UpdateArticleResult, error)
}

type DeleteArticleExecutor interface {
	Execute(ctx context.Context, cmd DeleteArticleCommand) (*DeleteArticleResult, error)
}

type GetArticleExecutor interface {
	Execute(ctx context.Context, query GetArticleQuery) (*dto.ArticleDTO, error)
}

type ListArticlesExecutor interface {
	Execute(ctx context.Context, query ListArticlesQuery) (*ListArticlesResult, error)
}

type SearchArticlesExecutor interface {
	Execute(ctx context.Context, query SearchArticlesQuery) (*SearchArticlesResult, error)
}
