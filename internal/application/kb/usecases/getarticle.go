package usecases

import (
	"context"

	"github.com/opsdesk-inc/opsdesk/internal/application/kb/dto"
	"github.com/opsdesk-inc/opsdesk/internal/domain/category"
	"github.com/opsdesk-inc/opsdesk/internal/domain/kb"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
	"github.com/opsdesk-inc/opsdesk/internal/shared/services/markdown"
)

type GetArticleQuery struct {
	ArticleID uint
}

type GetArticleUseCase struct {
	kbRepo       kb.Repository
	categoryRepo category.Repository
	markdown     markdown.Service
	logger       logger.Interface
}

func NewGetArticleUseCase(
	kbRepo kb.Repository,
	categoryRepo category.Repository,
	markdownService markdown.Service,
	logger logger.Interface,
) *GetArticleUseCase {
	return &GetArticleUseCase{
		kbRepo:       kbRepo,
		categoryRepo: categoryRepo,
		markdown:     markdownService,
		logger:       logger,
	}
}

func (uc *GetArticleUseCase) Execute(ctx context.Context, query GetArticleQuery) (*dto.ArticleDTO, error) {
	article, err := uc.kbRepo.GetByID(ctx, query.ArticleID)
	if err != nil {
		return nil, err
	}

	result := dto.FromEntity(article)

	if rendered, err := uc.markdown.ToHTMLSanitized(article.Solution()); err == nil {
		result.SolutionHTML = rendered
	} else {
		uc.logger.Warnw("failed to render article solution", "article_id", query.ArticleID, "error", err)
	}

	if result.CategoryID != nil {
		if cat, catErr := uc.categoryRepo.GetByID(ctx, *result.CategoryID); catErr == nil {
			name := cat.Name()
			result.CategoryName = &name
		}
	}

	return result, nil
}
