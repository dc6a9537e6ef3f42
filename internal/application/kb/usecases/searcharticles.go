package usecases

import (
	"context"
	"strings"

	"github.com/opsdesk-inc/opsdesk/internal/application/kb/dto"
	"github.com/opsdesk-inc/opsdesk/internal/domain/kb"
	"github.com/opsdesk-inc/opsdesk/internal/shared/errors"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
)

type SearchArticlesQuery struct {
	Query string
	Limit int
}

type SearchArticlesResult struct {
	Query    string           `json:"query"`
	Articles []dto.ArticleDTO `json:"articles"`
}

type SearchArticlesUseCase struct {
	kbRepo kb.Repository
	logger logger.Interface
}

func NewSearchArticlesUseCase(
	kbRepo kb.Repository,
	logger logger.Interface,
) *SearchArticlesUseCase {
	return &SearchArticlesUseCase{
		kbRepo: kbRepo,
		logger: logger,
	}
}

func (uc *SearchArticlesUseCase) Execute(ctx context.Context, query SearchArticlesQuery) (*SearchArticlesResult, error) {
	term := strings.TrimSpace(query.Query)
	if term == "" {
		return nil, errors.NewValidationError("search query is required")
	}

	articles, err := uc.kbRepo.Search(ctx, term, query.Limit)
	if err != nil {
		uc.logger.Errorw("KB search failed", "query", term, "error", err)
		return nil, err
	}

	items := make([]dto.ArticleDTO, len(articles))
	for i, article := range articles {
		items[i] = *dto.FromEntity(article)
	}

	return &SearchArticlesResult{
		Query:    term,
		Articles: items,
	}, nil
}
