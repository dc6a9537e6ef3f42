package usecases

import (
	"context"

	"github.com/opsdesk-inc/opsdesk/internal/application/kb/dto"
	"github.com/opsdesk-inc/opsdesk/internal/domain/category"
	"github.com/opsdesk-inc/opsdesk/internal/domain/kb"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type ListArticlesQuery struct {
	CategoryID *uint
	Search     string
	Page       int
	PageSize   int
}

type ListArticlesResult struct {
	Articles []dto.ArticleDTO `json:"articles"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

type ListArticlesUseCase struct {
	kbRepo       kb.Repository
	categoryRepo category.Repository
	logger       logger.Interface
}

func NewListArticlesUseCase(
	kbRepo kb.Repository,
	categoryRepo category.Repository,
	logger logger.Interface,
) *ListArticlesUseCase {
	return &ListArticlesUseCase{
		kbRepo:       kbRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (uc *ListArticlesUseCase) Execute(ctx context.Context, query ListArticlesQuery) (*ListArticlesResult, error) {
	filter := kb.Filter{
		CategoryID: query.CategoryID,
		Search:     query.Search,
		Page:       query.Page,
		PageSize:   query.PageSize,
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = defaultPageSize
	}
	if filter.PageSize > maxPageSize {
		filter.PageSize = maxPageSize
	}

	articles, total, err := uc.kbRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list KB articles", "error", err)
		return nil, err
	}

	categoryNames := uc.categoryNamesByID(ctx)

	items := make([]dto.ArticleDTO, len(articles))
	for i, article := range articles {
		item := dto.FromEntity(article)
		if item.CategoryID != nil {
			if name, ok := categoryNames[*item.CategoryID]; ok {
				item.CategoryName = &name
			}
		}
		items[i] = *item
	}

	return &ListArticlesResult{
		Articles: items,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}

func (uc *ListArticlesUseCase) categoryNamesByID(ctx context.Context) map[uint]string {
	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		uc.logger.Warnw("failed to list categories for name resolution", "error", err)
		return nil
	}
	names := make(map[uint]string, len(categories))
	for _, cat := range categories {
		names[cat.ID()] = cat.Name()
	}
	return names
}
