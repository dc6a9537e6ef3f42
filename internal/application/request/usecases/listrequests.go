package usecases

import (
	"context"

	"github.com/opsdesk-inc/opsdesk/internal/application/request/dto"
	"github.com/opsdesk-inc/opsdesk/internal/domain/category"
	"github.com/opsdesk-inc/opsdesk/internal/domain/request"
	vo "github.com/opsdesk-inc/opsdesk/internal/domain/request/valueobjects"
	"github.com/opsdesk-inc/opsdesk/internal/shared/errors"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type ListRequestsQuery struct {
	Status     string
	CategoryID *uint
	Search     string
	Page       int
	PageSize   int
	SortBy     string
	SortOrder  string
}

type ListRequestsResult struct {
	Requests []dto.RequestDTO `json:"requests"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

type ListRequestsUseCase struct {
	requestRepo  request.Repository
	categoryRepo category.Repository
	logger       logger.Interface
}

func NewListRequestsUseCase(
	requestRepo request.Repository,
	categoryRepo category.Repository,
	logger logger.Interface,
) *ListRequestsUseCase {
	return &ListRequestsUseCase{
		requestRepo:  requestRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (uc *ListRequestsUseCase) Execute(ctx context.Context, query ListRequestsQuery) (*ListRequestsResult, error) {
	filter := request.Filter{
		CategoryID: query.CategoryID,
		Search:     query.Search,
		Page:       query.Page,
		PageSize:   query.PageSize,
		SortBy:     query.SortBy,
		SortOrder:  query.SortOrder,
	}

	if query.Status != "" {
		status, err := vo.NewStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
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

	requests, total, err := uc.requestRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list support requests", "error", err)
		return nil, err
	}

	categoryNames := uc.categoryNamesByID(ctx)

	items := make([]dto.RequestDTO, len(requests))
	for i, req := range requests {
		item := dto.FromEntity(req)
		if item.CategoryID != nil {
			if name, ok := categoryNames[*item.CategoryID]; ok {
				item.CategoryName = &name
			}
		}
		items[i] = *item
	}

	return &ListRequestsResult{
		Requests: items,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}

func (uc *ListRequestsUseCase) categoryNamesByID(ctx context.Context) map[uint]string {
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
