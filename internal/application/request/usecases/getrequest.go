package usecases

import (
	"context"

	"github.com/opsdesk-inc/opsdesk/internal/application/request/dto"
	"github.com/opsdesk-inc/opsdesk/internal/domain/category"
	"github.com/opsdesk-inc/opsdesk/internal/domain/request"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
)

type GetRequestQuery struct {
	RequestID uint
}

type GetRequestUseCase struct {
	requestRepo  request.Repository
	categoryRepo category.Repository
	logger       logger.Interface
}

func NewGetRequestUseCase(
	requestRepo request.Repository,
	categoryRepo category.Repository,
	logger logger.Interface,
) *GetRequestUseCase {
	return &GetRequestUseCase{
		requestRepo:  requestRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (uc *GetRequestUseCase) Execute(ctx context.Context, query GetRequestQuery) (*dto.RequestDTO, error) {
	req, err := uc.requestRepo.GetByID(ctx, query.RequestID)
	if err != nil {
		return nil, err
	}

	result := dto.FromEntity(req)
	uc.resolveCategoryName(ctx, result)
	return result, nil
}

func (uc *GetRequestUseCase) resolveCategoryName(ctx context.Context, result *dto.RequestDTO) {
	if result.CategoryID == nil {
		return
	}
	cat, err := uc.categoryRepo.GetByID(ctx, *result.CategoryID)
	if err != nil {
		uc.logger.Warnw("failed to resolve category name", "category_id", *result.CategoryID, "error", err)
		return
	}
	name := cat.Name()
	result.CategoryName = &name
}
