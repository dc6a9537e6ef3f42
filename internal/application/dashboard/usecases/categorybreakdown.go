package usecases

import (
	"context"
	"sort"

	"github.com/opsdesk-inc/opsdesk/internal/domain/category"
	"github.com/opsdesk-inc/opsdesk/internal/domain/request"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
)

const uncategorizedLabel = "Uncategorized"

type CategoryCount struct {
	CategoryID   *uint  `json:"category_id"`
	CategoryName string `json:"category_name"`
	Count        int64  `json:"count"`
}

type CategoryBreakdownResult struct {
	Categories []CategoryCount `json:"categories"`
}

type CategoryBreakdownUseCase struct {
	requestRepo  request.Repository
	categoryRepo category.Repository
	logger       logger.Interface
}

func NewCategoryBreakdownUseCase(
	requestRepo request.Repository,
	categoryRepo category.Repository,
	logger logger.Interface,
) *CategoryBreakdownUseCase {
	return &CategoryBreakdownUseCase{
		requestRepo:  requestRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// Execute counts requests per category. Requests without a category land in
// an "Uncategorized" bucket; categories with zero requests are omitted.
func (uc *CategoryBreakdownUseCase) Execute(ctx context.Context) (*CategoryBreakdownResult, error) {
	counts, err := uc.requestRepo.CountByCategory(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count support requests by category", "error", err)
		return nil, err
	}

	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list categories", "error", err)
		return nil, err
	}
	names := make(map[uint]string, len(categories))
	for _, cat := range categories {
		names[cat.ID()] = cat.Name()
	}

	items := make([]CategoryCount, 0, len(counts))
	for id, count := range counts {
		if id == 0 {
			items = append(items, CategoryCount{CategoryName: uncategorizedLabel, Count: count})
			continue
		}
		catID := id
		name, ok := names[id]
		if !ok {
			name = uncategorizedLabel
		}
		items = append(items, CategoryCount{CategoryID: &catID, CategoryName: name, Count: count})
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Count != items[j].Count {
			return items[i].Count > items[j].Count
		}
		return items[i].CategoryName < items[j].CategoryName
	})

	return &CategoryBreakdownResult{Categories: items}, nil
}
