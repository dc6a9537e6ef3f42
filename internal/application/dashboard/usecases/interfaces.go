package usecases

import "context"

type GetMetricsExecutor interface {
	Execute(ctx context.Context) (*GetMetricsResult, error)
}

type CategoryBreakdownExecutor interface {
	Execute(ctx context.Context) (*CategoryBreakdownResult, error)
}

type DailySummaryExecutor interface {
	Execute(ctx context.Context, query DailySummaryQuery) (*DailySummaryResult, error)
}
