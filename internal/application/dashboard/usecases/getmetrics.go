package usecases

import (
	"context"

	"github.com/opsdesk-inc/opsdesk/internal/application/request/dto"
	"github.com/opsdesk-inc/opsdesk/internal/domain/request"
	vo "github.com/opsdesk-inc/opsdesk/internal/domain/request/valueobjects"
	"github.com/opsdesk-inc/opsdesk/internal/shared/biztime"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
)

const recentRequestsLimit = 10

type GetMetricsResult struct {
	TotalRequests  int64            `json:"total_requests"`
	TodayRequests  int64            `json:"today_requests"`
	StatusCounts   map[string]int64 `json:"status_counts"`
	RecentRequests []dto.RequestDTO `json:"recent_requests"`
}

type GetMetricsUseCase struct {
	requestRepo request.Repository
	logger      logger.Interface
}

func NewGetMetricsUseCase(
	requestRepo request.Repository,
	logger logger.Interface,
) *GetMetricsUseCase {
	return &GetMetricsUseCase{
		requestRepo: requestRepo,
		logger:      logger,
	}
}

func (uc *GetMetricsUseCase) Execute(ctx context.Context) (*GetMetricsResult, error) {
	total, err := uc.requestRepo.CountTotal(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count support requests", "error", err)
		return nil, err
	}

	now := biztime.NowUTC()
	today, err := uc.requestRepo.CountCreatedBetween(ctx, biztime.StartOfDayUTC(now), biztime.EndOfDayUTC(now))
	if err != nil {
		uc.logger.Errorw("failed to count today's support requests", "error", err)
		return nil, err
	}

	byStatus, err := uc.requestRepo.CountByStatus(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count support requests by status", "error", err)
		return nil, err
	}

	// Every status appears in the result, zero or not.
	statusCounts := make(map[string]int64, len(vo.AllStatuses()))
	for _, status := range vo.AllStatuses() {
		statusCounts[status.String()] = byStatus[status]
	}

	recent, err := uc.requestRepo.ListRecent(ctx, recentRequestsLimit)
	if err != nil {
		uc.logger.Errorw("failed to list recent support requests", "error", err)
		return nil, err
	}

	recentDTOs := make([]dto.RequestDTO, len(recent))
	for i, req := range recent {
		recentDTOs[i] = *dto.FromEntity(req)
	}

	return &GetMetricsResult{
		TotalRequests:  total,
		TodayRequests:  today,
		StatusCounts:   statusCounts,
		RecentRequests: recentDTOs,
	}, nil
}
