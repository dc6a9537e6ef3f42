package usecases

import (
	"context"

	"github.com/opsdesk-inc/opsdesk/internal/domain/category"
	"github.com/opsdesk-inc/opsdesk/internal/domain/request"
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/ai"
	"github.com/opsdesk-inc/opsdesk/internal/shared/biztime"
	"github.com/opsdesk-inc/opsdesk/internal/shared/errors"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
)

type DailySummaryQuery struct {
	Date string
}

type DailySummaryResult struct {
	Date         string `json:"date"`
	RequestCount int    `json:"request_count"`
	Summary      string `json:"summary"`
}

type DailySummaryUseCase struct {
	requestRepo  request.Repository
	categoryRepo category.Repository
	aiClient     ai.Client
	logger       logger.Interface
}

func NewDailySummaryUseCase(
	requestRepo request.Repository,
	categoryRepo category.Repository,
	aiClient ai.Client,
	logger logger.Interface,
) *DailySummaryUseCase {
	return &DailySummaryUseCase{
		requestRepo:  requestRepo,
		categoryRepo: categoryRepo,
		aiClient:     aiClient,
		logger:       logger,
	}
}

// Execute summarizes one business day of requests. The summary is the whole
// point of the call, so AI failures come back typed rather than degraded.
func (uc *DailySummaryUseCase) Execute(ctx context.Context, query DailySummaryQuery) (*DailySummaryResult, error) {
	dayStart, err := biztime.ParseDateInBizTimezone(query.Date)
	if err != nil {
		return nil, errors.NewValidationError("date must be in YYYY-MM-DD format")
	}
	dayEnd := biztime.EndOfDayUTC(dayStart)

	requests, err := uc.requestRepo.ListCreatedBetween(ctx, dayStart, dayEnd)
	if err != nil {
		uc.logger.Errorw("failed to list requests for daily summary", "date", query.Date, "error", err)
		return nil, err
	}

	if len(requests) == 0 {
		return &DailySummaryResult{
			Date:         query.Date,
			RequestCount: 0,
			Summary:      "No support requests were logged on this day.",
		}, nil
	}

	names := uc.categoryNamesByID(ctx)

	entries := make([]ai.SummaryEntry, len(requests))
	for i, req := range requests {
		entry := ai.SummaryEntry{
			RequesterName: req.RequesterName(),
			Description:   req.Description(),
		}
		if req.CategoryID() != nil {
			entry.CategoryName = names[*req.CategoryID()]
		}
		entries[i] = entry
	}

	summary, err := uc.aiClient.Summarize(ctx, query.Date, entries)
	if err != nil {
		uc.logger.Errorw("daily summary generation failed", "date", query.Date, "error", err)
		return nil, err
	}

	return &DailySummaryResult{
		Date:         query.Date,
		RequestCount: len(requests),
		Summary:      summary,
	}, nil
}

func (uc *DailySummaryUseCase) categoryNamesByID(ctx context.Context) map[uint]string {
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
