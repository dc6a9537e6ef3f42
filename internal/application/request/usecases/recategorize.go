package usecases

import (
	"context"
	"time"

	"github.com/opsdesk-inc/opsdesk/internal/domain/category"
	"github.com/opsdesk-inc/opsdesk/internal/domain/request"
	vo "github.com/opsdesk-inc/opsdesk/internal/domain/request/valueobjects"
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/ai"
	"github.com/opsdesk-inc/opsdesk/internal/shared/errors"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
)

type RecategorizeCommand struct {
	RequestID uint
}

type RecategorizeResult struct {
	RequestID        uint    `json:"request_id"`
	CategoryID       *uint   `json:"category_id,omitempty"`
	CategoryName     *string `json:"category_name,omitempty"`
	Severity         string  `json:"severity"`
	AIRecommendation *string `json:"ai_recommendation,omitempty"`
}

type RecategorizeUseCase struct {
	requestRepo  request.Repository
	categoryRepo category.Repository
	aiClient     ai.Client
	logger       logger.Interface
}

func NewRecategorizeUseCase(
	requestRepo request.Repository,
	categoryRepo category.Repository,
	aiClient ai.Client,
	logger logger.Interface,
) *RecategorizeUseCase {
	return &RecategorizeUseCase{
		requestRepo:  requestRepo,
		categoryRepo: categoryRepo,
		aiClient:     aiClient,
		logger:       logger,
	}
}

// Execute re-runs classification on demand. Unlike the advisory pass during
// intake, the caller explicitly asked for this, so a disabled or failing
// classifier is reported instead of silently doing nothing.
func (uc *RecategorizeUseCase) Execute(ctx context.Context, cmd RecategorizeCommand) (*RecategorizeResult, error) {
	uc.logger.Infow("executing recategorize use case", "request_id", cmd.RequestID)

	req, err := uc.requestRepo.GetByID(ctx, cmd.RequestID)
	if err != nil {
		return nil, err
	}

	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(categories))
	idsByName := make(map[string]uint, len(categories))
	for i, cat := range categories {
		names[i] = cat.Name()
		idsByName[cat.Name()] = cat.ID()
	}

	classification, err := uc.aiClient.Classify(ctx, req.Description(), names)
	if err != nil {
		uc.logger.Errorw("recategorization failed", "request_id", cmd.RequestID, "error", err)
		return nil, err
	}

	if classification.CategoryName == nil && classification.Severity == nil && classification.Recommendation == nil {
		return nil, errors.NewAIMisconfiguredError("AI classification is disabled or not configured")
	}

	var categoryID *uint
	var categoryName *string
	if classification.CategoryName != nil {
		if id, ok := idsByName[*classification.CategoryName]; ok {
			categoryID = &id
			categoryName = classification.CategoryName
		} else {
			uc.logger.Warnw("classifier suggested unknown category",
				"request_id", cmd.RequestID, "category", *classification.CategoryName)
		}
	}

	var severity *vo.Severity
	if classification.Severity != nil {
		s := vo.Severity(*classification.Severity)
		severity = &s
	}

	if err := req.ApplyClassification(categoryID, severity, classification.Recommendation); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	// Only the fields the classifier actually returned are written back.
	fields := map[string]any{"updated_at": time.Now().UTC()}
	if categoryID != nil {
		fields["category_id"] = categoryID
	}
	if severity != nil {
		fields["severity"] = severity.String()
	}
	if classification.Recommendation != nil {
		fields["ai_recommendation"] = *classification.Recommendation
	}

	if err := uc.requestRepo.UpdateFields(ctx, cmd.RequestID, fields); err != nil {
		uc.logger.Errorw("failed to persist recategorization", "request_id", cmd.RequestID, "error", err)
		return nil, err
	}

	uc.logger.Infow("request recategorized", "request_id", cmd.RequestID)

	return &RecategorizeResult{
		RequestID:        req.ID(),
		CategoryID:       req.CategoryID(),
		CategoryName:     categoryName,
		Severity:         req.Severity().String(),
		AIRecommendation: req.AIRecommendation(),
	}, nil
}
