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

type CreateRequestCommand struct {
	RequesterName string
	Channel       string
	Description   string
	Severity      string
	CategoryID    *uint
	CreatedBy     uint
}

type CreateRequestResult struct {
	RequestID        uint      `json:"request_id"`
	Status           string    `json:"status"`
	Severity         string    `json:"severity"`
	CategoryID       *uint     `json:"category_id,omitempty"`
	AIRecommendation *string   `json:"ai_recommendation,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

type CreateRequestUseCase struct {
	requestRepo  request.Repository
	categoryRepo category.Repository
	aiClient     ai.Client
	logger       logger.Interface
}

func NewCreateRequestUseCase(
	requestRepo request.Repository,
	categoryRepo category.Repository,
	aiClient ai.Client,
	logger logger.Interface,
) *CreateRequestUseCase {
	return &CreateRequestUseCase{
		requestRepo:  requestRepo,
		categoryRepo: categoryRepo,
		aiClient:     aiClient,
		logger:       logger,
	}
}

func (uc *CreateRequestUseCase) Execute(ctx context.Context, cmd CreateRequestCommand) (*CreateRequestResult, error) {
	uc.logger.Infow("executing create request use case",
		"requester", cmd.RequesterName, "channel", cmd.Channel, "created_by", cmd.CreatedBy)

	severity := cmd.Severity
	if severity == "" {
		severity = vo.SeverityMedium.String()
	}

	newRequest, err := request.NewRequest(
		cmd.RequesterName,
		vo.Channel(cmd.Channel),
		cmd.Description,
		cmd.CategoryID,
		vo.Severity(severity),
		cmd.CreatedBy,
	)
	if err != nil {
		uc.logger.Errorw("invalid create request command", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	// Classification is advisory: a failed or disabled classifier must never
	// block intake, and it only fills fields the caller left blank.
	uc.classify(ctx, newRequest, cmd.CategoryID != nil, cmd.Severity != "")

	if err := uc.requestRepo.Save(ctx, newRequest); err != nil {
		uc.logger.Errorw("failed to save support request", "error", err)
		return nil, err
	}

	uc.logger.Infow("support request created", "request_id", newRequest.ID())

	return &CreateRequestResult{
		RequestID:        newRequest.ID(),
		Status:           newRequest.Status().String(),
		Severity:         newRequest.Severity().String(),
		CategoryID:       newRequest.CategoryID(),
		AIRecommendation: newRequest.AIRecommendation(),
		CreatedAt:        newRequest.CreatedAt(),
	}, nil
}

func (uc *CreateRequestUseCase) classify(ctx context.Context, req *request.Request, categorySupplied, severitySupplied bool) {
	categoryNames, err := uc.listCategoryNames(ctx)
	if err != nil {
		uc.logger.Warnw("skipping classification, failed to list categories", "error", err)
		return
	}

	classification, err := uc.aiClient.Classify(ctx, req.Description(), categoryNames)
	if err != nil {
		uc.logger.Warnw("classification failed, continuing without it", "error", err)
		return
	}

	var categoryID *uint
	if !categorySupplied && classification.CategoryName != nil {
		cat, err := uc.categoryRepo.GetByName(ctx, *classification.CategoryName)
		if err != nil {
			uc.logger.Warnw("classifier suggested unknown category",
				"category", *classification.CategoryName, "error", err)
		} else {
			id := cat.ID()
			categoryID = &id
		}
	}

	var severity *vo.Severity
	if !severitySupplied && classification.Severity != nil {
		s := vo.Severity(*classification.Severity)
		severity = &s
	}

	if err := req.ApplyClassification(categoryID, severity, classification.Recommendation); err != nil {
		uc.logger.Warnw("failed to apply classification", "error", err)
	}
}

func (uc *CreateRequestUseCase) listCategoryNames(ctx context.Context) ([]string, error) {
	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(categories))
	for i, cat := range categories {
		names[i] = cat.Name()
	}
	return names, nil
}
