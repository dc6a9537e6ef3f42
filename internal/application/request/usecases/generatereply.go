package usecases

import (
	"context"
	"time"

	"github.com/opsdesk-inc/opsdesk/internal/domain/category"
	"github.com/opsdesk-inc/opsdesk/internal/domain/request"
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/ai"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
)

type GenerateReplyCommand struct {
	RequestID uint
}

type GenerateReplyResult struct {
	RequestID uint   `json:"request_id"`
	Reply     string `json:"reply"`
}

type GenerateReplyUseCase struct {
	requestRepo  request.Repository
	categoryRepo category.Repository
	aiClient     ai.Client
	logger       logger.Interface
}

func NewGenerateReplyUseCase(
	requestRepo request.Repository,
	categoryRepo category.Repository,
	aiClient ai.Client,
	logger logger.Interface,
) *GenerateReplyUseCase {
	return &GenerateReplyUseCase{
		requestRepo:  requestRepo,
		categoryRepo: categoryRepo,
		aiClient:     aiClient,
		logger:       logger,
	}
}

// Execute drafts a user-facing reply. The whole point of the operation is
// the AI call, so AI failures are returned to the caller typed, not
// swallowed.
func (uc *GenerateReplyUseCase) Execute(ctx context.Context, cmd GenerateReplyCommand) (*GenerateReplyResult, error) {
	uc.logger.Infow("executing generate reply use case", "request_id", cmd.RequestID)

	req, err := uc.requestRepo.GetByID(ctx, cmd.RequestID)
	if err != nil {
		return nil, err
	}

	rc := ai.ReplyContext{
		RequesterName:  req.RequesterName(),
		Channel:        req.Channel().String(),
		Description:    req.Description(),
		Recommendation: req.AIRecommendation(),
	}
	if req.CategoryID() != nil {
		if cat, catErr := uc.categoryRepo.GetByID(ctx, *req.CategoryID()); catErr == nil {
			name := cat.Name()
			rc.CategoryName = &name
		}
	}

	reply, err := uc.aiClient.DraftReply(ctx, rc)
	if err != nil {
		uc.logger.Errorw("reply generation failed", "request_id", cmd.RequestID, "error", err)
		return nil, err
	}

	// A regenerated reply replaces the previous one.
	req.SetAIReply(reply)
	fields := map[string]any{
		"ai_reply":   reply,
		"updated_at": time.Now().UTC(),
	}
	if err := uc.requestRepo.UpdateFields(ctx, cmd.RequestID, fields); err != nil {
		uc.logger.Errorw("failed to persist generated reply", "request_id", cmd.RequestID, "error", err)
		return nil, err
	}

	uc.logger.Infow("reply generated", "request_id", cmd.RequestID, "length", len(reply))

	return &GenerateReplyResult{
		RequestID: req.ID(),
		Reply:     reply,
	}, nil
}
