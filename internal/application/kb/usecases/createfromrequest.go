package usecases

import (
	"context"
	"time"

	"github.com/opsdesk-inc/opsdesk/internal/domain/kb"
	"github.com/opsdesk-inc/opsdesk/internal/domain/request"
	"github.com/opsdesk-inc/opsdesk/internal/shared/errors"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
)

type CreateFromRequestCommand struct {
	RequestID uint
	CreatedBy uint
}

type CreateFromRequestResult struct {
	ArticleID      uint   `json:"article_id"`
	RequestID      uint   `json:"request_id"`
	ProblemSummary string `json:"problem_summary"`
	Solution       string `json:"solution"`
}

type CreateFromRequestUseCase struct {
	kbRepo      kb.Repository
	requestRepo request.Repository
	logger      logger.Interface
}

func NewCreateFromRequestUseCase(
	kbRepo kb.Repository,
	requestRepo request.Repository,
	logger logger.Interface,
) *CreateFromRequestUseCase {
	return &CreateFromRequestUseCase{
		kbRepo:      kbRepo,
		requestRepo: requestRepo,
		logger:      logger,
	}
}

// Execute copies a resolved request into the knowledge base verbatim, without
// AI rewriting. The article owns its copy of the text, so the source request
// can be edited or deleted afterwards.
func (uc *CreateFromRequestUseCase) Execute(ctx context.Context, cmd CreateFromRequestCommand) (*CreateFromRequestResult, error) {
	uc.logger.Infow("executing create article from request use case", "request_id", cmd.RequestID)

	req, err := uc.requestRepo.GetByID(ctx, cmd.RequestID)
	if err != nil {
		return nil, err
	}

	if !req.HasSolution() {
		return nil, errors.NewValidationError("request must have a solution before creating a KB article")
	}

	createdBy := cmd.CreatedBy
	if createdBy == 0 {
		createdBy = req.CreatedBy()
	}

	article, err := kb.NewArticle(
		req.Description(),
		*req.Solution(),
		req.CategoryID(),
		nil,
		kb.DefaultConfidence,
		createdBy,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.kbRepo.Save(ctx, article); err != nil {
		uc.logger.Errorw("failed to save KB article from request", "request_id", cmd.RequestID, "error", err)
		return nil, err
	}

	// Mark the source request. The article is already saved, so a failure
	// here only loses the flag, not the knowledge.
	fields := map[string]any{
		"is_kb_article": true,
		"updated_at":    time.Now().UTC(),
	}
	if err := uc.requestRepo.UpdateFields(ctx, cmd.RequestID, fields); err != nil {
		uc.logger.Warnw("failed to flag request as KB source", "request_id", cmd.RequestID, "error", err)
	}

	uc.logger.Infow("KB article created from request", "article_id", article.ID(), "request_id", cmd.RequestID)

	return &CreateFromRequestResult{
		ArticleID:      article.ID(),
		RequestID:      cmd.RequestID,
		ProblemSummary: article.ProblemSummary(),
		Solution:       article.Solution(),
	}, nil
}
