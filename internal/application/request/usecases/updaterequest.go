package usecases

import (
	"context"
	"time"

	"github.com/opsdesk-inc/opsdesk/internal/domain/kb"
	"github.com/opsdesk-inc/opsdesk/internal/domain/request"
	vo "github.com/opsdesk-inc/opsdesk/internal/domain/request/valueobjects"
	"github.com/opsdesk-inc/opsdesk/internal/shared/errors"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
)

// UpdateRequestCommand is a partial patch: nil pointer fields are left
// untouched. ClearCategory removes the category assignment.
type UpdateRequestCommand struct {
	RequestID     uint
	RequesterName *string
	Channel       *string
	Description   *string
	Severity      *string
	Status        *string
	CategoryID    *uint
	ClearCategory bool
	Solution      *string
	IsKBArticle   *bool
	UpdatedBy     uint
}

type UpdateRequestResult struct {
	RequestID uint       `json:"request_id"`
	Status    string     `json:"status"`
	UpdatedAt time.Time  `json:"updated_at"`
	ClosedAt  *time.Time `json:"closed_at,omitempty"`
}

type UpdateRequestUseCase struct {
	requestRepo request.Repository
	kbRepo      kb.Repository
	logger      logger.Interface
}

func NewUpdateRequestUseCase(
	requestRepo request.Repository,
	kbRepo kb.Repository,
	logger logger.Interface,
) *UpdateRequestUseCase {
	return &UpdateRequestUseCase{
		requestRepo: requestRepo,
		kbRepo:      kbRepo,
		logger:      logger,
	}
}

func (uc *UpdateRequestUseCase) Execute(ctx context.Context, cmd UpdateRequestCommand) (*UpdateRequestResult, error) {
	uc.logger.Infow("executing update request use case", "request_id", cmd.RequestID)

	req, err := uc.requestRepo.GetByID(ctx, cmd.RequestID)
	if err != nil {
		return nil, err
	}

	// Only the columns the caller actually changed are written, so two
	// agents editing different fields of the same request never overwrite
	// each other.
	fields := make(map[string]any)

	if cmd.RequesterName != nil {
		if err := req.SetRequesterName(*cmd.RequesterName); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		fields["requester_name"] = req.RequesterName()
	}

	if cmd.Channel != nil {
		if err := req.SetChannel(vo.Channel(*cmd.Channel)); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		fields["channel"] = req.Channel().String()
	}

	if cmd.Description != nil {
		if err := req.SetDescription(*cmd.Description); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		fields["description"] = req.Description()
	}

	if cmd.Severity != nil {
		if err := req.SetSeverity(vo.Severity(*cmd.Severity)); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		fields["severity"] = req.Severity().String()
	}

	if cmd.CategoryID != nil || cmd.ClearCategory {
		categoryID := cmd.CategoryID
		if cmd.ClearCategory {
			categoryID = nil
		}
		req.SetCategory(categoryID)
		fields["category_id"] = categoryID
	}

	if cmd.Solution != nil {
		req.SetSolution(*cmd.Solution)
		fields["solution"] = req.Solution()
	}

	if cmd.IsKBArticle != nil {
		if *cmd.IsKBArticle && !req.HasSolution() {
			return nil, errors.NewValidationError("request must have a solution before creating a KB article")
		}
		req.MarkKBArticle(*cmd.IsKBArticle)
		fields["is_kb_article"] = req.IsKBArticle()
	}

	if cmd.Status != nil {
		if err := req.ChangeStatus(vo.Status(*cmd.Status)); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		fields["status"] = req.Status().String()
		fields["closed_at"] = req.ClosedAt()
	}

	if len(fields) == 0 {
		return nil, errors.NewValidationError("no valid fields to update")
	}

	fields["updated_at"] = req.UpdatedAt()

	if err := uc.requestRepo.UpdateFields(ctx, cmd.RequestID, fields); err != nil {
		uc.logger.Errorw("failed to update support request", "request_id", cmd.RequestID, "error", err)
		return nil, err
	}

	// The KB copy is best-effort: the request update has already been
	// persisted and stands on its own. Promotion needs both the solution and
	// the flag in the same patch, otherwise re-sending is_kb_article on an
	// already solved request would mint duplicate articles.
	if cmd.Solution != nil && cmd.IsKBArticle != nil && *cmd.IsKBArticle {
		uc.promoteToKB(ctx, req, cmd.UpdatedBy)
	}

	uc.logger.Infow("support request updated", "request_id", cmd.RequestID, "fields", len(fields))

	return &UpdateRequestResult{
		RequestID: req.ID(),
		Status:    req.Status().String(),
		UpdatedAt: req.UpdatedAt(),
		ClosedAt:  req.ClosedAt(),
	}, nil
}

// promoteToKB copies the request's problem and solution into a knowledge
// base article. The article is an independent copy; deleting the request
// later does not affect it.
func (uc *UpdateRequestUseCase) promoteToKB(ctx context.Context, req *request.Request, createdBy uint) {
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
		uc.logger.Warnw("failed to build KB article from request", "request_id", req.ID(), "error", err)
		return
	}

	if err := uc.kbRepo.Save(ctx, article); err != nil {
		uc.logger.Warnw("failed to save KB article from request", "request_id", req.ID(), "error", err)
		return
	}

	uc.logger.Infow("KB article created from request", "request_id", req.ID(), "article_id", article.ID())
}
