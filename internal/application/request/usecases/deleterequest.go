package usecases

import (
	"context"

	"github.com/opsdesk-inc/opsdesk/internal/domain/request"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
)

type DeleteRequestCommand struct {
	RequestID uint
}

type DeleteRequestResult struct {
	RequestID     uint   `json:"request_id"`
	RequesterName string `json:"requester_name"`
}

type DeleteRequestUseCase struct {
	requestRepo request.Repository
	logger      logger.Interface
}

func NewDeleteRequestUseCase(
	requestRepo request.Repository,
	logger logger.Interface,
) *DeleteRequestUseCase {
	return &DeleteRequestUseCase{
		requestRepo: requestRepo,
		logger:      logger,
	}
}

// Execute hard-deletes the request. KB articles derived from it are copies
// and survive untouched.
func (uc *DeleteRequestUseCase) Execute(ctx context.Context, cmd DeleteRequestCommand) (*DeleteRequestResult, error) {
	req, err := uc.requestRepo.GetByID(ctx, cmd.RequestID)
	if err != nil {
		return nil, err
	}

	if err := uc.requestRepo.Delete(ctx, cmd.RequestID); err != nil {
		uc.logger.Errorw("failed to delete support request", "request_id", cmd.RequestID, "error", err)
		return nil, err
	}

	uc.logger.Infow("support request deleted", "request_id", cmd.RequestID)

	return &DeleteRequestResult{
		RequestID:     req.ID(),
		RequesterName: req.RequesterName(),
	}, nil
}
