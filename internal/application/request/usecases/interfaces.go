package usecases

import (
	"context"

	"github.com/opsdesk-inc/opsdesk/internal/application/request/dto"
)

type CreateRequestExecutor interface {
	Execute(ctx context.Context, cmd CreateRequestCommand) (*CreateRequestResult, error)
}

type UpdateRequestExecutor interface {
	Execute(ctx context.Context, cmd UpdateRequestCommand) (*UpdateRequestResult, error)
}

type GetRequestExecutor interface {
	Execute(ctx context.Context, query GetRequestQuery) (*dto.RequestDTO, error)
}

type ListRequestsExecutor interface {
	Execute(ctx context.Context, query ListRequestsQuery) (*ListRequestsResult, error)
}

type DeleteRequestExecutor interface {
	Execute(ctx context.Context, cmd DeleteRequestCommand) (*DeleteRequestResult, error)
}

type GenerateReplyExecutor interface {
	Execute(ctx context.Context, cmd GenerateReplyCommand) (*GenerateReplyResult, error)
}

type RecategorizeExecutor interface {
	Execute(ctx context.Context, cmd RecategorizeCommand) (*RecategorizeResult, error)
}
