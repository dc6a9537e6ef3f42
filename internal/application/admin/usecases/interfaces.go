package usecases

import "context"

type GetAISettingsExecutor interface {
	Execute(ctx context.Context) (*AISettingsView, error)
}

type UpdateAISettingsExecutor interface {
	Execute(ctx context.Context, cmd UpdateAISettingsCommand) (*AISettingsView, error)
}
