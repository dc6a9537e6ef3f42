package aisettings

import "context"

type Repository interface {
	// Load returns the singleton settings row, creating the default row if
	// none exists yet.
	Load(ctx context.Context) (*Settings, error)
	Update(ctx context.Context, settings *Settings) error
}
