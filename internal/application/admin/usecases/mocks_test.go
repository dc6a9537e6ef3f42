package usecases

import (
	"context"

	"github.com/opsdesk-inc/opsdesk/internal/domain/aisettings"
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/ai"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
)

type mockSettingsRepository struct {
	LoadFunc   func(ctx context.Context) (*aisettings.Settings, error)
	UpdateFunc func(ctx context.Context, settings *aisettings.Settings) error
}

func (m *mockSettingsRepository) Load(ctx context.Context) (*aisettings.Settings, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx)
	}
	return aisettings.DefaultSettings(), nil
}

func (m *mockSettingsRepository) Update(ctx context.Context, settings *aisettings.Settings) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, settings)
	}
	return nil
}

type mockAIClient struct {
	ReloadFunc func(ctx context.Context) error
}

func (m *mockAIClient) Classify(ctx context.Context, description string, categories []string) (ai.Classification, error) {
	return ai.Classification{}, nil
}

func (m *mockAIClient) DraftReply(ctx context.Context, rc ai.ReplyContext) (string, error) {
	return "", nil
}

func (m *mockAIClient) Summarize(ctx context.Context, date string, entries []ai.SummaryEntry) (string, error) {
	return "", nil
}

func (m *mockAIClient) ImproveArticle(ctx context.Context, problem, solution string) (ai.ImprovedArticle, error) {
	return ai.ImprovedArticle{Problem: problem, Solution: solution, Confidence: 3, ShouldKeep: true}, nil
}

func (m *mockAIClient) Reload(ctx context.Context) error {
	if m.ReloadFunc != nil {
		return m.ReloadFunc(ctx)
	}
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
