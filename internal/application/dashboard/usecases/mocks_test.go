package usecases

import (
	"context"
	"time"

	"github.com/opsdesk-inc/opsdesk/internal/domain/category"
	"github.com/opsdesk-inc/opsdesk/internal/domain/request"
	vo "github.com/opsdesk-inc/opsdesk/internal/domain/request/valueobjects"
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/ai"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
)

type mockRequestRepository struct {
	ListRecentFunc          func(ctx context.Context, limit int) ([]*request.Request, error)
	ListCreatedBetweenFunc  func(ctx context.Context, from, to time.Time) ([]*request.Request, error)
	CountTotalFunc          func(ctx context.Context) (int64, error)
	CountCreatedBetweenFunc func(ctx context.Context, from, to time.Time) (int64, error)
	CountByStatusFunc       func(ctx context.Context) (map[vo.Status]int64, error)
	CountByCategoryFunc     func(ctx context.Context) (map[uint]int64, error)
}

func (m *mockRequestRepository) Save(ctx context.Context, req *request.Request) error {
	return nil
}

func (m *mockRequestRepository) UpdateFields(ctx context.Context, id uint, fields map[string]any) error {
	return nil
}

func (m *mockRequestRepository) Delete(ctx context.Context, id uint) error {
	return nil
}

func (m *mockRequestRepository) GetByID(ctx context.Context, id uint) (*request.Request, error) {
	return nil, nil
}

func (m *mockRequestRepository) List(ctx context.Context, filter request.Filter) ([]*request.Request, int64, error) {
	return nil, 0, nil
}

func (m *mockRequestRepository) ListRecent(ctx context.Context, limit int) ([]*request.Request, error) {
	if m.ListRecentFunc != nil {
		return m.ListRecentFunc(ctx, limit)
	}
	return nil, nil
}

func (m *mockRequestRepository) ListCreatedBetween(ctx context.Context, from, to time.Time) ([]*request.Request, error) {
	if m.ListCreatedBetweenFunc != nil {
		return m.ListCreatedBetweenFunc(ctx, from, to)
	}
	return nil, nil
}

func (m *mockRequestRepository) CountTotal(ctx context.Context) (int64, error) {
	if m.CountTotalFunc != nil {
		return m.CountTotalFunc(ctx)
	}
	return 0, nil
}

func (m *mockRequestRepository) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	if m.CountCreatedBetweenFunc != nil {
		return m.CountCreatedBetweenFunc(ctx, from, to)
	}
	return 0, nil
}

func (m *mockRequestRepository) CountByStatus(ctx context.Context) (map[vo.Status]int64, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx)
	}
	return map[vo.Status]int64{}, nil
}

func (m *mockRequestRepository) CountByCategory(ctx context.Context) (map[uint]int64, error) {
	if m.CountByCategoryFunc != nil {
		return m.CountByCategoryFunc(ctx)
	}
	return map[uint]int64{}, nil
}

type mockCategoryRepository struct {
	ListFunc func(ctx context.Context) ([]*category.Category, error)
}

func (m *mockCategoryRepository) Save(ctx context.Context, cat *category.Category) error {
	return nil
}

func (m *mockCategoryRepository) Delete(ctx context.Context, id uint) error {
	return nil
}

func (m *mockCategoryRepository) GetByID(ctx context.Context, id uint) (*category.Category, error) {
	return nil, nil
}

func (m *mockCategoryRepository) GetByName(ctx context.Context, name string) (*category.Category, error) {
	return nil, nil
}

func (m *mockCategoryRepository) List(ctx context.Context) ([]*category.Category, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockCategoryRepository) InUse(ctx context.Context, id uint) (bool, error) {
	return false, nil
}

type mockAIClient struct {
	SummarizeFunc func(ctx context.Context, date string, entries []ai.SummaryEntry) (string, error)
}

func (m *mockAIClient) Classify(ctx context.Context, description string, categories []string) (ai.Classification, error) {
	return ai.Classification{}, nil
}

func (m *mockAIClient) DraftReply(ctx context.Context, rc ai.ReplyContext) (string, error) {
	return "", nil
}

func (m *mockAIClient) Summarize(ctx context.Context, date string, entries []ai.SummaryEntry) (string, error) {
	if m.SummarizeFunc != nil {
		return m.SummarizeFunc(ctx, date, entries)
	}
	return "", nil
}

func (m *mockAIClient) ImproveArticle(ctx context.Context, problem, solution string) (ai.ImprovedArticle, error) {
	return ai.ImprovedArticle{Problem: problem, Solution: solution, Confidence: 3, ShouldKeep: true}, nil
}

func (m *mockAIClient) Reload(ctx context.Context) error {
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
