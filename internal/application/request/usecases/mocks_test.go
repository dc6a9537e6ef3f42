package usecases

import (
	"context"
	"time"

	"github.com/opsdesk-inc/opsdesk/internal/domain/category"
	"github.com/opsdesk-inc/opsdesk/internal/domain/kb"
	"github.com/opsdesk-inc/opsdesk/internal/domain/request"
	vo "github.com/opsdesk-inc/opsdesk/internal/domain/request/valueobjects"
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/ai"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
)

type mockRequestRepository struct {
	SaveFunc                func(ctx context.Context, req *request.Request) error
	UpdateFieldsFunc        func(ctx context.Context, id uint, fields map[string]any) error
	DeleteFunc              func(ctx context.Context, id uint) error
	GetByIDFunc             func(ctx context.Context, id uint) (*request.Request, error)
	ListFunc                func(ctx context.Context, filter request.Filter) ([]*request.Request, int64, error)
	ListRecentFunc          func(ctx context.Context, limit int) ([]*request.Request, error)
	ListCreatedBetweenFunc  func(ctx context.Context, from, to time.Time) ([]*request.Request, error)
	CountTotalFunc          func(ctx context.Context) (int64, error)
	CountCreatedBetweenFunc func(ctx context.Context, from, to time.Time) (int64, error)
	CountByStatusFunc       func(ctx context.Context) (map[vo.Status]int64, error)
	CountByCategoryFunc     func(ctx context.Context) (map[uint]int64, error)
}

func (m *mockRequestRepository) Save(ctx context.Context, req *request.Request) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, req)
	}
	return nil
}

func (m *mockRequestRepository) UpdateFields(ctx context.Context, id uint, fields map[string]any) error {
	if m.UpdateFieldsFunc != nil {
		return m.UpdateFieldsFunc(ctx, id, fields)
	}
	return nil
}

func (m *mockRequestRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockRequestRepository) GetByID(ctx context.Context, id uint) (*request.Request, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockRequestRepository) List(ctx context.Context, filter request.Filter) ([]*request.Request, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
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
	return nil, nil
}

func (m *mockRequestRepository) CountByCategory(ctx context.Context) (map[uint]int64, error) {
	if m.CountByCategoryFunc != nil {
		return m.CountByCategoryFunc(ctx)
	}
	return nil, nil
}

type mockCategoryRepository struct {
	SaveFunc      func(ctx context.Context, cat *category.Category) error
	DeleteFunc    func(ctx context.Context, id uint) error
	GetByIDFunc   func(ctx context.Context, id uint) (*category.Category, error)
	GetByNameFunc func(ctx context.Context, name string) (*category.Category, error)
	ListFunc      func(ctx context.Context) ([]*category.Category, error)
	InUseFunc     func(ctx context.Context, id uint) (bool, error)
}

func (m *mockCategoryRepository) Save(ctx context.Context, cat *category.Category) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, cat)
	}
	return nil
}

func (m *mockCategoryRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockCategoryRepository) GetByID(ctx context.Context, id uint) (*category.Category, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCategoryRepository) GetByName(ctx context.Context, name string) (*category.Category, error) {
	if m.GetByNameFunc != nil {
		return m.GetByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *mockCategoryRepository) List(ctx context.Context) ([]*category.Category, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockCategoryRepository) InUse(ctx context.Context, id uint) (bool, error) {
	if m.InUseFunc != nil {
		return m.InUseFunc(ctx, id)
	}
	return false, nil
}

type mockKBRepository struct {
	SaveFunc    func(ctx context.Context, article *kb.Article) error
	UpdateFunc  func(ctx context.Context, article *kb.Article) error
	DeleteFunc  func(ctx context.Context, id uint) error
	GetByIDFunc func(ctx context.Context, id uint) (*kb.Article, error)
	ListFunc    func(ctx context.Context, filter kb.Filter) ([]*kb.Article, int64, error)
	SearchFunc  func(ctx context.Context, query string, limit int) ([]*kb.Article, error)
}

func (m *mockKBRepository) Save(ctx context.Context, article *kb.Article) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, article)
	}
	return nil
}

func (m *mockKBRepository) Update(ctx context.Context, article *kb.Article) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, article)
	}
	return nil
}

func (m *mockKBRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockKBRepository) GetByID(ctx context.Context, id uint) (*kb.Article, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockKBRepository) List(ctx context.Context, filter kb.Filter) ([]*kb.Article, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockKBRepository) Search(ctx context.Context, query string, limit int) ([]*kb.Article, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query, limit)
	}
	return nil, nil
}

type mockAIClient struct {
	ClassifyFunc       func(ctx context.Context, description string, categories []string) (ai.Classification, error)
	DraftReplyFunc     func(ctx context.Context, rc ai.ReplyContext) (string, error)
	SummarizeFunc      func(ctx context.Context, date string, entries []ai.SummaryEntry) (string, error)
	ImproveArticleFunc func(ctx context.Context, problem, solution string) (ai.ImprovedArticle, error)
	ReloadFunc         func(ctx context.Context) error
}

func (m *mockAIClient) Classify(ctx context.Context, description string, categories []string) (ai.Classification, error) {
	if m.ClassifyFunc != nil {
		return m.ClassifyFunc(ctx, description, categories)
	}
	return ai.Classification{}, nil
}

func (m *mockAIClient) DraftReply(ctx context.Context, rc ai.ReplyContext) (string, error) {
	if m.DraftReplyFunc != nil {
		return m.DraftReplyFunc(ctx, rc)
	}
	return "", nil
}

func (m *mockAIClient) Summarize(ctx context.Context, date string, entries []ai.SummaryEntry) (string, error) {
	if m.SummarizeFunc != nil {
		return m.SummarizeFunc(ctx, date, entries)
	}
	return "", nil
}

func (m *mockAIClient) ImproveArticle(ctx context.Context, problem, solution string) (ai.ImprovedArticle, error) {
	if m.ImproveArticleFunc != nil {
		return m.ImproveArticleFunc(ctx, problem, solution)
	}
	return ai.ImprovedArticle{Problem: problem, Solution: solution, Confidence: kb.DefaultConfidence, ShouldKeep: true}, nil
}

func (m *mockAIClient) Reload(ctx context.Context) error {
	if m.ReloadFunc != nil {
		return m.ReloadFunc(ctx)
	}
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                    {}
func (m *mockLogger) Info(msg string, args ...any)                     {}
func (m *mockLogger) Warn(msg string, args ...any)                     {}
func (m *mockLogger) Error(msg string, args ...any)                    {}
func (m *mockLogger) With(args ...any) logger.Interface                { return m }
func (m *mockLogger) Named(name string) logger.Interface               { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})   {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})   {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{})  {}
