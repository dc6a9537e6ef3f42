package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsdesk-inc/opsdesk/internal/domain/category"
	"github.com/opsdesk-inc/opsdesk/internal/domain/request"
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/ai"
	"github.com/opsdesk-inc/opsdesk/internal/shared/errors"
)

func validCreateCommand() CreateRequestCommand {
	return CreateRequestCommand{
		RequesterName: "Alice",
		Channel:       "email",
		Description:   "VPN keeps disconnecting every few minutes",
		CreatedBy:     1,
	}
}

func TestCreateRequest(t *testing.T) {
	t.Run("creates open request with medium default severity", func(t *testing.T) {
		var saved *request.Request
		repo := &mockRequestRepository{
			SaveFunc: func(ctx context.Context, req *request.Request) error {
				saved = req
				return req.SetID(42)
			},
		}
		uc := NewCreateRequestUseCase(repo, &mockCategoryRepository{}, &mockAIClient{}, &mockLogger{})

		result, err := uc.Execute(context.Background(), validCreateCommand())
		require.NoError(t, err)

		assert.Equal(t, uint(42), result.RequestID)
		assert.Equal(t, "open", result.Status)
		assert.Equal(t, "medium", result.Severity)
		require.NotNil(t, saved)
	})

	t.Run("classification failure does not block intake", func(t *testing.T) {
		repo := &mockRequestRepository{
			SaveFunc: func(ctx context.Context, req *request.Request) error {
				return req.SetID(7)
			},
		}
		aiClient := &mockAIClient{
			ClassifyFunc: func(ctx context.Context, description string, categories []string) (ai.Classification, error) {
				return ai.Classification{}, errors.NewAIUnavailableError("provider down")
			},
		}
		uc := NewCreateRequestUseCase(repo, &mockCategoryRepository{}, aiClient, &mockLogger{})

		result, err := uc.Execute(context.Background(), validCreateCommand())
		require.NoError(t, err)
		assert.Nil(t, result.CategoryID)
		assert.Nil(t, result.AIRecommendation)
	})

	t.Run("applies classification when the classifier answers", func(t *testing.T) {
		cat := category.ReconstructCategory(3, "Network / VPN", "", testTime())
		categoryRepo := &mockCategoryRepository{
			ListFunc: func(ctx context.Context) ([]*category.Category, error) {
				return []*category.Category{cat}, nil
			},
			GetByNameFunc: func(ctx context.Context, name string) (*category.Category, error) {
				require.Equal(t, "Network / VPN", name)
				return cat, nil
			},
		}
		catName := "Network / VPN"
		sev := "high"
		rec := "Check the VPN concentrator logs"
		aiClient := &mockAIClient{
			ClassifyFunc: func(ctx context.Context, description string, categories []string) (ai.Classification, error) {
				assert.Equal(t, []string{"Network / VPN"}, categories)
				return ai.Classification{CategoryName: &catName, Severity: &sev, Recommendation: &rec}, nil
			},
		}
		repo := &mockRequestRepository{
			SaveFunc: func(ctx context.Context, req *request.Request) error {
				return req.SetID(8)
			},
		}
		uc := NewCreateRequestUseCase(repo, categoryRepo, aiClient, &mockLogger{})

		result, err := uc.Execute(context.Background(), validCreateCommand())
		require.NoError(t, err)

		require.NotNil(t, result.CategoryID)
		assert.Equal(t, uint(3), *result.CategoryID)
		assert.Equal(t, "high", result.Severity)
		require.NotNil(t, result.AIRecommendation)
		assert.Equal(t, "Check the VPN concentrator logs", *result.AIRecommendation)
	})

	t.Run("supplied category and severity win over the classifier", func(t *testing.T) {
		cat := category.ReconstructCategory(3, "Network / VPN", "", testTime())
		categoryRepo := &mockCategoryRepository{
			ListFunc: func(ctx context.Context) ([]*category.Category, error) {
				return []*category.Category{cat}, nil
			},
			GetByNameFunc: func(ctx context.Context, name string) (*category.Category, error) {
				return cat, nil
			},
		}
		catName := "Network / VPN"
		sev := "high"
		rec := "Check the VPN concentrator logs"
		aiClient := &mockAIClient{
			ClassifyFunc: func(ctx context.Context, description string, categories []string) (ai.Classification, error) {
				return ai.Classification{CategoryName: &catName, Severity: &sev, Recommendation: &rec}, nil
			},
		}
		repo := &mockRequestRepository{
			SaveFunc: func(ctx context.Context, req *request.Request) error {
				return req.SetID(10)
			},
		}
		uc := NewCreateRequestUseCase(repo, categoryRepo, aiClient, &mockLogger{})

		suppliedCategory := uint(5)
		cmd := validCreateCommand()
		cmd.CategoryID = &suppliedCategory
		cmd.Severity = "low"

		result, err := uc.Execute(context.Background(), cmd)
		require.NoError(t, err)

		require.NotNil(t, result.CategoryID)
		assert.Equal(t, uint(5), *result.CategoryID)
		assert.Equal(t, "low", result.Severity)
		// The advisory note still attaches.
		require.NotNil(t, result.AIRecommendation)
		assert.Equal(t, "Check the VPN concentrator logs", *result.AIRecommendation)
	})

	t.Run("unknown suggested category is ignored", func(t *testing.T) {
		catName := "Does Not Exist"
		aiClient := &mockAIClient{
			ClassifyFunc: func(ctx context.Context, description string, categories []string) (ai.Classification, error) {
				return ai.Classification{CategoryName: &catName}, nil
			},
		}
		categoryRepo := &mockCategoryRepository{
			GetByNameFunc: func(ctx context.Context, name string) (*category.Category, error) {
				return nil, errors.NewNotFoundError("category not found")
			},
		}
		repo := &mockRequestRepository{
			SaveFunc: func(ctx context.Context, req *request.Request) error {
				return req.SetID(9)
			},
		}
		uc := NewCreateRequestUseCase(repo, categoryRepo, aiClient, &mockLogger{})

		result, err := uc.Execute(context.Background(), validCreateCommand())
		require.NoError(t, err)
		assert.Nil(t, result.CategoryID)
	})

	t.Run("rejects blank requester name", func(t *testing.T) {
		uc := NewCreateRequestUseCase(&mockRequestRepository{}, &mockCategoryRepository{}, &mockAIClient{}, &mockLogger{})

		cmd := validCreateCommand()
		cmd.RequesterName = "  "
		_, err := uc.Execute(context.Background(), cmd)
		require.Error(t, err)
		assert.True(t, errors.IsValidation(err))
	})

	t.Run("rejects invalid channel", func(t *testing.T) {
		uc := NewCreateRequestUseCase(&mockRequestRepository{}, &mockCategoryRepository{}, &mockAIClient{}, &mockLogger{})

		cmd := validCreateCommand()
		cmd.Channel = "carrier_pigeon"
		_, err := uc.Execute(context.Background(), cmd)
		require.Error(t, err)
		assert.True(t, errors.IsValidation(err))
	})
}
