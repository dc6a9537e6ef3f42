package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/opsdesk-inc/opsdesk/internal/domain/kb"
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/persistence/mappers"
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/persistence/models"
	db "github.com/opsdesk-inc/opsdesk/internal/shared/db"
	apperrors "github.com/opsdesk-inc/opsdesk/internal/shared/errors"
)

const defaultSearchLimit = 20

type KBArticleRepository struct {
	db     *gorm.DB
	mapper mappers.KBArticleMapper
}

func NewKBArticleRepository(gdb *gorm.DB) *KBArticleRepository {
	return &KBArticleRepository{
		db:     gdb,
		mapper: mappers.NewKBArticleMapper(),
	}
}

func (r *KBArticleRepository) Save(ctx context.Context, article *kb.Article) error {
	model := r.mapper.ToModel(article)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save KB article: %w", err)
	}

	if err := article.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *KBArticleRepository) Update(ctx context.Context, article *kb.Article) error {
	model := r.mapper.ToModel(article)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.KBArticleModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"problem_summary": model.ProblemSummary,
			"solution":        model.Solution,
			"category_id":     model.CategoryID,
			"tags":            model.Tags,
			"confidence":      model.Confidence,
			"updated_at":      model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update KB article: %w", result.Error)
	}

	return nil
}

func (r *KBArticleRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.KBArticleModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete KB article: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("KB article not found")
	}
	return nil
}

func (r *KBArticleRepository) GetByID(ctx context.Context, id uint) (*kb.Article, error) {
	var model models.KBArticleModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("KB article not found")
		}
		return nil, fmt.Errorf("failed to find KB article: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *KBArticleRepository) List(ctx context.Context, filter kb.Filter) ([]*kb.Article, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.KBArticleModel{})

	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("problem_summary LIKE ? OR solution LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count KB articles: %w", err)
	}

	query = query.Order("created_at DESC")
	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var articleModels []models.KBArticleModel
	if err := query.Find(&articleModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list KB articles: %w", err)
	}

	articles := make([]*kb.Article, len(articleModels))
	for i, model := range articleModels {
		article, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		articles[i] = article
	}

	return articles, total, nil
}

// Search matches the query against problem summary, solution and tags. Rows
// are ranked by where the match occurred: a hit in the problem summary
// outweighs one in the solution, and tag-only matches rank last. Confidence
// breaks ties.
func (r *KBArticleRepository) Search(ctx context.Context, query string, limit int) ([]*kb.Article, error) {
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	pattern := "%" + query + "%"

	tx := db.GetTxFromContext(ctx, r.db)

	var articleModels []models.KBArticleModel
	if err := tx.
		Model(&models.KBArticleModel{}).
		Select("*, (CASE WHEN problem_summary LIKE ? THEN 2 ELSE 0 END) + (CASE WHEN solution LIKE ? THEN 1 ELSE 0 END) AS relevance",
			pattern, pattern).
		Where("problem_summary LIKE ? OR solution LIKE ? OR tags LIKE ?", pattern, pattern, pattern).
		Order("relevance DESC, confidence DESC, created_at DESC").
		Limit(limit).
		Find(&articleModels).Error; err != nil {
		return nil, fmt.Errorf("failed to search KB articles: %w", err)
	}

	articles := make([]*kb.Article, len(articleModels))
	for i, model := range articleModels {
		article, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		articles[i] = article
	}

	return articles, nil
}
