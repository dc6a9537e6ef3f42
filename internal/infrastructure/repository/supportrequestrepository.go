package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/opsdesk-inc/opsdesk/internal/domain/request"
	vo "github.com/opsdesk-inc/opsdesk/internal/domain/request/valueobjects"
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/persistence/mappers"
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/persistence/models"
	db "github.com/opsdesk-inc/opsdesk/internal/shared/db"
	apperrors "github.com/opsdesk-inc/opsdesk/internal/shared/errors"
)

// allowedRequestOrderByFields defines the whitelist of allowed ORDER BY
// fields to prevent SQL injection attacks.
var allowedRequestOrderByFields = map[string]bool{
	"id":             true,
	"requester_name": true,
	"channel":        true,
	"severity":       true,
	"status":         true,
	"category_id":    true,
	"created_at":     true,
	"updated_at":     true,
}

// allowedRequestUpdateFields is the whitelist of columns a partial update
// may touch.
var allowedRequestUpdateFields = map[string]bool{
	"requester_name":    true,
	"channel":           true,
	"description":       true,
	"category_id":       true,
	"severity":          true,
	"status":            true,
	"ai_recommendation": true,
	"ai_reply":          true,
	"solution":          true,
	"is_kb_article":     true,
	"closed_at":         true,
	"updated_at":        true,
}

type SupportRequestRepository struct {
	db     *gorm.DB
	mapper mappers.SupportRequestMapper
}

func NewSupportRequestRepository(gdb *gorm.DB) *SupportRequestRepository {
	return &SupportRequestRepository{
		db:     gdb,
		mapper: mappers.NewSupportRequestMapper(),
	}
}

func (r *SupportRequestRepository) Save(ctx context.Context, req *request.Request) error {
	model := r.mapper.ToModel(req)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save support request: %w", err)
	}

	if err := req.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

// UpdateFields writes only the named columns. Each writer touches just the
// fields it changed, so concurrent updates to different fields of the same
// request never clobber each other.
func (r *SupportRequestRepository) UpdateFields(ctx context.Context, id uint, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}

	updates := make(map[string]any, len(fields))
	for column, value := range fields {
		if !allowedRequestUpdateFields[column] {
			return fmt.Errorf("column %q is not updatable", column)
		}
		updates[column] = normalizeUpdateValue(value)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.
		Model(&models.SupportRequestModel{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return fmt.Errorf("failed to update support request: %w", result.Error)
	}

	// Note: RowsAffected may be 0 when updated values are identical to existing values.

	return nil
}

func (r *SupportRequestRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.SupportRequestModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete support request: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("support request not found")
	}
	return nil
}

func (r *SupportRequestRepository) GetByID(ctx context.Context, id uint) (*request.Request, error) {
	var model models.SupportRequestModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("support request not found")
		}
		return nil, fmt.Errorf("failed to find support request: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *SupportRequestRepository) List(
	ctx context.Context,
	filter request.Filter,
) ([]*request.Request, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.SupportRequestModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("description LIKE ? OR requester_name LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count support requests: %w", err)
	}

	// Apply sorting with whitelist validation to prevent SQL injection
	sortBy := strings.ToLower(filter.SortBy)
	if sortBy != "" && allowedRequestOrderByFields[sortBy] {
		order := strings.ToUpper(filter.SortOrder)
		if order != "ASC" && order != "DESC" {
			order = "DESC"
		}
		query = query.Order(sortBy + " " + order)
	} else {
		query = query.Order("created_at DESC")
	}

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var requestModels []models.SupportRequestModel
	if err := query.Find(&requestModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list support requests: %w", err)
	}

	return r.toDomainSlice(requestModels, &total)
}

func (r *SupportRequestRepository) ListRecent(ctx context.Context, limit int) ([]*request.Request, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var requestModels []models.SupportRequestModel
	if err := tx.
		Order("created_at DESC").
		Limit(limit).
		Find(&requestModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list recent support requests: %w", err)
	}

	requests, _, err := r.toDomainSlice(requestModels, nil)
	return requests, err
}

func (r *SupportRequestRepository) ListCreatedBetween(ctx context.Context, from, to time.Time) ([]*request.Request, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var requestModels []models.SupportRequestModel
	if err := tx.
		Where("created_at >= ? AND created_at <= ?", from.UnixMilli(), to.UnixMilli()).
		Order("created_at DESC").
		Find(&requestModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list support requests by date: %w", err)
	}

	requests, _, err := r.toDomainSlice(requestModels, nil)
	return requests, err
}

func (r *SupportRequestRepository) CountTotal(ctx context.Context) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var total int64
	if err := tx.Model(&models.SupportRequestModel{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count support requests: %w", err)
	}
	return total, nil
}

func (r *SupportRequestRepository) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var total int64
	if err := tx.
		Model(&models.SupportRequestModel{}).
		Where("created_at >= ? AND created_at <= ?", from.UnixMilli(), to.UnixMilli()).
		Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count support requests by date: %w", err)
	}
	return total, nil
}

func (r *SupportRequestRepository) CountByStatus(ctx context.Context) (map[vo.Status]int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []struct {
		Status string
		Count  int64
	}
	if err := tx.
		Model(&models.SupportRequestModel{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count support requests by status: %w", err)
	}

	counts := make(map[vo.Status]int64, len(rows))
	for _, row := range rows {
		counts[vo.Status(row.Status)] = row.Count
	}
	return counts, nil
}

func (r *SupportRequestRepository) CountByCategory(ctx context.Context) (map[uint]int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []struct {
		CategoryID *uint
		Count      int64
	}
	if err := tx.
		Model(&models.SupportRequestModel{}).
		Select("category_id, COUNT(*) as count").
		Group("category_id").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count support requests by category: %w", err)
	}

	// Uncategorized requests are reported under category ID 0.
	counts := make(map[uint]int64, len(rows))
	for _, row := range rows {
		if row.CategoryID == nil {
			counts[0] += row.Count
		} else {
			counts[*row.CategoryID] += row.Count
		}
	}
	return counts, nil
}

func (r *SupportRequestRepository) toDomainSlice(
	requestModels []models.SupportRequestModel,
	total *int64,
) ([]*request.Request, int64, error) {
	requests := make([]*request.Request, len(requestModels))
	for i, model := range requestModels {
		req, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		requests[i] = req
	}
	if total != nil {
		return requests, *total, nil
	}
	return requests, int64(len(requests)), nil
}

// normalizeUpdateValue converts time values to the millisecond columns the
// models use. Nil pointers stay nil so closed_at can be cleared.
func normalizeUpdateValue(value any) any {
	switch v := value.(type) {
	case time.Time:
		return v.UnixMilli()
	case *time.Time:
		if v == nil {
			return nil
		}
		return v.UnixMilli()
	default:
		return value
	}
}
