package mappers

import (
	"github.com/opsdesk-inc/opsdesk/internal/domain/category"
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/persistence/models"
)

type CategoryMapper interface {
	ToModel(cat *category.Category) *models.CategoryModel
	ToDomain(model *models.CategoryModel) *category.Category
}

type CategoryMapperImpl struct{}

func NewCategoryMapper() CategoryMapper {
	return &CategoryMapperImpl{}
}

func (m *CategoryMapperImpl) ToModel(cat *category.Category) *models.CategoryModel {
	return &models.CategoryModel{
		ID:          cat.ID(),
		Name:        cat.Name(),
		Description: cat.Description(),
		CreatedAt:   cat.CreatedAt().UnixMilli(),
	}
}

func (m *CategoryMapperImpl) ToDomain(model *models.CategoryModel) *category.Category {
	return category.ReconstructCategory(
		model.ID,
		model.Name,
		model.Description,
		millisToTime(model.CreatedAt),
	)
}
