package usecases

import (
	"context"
	"time"

	"github.com/opsdesk-inc/opsdesk/internal/domain/category"
	"github.com/opsdesk-inc/opsdesk/internal/shared/errors"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
)

type CategoryDTO struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func fromEntity(cat *category.Category) CategoryDTO {
	return CategoryDTO{
		ID:          cat.ID(),
		Name:        cat.Name(),
		Description: cat.Description(),
		CreatedAt:   cat.CreatedAt(),
	}
}

type ListCategoriesUseCase struct {
	categoryRepo category.Repository
	logger       logger.Interface
}

func NewListCategoriesUseCase(categoryRepo category.Repository, logger logger.Interface) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{categoryRepo: categoryRepo, logger: logger}
}

func (uc *ListCategoriesUseCase) Execute(ctx context.Context) ([]CategoryDTO, error) {
	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list categories", "error", err)
		return nil, err
	}

	items := make([]CategoryDTO, len(categories))
	for i, cat := range categories {
		items[i] = fromEntity(cat)
	}
	return items, nil
}

type CreateCategoryCommand struct {
	Name        string
	Description string
}

type CreateCategoryUseCase struct {
	categoryRepo category.Repository
	logger       logger.Interface
}

func NewCreateCategoryUseCase(categoryRepo category.Repository, logger logger.Interface) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{categoryRepo: categoryRepo, logger: logger}
}

func (uc *CreateCategoryUseCase) Execute(ctx context.Context, cmd CreateCategoryCommand) (*CategoryDTO, error) {
	if existing, err := uc.categoryRepo.GetByName(ctx, cmd.Name); err == nil && existing != nil {
		return nil, errors.NewConflictError("category with this name already exists")
	}

	cat, err := category.NewCategory(cmd.Name, cmd.Description)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.categoryRepo.Save(ctx, cat); err != nil {
		uc.logger.Errorw("failed to save category", "name", cmd.Name, "error", err)
		return nil, err
	}

	uc.logger.Infow("category created", "category_id", cat.ID(), "name", cat.Name())

	result := fromEntity(cat)
	return &result, nil
}

type DeleteCategoryCommand struct {
	CategoryID uint
}

type DeleteCategoryUseCase struct {
	categoryRepo category.Repository
	logger       logger.Interface
}

func NewDeleteCategoryUseCase(categoryRepo category.Repository, logger logger.Interface) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{categoryRepo: categoryRepo, logger: logger}
}

// Execute deletes a category unless requests still reference it.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, cmd DeleteCategoryCommand) error {
	if _, err := uc.categoryRepo.GetByID(ctx, cmd.CategoryID); err != nil {
		return err
	}

	inUse, err := uc.categoryRepo.InUse(ctx, cmd.CategoryID)
	if err != nil {
		uc.logger.Errorw("failed to check category usage", "category_id", cmd.CategoryID, "error", err)
		return err
	}
	if inUse {
		return errors.NewConflictError("category is referenced by existing requests")
	}

	if err := uc.categoryRepo.Delete(ctx, cmd.CategoryID); err != nil {
		uc.logger.Errorw("failed to delete category", "category_id", cmd.CategoryID, "error", err)
		return err
	}

	uc.logger.Infow("category deleted", "category_id", cmd.CategoryID)
	return nil
}
