package usecases

import "context"

type ListCategoriesExecutor interface {
	Execute(ctx context.Context) ([]CategoryDTO, error)
}

type CreateCategoryExecutor interface {
	Execute(ctx context.Context, cmd CreateCategoryCommand) (*CategoryDTO, error)
}

type DeleteCategoryExecutor interface {
	Execute(ctx context.Context, cmd DeleteCategoryCommand) error
}
