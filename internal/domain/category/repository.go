package category

import "context"

type Repository interface {
	Save(ctx context.Context, cat *Category) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Category, error)
	// GetByName matches the exact category name. Used to resolve the
	// classifier's suggested category back to a row.
	GetByName(ctx context.Context, name string) (*Category, error)
	List(ctx context.Context) ([]*Category, error)
	// InUse reports whether any support request still references the
	// category. Deletion is blocked while it does.
	InUse(ctx context.Context, id uint) (bool, error)
}
