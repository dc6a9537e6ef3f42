package kb

import "context"

type Repository interface {
	Save(ctx context.Context, article *Article) error
	Update(ctx context.Context, article *Article) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Article, error)
	List(ctx context.Context, filter Filter) ([]*Article, int64, error)
	// Search ranks by text relevance over problem summary and solution first,
	// confidence second. A query matching only a tag still matches but ranks
	// below direct text hits.
	Search(ctx context.Context, query string, limit int) ([]*Article, error)
}

type Filter struct {
	CategoryID *uint
	Search     string
	Page       int
	PageSize   int
}
