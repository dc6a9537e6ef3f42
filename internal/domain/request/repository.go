package request

import (
	"context"
	"time"

	vo "github.com/opsdesk-inc/opsdesk/internal/domain/request/valueobjects"
)

type Repository interface {
	Save(ctx context.Context, req *Request) error
	// UpdateFields applies only the named columns so concurrent updates to
	// disjoint fields never clobber each other. Column names must come from
	// the repository's whitelist.
	UpdateFields(ctx context.Context, id uint, fields map[string]any) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Request, error)
	List(ctx context.Context, filter Filter) ([]*Request, int64, error)
	ListRecent(ctx context.Context, limit int) ([]*Request, error)
	ListCreatedBetween(ctx context.Context, from, to time.Time) ([]*Request, error)
	CountTotal(ctx context.Context) (int64, error)
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)
	CountByStatus(ctx context.Context) (map[vo.Status]int64, error)
	CountByCategory(ctx context.Context) (map[uint]int64, error)
}

type Filter struct {
	Status     *vo.Status
	CategoryID *uint
	Search     string
	Page       int
	PageSize   int
	SortBy     string
	SortOrder  string
}
