package category

import (
	"fmt"
	"strings"
	"time"
)

// Category classifies support requests and knowledge base articles.
type Category struct {
	id          uint
	name        string
	description string
	createdAt   time.Time
}

func NewCategory(name, description string) (*Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("category name is required")
	}

	return &Category{
		name:        name,
		description: description,
		createdAt:   time.Now().UTC(),
	}, nil
}

func ReconstructCategory(id uint, name, description string, createdAt time.Time) *Category {
	return &Category{
		id:          id,
		name:        name,
		description: description,
		createdAt:   createdAt,
	}
}

func (c *Category) ID() uint             { return c.id }
func (c *Category) Name() string         { return c.name }
func (c *Category) Description() string  { return c.description }
func (c *Category) CreatedAt() time.Time { return c.createdAt }

func (c *Category) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("category ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("category ID cannot be zero")
	}
	c.id = id
	return nil
}
