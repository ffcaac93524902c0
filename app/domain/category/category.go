package category

import (
	"context"
	"time"
)

type Category struct {
	ID        uint
	Name      string
	Slug      string
	ParentID  *uint
	Weight    int
	CreatedAt time.Time
}

type Repository interface {
	Create(ctx context.Context, c *Category) error
	FindBySlug(ctx context.Context, slug string) (*Category, error)
	FindAll(ctx context.Context) ([]*Category, error)
}
