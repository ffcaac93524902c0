package tag

import (
	"context"
	"time"
)

type Tag struct {
	ID        uint
	Name      string
	Slug      string
	CreatedAt time.Time
}

type Repository interface {
	Create(ctx context.Context, t *Tag) error
	FindBySlug(ctx context.Context, slug string) (*Tag, error)
	FindByNames(ctx context.Context, names []string) ([]*Tag, error)
	FindAll(ctx context.Context) ([]*Tag, error)
}

type TagService struct {
	repo Repository
}

func NewService(repo Repository) *TagService {
	return &TagService{
		repo: repo,
	}
}

func (s *TagService) FindBySlug(ctx context.Context, slug string) (*Tag, error) {
	return s.repo.FindBySlug(ctx, slug)
}

func (s *TagService) ListAll(ctx context.Context) ([]*Tag, error) {
	return s.repo.FindAll(ctx)
}
