package article

import (
	"context"
	"strings"
	"time"

	"plume.ink/plume-blog-server/app/domain/common"
	"plume.ink/plume-blog-server/app/domain/query"
	"plume.ink/plume-blog-server/app/utils/functional"
	"plume.ink/plume-blog-server/app/utils/ptr"
)

type ArticleService struct {
	repo Repository
}

func NewService(repo Repository) *ArticleService {
	return &ArticleService{
		repo: repo,
	}
}

// GetVisible loads an article for reader display. Missing or non-published
// articles both surface as not found.
func (s *ArticleService) GetVisible(ctx context.Context, id uint) (*Article, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil || !a.Visible() {
		return nil, common.ErrNotFound
	}
	return a, nil
}

func (s *ArticleService) IncrementViews(ctx context.Context, id uint) error {
	return s.repo.IncrementViews(ctx, id)
}

// Neighbors returns the previous and next published articles around the
// given one; either may be nil at the boundary.
func (s *ArticleService) Neighbors(ctx context.Context, a *Article) (prev *Article, next *Article, err error) {
	prev, err = s.repo.FindNeighbor(ctx, a.PubTime, false)
	if err != nil {
		return nil, nil, err
	}
	next, err = s.repo.FindNeighbor(ctx, a.PubTime, true)
	if err != nil {
		return nil, nil, err
	}
	return prev, next, nil
}

// PublishedSummaries is the provider behind every cached list page: a pure,
// repeatable read of the persistence layer.
func (s *ArticleService) PublishedSummaries(ctx context.Context, filter Filter, p *query.Pagination) ([]Summary, int64, error) {
	filter.Status = ptr.To(StatusPublished)
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	rows, err := s.repo.FindByFilter(ctx, filter, p)
	if err != nil {
		return nil, 0, err
	}
	summaries := functional.Map(rows, func(a *Article) Summary {
		return a.Summary()
	})
	return summaries, total, nil
}

// CountPublishedInCategories counts published articles across a set of
// category IDs, typically a category and its subtree.
func (s *ArticleService) CountPublishedInCategories(ctx context.Context, categoryIDs []uint) (int64, error) {
	return s.repo.Count(ctx, Filter{
		Status:      ptr.To(StatusPublished),
		Type:        ptr.To(TypeArticle),
		CategoryIDs: categoryIDs,
	})
}

// Search matches published articles on title or body.
func (s *ArticleService) Search(ctx context.Context, rawQuery string, p *query.Pagination) ([]Summary, int64, error) {
	q := strings.TrimSpace(rawQuery)
	if q == "" {
		return []Summary{}, 0, nil
	}
	return s.PublishedSummaries(ctx, Filter{
		Type:   ptr.To(TypeArticle),
		Search: &q,
	}, p)
}

// Create publishes a new article for the given author.
func (s *ArticleService) Create(ctx context.Context, a *Article) (*Article, error) {
	if a.Status == "" {
		a.Status = StatusPublished
	}
	if a.Type == "" {
		a.Type = TypeArticle
	}
	if a.PubTime.IsZero() {
		a.PubTime = time.Now()
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// findOwn scopes a lookup to the author's own articles; anything outside
// that scope is not found, never forbidden.
func (s *ArticleService) findOwn(ctx context.Context, authorID uint, id uint) (*Article, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil || a.AuthorID != authorID {
		return nil, common.ErrNotFound
	}
	return a, nil
}

func (s *ArticleService) UpdateOwn(ctx context.Context, authorID uint, a *Article) (*Article, error) {
	existing, err := s.findOwn(ctx, authorID, a.ID)
	if err != nil {
		return nil, err
	}
	existing.Title = a.Title
	existing.Body = a.Body
	if a.Excerpt != "" {
		existing.Excerpt = a.Excerpt
	}
	if a.CategoryID != 0 {
		existing.CategoryID = a.CategoryID
	}
	if a.Tags != nil {
		existing.Tags = a.Tags
	}
	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *ArticleService) DeleteOwn(ctx context.Context, authorID uint, id uint) error {
	if _, err := s.findOwn(ctx, authorID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// ListMine returns the author's own articles, drafts included, newest first.
func (s *ArticleService) ListMine(ctx context.Context, authorID uint, p *query.Pagination) ([]*Article, int64, error) {
	filter := Filter{
		AuthorID: &authorID,
	}
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	rows, err := s.repo.FindByFilter(ctx, filter, p)
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}
