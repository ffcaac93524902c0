package listing

import (
	"context"
	"encoding/json"
	"time"

	"plume.ink/plume-blog-server/app/domain/article"
	"plume.ink/plume-blog-server/app/domain/query"
	"plume.ink/plume-blog-server/app/infrastructure/cache"
)

// Store is the slice of the cache the listing layer needs. The Redis cache
// service satisfies it; tests substitute an in-memory map.
type Store interface {
	GetWithFallback(ctx context.Context, key string, fallback func() (string, error), expiration time.Duration) (string, error)
}

// CachedPage is the unit of caching: one page of article summaries plus the
// totals needed to render pagination without a second query. It is stored as
// JSON under a versioned key and recomputed whole on a miss.
type CachedPage struct {
	Items    []article.Summary `json:"items"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	LastPage int               `json:"last_page"`
}

// pageSpec describes one cacheable listing: how its keys are derived and how
// a page is recomputed on a miss.
type pageSpec struct {
	key      func(page int) string
	fetch    func(ctx context.Context, p *query.Pagination) ([]article.Summary, int64, error)
	pageSize int
}

// get is the read path shared by every listing. A page beyond the end of the
// result set clamps to the last valid page rather than returning an empty
// body, so stale links keep working after articles are removed. The total is
// unknown until the first read, so the clamp costs one extra fetch.
func (s *Service) get(ctx context.Context, spec pageSpec, page int) (*CachedPage, error) {
	result, err := s.getPage(ctx, spec, page)
	if err != nil {
		return nil, err
	}
	if page > 1 && len(result.Items) == 0 {
		last := query.ClampPage(page, result.LastPage)
		if last != page {
			return s.getPage(ctx, spec, last)
		}
	}
	return result, nil
}

func (s *Service) getPage(ctx context.Context, spec pageSpec, page int) (*CachedPage, error) {
	raw, err := s.store.GetWithFallback(ctx, spec.key(page), func() (string, error) {
		pagination := &query.Pagination{
			Page:     page,
			PageSize: spec.pageSize,
		}
		items, total, err := spec.fetch(ctx, pagination)
		if err != nil {
			return "", err
		}
		computed := CachedPage{
			Items:    items,
			Total:    total,
			Page:     page,
			LastPage: query.LastPage(total, spec.pageSize),
		}
		encoded, err := json.Marshal(computed)
		if err != nil {
			return "", err
		}
		return string(encoded), nil
	}, cache.ListCacheTTL)
	if err != nil {
		return nil, err
	}

	var result CachedPage
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, err
	}
	return &result, nil
}
