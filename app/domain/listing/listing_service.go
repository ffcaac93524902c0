package listing

import (
	"context"

	"plume.ink/plume-blog-server/app/domain/article"
	"plume.ink/plume-blog-server/app/domain/category"
	"plume.ink/plume-blog-server/app/domain/common"
	"plume.ink/plume-blog-server/app/domain/query"
	"plume.ink/plume-blog-server/app/domain/setting"
	"plume.ink/plume-blog-server/app/domain/tag"
	"plume.ink/plume-blog-server/app/domain/user"
	"plume.ink/plume-blog-server/app/infrastructure/cache"
	"plume.ink/plume-blog-server/app/utils/ptr"
)

// archivesPageSize bounds the unpaginated archives listing. It is large
// enough that a personal blog never hits it.
const archivesPageSize = 2000

type Service struct {
	store           Store
	articleService  *article.ArticleService
	categoryService *category.CategoryService
	tagService      *tag.TagService
	userService     *user.UserService
	settingService  *setting.Service
}

func NewService(
	store Store,
	articleService *article.ArticleService,
	categoryService *category.CategoryService,
	tagService *tag.TagService,
	userService *user.UserService,
	settingService *setting.Service,
) *Service {
	return &Service{
		store:           store,
		articleService:  articleService,
		categoryService: categoryService,
		tagService:      tagService,
		userService:     userService,
		settingService:  settingService,
	}
}

func (s *Service) pageSize(ctx context.Context) int {
	settings, err := s.settingService.GetBlogSettings(ctx)
	if err != nil || settings.ArticlePageSize <= 0 {
		return 10
	}
	return settings.ArticlePageSize
}

// Index returns one page of the front-page article listing.
func (s *Service) Index(ctx context.Context, rawPage string) (*CachedPage, error) {
	page := query.SanitizePage(rawPage)
	spec := pageSpec{
		key:      cache.IndexKey,
		pageSize: s.pageSize(ctx),
		fetch: func(ctx context.Context, p *query.Pagination) ([]article.Summary, int64, error) {
			return s.articleService.PublishedSummaries(ctx, article.Filter{
				Type: ptr.To(article.TypeArticle),
			}, p)
		},
	}
	return s.get(ctx, spec, page)
}

// Category returns one page of the archive for a category and all of its
// transitive subcategories.
func (s *Service) Category(ctx context.Context, slug string, rawPage string) (*category.Category, *CachedPage, error) {
	c, err := s.categoryService.FindBySlug(ctx, slug)
	if err != nil {
		return nil, nil, err
	}
	if c == nil {
		return nil, nil, common.ErrNotFound
	}
	categoryIDs, err := s.categoryService.TransitiveSubCategoryIDs(ctx, c)
	if err != nil {
		return nil, nil, err
	}

	page := query.SanitizePage(rawPage)
	spec := pageSpec{
		key: func(page int) string {
			return cache.CategoryKey(c.Name, page)
		},
		pageSize: s.pageSize(ctx),
		fetch: func(ctx context.Context, p *query.Pagination) ([]article.Summary, int64, error) {
			return s.articleService.PublishedSummaries(ctx, article.Filter{
				CategoryIDs: categoryIDs,
			}, p)
		},
	}
	result, err := s.get(ctx, spec, page)
	if err != nil {
		return nil, nil, err
	}
	return c, result, nil
}

// Author returns one page of an author's published articles.
func (s *Service) Author(ctx context.Context, authorSlug string, rawPage string) (*user.User, *CachedPage, error) {
	u, err := s.userService.FindByUsername(ctx, authorSlug)
	if err != nil {
		return nil, nil, err
	}
	if u == nil {
		return nil, nil, common.ErrNotFound
	}

	page := query.SanitizePage(rawPage)
	spec := pageSpec{
		key: func(page int) string {
			return cache.AuthorKey(u.Slug(), page)
		},
		pageSize: s.pageSize(ctx),
		fetch: func(ctx context.Context, p *query.Pagination) ([]article.Summary, int64, error) {
			return s.articleService.PublishedSummaries(ctx, article.Filter{
				Type:     ptr.To(article.TypeArticle),
				AuthorID: &u.ID,
			}, p)
		},
	}
	result, err := s.get(ctx, spec, page)
	if err != nil {
		return nil, nil, err
	}
	return u, result, nil
}

// Tag returns one page of articles carrying a tag.
func (s *Service) Tag(ctx context.Context, slug string, rawPage string) (*tag.Tag, *CachedPage, error) {
	t, err := s.tagService.FindBySlug(ctx, slug)
	if err != nil {
		return nil, nil, err
	}
	if t == nil {
		return nil, nil, common.ErrNotFound
	}

	page := query.SanitizePage(rawPage)
	spec := pageSpec{
		key: func(page int) string {
			return cache.TagKey(t.Name, page)
		},
		pageSize: s.pageSize(ctx),
		fetch: func(ctx context.Context, p *query.Pagination) ([]article.Summary, int64, error) {
			return s.articleService.PublishedSummaries(ctx, article.Filter{
				Type:    ptr.To(article.TypeArticle),
				TagName: &t.Name,
			}, p)
		},
	}
	result, err := s.get(ctx, spec, page)
	if err != nil {
		return nil, nil, err
	}
	return t, result, nil
}

// Archives returns every published article in one cached listing; the page
// parameter of the other listings does not apply here.
func (s *Service) Archives(ctx context.Context) (*CachedPage, error) {
	spec := pageSpec{
		key: func(int) string {
			return cache.ArchivesKey()
		},
		pageSize: archivesPageSize,
		fetch: func(ctx context.Context, p *query.Pagination) ([]article.Summary, int64, error) {
			return s.articleService.PublishedSummaries(ctx, article.Filter{}, p)
		},
	}
	return s.getPage(ctx, spec, 1)
}
