package listing

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"plume.ink/plume-blog-server/app/domain/article"
	"plume.ink/plume-blog-server/app/domain/category"
	"plume.ink/plume-blog-server/app/domain/query"
	"plume.ink/plume-blog-server/app/domain/setting"
	"plume.ink/plume-blog-server/app/domain/tag"
	"plume.ink/plume-blog-server/app/domain/user"
)

type memoryStore struct {
	values    map[string]string
	fallbacks map[string]int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		values:    map[string]string{},
		fallbacks: map[string]int{},
	}
}

func (m *memoryStore) GetWithFallback(_ context.Context, key string, fallback func() (string, error), _ time.Duration) (string, error) {
	if value, ok := m.values[key]; ok {
		return value, nil
	}
	m.fallbacks[key]++
	value, err := fallback()
	if err != nil {
		return "", err
	}
	m.values[key] = value
	return value, nil
}

func (m *memoryStore) clear() {
	m.values = map[string]string{}
}

type fakeArticleRepo struct {
	articles []*article.Article
}

func (f *fakeArticleRepo) Create(_ context.Context, a *article.Article) error {
	a.ID = uint(len(f.articles) + 1)
	f.articles = append(f.articles, a)
	return nil
}

func (f *fakeArticleRepo) Update(context.Context, *article.Article) error { return nil }
func (f *fakeArticleRepo) Delete(context.Context, uint) error             { return nil }

func (f *fakeArticleRepo) FindByID(_ context.Context, id uint) (*article.Article, error) {
	for _, a := range f.articles {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeArticleRepo) matches(a *article.Article, filter article.Filter) bool {
	if filter.Status != nil && a.Status != *filter.Status {
		return false
	}
	if filter.Type != nil && a.Type != *filter.Type {
		return false
	}
	if filter.AuthorID != nil && a.AuthorID != *filter.AuthorID {
		return false
	}
	if len(filter.CategoryIDs) > 0 {
		found := false
		for _, id := range filter.CategoryIDs {
			if a.CategoryID == id {
				found = true
			}
		}
		if !found {
			return false
		}
	}
	if filter.TagName != nil {
		found := false
		for _, name := range a.Tags {
			if name == *filter.TagName {
				found = true
			}
		}
		if !found {
			return false
		}
	}
	if filter.Search != nil {
		q := strings.ToLower(*filter.Search)
		if !strings.Contains(strings.ToLower(a.Title), q) && !strings.Contains(strings.ToLower(a.Body), q) {
			return false
		}
	}
	return true
}

func (f *fakeArticleRepo) FindByFilter(_ context.Context, filter article.Filter, p *query.Pagination) ([]*article.Article, error) {
	var matched []*article.Article
	for _, a := range f.articles {
		if f.matches(a, filter) {
			matched = append(matched, a)
		}
	}
	if p == nil {
		return matched, nil
	}
	start := p.Offset()
	if start >= len(matched) {
		return []*article.Article{}, nil
	}
	end := start + p.Limit()
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], nil
}

func (f *fakeArticleRepo) Count(_ context.Context, filter article.Filter) (int64, error) {
	var total int64
	for _, a := range f.articles {
		if f.matches(a, filter) {
			total++
		}
	}
	return total, nil
}

func (f *fakeArticleRepo) IncrementViews(context.Context, uint) error { return nil }

func (f *fakeArticleRepo) FindNeighbor(context.Context, time.Time, bool) (*article.Article, error) {
	return nil, nil
}

type fakeCategoryRepo struct {
	categories []*category.Category
}

func (f *fakeCategoryRepo) Create(_ context.Context, c *category.Category) error {
	f.categories = append(f.categories, c)
	return nil
}

func (f *fakeCategoryRepo) FindBySlug(_ context.Context, slug string) (*category.Category, error) {
	for _, c := range f.categories {
		if c.Slug == slug {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) FindAll(context.Context) ([]*category.Category, error) {
	return f.categories, nil
}

type fakeTagRepo struct {
	tags []*tag.Tag
}

func (f *fakeTagRepo) Create(_ context.Context, t *tag.Tag) error {
	f.tags = append(f.tags, t)
	return nil
}

func (f *fakeTagRepo) FindBySlug(_ context.Context, slug string) (*tag.Tag, error) {
	for _, t := range f.tags {
		if t.Slug == slug {
			return t, nil
		}
	}
	return nil, nil
}

func (f *fakeTagRepo) FindByNames(_ context.Context, names []string) ([]*tag.Tag, error) {
	var matched []*tag.Tag
	for _, t := range f.tags {
		for _, name := range names {
			if t.Name == name {
				matched = append(matched, t)
			}
		}
	}
	return matched, nil
}

func (f *fakeTagRepo) FindAll(context.Context) ([]*tag.Tag, error) {
	return f.tags, nil
}

type fakeUserRepo struct {
	users []*user.User
}

func (f *fakeUserRepo) Create(_ context.Context, u *user.User) error {
	u.ID = uint(len(f.users) + 1)
	f.users = append(f.users, u)
	return nil
}

func (f *fakeUserRepo) Update(context.Context, *user.User) error { return nil }

func (f *fakeUserRepo) FindFirst(_ context.Context, filter user.UserFilter) (*user.User, error) {
	for _, u := range f.users {
		if filter.Email != nil && u.Email != *filter.Email {
			continue
		}
		if filter.Username != nil && u.Username != *filter.Username {
			continue
		}
		if filter.PublicID != nil && u.PublicID != *filter.PublicID {
			continue
		}
		return u, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByFilter(context.Context, user.UserFilter, *query.Pagination) ([]*user.User, error) {
	return f.users, nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uint) (*user.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

type fakeSettingRepo struct {
	settings map[string]*setting.SystemSetting
}

func (f *fakeSettingRepo) FindByKey(_ context.Context, key string) (*setting.SystemSetting, error) {
	if s, ok := f.settings[key]; ok {
		return s, nil
	}
	return nil, setting.ErrSettingNotFound
}

func (f *fakeSettingRepo) Upsert(_ context.Context, s *setting.SystemSetting) error {
	if f.settings == nil {
		f.settings = map[string]*setting.SystemSetting{}
	}
	f.settings[s.Key] = s
	return nil
}

type fixture struct {
	store       *memoryStore
	articleRepo *fakeArticleRepo
	service     *Service
}

func newFixture(articleCount int) *fixture {
	articleRepo := &fakeArticleRepo{}
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < articleCount; i++ {
		articleRepo.articles = append(articleRepo.articles, &article.Article{
			ID:           uint(i + 1),
			Title:        fmt.Sprintf("Post %d", i+1),
			Body:         "body",
			Status:       article.StatusPublished,
			Type:         article.TypeArticle,
			AuthorID:     1,
			AuthorName:   "Dawn",
			AuthorSlug:   "dawn",
			CategoryID:   1,
			CategoryName: "Go",
			Tags:         []string{"golang"},
			PubTime:      base.Add(time.Duration(-i) * time.Hour),
		})
	}

	categoryRepo := &fakeCategoryRepo{
		categories: []*category.Category{
			{ID: 1, Name: "Go", Slug: "go", Weight: 10},
		},
	}
	tagRepo := &fakeTagRepo{
		tags: []*tag.Tag{
			{ID: 1, Name: "golang", Slug: "golang"},
		},
	}
	userRepo := &fakeUserRepo{
		users: []*user.User{
			{ID: 1, Name: "Dawn", Username: "dawn", Email: "dawn@example.com", Enabled: true},
		},
	}

	store := newMemoryStore()
	service := NewService(
		store,
		article.NewService(articleRepo),
		category.NewService(categoryRepo),
		tag.NewService(tagRepo),
		user.NewService(userRepo),
		setting.NewService(&fakeSettingRepo{}),
	)
	return &fixture{
		store:       store,
		articleRepo: articleRepo,
		service:     service,
	}
}

func TestIndexReadThrough(t *testing.T) {
	f := newFixture(15)
	ctx := context.Background()

	first, err := f.service.Index(ctx, "1")
	if err != nil {
		t.Fatalf("Index failed: %v", err)
	}
	if len(first.Items) != 10 {
		t.Fatalf("expected 10 items on page 1, got %d", len(first.Items))
	}
	if first.Total != 15 {
		t.Fatalf("expected total 15, got %d", first.Total)
	}
	if first.LastPage != 2 {
		t.Fatalf("expected last page 2, got %d", first.LastPage)
	}

	again, err := f.service.Index(ctx, "1")
	if err != nil {
		t.Fatalf("Index failed on repeat: %v", err)
	}
	if len(again.Items) != 10 {
		t.Fatalf("expected 10 items from cache, got %d", len(again.Items))
	}
	if f.store.fallbacks["blog:v1::index::1"] != 1 {
		t.Fatalf("expected exactly one recompute, got %d", f.store.fallbacks["blog:v1::index::1"])
	}
}

func TestIndexInvalidPageFallsBackToOne(t *testing.T) {
	f := newFixture(3)
	ctx := context.Background()

	for _, raw := range []string{"", "abc", "0", "-2"} {
		result, err := f.service.Index(ctx, raw)
		if err != nil {
			t.Fatalf("Index(%q) failed: %v", raw, err)
		}
		if result.Page != 1 {
			t.Fatalf("Index(%q): expected page 1, got %d", raw, result.Page)
		}
	}
}

func TestIndexOutOfRangePageClampsToLast(t *testing.T) {
	f := newFixture(12)
	ctx := context.Background()

	result, err := f.service.Index(ctx, "9")
	if err != nil {
		t.Fatalf("Index failed: %v", err)
	}
	if result.Page != 2 {
		t.Fatalf("expected clamp to the last page (2), got %d", result.Page)
	}
	if len(result.Items) != 2 {
		t.Fatalf("expected 2 items on the last page, got %d", len(result.Items))
	}
	if result.Total != 12 {
		t.Fatalf("expected total 12, got %d", result.Total)
	}
}

func TestCategoryListingKeyAndContent(t *testing.T) {
	f := newFixture(4)
	ctx := context.Background()

	c, result, err := f.service.Category(ctx, "go", "1")
	if err != nil {
		t.Fatalf("Category failed: %v", err)
	}
	if c.Name != "Go" {
		t.Fatalf("expected category Go, got %s", c.Name)
	}
	if len(result.Items) != 4 {
		t.Fatalf("expected 4 items, got %d", len(result.Items))
	}
	if f.store.fallbacks["blog:v1::category::Go::1"] != 1 {
		t.Fatalf("category cache key not populated as expected: %v", f.store.fallbacks)
	}
}

func TestCategoryUnknownSlugIsNotFound(t *testing.T) {
	f := newFixture(1)

	_, _, err := f.service.Category(context.Background(), "missing", "1")
	if err == nil {
		t.Fatal("expected error for unknown category")
	}
}

func TestAuthorListingUsesSlugKey(t *testing.T) {
	f := newFixture(2)
	ctx := context.Background()

	u, result, err := f.service.Author(ctx, "dawn", "1")
	if err != nil {
		t.Fatalf("Author failed: %v", err)
	}
	if u.Username != "dawn" {
		t.Fatalf("unexpected author %s", u.Username)
	}
	if len(result.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(result.Items))
	}
	if _, ok := f.store.values["blog:v1::author::dawn::1"]; !ok {
		t.Fatalf("author cache key missing, have %v", f.store.values)
	}
}

func TestTagListing(t *testing.T) {
	f := newFixture(3)
	ctx := context.Background()

	tg, result, err := f.service.Tag(ctx, "golang", "1")
	if err != nil {
		t.Fatalf("Tag failed: %v", err)
	}
	if tg.Name != "golang" {
		t.Fatalf("unexpected tag %s", tg.Name)
	}
	if len(result.Items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(result.Items))
	}
}

func TestListingsExcludeStandalonePages(t *testing.T) {
	f := newFixture(2)
	ctx := context.Background()

	// A published standalone page must not surface in the index, author or
	// tag listings.
	f.articleRepo.articles = append(f.articleRepo.articles, &article.Article{
		ID:           99,
		Title:        "About",
		Body:         "body",
		Status:       article.StatusPublished,
		Type:         article.TypePage,
		AuthorID:     1,
		AuthorName:   "Dawn",
		AuthorSlug:   "dawn",
		CategoryID:   1,
		CategoryName: "Go",
		Tags:         []string{"golang"},
		PubTime:      time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC),
	})

	index, err := f.service.Index(ctx, "1")
	if err != nil {
		t.Fatalf("Index failed: %v", err)
	}
	if index.Total != 2 || len(index.Items) != 2 {
		t.Fatalf("expected 2 articles on the index, got total %d, %d items", index.Total, len(index.Items))
	}
	for _, item := range index.Items {
		if item.ID == 99 {
			t.Fatalf("standalone page leaked into the index listing")
		}
	}

	_, byAuthor, err := f.service.Author(ctx, "dawn", "1")
	if err != nil {
		t.Fatalf("Author failed: %v", err)
	}
	if byAuthor.Total != 2 {
		t.Fatalf("expected author total 2, got %d", byAuthor.Total)
	}

	_, byTag, err := f.service.Tag(ctx, "golang", "1")
	if err != nil {
		t.Fatalf("Tag failed: %v", err)
	}
	if byTag.Total != 2 {
		t.Fatalf("expected tag total 2, got %d", byTag.Total)
	}
}

func TestArchivesIgnoresPagination(t *testing.T) {
	f := newFixture(25)
	ctx := context.Background()

	result, err := f.service.Archives(ctx)
	if err != nil {
		t.Fatalf("Archives failed: %v", err)
	}
	if len(result.Items) != 25 {
		t.Fatalf("expected all 25 items, got %d", len(result.Items))
	}
	if _, ok := f.store.values["blog:v1::archives"]; !ok {
		t.Fatalf("archives cache key missing, have %v", f.store.values)
	}
}

func TestClearForcesRecompute(t *testing.T) {
	f := newFixture(2)
	ctx := context.Background()

	if _, err := f.service.Index(ctx, "1"); err != nil {
		t.Fatalf("Index failed: %v", err)
	}

	f.articleRepo.articles = append(f.articleRepo.articles, &article.Article{
		ID:      99,
		Title:   "Fresh",
		Status:  article.StatusPublished,
		Type:    article.TypeArticle,
		PubTime: time.Now(),
	})

	stale, err := f.service.Index(ctx, "1")
	if err != nil {
		t.Fatalf("Index failed: %v", err)
	}
	if stale.Total != 2 {
		t.Fatalf("expected stale total 2 before clear, got %d", stale.Total)
	}

	f.store.clear()

	fresh, err := f.service.Index(ctx, "1")
	if err != nil {
		t.Fatalf("Index failed after clear: %v", err)
	}
	if fresh.Total != 3 {
		t.Fatalf("expected total 3 after clear, got %d", fresh.Total)
	}
}
