package comment

import (
	"context"
	"fmt"
	"testing"

	"plume.ink/plume-blog-server/app/utils/ptr"
)

type fakeCommentRepo struct {
	comments []*Comment
}

func (r *fakeCommentRepo) FindByArticle(_ context.Context, articleID uint) ([]*Comment, error) {
	result := make([]*Comment, 0, len(r.comments))
	for _, c := range r.comments {
		if c.ArticleID == articleID {
			result = append(result, c)
		}
	}
	return result, nil
}

func (r *fakeCommentRepo) CountByArticle(_ context.Context, articleID uint) (int64, error) {
	all, _ := r.FindByArticle(context.Background(), articleID)
	return int64(len(all)), nil
}

// threadFixture builds 7 top-level comments on article 1, the first of which
// has two replies.
func threadFixture() *fakeCommentRepo {
	repo := &fakeCommentRepo{}
	for i := 1; i <= 7; i++ {
		repo.comments = append(repo.comments, &Comment{
			ID:         uint(i),
			PublicID:   fmt.Sprintf("c-%d", i),
			ArticleID:  1,
			AuthorName: "reader",
			Body:       fmt.Sprintf("comment %d", i),
		})
	}
	repo.comments = append(repo.comments,
		&Comment{ID: 8, PublicID: "c-8", ArticleID: 1, AuthorName: "reader", Body: "reply one", ParentID: ptr.ToUint(1)},
		&Comment{ID: 9, PublicID: "c-9", ArticleID: 1, AuthorName: "reader", Body: "reply two", ParentID: ptr.ToUint(1)},
	)
	return repo
}

func TestPaginateFirstPage(t *testing.T) {
	service := NewService(threadFixture())

	page, err := service.Paginate(context.Background(), 1, "1", 5, "/article/1/a-slug")
	if err != nil {
		t.Fatalf("failed to paginate comments: %v", err)
	}

	if len(page.Comments) != 5 {
		t.Fatalf("expected 5 top-level comments on page 1, got %d", len(page.Comments))
	}
	for _, c := range page.Comments {
		if !c.IsTopLevel() {
			t.Fatalf("reply %s leaked into the top-level page", c.PublicID)
		}
	}
	if page.Total != 9 {
		t.Fatalf("expected total 9 including replies, got %d", page.Total)
	}
	if page.NumPages != 2 {
		t.Fatalf("expected 2 pages, got %d", page.NumPages)
	}
	if page.PrevPageURL != nil {
		t.Fatalf("page 1 should have no previous link")
	}
	if page.NextPageURL == nil {
		t.Fatalf("page 1 should link to page 2")
	}
	expected := "/article/1/a-slug?comment_page=2#commentlist-container"
	if *page.NextPageURL != expected {
		t.Fatalf("expected next link %q, got %q", expected, *page.NextPageURL)
	}
}

func TestPaginateLastPage(t *testing.T) {
	service := NewService(threadFixture())

	page, err := service.Paginate(context.Background(), 1, "2", 5, "/article/1/a-slug")
	if err != nil {
		t.Fatalf("failed to paginate comments: %v", err)
	}

	if len(page.Comments) != 2 {
		t.Fatalf("expected 2 top-level comments on page 2, got %d", len(page.Comments))
	}
	if page.NextPageURL != nil {
		t.Fatalf("last page should have no next link")
	}
	if page.PrevPageURL == nil {
		t.Fatalf("page 2 should link back to page 1")
	}
	expected := "/article/1/a-slug?comment_page=1#commentlist-container"
	if *page.PrevPageURL != expected {
		t.Fatalf("expected prev link %q, got %q", expected, *page.PrevPageURL)
	}
}

func TestPaginateClampsRawPage(t *testing.T) {
	service := NewService(threadFixture())

	cases := map[string]int{
		"abc": 1,
		"":    1,
		"0":   1,
		"-3":  1,
		"99":  2,
	}
	for raw, expected := range cases {
		page, err := service.Paginate(context.Background(), 1, raw, 5, "/article/1/a-slug")
		if err != nil {
			t.Fatalf("failed to paginate with raw page %q: %v", raw, err)
		}
		if page.Page != expected {
			t.Fatalf("raw page %q: expected page %d, got %d", raw, expected, page.Page)
		}
	}
}

func TestPaginateEmptyArticle(t *testing.T) {
	service := NewService(&fakeCommentRepo{})

	page, err := service.Paginate(context.Background(), 42, "1", 5, "/article/42/empty")
	if err != nil {
		t.Fatalf("failed to paginate empty article: %v", err)
	}
	if len(page.Comments) != 0 || page.Total != 0 {
		t.Fatalf("expected an empty page, got %d comments, total %d", len(page.Comments), page.Total)
	}
	if page.NumPages != 1 {
		t.Fatalf("an empty article still has one page, got %d", page.NumPages)
	}
	if page.NextPageURL != nil || page.PrevPageURL != nil {
		t.Fatalf("empty article should have no navigation links")
	}
}
