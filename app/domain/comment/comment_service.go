package comment

import (
	"context"
	"fmt"

	"plume.ink/plume-blog-server/app/domain/query"
)

// CommentListFragment anchors pagination links to the comment list element
// of the detail page.
const CommentListFragment = "#commentlist-container"

type CommentService struct {
	repo Repository
}

func NewService(repo Repository) *CommentService {
	return &CommentService{
		repo: repo,
	}
}

// Page is one page of top-level comments plus the navigation the detail
// page renders.
type Page struct {
	Comments    []*Comment
	All         []*Comment
	Page        int
	NumPages    int
	Total       int
	NextPageURL *string
	PrevPageURL *string
}

// Paginate builds the comment block of a detail page. rawPage follows the
// comment pagination rules: non-numeric and low values collapse to 1, values
// past the end collapse to the last page. articleURL anchors the next/prev
// links.
func (s *CommentService) Paginate(ctx context.Context, articleID uint, rawPage string, pageSize int, articleURL string) (*Page, error) {
	all, err := s.repo.FindByArticle(ctx, articleID)
	if err != nil {
		return nil, err
	}

	topLevel := make([]*Comment, 0, len(all))
	for _, c := range all {
		if c.IsTopLevel() {
			topLevel = append(topLevel, c)
		}
	}

	if pageSize <= 0 {
		pageSize = 5
	}
	numPages := query.LastPage(int64(len(topLevel)), pageSize)
	page := query.ClampPage(query.SanitizePage(rawPage), numPages)

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(topLevel) {
		start = len(topLevel)
	}
	if end > len(topLevel) {
		end = len(topLevel)
	}

	result := &Page{
		Comments: topLevel[start:end],
		All:      all,
		Page:     page,
		NumPages: numPages,
		Total:    len(all),
	}
	if page < numPages {
		next := commentPageURL(articleURL, page+1)
		result.NextPageURL = &next
	}
	if page > 1 {
		prev := commentPageURL(articleURL, page-1)
		result.PrevPageURL = &prev
	}
	return result, nil
}

func commentPageURL(articleURL string, page int) string {
	return fmt.Sprintf("%s?comment_page=%d%s", articleURL, page, CommentListFragment)
}
