package comment

import (
	"context"
	"time"
)

// Comment rows are owned by the external comment subsystem; this layer only
// reads them for display on the article detail page.
type Comment struct {
	ID         uint
	PublicID   string
	ArticleID  uint
	AuthorName string
	Body       string
	ParentID   *uint
	CreatedAt  time.Time
}

// IsTopLevel reports whether the comment starts a thread.
func (c *Comment) IsTopLevel() bool {
	return c.ParentID == nil
}

type Repository interface {
	// FindByArticle returns every comment of an article, oldest first.
	FindByArticle(ctx context.Context, articleID uint) ([]*Comment, error)
	CountByArticle(ctx context.Context, articleID uint) (int64, error)
}
