package article

import (
	"context"
	"fmt"
	"time"

	"plume.ink/plume-blog-server/app/domain/query"
	"plume.ink/plume-blog-server/config/environment_variables"
)

type Status string

const (
	StatusPublished Status = "p"
	StatusDraft     Status = "d"
)

type Type string

const (
	TypeArticle Type = "a"
	TypePage    Type = "p"
)

type Article struct {
	ID           uint
	Title        string
	Body         string
	Excerpt      string
	Status       Status
	Type         Type
	Views        int64
	AuthorID     uint
	AuthorName   string
	AuthorSlug   string
	CategoryID   uint
	CategoryName string
	Tags         []string
	PubTime      time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Meta         map[string]interface{}
}

// Visible reports whether the article may be served to anonymous readers.
func (a *Article) Visible() bool {
	return a.Status == StatusPublished
}

// AbsoluteURL is the canonical path of the article detail page, used as the
// anchor for comment pagination links.
func (a *Article) AbsoluteURL() string {
	return fmt.Sprintf("%s/v1/blog/articles/%d",
		environment_variables.EnvironmentVariables.SITE_BASE_URL, a.ID)
}

// Summary is the slice of an article that list pages render and the cache
// stores.
type Summary struct {
	ID           uint      `json:"id"`
	Title        string    `json:"title"`
	Excerpt      string    `json:"excerpt"`
	AuthorName   string    `json:"author_name"`
	AuthorSlug   string    `json:"author_slug"`
	CategoryName string    `json:"category_name"`
	Tags         []string  `json:"tags"`
	Views        int64     `json:"views"`
	PubTime      time.Time `json:"pub_time"`
}

func (a *Article) Summary() Summary {
	return Summary{
		ID:           a.ID,
		Title:        a.Title,
		Excerpt:      a.Excerpt,
		AuthorName:   a.AuthorName,
		AuthorSlug:   a.AuthorSlug,
		CategoryName: a.CategoryName,
		Tags:         a.Tags,
		Views:        a.Views,
		PubTime:      a.PubTime,
	}
}

type Filter struct {
	Status         *Status
	Type           *Type
	AuthorID       *uint
	AuthorUsername *string
	CategoryIDs    []uint
	TagName        *string
	// Search matches title or body, case-insensitive.
	Search *string
}

type Repository interface {
	Create(ctx context.Context, a *Article) error
	Update(ctx context.Context, a *Article) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*Article, error)
	FindByFilter(ctx context.Context, filter Filter, p *query.Pagination) ([]*Article, error)
	Count(ctx context.Context, filter Filter) (int64, error)
	IncrementViews(ctx context.Context, id uint) error
	// FindNeighbor returns the published article immediately after (next) or
	// before (prev) the given publication time, or nil at the boundary.
	FindNeighbor(ctx context.Context, pubTime time.Time, next bool) (*Article, error)
}
