package query

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// Pagination describes page-number pagination for list endpoints. Page is
// always 1-based; PageSize <= 0 means unpaginated.
type Pagination struct {
	Page     int
	PageSize int
}

func (p Pagination) Limit() int {
	return p.PageSize
}

func (p Pagination) Offset() int {
	if p.PageSize <= 0 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}

// SanitizePage parses a raw page parameter. Non-numeric, empty, zero or
// negative values collapse to page 1; page errors are never surfaced.
func SanitizePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// ClampPage bounds a page to [1, lastPage]. Values past the end collapse to
// the last valid page.
func ClampPage(page int, lastPage int) int {
	if lastPage < 1 {
		lastPage = 1
	}
	if page < 1 {
		return 1
	}
	if page > lastPage {
		return lastPage
	}
	return page
}

// LastPage returns the number of the last page for a total row count.
// An empty result set still has one (empty) page.
func LastPage(total int64, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 1
	}
	last := int((total + int64(pageSize) - 1) / int64(pageSize))
	if last < 1 {
		last = 1
	}
	return last
}

// GetPageFromQuery reads a page query parameter, falling back to the path
// parameter of the same name, and sanitizes it.
func GetPageFromQuery(reqCtx *gin.Context, name string) int {
	raw := reqCtx.Query(name)
	if raw == "" {
		raw = reqCtx.Param(name)
	}
	return SanitizePage(raw)
}
