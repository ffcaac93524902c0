package cache

import (
	"fmt"
	"strings"
	"time"
)

const (
	// CacheVersion prefixes every blog cache key; Clear removes this
	// prefix only.
	CacheVersion = "blog:v1"

	// KeySeparator joins cache key segments.
	KeySeparator = "::"
)

// ListCacheTTL bounds list-page staleness when nothing clears the cache
// explicitly. The store itself records no expiry semantics beyond this.
const ListCacheTTL = 12 * time.Hour

// CronLinksMutexName guards the periodic link sweep across replicas.
const CronLinksMutexName = "blog:cron:links"

func buildKey(segments ...string) string {
	return CacheVersion + KeySeparator + strings.Join(segments, KeySeparator)
}

// IndexKey names the cached page of the article index.
func IndexKey(page int) string {
	return buildKey("index", fmt.Sprintf("%d", page))
}

// CategoryKey names a cached category archive page. The category display
// name disambiguates; two requests for the same category and page always
// collide on the same key.
func CategoryKey(categoryName string, page int) string {
	return buildKey("category", categoryName, fmt.Sprintf("%d", page))
}

// AuthorKey names a cached author archive page.
func AuthorKey(authorSlug string, page int) string {
	return buildKey("author", authorSlug, fmt.Sprintf("%d", page))
}

// TagKey names a cached tag archive page.
func TagKey(tagName string, page int) string {
	return buildKey("tag", tagName, fmt.Sprintf("%d", page))
}

// ArchivesKey names the unpaginated archives listing.
func ArchivesKey() string {
	return buildKey("archives")
}
