package user

import (
	"context"
	"strings"
	"time"
	"unicode"

	"plume.ink/plume-blog-server/app/domain/query"
)

type User struct {
	ID           uint
	Name         string
	Username     string
	Email        string
	Enabled      bool
	PublicID     string
	CreatedAt    time.Time
	PasswordHash string
}

// Slug returns the URL-safe form of the username, used in author archive
// paths and cache keys.
func (u *User) Slug() string {
	return Slugify(u.Username)
}

// Slugify lowercases and collapses a name into a URL-safe identifier:
// letters and digits survive, runs of anything else become a single dash.
func Slugify(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

type UserFilter struct {
	Email    *string
	Username *string
	Enabled  *bool
	PublicID *string
}

type UserRepository interface {
	Create(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	FindFirst(ctx context.Context, filter UserFilter) (*User, error)
	FindByFilter(ctx context.Context, filter UserFilter, p *query.Pagination) ([]*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
}
