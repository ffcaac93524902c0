package links

import (
	"context"
	"time"
)

// ShowType controls which pages a friend link appears on, mirroring the
// per-page link slots of the site templates.
type ShowType string

const (
	ShowTypeIndex ShowType = "i"
	ShowTypeList  ShowType = "l"
	ShowTypePost  ShowType = "p"
	ShowTypeAll   ShowType = "a"
	ShowTypeSlide ShowType = "s"
)

type Link struct {
	ID            uint
	Name          string
	URL           string
	Sequence      int
	IsEnable      bool
	ShowType      ShowType
	Reachable     *bool
	LastCheckedAt *time.Time
	CreatedAt     time.Time
}

type Repository interface {
	Create(ctx context.Context, l *Link) error
	Update(ctx context.Context, l *Link) error
	FindEnabled(ctx context.Context) ([]*Link, error)
	FindAll(ctx context.Context) ([]*Link, error)
}
