package setting

import (
	"context"
	"errors"
	"time"
)

const (
	SettingKeyBlog = "blog"
	SettingKeySMTP = "smtp"
)

type SystemSetting struct {
	ID             uint
	Key            string
	Payload        map[string]interface{}
	LastUpdatedBy  *uint
	UpdatedByEmail *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type SystemSettingRepository interface {
	FindByKey(ctx context.Context, key string) (*SystemSetting, error)
	Upsert(ctx context.Context, setting *SystemSetting) error
}

// BlogSettings drives reader-facing behavior: page sizes and site metadata.
type BlogSettings struct {
	SiteTitle       string `json:"site_title"`
	SiteDescription string `json:"site_description"`
	ArticlePageSize int    `json:"article_page_size"`
	CommentPageSize int    `json:"comment_page_size"`
	LinksShowType   string `json:"links_show_type"`
}

type SMTPSettings struct {
	Enabled     bool   `json:"enabled"`
	Host        string `json:"host"`
	Port        int    `json:"port"`
	Username    string `json:"username"`
	Password    string `json:"password,omitempty"`
	FromEmail   string `json:"from_email"`
	HasPassword bool   `json:"has_password"`
}

type AuditLog struct {
	ID        uint                   `json:"id"`
	UserID    *uint                  `json:"user_id,omitempty"`
	UserEmail *string                `json:"user_email,omitempty"`
	Event     string                 `json:"event"`
	Metadata  map[string]interface{} `json:"metadata"`
	CreatedAt time.Time              `json:"created_at"`
}

type AuditLogRepository interface {
	Create(ctx context.Context, entry *AuditLog) error
	FindByFilter(ctx context.Context, filter AuditLogFilter) ([]*AuditLog, error)
	Count(ctx context.Context, filter AuditLogFilter) (int64, error)
}

type AuditLogFilter struct {
	Event   *string
	AfterID *uint
	Limit   int
}

var (
	ErrSettingNotFound = errors.New("setting not found")
)
