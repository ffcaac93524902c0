package setting

import (
	"context"

	"plume.ink/plume-blog-server/app/utils/logger"
)

const (
	AuditEventCacheCleared    = "cache.cleared"
	AuditEventSettingsUpdated = "settings.updated"
	AuditEventArticleCreated  = "article.created"
	AuditEventArticleUpdated  = "article.updated"
	AuditEventArticleDeleted  = "article.deleted"
)

type AuditService struct {
	repo AuditLogRepository
}

func NewAuditService(repo AuditLogRepository) *AuditService {
	return &AuditService{
		repo: repo,
	}
}

// Record writes an audit entry. Audit failures are logged but never surfaced
// to the caller, the triggering operation has already succeeded.
func (s *AuditService) Record(ctx context.Context, event string, userID *uint, userEmail *string, metadata map[string]interface{}) {
	entry := &AuditLog{
		UserID:    userID,
		UserEmail: userEmail,
		Event:     event,
		Metadata:  metadata,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		logger.GetLogger().Errorf("failed to record audit event %s: %v", event, err)
	}
}

func (s *AuditService) List(ctx context.Context, filter AuditLogFilter) ([]*AuditLog, int64, error) {
	if filter.Limit <= 0 || filter.Limit > 200 {
		filter.Limit = 50
	}
	entries, err := s.repo.FindByFilter(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}
