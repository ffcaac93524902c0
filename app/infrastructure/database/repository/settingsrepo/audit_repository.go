package settingsrepo

import (
	"context"

	"gorm.io/gorm/clause"

	"plume.ink/plume-blog-server/app/domain/setting"
	"plume.ink/plume-blog-server/app/infrastructure/database/dbschema"
	"plume.ink/plume-blog-server/app/infrastructure/database/repository/transaction"
	"plume.ink/plume-blog-server/app/utils/functional"
)

type AuditRepository struct {
	db *transaction.Database
}

var _ setting.AuditLogRepository = (*AuditRepository)(nil)

func NewAuditRepository(db *transaction.Database) setting.AuditLogRepository {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) Create(ctx context.Context, entry *setting.AuditLog) error {
	db := r.db.GetTx(ctx)
	model := dbschema.NewSchemaAuditLog(entry)
	return db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(model).Error
}

func (r *AuditRepository) FindByFilter(ctx context.Context, filter setting.AuditLogFilter) ([]*setting.AuditLog, error) {
	db := r.db.GetTx(ctx)
	sql := db.WithContext(ctx).Model(&dbschema.AuditLog{}).Order("id DESC")
	if filter.Event != nil {
		sql = sql.Where("event = ?", *filter.Event)
	}
	if filter.AfterID != nil {
		sql = sql.Where("id < ?", *filter.AfterID)
	}
	if filter.Limit > 0 {
		sql = sql.Limit(filter.Limit)
	}
	var rows []*dbschema.AuditLog
	if err := sql.Find(&rows).Error; err != nil {
		return nil, err
	}
	return functional.Map(rows, func(item *dbschema.AuditLog) *setting.AuditLog {
		return item.EtoD()
	}), nil
}

func (r *AuditRepository) Count(ctx context.Context, filter setting.AuditLogFilter) (int64, error) {
	db := r.db.GetTx(ctx)
	sql := db.WithContext(ctx).Model(&dbschema.AuditLog{})
	if filter.Event != nil {
		sql = sql.Where("event = ?", *filter.Event)
	}
	var count int64
	if err := sql.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
