package settingsrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"plume.ink/plume-blog-server/app/domain/setting"
	"plume.ink/plume-blog-server/app/infrastructure/database/dbschema"
	"plume.ink/plume-blog-server/app/infrastructure/database/repository/transaction"
)

type SettingRepository struct {
	db *transaction.Database
}

var _ setting.SystemSettingRepository = (*SettingRepository)(nil)

func NewSettingRepository(db *transaction.Database) setting.SystemSettingRepository {
	return &SettingRepository{db: db}
}

func (r *SettingRepository) FindByKey(ctx context.Context, key string) (*setting.SystemSetting, error) {
	db := r.db.GetTx(ctx)
	var model dbschema.SystemSetting
	if err := db.WithContext(ctx).Where("key = ?", key).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, setting.ErrSettingNotFound
		}
		return nil, err
	}
	return model.EtoD(), nil
}

func (r *SettingRepository) Upsert(ctx context.Context, s *setting.SystemSetting) error {
	if s.Payload == nil {
		s.Payload = map[string]interface{}{}
	}
	db := r.db.GetTx(ctx)
	model := dbschema.NewSchemaSystemSetting(s)
	err := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "last_updated_by", "updated_by_email", "updated_at"}),
	}).Create(model).Error
	if err != nil {
		return err
	}
	s.ID = model.ID
	return nil
}
