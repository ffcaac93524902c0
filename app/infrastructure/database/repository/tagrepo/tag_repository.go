package tagrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "plume.ink/plume-blog-server/app/domain/tag"
	"plume.ink/plume-blog-server/app/infrastructure/database/dbschema"
	"plume.ink/plume-blog-server/app/infrastructure/database/repository/transaction"
	"plume.ink/plume-blog-server/app/utils/functional"
)

type TagGormRepository struct {
	db *transaction.Database
}

var _ domain.Repository = (*TagGormRepository)(nil)

func NewTagGormRepository(db *transaction.Database) domain.Repository {
	return &TagGormRepository{
		db: db,
	}
}

func (r *TagGormRepository) Create(ctx context.Context, t *domain.Tag) error {
	db := r.db.GetTx(ctx)
	model := dbschema.NewSchemaTag(t)
	if err := db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}
	t.ID = model.ID
	return nil
}

func (r *TagGormRepository) FindBySlug(ctx context.Context, slug string) (*domain.Tag, error) {
	db := r.db.GetTx(ctx)
	var model dbschema.Tag
	if err := db.WithContext(ctx).Where("slug = ?", slug).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.EtoD(), nil
}

func (r *TagGormRepository) FindByNames(ctx context.Context, names []string) ([]*domain.Tag, error) {
	db := r.db.GetTx(ctx)
	var rows []*dbschema.Tag
	if err := db.WithContext(ctx).Where("name IN ?", names).Find(&rows).Error; err != nil {
		return nil, err
	}
	return functional.Map(rows, func(item *dbschema.Tag) *domain.Tag {
		return item.EtoD()
	}), nil
}

func (r *TagGormRepository) FindAll(ctx context.Context) ([]*domain.Tag, error) {
	db := r.db.GetTx(ctx)
	var rows []*dbschema.Tag
	if err := db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	return functional.Map(rows, func(item *dbschema.Tag) *domain.Tag {
		return item.EtoD()
	}), nil
}
