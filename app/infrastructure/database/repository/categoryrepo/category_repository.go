package categoryrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "plume.ink/plume-blog-server/app/domain/category"
	"plume.ink/plume-blog-server/app/infrastructure/database/dbschema"
	"plume.ink/plume-blog-server/app/infrastructure/database/repository/transaction"
	"plume.ink/plume-blog-server/app/utils/functional"
)

type CategoryGormRepository struct {
	db *transaction.Database
}

var _ domain.Repository = (*CategoryGormRepository)(nil)

func NewCategoryGormRepository(db *transaction.Database) domain.Repository {
	return &CategoryGormRepository{
		db: db,
	}
}

func (r *CategoryGormRepository) Create(ctx context.Context, c *domain.Category) error {
	db := r.db.GetTx(ctx)
	model := dbschema.NewSchemaCategory(c)
	if err := db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}
	c.ID = model.ID
	return nil
}

func (r *CategoryGormRepository) FindBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	db := r.db.GetTx(ctx)
	var model dbschema.Category
	if err := db.WithContext(ctx).Where("slug = ?", slug).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.EtoD(), nil
}

func (r *CategoryGormRepository) FindAll(ctx context.Context) ([]*domain.Category, error) {
	db := r.db.GetTx(ctx)
	var rows []*dbschema.Category
	if err := db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	return functional.Map(rows, func(item *dbschema.Category) *domain.Category {
		return item.EtoD()
	}), nil
}
