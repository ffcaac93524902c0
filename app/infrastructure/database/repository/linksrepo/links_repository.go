package linksrepo

import (
	"context"

	domain "plume.ink/plume-blog-server/app/domain/links"
	"plume.ink/plume-blog-server/app/infrastructure/database/dbschema"
	"plume.ink/plume-blog-server/app/infrastructure/database/repository/transaction"
	"plume.ink/plume-blog-server/app/utils/functional"
)

type LinksGormRepository struct {
	db *transaction.Database
}

var _ domain.Repository = (*LinksGormRepository)(nil)

func NewLinksGormRepository(db *transaction.Database) domain.Repository {
	return &LinksGormRepository{
		db: db,
	}
}

func (r *LinksGormRepository) Create(ctx context.Context, l *domain.Link) error {
	db := r.db.GetTx(ctx)
	model := dbschema.NewSchemaLink(l)
	if err := db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}
	l.ID = model.ID
	return nil
}

func (r *LinksGormRepository) Update(ctx context.Context, l *domain.Link) error {
	db := r.db.GetTx(ctx)
	model := dbschema.NewSchemaLink(l)
	return db.WithContext(ctx).Save(model).Error
}

func (r *LinksGormRepository) FindEnabled(ctx context.Context) ([]*domain.Link, error) {
	db := r.db.GetTx(ctx)
	var rows []*dbschema.Link
	if err := db.WithContext(ctx).Where("is_enable = ?", true).Find(&rows).Error; err != nil {
		return nil, err
	}
	return functional.Map(rows, func(item *dbschema.Link) *domain.Link {
		return item.EtoD()
	}), nil
}

func (r *LinksGormRepository) FindAll(ctx context.Context) ([]*domain.Link, error) {
	db := r.db.GetTx(ctx)
	var rows []*dbschema.Link
	if err := db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	return functional.Map(rows, func(item *dbschema.Link) *domain.Link {
		return item.EtoD()
	}), nil
}
