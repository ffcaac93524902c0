package userrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"plume.ink/plume-blog-server/app/domain/query"
	domain "plume.ink/plume-blog-server/app/domain/user"
	"plume.ink/plume-blog-server/app/infrastructure/database/dbschema"
	"plume.ink/plume-blog-server/app/infrastructure/database/repository/transaction"
	"plume.ink/plume-blog-server/app/utils/functional"
)

type UserGormRepository struct {
	db *transaction.Database
}

var _ domain.UserRepository = (*UserGormRepository)(nil)

func NewUserGormRepository(db *transaction.Database) domain.UserRepository {
	return &UserGormRepository{
		db: db,
	}
}

func (r *UserGormRepository) Create(ctx context.Context, u *domain.User) error {
	db := r.db.GetTx(ctx)
	model := dbschema.NewSchemaUser(u)
	if err := db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}
	u.ID = model.ID
	return nil
}

func (r *UserGormRepository) Update(ctx context.Context, u *domain.User) error {
	db := r.db.GetTx(ctx)
	model := dbschema.NewSchemaUser(u)
	return db.WithContext(ctx).Save(model).Error
}

func (r *UserGormRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	db := r.db.GetTx(ctx)
	var model dbschema.User
	if err := db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.EtoD(), nil
}

func (r *UserGormRepository) FindFirst(ctx context.Context, filter domain.UserFilter) (*domain.User, error) {
	db := r.db.GetTx(ctx)
	var model dbschema.User
	err := r.applyFilter(db.WithContext(ctx).Model(&dbschema.User{}), filter).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.EtoD(), nil
}

func (r *UserGormRepository) FindByFilter(ctx context.Context, filter domain.UserFilter, p *query.Pagination) ([]*domain.User, error) {
	db := r.db.GetTx(ctx)
	sql := r.applyFilter(db.WithContext(ctx).Model(&dbschema.User{}), filter).
		Order("id ASC")
	if p != nil {
		sql = sql.Limit(p.Limit()).Offset(p.Offset())
	}
	var rows []*dbschema.User
	if err := sql.Find(&rows).Error; err != nil {
		return nil, err
	}
	return functional.Map(rows, func(item *dbschema.User) *domain.User {
		return item.EtoD()
	}), nil
}

// applyFilter applies conditions dynamically to the query.
func (r *UserGormRepository) applyFilter(sql *gorm.DB, filter domain.UserFilter) *gorm.DB {
	if filter.Email != nil {
		sql = sql.Where("email = ?", *filter.Email)
	}
	if filter.Username != nil {
		sql = sql.Where("username = ?", *filter.Username)
	}
	if filter.Enabled != nil {
		sql = sql.Where("enabled = ?", *filter.Enabled)
	}
	if filter.PublicID != nil {
		sql = sql.Where("public_id = ?", *filter.PublicID)
	}
	return sql
}
