package articlerepo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "plume.ink/plume-blog-server/app/domain/article"
	"plume.ink/plume-blog-server/app/domain/query"
	"plume.ink/plume-blog-server/app/infrastructure/database/dbschema"
	"plume.ink/plume-blog-server/app/infrastructure/database/repository/transaction"
	"plume.ink/plume-blog-server/app/utils/functional"
)

type ArticleGormRepository struct {
	db *transaction.Database
}

var _ domain.Repository = (*ArticleGormRepository)(nil)

func NewArticleGormRepository(db *transaction.Database) domain.Repository {
	return &ArticleGormRepository{
		db: db,
	}
}

func (r *ArticleGormRepository) Create(ctx context.Context, a *domain.Article) error {
	db := r.db.GetTx(ctx)
	model := dbschema.NewSchemaArticle(a)
	if len(a.Tags) > 0 {
		tags, err := r.resolveTags(ctx, a.Tags)
		if err != nil {
			return err
		}
		model.Tags = tags
	}
	if err := db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}
	a.ID = model.ID
	return nil
}

func (r *ArticleGormRepository) Update(ctx context.Context, a *domain.Article) error {
	db := r.db.GetTx(ctx)
	model := dbschema.NewSchemaArticle(a)
	if err := db.WithContext(ctx).Omit("Tags").Save(model).Error; err != nil {
		return err
	}
	if a.Tags != nil {
		tags, err := r.resolveTags(ctx, a.Tags)
		if err != nil {
			return err
		}
		if err := db.WithContext(ctx).Model(model).Association("Tags").Replace(tags); err != nil {
			return err
		}
	}
	return nil
}

// resolveTags maps tag names onto rows, creating missing ones. Tag slugs
// reuse the name; authors type names, not slugs.
func (r *ArticleGormRepository) resolveTags(ctx context.Context, names []string) ([]dbschema.Tag, error) {
	db := r.db.GetTx(ctx)
	result := make([]dbschema.Tag, 0, len(names))
	for _, name := range names {
		var t dbschema.Tag
		err := db.WithContext(ctx).Where("name = ?", name).First(&t).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			t = dbschema.Tag{Name: name, Slug: name}
			err = db.WithContext(ctx).Create(&t).Error
		}
		if err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	return result, nil
}

func (r *ArticleGormRepository) Delete(ctx context.Context, id uint) error {
	db := r.db.GetTx(ctx)
	model := dbschema.Article{BaseModel: dbschema.BaseModel{ID: id}}
	if err := db.WithContext(ctx).Model(&model).Association("Tags").Clear(); err != nil {
		return err
	}
	return db.WithContext(ctx).Delete(&model).Error
}

func (r *ArticleGormRepository) FindByID(ctx context.Context, id uint) (*domain.Article, error) {
	db := r.db.GetTx(ctx)
	var model dbschema.Article
	err := db.WithContext(ctx).
		Preload("Author").
		Preload("Category").
		Preload("Tags").
		First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.EtoD(), nil
}

func (r *ArticleGormRepository) FindByFilter(ctx context.Context, filter domain.Filter, p *query.Pagination) ([]*domain.Article, error) {
	db := r.db.GetTx(ctx)
	sql := r.applyFilter(db.WithContext(ctx).Model(&dbschema.Article{}), filter).
		Preload("Author").
		Preload("Category").
		Preload("Tags").
		Order("article.pub_time DESC")
	if p != nil {
		sql = sql.Limit(p.Limit()).Offset(p.Offset())
	}
	var rows []*dbschema.Article
	if err := sql.Find(&rows).Error; err != nil {
		return nil, err
	}
	return functional.Map(rows, func(item *dbschema.Article) *domain.Article {
		return item.EtoD()
	}), nil
}

func (r *ArticleGormRepository) Count(ctx context.Context, filter domain.Filter) (int64, error) {
	db := r.db.GetTx(ctx)
	var count int64
	err := r.applyFilter(db.WithContext(ctx).Model(&dbschema.Article{}), filter).
		Distinct("article.id").
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies conditions dynamically to the query. Table names are
// singular ("user" needs quoting, it is a reserved word in Postgres).
func (r *ArticleGormRepository) applyFilter(sql *gorm.DB, filter domain.Filter) *gorm.DB {
	if filter.Status != nil {
		sql = sql.Where("article.status = ?", string(*filter.Status))
	}
	if filter.Type != nil {
		sql = sql.Where("article.type = ?", string(*filter.Type))
	}
	if filter.AuthorID != nil {
		sql = sql.Where("article.author_id = ?", *filter.AuthorID)
	}
	if filter.AuthorUsername != nil {
		sql = sql.
			Joins(`JOIN "user" ON "user".id = article.author_id`).
			Where(`"user".username = ?`, *filter.AuthorUsername)
	}
	if len(filter.CategoryIDs) > 0 {
		sql = sql.Where("article.category_id IN ?", filter.CategoryIDs)
	}
	if filter.TagName != nil {
		sql = sql.
			Joins("JOIN article_tag ON article_tag.article_id = article.id").
			Joins("JOIN tag ON tag.id = article_tag.tag_id").
			Where("tag.name = ?", *filter.TagName)
	}
	if filter.Search != nil {
		pattern := "%" + *filter.Search + "%"
		sql = sql.Where("article.title ILIKE ? OR article.body ILIKE ?", pattern, pattern)
	}
	return sql
}

func (r *ArticleGormRepository) IncrementViews(ctx context.Context, id uint) error {
	db := r.db.GetTx(ctx)
	return db.WithContext(ctx).Model(&dbschema.Article{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

func (r *ArticleGormRepository) FindNeighbor(ctx context.Context, pubTime time.Time, next bool) (*domain.Article, error) {
	db := r.db.GetTx(ctx)
	sql := db.WithContext(ctx).Model(&dbschema.Article{}).
		Where("status = ? AND type = ?", string(domain.StatusPublished), string(domain.TypeArticle))
	if next {
		sql = sql.Where("pub_time > ?", pubTime).Order("pub_time ASC")
	} else {
		sql = sql.Where("pub_time < ?", pubTime).Order("pub_time DESC")
	}
	var model dbschema.Article
	if err := sql.First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.EtoD(), nil
}
