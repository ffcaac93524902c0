package commentrepo

import (
	"context"

	domain "plume.ink/plume-blog-server/app/domain/comment"
	"plume.ink/plume-blog-server/app/infrastructure/database/dbschema"
	"plume.ink/plume-blog-server/app/infrastructure/database/repository/transaction"
	"plume.ink/plume-blog-server/app/utils/functional"
)

type CommentGormRepository struct {
	db *transaction.Database
}

var _ domain.Repository = (*CommentGormRepository)(nil)

func NewCommentGormRepository(db *transaction.Database) domain.Repository {
	return &CommentGormRepository{
		db: db,
	}
}

func (r *CommentGormRepository) FindByArticle(ctx context.Context, articleID uint) ([]*domain.Comment, error) {
	db := r.db.GetTx(ctx)
	var rows []*dbschema.Comment
	err := db.WithContext(ctx).
		Where("article_id = ?", articleID).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return functional.Map(rows, func(item *dbschema.Comment) *domain.Comment {
		return item.EtoD()
	}), nil
}

func (r *CommentGormRepository) CountByArticle(ctx context.Context, articleID uint) (int64, error) {
	db := r.db.GetTx(ctx)
	var count int64
	err := db.WithContext(ctx).Model(&dbschema.Comment{}).
		Where("article_id = ?", articleID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
