package dbschema

import (
	"plume.ink/plume-blog-server/app/domain/comment"
	"plume.ink/plume-blog-server/app/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(Comment{})
}

type Comment struct {
	BaseModel
	PublicID   string `gorm:"type:varchar(50);uniqueIndex;not null"`
	ArticleID  uint   `gorm:"not null;index"`
	Article    *Article
	AuthorName string `gorm:"type:varchar(100);not null"`
	Body       string `gorm:"type:text;not null"`
	ParentID   *uint  `gorm:"index"`
}

func (c *Comment) EtoD() *comment.Comment {
	return &comment.Comment{
		ID:         c.ID,
		PublicID:   c.PublicID,
		ArticleID:  c.ArticleID,
		AuthorName: c.AuthorName,
		Body:       c.Body,
		ParentID:   c.ParentID,
		CreatedAt:  c.CreatedAt,
	}
}
