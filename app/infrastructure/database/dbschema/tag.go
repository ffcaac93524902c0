package dbschema

import (
	"plume.ink/plume-blog-server/app/domain/tag"
	"plume.ink/plume-blog-server/app/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(Tag{})
}

type Tag struct {
	BaseModel
	Name string `gorm:"type:varchar(100);uniqueIndex;not null"`
	Slug string `gorm:"type:varchar(100);uniqueIndex;not null"`
}

func NewSchemaTag(t *tag.Tag) *Tag {
	return &Tag{
		BaseModel: BaseModel{
			ID: t.ID,
		},
		Name: t.Name,
		Slug: t.Slug,
	}
}

func (t *Tag) EtoD() *tag.Tag {
	return &tag.Tag{
		ID:        t.ID,
		Name:      t.Name,
		Slug:      t.Slug,
		CreatedAt: t.CreatedAt,
	}
}
