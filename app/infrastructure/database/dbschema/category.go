package dbschema

import (
	"plume.ink/plume-blog-server/app/domain/category"
	"plume.ink/plume-blog-server/app/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(Category{})
}

type Category struct {
	BaseModel
	Name     string `gorm:"type:varchar(100);uniqueIndex;not null"`
	Slug     string `gorm:"type:varchar(100);uniqueIndex;not null"`
	ParentID *uint  `gorm:"index"`
	Parent   *Category
	Weight   int `gorm:"not null;default:0"`
}

func NewSchemaCategory(c *category.Category) *Category {
	return &Category{
		BaseModel: BaseModel{
			ID: c.ID,
		},
		Name:     c.Name,
		Slug:     c.Slug,
		ParentID: c.ParentID,
		Weight:   c.Weight,
	}
}

func (c *Category) EtoD() *category.Category {
	return &category.Category{
		ID:        c.ID,
		Name:      c.Name,
		Slug:      c.Slug,
		ParentID:  c.ParentID,
		Weight:    c.Weight,
		CreatedAt: c.CreatedAt,
	}
}
