package dbschema

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"plume.ink/plume-blog-server/app/domain/article"
	"plume.ink/plume-blog-server/app/infrastructure/database"
	"plume.ink/plume-blog-server/app/utils/functional"
)

func init() {
	database.RegisterSchemaForAutoMigrate(Article{})
}

type Article struct {
	BaseModel
	Title      string `gorm:"type:varchar(200);not null"`
	Body       string `gorm:"type:text;not null"`
	Excerpt    string `gorm:"type:text"`
	Status     string `gorm:"type:varchar(1);not null;index"`
	Type       string `gorm:"type:varchar(1);not null;index"`
	Views      int64  `gorm:"not null;default:0"`
	AuthorID   uint   `gorm:"not null;index"`
	Author     *User  `gorm:"foreignKey:AuthorID"`
	CategoryID uint   `gorm:"not null;index"`
	Category   *Category
	Tags       []Tag          `gorm:"many2many:article_tag"`
	PubTime    time.Time      `gorm:"not null;index"`
	Meta       datatypes.JSON `gorm:"type:jsonb"`
}

func NewSchemaArticle(a *article.Article) *Article {
	var meta datatypes.JSON
	if len(a.Meta) > 0 {
		if data, err := json.Marshal(a.Meta); err == nil {
			meta = datatypes.JSON(data)
		}
	}
	return &Article{
		BaseModel: BaseModel{
			ID: a.ID,
		},
		Title:      a.Title,
		Body:       a.Body,
		Excerpt:    a.Excerpt,
		Status:     string(a.Status),
		Type:       string(a.Type),
		Views:      a.Views,
		AuthorID:   a.AuthorID,
		CategoryID: a.CategoryID,
		PubTime:    a.PubTime,
		Meta:       meta,
	}
}

func (a *Article) EtoD() *article.Article {
	meta := make(map[string]interface{})
	if len(a.Meta) > 0 {
		_ = json.Unmarshal(a.Meta, &meta)
	}
	result := &article.Article{
		ID:         a.ID,
		Title:      a.Title,
		Body:       a.Body,
		Excerpt:    a.Excerpt,
		Status:     article.Status(a.Status),
		Type:       article.Type(a.Type),
		Views:      a.Views,
		AuthorID:   a.AuthorID,
		CategoryID: a.CategoryID,
		PubTime:    a.PubTime,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
		Meta:       meta,
	}
	if a.Author != nil {
		result.AuthorName = a.Author.Name
		result.AuthorSlug = a.Author.EtoD().Slug()
	}
	if a.Category != nil {
		result.CategoryName = a.Category.Name
	}
	result.Tags = functional.Map(a.Tags, func(t Tag) string {
		return t.Name
	})
	return result
}
