package dbschema

import (
	"time"

	"plume.ink/plume-blog-server/app/domain/links"
	"plume.ink/plume-blog-server/app/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(Link{})
}

type Link struct {
	BaseModel
	Name          string `gorm:"type:varchar(100);not null"`
	URL           string `gorm:"type:varchar(500);not null"`
	Sequence      int    `gorm:"not null;default:0"`
	IsEnable      bool   `gorm:"not null;default:true"`
	ShowType      string `gorm:"type:varchar(1);not null;default:'i'"`
	Reachable     *bool
	LastCheckedAt *time.Time
}

func NewSchemaLink(l *links.Link) *Link {
	return &Link{
		BaseModel: BaseModel{
			ID: l.ID,
		},
		Name:          l.Name,
		URL:           l.URL,
		Sequence:      l.Sequence,
		IsEnable:      l.IsEnable,
		ShowType:      string(l.ShowType),
		Reachable:     l.Reachable,
		LastCheckedAt: l.LastCheckedAt,
	}
}

func (l *Link) EtoD() *links.Link {
	return &links.Link{
		ID:            l.ID,
		Name:          l.Name,
		URL:           l.URL,
		Sequence:      l.Sequence,
		IsEnable:      l.IsEnable,
		ShowType:      links.ShowType(l.ShowType),
		Reachable:     l.Reachable,
		LastCheckedAt: l.LastCheckedAt,
		CreatedAt:     l.CreatedAt,
	}
}
