package dbschema

import (
	"plume.ink/plume-blog-server/app/domain/user"
	"plume.ink/plume-blog-server/app/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(User{})
}

type User struct {
	BaseModel
	Name         string `gorm:"type:varchar(100);not null"`
	Username     string `gorm:"type:varchar(100);uniqueIndex;not null"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PublicID     string `gorm:"type:varchar(50);uniqueIndex;not null"`
	Enabled      bool
	PasswordHash *string `gorm:"type:text"`
}

func NewSchemaUser(u *user.User) *User {
	var passwordHash *string
	if u.PasswordHash != "" {
		passwordHash = &u.PasswordHash
	}
	return &User{
		BaseModel: BaseModel{
			ID: u.ID,
		},
		Name:         u.Name,
		Username:     u.Username,
		Email:        u.Email,
		Enabled:      u.Enabled,
		PublicID:     u.PublicID,
		PasswordHash: passwordHash,
	}
}

func (u *User) EtoD() *user.User {
	passwordHash := ""
	if u.PasswordHash != nil {
		passwordHash = *u.PasswordHash
	}
	return &user.User{
		ID:           u.ID,
		Name:         u.Name,
		Username:     u.Username,
		Email:        u.Email,
		Enabled:      u.Enabled,
		PublicID:     u.PublicID,
		CreatedAt:    u.CreatedAt,
		PasswordHash: passwordHash,
	}
}
