package dbschema

import (
	"encoding/json"
	"time"

	"plume.ink/plume-blog-server/app/domain/setting"
	"plume.ink/plume-blog-server/app/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(SystemSetting{}, AuditLog{})
}

type SystemSetting struct {
	BaseModel
	Key            string    `gorm:"size:128;not null;uniqueIndex"`
	Payload        []byte    `gorm:"type:jsonb;not null"`
	LastUpdatedBy  *uint     `gorm:"index"`
	UpdatedByEmail *string   `gorm:"size:255"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func NewSchemaSystemSetting(s *setting.SystemSetting) *SystemSetting {
	payload, _ := json.Marshal(s.Payload)
	return &SystemSetting{
		BaseModel: BaseModel{
			ID: s.ID,
		},
		Key:            s.Key,
		Payload:        payload,
		LastUpdatedBy:  s.LastUpdatedBy,
		UpdatedByEmail: s.UpdatedByEmail,
		UpdatedAt:      s.UpdatedAt,
	}
}

func (s *SystemSetting) EtoD() *setting.SystemSetting {
	payload := make(map[string]interface{})
	if len(s.Payload) > 0 {
		_ = json.Unmarshal(s.Payload, &payload)
	}
	return &setting.SystemSetting{
		ID:             s.ID,
		Key:            s.Key,
		Payload:        payload,
		LastUpdatedBy:  s.LastUpdatedBy,
		UpdatedByEmail: s.UpdatedByEmail,
		UpdatedAt:      s.UpdatedAt,
		CreatedAt:      s.CreatedAt,
	}
}

type AuditLog struct {
	BaseModel
	UserID    *uint   `gorm:"index"`
	UserEmail *string `gorm:"size:255"`
	Event     string  `gorm:"size:128;not null;index"`
	Metadata  []byte  `gorm:"type:jsonb"`
}

func NewSchemaAuditLog(entry *setting.AuditLog) *AuditLog {
	metadata, _ := json.Marshal(entry.Metadata)
	return &AuditLog{
		BaseModel: BaseModel{
			ID: entry.ID,
		},
		UserID:    entry.UserID,
		UserEmail: entry.UserEmail,
		Event:     entry.Event,
		Metadata:  metadata,
	}
}

func (a *AuditLog) EtoD() *setting.AuditLog {
	metadata := make(map[string]interface{})
	if len(a.Metadata) > 0 {
		_ = json.Unmarshal(a.Metadata, &metadata)
	}
	return &setting.AuditLog{
		ID:        a.ID,
		UserID:    a.UserID,
		UserEmail: a.UserEmail,
		Event:     a.Event,
		Metadata:  metadata,
		CreatedAt: a.CreatedAt,
	}
}
