package database

import (
	"fmt"

	"gorm.io/gorm"
	"plume.ink/plume-blog-server/app/utils/logger"
)

type DatabaseMigration struct {
	gorm.Model
	Version string `gorm:"not null;uniqueIndex"`
}

type DBMigrator struct {
	db *gorm.DB
}

func NewDBMigrator(db *gorm.DB) *DBMigrator {
	return &DBMigrator{
		db: db,
	}
}

func (d *DBMigrator) initialize() error {
	db := d.db
	var reset bool
	var record DatabaseMigration

	hasTable := db.Migrator().HasTable("database_migration")
	if hasTable {
		result := db.Limit(1).Find(&record)
		if result.Error != nil && result.Error != gorm.ErrRecordNotFound {
			return fmt.Errorf("failed to query migration records: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			reset = true
		}
	} else {
		reset = true
	}

	if reset {
		if err := db.Exec("DROP SCHEMA IF EXISTS public CASCADE;").Error; err != nil {
			return fmt.Errorf("failed to drop public schema: %w", err)
		}
		if err := db.Exec("CREATE SCHEMA public;").Error; err != nil {
			return fmt.Errorf("failed to create public schema: %w", err)
		}
		if err := db.AutoMigrate(&DatabaseMigration{}); err != nil {
			return fmt.Errorf("failed to create 'database_migration' table: %w", err)
		}

		initialRecord := DatabaseMigration{Version: "000000"}
		if err := db.Create(&initialRecord).Error; err != nil {
			return fmt.Errorf("failed to insert initial migration record: %w", err)
		}
	}

	return nil
}

func (d *DBMigrator) Migrate() (err error) {
	if err = d.initialize(); err != nil {
		return err
	}
	for _, model := range SchemaRegistry {
		err = d.db.AutoMigrate(model)
		if err != nil {
			logger.GetLogger().
				WithField("error_code", "75333e43-8157-4f0a-8e34-aa34e6e7c285").
				Fatalf("failed to auto migrate schema: %T, error: %v", model, err)
			return err
		}
	}
	return nil
}
