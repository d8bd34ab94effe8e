package config

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
	"p9e.in/splicing/models"
)

func Migrations(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "20251215_create_reports",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.Report{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("reports")
			},
		},
	})
	return m.Migrate()
}
