package gormrepo

import (
	"fmt"

	"warebot/internal/adapter/repo/gorm/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func OpenPostgres(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.Layout{}, &model.PlanExecution{}); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}
