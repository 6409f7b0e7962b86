package database

import (
	"fmt"

	"gorm.io/gorm"
)

// Migrate creates or updates the tables, indexes and constraints of models.
func Migrate(db *gorm.DB, models ...any) error {
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// Drop removes the tables of models, children first. Models must be listed
// parents before children.
func Drop(db *gorm.DB, models ...any) error {
	for i := len(models) - 1; i >= 0; i-- {
		if !db.Migrator().HasTable(models[i]) {
			continue
		}
		if err := db.Migrator().DropTable(models[i]); err != nil {
			return fmt.Errorf("failed to drop table for %T: %w", models[i], err)
		}
	}
	return nil
}

// ExistingTables returns the table names of models that already exist.
func ExistingTables(db *gorm.DB, models ...any) ([]string, error) {
	var existing []string
	for _, m := range models {
		if !db.Migrator().HasTable(m) {
			continue
		}
		name, err := TableName(db, m)
		if err != nil {
			return nil, err
		}
		existing = append(existing, name)
	}
	return existing, nil
}

// TableName resolves the table a model maps to.
func TableName(db *gorm.DB, model any) (string, error) {
	stmt := &gorm.Statement{DB: db}
	if err := stmt.Parse(model); err != nil {
		return "", fmt.Errorf("failed to parse model %T: %w", model, err)
	}
	return stmt.Schema.Table, nil
}

// HasAnyTable reports whether at least one of the models' tables exists.
func HasAnyTable(db *gorm.DB, models ...any) bool {
	for _, m := range models {
		if db.Migrator().HasTable(m) {
			return true
		}
	}
	return false
}
