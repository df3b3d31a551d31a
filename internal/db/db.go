package db

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/predforge/predforge/internal/build"
	"github.com/predforge/predforge/internal/roster"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the sqlite database file, migrates the schema and loads
// the seed tables.
func Open(path string) (*gorm.DB, error) {
	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %s: %w", path, err)
	}

	if err := gdb.Exec("PRAGMA journal_mode = WAL").Error; err != nil {
		return nil, fmt.Errorf("enable WAL: %w", err)
	}

	if err := gdb.AutoMigrate(
		&roster.CharacterRow{},
		&roster.ItemRow{},
		&build.History{},
		&build.SavedBuild{},
	); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	if err := roster.Seed(gdb); err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}

	return gdb, nil
}
