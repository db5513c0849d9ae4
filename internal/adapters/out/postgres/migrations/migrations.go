// Package migrations creates the bakery schema and its stored functions.
//
// Scripts are embedded, applied in file-name order and recorded in the
// schema_migrations table, so Apply is safe to call on every start.
package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"sort"

	"gorm.io/gorm"
)

//go:embed *.sql
var scripts embed.FS

type schemaMigration struct {
	Version string `gorm:"primaryKey"`
}

func (schemaMigration) TableName() string {
	return "schema_migrations"
}

// Apply runs every script that is not yet recorded, each in its own transaction.
func Apply(ctx context.Context, db *gorm.DB) error {
	db = db.WithContext(ctx)

	if err := db.AutoMigrate(&schemaMigration{}); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	names, err := fs.Glob(scripts, "*.sql")
	if err != nil {
		return err
	}
	sort.Strings(names)

	var applied []schemaMigration
	if err := db.Find(&applied).Error; err != nil {
		return fmt.Errorf("read schema_migrations: %w", err)
	}
	done := make(map[string]struct{}, len(applied))
	for _, m := range applied {
		done[m.Version] = struct{}{}
	}

	for _, name := range names {
		if _, ok := done[name]; ok {
			continue
		}

		script, err := scripts.ReadFile(name)
		if err != nil {
			return err
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Exec(string(script)).Error; err != nil {
				return err
			}
			return tx.Create(&schemaMigration{Version: name}).Error
		})
		if err != nil {
			return fmt.Errorf("apply migration %s: %w", name, err)
		}

		slog.InfoContext(ctx, "migration applied", "version", name)
	}

	return nil
}
