// Package pgtest starts a throwaway PostgreSQL container with the bakery
// schema applied, for repository and query integration suites.
package pgtest

import (
	"context"
	"database/sql"
	"time"

	"bakery/internal/adapters/out/postgres/migrations"

	_ "github.com/lib/pq" // registers the "postgres" driver
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Tables lists every application table, children first.
const Tables = "pedido_producto, cliente_pedido, pedido, ingrediente, material, materia_prima, " +
	"producto, proveedor, empleado, cliente, persona"

type Database struct {
	container *postgres.PostgresContainer
	DB        *gorm.DB
}

// Start runs postgres:15-alpine, connects through lib/pq and applies migrations.
func Start(ctx context.Context) (*Database, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, err
	}

	d := &Database{container: container}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = d.Stop(ctx)
		return nil, err
	}

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		_ = d.Stop(ctx)
		return nil, err
	}

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		_ = d.Stop(ctx)
		return nil, err
	}
	d.DB = db

	if err := migrations.Apply(ctx, db); err != nil {
		_ = d.Stop(ctx)
		return nil, err
	}

	return d, nil
}

// Truncate empties every application table and restarts the order sequence.
func (d *Database) Truncate() error {
	return d.DB.Exec("TRUNCATE TABLE " + Tables + " RESTART IDENTITY CASCADE").Error
}

func (d *Database) Stop(ctx context.Context) error {
	if d.DB != nil {
		if sqlDB, err := d.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	if d.container == nil {
		return nil
	}
	return d.container.Terminate(ctx)
}
