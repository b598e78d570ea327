package postgres

import (
	"database/sql"
	"fmt"
	"time"

	"trading/internal/adapters/out/postgres/catalogrepo"
	"trading/internal/adapters/out/postgres/orderrepo"
	"trading/internal/adapters/out/postgres/partyrepo"

	_ "github.com/lib/pq"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DB couples the GORM handle with the pooled connection it runs on.
type DB struct {
	Gorm *gorm.DB
	sql  *sql.DB
}

// Open connects to PostgreSQL through lib/pq and wraps the pool with GORM.
func Open(dsn string) (*DB, error) {
	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	gormDB, err := gorm.Open(gormpg.New(gormpg.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("open gorm: %w", err)
	}

	return &DB{Gorm: gormDB, sql: sqlDB}, nil
}

// Close releases the connection pool.
func (d *DB) Close() error {
	return d.sql.Close()
}

// Migrate creates or updates every table of the service.
func Migrate(db *gorm.DB) error {
	if err := orderrepo.Migrate(db); err != nil {
		return err
	}
	if err := db.AutoMigrate(&catalogrepo.ProductDTO{}); err != nil {
		return fmt.Errorf("migrate products: %w", err)
	}
	if err := partyrepo.Migrate(db); err != nil {
		return fmt.Errorf("migrate counterparties: %w", err)
	}
	return nil
}
