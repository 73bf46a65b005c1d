package infra

import (
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// PoolOptions bounds the connection pool.
type PoolOptions struct {
	MaxOpenConns int
	MaxIdleConns int
}

// NewDatabase establishes a GORM connection backed by pgx.
// The schema is managed outside the application; nothing is migrated here.
func NewDatabase(dsn string, pool PoolOptions) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: NewGormLogger(200 * time.Millisecond),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if pool.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(pool.MaxOpenConns)
	}
	if pool.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(pool.MaxIdleConns)
	}
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	return db, nil
}
