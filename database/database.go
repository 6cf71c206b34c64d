package database

import (
	"context"
	"fmt"
	"sync"

	"github.com/ManishJangid007/hirely-sub000/config"
	"github.com/ManishJangid007/hirely-sub000/internal/apperr"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Database wraps the GORM handle behind an explicit open/ready gate.
// Everything stateful funnels through Gorm(), which refuses to hand out
// a connection before Open has succeeded, so callers never race a
// half-initialised store.
type Database struct {
	cfg *config.Config

	mu sync.Mutex
	db *gorm.DB
}

func NewDatabase(cfg *config.Config) *Database {
	return &Database{cfg: cfg}
}

// Open connects and pings the backing Postgres instance. Calling it
// again after success is a no-op; concurrent callers share one attempt.
func (d *Database) Open(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.db != nil {
		return nil
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		d.cfg.Database.Host, d.cfg.Database.User, d.cfg.Database.Password,
		d.cfg.Database.Name, d.cfg.Database.Port, d.cfg.Database.SSLMode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		// Driver errors come back as gorm.ErrDuplicatedKey etc. so the
		// repositories can map them without sniffing pq error codes.
		TranslateError: true,
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to database")
		return fmt.Errorf("%w: %v", apperr.ErrStorageUnavailable, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrStorageUnavailable, err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		log.Error().Err(err).Msg("Database ping failed")
		return fmt.Errorf("%w: %v", apperr.ErrStorageUnavailable, err)
	}

	d.db = db
	log.Info().Str("host", d.cfg.Database.Host).Str("name", d.cfg.Database.Name).Msg("Database connection established")
	return nil
}

// Ready reports whether Open has completed successfully.
func (d *Database) Ready() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.db != nil
}

// Gorm returns the live handle, or ErrNotInitialized before Open.
func (d *Database) Gorm() (*gorm.DB, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.db == nil {
		return nil, apperr.ErrNotInitialized
	}
	return d.db, nil
}

// Close releases the underlying connection pool. The handle goes back
// to the uninitialised state, so a later Open can succeed again.
func (d *Database) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.db == nil {
		return nil
	}
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	d.db = nil
	return sqlDB.Close()
}
