package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
)

// Storages bundles the repositories of the selected backend.
type Storages struct {
	UserRepository UserRepository
	PostRepository PostRepository

	db *DB
}

// NewStorages selects the backend from cfg: PostgreSQL when a DSN is set
// (migrations are applied on connect), the in-memory backend otherwise.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	if cfg.DB.DSN == "" {
		log.Warn().Str("func", "NewStorages").Msg("no database DSN configured, using in-memory storage")
		return NewMemoryStorages(NewMemoryDB()), nil
	}

	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		PostRepository: NewPostRepository(db, log),
		db:             db,
	}, nil
}

// NewMemoryStorages builds Storages over an in-memory backend.
func NewMemoryStorages(db *MemoryDB) *Storages {
	return &Storages{
		UserRepository: NewMemoryUserRepository(db),
		PostRepository: NewMemoryPostRepository(db),
	}
}

// Close releases the database connection pool, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
