package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-profile-hub/internal/config"
	"github.com/MKhiriev/go-profile-hub/internal/logger"
)

// Storages groups the server-side repositories.
type Storages struct {
	UserRepository    UserRepository
	SessionRepository SessionRepository

	db *DB
}

// NewStorages builds the server storage layer. With a database DSN users live
// in PostgreSQL (migrated on start); otherwise in the JSON users file.
// Sessions are always kept in memory.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	s := &Storages{SessionRepository: NewMemorySessionRepository()}

	if cfg.DB.DSN != "" {
		db, err := NewConnectPostgres(ctx, cfg.DB, log)
		if err != nil {
			return nil, fmt.Errorf("postgres connection error: %w", err)
		}
		if err = db.Migrate(); err != nil {
			db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}

		s.db = db
		s.UserRepository = NewUserRepository(db, log)
		return s, nil
	}

	users, err := NewFileUserRepository(cfg.Files.UsersFile, log)
	if err != nil {
		return nil, fmt.Errorf("users file error: %w", err)
	}
	s.UserRepository = users

	return s, nil
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
