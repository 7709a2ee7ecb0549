package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-account-service/internal/config"
	"github.com/MKhiriev/go-account-service/internal/logger"
)

// Storages aggregates every persistence backend the services depend on.
type Storages struct {
	UserRepository  UserRepository
	ProfilePictures ProfilePictureStorage
}

// NewStorages connects to PostgreSQL, applies pending migrations, prepares
// the profile picture directory, and returns the wired storage set.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	pictures, err := NewProfilePictureStorage(cfg.Files.ProfilePictureDir, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating profile picture storage: %w", err)
	}

	return &Storages{
		UserRepository:  NewUserRepository(db, logger),
		ProfilePictures: pictures,
	}, nil
}
