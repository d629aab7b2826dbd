package store

import (
	"context"
	"fmt"

	"github.com/benharosh/studio-cms/internal/config"
	"github.com/benharosh/studio-cms/internal/logger"
)

// Storages aggregates every repository of the application behind one
// constructor so that the service layer receives a single wired dependency.
type Storages struct {
	PageRepository           PageRepository
	ProjectRepository        ProjectRepository
	CategoryRepository       CategoryRepository
	SettingsRepository       SettingsRepository
	ContactMessageRepository ContactMessageRepository
	GalleryRepository        GalleryRepository
}

// NewStorages connects to the database, applies pending migrations, and
// constructs all repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error creating database connection: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &Storages{
		PageRepository:           NewPageRepository(db, log),
		ProjectRepository:        NewProjectRepository(db, log),
		CategoryRepository:       NewCategoryRepository(db, log),
		SettingsRepository:       NewSettingsRepository(db, log),
		ContactMessageRepository: NewContactMessageRepository(db, log),
		GalleryRepository:        NewGalleryRepository(db, log),
	}, nil
}
