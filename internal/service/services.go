package service

import (
	"fmt"

	"github.com/benharosh/studio-cms/internal/adapter"
	"github.com/benharosh/studio-cms/internal/config"
	"github.com/benharosh/studio-cms/internal/logger"
	"github.com/benharosh/studio-cms/internal/store"
)

type Services struct {
	AuthService     AuthService
	PageService     PageService
	ProjectService  ProjectService
	CategoryService CategoryService
	SettingsService SettingsService
	ContactService  ContactService
	GalleryService  GalleryService
}

func NewServices(storages store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	authService, err := NewAuthService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error constructing auth service: %w", err)
	}

	var prober adapter.MediaProber
	if cfg.App.MediaProbeTimeout > 0 {
		prober = adapter.NewHTTPMediaProber(cfg.App.MediaProbeTimeout)
	}

	return &Services{
		AuthService:     authService,
		PageService:     NewPageService(storages.PageRepository, logger),
		ProjectService:  NewProjectService(storages.ProjectRepository, logger),
		CategoryService: NewCategoryService(storages.CategoryRepository, logger),
		SettingsService: NewSettingsService(storages.SettingsRepository, logger),
		ContactService:  NewContactService(storages.ContactMessageRepository, cfg.Workers.MessageRetention, logger),
		GalleryService:  NewGalleryService(storages.GalleryRepository, prober, logger),
	}, nil
}
