package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"dario.cat/mergo"
	"github.com/benharosh/studio-cms/internal/content"
	"github.com/benharosh/studio-cms/internal/logger"
	"github.com/benharosh/studio-cms/internal/store"
	"github.com/benharosh/studio-cms/models"
)

// settingsService is the concrete implementation of SettingsService.
//
// The two settings documents are stored as opaque json values under fixed
// names. Reads seed missing documents with the built-in defaults, mirroring
// how page documents are seeded on first fetch. Saves merge the incoming
// partial over the stored document so clients may send only the sections
// they edited.
type settingsService struct {
	settingsRepository store.SettingsRepository

	logger *logger.Logger
}

// NewSettingsService constructs a SettingsService backed by the given repository.
func NewSettingsService(settingsRepository store.SettingsRepository, logger *logger.Logger) SettingsService {
	return &settingsService{
		settingsRepository: settingsRepository,
		logger:             logger,
	}
}

// GetSiteSettings implements [SettingsService].
func (s *settingsService) GetSiteSettings(ctx context.Context) (models.SiteSettings, error) {
	var settings models.SiteSettings
	if err := s.fetchOrSeed(ctx, models.SettingsConfig, &settings, content.DefaultSiteSettings()); err != nil {
		return models.SiteSettings{}, err
	}

	return settings, nil
}

// SaveSiteSettings implements [SettingsService].
func (s *settingsService) SaveSiteSettings(ctx context.Context, incoming models.SiteSettings) (models.SiteSettings, error) {
	if incoming.Language != "" && incoming.Language != "he" && incoming.Language != "en" {
		return models.SiteSettings{}, fmt.Errorf("%w: %q", ErrValidationBadLanguage, incoming.Language)
	}

	stored, err := s.GetSiteSettings(ctx)
	if err != nil {
		return models.SiteSettings{}, err
	}

	// zero fields of the incoming partial keep their stored values
	if err := mergo.Merge(&incoming, stored); err != nil {
		return models.SiteSettings{}, fmt.Errorf("error merging site settings: %w", err)
	}

	now := time.Now()
	incoming.UpdatedAt = &now

	if err := s.save(ctx, models.SettingsConfig, incoming); err != nil {
		return models.SiteSettings{}, err
	}

	return incoming, nil
}

// GetDesignSettings implements [SettingsService].
func (s *settingsService) GetDesignSettings(ctx context.Context) (models.DesignSettings, error) {
	var settings models.DesignSettings
	if err := s.fetchOrSeed(ctx, models.SettingsDesign, &settings, content.DefaultDesignSettings()); err != nil {
		return models.DesignSettings{}, err
	}

	return settings, nil
}

// SaveDesignSettings implements [SettingsService].
func (s *settingsService) SaveDesignSettings(ctx context.Context, incoming models.DesignSettings) (models.DesignSettings, error) {
	if incoming.Columns < 0 {
		return models.DesignSettings{}, ErrValidationBadDesignValue
	}

	stored, err := s.GetDesignSettings(ctx)
	if err != nil {
		return models.DesignSettings{}, err
	}

	if err := mergo.Merge(&incoming, stored); err != nil {
		return models.DesignSettings{}, fmt.Errorf("error merging design settings: %w", err)
	}

	now := time.Now()
	incoming.UpdatedAt = &now

	if err := s.save(ctx, models.SettingsDesign, incoming); err != nil {
		return models.DesignSettings{}, err
	}

	return incoming, nil
}

// fetchOrSeed loads the named document into dst. A missing document is
// seeded: defaults are persisted and decoded into dst instead.
func (s *settingsService) fetchOrSeed(ctx context.Context, name string, dst any, defaults any) error {
	log := logger.FromContext(ctx)

	raw, err := s.settingsRepository.FetchSettings(ctx, name)
	if err == nil {
		if err := json.Unmarshal(raw, dst); err != nil {
			log.Err(err).Str("name", name).Msg("settings document decoding failed")
			return fmt.Errorf("settings document decoding failed: %w", err)
		}
		return nil
	}
	if !errors.Is(err, store.ErrSettingsNotFound) {
		log.Err(err).Str("name", name).Msg("settings fetch failed")
		return fmt.Errorf("settings fetch failed: %w", err)
	}

	log.Info().Str("name", name).Msg("seeding settings with defaults")
	if err := s.save(ctx, name, defaults); err != nil {
		return err
	}

	// round-trip through json so dst gets the same value a later fetch would
	seeded, err := json.Marshal(defaults)
	if err != nil {
		return fmt.Errorf("error encoding default settings: %w", err)
	}

	return json.Unmarshal(seeded, dst)
}

func (s *settingsService) save(ctx context.Context, name string, value any) error {
	log := logger.FromContext(ctx)

	raw, err := json.Marshal(value)
	if err != nil {
		log.Err(err).Str("name", name).Msg("settings document encoding failed")
		return fmt.Errorf("settings document encoding failed: %w", err)
	}

	if err := s.settingsRepository.SaveSettings(ctx, name, raw); err != nil {
		log.Err(err).Str("name", name).Msg("settings save failed")
		return fmt.Errorf("settings save failed: %w", err)
	}

	return nil
}
