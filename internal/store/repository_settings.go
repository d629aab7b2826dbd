package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/benharosh/studio-cms/internal/logger"
)

// settingsRepository is the PostgreSQL-backed implementation of
// [SettingsRepository]. Each settings document is one row of the "settings"
// table, addressed by name, with the payload stored as an opaque jsonb value.
// The repository does not interpret the payload; typed (de)serialization is
// the settings service's concern.
type settingsRepository struct {
	*DB
	logger *logger.Logger
}

// NewSettingsRepository constructs a [SettingsRepository] backed by the
// provided database connection and logger.
func NewSettingsRepository(db *DB, logger *logger.Logger) SettingsRepository {
	return &settingsRepository{
		DB:     db,
		logger: logger,
	}
}

// FetchSettings retrieves the raw document stored under the given name.
//
// Returns [ErrSettingsNotFound] when no row exists — callers treat that as
// the first-run signal and seed the document from the built-in defaults.
func (s *settingsRepository) FetchSettings(ctx context.Context, name string) ([]byte, error) {
	log := logger.FromContext(ctx)

	var value []byte

	row := s.DB.QueryRowContext(ctx, fetchSettings, name)
	scanErr := row.Scan(&value)
	if errors.Is(scanErr, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", ErrSettingsNotFound, name)
	}
	if scanErr != nil {
		log.Err(scanErr).
			Str("func", "settingsRepository.FetchSettings").
			Str("name", name).
			Msg("failed to scan settings row")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	return value, nil
}

// SaveSettings overwrites the document stored under the given name, creating
// the row when it does not exist.
func (s *settingsRepository) SaveSettings(ctx context.Context, name string, value []byte) error {
	log := logger.FromContext(ctx)

	_, execErr := s.DB.ExecContext(ctx, saveSettings, name, value)
	if execErr != nil {
		log.Err(execErr).
			Str("func", "settingsRepository.SaveSettings").
			Str("name", name).
			Msg("failed to execute settings save")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
	}

	return nil
}
