package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/benharosh/studio-cms/internal/logger"
	"github.com/benharosh/studio-cms/models"
)

// pageRepository is the PostgreSQL-backed implementation of [PageRepository].
// Page documents live in the "pages" table with the block array stored as a
// single jsonb column; every save is a full-array upsert.
type pageRepository struct {
	*DB
	logger *logger.Logger
}

// NewPageRepository constructs a [PageRepository] backed by the provided
// database connection and logger.
func NewPageRepository(db *DB, logger *logger.Logger) PageRepository {
	return &pageRepository{
		DB:     db,
		logger: logger,
	}
}

// FetchPage retrieves the stored document for the given page identifier.
//
// Returns [ErrPageNotFound] when no row exists — callers treat that as the
// first-run signal and seed the page from the default content catalog.
func (p *pageRepository) FetchPage(ctx context.Context, pageID string) (models.PageDocument, error) {
	log := logger.FromContext(ctx)

	var doc models.PageDocument
	var rawBlocks []byte

	row := p.DB.QueryRowContext(ctx, fetchPage, pageID)
	scanErr := row.Scan(
		&doc.PageID,
		&rawBlocks,
		&doc.CreatedAt,
		&doc.UpdatedAt,
	)
	if errors.Is(scanErr, sql.ErrNoRows) {
		return models.PageDocument{}, fmt.Errorf("%w: %q", ErrPageNotFound, pageID)
	}
	if scanErr != nil {
		log.Err(scanErr).
			Str("func", "pageRepository.FetchPage").
			Str("page_id", pageID).
			Msg("failed to scan page document row")
		return models.PageDocument{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	if err := json.Unmarshal(rawBlocks, &doc.ContentBlocks); err != nil {
		log.Err(err).
			Str("func", "pageRepository.FetchPage").
			Str("page_id", pageID).
			Msg("failed to decode content blocks")
		return models.PageDocument{}, fmt.Errorf("%w: %w", ErrDecodingDocument, err)
	}

	return doc, nil
}

// SavePage overwrites the full block array of the given page. The upsert
// carries no version check: a concurrent save is silently overwritten
// (last-write-wins).
func (p *pageRepository) SavePage(ctx context.Context, pageID string, blocks []models.ContentBlock) error {
	log := logger.FromContext(ctx)

	if blocks == nil {
		blocks = []models.ContentBlock{}
	}

	rawBlocks, err := json.Marshal(blocks)
	if err != nil {
		log.Err(err).
			Str("func", "pageRepository.SavePage").
			Str("page_id", pageID).
			Msg("failed to encode content blocks")
		return fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}

	result, execErr := p.DB.ExecContext(ctx, savePage, pageID, rawBlocks)
	if execErr != nil {
		log.Err(execErr).
			Str("func", "pageRepository.SavePage").
			Str("page_id", pageID).
			Int("blocks_count", len(blocks)).
			Msg("failed to execute page save")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
	}

	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return fmt.Errorf("%w: %q", ErrPageNotSaved, pageID)
	}

	return nil
}
