package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/benharosh/studio-cms/internal/content"
	"github.com/benharosh/studio-cms/internal/logger"
	"github.com/benharosh/studio-cms/internal/store"
	"github.com/benharosh/studio-cms/internal/view"
	"github.com/benharosh/studio-cms/models"
)

// pageService is the concrete implementation of PageService.
//
// All block editor operations share one shape: load the stored document,
// apply a pure transformation to the block array, write the whole array
// back. The store keeps no per-block rows and no version counter, so a save
// replaces whatever is stored at that moment.
type pageService struct {
	pageRepository store.PageRepository

	logger *logger.Logger
}

// NewPageService constructs a PageService backed by the given repository.
func NewPageService(pageRepository store.PageRepository, logger *logger.Logger) PageService {
	return &pageService{
		pageRepository: pageRepository,
		logger:         logger,
	}
}

// GetPage implements [PageService]. A page that has never been saved is
// seeded: the default content catalog is persisted and returned. Unknown
// page identifiers have an empty catalog; for those the empty document is
// returned without being persisted.
func (p *pageService) GetPage(ctx context.Context, pageID string) (models.PageDocument, error) {
	log := logger.FromContext(ctx)

	if pageID == "" {
		return models.PageDocument{}, ErrValidationEmptyPageID
	}

	document, err := p.pageRepository.FetchPage(ctx, pageID)
	if err == nil {
		return document, nil
	}
	if !errors.Is(err, store.ErrPageNotFound) {
		log.Err(err).Str("pageID", pageID).Msg("page fetch failed")
		return models.PageDocument{}, fmt.Errorf("page fetch failed: %w", err)
	}

	defaults := content.DefaultBlocks(pageID)
	if len(defaults) == 0 {
		return models.PageDocument{PageID: pageID, ContentBlocks: []models.ContentBlock{}}, nil
	}

	log.Info().Str("pageID", pageID).Msg("seeding page with default content")
	if err := p.pageRepository.SavePage(ctx, pageID, defaults); err != nil {
		log.Err(err).Str("pageID", pageID).Msg("page seed failed")
		return models.PageDocument{}, fmt.Errorf("page seed failed: %w", err)
	}

	return models.PageDocument{PageID: pageID, ContentBlocks: defaults}, nil
}

// GetPageView implements [PageService]. The projection runs over the ordered
// block array; hidden and missing blocks yield zero-valued view fields.
func (p *pageService) GetPageView(ctx context.Context, pageID string) (any, error) {
	document, err := p.GetPage(ctx, pageID)
	if err != nil {
		return nil, err
	}

	return view.Project(pageID, content.SortByOrder(document.ContentBlocks))
}

// SavePage implements [PageService]. The incoming array replaces the stored
// one wholesale after its structural invariants are checked.
func (p *pageService) SavePage(ctx context.Context, pageID string, blocks []models.ContentBlock) (models.PageDocument, error) {
	log := logger.FromContext(ctx)

	if pageID == "" {
		return models.PageDocument{}, ErrValidationEmptyPageID
	}
	if err := content.ValidateBlocks(blocks); err != nil {
		return models.PageDocument{}, fmt.Errorf("%w: %w", ErrValidationBadBlockArray, err)
	}

	if err := p.pageRepository.SavePage(ctx, pageID, blocks); err != nil {
		log.Err(err).Str("pageID", pageID).Msg("page save failed")
		return models.PageDocument{}, fmt.Errorf("page save failed: %w", err)
	}

	return models.PageDocument{PageID: pageID, ContentBlocks: blocks}, nil
}

// ResetPage implements [PageService]. The default catalog is written
// immediately; the previous document is gone once the write lands.
func (p *pageService) ResetPage(ctx context.Context, pageID string) (models.PageDocument, error) {
	log := logger.FromContext(ctx)

	if pageID == "" {
		return models.PageDocument{}, ErrValidationEmptyPageID
	}

	defaults := content.DefaultBlocks(pageID)

	log.Info().Str("pageID", pageID).Msg("resetting page to default content")
	if err := p.pageRepository.SavePage(ctx, pageID, defaults); err != nil {
		log.Err(err).Str("pageID", pageID).Msg("page reset failed")
		return models.PageDocument{}, fmt.Errorf("page reset failed: %w", err)
	}

	return models.PageDocument{PageID: pageID, ContentBlocks: defaults}, nil
}

// UpdateBlockContent implements [PageService].
func (p *pageService) UpdateBlockContent(ctx context.Context, pageID, blockID string, newContent models.BlockContent) (models.PageDocument, error) {
	if newContent == nil {
		return models.PageDocument{}, ErrValidationNoContent
	}

	return p.applyBlockOp(ctx, pageID, blockID, func(blocks []models.ContentBlock) ([]models.ContentBlock, error) {
		return content.UpdateContent(blocks, blockID, newContent)
	})
}

// ToggleBlockVisibility implements [PageService].
func (p *pageService) ToggleBlockVisibility(ctx context.Context, pageID, blockID string) (models.PageDocument, error) {
	return p.applyBlockOp(ctx, pageID, blockID, func(blocks []models.ContentBlock) ([]models.ContentBlock, error) {
		return content.ToggleVisibility(blocks, blockID)
	})
}

// DuplicateBlock implements [PageService].
func (p *pageService) DuplicateBlock(ctx context.Context, pageID, blockID string) (models.PageDocument, error) {
	return p.applyBlockOp(ctx, pageID, blockID, func(blocks []models.ContentBlock) ([]models.ContentBlock, error) {
		updated, _, err := content.Duplicate(blocks, blockID)
		return updated, err
	})
}

// DeleteBlock implements [PageService].
func (p *pageService) DeleteBlock(ctx context.Context, pageID, blockID string) (models.PageDocument, error) {
	return p.applyBlockOp(ctx, pageID, blockID, func(blocks []models.ContentBlock) ([]models.ContentBlock, error) {
		return content.Delete(blocks, blockID)
	})
}

// applyBlockOp runs one editor operation through the shared
// load-transform-save cycle. The fetch seeds absent pages first, so editing
// a page that was never opened still works.
func (p *pageService) applyBlockOp(ctx context.Context, pageID, blockID string, op func([]models.ContentBlock) ([]models.ContentBlock, error)) (models.PageDocument, error) {
	log := logger.FromContext(ctx)

	if pageID == "" {
		return models.PageDocument{}, ErrValidationEmptyPageID
	}
	if blockID == "" {
		return models.PageDocument{}, ErrValidationEmptyBlockID
	}

	document, err := p.GetPage(ctx, pageID)
	if err != nil {
		return models.PageDocument{}, err
	}

	updated, err := op(document.ContentBlocks)
	if err != nil {
		log.Err(err).Str("pageID", pageID).Str("blockID", blockID).Msg("block operation failed")
		return models.PageDocument{}, err
	}

	if err := p.pageRepository.SavePage(ctx, pageID, updated); err != nil {
		log.Err(err).Str("pageID", pageID).Str("blockID", blockID).Msg("page save failed")
		return models.PageDocument{}, fmt.Errorf("page save failed: %w", err)
	}

	return models.PageDocument{PageID: pageID, ContentBlocks: updated}, nil
}
