// Package view projects stored content blocks into the page-specific view
// models served to the public site.
//
// Projections address blocks by their well-known IDs, skip blocks whose
// Visible flag is off, and tolerate absence: a missing or type-mismatched
// block yields a zero-valued field, never an error. Id-addressed lookups do
// not re-sort by Order — cross-block layout is fixed by the page template;
// only list payloads (value items, project cards) keep their internal array
// order.
package view

import (
	"errors"
	"fmt"

	"github.com/benharosh/studio-cms/models"
)

// ErrUnknownPage is returned by [Project] for a page identifier without a
// projection.
var ErrUnknownPage = errors.New("no view projection for page")

// Project dispatches to the page-specific projection for the given page
// identifier.
func Project(pageID string, blocks []models.ContentBlock) (any, error) {
	switch pageID {
	case models.PageHome:
		return ProjectHome(blocks), nil
	case models.PageAbout:
		return ProjectAbout(blocks), nil
	case models.PageProjects:
		return ProjectProjects(blocks), nil
	case models.PageService:
		return ProjectServices(blocks), nil
	case models.PageContact:
		return ProjectContact(blocks), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPage, pageID)
	}
}

// visibleByID returns the visible block with the given ID.
// Hidden and missing blocks both report ok == false.
func visibleByID(blocks []models.ContentBlock, blockID string) (models.ContentBlock, bool) {
	for i := range blocks {
		if blocks[i].ID == blockID {
			if !blocks[i].Visible {
				return models.ContentBlock{}, false
			}
			return blocks[i], true
		}
	}
	return models.ContentBlock{}, false
}

func headingText(blocks []models.ContentBlock, blockID string) string {
	block, ok := visibleByID(blocks, blockID)
	if !ok {
		return ""
	}
	if content, ok := block.Content.(models.HeadingContent); ok {
		return content.Text
	}
	return ""
}

func textOf(blocks []models.ContentBlock, blockID string) string {
	block, ok := visibleByID(blocks, blockID)
	if !ok {
		return ""
	}
	if content, ok := block.Content.(models.TextContent); ok {
		return content.Text
	}
	return ""
}

func imageURL(blocks []models.ContentBlock, blockID string) string {
	block, ok := visibleByID(blocks, blockID)
	if !ok {
		return ""
	}
	if content, ok := block.Content.(models.ImageContent); ok {
		return content.URL
	}
	return ""
}

func quoteOf(blocks []models.ContentBlock, blockID string) *models.QuoteContent {
	block, ok := visibleByID(blocks, blockID)
	if !ok {
		return nil
	}
	if content, ok := block.Content.(models.QuoteContent); ok {
		return &content
	}
	return nil
}

func ctaOf(blocks []models.ContentBlock, blockID string) *models.CTAContent {
	block, ok := visibleByID(blocks, blockID)
	if !ok {
		return nil
	}
	if content, ok := block.Content.(models.CTAContent); ok {
		return &content
	}
	return nil
}

func valuesOf(blocks []models.ContentBlock, blockID string) *models.ValueContent {
	block, ok := visibleByID(blocks, blockID)
	if !ok {
		return nil
	}
	if content, ok := block.Content.(models.ValueContent); ok {
		return &content
	}
	return nil
}

func projectsOf(blocks []models.ContentBlock, blockID string) *models.ProjectsContent {
	block, ok := visibleByID(blocks, blockID)
	if !ok {
		return nil
	}
	if content, ok := block.Content.(models.ProjectsContent); ok {
		return &content
	}
	return nil
}
