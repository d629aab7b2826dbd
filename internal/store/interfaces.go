package store

import (
	"context"
	"time"

	"github.com/benharosh/studio-cms/models"
)

// PageRepository persists page documents keyed by page identifier.
//
// Documents are read and written wholesale: SavePage replaces the full block
// array with no partial update and no optimistic-lock token. Concurrent
// writers are last-write-wins.
type PageRepository interface {
	// FetchPage returns the stored document for the given page, or
	// [ErrPageNotFound] when none exists yet.
	FetchPage(ctx context.Context, pageID string) (models.PageDocument, error)

	// SavePage overwrites the full block array of the given page,
	// creating the document when it does not exist.
	SavePage(ctx context.Context, pageID string, blocks []models.ContentBlock) error
}

// ProjectRepository persists portfolio projects.
type ProjectRepository interface {
	CreateProject(ctx context.Context, project models.Project) (models.Project, error)
	GetProjectBySlug(ctx context.Context, slug string) (models.Project, error)
	ListProjects(ctx context.Context, filter models.ProjectFilter) ([]models.Project, error)
	UpdateProject(ctx context.Context, project models.Project) error
	DeleteProject(ctx context.Context, projectID string) error
}

// CategoryRepository persists project categories.
type CategoryRepository interface {
	CreateCategory(ctx context.Context, category models.Category) (models.Category, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	UpdateCategory(ctx context.Context, category models.Category) error
	DeleteCategory(ctx context.Context, categoryID string) error
}

// SettingsRepository persists the named settings documents ("config",
// "design") as opaque json values.
type SettingsRepository interface {
	// FetchSettings returns the raw stored document for the given name,
	// or [ErrSettingsNotFound] when none exists yet.
	FetchSettings(ctx context.Context, name string) ([]byte, error)

	// SaveSettings overwrites the document stored under the given name,
	// creating it when it does not exist.
	SaveSettings(ctx context.Context, name string, value []byte) error
}

// ContactMessageRepository persists contact-form submissions.
type ContactMessageRepository interface {
	CreateMessage(ctx context.Context, message models.ContactMessage) (models.ContactMessage, error)
	ListMessages(ctx context.Context) ([]models.ContactMessage, error)
	DeleteMessage(ctx context.Context, messageID string) error

	// DeleteMessagesBefore removes all messages created before the given
	// cutoff and returns the number of removed rows. Used by the
	// retention worker.
	DeleteMessagesBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// GalleryRepository persists gallery image references.
type GalleryRepository interface {
	CreateImage(ctx context.Context, image models.GalleryImage) (models.GalleryImage, error)
	ListImages(ctx context.Context) ([]models.GalleryImage, error)
	DeleteImage(ctx context.Context, imageID string) error
}
