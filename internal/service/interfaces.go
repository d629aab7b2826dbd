package service

import (
	"context"

	"github.com/benharosh/studio-cms/models"
)

// PageService manages page content documents and the block editor
// operations performed on them.
//
// Every mutating operation loads the stored document, applies the change to
// the full block array, and writes the whole array back. There is no
// concurrency control: two admins editing the same page race, and the later
// save wins.
type PageService interface {
	// GetPage returns the stored document for the given page. When no
	// document exists yet the default content catalog is written to the
	// store and returned, so the first read of a page seeds it.
	GetPage(ctx context.Context, pageID string) (models.PageDocument, error)

	// GetPageView returns the public projection of the given page:
	// hidden blocks are skipped and blocks are addressed by their
	// well-known IDs.
	GetPageView(ctx context.Context, pageID string) (any, error)

	// SavePage overwrites the full block array of the given page.
	SavePage(ctx context.Context, pageID string, blocks []models.ContentBlock) (models.PageDocument, error)

	// ResetPage discards the stored document and immediately persists
	// the default content catalog for the given page.
	ResetPage(ctx context.Context, pageID string) (models.PageDocument, error)

	UpdateBlockContent(ctx context.Context, pageID, blockID string, content models.BlockContent) (models.PageDocument, error)
	ToggleBlockVisibility(ctx context.Context, pageID, blockID string) (models.PageDocument, error)
	DuplicateBlock(ctx context.Context, pageID, blockID string) (models.PageDocument, error)
	DeleteBlock(ctx context.Context, pageID, blockID string) (models.PageDocument, error)
}

// ProjectService manages the portfolio projects shown on the projects page.
type ProjectService interface {
	CreateProject(ctx context.Context, project models.Project) (models.Project, error)
	GetProjectBySlug(ctx context.Context, slug string) (models.Project, error)
	ListProjects(ctx context.Context, filter models.ProjectFilter) ([]models.Project, error)
	UpdateProject(ctx context.Context, project models.Project) error
	DeleteProject(ctx context.Context, projectID string) error
}

// CategoryService manages the project categories used as portfolio filters.
type CategoryService interface {
	CreateCategory(ctx context.Context, category models.Category) (models.Category, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	UpdateCategory(ctx context.Context, category models.Category) error
	DeleteCategory(ctx context.Context, categoryID string) error
}

// SettingsService manages the two named settings documents. Reads seed the
// store with defaults when no document exists yet; saves replace the stored
// document with a merge of the stored values and the incoming partial.
//
// The merge treats zero-valued fields of the partial as "not sent": a field
// cannot be cleared by saving an empty string or a zero, only overwritten
// with a new non-zero value.
type SettingsService interface {
	GetSiteSettings(ctx context.Context) (models.SiteSettings, error)
	SaveSiteSettings(ctx context.Context, settings models.SiteSettings) (models.SiteSettings, error)

	GetDesignSettings(ctx context.Context) (models.DesignSettings, error)
	SaveDesignSettings(ctx context.Context, settings models.DesignSettings) (models.DesignSettings, error)
}

// ContactService accepts public contact-form submissions and lets the admin
// panel list and remove them.
type ContactService interface {
	SubmitMessage(ctx context.Context, message models.ContactMessage) (models.ContactMessage, error)
	ListMessages(ctx context.Context) ([]models.ContactMessage, error)
	DeleteMessage(ctx context.Context, messageID string) error

	// SweepMessages removes messages older than the retention window and
	// returns the number of removed rows.
	SweepMessages(ctx context.Context) (int64, error)
}

// GalleryService manages the externally hosted gallery image references.
type GalleryService interface {
	AddImage(ctx context.Context, image models.GalleryImage) (models.GalleryImage, error)
	ListImages(ctx context.Context) ([]models.GalleryImage, error)
	DeleteImage(ctx context.Context, imageID string) error
}

// AuthService authenticates the single built-in admin account and manages
// the session token lifecycle.
type AuthService interface {
	// Login verifies the credential pair against the built-in admin
	// account and issues a session token on success.
	Login(ctx context.Context, credentials models.Credentials) (models.Token, error)

	// ParseToken validates a raw session token string and returns the
	// decoded token, or ErrTokenIsExpiredOrInvalid on any failure.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}
