package models

import "time"

// GalleryImage is one media reference of the site gallery. The image bytes
// live in external storage; only the URL and probe metadata are persisted.
type GalleryImage struct {
	// ID is the unique identifier of the record in the database.
	ID string `json:"id"`

	// URL is the externally hosted image location.
	URL string `json:"url"`

	// ContentType is the MIME type reported when the URL was probed.
	// Empty when the probe failed or was skipped.
	ContentType string `json:"contentType,omitempty"`

	// Size is the byte size reported when the URL was probed.
	// Zero when unknown.
	Size int64 `json:"size,omitempty"`

	// CreatedAt is the timestamp when the reference was added.
	CreatedAt *time.Time `json:"created_at,omitempty"`
}
