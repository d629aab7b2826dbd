package models

import "time"

// Page identifiers known to the default content catalog. One page document
// exists per identifier; "contect" is the historical stored key of the
// contact page and is kept as-is for compatibility with existing documents.
const (
	PageHome     = "home"
	PageAbout    = "about"
	PageProjects = "projects"
	PageService  = "service"
	PageContact  = "contect"
)

// PageDocument is the unit of persistence for page content: the ordered
// collection of content blocks for one logical page.
//
// The document is always read and written wholesale. There is no per-block
// patch and no version token; concurrent saves are last-write-wins.
type PageDocument struct {
	// PageID is the logical page identifier (see the Page* constants).
	PageID string `json:"pageId"`

	// ContentBlocks is the ordered block array. Block IDs are unique
	// within this array but not globally.
	ContentBlocks []ContentBlock `json:"contentBlocks"`

	// CreatedAt is the timestamp when the document was first persisted.
	CreatedAt *time.Time `json:"created_at,omitempty"`

	// UpdatedAt is the timestamp of the last full-array save.
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}
