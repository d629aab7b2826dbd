package models

import "time"

// Project is one portfolio entry of the studio.
type Project struct {
	// ID is the unique identifier of the record in the database.
	ID string `json:"id"`

	// Title is the display title of the project.
	Title string `json:"title"`

	// Category is the name of the category the project belongs to.
	Category string `json:"category"`

	// Location is the free-form project location (city, neighbourhood).
	Location string `json:"location,omitempty"`

	// Year is the completion year as displayed on the site.
	Year string `json:"year,omitempty"`

	// CoverImage references the gallery image shown on project cards.
	CoverImage string `json:"coverImage,omitempty"`

	// Description is the long-form project description.
	Description string `json:"description,omitempty"`

	// Materials lists the materials used, shown on the project page.
	Materials []string `json:"materials,omitempty"`

	// Tags are free-form labels used for filtering on the projects page.
	Tags []string `json:"tags,omitempty"`

	// Gallery references the gallery images of the project page.
	Gallery []string `json:"gallery,omitempty"`

	// Published controls public visibility. Unpublished projects are
	// visible only in the admin panel.
	Published bool `json:"published"`

	// Slug is the unique URL segment of the project page.
	Slug string `json:"slug"`

	// CreatedAt is the timestamp when the record was created.
	CreatedAt *time.Time `json:"created_at,omitempty"`

	// UpdatedAt is the timestamp of the last modification.
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// ProjectFilter narrows a project listing. Zero-valued fields are ignored.
type ProjectFilter struct {
	// Category filters by exact category name.
	Category string `json:"category,omitempty"`

	// Tag filters projects whose tag list contains the given tag.
	Tag string `json:"tag,omitempty"`

	// PublishedOnly excludes unpublished projects. Always set on the
	// public listing; optional in the admin panel.
	PublishedOnly bool `json:"published_only,omitempty"`
}
