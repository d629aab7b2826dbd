package models

import "time"

// Category is one project category of the studio portfolio.
type Category struct {
	// ID is the unique identifier of the record in the database.
	ID string `json:"id"`

	// Name is the display name of the category.
	Name string `json:"name"`

	// Description is an optional short description shown on the
	// projects page filter.
	Description string `json:"description,omitempty"`

	// ImageCount is the number of gallery images tagged with this
	// category. Maintained by the admin panel, not derived.
	ImageCount int `json:"imageCount"`

	// CreatedAt is the timestamp when the record was created.
	CreatedAt *time.Time `json:"created_at,omitempty"`
}
