package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrPageNotFound is returned when no page document exists for the
	// requested page identifier. This is not a failure for callers: a
	// missing document is the "first run" signal that triggers seeding
	// from the default content catalog.
	ErrPageNotFound = errors.New("page document was not found")

	// ErrPageNotSaved is returned when a page save completes without a
	// driver error but affects zero rows, meaning nothing was persisted.
	ErrPageNotSaved = errors.New("page document was not saved")

	// ErrProjectNotFound is returned when a query targets a project
	// (by id or slug) that does not exist in the database.
	ErrProjectNotFound = errors.New("project was not found")

	// ErrSlugAlreadyExists is returned when creating or updating a
	// project fails because another project already owns the slug.
	ErrSlugAlreadyExists = errors.New("project slug already exists")

	// ErrCategoryNotFound is returned when a query targets a category
	// that does not exist in the database.
	ErrCategoryNotFound = errors.New("category was not found")

	// ErrCategoryAlreadyExists is returned when creating a category
	// fails because one with the same name already exists.
	ErrCategoryAlreadyExists = errors.New("category already exists")

	// ErrSettingsNotFound is returned when no settings document exists
	// under the requested name. Like a missing page, this triggers
	// seeding from the built-in defaults.
	ErrSettingsNotFound = errors.New("settings document was not found")

	// ErrMessageNotFound is returned when a delete targets a contact
	// message that does not exist in the database.
	ErrMessageNotFound = errors.New("contact message was not found")

	// ErrImageNotFound is returned when a query or delete targets a
	// gallery image that does not exist in the database.
	ErrImageNotFound = errors.New("gallery image was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised
	// SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a
	// single result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrEncodingDocument is returned when a jsonb column value cannot
	// be serialized before writing.
	ErrEncodingDocument = errors.New("failed to encode document")

	// ErrDecodingDocument is returned when a jsonb column value cannot
	// be deserialized after reading.
	ErrDecodingDocument = errors.New("failed to decode document")
)
