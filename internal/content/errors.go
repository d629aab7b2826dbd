package content

import "errors"

// Sentinel errors returned by block operations and validation.
// Callers should use [errors.Is] to match against these values.
var (
	// ErrBlockNotFound is returned when an operation targets a block ID
	// that does not exist in the page's block array.
	ErrBlockNotFound = errors.New("content block was not found")

	// ErrEmptyBlockID is returned by validation when a block has an
	// empty ID. Renderers address blocks by ID, so an empty ID would
	// make the block unreachable.
	ErrEmptyBlockID = errors.New("content block has an empty id")

	// ErrDuplicateBlockID is returned by validation when two blocks of
	// the same page share an ID.
	ErrDuplicateBlockID = errors.New("duplicate content block id")
)
