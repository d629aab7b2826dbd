package content

import (
	"fmt"
	"sort"

	"github.com/benharosh/studio-cms/models"
	"github.com/google/uuid"
)

// Find returns the index of the block with the given ID, or -1 and false
// when no such block exists.
func Find(blocks []models.ContentBlock, blockID string) (int, bool) {
	for i := range blocks {
		if blocks[i].ID == blockID {
			return i, true
		}
	}
	return -1, false
}

// UpdateContent replaces the content payload of the block with the given ID
// and returns the updated slice.
//
// The new payload is not validated against the block's declared type: the
// editor forms are trusted to send the matching shape, and a mismatched
// shape surfaces at render time, not here.
//
// Returns [ErrBlockNotFound] if no block carries the given ID.
func UpdateContent(blocks []models.ContentBlock, blockID string, newContent models.BlockContent) ([]models.ContentBlock, error) {
	i, ok := Find(blocks, blockID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrBlockNotFound, blockID)
	}

	updated := copyBlocks(blocks)
	updated[i].Content = newContent

	return updated, nil
}

// ToggleVisibility flips the Visible flag of the block with the given ID and
// returns the updated slice. Toggling twice restores the original value.
//
// Returns [ErrBlockNotFound] if no block carries the given ID.
func ToggleVisibility(blocks []models.ContentBlock, blockID string) ([]models.ContentBlock, error) {
	i, ok := Find(blocks, blockID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrBlockNotFound, blockID)
	}

	updated := copyBlocks(blocks)
	updated[i].Visible = !updated[i].Visible

	return updated, nil
}

// Duplicate appends a deep copy of the block with the given ID and returns
// the extended slice together with the new block.
//
// The copy gets a freshly generated unique ID and an Order value of
// max(existing orders) + 1, so it always lands at the end of the display
// sequence rather than next to its original.
//
// Returns [ErrBlockNotFound] if no block carries the given ID.
func Duplicate(blocks []models.ContentBlock, blockID string) ([]models.ContentBlock, models.ContentBlock, error) {
	i, ok := Find(blocks, blockID)
	if !ok {
		return nil, models.ContentBlock{}, fmt.Errorf("%w: %q", ErrBlockNotFound, blockID)
	}

	clone, err := blocks[i].Clone()
	if err != nil {
		return nil, models.ContentBlock{}, err
	}

	clone.ID = fmt.Sprintf("%s-copy-%s", blocks[i].ID, uuid.NewString()[:8])
	clone.Order = MaxOrder(blocks) + 1

	updated := copyBlocks(blocks)
	updated = append(updated, clone)

	return updated, clone, nil
}

// Delete removes the block with the given ID and returns the shortened
// slice. The removal is irreversible once the array is saved.
//
// Returns [ErrBlockNotFound] if no block carries the given ID.
func Delete(blocks []models.ContentBlock, blockID string) ([]models.ContentBlock, error) {
	i, ok := Find(blocks, blockID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrBlockNotFound, blockID)
	}

	updated := make([]models.ContentBlock, 0, len(blocks)-1)
	updated = append(updated, blocks[:i]...)
	updated = append(updated, blocks[i+1:]...)

	return updated, nil
}

// MaxOrder returns the largest Order value in the slice, or 0 for an empty
// slice.
func MaxOrder(blocks []models.ContentBlock) int {
	maxOrder := 0
	for i := range blocks {
		if blocks[i].Order > maxOrder {
			maxOrder = blocks[i].Order
		}
	}
	return maxOrder
}

// SortByOrder returns a copy of the slice sorted by Order ascending.
// The sort is stable: blocks with equal Order keep their array position.
func SortByOrder(blocks []models.ContentBlock) []models.ContentBlock {
	sorted := copyBlocks(blocks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order < sorted[j].Order
	})
	return sorted
}

// ValidateBlocks checks the invariants a page document must hold before it
// is saved: every block has a non-empty ID and IDs are unique within the
// array. Content payloads are intentionally not validated (see
// [UpdateContent]).
func ValidateBlocks(blocks []models.ContentBlock) error {
	seen := make(map[string]struct{}, len(blocks))

	for i := range blocks {
		id := blocks[i].ID
		if id == "" {
			return fmt.Errorf("%w: block at position %d", ErrEmptyBlockID, i)
		}
		if _, exists := seen[id]; exists {
			return fmt.Errorf("%w: %q", ErrDuplicateBlockID, id)
		}
		seen[id] = struct{}{}
	}

	return nil
}

func copyBlocks(blocks []models.ContentBlock) []models.ContentBlock {
	copied := make([]models.ContentBlock, len(blocks))
	copy(copied, blocks)
	return copied
}
