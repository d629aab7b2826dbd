package content

import (
	"strings"
	"testing"

	"github.com/benharosh/studio-cms/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBlocks() []models.ContentBlock {
	return []models.ContentBlock{
		{
			ID:      "hero-title",
			Type:    models.BlockHeading,
			Content: models.HeadingContent{Text: "אדריכלות שמספרת סיפור", Level: 1},
			Visible: true, Editable: true, Order: 1,
		},
		{
			ID:      "hero-subtitle",
			Type:    models.BlockText,
			Content: models.TextContent{Text: "סטודיו לאדריכלות ועיצוב פנים"},
			Visible: true, Editable: true, Order: 2,
		},
		{
			ID:      "hero-image",
			Type:    models.BlockImage,
			Content: models.ImageContent{URL: "https://example.com/hero.jpg"},
			Visible: false, Editable: true, Order: 3,
		},
	}
}

func TestFind(t *testing.T) {
	blocks := testBlocks()

	i, ok := Find(blocks, "hero-subtitle")

	require.True(t, ok)
	assert.Equal(t, 1, i)
}

func TestFind_NotFound(t *testing.T) {
	i, ok := Find(testBlocks(), "no-such-block")

	assert.False(t, ok)
	assert.Equal(t, -1, i)
}

func TestUpdateContent(t *testing.T) {
	blocks := testBlocks()

	updated, err := UpdateContent(blocks, "hero-title", models.HeadingContent{Text: "כותרת חדשה", Level: 1})

	require.NoError(t, err)
	assert.Equal(t, models.HeadingContent{Text: "כותרת חדשה", Level: 1}, updated[0].Content)
	// the input slice stays untouched
	assert.Equal(t, models.HeadingContent{Text: "אדריכלות שמספרת סיפור", Level: 1}, blocks[0].Content)
}

func TestUpdateContent_UnknownBlock(t *testing.T) {
	_, err := UpdateContent(testBlocks(), "no-such-block", models.TextContent{Text: "x"})

	assert.ErrorIs(t, err, ErrBlockNotFound)
}

func TestToggleVisibility_RoundTrip(t *testing.T) {
	blocks := testBlocks()

	once, err := ToggleVisibility(blocks, "hero-title")
	require.NoError(t, err)
	assert.False(t, once[0].Visible)

	twice, err := ToggleVisibility(once, "hero-title")
	require.NoError(t, err)
	assert.True(t, twice[0].Visible, "toggling twice should restore the original value")
}

func TestToggleVisibility_UnknownBlock(t *testing.T) {
	_, err := ToggleVisibility(testBlocks(), "no-such-block")

	assert.ErrorIs(t, err, ErrBlockNotFound)
}

func TestDuplicate(t *testing.T) {
	blocks := testBlocks()

	updated, clone, err := Duplicate(blocks, "hero-title")

	require.NoError(t, err)
	require.Len(t, updated, 4)
	assert.True(t, strings.HasPrefix(clone.ID, "hero-title-copy-"), "clone id %q should carry the original id as prefix", clone.ID)
	assert.Equal(t, 4, clone.Order, "clone should land after the highest existing order")
	assert.Equal(t, blocks[0].Content, clone.Content)
	assert.Equal(t, clone, updated[3])
}

func TestDuplicate_TwiceYieldsUniqueIDs(t *testing.T) {
	blocks := testBlocks()

	once, first, err := Duplicate(blocks, "hero-title")
	require.NoError(t, err)

	_, second, err := Duplicate(once, "hero-title")
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Greater(t, second.Order, first.Order)
}

func TestDuplicate_UnknownBlock(t *testing.T) {
	_, _, err := Duplicate(testBlocks(), "no-such-block")

	assert.ErrorIs(t, err, ErrBlockNotFound)
}

func TestDelete(t *testing.T) {
	blocks := testBlocks()

	updated, err := Delete(blocks, "hero-subtitle")

	require.NoError(t, err)
	require.Len(t, updated, 2)
	_, ok := Find(updated, "hero-subtitle")
	assert.False(t, ok)
	assert.Len(t, blocks, 3, "the input slice stays untouched")
}

func TestDelete_UnknownBlock(t *testing.T) {
	_, err := Delete(testBlocks(), "no-such-block")

	assert.ErrorIs(t, err, ErrBlockNotFound)
}

func TestMaxOrder(t *testing.T) {
	tests := []struct {
		name   string
		blocks []models.ContentBlock
		want   int
	}{
		{name: "empty slice", blocks: nil, want: 0},
		{name: "regular orders", blocks: testBlocks(), want: 3},
		{
			name: "orders with gaps",
			blocks: []models.ContentBlock{
				{ID: "a", Order: 7},
				{ID: "b", Order: 2},
			},
			want: 7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaxOrder(tt.blocks))
		})
	}
}

func TestSortByOrder_Stable(t *testing.T) {
	blocks := []models.ContentBlock{
		{ID: "c", Order: 2},
		{ID: "a", Order: 1},
		{ID: "b", Order: 2},
	}

	sorted := SortByOrder(blocks)

	require.Len(t, sorted, 3)
	assert.Equal(t, "a", sorted[0].ID)
	assert.Equal(t, "c", sorted[1].ID, "equal orders keep their array position")
	assert.Equal(t, "b", sorted[2].ID)
	assert.Equal(t, "c", blocks[0].ID, "the input slice stays unsorted")
}

func TestValidateBlocks(t *testing.T) {
	tests := []struct {
		name    string
		blocks  []models.ContentBlock
		wantErr error
	}{
		{name: "valid blocks", blocks: testBlocks(), wantErr: nil},
		{name: "empty slice", blocks: nil, wantErr: nil},
		{
			name: "empty id",
			blocks: []models.ContentBlock{
				{ID: "a"},
				{ID: ""},
			},
			wantErr: ErrEmptyBlockID,
		},
		{
			name: "duplicate id",
			blocks: []models.ContentBlock{
				{ID: "a"},
				{ID: "a"},
			},
			wantErr: ErrDuplicateBlockID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBlocks(tt.blocks)

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
