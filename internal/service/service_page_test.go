// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/benharosh/studio-cms/internal/content"
	"github.com/benharosh/studio-cms/internal/logger"
	"github.com/benharosh/studio-cms/internal/store"
	"github.com/benharosh/studio-cms/internal/view"
	"github.com/benharosh/studio-cms/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: store.PageRepository
// ─────────────────────────────────────────────

type mockPageRepository struct {
	fetchPageFn func(ctx context.Context, pageID string) (models.PageDocument, error)
	savePageFn  func(ctx context.Context, pageID string, blocks []models.ContentBlock) error
}

func (m *mockPageRepository) FetchPage(ctx context.Context, pageID string) (models.PageDocument, error) {
	if m.fetchPageFn != nil {
		return m.fetchPageFn(ctx, pageID)
	}
	return models.PageDocument{}, nil
}

func (m *mockPageRepository) SavePage(ctx context.Context, pageID string, blocks []models.ContentBlock) error {
	if m.savePageFn != nil {
		return m.savePageFn(ctx, pageID, blocks)
	}
	return nil
}

// inMemoryPageRepository backs editor-cycle tests with a real document so
// that consecutive operations observe each other's writes.
type inMemoryPageRepository struct {
	docs map[string][]models.ContentBlock
}

func newInMemoryPageRepository() *inMemoryPageRepository {
	return &inMemoryPageRepository{docs: make(map[string][]models.ContentBlock)}
}

func (m *inMemoryPageRepository) FetchPage(_ context.Context, pageID string) (models.PageDocument, error) {
	blocks, ok := m.docs[pageID]
	if !ok {
		return models.PageDocument{}, store.ErrPageNotFound
	}
	return models.PageDocument{PageID: pageID, ContentBlocks: blocks}, nil
}

func (m *inMemoryPageRepository) SavePage(_ context.Context, pageID string, blocks []models.ContentBlock) error {
	m.docs[pageID] = blocks
	return nil
}

func newTestPageService(repo store.PageRepository) PageService {
	return NewPageService(repo, logger.Nop())
}

var errStorage = errors.New("storage error")

func testBlocks() []models.ContentBlock {
	return []models.ContentBlock{
		{ID: "hero-title", Type: models.BlockHeading, Content: models.HeadingContent{Text: "שלום", Level: 1}, Visible: true, Editable: true, Order: 1},
		{ID: "hero-subtitle", Type: models.BlockText, Content: models.TextContent{Text: "תת כותרת"}, Visible: true, Editable: true, Order: 2},
		{ID: "hero-image", Type: models.BlockImage, Content: models.ImageContent{URL: "https://cdn.example.com/a.jpg"}, Visible: false, Editable: true, Order: 3},
	}
}

// ─────────────────────────────────────────────
// GetPage
// ─────────────────────────────────────────────

func TestPageService_GetPage_ReturnsStoredDocument(t *testing.T) {
	stored := testBlocks()
	repo := &mockPageRepository{
		fetchPageFn: func(_ context.Context, pageID string) (models.PageDocument, error) {
			assert.Equal(t, models.PageHome, pageID)
			return models.PageDocument{PageID: pageID, ContentBlocks: stored}, nil
		},
	}
	svc := newTestPageService(repo)

	doc, err := svc.GetPage(context.Background(), models.PageHome)

	require.NoError(t, err)
	assert.Equal(t, stored, doc.ContentBlocks)
}

func TestPageService_GetPage_SeedsMissingPage(t *testing.T) {
	var saved []models.ContentBlock
	repo := &mockPageRepository{
		fetchPageFn: func(_ context.Context, _ string) (models.PageDocument, error) {
			return models.PageDocument{}, store.ErrPageNotFound
		},
		savePageFn: func(_ context.Context, pageID string, blocks []models.ContentBlock) error {
			assert.Equal(t, models.PageHome, pageID)
			saved = blocks
			return nil
		},
	}
	svc := newTestPageService(repo)

	doc, err := svc.GetPage(context.Background(), models.PageHome)

	require.NoError(t, err)
	assert.Equal(t, content.DefaultBlocks(models.PageHome), doc.ContentBlocks)
	assert.Equal(t, doc.ContentBlocks, saved, "seeded defaults must be persisted")
}

func TestPageService_GetPage_UnknownPageNotPersisted(t *testing.T) {
	saveCalls := 0
	repo := &mockPageRepository{
		fetchPageFn: func(_ context.Context, _ string) (models.PageDocument, error) {
			return models.PageDocument{}, store.ErrPageNotFound
		},
		savePageFn: func(_ context.Context, _ string, _ []models.ContentBlock) error {
			saveCalls++
			return nil
		},
	}
	svc := newTestPageService(repo)

	doc, err := svc.GetPage(context.Background(), "no-such-page")

	require.NoError(t, err)
	assert.Empty(t, doc.ContentBlocks)
	assert.Zero(t, saveCalls, "a page without default content must not be seeded")
}

func TestPageService_GetPage_ContactPageUsesStoredKey(t *testing.T) {
	// The contact page is stored under its historical key.
	repo := newInMemoryPageRepository()
	svc := newTestPageService(repo)

	doc, err := svc.GetPage(context.Background(), models.PageContact)

	require.NoError(t, err)
	assert.Equal(t, "contect", doc.PageID)
	assert.NotEmpty(t, doc.ContentBlocks)
	_, seeded := repo.docs["contect"]
	assert.True(t, seeded)
}

func TestPageService_GetPage_EmptyPageID(t *testing.T) {
	svc := newTestPageService(&mockPageRepository{})

	_, err := svc.GetPage(context.Background(), "")

	assert.ErrorIs(t, err, ErrValidationEmptyPageID)
}

func TestPageService_GetPage_StorageError(t *testing.T) {
	repo := &mockPageRepository{
		fetchPageFn: func(_ context.Context, _ string) (models.PageDocument, error) {
			return models.PageDocument{}, errStorage
		},
	}
	svc := newTestPageService(repo)

	_, err := svc.GetPage(context.Background(), models.PageHome)

	require.Error(t, err)
	assert.ErrorIs(t, err, errStorage)
}

// ─────────────────────────────────────────────
// SavePage
// ─────────────────────────────────────────────

func TestPageService_SavePage_ReplacesWholeArray(t *testing.T) {
	repo := newInMemoryPageRepository()
	repo.docs[models.PageAbout] = testBlocks()
	svc := newTestPageService(repo)

	replacement := []models.ContentBlock{
		{ID: "about-title", Type: models.BlockHeading, Content: models.HeadingContent{Text: "אודות", Level: 1}, Visible: true, Order: 1},
	}

	doc, err := svc.SavePage(context.Background(), models.PageAbout, replacement)

	require.NoError(t, err)
	assert.Equal(t, replacement, doc.ContentBlocks)
	assert.Equal(t, replacement, repo.docs[models.PageAbout], "save must replace, not merge")
}

func TestPageService_SavePage_LastWriteWins(t *testing.T) {
	repo := newInMemoryPageRepository()
	svc := newTestPageService(repo)

	first := []models.ContentBlock{{ID: "a", Type: models.BlockText, Visible: true, Order: 1}}
	second := []models.ContentBlock{{ID: "b", Type: models.BlockText, Visible: true, Order: 1}}

	_, err := svc.SavePage(context.Background(), models.PageHome, first)
	require.NoError(t, err)
	_, err = svc.SavePage(context.Background(), models.PageHome, second)
	require.NoError(t, err)

	// no merge, no conflict: the later array is all that remains
	assert.Equal(t, second, repo.docs[models.PageHome])
}

func TestPageService_SavePage_RejectsDuplicateIDs(t *testing.T) {
	svc := newTestPageService(&mockPageRepository{})

	blocks := []models.ContentBlock{
		{ID: "dup", Type: models.BlockText, Visible: true},
		{ID: "dup", Type: models.BlockText, Visible: true},
	}

	_, err := svc.SavePage(context.Background(), models.PageHome, blocks)

	assert.ErrorIs(t, err, ErrValidationBadBlockArray)
}

func TestPageService_SavePage_RejectsEmptyBlockID(t *testing.T) {
	svc := newTestPageService(&mockPageRepository{})

	blocks := []models.ContentBlock{{ID: "", Type: models.BlockText, Visible: true}}

	_, err := svc.SavePage(context.Background(), models.PageHome, blocks)

	assert.ErrorIs(t, err, ErrValidationBadBlockArray)
}

// ─────────────────────────────────────────────
// ResetPage
// ─────────────────────────────────────────────

func TestPageService_ResetPage_PersistsDefaultsImmediately(t *testing.T) {
	repo := newInMemoryPageRepository()
	repo.docs[models.PageHome] = []models.ContentBlock{
		{ID: "custom", Type: models.BlockText, Content: models.TextContent{Text: "edited"}, Visible: true, Order: 1},
	}
	svc := newTestPageService(repo)

	doc, err := svc.ResetPage(context.Background(), models.PageHome)

	require.NoError(t, err)
	defaults := content.DefaultBlocks(models.PageHome)
	assert.Equal(t, defaults, doc.ContentBlocks)
	assert.Equal(t, defaults, repo.docs[models.PageHome], "reset must persist without a separate save step")
}

func TestPageService_ResetPage_ThenEditStartsFromDefaults(t *testing.T) {
	repo := newInMemoryPageRepository()
	repo.docs[models.PageAbout] = []models.ContentBlock{
		{ID: "stray", Type: models.BlockText, Visible: true, Order: 1},
	}
	svc := newTestPageService(repo)

	_, err := svc.ResetPage(context.Background(), models.PageAbout)
	require.NoError(t, err)

	_, err = svc.ToggleBlockVisibility(context.Background(), models.PageAbout, "stray")
	assert.ErrorIs(t, err, content.ErrBlockNotFound, "edits after reset run against the default catalog")
}

// ─────────────────────────────────────────────
// Block operations
// ─────────────────────────────────────────────

func TestPageService_UpdateBlockContent(t *testing.T) {
	repo := newInMemoryPageRepository()
	repo.docs[models.PageHome] = testBlocks()
	svc := newTestPageService(repo)

	doc, err := svc.UpdateBlockContent(context.Background(), models.PageHome, "hero-title", models.HeadingContent{Text: "חדש", Level: 1})

	require.NoError(t, err)
	heading, ok := doc.ContentBlocks[0].Content.(models.HeadingContent)
	require.True(t, ok)
	assert.Equal(t, "חדש", heading.Text)
	// the other blocks are untouched
	assert.Len(t, doc.ContentBlocks, 3)
}

func TestPageService_UpdateBlockContent_NilContent(t *testing.T) {
	svc := newTestPageService(&mockPageRepository{})

	_, err := svc.UpdateBlockContent(context.Background(), models.PageHome, "hero-title", nil)

	assert.ErrorIs(t, err, ErrValidationNoContent)
}

func TestPageService_UpdateBlockContent_UnknownBlock(t *testing.T) {
	repo := newInMemoryPageRepository()
	repo.docs[models.PageHome] = testBlocks()
	svc := newTestPageService(repo)

	_, err := svc.UpdateBlockContent(context.Background(), models.PageHome, "missing", models.TextContent{Text: "x"})

	assert.ErrorIs(t, err, content.ErrBlockNotFound)
	// failed operation must not overwrite the stored document
	assert.Equal(t, testBlocks(), repo.docs[models.PageHome])
}

func TestPageService_ToggleBlockVisibility_RoundTrip(t *testing.T) {
	repo := newInMemoryPageRepository()
	repo.docs[models.PageHome] = testBlocks()
	svc := newTestPageService(repo)

	doc, err := svc.ToggleBlockVisibility(context.Background(), models.PageHome, "hero-title")
	require.NoError(t, err)
	assert.False(t, doc.ContentBlocks[0].Visible)

	doc, err = svc.ToggleBlockVisibility(context.Background(), models.PageHome, "hero-title")
	require.NoError(t, err)
	assert.True(t, doc.ContentBlocks[0].Visible, "toggling twice restores the original value")
}

func TestPageService_DuplicateBlock(t *testing.T) {
	repo := newInMemoryPageRepository()
	repo.docs[models.PageHome] = testBlocks()
	svc := newTestPageService(repo)

	doc, err := svc.DuplicateBlock(context.Background(), models.PageHome, "hero-title")

	require.NoError(t, err)
	require.Len(t, doc.ContentBlocks, 4)

	clone := doc.ContentBlocks[3]
	assert.True(t, strings.HasPrefix(clone.ID, "hero-title-copy-"))
	assert.NotEqual(t, "hero-title", clone.ID)
	assert.Equal(t, 4, clone.Order, "clone order is max(orders)+1, landing at the end")

	original, ok := doc.ContentBlocks[0].Content.(models.HeadingContent)
	require.True(t, ok)
	cloned, ok := clone.Content.(models.HeadingContent)
	require.True(t, ok)
	assert.Equal(t, original, cloned)
}

func TestPageService_DuplicateBlock_TwiceYieldsUniqueIDs(t *testing.T) {
	repo := newInMemoryPageRepository()
	repo.docs[models.PageHome] = testBlocks()
	svc := newTestPageService(repo)

	doc1, err := svc.DuplicateBlock(context.Background(), models.PageHome, "hero-title")
	require.NoError(t, err)
	doc2, err := svc.DuplicateBlock(context.Background(), models.PageHome, "hero-title")
	require.NoError(t, err)

	firstClone := doc1.ContentBlocks[len(doc1.ContentBlocks)-1]
	secondClone := doc2.ContentBlocks[len(doc2.ContentBlocks)-1]
	assert.NotEqual(t, firstClone.ID, secondClone.ID)
	assert.Greater(t, secondClone.Order, firstClone.Order)
}

func TestPageService_DeleteBlock(t *testing.T) {
	repo := newInMemoryPageRepository()
	repo.docs[models.PageHome] = testBlocks()
	svc := newTestPageService(repo)

	doc, err := svc.DeleteBlock(context.Background(), models.PageHome, "hero-subtitle")

	require.NoError(t, err)
	require.Len(t, doc.ContentBlocks, 2)
	_, found := content.Find(doc.ContentBlocks, "hero-subtitle")
	assert.False(t, found)
}

func TestPageService_BlockOps_EmptyBlockID(t *testing.T) {
	svc := newTestPageService(&mockPageRepository{})

	_, err := svc.ToggleBlockVisibility(context.Background(), models.PageHome, "")
	assert.ErrorIs(t, err, ErrValidationEmptyBlockID)

	_, err = svc.DeleteBlock(context.Background(), models.PageHome, "")
	assert.ErrorIs(t, err, ErrValidationEmptyBlockID)

	_, err = svc.DuplicateBlock(context.Background(), models.PageHome, "")
	assert.ErrorIs(t, err, ErrValidationEmptyBlockID)
}

func TestPageService_BlockOps_SaveError(t *testing.T) {
	repo := &mockPageRepository{
		fetchPageFn: func(_ context.Context, pageID string) (models.PageDocument, error) {
			return models.PageDocument{PageID: pageID, ContentBlocks: testBlocks()}, nil
		},
		savePageFn: func(_ context.Context, _ string, _ []models.ContentBlock) error {
			return errStorage
		},
	}
	svc := newTestPageService(repo)

	_, err := svc.DeleteBlock(context.Background(), models.PageHome, "hero-title")

	require.Error(t, err)
	assert.ErrorIs(t, err, errStorage)
}

// ─────────────────────────────────────────────
// GetPageView
// ─────────────────────────────────────────────

func TestPageService_GetPageView_SkipsHiddenBlocks(t *testing.T) {
	repo := newInMemoryPageRepository()
	svc := newTestPageService(repo)

	// seed with defaults, then hide the hero title
	_, err := svc.GetPage(context.Background(), models.PageHome)
	require.NoError(t, err)
	_, err = svc.ToggleBlockVisibility(context.Background(), models.PageHome, "hero-title")
	require.NoError(t, err)

	v, err := svc.GetPageView(context.Background(), models.PageHome)
	require.NoError(t, err)

	home, ok := v.(view.HomeView)
	require.True(t, ok)
	assert.Empty(t, home.HeroTitle, "a hidden block renders as its zero value")
	assert.NotEmpty(t, home.HeroSubtitle)
}

func TestPageService_GetPageView_UnknownPage(t *testing.T) {
	svc := newTestPageService(newInMemoryPageRepository())

	_, err := svc.GetPageView(context.Background(), "no-such-page")

	assert.ErrorIs(t, err, view.ErrUnknownPage)
}
