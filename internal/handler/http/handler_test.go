package http

import (
	"context"
	"fmt"
	"time"

	"github.com/benharosh/studio-cms/internal/config"
	"github.com/benharosh/studio-cms/internal/logger"
	"github.com/benharosh/studio-cms/internal/service"
	"github.com/benharosh/studio-cms/models"
)

// testAppConfig is the auth configuration shared by handler tests.
func testAppConfig() config.App {
	return config.App{
		AdminLogin:    "admin",
		AdminPassword: "studio2024",
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "test-issuer",
		TokenDuration: time.Hour,
	}
}

// newTestHandler wires a Handler around the given service mocks with a real
// AuthService, so that token issuing and the auth middleware are exercised
// end to end.
func newTestHandler(services *service.Services) (*Handler, error) {
	authService, err := service.NewAuthService(testAppConfig(), logger.Nop())
	if err != nil {
		return nil, fmt.Errorf("error creating test auth service: %w", err)
	}
	services.AuthService = authService

	return NewHandler(services, logger.Nop()), nil
}

// adminToken logs the built-in admin in and returns a valid bearer token.
func adminToken(h *Handler) (string, error) {
	token, err := h.services.AuthService.Login(context.Background(), models.Credentials{
		Login:    "admin",
		Password: "studio2024",
	})
	if err != nil {
		return "", err
	}
	return token.SignedString, nil
}

// mockPageService implements service.PageService with settable behaviour.
type mockPageService struct {
	getPageFn     func(ctx context.Context, pageID string) (models.PageDocument, error)
	getPageViewFn func(ctx context.Context, pageID string) (any, error)
	savePageFn    func(ctx context.Context, pageID string, blocks []models.ContentBlock) (models.PageDocument, error)
	resetPageFn   func(ctx context.Context, pageID string) (models.PageDocument, error)
	updateFn      func(ctx context.Context, pageID, blockID string, content models.BlockContent) (models.PageDocument, error)
	toggleFn      func(ctx context.Context, pageID, blockID string) (models.PageDocument, error)
	duplicateFn   func(ctx context.Context, pageID, blockID string) (models.PageDocument, error)
	deleteFn      func(ctx context.Context, pageID, blockID string) (models.PageDocument, error)
}

func (m *mockPageService) GetPage(ctx context.Context, pageID string) (models.PageDocument, error) {
	return m.getPageFn(ctx, pageID)
}

func (m *mockPageService) GetPageView(ctx context.Context, pageID string) (any, error) {
	return m.getPageViewFn(ctx, pageID)
}

func (m *mockPageService) SavePage(ctx context.Context, pageID string, blocks []models.ContentBlock) (models.PageDocument, error) {
	return m.savePageFn(ctx, pageID, blocks)
}

func (m *mockPageService) ResetPage(ctx context.Context, pageID string) (models.PageDocument, error) {
	return m.resetPageFn(ctx, pageID)
}

func (m *mockPageService) UpdateBlockContent(ctx context.Context, pageID, blockID string, content models.BlockContent) (models.PageDocument, error) {
	return m.updateFn(ctx, pageID, blockID, content)
}

func (m *mockPageService) ToggleBlockVisibility(ctx context.Context, pageID, blockID string) (models.PageDocument, error) {
	return m.toggleFn(ctx, pageID, blockID)
}

func (m *mockPageService) DuplicateBlock(ctx context.Context, pageID, blockID string) (models.PageDocument, error) {
	return m.duplicateFn(ctx, pageID, blockID)
}

func (m *mockPageService) DeleteBlock(ctx context.Context, pageID, blockID string) (models.PageDocument, error) {
	return m.deleteFn(ctx, pageID, blockID)
}

// mockProjectService implements service.ProjectService.
type mockProjectService struct {
	createFn    func(ctx context.Context, project models.Project) (models.Project, error)
	getBySlugFn func(ctx context.Context, slug string) (models.Project, error)
	listFn      func(ctx context.Context, filter models.ProjectFilter) ([]models.Project, error)
	updateFn    func(ctx context.Context, project models.Project) error
	deleteFn    func(ctx context.Context, projectID string) error
}

func (m *mockProjectService) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	return m.createFn(ctx, project)
}

func (m *mockProjectService) GetProjectBySlug(ctx context.Context, slug string) (models.Project, error) {
	return m.getBySlugFn(ctx, slug)
}

func (m *mockProjectService) ListProjects(ctx context.Context, filter models.ProjectFilter) ([]models.Project, error) {
	return m.listFn(ctx, filter)
}

func (m *mockProjectService) UpdateProject(ctx context.Context, project models.Project) error {
	return m.updateFn(ctx, project)
}

func (m *mockProjectService) DeleteProject(ctx context.Context, projectID string) error {
	return m.deleteFn(ctx, projectID)
}

// mockContactService implements service.ContactService.
type mockContactService struct {
	submitFn func(ctx context.Context, message models.ContactMessage) (models.ContactMessage, error)
	listFn   func(ctx context.Context) ([]models.ContactMessage, error)
	deleteFn func(ctx context.Context, messageID string) error
	sweepFn  func(ctx context.Context) (int64, error)
}

func (m *mockContactService) SubmitMessage(ctx context.Context, message models.ContactMessage) (models.ContactMessage, error) {
	return m.submitFn(ctx, message)
}

func (m *mockContactService) ListMessages(ctx context.Context) ([]models.ContactMessage, error) {
	return m.listFn(ctx)
}

func (m *mockContactService) DeleteMessage(ctx context.Context, messageID string) error {
	return m.deleteFn(ctx, messageID)
}

func (m *mockContactService) SweepMessages(ctx context.Context) (int64, error) {
	return m.sweepFn(ctx)
}
