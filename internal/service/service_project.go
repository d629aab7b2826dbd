package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/benharosh/studio-cms/internal/logger"
	"github.com/benharosh/studio-cms/internal/store"
	"github.com/benharosh/studio-cms/models"
	"github.com/google/uuid"
)

type projectService struct {
	projectRepository store.ProjectRepository

	logger *logger.Logger
}

// NewProjectService constructs a ProjectService backed by the given repository.
func NewProjectService(projectRepository store.ProjectRepository, logger *logger.Logger) ProjectService {
	return &projectService{
		projectRepository: projectRepository,
		logger:            logger,
	}
}

// CreateProject persists a new portfolio project.
//
// The URL slug is derived from the title when none is supplied. Titles that
// produce no URL-safe characters (e.g. Hebrew-only titles) fall back to a
// generated identifier.
func (p *projectService) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	log := logger.FromContext(ctx)

	if project.Title == "" {
		return models.Project{}, ErrValidationEmptyTitle
	}
	if project.Slug == "" {
		project.Slug = slugify(project.Title)
	}
	if project.ID == "" {
		project.ID = uuid.NewString()
	}

	created, err := p.projectRepository.CreateProject(ctx, project)
	if err != nil {
		log.Err(err).Str("slug", project.Slug).Msg("project creation failed")
		return models.Project{}, fmt.Errorf("project creation failed: %w", err)
	}

	return created, nil
}

func (p *projectService) GetProjectBySlug(ctx context.Context, slug string) (models.Project, error) {
	if slug == "" {
		return models.Project{}, ErrValidationEmptySlug
	}

	project, err := p.projectRepository.GetProjectBySlug(ctx, slug)
	if err != nil {
		return models.Project{}, fmt.Errorf("project lookup failed: %w", err)
	}

	return project, nil
}

func (p *projectService) ListProjects(ctx context.Context, filter models.ProjectFilter) ([]models.Project, error) {
	projects, err := p.projectRepository.ListProjects(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("project listing failed: %w", err)
	}

	return projects, nil
}

func (p *projectService) UpdateProject(ctx context.Context, project models.Project) error {
	log := logger.FromContext(ctx)

	if project.ID == "" {
		return ErrValidationEmptyID
	}
	if project.Title == "" {
		return ErrValidationEmptyTitle
	}

	if err := p.projectRepository.UpdateProject(ctx, project); err != nil {
		log.Err(err).Str("projectID", project.ID).Msg("project update failed")
		return fmt.Errorf("project update failed: %w", err)
	}

	return nil
}

func (p *projectService) DeleteProject(ctx context.Context, projectID string) error {
	log := logger.FromContext(ctx)

	if projectID == "" {
		return ErrValidationEmptyID
	}

	if err := p.projectRepository.DeleteProject(ctx, projectID); err != nil {
		log.Err(err).Str("projectID", projectID).Msg("project deletion failed")
		return fmt.Errorf("project deletion failed: %w", err)
	}

	return nil
}

// slugify lowers the title and collapses every run of non-alphanumeric
// characters into a single hyphen. An empty result (a title with no ASCII
// letters or digits) yields a short random identifier instead.
func slugify(title string) string {
	var b strings.Builder
	lastHyphen := true

	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		return "project-" + uuid.NewString()[:8]
	}

	return slug
}
