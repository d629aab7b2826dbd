package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/benharosh/studio-cms/internal/logger"
	"github.com/benharosh/studio-cms/models"
	"github.com/jackc/pgerrcode"
)

// projectRepository is the PostgreSQL-backed implementation of
// [ProjectRepository]. List-valued columns (materials, tags, gallery) are
// stored as jsonb arrays.
type projectRepository struct {
	*DB
	logger *logger.Logger
}

// NewProjectRepository constructs a [ProjectRepository] backed by the
// provided database connection and logger.
func NewProjectRepository(db *DB, logger *logger.Logger) ProjectRepository {
	return &projectRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateProject inserts a new project and returns it with store-assigned
// timestamps.
//
// Returns [ErrSlugAlreadyExists] when the slug is already taken.
func (p *projectRepository) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	log := logger.FromContext(ctx)

	materials, tags, gallery, err := encodeProjectLists(project)
	if err != nil {
		return models.Project{}, err
	}

	row := p.DB.QueryRowContext(ctx, createProject,
		project.ID,
		project.Title,
		project.Category,
		project.Location,
		project.Year,
		project.CoverImage,
		project.Description,
		materials,
		tags,
		gallery,
		project.Published,
		project.Slug,
	)

	scanErr := row.Scan(&project.CreatedAt, &project.UpdatedAt)
	if scanErr != nil {
		if postgresErrorCode(scanErr) == pgerrcode.UniqueViolation {
			return models.Project{}, fmt.Errorf("%w: %q", ErrSlugAlreadyExists, project.Slug)
		}
		log.Err(scanErr).
			Str("func", "projectRepository.CreateProject").
			Str("slug", project.Slug).
			Msg("failed to insert project")
		return models.Project{}, fmt.Errorf("%w: %w", ErrExecutingStatement, scanErr)
	}

	return project, nil
}

// GetProjectBySlug retrieves a single project by its URL slug.
//
// Returns [ErrProjectNotFound] when no row matches.
func (p *projectRepository) GetProjectBySlug(ctx context.Context, slug string) (models.Project, error) {
	log := logger.FromContext(ctx)

	row := p.DB.QueryRowContext(ctx, getProjectBySlug, slug)

	project, scanErr := scanProject(row)
	if errors.Is(scanErr, sql.ErrNoRows) {
		return models.Project{}, fmt.Errorf("%w: %q", ErrProjectNotFound, slug)
	}
	if scanErr != nil {
		log.Err(scanErr).
			Str("func", "projectRepository.GetProjectBySlug").
			Str("slug", slug).
			Msg("failed to scan project row")
		return models.Project{}, scanErr
	}

	return project, nil
}

// ListProjects retrieves projects matching the filter, newest first.
func (p *projectRepository) ListProjects(ctx context.Context, filter models.ProjectFilter) ([]models.Project, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListProjectsQuery(filter)
	if err != nil {
		log.Err(err).
			Str("func", "projectRepository.ListProjects").
			Msg("failed to create query")
		return nil, err
	}

	rows, queryErr := p.DB.QueryContext(ctx, query, args...)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "projectRepository.ListProjects").
			Msg("failed to execute query for listing projects")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	projects := make([]models.Project, 0, 20)

	for rows.Next() {
		project, scanErr := scanProject(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "projectRepository.ListProjects").
				Msg("failed to scan project row")
			return nil, scanErr
		}
		projects = append(projects, project)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "projectRepository.ListProjects").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return projects, nil
}

// UpdateProject overwrites the full project row.
//
// Returns [ErrProjectNotFound] when the id matches no row and
// [ErrSlugAlreadyExists] when the new slug collides with another project.
func (p *projectRepository) UpdateProject(ctx context.Context, project models.Project) error {
	log := logger.FromContext(ctx)

	materials, tags, gallery, err := encodeProjectLists(project)
	if err != nil {
		return err
	}

	query, args, err := buildUpdateProjectQuery(project, materials, tags, gallery)
	if err != nil {
		log.Err(err).
			Str("func", "projectRepository.UpdateProject").
			Str("project_id", project.ID).
			Msg("failed to create query")
		return err
	}

	result, execErr := p.DB.ExecContext(ctx, query, args...)
	if execErr != nil {
		if postgresErrorCode(execErr) == pgerrcode.UniqueViolation {
			return fmt.Errorf("%w: %q", ErrSlugAlreadyExists, project.Slug)
		}
		log.Err(execErr).
			Str("func", "projectRepository.UpdateProject").
			Str("project_id", project.ID).
			Msg("failed to execute project update")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
	}

	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return fmt.Errorf("%w: %q", ErrProjectNotFound, project.ID)
	}

	return nil
}

// DeleteProject removes a project by id.
//
// Returns [ErrProjectNotFound] when the id matches no row.
func (p *projectRepository) DeleteProject(ctx context.Context, projectID string) error {
	log := logger.FromContext(ctx)

	result, execErr := p.DB.ExecContext(ctx, deleteProject, projectID)
	if execErr != nil {
		log.Err(execErr).
			Str("func", "projectRepository.DeleteProject").
			Str("project_id", projectID).
			Msg("failed to execute project delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
	}

	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return fmt.Errorf("%w: %q", ErrProjectNotFound, projectID)
	}

	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (models.Project, error) {
	var project models.Project
	var materials, tags, gallery []byte

	scanErr := row.Scan(
		&project.ID,
		&project.Title,
		&project.Category,
		&project.Location,
		&project.Year,
		&project.CoverImage,
		&project.Description,
		&materials,
		&tags,
		&gallery,
		&project.Published,
		&project.Slug,
		&project.CreatedAt,
		&project.UpdatedAt,
	)
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.Project{}, scanErr
		}
		return models.Project{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	for raw, dest := range map[*[]byte]*[]string{
		&materials: &project.Materials,
		&tags:      &project.Tags,
		&gallery:   &project.Gallery,
	} {
		if len(*raw) == 0 {
			continue
		}
		if err := json.Unmarshal(*raw, dest); err != nil {
			return models.Project{}, fmt.Errorf("%w: %w", ErrDecodingDocument, err)
		}
	}

	return project, nil
}

func encodeProjectLists(project models.Project) (materials, tags, gallery []byte, err error) {
	for src, dest := range map[*[]string]*[]byte{
		&project.Materials: &materials,
		&project.Tags:      &tags,
		&project.Gallery:   &gallery,
	} {
		value := *src
		if value == nil {
			value = []string{}
		}
		if *dest, err = json.Marshal(value); err != nil {
			return nil, nil, nil, fmt.Errorf("%w: %w", ErrEncodingDocument, err)
		}
	}

	return materials, tags, gallery, nil
}
