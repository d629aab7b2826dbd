package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/benharosh/studio-cms/internal/logger"
	"github.com/benharosh/studio-cms/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProjectRepo(t *testing.T) (*projectRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	testDB, mock, db := newTestDB(t)
	repo := &projectRepository{
		DB:     testDB,
		logger: logger.Nop(),
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestCreateProject_Success(t *testing.T) {
	repo, mock, db := newTestProjectRepo(t)
	defer db.Close()

	now := time.Now()
	project := models.Project{
		ID:        "p-1",
		Title:     "בית פרטי ברמת השרון",
		Category:  "מגורים",
		Slug:      "private-house-ramat-hasharon",
		Tags:      []string{"אבן", "חצר"},
		Published: true,
	}

	rows := sqlmock.
		NewRows([]string{"created_at", "updated_at"}).
		AddRow(now, now)

	mock.ExpectQuery("INSERT INTO projects").
		WithArgs(project.ID, project.Title, project.Category, project.Location, project.Year,
			project.CoverImage, project.Description, sqlmock.AnyArg(), sqlmock.AnyArg(),
			sqlmock.AnyArg(), project.Published, project.Slug).
		WillReturnRows(rows)

	created, err := repo.CreateProject(context.Background(), project)

	require.NoError(t, err)
	assert.Equal(t, project.Slug, created.Slug)
	assert.NotNil(t, created.CreatedAt)
}

func TestCreateProject_SlugTaken(t *testing.T) {
	repo, mock, db := newTestProjectRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO projects").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateProject(context.Background(), models.Project{ID: "p-1", Slug: "taken"})

	assert.ErrorIs(t, err, ErrSlugAlreadyExists)
}

func TestCreateProject_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestProjectRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO projects").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateProject(context.Background(), models.Project{ID: "p-1"})

	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestGetProjectBySlug_NotFound(t *testing.T) {
	repo, mock, db := newTestProjectRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, title, category").
		WithArgs("no-such-slug").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetProjectBySlug(context.Background(), "no-such-slug")

	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestDeleteProject_NotFound(t *testing.T) {
	repo, mock, db := newTestProjectRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM projects").
		WithArgs("p-404").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteProject(context.Background(), "p-404")

	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestDeleteProject_Success(t *testing.T) {
	repo, mock, db := newTestProjectRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM projects").
		WithArgs("p-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.DeleteProject(context.Background(), "p-1")

	assert.NoError(t, err)
}
