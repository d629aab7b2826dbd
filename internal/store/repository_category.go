package store

import (
	"context"
	"fmt"

	"github.com/benharosh/studio-cms/internal/logger"
	"github.com/benharosh/studio-cms/models"
	"github.com/jackc/pgerrcode"
)

// categoryRepository is the PostgreSQL-backed implementation of
// [CategoryRepository].
type categoryRepository struct {
	*DB
	logger *logger.Logger
}

// NewCategoryRepository constructs a [CategoryRepository] backed by the
// provided database connection and logger.
func NewCategoryRepository(db *DB, logger *logger.Logger) CategoryRepository {
	return &categoryRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateCategory inserts a new category and returns it with the
// store-assigned creation timestamp.
//
// Returns [ErrCategoryAlreadyExists] when the name is already taken.
func (c *categoryRepository) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	log := logger.FromContext(ctx)

	row := c.DB.QueryRowContext(ctx, createCategory,
		category.ID,
		category.Name,
		category.Description,
		category.ImageCount,
	)

	scanErr := row.Scan(&category.CreatedAt)
	if scanErr != nil {
		if postgresErrorCode(scanErr) == pgerrcode.UniqueViolation {
			return models.Category{}, fmt.Errorf("%w: %q", ErrCategoryAlreadyExists, category.Name)
		}
		log.Err(scanErr).
			Str("func", "categoryRepository.CreateCategory").
			Str("name", category.Name).
			Msg("failed to insert category")
		return models.Category{}, fmt.Errorf("%w: %w", ErrExecutingStatement, scanErr)
	}

	return category, nil
}

// ListCategories retrieves all categories ordered by name.
func (c *categoryRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	log := logger.FromContext(ctx)

	rows, queryErr := c.DB.QueryContext(ctx, listCategories)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "categoryRepository.ListCategories").
			Msg("failed to execute query for listing categories")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	categories := make([]models.Category, 0, 10)

	for rows.Next() {
		var category models.Category

		scanErr := rows.Scan(
			&category.ID,
			&category.Name,
			&category.Description,
			&category.ImageCount,
			&category.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "categoryRepository.ListCategories").
				Msg("failed to scan category row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		categories = append(categories, category)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "categoryRepository.ListCategories").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return categories, nil
}

// UpdateCategory overwrites the full category row.
//
// Returns [ErrCategoryNotFound] when the id matches no row.
func (c *categoryRepository) UpdateCategory(ctx context.Context, category models.Category) error {
	log := logger.FromContext(ctx)

	result, execErr := c.DB.ExecContext(ctx, updateCategory,
		category.ID,
		category.Name,
		category.Description,
		category.ImageCount,
	)
	if execErr != nil {
		if postgresErrorCode(execErr) == pgerrcode.UniqueViolation {
			return fmt.Errorf("%w: %q", ErrCategoryAlreadyExists, category.Name)
		}
		log.Err(execErr).
			Str("func", "categoryRepository.UpdateCategory").
			Str("category_id", category.ID).
			Msg("failed to execute category update")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
	}

	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return fmt.Errorf("%w: %q", ErrCategoryNotFound, category.ID)
	}

	return nil
}

// DeleteCategory removes a category by id.
//
// Returns [ErrCategoryNotFound] when the id matches no row.
func (c *categoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	log := logger.FromContext(ctx)

	result, execErr := c.DB.ExecContext(ctx, deleteCategory, categoryID)
	if execErr != nil {
		log.Err(execErr).
			Str("func", "categoryRepository.DeleteCategory").
			Str("category_id", categoryID).
			Msg("failed to execute category delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
	}

	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return fmt.Errorf("%w: %q", ErrCategoryNotFound, categoryID)
	}

	return nil
}
