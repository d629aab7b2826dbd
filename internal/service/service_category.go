package service

import (
	"context"
	"fmt"

	"github.com/benharosh/studio-cms/internal/logger"
	"github.com/benharosh/studio-cms/internal/store"
	"github.com/benharosh/studio-cms/models"
	"github.com/google/uuid"
)

type categoryService struct {
	categoryRepository store.CategoryRepository

	logger *logger.Logger
}

// NewCategoryService constructs a CategoryService backed by the given repository.
func NewCategoryService(categoryRepository store.CategoryRepository, logger *logger.Logger) CategoryService {
	return &categoryService{
		categoryRepository: categoryRepository,
		logger:             logger,
	}
}

func (c *categoryService) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	log := logger.FromContext(ctx)

	if category.Name == "" {
		return models.Category{}, ErrValidationEmptyName
	}
	if category.ID == "" {
		category.ID = uuid.NewString()
	}

	created, err := c.categoryRepository.CreateCategory(ctx, category)
	if err != nil {
		log.Err(err).Str("name", category.Name).Msg("category creation failed")
		return models.Category{}, fmt.Errorf("category creation failed: %w", err)
	}

	return created, nil
}

func (c *categoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := c.categoryRepository.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("category listing failed: %w", err)
	}

	return categories, nil
}

func (c *categoryService) UpdateCategory(ctx context.Context, category models.Category) error {
	log := logger.FromContext(ctx)

	if category.ID == "" {
		return ErrValidationEmptyID
	}
	if category.Name == "" {
		return ErrValidationEmptyName
	}

	if err := c.categoryRepository.UpdateCategory(ctx, category); err != nil {
		log.Err(err).Str("categoryID", category.ID).Msg("category update failed")
		return fmt.Errorf("category update failed: %w", err)
	}

	return nil
}

func (c *categoryService) DeleteCategory(ctx context.Context, categoryID string) error {
	log := logger.FromContext(ctx)

	if categoryID == "" {
		return ErrValidationEmptyID
	}

	if err := c.categoryRepository.DeleteCategory(ctx, categoryID); err != nil {
		log.Err(err).Str("categoryID", categoryID).Msg("category deletion failed")
		return fmt.Errorf("category deletion failed: %w", err)
	}

	return nil
}
