package store

import (
	"context"
	"fmt"

	"github.com/benharosh/studio-cms/internal/logger"
	"github.com/benharosh/studio-cms/models"
)

// galleryRepository is the PostgreSQL-backed implementation of
// [GalleryRepository]. Only the URL reference and probe metadata are stored;
// image bytes live in external storage.
type galleryRepository struct {
	*DB
	logger *logger.Logger
}

// NewGalleryRepository constructs a [GalleryRepository] backed by the
// provided database connection and logger.
func NewGalleryRepository(db *DB, logger *logger.Logger) GalleryRepository {
	return &galleryRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateImage inserts a new gallery reference and returns it with the
// store-assigned creation timestamp.
func (g *galleryRepository) CreateImage(ctx context.Context, image models.GalleryImage) (models.GalleryImage, error) {
	log := logger.FromContext(ctx)

	row := g.DB.QueryRowContext(ctx, createImage,
		image.ID,
		image.URL,
		image.ContentType,
		image.Size,
	)

	scanErr := row.Scan(&image.CreatedAt)
	if scanErr != nil {
		log.Err(scanErr).
			Str("func", "galleryRepository.CreateImage").
			Str("url", image.URL).
			Msg("failed to insert gallery image")
		return models.GalleryImage{}, fmt.Errorf("%w: %w", ErrExecutingStatement, scanErr)
	}

	return image, nil
}

// ListImages retrieves all gallery references, newest first.
func (g *galleryRepository) ListImages(ctx context.Context) ([]models.GalleryImage, error) {
	log := logger.FromContext(ctx)

	rows, queryErr := g.DB.QueryContext(ctx, listImages)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "galleryRepository.ListImages").
			Msg("failed to execute query for listing gallery images")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	images := make([]models.GalleryImage, 0, 20)

	for rows.Next() {
		var image models.GalleryImage

		scanErr := rows.Scan(
			&image.ID,
			&image.URL,
			&image.ContentType,
			&image.Size,
			&image.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "galleryRepository.ListImages").
				Msg("failed to scan gallery image row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		images = append(images, image)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "galleryRepository.ListImages").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return images, nil
}

// DeleteImage removes a gallery reference by id.
//
// Returns [ErrImageNotFound] when the id matches no row.
func (g *galleryRepository) DeleteImage(ctx context.Context, imageID string) error {
	log := logger.FromContext(ctx)

	result, execErr := g.DB.ExecContext(ctx, deleteImage, imageID)
	if execErr != nil {
		log.Err(execErr).
			Str("func", "galleryRepository.DeleteImage").
			Str("image_id", imageID).
			Msg("failed to execute gallery image delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
	}

	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return fmt.Errorf("%w: %q", ErrImageNotFound, imageID)
	}

	return nil
}
