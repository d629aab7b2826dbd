package service

import (
	"context"
	"fmt"

	"github.com/benharosh/studio-cms/internal/adapter"
	"github.com/benharosh/studio-cms/internal/logger"
	"github.com/benharosh/studio-cms/internal/store"
	"github.com/benharosh/studio-cms/models"
	"github.com/google/uuid"
)

type galleryService struct {
	galleryRepository store.GalleryRepository

	// prober checks new image URLs before they are stored. Nil disables
	// the check.
	prober adapter.MediaProber

	logger *logger.Logger
}

// NewGalleryService constructs a GalleryService backed by the given
// repository. prober may be nil, in which case image URLs are stored
// without probing.
func NewGalleryService(galleryRepository store.GalleryRepository, prober adapter.MediaProber, logger *logger.Logger) GalleryService {
	return &galleryService{
		galleryRepository: galleryRepository,
		prober:            prober,
		logger:            logger,
	}
}

// AddImage stores a reference to an externally hosted image.
//
// When a prober is configured, the URL is checked first and the reported
// content type and size are recorded on the reference. An unreachable URL or
// a non-image response rejects the whole operation.
func (g *galleryService) AddImage(ctx context.Context, image models.GalleryImage) (models.GalleryImage, error) {
	log := logger.FromContext(ctx)

	if image.URL == "" {
		return models.GalleryImage{}, ErrValidationEmptyImageURL
	}

	if g.prober != nil {
		probed, err := g.prober.Probe(ctx, image.URL)
		if err != nil {
			log.Err(err).Str("url", image.URL).Msg("image url probe failed")
			return models.GalleryImage{}, fmt.Errorf("image url probe failed: %w", err)
		}

		image.ContentType = probed.ContentType
		image.Size = probed.Size
	}

	if image.ID == "" {
		image.ID = uuid.NewString()
	}

	created, err := g.galleryRepository.CreateImage(ctx, image)
	if err != nil {
		log.Err(err).Str("url", image.URL).Msg("gallery image creation failed")
		return models.GalleryImage{}, fmt.Errorf("gallery image creation failed: %w", err)
	}

	return created, nil
}

func (g *galleryService) ListImages(ctx context.Context) ([]models.GalleryImage, error) {
	images, err := g.galleryRepository.ListImages(ctx)
	if err != nil {
		return nil, fmt.Errorf("gallery listing failed: %w", err)
	}

	return images, nil
}

func (g *galleryService) DeleteImage(ctx context.Context, imageID string) error {
	log := logger.FromContext(ctx)

	if imageID == "" {
		return ErrValidationEmptyID
	}

	if err := g.galleryRepository.DeleteImage(ctx, imageID); err != nil {
		log.Err(err).Str("imageID", imageID).Msg("gallery image deletion failed")
		return fmt.Errorf("gallery image deletion failed: %w", err)
	}

	return nil
}
