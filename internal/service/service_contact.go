package service

import (
	"context"
	"fmt"
	"time"

	"github.com/benharosh/studio-cms/internal/logger"
	"github.com/benharosh/studio-cms/internal/store"
	"github.com/benharosh/studio-cms/models"
	"github.com/google/uuid"
)

type contactService struct {
	messageRepository store.ContactMessageRepository

	// retention is how long submissions are kept before SweepMessages
	// removes them.
	retention time.Duration

	logger *logger.Logger
}

// NewContactService constructs a ContactService backed by the given
// repository with the given retention window.
func NewContactService(messageRepository store.ContactMessageRepository, retention time.Duration, logger *logger.Logger) ContactService {
	return &contactService{
		messageRepository: messageRepository,
		retention:         retention,
		logger:            logger,
	}
}

// SubmitMessage persists one public contact-form submission.
//
// A submission must carry a sender name, a message body, and at least one
// way to reach back (phone or email).
func (c *contactService) SubmitMessage(ctx context.Context, message models.ContactMessage) (models.ContactMessage, error) {
	log := logger.FromContext(ctx)

	if message.FullName == "" {
		return models.ContactMessage{}, ErrValidationEmptyName
	}
	if message.Message == "" {
		return models.ContactMessage{}, ErrValidationEmptyMessage
	}
	if message.Phone == "" && message.Email == "" {
		return models.ContactMessage{}, ErrValidationNoContactWay
	}

	// public submissions never carry an id
	if message.ID == "" {
		message.ID = uuid.NewString()
	}

	created, err := c.messageRepository.CreateMessage(ctx, message)
	if err != nil {
		log.Err(err).Msg("contact message creation failed")
		return models.ContactMessage{}, fmt.Errorf("contact message creation failed: %w", err)
	}

	return created, nil
}

func (c *contactService) ListMessages(ctx context.Context) ([]models.ContactMessage, error) {
	messages, err := c.messageRepository.ListMessages(ctx)
	if err != nil {
		return nil, fmt.Errorf("contact message listing failed: %w", err)
	}

	return messages, nil
}

func (c *contactService) DeleteMessage(ctx context.Context, messageID string) error {
	log := logger.FromContext(ctx)

	if messageID == "" {
		return ErrValidationEmptyID
	}

	if err := c.messageRepository.DeleteMessage(ctx, messageID); err != nil {
		log.Err(err).Str("messageID", messageID).Msg("contact message deletion failed")
		return fmt.Errorf("contact message deletion failed: %w", err)
	}

	return nil
}

// SweepMessages implements [ContactService]. A zero retention window
// disables the sweep.
func (c *contactService) SweepMessages(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	if c.retention <= 0 {
		return 0, nil
	}

	cutoff := time.Now().Add(-c.retention)
	removed, err := c.messageRepository.DeleteMessagesBefore(ctx, cutoff)
	if err != nil {
		log.Err(err).Time("cutoff", cutoff).Msg("contact message sweep failed")
		return 0, fmt.Errorf("contact message sweep failed: %w", err)
	}

	if removed > 0 {
		log.Info().Int64("removed", removed).Time("cutoff", cutoff).Msg("swept expired contact messages")
	}

	return removed, nil
}
