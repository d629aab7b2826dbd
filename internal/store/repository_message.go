package store

import (
	"context"
	"fmt"
	"time"

	"github.com/benharosh/studio-cms/internal/logger"
	"github.com/benharosh/studio-cms/models"
)

// contactMessageRepository is the PostgreSQL-backed implementation of
// [ContactMessageRepository].
type contactMessageRepository struct {
	*DB
	logger *logger.Logger
}

// NewContactMessageRepository constructs a [ContactMessageRepository] backed
// by the provided database connection and logger.
func NewContactMessageRepository(db *DB, logger *logger.Logger) ContactMessageRepository {
	return &contactMessageRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateMessage inserts a new contact-form submission and returns it with
// the store-assigned creation timestamp.
func (c *contactMessageRepository) CreateMessage(ctx context.Context, message models.ContactMessage) (models.ContactMessage, error) {
	log := logger.FromContext(ctx)

	row := c.DB.QueryRowContext(ctx, createMessage,
		message.ID,
		message.FullName,
		message.Phone,
		message.Email,
		message.Message,
	)

	scanErr := row.Scan(&message.CreatedAt)
	if scanErr != nil {
		log.Err(scanErr).
			Str("func", "contactMessageRepository.CreateMessage").
			Msg("failed to insert contact message")
		return models.ContactMessage{}, fmt.Errorf("%w: %w", ErrExecutingStatement, scanErr)
	}

	return message, nil
}

// ListMessages retrieves all contact messages, newest first.
func (c *contactMessageRepository) ListMessages(ctx context.Context) ([]models.ContactMessage, error) {
	log := logger.FromContext(ctx)

	rows, queryErr := c.DB.QueryContext(ctx, listMessages)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "contactMessageRepository.ListMessages").
			Msg("failed to execute query for listing contact messages")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	messages := make([]models.ContactMessage, 0, 20)

	for rows.Next() {
		var message models.ContactMessage

		scanErr := rows.Scan(
			&message.ID,
			&message.FullName,
			&message.Phone,
			&message.Email,
			&message.Message,
			&message.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "contactMessageRepository.ListMessages").
				Msg("failed to scan contact message row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		messages = append(messages, message)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "contactMessageRepository.ListMessages").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return messages, nil
}

// DeleteMessage removes a contact message by id.
//
// Returns [ErrMessageNotFound] when the id matches no row.
func (c *contactMessageRepository) DeleteMessage(ctx context.Context, messageID string) error {
	log := logger.FromContext(ctx)

	result, execErr := c.DB.ExecContext(ctx, deleteMessage, messageID)
	if execErr != nil {
		log.Err(execErr).
			Str("func", "contactMessageRepository.DeleteMessage").
			Str("message_id", messageID).
			Msg("failed to execute contact message delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
	}

	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return fmt.Errorf("%w: %q", ErrMessageNotFound, messageID)
	}

	return nil
}

// DeleteMessagesBefore removes all messages created before the cutoff and
// returns the number of removed rows.
func (c *contactMessageRepository) DeleteMessagesBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	result, execErr := c.DB.ExecContext(ctx, deleteMessagesBefore, cutoff)
	if execErr != nil {
		log.Err(execErr).
			Str("func", "contactMessageRepository.DeleteMessagesBefore").
			Time("cutoff", cutoff).
			Msg("failed to execute contact message retention delete")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, nil
	}

	return affected, nil
}
