package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lessonhub/backend/internal/apperrors"
)

type shareRepository struct {
	db *sql.DB
}

// NewShareRepository creates a new share repository
func NewShareRepository(db *sql.DB) *shareRepository {
	return &shareRepository{
		db: db,
	}
}

// Exists checks whether a (lesson, sender, recipient) share already exists
func (r *shareRepository) Exists(ctx context.Context, lessonID, senderID int, recipientEmail string) (bool, error) {
	query := "SELECT EXISTS(SELECT 1 FROM shares WHERE lesson_id = ? AND sender_id = ? AND recipient_email = ?)"

	var exists bool
	err := r.db.QueryRowContext(ctx, query, lessonID, senderID, recipientEmail).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check share: %w", err)
	}

	return exists, nil
}

// Create inserts a share record. The unique key on the triple backstops
// the pre-check under concurrency.
func (r *shareRepository) Create(ctx context.Context, lessonID, senderID int, recipientEmail string) error {
	query := "INSERT INTO shares (lesson_id, sender_id, recipient_email) VALUES (?, ?, ?)"

	_, err := r.db.ExecContext(ctx, query, lessonID, senderID, recipientEmail)
	if err != nil {
		if isDuplicateEntry(err) {
			return fmt.Errorf("share %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to create share: %w", err)
	}

	return nil
}
