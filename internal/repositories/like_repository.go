package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lessonhub/backend/internal/apperrors"
)

type likeRepository struct {
	db *sql.DB
}

// NewLikeRepository creates a new like repository
func NewLikeRepository(db *sql.DB) *likeRepository {
	return &likeRepository{
		db: db,
	}
}

// Add inserts a like for a (user, lesson) pair. The unique key on the pair
// makes concurrent duplicate adds converge to a single row.
func (r *likeRepository) Add(ctx context.Context, userID, lessonID int) error {
	query := "INSERT INTO likes (user_id, lesson_id) VALUES (?, ?)"

	_, err := r.db.ExecContext(ctx, query, userID, lessonID)
	if err != nil {
		if isDuplicateEntry(err) {
			return fmt.Errorf("like %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to add like: %w", err)
	}

	return nil
}

// Remove deletes a like for a (user, lesson) pair
func (r *likeRepository) Remove(ctx context.Context, userID, lessonID int) error {
	query := "DELETE FROM likes WHERE user_id = ? AND lesson_id = ?"

	_, err := r.db.ExecContext(ctx, query, userID, lessonID)
	if err != nil {
		return fmt.Errorf("failed to remove like: %w", err)
	}

	return nil
}

// Exists checks whether a user has liked a lesson
func (r *likeRepository) Exists(ctx context.Context, userID, lessonID int) (bool, error) {
	query := "SELECT EXISTS(SELECT 1 FROM likes WHERE user_id = ? AND lesson_id = ?)"

	var exists bool
	err := r.db.QueryRowContext(ctx, query, userID, lessonID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check like: %w", err)
	}

	return exists, nil
}

// CountByLesson returns the number of likes on a lesson
func (r *likeRepository) CountByLesson(ctx context.Context, lessonID int) (int, error) {
	query := "SELECT COUNT(*) FROM likes WHERE lesson_id = ?"

	var count int
	err := r.db.QueryRowContext(ctx, query, lessonID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}

	return count, nil
}
