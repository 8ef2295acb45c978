package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lessonhub/backend/internal/apperrors"
	"github.com/lessonhub/backend/internal/models"
)

type membershipRepository struct {
	db *sql.DB
}

// NewMembershipRepository creates a new course membership repository
func NewMembershipRepository(db *sql.DB) *membershipRepository {
	return &membershipRepository{
		db: db,
	}
}

// Add enrolls a user into a course roster
func (r *membershipRepository) Add(ctx context.Context, courseID, userID int) error {
	query := "INSERT INTO course_users (course_id, user_id) VALUES (?, ?)"

	_, err := r.db.ExecContext(ctx, query, courseID, userID)
	if err != nil {
		if isDuplicateEntry(err) {
			return fmt.Errorf("membership %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to add course member: %w", err)
	}

	return nil
}

// Remove removes a user from a course roster
func (r *membershipRepository) Remove(ctx context.Context, courseID, userID int) error {
	query := "DELETE FROM course_users WHERE course_id = ? AND user_id = ?"

	_, err := r.db.ExecContext(ctx, query, courseID, userID)
	if err != nil {
		return fmt.Errorf("failed to remove course member: %w", err)
	}

	return nil
}

// IsMember checks whether a user is on a course roster
func (r *membershipRepository) IsMember(ctx context.Context, courseID, userID int) (bool, error) {
	query := "SELECT EXISTS(SELECT 1 FROM course_users WHERE course_id = ? AND user_id = ?)"

	var isMember bool
	err := r.db.QueryRowContext(ctx, query, courseID, userID).Scan(&isMember)
	if err != nil {
		return false, fmt.Errorf("failed to check course membership: %w", err)
	}

	return isMember, nil
}

// ListByCourse retrieves the roster of a course with member details
func (r *membershipRepository) ListByCourse(ctx context.Context, courseID int) ([]models.ClasslistEntry, error) {
	query := `
		SELECT course_users.user_id, CONCAT(users.first_name, ' ', users.last_name) AS name, users.email
		FROM course_users
		INNER JOIN users ON course_users.user_id = users.id
		WHERE course_id = ?
		ORDER BY name DESC
	`

	rows, err := r.db.QueryContext(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query classlist: %w", err)
	}
	defer rows.Close()

	var entries []models.ClasslistEntry
	for rows.Next() {
		var e models.ClasslistEntry
		if err := rows.Scan(&e.UserID, &e.Name, &e.Email); err != nil {
			return nil, fmt.Errorf("failed to scan classlist entry: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return entries, nil
}
