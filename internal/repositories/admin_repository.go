package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lessonhub/backend/internal/apperrors"
	"github.com/lessonhub/backend/internal/models"
)

type adminRepository struct {
	db *sql.DB
}

// NewAdminRepository creates a new course administrator repository
func NewAdminRepository(db *sql.DB) *adminRepository {
	return &adminRepository{
		db: db,
	}
}

// Add grants course administration to a user
func (r *adminRepository) Add(ctx context.Context, courseID, adminID int) error {
	query := "INSERT INTO course_administrators (course_id, admin_id) VALUES (?, ?)"

	_, err := r.db.ExecContext(ctx, query, courseID, adminID)
	if err != nil {
		if isDuplicateEntry(err) {
			return fmt.Errorf("administrator %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to add course administrator: %w", err)
	}

	return nil
}

// Remove revokes course administration from a user
func (r *adminRepository) Remove(ctx context.Context, courseID, adminID int) error {
	query := "DELETE FROM course_administrators WHERE course_id = ? AND admin_id = ?"

	_, err := r.db.ExecContext(ctx, query, courseID, adminID)
	if err != nil {
		return fmt.Errorf("failed to remove course administrator: %w", err)
	}

	return nil
}

// Exists checks whether a user administers a course
func (r *adminRepository) Exists(ctx context.Context, courseID, adminID int) (bool, error) {
	query := "SELECT EXISTS(SELECT 1 FROM course_administrators WHERE course_id = ? AND admin_id = ?)"

	var exists bool
	err := r.db.QueryRowContext(ctx, query, courseID, adminID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check course administrator: %w", err)
	}

	return exists, nil
}

// ListByCourse retrieves the administrators of a course with user details
func (r *adminRepository) ListByCourse(ctx context.Context, courseID int) ([]models.CourseAdmin, error) {
	query := `
		SELECT course_administrators.admin_id, users.first_name, users.last_name, users.email
		FROM course_administrators
		JOIN users ON users.id = course_administrators.admin_id
		WHERE course_id = ?
	`

	rows, err := r.db.QueryContext(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query course administrators: %w", err)
	}
	defer rows.Close()

	var admins []models.CourseAdmin
	for rows.Next() {
		var a models.CourseAdmin
		if err := rows.Scan(&a.AdminID, &a.FirstName, &a.LastName, &a.Email); err != nil {
			return nil, fmt.Errorf("failed to scan course administrator: %w", err)
		}
		admins = append(admins, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return admins, nil
}
