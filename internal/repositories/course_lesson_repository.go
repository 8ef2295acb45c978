package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lessonhub/backend/internal/apperrors"
	"github.com/lessonhub/backend/internal/models"
)

type courseLessonRepository struct {
	db *sql.DB
}

// NewCourseLessonRepository creates a new course-lesson link repository
func NewCourseLessonRepository(db *sql.DB) *courseLessonRepository {
	return &courseLessonRepository{
		db: db,
	}
}

// Add links a lesson to a course
func (r *courseLessonRepository) Add(ctx context.Context, courseID, lessonID int) error {
	query := "INSERT INTO course_lessons (course_id, lesson_id) VALUES (?, ?)"

	_, err := r.db.ExecContext(ctx, query, courseID, lessonID)
	if err != nil {
		if isDuplicateEntry(err) {
			return fmt.Errorf("course lesson %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to add course lesson: %w", err)
	}

	return nil
}

// Remove unlinks a lesson from a course
func (r *courseLessonRepository) Remove(ctx context.Context, courseID, lessonID int) error {
	query := "DELETE FROM course_lessons WHERE course_id = ? AND lesson_id = ?"

	result, err := r.db.ExecContext(ctx, query, courseID, lessonID)
	if err != nil {
		return fmt.Errorf("failed to remove course lesson: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("course lesson %w", apperrors.ErrNotFound)
	}

	return nil
}

// ListByCourse retrieves the lessons linked to a course, newest link first
func (r *courseLessonRepository) ListByCourse(ctx context.Context, courseID int) ([]models.CourseLessonItem, error) {
	query := `
		SELECT lessons.id, lessons.title, lessons.description, lessons.created_at, lessons.updated_at,
			lessons.citation, lessons.view_count,
			CONCAT(users.first_name, ' ', users.last_name) AS name,
			course_lessons.date_added
		FROM lessons
		INNER JOIN users ON lessons.user_id = users.id
		INNER JOIN course_lessons ON lessons.id = course_lessons.lesson_id
		WHERE course_lessons.course_id = ?
		ORDER BY course_lessons.date_added DESC
	`

	rows, err := r.db.QueryContext(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query course lessons: %w", err)
	}
	defer rows.Close()

	var lessons []models.CourseLessonItem
	for rows.Next() {
		var l models.CourseLessonItem
		err := rows.Scan(
			&l.ID, &l.Title, &l.Description, &l.CreatedAt, &l.UpdatedAt,
			&l.Citation, &l.ViewCount, &l.AuthorName, &l.DateAdded,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan course lesson: %w", err)
		}
		lessons = append(lessons, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return lessons, nil
}
