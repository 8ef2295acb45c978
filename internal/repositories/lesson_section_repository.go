package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lessonhub/backend/internal/models"
)

type lessonSectionRepository struct {
	db *sql.DB
}

// NewLessonSectionRepository creates a new lesson section repository
func NewLessonSectionRepository(db *sql.DB) *lessonSectionRepository {
	return &lessonSectionRepository{
		db: db,
	}
}

// Create inserts a new lesson section
func (r *lessonSectionRepository) Create(ctx context.Context, section *models.LessonSection) error {
	query := "INSERT INTO lesson_sections (title, body, lesson_id) VALUES (?, ?, ?)"

	result, err := r.db.ExecContext(ctx, query, section.Title, section.Body, section.LessonID)
	if err != nil {
		return fmt.Errorf("failed to create lesson section: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	section.ID = int(id)
	return nil
}

// GetByLessonID retrieves all sections for a lesson, ordered by ID
func (r *lessonSectionRepository) GetByLessonID(ctx context.Context, lessonID int) ([]models.LessonSection, error) {
	query := `
		SELECT id, lesson_id, title, body
		FROM lesson_sections
		WHERE lesson_id = ?
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, lessonID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lesson sections: %w", err)
	}
	defer rows.Close()

	var sections []models.LessonSection
	for rows.Next() {
		var s models.LessonSection
		if err := rows.Scan(&s.ID, &s.LessonID, &s.Title, &s.Body); err != nil {
			return nil, fmt.Errorf("failed to scan lesson section: %w", err)
		}
		sections = append(sections, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return sections, nil
}

// Update updates a lesson section's title and body
func (r *lessonSectionRepository) Update(ctx context.Context, id int, title, body string) error {
	query := "UPDATE lesson_sections SET title = ?, body = ? WHERE id = ?"

	_, err := r.db.ExecContext(ctx, query, title, body, id)
	if err != nil {
		return fmt.Errorf("failed to update lesson section: %w", err)
	}

	return nil
}
