package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lessonhub/backend/internal/models"
)

type messageRepository struct {
	db *sql.DB
}

// NewMessageRepository creates a new course message repository
func NewMessageRepository(db *sql.DB) *messageRepository {
	return &messageRepository{
		db: db,
	}
}

// Create posts a message to a course board
func (r *messageRepository) Create(ctx context.Context, courseID, userID int, content string) error {
	query := "INSERT INTO course_messages (course_id, user_id, message_content) VALUES (?, ?, ?)"

	_, err := r.db.ExecContext(ctx, query, courseID, userID, content)
	if err != nil {
		return fmt.Errorf("failed to create course message: %w", err)
	}

	return nil
}

// ListByCourse retrieves course messages with author names, newest first
func (r *messageRepository) ListByCourse(ctx context.Context, courseID int) ([]models.CourseMessage, error) {
	query := `
		SELECT course_messages.message_id, course_messages.user_id, course_messages.created_at,
			course_messages.message_content,
			CONCAT(users.first_name, ' ', users.last_name) AS name
		FROM course_messages
		JOIN users ON users.id = course_messages.user_id
		WHERE course_messages.course_id = ?
		ORDER BY course_messages.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query course messages: %w", err)
	}
	defer rows.Close()

	var messages []models.CourseMessage
	for rows.Next() {
		var m models.CourseMessage
		err := rows.Scan(&m.MessageID, &m.UserID, &m.Timestamp, &m.MessageContent, &m.AuthorName)
		if err != nil {
			return nil, fmt.Errorf("failed to scan course message: %w", err)
		}
		messages = append(messages, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return messages, nil
}
