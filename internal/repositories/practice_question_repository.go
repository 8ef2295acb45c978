package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lessonhub/backend/internal/models"
)

type practiceQuestionRepository struct {
	db *sql.DB
}

// NewPracticeQuestionRepository creates a new practice question repository
func NewPracticeQuestionRepository(db *sql.DB) *practiceQuestionRepository {
	return &practiceQuestionRepository{
		db: db,
	}
}

// Create inserts a new practice question
func (r *practiceQuestionRepository) Create(ctx context.Context, q *models.PracticeQuestion) error {
	query := `
		INSERT INTO lesson_practice_questions (question, option_a, option_b, option_c, option_d, answer, lesson_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		q.Question, q.OptionA, q.OptionB, q.OptionC, q.OptionD, q.Answer, q.LessonID,
	)
	if err != nil {
		return fmt.Errorf("failed to create practice question: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	q.ID = int(id)
	return nil
}

// GetByLessonID retrieves all practice questions for a lesson
func (r *practiceQuestionRepository) GetByLessonID(ctx context.Context, lessonID int) ([]models.PracticeQuestion, error) {
	query := `
		SELECT id, lesson_id, question, option_a, option_b, option_c, option_d, answer
		FROM lesson_practice_questions
		WHERE lesson_id = ?
	`

	rows, err := r.db.QueryContext(ctx, query, lessonID)
	if err != nil {
		return nil, fmt.Errorf("failed to query practice questions: %w", err)
	}
	defer rows.Close()

	var questions []models.PracticeQuestion
	for rows.Next() {
		var q models.PracticeQuestion
		err := rows.Scan(&q.ID, &q.LessonID, &q.Question, &q.OptionA, &q.OptionB, &q.OptionC, &q.OptionD, &q.Answer)
		if err != nil {
			return nil, fmt.Errorf("failed to scan practice question: %w", err)
		}
		questions = append(questions, q)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return questions, nil
}

// Update updates a practice question
func (r *practiceQuestionRepository) Update(ctx context.Context, id int, q *models.UpdateQuestionRequest) error {
	query := `
		UPDATE lesson_practice_questions
		SET question = ?, option_a = ?, option_b = ?, option_c = ?, option_d = ?, answer = ?
		WHERE id = ?
	`

	_, err := r.db.ExecContext(ctx, query, q.Question, q.OptionA, q.OptionB, q.OptionC, q.OptionD, q.Answer, id)
	if err != nil {
		return fmt.Errorf("failed to update practice question: %w", err)
	}

	return nil
}
