package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lessonhub/backend/internal/apperrors"
	"github.com/lessonhub/backend/internal/models"
)

type lessonRepository struct {
	db *sql.DB
}

// NewLessonRepository creates a new lesson repository
func NewLessonRepository(db *sql.DB) *lessonRepository {
	return &lessonRepository{
		db: db,
	}
}

// Create inserts a new lesson and sets its ID
func (r *lessonRepository) Create(ctx context.Context, lesson *models.Lesson) error {
	query := `
		INSERT INTO lessons (title, description, user_id, is_public, citation)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		lesson.Title,
		lesson.Description,
		lesson.UserID,
		lesson.IsPublic,
		lesson.Citation,
	)
	if err != nil {
		return fmt.Errorf("failed to create lesson: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	lesson.ID = int(id)
	return nil
}

// GetByID retrieves a lesson by ID
func (r *lessonRepository) GetByID(ctx context.Context, id int) (*models.Lesson, error) {
	query := `
		SELECT id, title, description, citation, is_public, view_count, user_id, created_at, updated_at
		FROM lessons
		WHERE id = ?
		LIMIT 1
	`

	var lesson models.Lesson
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&lesson.ID,
		&lesson.Title,
		&lesson.Description,
		&lesson.Citation,
		&lesson.IsPublic,
		&lesson.ViewCount,
		&lesson.UserID,
		&lesson.CreatedAt,
		&lesson.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("lesson %w", apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get lesson: %w", err)
	}

	return &lesson, nil
}

// Update updates a lesson's editable details
func (r *lessonRepository) Update(ctx context.Context, id int, title, description string, isPublic bool) error {
	query := "UPDATE lessons SET title = ?, description = ?, is_public = ? WHERE id = ?"

	_, err := r.db.ExecContext(ctx, query, title, description, isPublic, id)
	if err != nil {
		return fmt.Errorf("failed to update lesson: %w", err)
	}

	return nil
}

// RecordView increments the lesson view counter and, when viewerID is not
// nil, inserts one view row. Both writes happen in a single transaction so
// the counter and the view log cannot diverge.
func (r *lessonRepository) RecordView(ctx context.Context, lessonID int, viewerID *int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, "UPDATE lessons SET view_count = view_count + 1 WHERE id = ?", lessonID)
	if err != nil {
		return fmt.Errorf("failed to increment view count: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("lesson %w", apperrors.ErrNotFound)
	}

	if viewerID != nil {
		_, err = tx.ExecContext(ctx, "INSERT INTO views (lesson_id, viewer_id) VALUES (?, ?)", lessonID, *viewerID)
		if err != nil {
			return fmt.Errorf("failed to record view: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit view recording: %w", err)
	}

	return nil
}

// Search retrieves public lessons matching the substring filters. Empty
// filter fields match everything.
func (r *lessonRepository) Search(ctx context.Context, f *models.SearchLessonsRequest) ([]models.LessonWithAuthor, error) {
	query := `
		SELECT lessons.id, lessons.title, lessons.description, lessons.created_at, lessons.updated_at,
			lessons.citation, lessons.view_count,
			CONCAT(users.first_name, ' ', users.last_name) AS name
		FROM lessons
		INNER JOIN users ON lessons.user_id = users.id
		WHERE lessons.is_public = 1
		AND lessons.title LIKE CONCAT('%', ?, '%')
		AND lessons.description LIKE CONCAT('%', ?, '%')
		AND lessons.citation LIKE CONCAT('%', ?, '%')
		AND CONCAT(users.first_name, ' ', users.last_name) LIKE CONCAT('%', ?, '%')
	`

	rows, err := r.db.QueryContext(ctx, query, f.Title, f.Description, f.Citation, f.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to search lessons: %w", err)
	}
	defer rows.Close()

	var lessons []models.LessonWithAuthor
	for rows.Next() {
		var l models.LessonWithAuthor
		err := rows.Scan(
			&l.ID, &l.Title, &l.Description, &l.CreatedAt, &l.UpdatedAt,
			&l.Citation, &l.ViewCount, &l.AuthorName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lesson: %w", err)
		}
		lessons = append(lessons, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return lessons, nil
}

// GetByAuthor retrieves lessons created by a user, newest first
func (r *lessonRepository) GetByAuthor(ctx context.Context, userID int) ([]models.LessonWithAuthor, error) {
	query := `
		SELECT lessons.id, lessons.title, lessons.description, lessons.citation, lessons.is_public,
			lessons.view_count, lessons.user_id, lessons.created_at, lessons.updated_at,
			CONCAT(users.first_name, ' ', users.last_name) AS name
		FROM lessons
		LEFT JOIN users ON lessons.user_id = users.id
		WHERE lessons.user_id = ?
		ORDER BY lessons.id DESC
	`
	return r.queryFullLessons(ctx, query, userID)
}

// GetLiked retrieves lessons a user has liked
func (r *lessonRepository) GetLiked(ctx context.Context, userID int) ([]models.LessonWithAuthor, error) {
	query := `
		SELECT lessons.id, lessons.title, lessons.description, lessons.citation, lessons.is_public,
			lessons.view_count, lessons.user_id, lessons.created_at, lessons.updated_at,
			CONCAT(users.first_name, ' ', users.last_name) AS name
		FROM lessons
		INNER JOIN likes ON lessons.id = likes.lesson_id
		LEFT JOIN users ON lessons.user_id = users.id
		WHERE likes.user_id = ?
		GROUP BY lessons.id
	`
	return r.queryFullLessons(ctx, query, userID)
}

func (r *lessonRepository) queryFullLessons(ctx context.Context, query string, args ...any) ([]models.LessonWithAuthor, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query lessons: %w", err)
	}
	defer rows.Close()

	var lessons []models.LessonWithAuthor
	for rows.Next() {
		var l models.LessonWithAuthor
		err := rows.Scan(
			&l.ID, &l.Title, &l.Description, &l.Citation, &l.IsPublic,
			&l.ViewCount, &l.UserID, &l.CreatedAt, &l.UpdatedAt, &l.AuthorName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lesson: %w", err)
		}
		lessons = append(lessons, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return lessons, nil
}

// GetSharedWith retrieves lessons shared with a recipient email, including
// the sender's name and email.
func (r *lessonRepository) GetSharedWith(ctx context.Context, email string) ([]models.LessonWithAuthor, error) {
	query := `
		SELECT lessons.id, lessons.title, lessons.description, lessons.user_id,
			lessons.created_at, lessons.updated_at, lessons.is_public, lessons.citation,
			CONCAT(users.first_name, ' ', users.last_name) AS name,
			users.email AS sender_email
		FROM lessons
		INNER JOIN shares ON lessons.id = shares.lesson_id
		LEFT JOIN users ON lessons.user_id = users.id
		WHERE shares.recipient_email = ?
		GROUP BY lessons.id, name, sender_email
	`

	rows, err := r.db.QueryContext(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("failed to query shared lessons: %w", err)
	}
	defer rows.Close()

	var lessons []models.LessonWithAuthor
	for rows.Next() {
		var l models.LessonWithAuthor
		err := rows.Scan(
			&l.ID, &l.Title, &l.Description, &l.UserID,
			&l.CreatedAt, &l.UpdatedAt, &l.IsPublic, &l.Citation,
			&l.AuthorName, &l.SenderEmail,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lesson: %w", err)
		}
		lessons = append(lessons, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return lessons, nil
}

// GetRecentlyViewed retrieves the distinct lessons a user viewed most
// recently, capped at ten.
func (r *lessonRepository) GetRecentlyViewed(ctx context.Context, userID int) ([]models.LessonWithAuthor, error) {
	query := `
		SELECT DISTINCT recent_views.*, CONCAT(users.first_name, ' ', users.last_name) AS name
		FROM (
			SELECT lessons.id, lessons.title, lessons.description, lessons.user_id,
				lessons.created_at, lessons.updated_at, lessons.is_public, lessons.citation
			FROM lessons
			INNER JOIN views ON lessons.id = views.lesson_id
			WHERE views.viewer_id = ?
			ORDER BY views.view_timestamp DESC
			LIMIT 10
		) AS recent_views
		LEFT JOIN users ON recent_views.user_id = users.id
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query recently viewed lessons: %w", err)
	}
	defer rows.Close()

	var lessons []models.LessonWithAuthor
	for rows.Next() {
		var l models.LessonWithAuthor
		err := rows.Scan(
			&l.ID, &l.Title, &l.Description, &l.UserID,
			&l.CreatedAt, &l.UpdatedAt, &l.IsPublic, &l.Citation, &l.AuthorName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lesson: %w", err)
		}
		lessons = append(lessons, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return lessons, nil
}

// GetMostLiked retrieves the lessons with the most likes
func (r *lessonRepository) GetMostLiked(ctx context.Context, limit int) ([]models.LessonWithAuthor, error) {
	return r.queryExploreLessons(ctx, "like_count", limit)
}

// GetMostViewed retrieves the lessons with the highest view counters
func (r *lessonRepository) GetMostViewed(ctx context.Context, limit int) ([]models.LessonWithAuthor, error) {
	return r.queryExploreLessons(ctx, "view_count", limit)
}

// queryExploreLessons runs the explore aggregate ordered by the given
// counter column. orderBy is one of two fixed column names, never user
// input.
func (r *lessonRepository) queryExploreLessons(ctx context.Context, orderBy string, limit int) ([]models.LessonWithAuthor, error) {
	query := fmt.Sprintf(`
		SELECT lessons.id, lessons.title, lessons.description, lessons.citation, lessons.is_public,
			lessons.view_count, lessons.user_id, lessons.created_at, lessons.updated_at,
			COUNT(likes.lesson_id) AS like_count,
			CONCAT(users.first_name, ' ', users.last_name) AS name
		FROM lessons
		LEFT JOIN likes ON lessons.id = likes.lesson_id
		LEFT JOIN users ON lessons.user_id = users.id
		GROUP BY lessons.id
		ORDER BY %s DESC
		LIMIT ?
	`, orderBy)

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query explore lessons: %w", err)
	}
	defer rows.Close()

	var lessons []models.LessonWithAuthor
	for rows.Next() {
		var l models.LessonWithAuthor
		err := rows.Scan(
			&l.ID, &l.Title, &l.Description, &l.Citation, &l.IsPublic,
			&l.ViewCount, &l.UserID, &l.CreatedAt, &l.UpdatedAt,
			&l.LikeCount, &l.AuthorName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lesson: %w", err)
		}
		lessons = append(lessons, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return lessons, nil
}
