package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lessonhub/backend/internal/apperrors"
	"github.com/lessonhub/backend/internal/models"
)

type courseRepository struct {
	db *sql.DB
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *sql.DB) *courseRepository {
	return &courseRepository{
		db: db,
	}
}

// CreateWithSubjects inserts a course and its subject rows in a single
// transaction and sets the course ID.
func (r *courseRepository) CreateWithSubjects(ctx context.Context, course *models.Course, subjects []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		"INSERT INTO courses (course_name, description, is_public, max_users, owner_id) VALUES (?, ?, ?, ?, ?)",
		course.CourseName, course.Description, course.IsPublic, course.MaxUsers, course.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("failed to create course: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}
	course.ID = int(id)

	for _, subject := range subjects {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO course_subjects (course_id, subject_name) VALUES (?, ?)",
			course.ID, subject,
		)
		if err != nil {
			return fmt.Errorf("failed to create course subject: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit course creation: %w", err)
	}

	return nil
}

// GetInfo retrieves a course joined with its owner's details
func (r *courseRepository) GetInfo(ctx context.Context, id int) (*models.CourseInfo, error) {
	query := `
		SELECT courses.id, courses.course_name, courses.description, courses.is_public,
			courses.max_users, courses.owner_id,
			users.first_name, users.last_name, users.email, users.identity_uid
		FROM courses
		JOIN users ON courses.owner_id = users.id
		WHERE courses.id = ?
		LIMIT 1
	`

	var info models.CourseInfo
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&info.ID,
		&info.CourseName,
		&info.Description,
		&info.IsPublic,
		&info.MaxUsers,
		&info.OwnerID,
		&info.OwnerFirstName,
		&info.OwnerLastName,
		&info.OwnerEmail,
		&info.OwnerIdentityUID,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("course %w", apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get course info: %w", err)
	}

	return &info, nil
}

// GetOwnerID returns the owner of a course. Used by the owner-only
// permission policy, which must distinguish a missing course from a
// non-owner caller.
func (r *courseRepository) GetOwnerID(ctx context.Context, id int) (int, error) {
	query := "SELECT owner_id FROM courses WHERE id = ? LIMIT 1"

	var ownerID int
	err := r.db.QueryRowContext(ctx, query, id).Scan(&ownerID)
	if err == sql.ErrNoRows {
		return 0, fmt.Errorf("course %w", apperrors.ErrNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get course owner: %w", err)
	}

	return ownerID, nil
}

// IsOwnerOrAdmin resolves the owner-or-admin permission policy with a
// single read: the course left-joined against its administrator list,
// filtered by owner-match or admin-match.
func (r *courseRepository) IsOwnerOrAdmin(ctx context.Context, courseID, userID int) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1
			FROM courses
			LEFT JOIN course_administrators ON courses.id = course_administrators.course_id
			WHERE (courses.owner_id = ? OR course_administrators.admin_id = ?) AND courses.id = ?
		)
	`

	var allowed bool
	err := r.db.QueryRowContext(ctx, query, userID, userID, courseID).Scan(&allowed)
	if err != nil {
		return false, fmt.Errorf("failed to check course permissions: %w", err)
	}

	return allowed, nil
}

// Search retrieves public courses matching the substring filters, with
// subjects concatenated per course. Empty filter fields match everything.
func (r *courseRepository) Search(ctx context.Context, f *models.SearchCoursesRequest) ([]models.CourseSummary, error) {
	query := `
		SELECT courses.id, courses.course_name, courses.description,
			COALESCE(GROUP_CONCAT(course_subjects.subject_name SEPARATOR ', '), '') AS subjects,
			CONCAT(users.first_name, ' ', users.last_name) AS instructor
		FROM courses
		INNER JOIN users ON courses.owner_id = users.id
		LEFT JOIN course_subjects ON course_subjects.course_id = courses.id
		WHERE courses.is_public = 1
		AND courses.course_name LIKE CONCAT('%', ?, '%')
		AND courses.description LIKE CONCAT('%', ?, '%')
		AND CONCAT(users.first_name, ' ', users.last_name) LIKE CONCAT('%', ?, '%')
		GROUP BY courses.id, courses.course_name, courses.description, instructor
		HAVING subjects LIKE CONCAT('%', ?, '%')
	`

	return r.querySummaries(ctx, query, f.Course, f.Description, f.Instructor, f.Subject)
}

// GetByOwner retrieves courses created by a user
func (r *courseRepository) GetByOwner(ctx context.Context, ownerID int) ([]models.CourseSummary, error) {
	query := `
		SELECT courses.id, courses.course_name, courses.description,
			COALESCE(GROUP_CONCAT(course_subjects.subject_name SEPARATOR ', '), '') AS subjects,
			CONCAT(users.first_name, ' ', users.last_name) AS instructor
		FROM courses
		INNER JOIN users ON courses.owner_id = users.id
		LEFT JOIN course_subjects ON course_subjects.course_id = courses.id
		WHERE courses.owner_id = ?
		GROUP BY courses.id, courses.course_name, courses.description, instructor
	`

	return r.querySummaries(ctx, query, ownerID)
}

// GetEnrolled retrieves courses a user is a member of
func (r *courseRepository) GetEnrolled(ctx context.Context, userID int) ([]models.CourseSummary, error) {
	query := `
		SELECT courses.id, courses.course_name, courses.description,
			COALESCE(GROUP_CONCAT(course_subjects.subject_name SEPARATOR ', '), '') AS subjects,
			CONCAT(users.first_name, ' ', users.last_name) AS instructor
		FROM courses
		INNER JOIN users ON courses.owner_id = users.id
		LEFT JOIN course_subjects ON course_subjects.course_id = courses.id
		LEFT JOIN course_users ON course_users.course_id = courses.id
		WHERE course_users.user_id = ?
		GROUP BY courses.id, courses.course_name, courses.description, instructor
	`

	return r.querySummaries(ctx, query, userID)
}

func (r *courseRepository) querySummaries(ctx context.Context, query string, args ...any) ([]models.CourseSummary, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}
	defer rows.Close()

	var courses []models.CourseSummary
	for rows.Next() {
		var c models.CourseSummary
		err := rows.Scan(&c.ID, &c.CourseName, &c.Description, &c.Subjects, &c.Instructor)
		if err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		courses = append(courses, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return courses, nil
}
