package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lessonhub/backend/internal/apperrors"
	"github.com/lessonhub/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupCourseTestRepository creates a course repository with a mock database
func setupCourseTestRepository(t *testing.T) (*courseRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewCourseRepository(db)

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func TestCourseRepository_CreateWithSubjects(t *testing.T) {
	tests := []struct {
		name          string
		subjects      []string
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		expectedID    int
	}{
		{
			name:     "course and subjects committed together",
			subjects: []string{"Math", "Physics"},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`INSERT INTO courses`).
					WithArgs("Calculus 101", "First year calculus", true, 30, 3).
					WillReturnResult(sqlmock.NewResult(5, 1))
				mock.ExpectExec(`INSERT INTO course_subjects`).
					WithArgs(5, "Math").
					WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectExec(`INSERT INTO course_subjects`).
					WithArgs(5, "Physics").
					WillReturnResult(sqlmock.NewResult(2, 1))
				mock.ExpectCommit()
			},
			expectedID: 5,
		},
		{
			name:     "subject insert failure rolls back the course",
			subjects: []string{"Math"},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`INSERT INTO courses`).
					WithArgs("Calculus 101", "First year calculus", true, 30, 3).
					WillReturnResult(sqlmock.NewResult(5, 1))
				mock.ExpectExec(`INSERT INTO course_subjects`).
					WithArgs(5, "Math").
					WillReturnError(errors.New("database error"))
				mock.ExpectRollback()
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupCourseTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			course := &models.Course{
				CourseName:  "Calculus 101",
				Description: "First year calculus",
				IsPublic:    true,
				MaxUsers:    30,
				OwnerID:     3,
			}
			err := repo.CreateWithSubjects(context.Background(), course, tt.subjects)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedID, course.ID)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCourseRepository_GetOwnerID(t *testing.T) {
	tests := []struct {
		name          string
		courseID      int
		setupMock     func(sqlmock.Sqlmock)
		expectedError error
		expectedOwner int
	}{
		{
			name:     "success",
			courseID: 5,
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"owner_id"}).AddRow(3)
				mock.ExpectQuery(`SELECT owner_id FROM courses WHERE id = \? LIMIT 1`).
					WithArgs(5).
					WillReturnRows(rows)
			},
			expectedOwner: 3,
		},
		{
			name:     "missing course",
			courseID: 404,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT owner_id FROM courses WHERE id = \? LIMIT 1`).
					WithArgs(404).
					WillReturnError(sql.ErrNoRows)
			},
			expectedError: apperrors.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupCourseTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			ownerID, err := repo.GetOwnerID(context.Background(), tt.courseID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedOwner, ownerID)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCourseRepository_IsOwnerOrAdmin(t *testing.T) {
	tests := []struct {
		name     string
		allowed  bool
		userID   int
		courseID int
	}{
		{name: "owner or admin", allowed: true, userID: 3, courseID: 5},
		{name: "neither owner nor admin", allowed: false, userID: 9, courseID: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupCourseTestRepository(t)
			defer cleanup()

			rows := sqlmock.NewRows([]string{"exists"}).AddRow(tt.allowed)
			mock.ExpectQuery(`SELECT EXISTS\(`).
				WithArgs(tt.userID, tt.userID, tt.courseID).
				WillReturnRows(rows)

			allowed, err := repo.IsOwnerOrAdmin(context.Background(), tt.courseID, tt.userID)

			assert.NoError(t, err)
			assert.Equal(t, tt.allowed, allowed)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCourseRepository_Search(t *testing.T) {
	repo, mock, cleanup := setupCourseTestRepository(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"id", "course_name", "description", "subjects", "instructor"}).
		AddRow(5, "Calculus 101", "First year calculus", "Math, Physics", "Ada Lovelace")

	mock.ExpectQuery(`WHERE courses\.is_public = 1`).
		WithArgs("Calculus", "", "Ada", "Math").
		WillReturnRows(rows)

	courses, err := repo.Search(context.Background(), &models.SearchCoursesRequest{
		Course:     "Calculus",
		Subject:    "Math",
		Instructor: "Ada",
	})

	assert.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "Math, Physics", courses[0].Subjects)
	assert.Equal(t, "Ada Lovelace", courses[0].Instructor)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseRepository_GetInfo(t *testing.T) {
	repo, mock, cleanup := setupCourseTestRepository(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"id", "course_name", "description", "is_public", "max_users", "owner_id", "first_name", "last_name", "email", "identity_uid"}).
		AddRow(5, "Calculus 101", "First year calculus", true, 30, 3, "Ada", "Lovelace", "ada@example.com", "uid-ada")

	mock.ExpectQuery(`JOIN users ON courses\.owner_id = users\.id`).
		WithArgs(5).
		WillReturnRows(rows)

	info, err := repo.GetInfo(context.Background(), 5)

	assert.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, "Calculus 101", info.CourseName)
	assert.Equal(t, "uid-ada", info.OwnerIdentityUID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
