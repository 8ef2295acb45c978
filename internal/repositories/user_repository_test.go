package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/lessonhub/backend/internal/apperrors"
	"github.com/lessonhub/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupUserTestRepository creates a user repository with a mock database
func setupUserTestRepository(t *testing.T) (*userRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewUserRepository(db)

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func TestNewUserRepository(t *testing.T) {
	db := &sql.DB{}

	repo := NewUserRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestUserRepository_Create(t *testing.T) {
	tests := []struct {
		name          string
		user          *models.User
		setupMock     func(sqlmock.Sqlmock)
		expectedError error
		expectedID    int
	}{
		{
			name: "success",
			user: &models.User{
				FirstName:   "Ada",
				LastName:    "Lovelace",
				Email:       "ada@example.com",
				IdentityUID: "uid-ada",
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO users`).
					WithArgs("Ada", "Lovelace", "ada@example.com", "uid-ada").
					WillReturnResult(sqlmock.NewResult(7, 1))
			},
			expectedID: 7,
		},
		{
			name: "duplicate email or uid",
			user: &models.User{
				FirstName:   "Ada",
				LastName:    "Lovelace",
				Email:       "ada@example.com",
				IdentityUID: "uid-ada",
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO users`).
					WithArgs("Ada", "Lovelace", "ada@example.com", "uid-ada").
					WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})
			},
			expectedError: apperrors.ErrDuplicate,
		},
		{
			name: "database error",
			user: &models.User{
				FirstName:   "Ada",
				LastName:    "Lovelace",
				Email:       "ada@example.com",
				IdentityUID: "uid-ada",
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO users`).
					WithArgs("Ada", "Lovelace", "ada@example.com", "uid-ada").
					WillReturnError(errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupUserTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			err := repo.Create(context.Background(), tt.user)

			if tt.expectedError != nil {
				assert.Error(t, err)
				if errors.Is(tt.expectedError, apperrors.ErrDuplicate) {
					assert.ErrorIs(t, err, apperrors.ErrDuplicate)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedID, tt.user.ID)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_GetByUID(t *testing.T) {
	tests := []struct {
		name          string
		uid           string
		setupMock     func(sqlmock.Sqlmock)
		expectedError error
		expectedUser  *models.User
	}{
		{
			name: "success",
			uid:  "uid-ada",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "identity_uid", "first_name", "last_name", "email", "profile_pic_url"}).
					AddRow(1, "uid-ada", "Ada", "Lovelace", "ada@example.com", "")
				mock.ExpectQuery(`SELECT id, identity_uid, first_name, last_name, email`).
					WithArgs("uid-ada").
					WillReturnRows(rows)
			},
			expectedUser: &models.User{
				ID:          1,
				IdentityUID: "uid-ada",
				FirstName:   "Ada",
				LastName:    "Lovelace",
				Email:       "ada@example.com",
			},
		},
		{
			name: "not found",
			uid:  "uid-missing",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, identity_uid, first_name, last_name, email`).
					WithArgs("uid-missing").
					WillReturnError(sql.ErrNoRows)
			},
			expectedError: apperrors.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupUserTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			user, err := repo.GetByUID(context.Background(), tt.uid)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedUser, user)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_GetIDByUID(t *testing.T) {
	tests := []struct {
		name          string
		uid           string
		setupMock     func(sqlmock.Sqlmock)
		expectedError error
		expectedID    int
	}{
		{
			name: "success",
			uid:  "uid-ada",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id"}).AddRow(42)
				mock.ExpectQuery(`SELECT id FROM users WHERE identity_uid = \? LIMIT 1`).
					WithArgs("uid-ada").
					WillReturnRows(rows)
			},
			expectedID: 42,
		},
		{
			name: "not found",
			uid:  "uid-missing",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id FROM users WHERE identity_uid = \? LIMIT 1`).
					WithArgs("uid-missing").
					WillReturnError(sql.ErrNoRows)
			},
			expectedError: apperrors.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupUserTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			id, err := repo.GetIDByUID(context.Background(), tt.uid)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedID, id)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_ExistsByEmail(t *testing.T) {
	repo, mock, cleanup := setupUserTestRepository(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"exists"}).AddRow(true)
	mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM users WHERE email = \?\)`).
		WithArgs("ada@example.com").
		WillReturnRows(rows)

	exists, err := repo.ExistsByEmail(context.Background(), "ada@example.com")

	assert.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpdateProfilePic(t *testing.T) {
	repo, mock, cleanup := setupUserTestRepository(t)
	defer cleanup()

	mock.ExpectExec(`UPDATE users SET profile_pic_url = \? WHERE identity_uid = \?`).
		WithArgs("http://example.com/pic.png", "uid-ada").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateProfilePic(context.Background(), "uid-ada", "http://example.com/pic.png")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
