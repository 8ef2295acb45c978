package repositories

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/lessonhub/backend/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupMembershipTestRepository creates a membership repository with a mock database
func setupMembershipTestRepository(t *testing.T) (*membershipRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewMembershipRepository(db)

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func TestMembershipRepository_Add(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo, mock, cleanup := setupMembershipTestRepository(t)
		defer cleanup()

		mock.ExpectExec(`INSERT INTO course_users \(course_id, user_id\) VALUES \(\?, \?\)`).
			WithArgs(5, 9).
			WillReturnResult(sqlmock.NewResult(1, 1))

		err := repo.Add(context.Background(), 5, 9)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already enrolled", func(t *testing.T) {
		repo, mock, cleanup := setupMembershipTestRepository(t)
		defer cleanup()

		mock.ExpectExec(`INSERT INTO course_users \(course_id, user_id\) VALUES \(\?, \?\)`).
			WithArgs(5, 9).
			WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

		err := repo.Add(context.Background(), 5, 9)

		assert.ErrorIs(t, err, apperrors.ErrDuplicate)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMembershipRepository_IsMember(t *testing.T) {
	repo, mock, cleanup := setupMembershipTestRepository(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"exists"}).AddRow(false)
	mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM course_users WHERE course_id = \? AND user_id = \?\)`).
		WithArgs(5, 9).
		WillReturnRows(rows)

	isMember, err := repo.IsMember(context.Background(), 5, 9)

	assert.NoError(t, err)
	assert.False(t, isMember)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMembershipRepository_ListByCourse(t *testing.T) {
	repo, mock, cleanup := setupMembershipTestRepository(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"user_id", "name", "email"}).
		AddRow(9, "Grace Hopper", "grace@example.com").
		AddRow(7, "Alan Turing", "alan@example.com")

	mock.ExpectQuery(`FROM course_users`).
		WithArgs(5).
		WillReturnRows(rows)

	entries, err := repo.ListByCourse(context.Background(), 5)

	assert.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Grace Hopper", entries[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
