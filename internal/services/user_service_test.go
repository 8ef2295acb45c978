package services

import (
	"context"
	"errors"
	"testing"

	"github.com/lessonhub/backend/internal/apperrors"
	"github.com/lessonhub/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockUserRepository is a mock implementation of UserRepository
type mockUserRepository struct {
	user         *models.User
	exists       bool
	err          error
	createErr    error
	createCalled bool
	createdID    int
	updatedURL   string
}

func (m *mockUserRepository) Create(ctx context.Context, user *models.User) error {
	m.createCalled = true
	if m.createErr != nil {
		return m.createErr
	}
	user.ID = m.createdID
	return nil
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	return m.exists, nil
}

func (m *mockUserRepository) GetByUID(ctx context.Context, uid string) (*models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.user, nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id int) (*models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.user, nil
}

func (m *mockUserRepository) UpdateProfilePic(ctx context.Context, uid, url string) error {
	m.updatedURL = url
	return m.err
}

func TestUserService_Register(t *testing.T) {
	tests := []struct {
		name          string
		exists        bool
		createErr     error
		expectedError error
		expectCreate  bool
	}{
		{
			name:         "success",
			expectCreate: true,
		},
		{
			name:          "duplicate email",
			exists:        true,
			expectedError: apperrors.ErrDuplicate,
		},
		{
			name:          "duplicate caught by unique key under race",
			createErr:     apperrors.ErrDuplicate,
			expectedError: apperrors.ErrDuplicate,
			expectCreate:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockUserRepository{exists: tt.exists, createErr: tt.createErr, createdID: 7}
			svc := NewUserService(repo)

			user, err := svc.Register(context.Background(), &models.RegisterRequest{
				FirstName:   "Ada",
				LastName:    "Lovelace",
				Email:       "ada@example.com",
				IdentityUID: "uid-ada",
			})

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				require.NotNil(t, user)
				assert.Equal(t, 7, user.ID)
				assert.Equal(t, "uid-ada", user.IdentityUID)
			}
			assert.Equal(t, tt.expectCreate, repo.createCalled)
		})
	}
}

func TestUserService_GetByUID(t *testing.T) {
	repo := &mockUserRepository{user: &models.User{ID: 7, IdentityUID: "uid-ada"}}
	svc := NewUserService(repo)

	user, err := svc.GetByUID(context.Background(), "uid-ada")

	assert.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, 7, user.ID)
}

func TestUserService_UpdateProfilePic(t *testing.T) {
	repo := &mockUserRepository{}
	svc := NewUserService(repo)

	err := svc.UpdateProfilePic(context.Background(), &models.UpdateProfilePicRequest{
		IdentityUID:   "uid-ada",
		ProfilePicURL: "http://example.com/pic.png",
	})

	assert.NoError(t, err)
	assert.Equal(t, "http://example.com/pic.png", repo.updatedURL)
}

func TestUserService_Register_LookupError(t *testing.T) {
	dbErr := errors.New("database error")
	svc := NewUserService(&mockUserRepository{err: dbErr})

	_, err := svc.Register(context.Background(), &models.RegisterRequest{
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Email:       "ada@example.com",
		IdentityUID: "uid-ada",
	})

	assert.ErrorIs(t, err, dbErr)
}
