// Package services implements the business rules of the platform: the
// course permission policies, identity resolution and the duplicate checks
// in front of mutations.
package services

import (
	"context"
	"fmt"

	"github.com/lessonhub/backend/internal/apperrors"
	"github.com/lessonhub/backend/internal/models"
)

// UserRepository defines methods for user data access
type UserRepository interface {
	// Create inserts a new user and sets its ID
	Create(ctx context.Context, user *models.User) error
	// ExistsByEmail checks if a user with the given email exists
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// GetByUID retrieves a user by identity token
	GetByUID(ctx context.Context, uid string) (*models.User, error)
	// GetByID retrieves a user by internal ID
	GetByID(ctx context.Context, id int) (*models.User, error)
	// UpdateProfilePic sets the profile picture URL for a user
	UpdateProfilePic(ctx context.Context, uid, url string) error
}

// UserService handles registration and profile operations
type UserService struct {
	users UserRepository
}

// NewUserService creates a new user service
func NewUserService(users UserRepository) *UserService {
	return &UserService{
		users: users,
	}
}

// Register creates a new user account. Duplicate emails are rejected with
// a conflict; the unique key on the email column backstops the pre-check.
func (s *UserService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	exists, err := s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("a user with that email %w", apperrors.ErrDuplicate)
	}

	user := &models.User{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		IdentityUID: req.IdentityUID,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// GetByUID retrieves a user by identity token
func (s *UserService) GetByUID(ctx context.Context, uid string) (*models.User, error) {
	return s.users.GetByUID(ctx, uid)
}

// GetByID retrieves a user by internal ID
func (s *UserService) GetByID(ctx context.Context, id int) (*models.User, error) {
	return s.users.GetByID(ctx, id)
}

// UpdateProfilePic sets the profile picture URL for a user
func (s *UserService) UpdateProfilePic(ctx context.Context, req *models.UpdateProfilePicRequest) error {
	return s.users.UpdateProfilePic(ctx, req.IdentityUID, req.ProfilePicURL)
}
