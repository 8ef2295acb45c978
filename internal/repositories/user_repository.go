package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lessonhub/backend/internal/apperrors"
	"github.com/lessonhub/backend/internal/models"
)

type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) *userRepository {
	return &userRepository{
		db: db,
	}
}

// Create inserts a new user and sets its ID
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (first_name, last_name, email, identity_uid)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		user.FirstName,
		user.LastName,
		user.Email,
		user.IdentityUID,
	)
	if err != nil {
		if isDuplicateEntry(err) {
			return fmt.Errorf("user %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	user.ID = int(id)
	return nil
}

// ExistsByEmail checks if a user with the given email exists
func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	query := "SELECT EXISTS(SELECT 1 FROM users WHERE email = ?)"
	var exists bool
	err := r.db.QueryRowContext(ctx, query, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return exists, nil
}

// GetByUID retrieves a user by identity token
func (r *userRepository) GetByUID(ctx context.Context, uid string) (*models.User, error) {
	query := `
		SELECT id, identity_uid, first_name, last_name, email, COALESCE(profile_pic_url, '')
		FROM users
		WHERE identity_uid = ?
		LIMIT 1
	`
	return r.scanUser(r.db.QueryRowContext(ctx, query, uid))
}

// GetByID retrieves a user by internal ID
func (r *userRepository) GetByID(ctx context.Context, id int) (*models.User, error) {
	query := `
		SELECT id, identity_uid, first_name, last_name, email, COALESCE(profile_pic_url, '')
		FROM users
		WHERE id = ?
		LIMIT 1
	`
	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *userRepository) scanUser(row *sql.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.IdentityUID,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.ProfilePicURL,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("user %w", apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// GetIDByUID resolves an identity token to the internal user ID
func (r *userRepository) GetIDByUID(ctx context.Context, uid string) (int, error) {
	query := "SELECT id FROM users WHERE identity_uid = ? LIMIT 1"

	var id int
	err := r.db.QueryRowContext(ctx, query, uid).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, fmt.Errorf("user %w", apperrors.ErrNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to resolve user id: %w", err)
	}

	return id, nil
}

// GetIDByEmail resolves an email address to the internal user ID
func (r *userRepository) GetIDByEmail(ctx context.Context, email string) (int, error) {
	query := "SELECT id FROM users WHERE email = ? LIMIT 1"

	var id int
	err := r.db.QueryRowContext(ctx, query, email).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, fmt.Errorf("user %w", apperrors.ErrNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to resolve user id by email: %w", err)
	}

	return id, nil
}

// UpdateProfilePic sets the profile picture URL for a user
func (r *userRepository) UpdateProfilePic(ctx context.Context, uid, url string) error {
	query := "UPDATE users SET profile_pic_url = ? WHERE identity_uid = ?"

	// MySQL reports zero affected rows when the URL is unchanged, so the
	// row count cannot distinguish a missing user from a no-op update.
	_, err := r.db.ExecContext(ctx, query, url, uid)
	if err != nil {
		return fmt.Errorf("failed to update profile picture: %w", err)
	}

	return nil
}
