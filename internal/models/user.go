package models

// User represents a registered platform user
type User struct {
	ID            int    `json:"id"`
	IdentityUID   string `json:"identity_uid"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Email         string `json:"email"`
	ProfilePicURL string `json:"profile_pic_url"`
}

// RegisterRequest represents a request to register a new user
type RegisterRequest struct {
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	IdentityUID string `json:"identity_uid" validate:"required"`
}

// UpdateProfilePicRequest represents a request to update a user's profile picture
type UpdateProfilePicRequest struct {
	IdentityUID   string `json:"identity_uid" validate:"required"`
	ProfilePicURL string `json:"profile_pic_url" validate:"required"`
}
