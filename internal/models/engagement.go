package models

// LikeAction selects the behavior of the like endpoint
type LikeAction string

const (
	LikeActionAdd    LikeAction = "add"
	LikeActionRemove LikeAction = "remove"
	LikeActionCheck  LikeAction = "check"
)

// LikeRequest represents an add/remove/check action on a (user, lesson) pair
type LikeRequest struct {
	Action   LikeAction `json:"action" validate:"required"`
	UserID   string     `json:"user_id" validate:"required"`
	LessonID int        `json:"lesson_id" validate:"required"`
}

// ShareRequest shares a lesson with a recipient by email
type ShareRequest struct {
	LessonID       int    `json:"lesson_id" validate:"required"`
	SenderID       string `json:"sender_id" validate:"required"`
	RecipientEmail string `json:"recipient_email" validate:"required,email"`
}

// UserIDRequest identifies the acting user by identity token
type UserIDRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

// EmailRequest identifies a user by email
type EmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}
