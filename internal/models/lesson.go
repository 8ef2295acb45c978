package models

import "time"

// Lesson represents an authored lesson
type Lesson struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Citation    string    `json:"citation"`
	IsPublic    bool      `json:"is_public"`
	ViewCount   int       `json:"view_count"`
	UserID      int       `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// LessonSection is an ordered block of lesson content
type LessonSection struct {
	ID       int    `json:"id"`
	LessonID int    `json:"lesson_id"`
	Title    string `json:"title"`
	Body     string `json:"body"`
}

// PracticeQuestion is a four-option practice question attached to a lesson
type PracticeQuestion struct {
	ID       int    `json:"id"`
	LessonID int    `json:"lesson_id"`
	Question string `json:"question"`
	OptionA  string `json:"option_a"`
	OptionB  string `json:"option_b"`
	OptionC  string `json:"option_c"`
	OptionD  string `json:"option_d"`
	Answer   string `json:"answer"`
}

// LessonWithAuthor is a lesson row joined with its author's display name.
// Used by search, dashboard and explore listings.
type LessonWithAuthor struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Citation    string    `json:"citation"`
	IsPublic    bool      `json:"is_public,omitempty"`
	ViewCount   int       `json:"view_count"`
	UserID      int       `json:"user_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	AuthorName  string    `json:"name"`
	LikeCount   int       `json:"like_count,omitempty"`
	SenderEmail string    `json:"sender_email,omitempty"`
}

// CreateLessonRequest represents a request to create a lesson
type CreateLessonRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Citation    string `json:"citation"`
	IsPublic    bool   `json:"is_public"`
	UserID      string `json:"user_id" validate:"required"`
}

// CreateSectionRequest represents a request to add a section to a lesson
type CreateSectionRequest struct {
	LessonID int    `json:"lessonId" validate:"required"`
	Title    string `json:"title" validate:"required"`
	Body     string `json:"body" validate:"required"`
}

// CreateQuestionRequest represents a request to add a practice question to a lesson
type CreateQuestionRequest struct {
	LessonID int    `json:"lessonId" validate:"required"`
	Question string `json:"question" validate:"required"`
	OptionA  string `json:"option_a" validate:"required"`
	OptionB  string `json:"option_b" validate:"required"`
	OptionC  string `json:"option_c" validate:"required"`
	OptionD  string `json:"option_d" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
}

// UpdateLessonRequest represents a request to update lesson details
type UpdateLessonRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	IsPublic    bool   `json:"is_public"`
}

// UpdateSectionRequest represents a request to update a lesson section
type UpdateSectionRequest struct {
	Title string `json:"title" validate:"required"`
	Body  string `json:"body" validate:"required"`
}

// UpdateQuestionRequest represents a request to update a practice question
type UpdateQuestionRequest struct {
	Question string `json:"question" validate:"required"`
	OptionA  string `json:"option_a" validate:"required"`
	OptionB  string `json:"option_b" validate:"required"`
	OptionC  string `json:"option_c" validate:"required"`
	OptionD  string `json:"option_d" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
}

// LessonIDRequest identifies a lesson in a request body
type LessonIDRequest struct {
	LessonID int `json:"lesson_id" validate:"required"`
}

// SearchLessonsRequest carries substring filters for the lesson search.
// An empty field matches everything.
type SearchLessonsRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Citation    string `json:"citation"`
	Name        string `json:"name"`
}

// RecordViewRequest carries the viewer for a view-recording call. The
// viewer identity token may be empty for anonymous viewers.
type RecordViewRequest struct {
	ViewerID string `json:"viewer_id"`
}
