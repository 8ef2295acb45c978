package models

import "time"

// Course represents a course
type Course struct {
	ID          int    `json:"id"`
	CourseName  string `json:"course_name"`
	Description string `json:"description"`
	IsPublic    bool   `json:"is_public"`
	MaxUsers    int    `json:"max_users"`
	OwnerID     int    `json:"owner_id"`
}

// CourseInfo is a course joined with its owner's details
type CourseInfo struct {
	ID               int    `json:"id"`
	CourseName       string `json:"course_name"`
	Description      string `json:"description"`
	IsPublic         bool   `json:"is_public"`
	MaxUsers         int    `json:"max_users"`
	OwnerID          int    `json:"owner_id"`
	OwnerFirstName   string `json:"first_name"`
	OwnerLastName    string `json:"last_name"`
	OwnerEmail       string `json:"email"`
	OwnerIdentityUID string `json:"identity_uid"`
}

// CourseSummary is a course listing row with its subjects joined into a
// single comma-separated string and the owner's display name.
type CourseSummary struct {
	ID          int    `json:"id"`
	CourseName  string `json:"course_name"`
	Description string `json:"description"`
	Subjects    string `json:"subjects"`
	Instructor  string `json:"instructor"`
}

// CourseLessonItem is a lesson linked to a course, with the link date
type CourseLessonItem struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Citation    string    `json:"citation"`
	ViewCount   int       `json:"view_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	AuthorName  string    `json:"name"`
	DateAdded   time.Time `json:"date_added"`
}

// ClasslistEntry is a course roster row
type ClasslistEntry struct {
	UserID int    `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// CourseAdmin is a course administrator row
type CourseAdmin struct {
	AdminID   int    `json:"admin_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// CourseMessage is a message posted to a course board
type CourseMessage struct {
	MessageID      int       `json:"message_id"`
	UserID         int       `json:"user_id"`
	AuthorName     string    `json:"name"`
	Timestamp      time.Time `json:"timestamp"`
	MessageContent string    `json:"message_content"`
}

// CreateCourseRequest represents a request to create a course. Subjects is
// a comma-separated list, preserved from the client contract.
type CreateCourseRequest struct {
	CourseName  string `json:"courseName" validate:"required"`
	Description string `json:"description"`
	Subjects    string `json:"subjects" validate:"required"`
	IsPublic    bool   `json:"isPublic"`
	MaxUsers    int    `json:"maxUsers" validate:"required,min=1"`
	UserID      string `json:"user_id" validate:"required"`
}

// CourseIDRequest identifies a course in a request body
type CourseIDRequest struct {
	CourseID int `json:"course_id" validate:"required"`
}

// CourseLessonRequest links or unlinks a lesson to a course on behalf of
// the acting user.
type CourseLessonRequest struct {
	CourseID  int    `json:"course_id" validate:"required"`
	LessonID  int    `json:"lesson_id" validate:"required"`
	CurrentID string `json:"current_id" validate:"required"`
}

// JoinCourseRequest represents a request to join or leave a course roster
type JoinCourseRequest struct {
	CourseID  int    `json:"course_id" validate:"required"`
	CurrentID string `json:"current_id" validate:"required"`
}

// RemoveMemberRequest removes a member from a roster on behalf of the
// acting user.
type RemoveMemberRequest struct {
	CourseID  int    `json:"course_id" validate:"required"`
	CurrentID string `json:"current_id" validate:"required"`
	UserID    string `json:"user_id" validate:"required"`
}

// AddMessageRequest posts a message to a course board
type AddMessageRequest struct {
	CourseID       int    `json:"course_id" validate:"required"`
	UserID         string `json:"user_id" validate:"required"`
	MessageContent string `json:"message_content" validate:"required"`
}

// AddAdminRequest grants course administration to the user with the given
// email, on behalf of the course owner.
type AddAdminRequest struct {
	CourseID      int    `json:"course_id" validate:"required"`
	NewAdminEmail string `json:"newAdminEmail" validate:"required,email"`
	CurrentID     string `json:"current_id" validate:"required"`
}

// DeleteAdminRequest revokes course administration
type DeleteAdminRequest struct {
	CourseID  int    `json:"course_id" validate:"required"`
	AdminID   int    `json:"admin_id" validate:"required"`
	CurrentID string `json:"current_id" validate:"required"`
}

// SearchCoursesRequest carries substring filters for the course search.
// An empty field matches everything.
type SearchCoursesRequest struct {
	Course      string `json:"course"`
	Description string `json:"description"`
	Subject     string `json:"subject"`
	Instructor  string `json:"instructor"`
}
