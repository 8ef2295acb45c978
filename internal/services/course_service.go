package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lessonhub/backend/internal/apperrors"
	"github.com/lessonhub/backend/internal/models"
)

// UserDirectory resolves users by identity token or email
type UserDirectory interface {
	IdentityResolver
	GetIDByEmail(ctx context.Context, email string) (int, error)
}

// CourseRepository defines methods for course data access
type CourseRepository interface {
	// CreateWithSubjects inserts a course and its subject rows atomically
	CreateWithSubjects(ctx context.Context, course *models.Course, subjects []string) error
	// GetInfo retrieves a course joined with its owner's details
	GetInfo(ctx context.Context, id int) (*models.CourseInfo, error)
	// GetOwnerID returns the owner of a course
	GetOwnerID(ctx context.Context, id int) (int, error)
	// IsOwnerOrAdmin checks the owner-or-admin permission with a single read
	IsOwnerOrAdmin(ctx context.Context, courseID, userID int) (bool, error)
	// Search retrieves public courses matching the substring filters
	Search(ctx context.Context, f *models.SearchCoursesRequest) ([]models.CourseSummary, error)
}

// CourseLessonRepository defines methods for course-lesson link data access
type CourseLessonRepository interface {
	Add(ctx context.Context, courseID, lessonID int) error
	Remove(ctx context.Context, courseID, lessonID int) error
	ListByCourse(ctx context.Context, courseID int) ([]models.CourseLessonItem, error)
}

// MembershipRepository defines methods for course roster data access
type MembershipRepository interface {
	Add(ctx context.Context, courseID, userID int) error
	Remove(ctx context.Context, courseID, userID int) error
	IsMember(ctx context.Context, courseID, userID int) (bool, error)
	ListByCourse(ctx context.Context, courseID int) ([]models.ClasslistEntry, error)
}

// AdminRepository defines methods for course administrator data access
type AdminRepository interface {
	Add(ctx context.Context, courseID, adminID int) error
	Remove(ctx context.Context, courseID, adminID int) error
	Exists(ctx context.Context, courseID, adminID int) (bool, error)
	ListByCourse(ctx context.Context, courseID int) ([]models.CourseAdmin, error)
}

// MessageRepository defines methods for course message data access
type MessageRepository interface {
	Create(ctx context.Context, courseID, userID int, content string) error
	ListByCourse(ctx context.Context, courseID int) ([]models.CourseMessage, error)
}

// CourseService handles course administration. Two permission policies
// coexist and must stay distinct: owner-or-admin gates lesson linkage and
// member removal, owner-only gates the administrator list itself.
type CourseService struct {
	courses       CourseRepository
	courseLessons CourseLessonRepository
	members       MembershipRepository
	admins        AdminRepository
	messages      MessageRepository
	users         UserDirectory
}

// NewCourseService creates a new course service
func NewCourseService(
	courses CourseRepository,
	courseLessons CourseLessonRepository,
	members MembershipRepository,
	admins AdminRepository,
	messages MessageRepository,
	users UserDirectory,
) *CourseService {
	return &CourseService{
		courses:       courses,
		courseLessons: courseLessons,
		members:       members,
		admins:        admins,
		messages:      messages,
		users:         users,
	}
}

// resolveActor resolves the acting user's identity token for a permission
// check. An unknown token is a failed permission check, not a missing
// resource.
func (s *CourseService) resolveActor(ctx context.Context, uid string) (int, error) {
	id, err := s.users.GetIDByUID(ctx, uid)
	if errors.Is(err, apperrors.ErrNotFound) {
		return 0, fmt.Errorf("%w: unknown user", apperrors.ErrForbidden)
	}
	if err != nil {
		return 0, err
	}
	return id, nil
}

// requireOwnerOrAdmin enforces the owner-or-admin policy for a course
func (s *CourseService) requireOwnerOrAdmin(ctx context.Context, courseID int, uid string) error {
	actorID, err := s.resolveActor(ctx, uid)
	if err != nil {
		return err
	}

	allowed, err := s.courses.IsOwnerOrAdmin(ctx, courseID, actorID)
	if err != nil {
		return err
	}
	if !allowed {
		return fmt.Errorf("%w: user is not the owner or an administrator of the course", apperrors.ErrForbidden)
	}

	return nil
}

// requireOwner enforces the owner-only policy for a course and returns the
// acting user's ID. A missing course is a distinct not-found outcome.
func (s *CourseService) requireOwner(ctx context.Context, courseID int, uid string) (int, error) {
	ownerID, err := s.courses.GetOwnerID(ctx, courseID)
	if err != nil {
		return 0, err
	}

	actorID, err := s.resolveActor(ctx, uid)
	if err != nil {
		return 0, err
	}
	if actorID != ownerID {
		return 0, fmt.Errorf("%w: user is not the course owner", apperrors.ErrForbidden)
	}

	return actorID, nil
}

// CreateCourse creates a course with its subjects and returns the course
// ID. Subjects arrive comma-separated from the client.
func (s *CourseService) CreateCourse(ctx context.Context, req *models.CreateCourseRequest) (int, error) {
	ownerID, err := s.users.GetIDByUID(ctx, req.UserID)
	if err != nil {
		return 0, err
	}

	var subjects []string
	for _, subject := range strings.Split(req.Subjects, ",") {
		if subject = strings.TrimSpace(subject); subject != "" {
			subjects = append(subjects, subject)
		}
	}

	course := &models.Course{
		CourseName:  req.CourseName,
		Description: req.Description,
		IsPublic:    req.IsPublic,
		MaxUsers:    req.MaxUsers,
		OwnerID:     ownerID,
	}
	if err := s.courses.CreateWithSubjects(ctx, course, subjects); err != nil {
		return 0, err
	}

	return course.ID, nil
}

// GetInfo retrieves a course with its owner's details
func (s *CourseService) GetInfo(ctx context.Context, courseID int) (*models.CourseInfo, error) {
	return s.courses.GetInfo(ctx, courseID)
}

// FetchLessons retrieves the lessons linked to a course
func (s *CourseService) FetchLessons(ctx context.Context, courseID int) ([]models.CourseLessonItem, error) {
	return s.courseLessons.ListByCourse(ctx, courseID)
}

// AddLesson links a lesson to a course. Owner-or-admin policy.
func (s *CourseService) AddLesson(ctx context.Context, req *models.CourseLessonRequest) error {
	if err := s.requireOwnerOrAdmin(ctx, req.CourseID, req.CurrentID); err != nil {
		return err
	}
	return s.courseLessons.Add(ctx, req.CourseID, req.LessonID)
}

// RemoveLesson unlinks a lesson from a course. Owner-or-admin policy; a
// link that does not exist is a not-found outcome.
func (s *CourseService) RemoveLesson(ctx context.Context, req *models.CourseLessonRequest) error {
	if err := s.requireOwnerOrAdmin(ctx, req.CourseID, req.CurrentID); err != nil {
		return err
	}
	return s.courseLessons.Remove(ctx, req.CourseID, req.LessonID)
}

// Classlist retrieves the roster of a course
func (s *CourseService) Classlist(ctx context.Context, courseID int) ([]models.ClasslistEntry, error) {
	return s.members.ListByCourse(ctx, courseID)
}

// Join enrolls the acting user into a course roster. The owner cannot also
// be a plain member; a missing course is not-found, distinct from the
// forbidden outcome.
func (s *CourseService) Join(ctx context.Context, req *models.JoinCourseRequest) error {
	ownerID, err := s.courses.GetOwnerID(ctx, req.CourseID)
	if err != nil {
		return err
	}

	userID, err := s.users.GetIDByUID(ctx, req.CurrentID)
	if err != nil {
		return err
	}
	if userID == ownerID {
		return fmt.Errorf("%w: course owner cannot join their own course", apperrors.ErrForbidden)
	}

	return s.members.Add(ctx, req.CourseID, userID)
}

// Leave removes the acting user from a course roster
func (s *CourseService) Leave(ctx context.Context, req *models.JoinCourseRequest) error {
	userID, err := s.users.GetIDByUID(ctx, req.CurrentID)
	if err != nil {
		return err
	}
	return s.members.Remove(ctx, req.CourseID, userID)
}

// RemoveMember removes a member from a course roster. Owner-or-admin
// policy.
func (s *CourseService) RemoveMember(ctx context.Context, req *models.RemoveMemberRequest) error {
	if err := s.requireOwnerOrAdmin(ctx, req.CourseID, req.CurrentID); err != nil {
		return err
	}

	targetID, err := s.users.GetIDByUID(ctx, req.UserID)
	if err != nil {
		return err
	}

	return s.members.Remove(ctx, req.CourseID, targetID)
}

// Messages retrieves the message board of a course
func (s *CourseService) Messages(ctx context.Context, courseID int) ([]models.CourseMessage, error) {
	return s.messages.ListByCourse(ctx, courseID)
}

// AddMessage posts a message to a course board. The body is validated
// before any query; a non-member author is rejected with the
// course-membership outcome, distinct from forbidden.
func (s *CourseService) AddMessage(ctx context.Context, req *models.AddMessageRequest) error {
	if strings.TrimSpace(req.MessageContent) == "" {
		return fmt.Errorf("%w: no message content", apperrors.ErrValidation)
	}

	userID, err := s.users.GetIDByUID(ctx, req.UserID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return apperrors.ErrNotCourseMember
	}
	if err != nil {
		return err
	}

	isMember, err := s.members.IsMember(ctx, req.CourseID, userID)
	if err != nil {
		return err
	}
	if !isMember {
		return apperrors.ErrNotCourseMember
	}

	return s.messages.Create(ctx, req.CourseID, userID, req.MessageContent)
}

// Admins retrieves the administrators of a course. An empty list is a
// not-found outcome, matching the client contract.
func (s *CourseService) Admins(ctx context.Context, courseID int) ([]models.CourseAdmin, error) {
	admins, err := s.admins.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if len(admins) == 0 {
		return nil, fmt.Errorf("course administrators %w", apperrors.ErrNotFound)
	}
	return admins, nil
}

// AddAdmin grants course administration to the user with the given email.
// Owner-only policy; an unknown email is not-found and an existing
// administrator is a conflict. The unique key on the pair backstops the
// check under concurrency.
func (s *CourseService) AddAdmin(ctx context.Context, req *models.AddAdminRequest) error {
	if _, err := s.requireOwner(ctx, req.CourseID, req.CurrentID); err != nil {
		return err
	}

	adminID, err := s.users.GetIDByEmail(ctx, req.NewAdminEmail)
	if err != nil {
		return err
	}

	exists, err := s.admins.Exists(ctx, req.CourseID, adminID)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("administrator %w for this course", apperrors.ErrDuplicate)
	}

	return s.admins.Add(ctx, req.CourseID, adminID)
}

// RemoveAdmin revokes course administration. Owner-only policy.
func (s *CourseService) RemoveAdmin(ctx context.Context, req *models.DeleteAdminRequest) error {
	if _, err := s.requireOwner(ctx, req.CourseID, req.CurrentID); err != nil {
		return err
	}
	return s.admins.Remove(ctx, req.CourseID, req.AdminID)
}

// Search retrieves public courses matching the substring filters
func (s *CourseService) Search(ctx context.Context, f *models.SearchCoursesRequest) ([]models.CourseSummary, error) {
	return s.courses.Search(ctx, f)
}
