package services

import (
	"context"

	"github.com/lessonhub/backend/internal/models"
)

// DashboardLessonRepository defines the lesson listings the dashboard needs
type DashboardLessonRepository interface {
	// GetByAuthor retrieves lessons created by a user, newest first
	GetByAuthor(ctx context.Context, userID int) ([]models.LessonWithAuthor, error)
	// GetLiked retrieves lessons a user has liked
	GetLiked(ctx context.Context, userID int) ([]models.LessonWithAuthor, error)
	// GetSharedWith retrieves lessons shared with a recipient email
	GetSharedWith(ctx context.Context, email string) ([]models.LessonWithAuthor, error)
	// GetRecentlyViewed retrieves the lessons a user viewed most recently
	GetRecentlyViewed(ctx context.Context, userID int) ([]models.LessonWithAuthor, error)
}

// DashboardCourseRepository defines the course listings the dashboard needs
type DashboardCourseRepository interface {
	// GetByOwner retrieves courses created by a user
	GetByOwner(ctx context.Context, ownerID int) ([]models.CourseSummary, error)
	// GetEnrolled retrieves courses a user is a member of
	GetEnrolled(ctx context.Context, userID int) ([]models.CourseSummary, error)
}

// DashboardService serves the per-user lesson and course dashboards
type DashboardService struct {
	lessons  DashboardLessonRepository
	courses  DashboardCourseRepository
	identity IdentityResolver
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	lessons DashboardLessonRepository,
	courses DashboardCourseRepository,
	identity IdentityResolver,
) *DashboardService {
	return &DashboardService{
		lessons:  lessons,
		courses:  courses,
		identity: identity,
	}
}

// LessonsByMe retrieves lessons authored by the acting user
func (s *DashboardService) LessonsByMe(ctx context.Context, uid string) ([]models.LessonWithAuthor, error) {
	userID, err := s.identity.GetIDByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	return s.lessons.GetByAuthor(ctx, userID)
}

// LikedLessons retrieves lessons the acting user has liked
func (s *DashboardService) LikedLessons(ctx context.Context, uid string) ([]models.LessonWithAuthor, error) {
	userID, err := s.identity.GetIDByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	return s.lessons.GetLiked(ctx, userID)
}

// SharedWithMe retrieves lessons shared with the given email
func (s *DashboardService) SharedWithMe(ctx context.Context, email string) ([]models.LessonWithAuthor, error) {
	return s.lessons.GetSharedWith(ctx, email)
}

// RecentlyViewed retrieves the lessons the acting user viewed most recently
func (s *DashboardService) RecentlyViewed(ctx context.Context, uid string) ([]models.LessonWithAuthor, error) {
	userID, err := s.identity.GetIDByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	return s.lessons.GetRecentlyViewed(ctx, userID)
}

// CoursesByMe retrieves courses owned by the acting user
func (s *DashboardService) CoursesByMe(ctx context.Context, uid string) ([]models.CourseSummary, error) {
	userID, err := s.identity.GetIDByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	return s.courses.GetByOwner(ctx, userID)
}

// EnrolledCourses retrieves courses the acting user is a member of
func (s *DashboardService) EnrolledCourses(ctx context.Context, uid string) ([]models.CourseSummary, error) {
	userID, err := s.identity.GetIDByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	return s.courses.GetEnrolled(ctx, userID)
}
