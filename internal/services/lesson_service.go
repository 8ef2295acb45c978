package services

import (
	"context"
	"fmt"

	"github.com/lessonhub/backend/internal/apperrors"
	"github.com/lessonhub/backend/internal/models"
)

// exploreLimit caps the explore listings
const exploreLimit = 6

// IdentityResolver translates an externally issued identity token into the
// internal user ID. Every relation is keyed by the internal ID; the token
// only crosses the API boundary.
type IdentityResolver interface {
	GetIDByUID(ctx context.Context, uid string) (int, error)
}

// LessonRepository defines methods for lesson data access
type LessonRepository interface {
	// Create inserts a new lesson and sets its ID
	Create(ctx context.Context, lesson *models.Lesson) error
	// GetByID retrieves a lesson by ID
	GetByID(ctx context.Context, id int) (*models.Lesson, error)
	// Update updates a lesson's editable details
	Update(ctx context.Context, id int, title, description string, isPublic bool) error
	// RecordView increments the view counter and optionally logs a view row
	RecordView(ctx context.Context, lessonID int, viewerID *int) error
	// Search retrieves public lessons matching the substring filters
	Search(ctx context.Context, f *models.SearchLessonsRequest) ([]models.LessonWithAuthor, error)
	// GetMostLiked retrieves the lessons with the most likes
	GetMostLiked(ctx context.Context, limit int) ([]models.LessonWithAuthor, error)
	// GetMostViewed retrieves the lessons with the highest view counters
	GetMostViewed(ctx context.Context, limit int) ([]models.LessonWithAuthor, error)
}

// LessonSectionRepository defines methods for lesson section data access
type LessonSectionRepository interface {
	Create(ctx context.Context, section *models.LessonSection) error
	GetByLessonID(ctx context.Context, lessonID int) ([]models.LessonSection, error)
	Update(ctx context.Context, id int, title, body string) error
}

// PracticeQuestionRepository defines methods for practice question data access
type PracticeQuestionRepository interface {
	Create(ctx context.Context, q *models.PracticeQuestion) error
	GetByLessonID(ctx context.Context, lessonID int) ([]models.PracticeQuestion, error)
	Update(ctx context.Context, id int, q *models.UpdateQuestionRequest) error
}

// LessonService handles lesson authoring, reading and view recording
type LessonService struct {
	lessons   LessonRepository
	sections  LessonSectionRepository
	questions PracticeQuestionRepository
	identity  IdentityResolver
}

// NewLessonService creates a new lesson service
func NewLessonService(
	lessons LessonRepository,
	sections LessonSectionRepository,
	questions PracticeQuestionRepository,
	identity IdentityResolver,
) *LessonService {
	return &LessonService{
		lessons:   lessons,
		sections:  sections,
		questions: questions,
		identity:  identity,
	}
}

// CreateLesson creates a new lesson for the given author and returns its ID
func (s *LessonService) CreateLesson(ctx context.Context, req *models.CreateLessonRequest) (int, error) {
	authorID, err := s.identity.GetIDByUID(ctx, req.UserID)
	if err != nil {
		return 0, err
	}

	lesson := &models.Lesson{
		Title:       req.Title,
		Description: req.Description,
		Citation:    req.Citation,
		IsPublic:    req.IsPublic,
		UserID:      authorID,
	}
	if err := s.lessons.Create(ctx, lesson); err != nil {
		return 0, err
	}

	return lesson.ID, nil
}

// CreateSection adds a section to a lesson and returns its ID
func (s *LessonService) CreateSection(ctx context.Context, req *models.CreateSectionRequest) (int, error) {
	section := &models.LessonSection{
		LessonID: req.LessonID,
		Title:    req.Title,
		Body:     req.Body,
	}
	if err := s.sections.Create(ctx, section); err != nil {
		return 0, err
	}
	return section.ID, nil
}

// CreateQuestion adds a practice question to a lesson and returns its ID
func (s *LessonService) CreateQuestion(ctx context.Context, req *models.CreateQuestionRequest) (int, error) {
	question := &models.PracticeQuestion{
		LessonID: req.LessonID,
		Question: req.Question,
		OptionA:  req.OptionA,
		OptionB:  req.OptionB,
		OptionC:  req.OptionC,
		OptionD:  req.OptionD,
		Answer:   req.Answer,
	}
	if err := s.questions.Create(ctx, question); err != nil {
		return 0, err
	}
	return question.ID, nil
}

// GetLesson retrieves a lesson by ID
func (s *LessonService) GetLesson(ctx context.Context, id int) (*models.Lesson, error) {
	return s.lessons.GetByID(ctx, id)
}

// GetSections retrieves the sections of a lesson, ordered by ID
func (s *LessonService) GetSections(ctx context.Context, lessonID int) ([]models.LessonSection, error) {
	sections, err := s.sections.GetByLessonID(ctx, lessonID)
	if err != nil {
		return nil, err
	}
	if len(sections) == 0 {
		return nil, fmt.Errorf("lesson sections %w", apperrors.ErrNotFound)
	}
	return sections, nil
}

// GetQuestions retrieves the practice questions of a lesson
func (s *LessonService) GetQuestions(ctx context.Context, lessonID int) ([]models.PracticeQuestion, error) {
	questions, err := s.questions.GetByLessonID(ctx, lessonID)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("practice questions %w", apperrors.ErrNotFound)
	}
	return questions, nil
}

// UpdateLesson updates a lesson's editable details
func (s *LessonService) UpdateLesson(ctx context.Context, id int, req *models.UpdateLessonRequest) error {
	return s.lessons.Update(ctx, id, req.Title, req.Description, req.IsPublic)
}

// UpdateSection updates a lesson section
func (s *LessonService) UpdateSection(ctx context.Context, id int, req *models.UpdateSectionRequest) error {
	return s.sections.Update(ctx, id, req.Title, req.Body)
}

// UpdateQuestion updates a practice question
func (s *LessonService) UpdateQuestion(ctx context.Context, id int, req *models.UpdateQuestionRequest) error {
	return s.questions.Update(ctx, id, req)
}

// Search retrieves public lessons matching the substring filters
func (s *LessonService) Search(ctx context.Context, f *models.SearchLessonsRequest) ([]models.LessonWithAuthor, error) {
	return s.lessons.Search(ctx, f)
}

// RecordView increments the lesson view counter. An empty viewer token is
// an anonymous view: the counter still moves but no view row is logged.
func (s *LessonService) RecordView(ctx context.Context, lessonID int, viewerUID string) error {
	var viewerID *int
	if viewerUID != "" {
		id, err := s.identity.GetIDByUID(ctx, viewerUID)
		if err != nil {
			return err
		}
		viewerID = &id
	}

	return s.lessons.RecordView(ctx, lessonID, viewerID)
}

// MostLiked retrieves the most liked lessons for the explore page
func (s *LessonService) MostLiked(ctx context.Context) ([]models.LessonWithAuthor, error) {
	return s.lessons.GetMostLiked(ctx, exploreLimit)
}

// MostViewed retrieves the most viewed lessons for the explore page
func (s *LessonService) MostViewed(ctx context.Context) ([]models.LessonWithAuthor, error) {
	return s.lessons.GetMostViewed(ctx, exploreLimit)
}
