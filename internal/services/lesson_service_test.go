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

// mockLessonRepository is a mock implementation of LessonRepository
type mockLessonRepository struct {
	lesson           *models.Lesson
	lessons          []models.LessonWithAuthor
	err              error
	createdID        int
	recordedLesson   int
	recordedViewer   *int
	recordViewCalled bool
	exploreLimit     int
}

func (m *mockLessonRepository) Create(ctx context.Context, lesson *models.Lesson) error {
	if m.err != nil {
		return m.err
	}
	m.lesson = lesson
	lesson.ID = m.createdID
	return nil
}

func (m *mockLessonRepository) GetByID(ctx context.Context, id int) (*models.Lesson, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.lesson, nil
}

func (m *mockLessonRepository) Update(ctx context.Context, id int, title, description string, isPublic bool) error {
	return m.err
}

func (m *mockLessonRepository) RecordView(ctx context.Context, lessonID int, viewerID *int) error {
	m.recordViewCalled = true
	m.recordedLesson = lessonID
	m.recordedViewer = viewerID
	return m.err
}

func (m *mockLessonRepository) Search(ctx context.Context, f *models.SearchLessonsRequest) ([]models.LessonWithAuthor, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.lessons, nil
}

func (m *mockLessonRepository) GetMostLiked(ctx context.Context, limit int) ([]models.LessonWithAuthor, error) {
	m.exploreLimit = limit
	if m.err != nil {
		return nil, m.err
	}
	return m.lessons, nil
}

func (m *mockLessonRepository) GetMostViewed(ctx context.Context, limit int) ([]models.LessonWithAuthor, error) {
	m.exploreLimit = limit
	if m.err != nil {
		return nil, m.err
	}
	return m.lessons, nil
}

// mockSectionRepository is a mock implementation of LessonSectionRepository
type mockSectionRepository struct {
	sections  []models.LessonSection
	err       error
	createdID int
}

func (m *mockSectionRepository) Create(ctx context.Context, section *models.LessonSection) error {
	if m.err != nil {
		return m.err
	}
	section.ID = m.createdID
	return nil
}

func (m *mockSectionRepository) GetByLessonID(ctx context.Context, lessonID int) ([]models.LessonSection, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.sections, nil
}

func (m *mockSectionRepository) Update(ctx context.Context, id int, title, body string) error {
	return m.err
}

// mockQuestionRepository is a mock implementation of PracticeQuestionRepository
type mockQuestionRepository struct {
	questions []models.PracticeQuestion
	err       error
	createdID int
}

func (m *mockQuestionRepository) Create(ctx context.Context, q *models.PracticeQuestion) error {
	if m.err != nil {
		return m.err
	}
	q.ID = m.createdID
	return nil
}

func (m *mockQuestionRepository) GetByLessonID(ctx context.Context, lessonID int) ([]models.PracticeQuestion, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.questions, nil
}

func (m *mockQuestionRepository) Update(ctx context.Context, id int, q *models.UpdateQuestionRequest) error {
	return m.err
}

func newLessonService(lessons *mockLessonRepository, sections *mockSectionRepository, questions *mockQuestionRepository, users *mockUserDirectory) *LessonService {
	if lessons == nil {
		lessons = &mockLessonRepository{}
	}
	if sections == nil {
		sections = &mockSectionRepository{}
	}
	if questions == nil {
		questions = &mockQuestionRepository{}
	}
	if users == nil {
		users = &mockUserDirectory{}
	}
	return NewLessonService(lessons, sections, questions, users)
}

func TestLessonService_CreateLesson(t *testing.T) {
	lessons := &mockLessonRepository{createdID: 11}
	users := &mockUserDirectory{ids: map[string]int{"uid-author": 3}}
	svc := newLessonService(lessons, nil, nil, users)

	id, err := svc.CreateLesson(context.Background(), &models.CreateLessonRequest{
		Title:    "Intro to Calculus",
		IsPublic: true,
		UserID:   "uid-author",
	})

	assert.NoError(t, err)
	assert.Equal(t, 11, id)
	require.NotNil(t, lessons.lesson)
	assert.Equal(t, 3, lessons.lesson.UserID)
}

func TestLessonService_CreateLesson_UnknownAuthor(t *testing.T) {
	svc := newLessonService(nil, nil, nil, &mockUserDirectory{ids: map[string]int{}})

	_, err := svc.CreateLesson(context.Background(), &models.CreateLessonRequest{
		Title:  "Intro to Calculus",
		UserID: "uid-missing",
	})

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestLessonService_GetSections(t *testing.T) {
	tests := []struct {
		name          string
		sections      []models.LessonSection
		expectedError error
	}{
		{
			name:     "sections found",
			sections: []models.LessonSection{{ID: 1, LessonID: 11, Title: "Limits", Body: "..."}},
		},
		{
			name:          "no sections is a not-found outcome",
			sections:      nil,
			expectedError: apperrors.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newLessonService(nil, &mockSectionRepository{sections: tt.sections}, nil, nil)

			sections, err := svc.GetSections(context.Background(), 11)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, sections)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.sections, sections)
			}
		})
	}
}

func TestLessonService_GetQuestions_EmptyIsNotFound(t *testing.T) {
	svc := newLessonService(nil, nil, &mockQuestionRepository{}, nil)

	questions, err := svc.GetQuestions(context.Background(), 11)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Nil(t, questions)
}

func TestLessonService_RecordView(t *testing.T) {
	tests := []struct {
		name           string
		viewerUID      string
		knownViewer    bool
		expectedViewer *int
		expectedError  error
	}{
		{
			name:           "known viewer is resolved and logged",
			viewerUID:      "uid-viewer",
			knownViewer:    true,
			expectedViewer: func() *int { id := 9; return &id }(),
		},
		{
			name:           "anonymous viewer still counts",
			viewerUID:      "",
			expectedViewer: nil,
		},
		{
			name:          "unknown viewer token fails",
			viewerUID:     "uid-missing",
			expectedError: apperrors.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids := map[string]int{}
			if tt.knownViewer {
				ids["uid-viewer"] = 9
			}
			lessons := &mockLessonRepository{}
			svc := newLessonService(lessons, nil, nil, &mockUserDirectory{ids: ids})

			err := svc.RecordView(context.Background(), 11, tt.viewerUID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.False(t, lessons.recordViewCalled)
				return
			}

			assert.NoError(t, err)
			assert.True(t, lessons.recordViewCalled)
			assert.Equal(t, 11, lessons.recordedLesson)
			if tt.expectedViewer == nil {
				assert.Nil(t, lessons.recordedViewer)
			} else {
				require.NotNil(t, lessons.recordedViewer)
				assert.Equal(t, *tt.expectedViewer, *lessons.recordedViewer)
			}
		})
	}
}

func TestLessonService_MostLiked_UsesExploreLimit(t *testing.T) {
	lessons := &mockLessonRepository{lessons: []models.LessonWithAuthor{{ID: 1}}}
	svc := newLessonService(lessons, nil, nil, nil)

	result, err := svc.MostLiked(context.Background())

	assert.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, exploreLimit, lessons.exploreLimit)
}

func TestLessonService_Search_ErrorPropagates(t *testing.T) {
	dbErr := errors.New("database error")
	svc := newLessonService(&mockLessonRepository{err: dbErr}, nil, nil, nil)

	_, err := svc.Search(context.Background(), &models.SearchLessonsRequest{Title: "Calculus"})

	assert.ErrorIs(t, err, dbErr)
}
