package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/lessonhub/backend/internal/models"
	"go.uber.org/zap"
)

// LessonService is the interface that wraps methods for lesson authoring,
// reading and view recording.
type LessonService interface {
	// CreateLesson creates a new lesson and returns its ID
	CreateLesson(ctx context.Context, req *models.CreateLessonRequest) (int, error)
	// CreateSection adds a section to a lesson and returns its ID
	CreateSection(ctx context.Context, req *models.CreateSectionRequest) (int, error)
	// CreateQuestion adds a practice question to a lesson and returns its ID
	CreateQuestion(ctx context.Context, req *models.CreateQuestionRequest) (int, error)
	// GetLesson retrieves a lesson by ID
	GetLesson(ctx context.Context, id int) (*models.Lesson, error)
	// GetSections retrieves the sections of a lesson
	GetSections(ctx context.Context, lessonID int) ([]models.LessonSection, error)
	// GetQuestions retrieves the practice questions of a lesson
	GetQuestions(ctx context.Context, lessonID int) ([]models.PracticeQuestion, error)
	// UpdateLesson updates a lesson's editable details
	UpdateLesson(ctx context.Context, id int, req *models.UpdateLessonRequest) error
	// UpdateSection updates a lesson section
	UpdateSection(ctx context.Context, id int, req *models.UpdateSectionRequest) error
	// UpdateQuestion updates a practice question
	UpdateQuestion(ctx context.Context, id int, req *models.UpdateQuestionRequest) error
	// Search retrieves public lessons matching the substring filters
	Search(ctx context.Context, f *models.SearchLessonsRequest) ([]models.LessonWithAuthor, error)
	// RecordView increments the lesson view counter and logs the viewer
	RecordView(ctx context.Context, lessonID int, viewerUID string) error
}

// LessonHandler handles HTTP requests for lesson operations
type LessonHandler struct {
	BaseHandler
	service LessonService
}

// NewLessonHandler creates a new lesson handler
func NewLessonHandler(svc LessonService, logger *zap.Logger) *LessonHandler {
	return &LessonHandler{
		service:     svc,
		BaseHandler: BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers all lesson handler routes
func (h *LessonHandler) RegisterRoutes(r chi.Router) {
	r.Post("/createLesson", h.CreateLesson)
	r.Post("/createLessonSection", h.CreateSection)
	r.Post("/createLessonPracticeQuestion", h.CreateQuestion)
	r.Post("/lesson", h.GetLesson)
	r.Post("/lessonSections", h.GetSections)
	r.Post("/lessonPracticeQuestions", h.GetQuestions)
	r.Post("/searchLessons", h.Search)
	r.Post("/lessons/{id}/view", h.RecordView)
	r.Put("/lessons/{id}", h.UpdateLesson)
	r.Put("/lesson-sections/{id}", h.UpdateSection)
	r.Put("/lesson-practice-questions/{id}", h.UpdateQuestion)
}

func (h *LessonHandler) pathID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	return id, err == nil
}

// CreateLesson handles POST /createLesson
// @Summary Create a lesson
// @Tags lessons
// @Accept json
// @Produce json
// @Param request body models.CreateLessonRequest true "Lesson creation request"
// @Success 201 {object} map[string]int "ID of the created lesson"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 404 {object} map[string]string "Author not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /createLesson [post]
func (h *LessonHandler) CreateLesson(w http.ResponseWriter, r *http.Request) {
	var req models.CreateLessonRequest
	if err := h.DecodeAndValidate(r, &req); err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := h.service.CreateLesson(r.Context(), &req)
	if err != nil {
		h.RespondServiceError(w, err, "failed to create lesson")
		return
	}

	h.RespondJSON(w, http.StatusCreated, map[string]int{"id": id})
}

// CreateSection handles POST /createLessonSection
// @Summary Add a section to a lesson
// @Tags lessons
// @Accept json
// @Produce json
// @Param request body models.CreateSectionRequest true "Section creation request"
// @Success 201 {object} map[string]int "ID of the created section"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /createLessonSection [post]
func (h *LessonHandler) CreateSection(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSectionRequest
	if err := h.DecodeAndValidate(r, &req); err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := h.service.CreateSection(r.Context(), &req)
	if err != nil {
		h.RespondServiceError(w, err, "failed to create lesson section")
		return
	}

	h.RespondJSON(w, http.StatusCreated, map[string]int{"id": id})
}

// CreateQuestion handles POST /createLessonPracticeQuestion
// @Summary Add a practice question to a lesson
// @Tags lessons
// @Accept json
// @Produce json
// @Param request body models.CreateQuestionRequest true "Question creation request"
// @Success 201 {object} map[string]int "ID of the created question"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /createLessonPracticeQuestion [post]
func (h *LessonHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req models.CreateQuestionRequest
	if err := h.DecodeAndValidate(r, &req); err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := h.service.CreateQuestion(r.Context(), &req)
	if err != nil {
		h.RespondServiceError(w, err, "failed to create practice question")
		return
	}

	h.RespondJSON(w, http.StatusCreated, map[string]int{"id": id})
}

// GetLesson handles POST /lesson
// @Summary Get a lesson
// @Tags lessons
// @Accept json
// @Produce json
// @Param request body models.LessonIDRequest true "Lesson ID"
// @Success 200 {object} map[string]models.Lesson "Lesson"
// @Failure 404 {object} map[string]string "Lesson not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /lesson [post]
func (h *LessonHandler) GetLesson(w http.ResponseWriter, r *http.Request) {
	var req models.LessonIDRequest
	if err := h.DecodeAndValidate(r, &req); err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	lesson, err := h.service.GetLesson(r.Context(), req.LessonID)
	if err != nil {
		h.RespondServiceError(w, err, "failed to get lesson")
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]*models.Lesson{"lesson": lesson})
}

// GetSections handles POST /lessonSections
// @Summary Get the sections of a lesson
// @Tags lessons
// @Accept json
// @Produce json
// @Param request body models.LessonIDRequest true "Lesson ID"
// @Success 200 {object} map[string][]models.LessonSection "Sections ordered by ID"
// @Failure 404 {object} map[string]string "No sections found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /lessonSections [post]
func (h *LessonHandler) GetSections(w http.ResponseWriter, r *http.Request) {
	var req models.LessonIDRequest
	if err := h.DecodeAndValidate(r, &req); err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	sections, err := h.service.GetSections(r.Context(), req.LessonID)
	if err != nil {
		h.RespondServiceError(w, err, "failed to get lesson sections")
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string][]models.LessonSection{"sections": sections})
}

// GetQuestions handles POST /lessonPracticeQuestions
// @Summary Get the practice questions of a lesson
// @Tags lessons
// @Accept json
// @Produce json
// @Param request body models.LessonIDRequest true "Lesson ID"
// @Success 200 {object} map[string][]models.PracticeQuestion "Practice questions"
// @Failure 404 {object} map[string]string "No questions found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /lessonPracticeQuestions [post]
func (h *LessonHandler) GetQuestions(w http.ResponseWriter, r *http.Request) {
	var req models.LessonIDRequest
	if err := h.DecodeAndValidate(r, &req); err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	questions, err := h.service.GetQuestions(r.Context(), req.LessonID)
	if err != nil {
		h.RespondServiceError(w, err, "failed to get practice questions")
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string][]models.PracticeQuestion{"questions": questions})
}

// Search handles POST /searchLessons
// @Summary Search public lessons
// @Description Substring filters; an empty field matches everything.
// @Tags lessons
// @Accept json
// @Produce json
// @Param request body models.SearchLessonsRequest true "Search filters"
// @Success 200 {object} map[string][]models.LessonWithAuthor "Matching lessons"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /searchLessons [post]
func (h *LessonHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req models.SearchLessonsRequest
	if err := h.DecodeAndValidate(r, &req); err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	lessons, err := h.service.Search(r.Context(), &req)
	if err != nil {
		h.RespondServiceError(w, err, "failed to search lessons")
		return
	}
	if lessons == nil {
		lessons = []models.LessonWithAuthor{}
	}

	h.RespondJSON(w, http.StatusOK, map[string][]models.LessonWithAuthor{"lessons": lessons})
}

// RecordView handles POST /lessons/{id}/view
// @Summary Record a lesson view
// @Description Increments the view counter; logs a view row when the viewer token is non-empty.
// @Tags lessons
// @Accept json
// @Param id path int true "Lesson ID"
// @Param request body models.RecordViewRequest true "Viewer"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Lesson or viewer not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /lessons/{id}/view [post]
func (h *LessonHandler) RecordView(w http.ResponseWriter, r *http.Request) {
	lessonID, ok := h.pathID(r)
	if !ok {
		h.RespondError(w, http.StatusBadRequest, "invalid lesson ID")
		return
	}

	var req models.RecordViewRequest
	if err := h.DecodeAndValidate(r, &req); err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.RecordView(r.Context(), lessonID, req.ViewerID); err != nil {
		h.RespondServiceError(w, err, "failed to record view")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UpdateLesson handles PUT /lessons/{id}
// @Summary Update a lesson
// @Tags lessons
// @Accept json
// @Param id path int true "Lesson ID"
// @Param request body models.UpdateLessonRequest true "Lesson update request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /lessons/{id} [put]
func (h *LessonHandler) UpdateLesson(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(r)
	if !ok {
		h.RespondError(w, http.StatusBadRequest, "invalid lesson ID")
		return
	}

	var req models.UpdateLessonRequest
	if err := h.DecodeAndValidate(r, &req); err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.UpdateLesson(r.Context(), id, &req); err != nil {
		h.RespondServiceError(w, err, "failed to update lesson")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UpdateSection handles PUT /lesson-sections/{id}
// @Summary Update a lesson section
// @Tags lessons
// @Accept json
// @Param id path int true "Section ID"
// @Param request body models.UpdateSectionRequest true "Section update request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /lesson-sections/{id} [put]
func (h *LessonHandler) UpdateSection(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(r)
	if !ok {
		h.RespondError(w, http.StatusBadRequest, "invalid section ID")
		return
	}

	var req models.UpdateSectionRequest
	if err := h.DecodeAndValidate(r, &req); err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.UpdateSection(r.Context(), id, &req); err != nil {
		h.RespondServiceError(w, err, "failed to update lesson section")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UpdateQuestion handles PUT /lesson-practice-questions/{id}
// @Summary Update a practice question
// @Tags lessons
// @Accept json
// @Param id path int true "Question ID"
// @Param request body models.UpdateQuestionRequest true "Question update request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /lesson-practice-questions/{id} [put]
func (h *LessonHandler) UpdateQuestion(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(r)
	if !ok {
		h.RespondError(w, http.StatusBadRequest, "invalid question ID")
		return
	}

	var req models.UpdateQuestionRequest
	if err := h.DecodeAndValidate(r, &req); err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.UpdateQuestion(r.Context(), id, &req); err != nil {
		h.RespondServiceError(w, err, "failed to update practice question")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
