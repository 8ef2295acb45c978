package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/lessonhub/backend/internal/models"
	"go.uber.org/zap"
)

// DashboardService is the interface that wraps per-user dashboard listings
type DashboardService interface {
	LessonsByMe(ctx context.Context, uid string) ([]models.LessonWithAuthor, error)
	LikedLessons(ctx context.Context, uid string) ([]models.LessonWithAuthor, error)
	SharedWithMe(ctx context.Context, email string) ([]models.LessonWithAuthor, error)
	RecentlyViewed(ctx context.Context, uid string) ([]models.LessonWithAuthor, error)
	CoursesByMe(ctx context.Context, uid string) ([]models.CourseSummary, error)
	EnrolledCourses(ctx context.Context, uid string) ([]models.CourseSummary, error)
}

// DashboardHandler handles HTTP requests for the per-user dashboard listings.
// Every endpoint responds with a bare JSON array; an empty listing is an
// empty array, never null.
type DashboardHandler struct {
	BaseHandler
	service DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(svc DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		service:     svc,
		BaseHandler: BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers all dashboard handler routes
func (h *DashboardHandler) RegisterRoutes(r chi.Router) {
	r.Post("/lessons/byme", h.LessonsByMe)
	r.Post("/lessons/liked", h.LikedLessons)
	r.Post("/lessons/sharedwithme", h.SharedWithMe)
	r.Post("/lessons/recentlyviewed", h.RecentlyViewed)
	r.Post("/coursedash/byme", h.CoursesByMe)
	r.Post("/coursedash/enrolled", h.EnrolledCourses)
}

func (h *DashboardHandler) respondLessons(w http.ResponseWriter, lessons []models.LessonWithAuthor, err error, msg string) {
	if err != nil {
		h.RespondServiceError(w, err, msg)
		return
	}
	if lessons == nil {
		lessons = []models.LessonWithAuthor{}
	}
	h.RespondJSON(w, http.StatusOK, lessons)
}

func (h *DashboardHandler) respondCourses(w http.ResponseWriter, courses []models.CourseSummary, err error, msg string) {
	if err != nil {
		h.RespondServiceError(w, err, msg)
		return
	}
	if courses == nil {
		courses = []models.CourseSummary{}
	}
	h.RespondJSON(w, http.StatusOK, courses)
}

// LessonsByMe handles POST /lessons/byme
// @Summary List lessons authored by the user
// @Tags dashboard
// @Accept json
// @Produce json
// @Param request body models.UserIDRequest true "User identity token"
// @Success 200 {array} models.LessonWithAuthor
// @Failure 404 {object} map[string]string "User not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /lessons/byme [post]
func (h *DashboardHandler) LessonsByMe(w http.ResponseWriter, r *http.Request) {
	var req models.UserIDRequest
	if err := h.DecodeAndValidate(r, &req); err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	lessons, err := h.service.LessonsByMe(r.Context(), req.UserID)
	h.respondLessons(w, lessons, err, "failed to list authored lessons")
}

// LikedLessons handles POST /lessons/liked
// @Summary List lessons liked by the user
// @Tags dashboard
// @Accept json
// @Produce json
// @Param request body models.UserIDRequest true "User identity token"
// @Success 200 {array} models.LessonWithAuthor
// @Failure 404 {object} map[string]string "User not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /lessons/liked [post]
func (h *DashboardHandler) LikedLessons(w http.ResponseWriter, r *http.Request) {
	var req models.UserIDRequest
	if err := h.DecodeAndValidate(r, &req); err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	lessons, err := h.service.LikedLessons(r.Context(), req.UserID)
	h.respondLessons(w, lessons, err, "failed to list liked lessons")
}

// SharedWithMe handles POST /lessons/sharedwithme
// @Summary List lessons shared with the user's email
// @Tags dashboard
// @Accept json
// @Produce json
// @Param request body models.EmailRequest true "Recipient email"
// @Success 200 {array} models.LessonWithAuthor
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /lessons/sharedwithme [post]
func (h *DashboardHandler) SharedWithMe(w http.ResponseWriter, r *http.Request) {
	var req models.EmailRequest
	if err := h.DecodeAndValidate(r, &req); err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	lessons, err := h.service.SharedWithMe(r.Context(), req.Email)
	h.respondLessons(w, lessons, err, "failed to list shared lessons")
}

// RecentlyViewed handles POST /lessons/recentlyviewed
// @Summary List lessons the user viewed most recently
// @Tags dashboard
// @Accept json
// @Produce json
// @Param request body models.UserIDRequest true "User identity token"
// @Success 200 {array} models.LessonWithAuthor
// @Failure 404 {object} map[string]string "User not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /lessons/recentlyviewed [post]
func (h *DashboardHandler) RecentlyViewed(w http.ResponseWriter, r *http.Request) {
	var req models.UserIDRequest
	if err := h.DecodeAndValidate(r, &req); err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	lessons, err := h.service.RecentlyViewed(r.Context(), req.UserID)
	h.respondLessons(w, lessons, err, "failed to list recently viewed lessons")
}

// CoursesByMe handles POST /coursedash/byme
// @Summary List courses owned by the user
// @Tags dashboard
// @Accept json
// @Produce json
// @Param request body models.UserIDRequest true "User identity token"
// @Success 200 {array} models.CourseSummary
// @Failure 404 {object} map[string]string "User not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /coursedash/byme [post]
func (h *DashboardHandler) CoursesByMe(w http.ResponseWriter, r *http.Request) {
	var req models.UserIDRequest
	if err := h.DecodeAndValidate(r, &req); err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	courses, err := h.service.CoursesByMe(r.Context(), req.UserID)
	h.respondCourses(w, courses, err, "failed to list owned courses")
}

// EnrolledCourses handles POST /coursedash/enrolled
// @Summary List courses the user is enrolled in
// @Tags dashboard
// @Accept json
// @Produce json
// @Param request body models.UserIDRequest true "User identity token"
// @Success 200 {array} models.CourseSummary
// @Failure 404 {object} map[string]string "User not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /coursedash/enrolled [post]
func (h *DashboardHandler) EnrolledCourses(w http.ResponseWriter, r *http.Request) {
	var req models.UserIDRequest
	if err := h.DecodeAndValidate(r, &req); err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	courses, err := h.service.EnrolledCourses(r.Context(), req.UserID)
	h.respondCourses(w, courses, err, "failed to list enrolled courses")
}
