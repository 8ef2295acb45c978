package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/lessonhub/backend/internal/models"
	"go.uber.org/zap"
)

// ExploreService is the interface that wraps the public explore listings
type ExploreService interface {
	MostLiked(ctx context.Context) ([]models.LessonWithAuthor, error)
	MostViewed(ctx context.Context) ([]models.LessonWithAuthor, error)
}

// ExploreHandler handles HTTP requests for the public explore listings
type ExploreHandler struct {
	BaseHandler
	service ExploreService
}

// NewExploreHandler creates a new explore handler
func NewExploreHandler(svc ExploreService, logger *zap.Logger) *ExploreHandler {
	return &ExploreHandler{
		service:     svc,
		BaseHandler: BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers all explore handler routes
func (h *ExploreHandler) RegisterRoutes(r chi.Router) {
	r.Post("/most-liked-lessons", h.MostLiked)
	r.Post("/most-viewed-lessons", h.MostViewed)
}

// MostLiked handles POST /most-liked-lessons
// @Summary List the most liked public lessons
// @Tags explore
// @Produce json
// @Success 200 {array} models.LessonWithAuthor
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /most-liked-lessons [post]
func (h *ExploreHandler) MostLiked(w http.ResponseWriter, r *http.Request) {
	lessons, err := h.service.MostLiked(r.Context())
	if err != nil {
		h.RespondServiceError(w, err, "failed to list most liked lessons")
		return
	}
	if lessons == nil {
		lessons = []models.LessonWithAuthor{}
	}
	h.RespondJSON(w, http.StatusOK, lessons)
}

// MostViewed handles POST /most-viewed-lessons
// @Summary List the most viewed public lessons
// @Tags explore
// @Produce json
// @Success 200 {array} models.LessonWithAuthor
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /most-viewed-lessons [post]
func (h *ExploreHandler) MostViewed(w http.ResponseWriter, r *http.Request) {
	lessons, err := h.service.MostViewed(r.Context())
	if err != nil {
		h.RespondServiceError(w, err, "failed to list most viewed lessons")
		return
	}
	if lessons == nil {
		lessons = []models.LessonWithAuthor{}
	}
	h.RespondJSON(w, http.StatusOK, lessons)
}
