package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/lessonhub/backend/internal/models"
	"github.com/lessonhub/backend/internal/services"
	"go.uber.org/zap"
)

// EngagementService is the interface that wraps like and share operations
type EngagementService interface {
	// Like performs the three-way like action: add, remove or check
	Like(ctx context.Context, req *models.LikeRequest) (*services.LikeResult, error)
	// LikeCount returns the number of likes on a lesson
	LikeCount(ctx context.Context, lessonID int) (int, error)
	// Share shares a lesson with a recipient email
	Share(ctx context.Context, req *models.ShareRequest) error
}

// EngagementHandler handles HTTP requests for likes and shares
type EngagementHandler struct {
	BaseHandler
	service EngagementService
}

// NewEngagementHandler creates a new engagement handler
func NewEngagementHandler(svc EngagementService, logger *zap.Logger) *EngagementHandler {
	return &EngagementHandler{
		service:     svc,
		BaseHandler: BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers all engagement handler routes
func (h *EngagementHandler) RegisterRoutes(r chi.Router) {
	r.Post("/like", h.Like)
	r.Post("/lessonlikes", h.LikeCount)
	r.Post("/share", h.Share)
}

// Like handles POST /like
// @Summary Add, remove or check a like
// @Description The check action returns the liked flag; add and remove return no body.
// @Tags engagement
// @Accept json
// @Produce json
// @Param request body models.LikeRequest true "Like action"
// @Success 200 {object} services.LikeResult "Check result"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid action or request body"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 409 {object} map[string]string "Already liked"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /like [post]
func (h *EngagementHandler) Like(w http.ResponseWriter, r *http.Request) {
	var req models.LikeRequest
	if err := h.DecodeAndValidate(r, &req); err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.Like(r.Context(), &req)
	if err != nil {
		h.RespondServiceError(w, err, "failed to process like action")
		return
	}

	if result == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	h.RespondJSON(w, http.StatusOK, result)
}

// LikeCount handles POST /lessonlikes
// @Summary Get the like count of a lesson
// @Tags engagement
// @Accept json
// @Produce json
// @Param request body models.LessonIDRequest true "Lesson ID"
// @Success 200 {object} map[string]int "Like count"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /lessonlikes [post]
func (h *EngagementHandler) LikeCount(w http.ResponseWriter, r *http.Request) {
	var req models.LessonIDRequest
	if err := h.DecodeAndValidate(r, &req); err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	count, err := h.service.LikeCount(r.Context(), req.LessonID)
	if err != nil {
		h.RespondServiceError(w, err, "failed to count likes")
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]int{"like_count": count})
}

// Share handles POST /share
// @Summary Share a lesson with a recipient
// @Tags engagement
// @Accept json
// @Param request body models.ShareRequest true "Share request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 404 {object} map[string]string "Sender not found"
// @Failure 409 {object} map[string]string "Already shared with this recipient"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /share [post]
func (h *EngagementHandler) Share(w http.ResponseWriter, r *http.Request) {
	var req models.ShareRequest
	if err := h.DecodeAndValidate(r, &req); err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.Share(r.Context(), &req); err != nil {
		h.RespondServiceError(w, err, "failed to share lesson")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
