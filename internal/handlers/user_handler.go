package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/lessonhub/backend/internal/models"
	"go.uber.org/zap"
)

// UserService is the interface that wraps methods for user operations
type UserService interface {
	// Register creates a new user account
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	// GetByUID retrieves a user by identity token
	GetByUID(ctx context.Context, uid string) (*models.User, error)
	// GetByID retrieves a user by internal ID
	GetByID(ctx context.Context, id int) (*models.User, error)
	// UpdateProfilePic sets the profile picture URL for a user
	UpdateProfilePic(ctx context.Context, req *models.UpdateProfilePicRequest) error
}

// UserHandler handles HTTP requests for user operations
type UserHandler struct {
	BaseHandler
	service UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(svc UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		service:     svc,
		BaseHandler: BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers all user handler routes
func (h *UserHandler) RegisterRoutes(r chi.Router) {
	r.Post("/register", h.Register)
	r.Get("/getUserDetails", h.GetUserDetails)
	r.Get("/getDBUserDetails", h.GetDBUserDetails)
	r.Post("/updateUserProfilePic", h.UpdateProfilePic)
}

// Register handles POST /register
// @Summary Register a new user
// @Tags users
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Registration request"
// @Success 201 {object} models.User "Created user"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 409 {object} map[string]string "Email already registered"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /register [post]
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := h.DecodeAndValidate(r, &req); err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.service.Register(r.Context(), &req)
	if err != nil {
		h.RespondServiceError(w, err, "failed to register user")
		return
	}

	h.RespondJSON(w, http.StatusCreated, user)
}

// GetUserDetails handles GET /getUserDetails
// @Summary Get user details by identity token
// @Tags users
// @Produce json
// @Param identity_uid query string true "Identity token"
// @Success 200 {object} models.User "User details"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /getUserDetails [get]
func (h *UserHandler) GetUserDetails(w http.ResponseWriter, r *http.Request) {
	uid := r.URL.Query().Get("identity_uid")
	if uid == "" {
		h.RespondError(w, http.StatusBadRequest, "identity_uid is required")
		return
	}

	user, err := h.service.GetByUID(r.Context(), uid)
	if err != nil {
		h.RespondServiceError(w, err, "failed to get user details")
		return
	}

	h.RespondJSON(w, http.StatusOK, user)
}

// GetDBUserDetails handles GET /getDBUserDetails
// @Summary Get user details by internal ID
// @Tags users
// @Produce json
// @Param id query int true "User ID"
// @Success 200 {object} models.User "User details"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /getDBUserDetails [get]
func (h *UserHandler) GetDBUserDetails(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.URL.Query().Get("id"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid user ID")
		return
	}

	user, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.RespondServiceError(w, err, "failed to get user details")
		return
	}

	h.RespondJSON(w, http.StatusOK, user)
}

// UpdateProfilePic handles POST /updateUserProfilePic
// @Summary Update a user's profile picture URL
// @Tags users
// @Accept json
// @Param request body models.UpdateProfilePicRequest true "Profile picture update"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /updateUserProfilePic [post]
func (h *UserHandler) UpdateProfilePic(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateProfilePicRequest
	if err := h.DecodeAndValidate(r, &req); err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.UpdateProfilePic(r.Context(), &req); err != nil {
		h.RespondServiceError(w, err, "failed to update profile picture")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
