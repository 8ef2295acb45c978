package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/lessonhub/backend/internal/models"
	"go.uber.org/zap"
)

// CourseService is the interface that wraps course, roster, message board
// and administration operations.
type CourseService interface {
	// CreateCourse creates a course with its subjects and returns its ID
	CreateCourse(ctx context.Context, req *models.CreateCourseRequest) (int, error)
	// GetInfo retrieves a course joined with its owner's details
	GetInfo(ctx context.Context, courseID int) (*models.CourseInfo, error)
	// FetchLessons lists the lessons linked to a course
	FetchLessons(ctx context.Context, courseID int) ([]models.CourseLessonItem, error)
	// AddLesson links a lesson to a course; owner or admin only
	AddLesson(ctx context.Context, req *models.CourseLessonRequest) error
	// RemoveLesson unlinks a lesson from a course; owner or admin only
	RemoveLesson(ctx context.Context, req *models.CourseLessonRequest) error
	// Classlist lists the course roster
	Classlist(ctx context.Context, courseID int) ([]models.ClasslistEntry, error)
	// Join adds the acting user to the roster
	Join(ctx context.Context, req *models.JoinCourseRequest) error
	// Leave removes the acting user from the roster
	Leave(ctx context.Context, req *models.JoinCourseRequest) error
	// RemoveMember removes another user from the roster; owner or admin only
	RemoveMember(ctx context.Context, req *models.RemoveMemberRequest) error
	// Messages lists the course message board
	Messages(ctx context.Context, courseID int) ([]models.CourseMessage, error)
	// AddMessage posts to the message board; roster members only
	AddMessage(ctx context.Context, req *models.AddMessageRequest) error
	// Admins lists the course administrators
	Admins(ctx context.Context, courseID int) ([]models.CourseAdmin, error)
	// AddAdmin grants administration by email; owner only
	AddAdmin(ctx context.Context, req *models.AddAdminRequest) error
	// RemoveAdmin revokes administration; owner only
	RemoveAdmin(ctx context.Context, req *models.DeleteAdminRequest) error
	// Search retrieves public courses matching the substring filters
	Search(ctx context.Context, f *models.SearchCoursesRequest) ([]models.CourseSummary, error)
}

// CourseHandler handles HTTP requests for course operations
type CourseHandler struct {
	BaseHandler
	service CourseService
}

// NewCourseHandler creates a new course handler
func NewCourseHandler(svc CourseService, logger *zap.Logger) *CourseHandler {
	return &CourseHandler{
		service:     svc,
		BaseHandler: BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers all course handler routes
func (h *CourseHandler) RegisterRoutes(r chi.Router) {
	r.Post("/createCourse", h.CreateCourse)
	r.Post("/courseInfo", h.GetInfo)
	r.Post("/courseFetchLessons", h.FetchLessons)
	r.Post("/addNewCourseLesson", h.AddLesson)
	r.Post("/deleteCourseLesson", h.RemoveLesson)
	r.Post("/courseFetchClasslist", h.Classlist)
	r.Post("/joinClasslist", h.Join)
	r.Post("/leaveClasslist", h.Leave)
	r.Post("/removeFromClasslist", h.RemoveMember)
	r.Post("/courseFetchMessage", h.Messages)
	r.Post("/courseAddMessage", h.AddMessage)
	r.Post("/courseFetchAdmin", h.Admins)
	r.Post("/courseAddAdmin", h.AddAdmin)
	r.Post("/courseDeleteAdmin", h.RemoveAdmin)
	r.Post("/searchCourses", h.Search)
}

// CreateCourse handles POST /createCourse
// @Summary Create a course
// @Tags courses
// @Accept json
// @Produce json
// @Param request body models.CreateCourseRequest true "Course creation request"
// @Success 201 {object} map[string]int "ID of the created course"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 404 {object} map[string]string "Owner not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /createCourse [post]
func (h *CourseHandler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCourseRequest
	if err := h.DecodeAndValidate(r, &req); err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := h.service.CreateCourse(r.Context(), &req)
	if err != nil {
		h.RespondServiceError(w, err, "failed to create course")
		return
	}

	h.RespondJSON(w, http.StatusCreated, map[string]int{"course_id": id})
}

// GetInfo handles POST /courseInfo
// @Summary Get a course with its owner's details
// @Tags courses
// @Accept json
// @Produce json
// @Param request body models.CourseIDRequest true "Course ID"
// @Success 200 {object} map[string]models.CourseInfo
// @Failure 404 {object} map[string]string "Course not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /courseInfo [post]
func (h *CourseHandler) GetInfo(w http.ResponseWriter, r *http.Request) {
	var req models.CourseIDRequest
	if err := h.DecodeAndValidate(r, &req); err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	info, err := h.service.GetInfo(r.Context(), req.CourseID)
	if err != nil {
		h.RespondServiceError(w, err, "failed to get course info")
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]*models.CourseInfo{"courseInfo": info})
}

// FetchLessons handles POST /courseFetchLessons
// @Summary List the lessons linked to a course
// @Tags courses
// @Accept json
// @Produce json
// @Param request body models.CourseIDRequest true "Course ID"
// @Success 200 {object} map[string][]models.CourseLessonItem
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /courseFetchLessons [post]
func (h *CourseHandler) FetchLessons(w http.ResponseWriter, r *http.Request) {
	var req models.CourseIDRequest
	if err := h.DecodeAndValidate(r, &req); err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	lessons, err := h.service.FetchLessons(r.Context(), req.CourseID)
	if err != nil {
		h.RespondServiceError(w, err, "failed to fetch course lessons")
		return
	}
	if lessons == nil {
		lessons = []models.CourseLessonItem{}
	}

	h.RespondJSON(w, http.StatusOK, map[string][]models.CourseLessonItem{"courses": lessons})
}

// AddLesson handles POST /addNewCourseLesson
// @Summary Link a lesson to a course
// @Description Only the course owner or an administrator may link lessons.
// @Tags courses
// @Accept json
// @Param request body models.CourseLessonRequest true "Course lesson link"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 403 {object} map[string]string "Not the owner or an administrator"
// @Failure 404 {object} map[string]string "Course not found"
// @Failure 409 {object} map[string]string "Lesson already linked"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /addNewCourseLesson [post]
func (h *CourseHandler) AddLesson(w http.ResponseWriter, r *http.Request) {
	var req models.CourseLessonRequest
	if err := h.DecodeAndValidate(r, &req); err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.AddLesson(r.Context(), &req); err != nil {
		h.RespondServiceError(w, err, "failed to add course lesson")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RemoveLesson handles POST /deleteCourseLesson
// @Summary Unlink a lesson from a course
// @Description Only the course owner or an administrator may unlink lessons.
// @Tags courses
// @Accept json
// @Param request body models.CourseLessonRequest true "Course lesson link"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string "Not the owner or an administrator"
// @Failure 404 {object} map[string]string "Course or link not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /deleteCourseLesson [post]
func (h *CourseHandler) RemoveLesson(w http.ResponseWriter, r *http.Request) {
	var req models.CourseLessonRequest
	if err := h.DecodeAndValidate(r, &req); err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.RemoveLesson(r.Context(), &req); err != nil {
		h.RespondServiceError(w, err, "failed to delete course lesson")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Classlist handles POST /courseFetchClasslist
// @Summary List the course roster
// @Tags courses
// @Accept json
// @Produce json
// @Param request body models.CourseIDRequest true "Course ID"
// @Success 200 {object} map[string][]models.ClasslistEntry
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /courseFetchClasslist [post]
func (h *CourseHandler) Classlist(w http.ResponseWriter, r *http.Request) {
	var req models.CourseIDRequest
	if err := h.DecodeAndValidate(r, &req); err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	classlist, err := h.service.Classlist(r.Context(), req.CourseID)
	if err != nil {
		h.RespondServiceError(w, err, "failed to fetch classlist")
		return
	}
	if classlist == nil {
		classlist = []models.ClasslistEntry{}
	}

	h.RespondJSON(w, http.StatusOK, map[string][]models.ClasslistEntry{"classlist": classlist})
}

// Join handles POST /joinClasslist
// @Summary Join a course roster
// @Description The course owner cannot join their own course.
// @Tags courses
// @Accept json
// @Param request body models.JoinCourseRequest true "Join request"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string "Owner joining own course"
// @Failure 404 {object} map[string]string "Course or user not found"
// @Failure 409 {object} map[string]string "Already enrolled"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /joinClasslist [post]
func (h *CourseHandler) Join(w http.ResponseWriter, r *http.Request) {
	var req models.JoinCourseRequest
	if err := h.DecodeAndValidate(r, &req); err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.Join(r.Context(), &req); err != nil {
		h.RespondServiceError(w, err, "failed to join classlist")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Leave handles POST /leaveClasslist
// @Summary Leave a course roster
// @Tags courses
// @Accept json
// @Param request body models.JoinCourseRequest true "Leave request"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /leaveClasslist [post]
func (h *CourseHandler) Leave(w http.ResponseWriter, r *http.Request) {
	var req models.JoinCourseRequest
	if err := h.DecodeAndValidate(r, &req); err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.Leave(r.Context(), &req); err != nil {
		h.RespondServiceError(w, err, "failed to leave classlist")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RemoveMember handles POST /removeFromClasslist
// @Summary Remove a member from a course roster
// @Description Only the course owner or an administrator may remove members.
// @Tags courses
// @Accept json
// @Param request body models.RemoveMemberRequest true "Removal request"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string "Not the owner or an administrator"
// @Failure 404 {object} map[string]string "Course or member not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /removeFromClasslist [post]
func (h *CourseHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	var req models.RemoveMemberRequest
	if err := h.DecodeAndValidate(r, &req); err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.RemoveMember(r.Context(), &req); err != nil {
		h.RespondServiceError(w, err, "failed to remove from classlist")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Messages handles POST /courseFetchMessage
// @Summary List the course message board
// @Tags courses
// @Accept json
// @Produce json
// @Param request body models.CourseIDRequest true "Course ID"
// @Success 200 {object} map[string][]models.CourseMessage
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /courseFetchMessage [post]
func (h *CourseHandler) Messages(w http.ResponseWriter, r *http.Request) {
	var req models.CourseIDRequest
	if err := h.DecodeAndValidate(r, &req); err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	messages, err := h.service.Messages(r.Context(), req.CourseID)
	if err != nil {
		h.RespondServiceError(w, err, "failed to fetch course messages")
		return
	}
	if messages == nil {
		messages = []models.CourseMessage{}
	}

	h.RespondJSON(w, http.StatusOK, map[string][]models.CourseMessage{"messages": messages})
}

// AddMessage handles POST /courseAddMessage
// @Summary Post a message to a course board
// @Description Only roster members may post.
// @Tags courses
// @Accept json
// @Param request body models.AddMessageRequest true "Message"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Empty message"
// @Failure 401 {object} map[string]string "Not a course member"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /courseAddMessage [post]
func (h *CourseHandler) AddMessage(w http.ResponseWriter, r *http.Request) {
	var req models.AddMessageRequest
	if err := h.DecodeAndValidate(r, &req); err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.AddMessage(r.Context(), &req); err != nil {
		h.RespondServiceError(w, err, "failed to add course message")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Admins handles POST /courseFetchAdmin
// @Summary List the course administrators
// @Tags courses
// @Accept json
// @Produce json
// @Param request body models.CourseIDRequest true "Course ID"
// @Success 200 {object} map[string][]models.CourseAdmin
// @Failure 404 {object} map[string]string "No administrators found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /courseFetchAdmin [post]
func (h *CourseHandler) Admins(w http.ResponseWriter, r *http.Request) {
	var req models.CourseIDRequest
	if err := h.DecodeAndValidate(r, &req); err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	admins, err := h.service.Admins(r.Context(), req.CourseID)
	if err != nil {
		h.RespondServiceError(w, err, "failed to fetch course admins")
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string][]models.CourseAdmin{"courseAdmins": admins})
}

// AddAdmin handles POST /courseAddAdmin
// @Summary Grant course administration
// @Description Owner only. Granting to an existing administrator is a conflict.
// @Tags courses
// @Accept json
// @Param request body models.AddAdminRequest true "Grant request"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string "Not the course owner"
// @Failure 404 {object} map[string]string "Course or user not found"
// @Failure 409 {object} map[string]string "Already an administrator"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /courseAddAdmin [post]
func (h *CourseHandler) AddAdmin(w http.ResponseWriter, r *http.Request) {
	var req models.AddAdminRequest
	if err := h.DecodeAndValidate(r, &req); err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.AddAdmin(r.Context(), &req); err != nil {
		h.RespondServiceError(w, err, "failed to add course admin")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RemoveAdmin handles POST /courseDeleteAdmin
// @Summary Revoke course administration
// @Description Owner only.
// @Tags courses
// @Accept json
// @Param request body models.DeleteAdminRequest true "Revoke request"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string "Not the course owner"
// @Failure 404 {object} map[string]string "Course not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /courseDeleteAdmin [post]
func (h *CourseHandler) RemoveAdmin(w http.ResponseWriter, r *http.Request) {
	var req models.DeleteAdminRequest
	if err := h.DecodeAndValidate(r, &req); err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.RemoveAdmin(r.Context(), &req); err != nil {
		h.RespondServiceError(w, err, "failed to delete course admin")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Search handles POST /searchCourses
// @Summary Search public courses
// @Description Substring filters; an empty field matches everything.
// @Tags courses
// @Accept json
// @Produce json
// @Param request body models.SearchCoursesRequest true "Search filters"
// @Success 200 {object} map[string][]models.CourseSummary
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /searchCourses [post]
func (h *CourseHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req models.SearchCoursesRequest
	if err := h.DecodeAndValidate(r, &req); err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	courses, err := h.service.Search(r.Context(), &req)
	if err != nil {
		h.RespondServiceError(w, err, "failed to search courses")
		return
	}
	if courses == nil {
		courses = []models.CourseSummary{}
	}

	h.RespondJSON(w, http.StatusOK, map[string][]models.CourseSummary{"courses": courses})
}
