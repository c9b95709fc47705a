package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Digital-Coach-Women/APP-API/internal/http/response"
	"github.com/Digital-Coach-Women/APP-API/internal/pkg/logger"
	"github.com/Digital-Coach-Women/APP-API/internal/requestdata"
	"github.com/Digital-Coach-Women/APP-API/internal/services"
)

type CourseHandler struct {
	log             *logger.Logger
	courseService   services.CourseService
	progressService services.ProgressService
}

func NewCourseHandler(
	log *logger.Logger,
	courseService services.CourseService,
	progressService services.ProgressService,
) *CourseHandler {
	return &CourseHandler{
		log:             log.With("handler", "CourseHandler"),
		courseService:   courseService,
		progressService: progressService,
	}
}

func (h *CourseHandler) List(c *gin.Context) {
	page, limit := pageParams(c)
	result, err := h.courseService.List(c.Request.Context(), c.Query("title"), page, limit)
	if err != nil {
		h.log.Error("List failed", "error", err)
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, result)
}

func (h *CourseHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	course, err := h.courseService.Get(c.Request.Context(), id)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"course": course})
}

func (h *CourseHandler) Create(c *gin.Context) {
	var req services.CourseInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	course, err := h.courseService.Create(c.Request.Context(), req)
	if err != nil {
		h.log.Error("Create failed", "error", err)
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"course": course})
}

func (h *CourseHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	var req services.CourseInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	course, err := h.courseService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.log.Error("Update failed", "error", err, "course_id", id)
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"course": course})
}

// RecordTime stores the caller's watched time on a course and, when the
// course is marked finished, cascades completion up to the level.
func (h *CourseHandler) RecordTime(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	courseID, err := pathID(c, "id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	var req struct {
		Time     int  `json:"time"`
		IsFinish bool `json:"is_finish"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if err := h.progressService.RecordCourseTime(c.Request.Context(), rd.UserID, courseID, req.Time, req.IsFinish); err != nil {
		h.log.Error("RecordTime failed", "error", err, "user_id", rd.UserID, "course_id", courseID)
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}
