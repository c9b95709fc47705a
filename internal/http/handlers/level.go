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

type LevelHandler struct {
	log               *logger.Logger
	levelService      services.LevelService
	enrollmentService services.EnrollmentService
}

func NewLevelHandler(
	log *logger.Logger,
	levelService services.LevelService,
	enrollmentService services.EnrollmentService,
) *LevelHandler {
	return &LevelHandler{
		log:               log.With("handler", "LevelHandler"),
		levelService:      levelService,
		enrollmentService: enrollmentService,
	}
}

func (h *LevelHandler) List(c *gin.Context) {
	page, limit := pageParams(c)
	result, err := h.levelService.List(c.Request.Context(), c.Query("name"), page, limit)
	if err != nil {
		h.log.Error("List failed", "error", err)
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, result)
}

func (h *LevelHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	level, err := h.levelService.Get(c.Request.Context(), id)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"speciality_level": level})
}

func (h *LevelHandler) Create(c *gin.Context) {
	var req services.LevelInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	level, err := h.levelService.Create(c.Request.Context(), req)
	if err != nil {
		h.log.Error("Create failed", "error", err)
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"speciality_level": level})
}

func (h *LevelHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	var req services.LevelInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	level, err := h.levelService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.log.Error("Update failed", "error", err, "level_id", id)
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"speciality_level": level})
}

// Enroll matriculates the authenticated user into a level, seeding the
// per-course and per-lesson progress rows in one transaction.
func (h *LevelHandler) Enroll(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	levelID, err := pathID(c, "id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	enrollment, err := h.enrollmentService.Enroll(c.Request.Context(), rd.UserID, levelID)
	if err != nil {
		h.log.Error("Enroll failed", "error", err, "user_id", rd.UserID, "level_id", levelID)
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"user_speciality_level": enrollment})
}

func (h *LevelHandler) ListEnrolled(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	page, limit := pageParams(c)
	result, err := h.enrollmentService.ListEnrolled(c.Request.Context(), rd.UserID, c.Query("name"), page, limit)
	if err != nil {
		h.log.Error("ListEnrolled failed", "error", err, "user_id", rd.UserID)
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, result)
}
