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

type LessonHandler struct {
	log             *logger.Logger
	progressService services.ProgressService
}

func NewLessonHandler(log *logger.Logger, progressService services.ProgressService) *LessonHandler {
	return &LessonHandler{
		log:             log.With("handler", "LessonHandler"),
		progressService: progressService,
	}
}

// Finish marks one of the caller's lesson-progress rows as completed. The
// path parameter is the progress row ID, not the catalog lesson ID.
func (h *LessonHandler) Finish(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	lessonProgressID, err := pathID(c, "id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	var req struct {
		IsFinish bool `json:"is_finish"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if err := h.progressService.RecordLessonFinish(c.Request.Context(), rd.UserID, lessonProgressID, req.IsFinish); err != nil {
		h.log.Error("Finish failed", "error", err, "user_id", rd.UserID, "lesson_progress_id", lessonProgressID)
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}
