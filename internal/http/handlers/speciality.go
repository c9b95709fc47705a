package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Digital-Coach-Women/APP-API/internal/http/response"
	"github.com/Digital-Coach-Women/APP-API/internal/pkg/logger"
	"github.com/Digital-Coach-Women/APP-API/internal/services"
)

type SpecialityHandler struct {
	log               *logger.Logger
	specialityService services.SpecialityService
}

func NewSpecialityHandler(log *logger.Logger, specialityService services.SpecialityService) *SpecialityHandler {
	return &SpecialityHandler{
		log:               log.With("handler", "SpecialityHandler"),
		specialityService: specialityService,
	}
}

func (h *SpecialityHandler) List(c *gin.Context) {
	page, limit := pageParams(c)
	result, err := h.specialityService.List(c.Request.Context(), c.Query("name"), page, limit)
	if err != nil {
		h.log.Error("List failed", "error", err)
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, result)
}

func (h *SpecialityHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	speciality, err := h.specialityService.Get(c.Request.Context(), id)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"speciality": speciality})
}

func (h *SpecialityHandler) Create(c *gin.Context) {
	var req services.SpecialityInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	speciality, err := h.specialityService.Create(c.Request.Context(), req)
	if err != nil {
		h.log.Error("Create failed", "error", err)
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"speciality": speciality})
}

func (h *SpecialityHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	var req services.SpecialityInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	speciality, err := h.specialityService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.log.Error("Update failed", "error", err, "speciality_id", id)
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"speciality": speciality})
}
