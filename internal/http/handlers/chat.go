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

type ChatHandler struct {
	log         *logger.Logger
	chatService services.ChatService
}

func NewChatHandler(log *logger.Logger, chatService services.ChatService) *ChatHandler {
	return &ChatHandler{
		log:         log.With("handler", "ChatHandler"),
		chatService: chatService,
	}
}

func (h *ChatHandler) Contacts(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	page, limit := pageParams(c)
	result, err := h.chatService.Contacts(c.Request.Context(), rd.UserID, page, limit)
	if err != nil {
		h.log.Error("Contacts failed", "error", err, "user_id", rd.UserID)
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, result)
}

func (h *ChatHandler) Messages(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	contactID, err := pathID(c, "id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	page, limit := pageParams(c)
	result, err := h.chatService.Messages(c.Request.Context(), rd.UserID, contactID, page, limit)
	if err != nil {
		h.log.Error("Messages failed", "error", err, "user_id", rd.UserID, "contact_id", contactID)
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, result)
}

func (h *ChatHandler) Send(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	contactID, err := pathID(c, "id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	var req struct {
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	msg, err := h.chatService.Send(c.Request.Context(), rd.UserID, contactID, req.Message)
	if err != nil {
		h.log.Error("Send failed", "error", err, "user_id", rd.UserID, "contact_id", contactID)
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"chat_message": msg})
}

func (h *ChatHandler) Delete(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	messageID, err := pathID(c, "chatId")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	if err := h.chatService.Delete(c.Request.Context(), rd.UserID, messageID); err != nil {
		h.log.Error("Delete failed", "error", err, "user_id", rd.UserID, "message_id", messageID)
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}
