package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mindease/mindease-backend/internal/http/response"
	"github.com/mindease/mindease-backend/internal/services"
)

type ChatHandler struct {
	chatService services.ChatService
}

func NewChatHandler(chatService services.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

type createSessionReq struct {
	Mood string `json:"mood"`
}

// POST /api/chatbot/session
func (h *ChatHandler) CreateSession(c *gin.Context) {
	var req createSessionReq
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
			return
		}
	}
	session, err := h.chatService.CreateSession(c.Request.Context(), req.Mood)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"session": session})
}

type sendMessageReq struct {
	SessionID uuid.UUID `json:"sessionId" binding:"required"`
	Message   string    `json:"message" binding:"required"`
	Mood      string    `json:"mood"`
}

// POST /api/chatbot/chat
func (h *ChatHandler) SendMessage(c *gin.Context) {
	var req sendMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	reply, err := h.chatService.SendMessage(c.Request.Context(), services.SendMessageInput{
		SessionID: req.SessionID,
		Message:   req.Message,
		Mood:      req.Mood,
	})
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, reply)
}

// GET /api/chatbot/history
func (h *ChatHandler) History(c *gin.Context) {
	sessions, err := h.chatService.History(c.Request.Context())
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"sessions": sessions})
}

// GET /api/chatbot/session/:id
func (h *ChatHandler) GetSession(c *gin.Context) {
	sessionID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	session, err := h.chatService.GetSession(c.Request.Context(), sessionID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"session": session})
}
