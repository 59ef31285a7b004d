package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mindease/mindease-backend/internal/http/response"
	"github.com/mindease/mindease-backend/internal/services"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type moodReq struct {
	Mood      string `json:"mood" binding:"required"`
	Intensity int    `json:"intensity" binding:"required,min=1,max=10"`
	Note      string `json:"note" binding:"max=1000"`
}

// POST /api/users/me/moods
func (h *UserHandler) RecordMood(c *gin.Context) {
	var req moodReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	entry, err := h.userService.RecordMood(c.Request.Context(), services.MoodInput{
		Mood:      req.Mood,
		Intensity: req.Intensity,
		Note:      req.Note,
	})
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"entry": entry})
}

// GET /api/users/me/moods?limit=30
func (h *UserHandler) ListMoods(c *gin.Context) {
	entries, err := h.userService.ListMoods(c.Request.Context(), queryInt(c, "limit", 30))
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"entries": entries})
}
