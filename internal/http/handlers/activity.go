package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mindease/mindease-backend/internal/http/response"
	"github.com/mindease/mindease-backend/internal/modules/selfcare"
)

type ActivityHandler struct {
	library *selfcare.Library
	now     func() time.Time
}

func NewActivityHandler(library *selfcare.Library) *ActivityHandler {
	return &ActivityHandler{library: library, now: time.Now}
}

// GET /api/activities/daily-tip
func (h *ActivityHandler) DailyTip(c *gin.Context) {
	now := h.now()
	response.RespondOK(c, gin.H{
		"tip":  h.library.DailyTip(now),
		"date": now.Format("2006-01-02"),
	})
}

// GET /api/activities/recommendations?mood=
func (h *ActivityHandler) Recommendations(c *gin.Context) {
	mood := c.Query("mood")
	response.RespondOK(c, gin.H{
		"mood":       mood,
		"activities": h.library.ActivitiesFor(mood),
	})
}

// GET /api/activities/meditation
func (h *ActivityHandler) Meditations(c *gin.Context) {
	response.RespondOK(c, gin.H{"meditations": h.library.Meditations})
}

// GET /api/activities/breathing
func (h *ActivityHandler) Breathing(c *gin.Context) {
	response.RespondOK(c, gin.H{"exercises": h.library.Breathing})
}
