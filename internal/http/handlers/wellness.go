package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mindease/mindease-backend/internal/http/response"
	"github.com/mindease/mindease-backend/internal/modules/wellness"
	"github.com/mindease/mindease-backend/internal/services"
)

type WellnessHandler struct {
	wellnessService services.WellnessService
}

func NewWellnessHandler(wellnessService services.WellnessService) *WellnessHandler {
	return &WellnessHandler{wellnessService: wellnessService}
}

type generatePlanReq struct {
	CurrentMood   string   `json:"currentMood"`
	MoodIntensity *int     `json:"moodIntensity"`
	Goals         []string `json:"goals"`
	ScheduleTime  string   `json:"scheduleTime"`
	Duration      int      `json:"duration"`
}

// POST /api/wellness/generate
func (h *WellnessHandler) Generate(c *gin.Context) {
	var req generatePlanReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	plan, err := h.wellnessService.Generate(c.Request.Context(), wellness.PlanRequest{
		CurrentMood:   req.CurrentMood,
		MoodIntensity: req.MoodIntensity,
		Goals:         req.Goals,
		ScheduleTime:  req.ScheduleTime,
		Duration:      req.Duration,
	})
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"plan": plan})
}

// GET /api/wellness/plans
func (h *WellnessHandler) ListPlans(c *gin.Context) {
	plans, err := h.wellnessService.List(c.Request.Context())
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"plans": plans})
}

// GET /api/wellness/plans/:id
func (h *WellnessHandler) GetPlan(c *gin.Context) {
	planID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	plan, err := h.wellnessService.Get(c.Request.Context(), planID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"plan": plan})
}

type toggleActivityReq struct {
	Completed bool `json:"completed"`
}

// PATCH /api/wellness/plans/:id/activities/:activityIndex
func (h *WellnessHandler) ToggleActivity(c *gin.Context) {
	planID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	index, err := strconv.Atoi(c.Param("activityIndex"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_reference", errors.New("activity index must be an integer"))
		return
	}
	var req toggleActivityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	plan, err := h.wellnessService.ToggleActivity(c.Request.Context(), planID, index, req.Completed)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"plan": plan})
}
