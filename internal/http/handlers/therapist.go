package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mindease/mindease-backend/internal/data/repos"
	"github.com/mindease/mindease-backend/internal/http/response"
	"github.com/mindease/mindease-backend/internal/services"
)

type TherapistHandler struct {
	therapistService services.TherapistService
}

func NewTherapistHandler(therapistService services.TherapistService) *TherapistHandler {
	return &TherapistHandler{therapistService: therapistService}
}

// GET /api/therapists/search
func (h *TherapistHandler) Search(c *gin.Context) {
	f := repos.TherapistFilter{
		Type:           strings.TrimSpace(c.Query("type")),
		Specialization: strings.TrimSpace(c.Query("specialization")),
		SessionMode:    strings.TrimSpace(c.Query("sessionMode")),
		MinPrice:       queryIntPtr(c, "minPrice"),
		MaxPrice:       queryIntPtr(c, "maxPrice"),
		ZipCode:        strings.TrimSpace(c.Query("zipCode")),
		Location:       strings.TrimSpace(c.Query("location")),
	}
	page, err := h.therapistService.Search(c.Request.Context(), f, queryInt(c, "page", 1), queryInt(c, "limit", 0))
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, page)
}

// GET /api/therapists
func (h *TherapistHandler) List(c *gin.Context) {
	therapists, err := h.therapistService.ListActive(c.Request.Context())
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"therapists": therapists})
}

// GET /api/therapists/:id
func (h *TherapistHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	therapist, err := h.therapistService.Get(c.Request.Context(), id)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"therapist": therapist})
}

// GET /api/therapists/meta/types
func (h *TherapistHandler) Types(c *gin.Context) {
	response.RespondOK(c, gin.H{"types": h.therapistService.Types()})
}

// GET /api/therapists/meta/specializations
func (h *TherapistHandler) Specializations(c *gin.Context) {
	response.RespondOK(c, gin.H{"specializations": h.therapistService.Specializations()})
}
