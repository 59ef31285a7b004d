package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mindease/mindease-backend/internal/data/repos"
	"github.com/mindease/mindease-backend/internal/http/response"
	"github.com/mindease/mindease-backend/internal/services"
)

type ArticleHandler struct {
	articleService services.ArticleService
}

func NewArticleHandler(articleService services.ArticleService) *ArticleHandler {
	return &ArticleHandler{articleService: articleService}
}

// GET /api/articles
func (h *ArticleHandler) List(c *gin.Context) {
	f := repos.ArticleFilter{
		Category: strings.TrimSpace(c.Query("category")),
		Tag:      strings.TrimSpace(c.Query("tag")),
		Search:   strings.TrimSpace(c.Query("search")),
	}
	page, err := h.articleService.List(c.Request.Context(), f, queryInt(c, "page", 1), queryInt(c, "limit", 0))
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, page)
}

// GET /api/articles/featured
func (h *ArticleHandler) Featured(c *gin.Context) {
	articles, err := h.articleService.Featured(c.Request.Context())
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"articles": articles})
}

// GET /api/articles/:slug
func (h *ArticleHandler) GetBySlug(c *gin.Context) {
	article, err := h.articleService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"article": article})
}

// POST /api/articles/:id/like
func (h *ArticleHandler) ToggleLike(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	res, err := h.articleService.ToggleLike(c.Request.Context(), id)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, res)
}

// GET /api/articles/meta/categories
func (h *ArticleHandler) Categories(c *gin.Context) {
	response.RespondOK(c, gin.H{"categories": h.articleService.Categories()})
}

// GET /api/articles/meta/tags
func (h *ArticleHandler) Tags(c *gin.Context) {
	tags, err := h.articleService.Tags(c.Request.Context())
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"tags": tags})
}
