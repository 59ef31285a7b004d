package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mindease/mindease-backend/internal/http/response"
)

// uuidParam writes a 400 and returns false when the path param is not a UUID.
func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(c.Param(name)))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", errors.New("invalid "+name))
		return uuid.Nil, false
	}
	return id, true
}

// queryInt returns def for a missing or malformed value.
func queryInt(c *gin.Context, key string, def int) int {
	v := strings.TrimSpace(c.Query(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// queryIntPtr returns nil for a missing or malformed value.
func queryIntPtr(c *gin.Context, key string) *int {
	v := strings.TrimSpace(c.Query(key))
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil
	}
	return &n
}
