package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mindease/mindease-backend/internal/platform/apierr"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

// RespondServiceError renders an *apierr.Error as-is. Anything else is an
// internal failure and its detail stays out of the response.
func RespondServiceError(c *gin.Context, err error) {
	if ae, ok := apierr.From(err); ok {
		RespondError(c, ae.Status, ae.Code, ae)
		return
	}
	_ = c.Error(err)
	RespondError(c, http.StatusInternalServerError, "internal", errors.New("internal server error"))
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondCreated(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}
