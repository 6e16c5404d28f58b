package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

// FromError writes the response matching the error kind.
func FromError(c *gin.Context, err error) {
	code := CodeOf(err)

	switch KindOf(err) {
	case KindNotFound:
		Write(c, http.StatusNotFound, code, "Resource not found.")
	case KindConflict:
		Write(c, http.StatusConflict, code, "Request conflicts with current state.")
	case KindInvalidInput:
		Write(c, http.StatusBadRequest, code, "Invalid request.")
	case KindForbidden:
		Write(c, http.StatusForbidden, code, "Not allowed.")
	default:
		if code == "" {
			code = "internal_error"
		}
		_ = c.Error(err)
		Write(c, http.StatusBadGateway, code, "A dependency failed, try again later.")
	}
}
