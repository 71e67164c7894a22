package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	xerrors "wekeza-crm/internal/pkg/errors"
)

// Response defines the standard API response format.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Success sends a successful response with a message and optional data.
func Success(c *gin.Context, status int, message string, data interface{}) {
	if status == 0 {
		status = http.StatusOK
	}

	c.JSON(status, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Created sends a 201 with a Location header pointing at the new resource.
func Created(c *gin.Context, location, message string, data interface{}) {
	c.Header("Location", location)
	c.JSON(http.StatusCreated, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Error sends a standardized error response.
func Error(c *gin.Context, code int, message string, err error) {
	c.Abort()

	resp := Response{
		Success: false,
		Message: message,
	}
	if err != nil {
		resp.Error = err.Error()
	}

	c.JSON(code, resp)
}

// ValidationError sends a 400 Bad Request response for invalid input.
func ValidationError(c *gin.Context, message string, err error) {
	Error(c, http.StatusBadRequest, message, err)
}

// NotFound sends a 404 Not Found response.
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message, nil)
}

// Internal sends the undifferentiated 500 used for everything that is not
// a not-found condition.
func Internal(c *gin.Context, err error) {
	Error(c, http.StatusInternalServerError, "internal server error", err)
}

// FromError maps a service error onto the HTTP status taxonomy: unknown
// identifiers become 404, everything else a generic 500.
func FromError(c *gin.Context, err error, notFoundMessage string) {
	if xerrors.Is(err, xerrors.ErrNotFound) {
		NotFound(c, notFoundMessage)
		return
	}
	Internal(c, err)
}
