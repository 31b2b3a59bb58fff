package common

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SuccessResult is the acknowledgment body for write operations
type SuccessResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorResult is the error body for all failure responses
type ErrorResult struct {
	Error string `json:"error"`
}

// SuccessResponse returns a `{success:true, message}` acknowledgment.
// The timeline client re-lists after every write, so no entity is echoed back.
func SuccessResponse(c *gin.Context, message string) {
	c.JSON(http.StatusOK, SuccessResult{
		Success: true,
		Message: message,
	})
}

// ErrorResponse returns a `{error}` JSON response with the given status
func ErrorResponse(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResult{Error: message})
}
