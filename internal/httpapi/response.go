package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	MessageSuccess = "Success"

	ErrorCodeBadRequest  = 1
	ErrorCodeRateLimited = 429
)

// Resp is the standard JSON response body
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
}

// OK sends 200 JSON with data
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	})
}

// BadRequest sends 400 with the error text as message
func BadRequest(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, Resp{
		ErrorCode: ErrorCodeBadRequest,
		Message:   err.Error(),
	})
}

// TooManyRequests sends 429
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Resp{
		ErrorCode: ErrorCodeRateLimited,
		Message:   "Too many requests",
	})
}
