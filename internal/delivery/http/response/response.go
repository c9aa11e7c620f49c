package response

import (
	"portfolio-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the JSON shape of every failed request
type ErrorBody struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// MessageBody is returned by operations with nothing else to report
type MessageBody struct {
	Message string `json:"message"`
}

// Success writes data as the whole response body
func Success(c *gin.Context, code int, data interface{}) {
	c.JSON(code, data)
}

// Message sends a plain confirmation message
func Message(c *gin.Context, code int, message string) {
	c.JSON(code, MessageBody{Message: message})
}

// Error sends an error response
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorBody{
		Error:     message,
		RequestID: RequestID(c),
	})
}

func RequestID(c *gin.Context) string {
	reqID, _ := c.Get(string(domain.KeyRequestID))
	idStr, _ := reqID.(string)
	return idStr
}
