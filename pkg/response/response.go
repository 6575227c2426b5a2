package response

import "github.com/gin-gonic/gin"

// Response is the envelope every API reply uses. Clients key off Success,
// not HTTP status codes.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// OK sends a successful response with a data payload.
func OK(c *gin.Context, data interface{}) {
	c.JSON(200, Response{Success: true, Data: data})
}

// OKMessage sends a successful response carrying only a message.
func OKMessage(c *gin.Context, message string) {
	c.JSON(200, Response{Success: true, Message: message})
}

// OKFields sends a successful response with extra top-level fields, for
// endpoints whose clients expect fields beside "success".
func OKFields(c *gin.Context, fields gin.H) {
	out := gin.H{"success": true}
	for k, v := range fields {
		out[k] = v
	}
	c.JSON(200, out)
}

// Error sends a failed response with the given status and message.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, Response{Success: false, Message: message})
}

// BadRequest sends a 400 response.
func BadRequest(c *gin.Context, message string) {
	Error(c, 400, message)
}

// Unauthorized sends a 401 response.
func Unauthorized(c *gin.Context, message string) {
	Error(c, 401, message)
}

// NotFound sends a 404 response.
func NotFound(c *gin.Context, message string) {
	Error(c, 404, message)
}

// InternalError sends a 500 response.
func InternalError(c *gin.Context, message string) {
	Error(c, 500, message)
}
