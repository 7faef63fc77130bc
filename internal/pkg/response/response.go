// Package response renders the API's single JSON envelope. Successes are
// {"success":true,"data":...}; failures carry a stable machine-readable
// code next to the human message so clients branch on the code, never on
// message text.
package response

import "github.com/gin-gonic/gin"

type envelope struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Error   *apiError `json:"error,omitempty"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func Success(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, envelope{Success: true, Data: data})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, envelope{
		Success: false,
		Error:   &apiError{Code: code, Message: message},
	})
}

// ErrorWithDetails attaches structured context to a failure, e.g.
// field-level validation results.
func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, envelope{
		Success: false,
		Error:   &apiError{Code: code, Message: message, Details: details},
	})
}
