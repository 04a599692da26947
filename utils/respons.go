package utils

import (
	"github.com/gin-gonic/gin"
)

type JSONResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondJSON(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, JSONResponse{
		Status:  code >= 200 && code < 300,
		Message: message,
		Data:    data,
	})
}

// RespondError hands err to the error reporter and stops the handler chain.
// The reporter picks the status code and renders the failure page.
func RespondError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
