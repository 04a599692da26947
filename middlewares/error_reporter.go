package middlewares

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/lunchly/models"
	"github.com/yeremiapane/lunchly/utils"
)

// ErrorReporter renders the last error a handler recorded with c.Error.
// Handlers never write a failure response themselves.
func ErrorReporter() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status := StatusFor(err)
		message := err.Error()

		entry := utils.ErrorLogger.WithFields(logrus.Fields{
			"request_id": GetRequestID(c),
			"status":     status,
			"path":       c.Request.URL.Path,
		})
		if status >= http.StatusInternalServerError {
			entry.Errorf("request failed: %v", err)
			message = "Something went wrong. Please try again."
		} else {
			entry.Warnf("request rejected: %v", err)
		}

		switch c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) {
		case gin.MIMEJSON:
			utils.RespondJSON(c, status, message, nil)
		default:
			c.HTML(status, "error.html", gin.H{
				"status":     status,
				"statusText": http.StatusText(status),
				"message":    message,
			})
		}
	}
}

func StatusFor(err error) int {
	var validation *models.ValidationError
	switch {
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &validation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
