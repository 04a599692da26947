package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/lunchly/utils"
)

func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		if raw != "" {
			path = path + "?" + raw
		}

		utils.InfoLogger.WithFields(logrus.Fields{
			"request_id": GetRequestID(c),
			"client_ip":  c.ClientIP(),
			"status":     c.Writer.Status(),
			"latency":    time.Since(start),
		}).Infof("%s %s", c.Request.Method, path)
	}
}
