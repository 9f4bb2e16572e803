package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/royalrinse/carwash-booking/internal/metrics"
)

// Metrics counts requests by method, route template and status.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		metrics.IncHTTP(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
		)
	}
}
