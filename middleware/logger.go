package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()
		path := c.Request.URL.Path
		method := c.Request.Method
		clientIP := c.ClientIP()

		prefix := ""
		switch {
		case status >= 500:
			prefix = "❌ "
		case status >= 400:
			prefix = "⚠️  "
		}
		log.Printf("%s%s %s %d %s ip=%s rid=%s", prefix, method, path, status, latency, clientIP, RequestIDFrom(c))
	}
}
