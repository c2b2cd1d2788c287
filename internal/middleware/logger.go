package middleware

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs one line per request; 5xx responses get a louder tag.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		tag := "request"
		if status >= http.StatusInternalServerError {
			tag = "request_error"
		}

		log.Printf(
			"%s status=%d method=%s path=%s client_ip=%s user_id=%d latency=%s",
			tag,
			status,
			c.Request.Method,
			c.Request.URL.Path,
			c.ClientIP(),
			c.GetInt64("user_id"),
			time.Since(start),
		)
	}
}
