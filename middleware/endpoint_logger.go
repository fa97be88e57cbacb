package middleware

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
)

var requestLogger = log.New(os.Stdout, "[HTTP] ", log.LstdFlags|log.Lmsgprefix)

// EndpointCallLogger logs each HTTP request with its status, duration and,
// when a session is present, the calling user.
func EndpointCallLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)
		status := c.Writer.Status()

		userID := ""
		if session, ok := GetSession(c); ok {
			userID = session.UserID
		}

		requestLogger.Printf("%s %s -> %d (%dms) user=%s ip=%s",
			c.Request.Method, c.Request.URL.Path, status,
			duration.Milliseconds(), userID, c.ClientIP())
	}
}
