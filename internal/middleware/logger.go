package middleware

import (
	"log"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogger writes one key=value line per request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Printf("request method=%s path=%s status=%d client_ip=%s latency=%s",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			c.ClientIP(),
			time.Since(start),
		)
	}
}

// Recovery converts panics into the standard JSON error envelope instead of
// an empty 500.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if recovered := recover(); recovered != nil {
				log.Printf("panic method=%s path=%s error=%v stack=%s",
					c.Request.Method, c.Request.URL.Path, recovered, debug.Stack())
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"error": gin.H{
						"code":    "INTERNAL_ERROR",
						"message": "Error interno del servidor",
					},
				})
			}
		}()
		c.Next()
	}
}
