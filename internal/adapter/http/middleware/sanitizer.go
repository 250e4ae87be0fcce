package middleware

import (
	"net/http"
	"strings"

	"dashqard-redemption/pkg/apperror"
	"dashqard-redemption/pkg/response"

	"github.com/gin-gonic/gin"
)

// MaxBodySize returns middleware that limits the request body size.
// Once the limit is exceeded the reader returns an error and binding fails.
func MaxBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}

// RequireJSON rejects requests that carry a body in anything but JSON.
func RequireJSON() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength != 0 && c.Request.Body != nil && c.Request.Body != http.NoBody {
			ct := c.ContentType()
			if !strings.EqualFold(ct, gin.MIMEJSON) {
				response.Error(c, apperror.Validation("Content-Type must be application/json"))
				c.Abort()
				return
			}
		}
		c.Next()
	}
}
