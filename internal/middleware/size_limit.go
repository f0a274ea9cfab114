package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Room for multipart boundaries and form field headers on top of the payload.
const multipartOverhead = int64(8 * 1024)

// SizeLimit caps the request body at maxBodyBytes. Reading past the cap
// yields http.MaxBytesError, which upload handlers turn into a 413.
func SizeLimit(maxBodyBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes+multipartOverhead)
		c.Next()
	}
}
