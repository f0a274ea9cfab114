package utilities

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
)

const bearerPrefix = "Bearer "

// ExtractBearerToken returns the raw token from an "Authorization: Bearer ..."
// header, or an error when the header is absent or not bearer-shaped.
func ExtractBearerToken(c *gin.Context) (string, error) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, bearerPrefix) || len(header) == len(bearerPrefix) {
		return "", errors.New("Invalid authorization header")
	}
	return strings.TrimPrefix(header, bearerPrefix), nil
}
