package identity

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Header carries the caller's user id on every request. The gateway in
// front of this service is trusted to have authenticated the user.
const Header = "X-Sharer-User-Id"

// Required is a Gin middleware that extracts the caller id from the
// X-Sharer-User-Id header. A missing or non-numeric header is a 400:
// the contract makes the header mandatory, so its absence is a
// malformed request rather than a failed authentication.
func Required() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(Header)
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": "missing " + Header + " header",
			})
			return
		}

		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": "invalid " + Header + " header",
			})
			return
		}

		setCallerID(c, id)
		c.Next()
	}
}
