package identity

import "github.com/gin-gonic/gin"

const contextKey = "callerID"

// CallerID returns the calling user's id stored by the identity
// middleware, or 0 when the request carried no identity.
func CallerID(c *gin.Context) int64 {
	if v, ok := c.Get(contextKey); ok {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}

func setCallerID(c *gin.Context, id int64) {
	c.Set(contextKey, id)
}
