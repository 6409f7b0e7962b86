package middleware

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yukikurage/demodb/internal/constants"
	apierrors "github.com/yukikurage/demodb/internal/errors"
)

// RequireID parses the named path parameters as positive ids and stores
// them in the context under the same names. With no names it parses "id".
func RequireID(params ...string) gin.HandlerFunc {
	if len(params) == 0 {
		params = []string{constants.ContextKeyID}
	}
	return func(c *gin.Context) {
		for _, name := range params {
			id, err := strconv.ParseUint(c.Param(name), 10, 64)
			if err != nil || id == 0 {
				apierrors.BadRequest(c, fmt.Sprintf("Invalid %s", name))
				c.Abort()
				return
			}
			c.Set(name, id)
		}
		c.Next()
	}
}

// GetID returns an id stored by RequireID.
func GetID(c *gin.Context, name string) (uint64, bool) {
	v, exists := c.Get(name)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}
