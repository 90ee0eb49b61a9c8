package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// OwnerRequired lets only the signed-in site owner through. A valid session
// for any other login is cleared.
func OwnerRequired(ownerLogin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := GetSession(c)
		if session == nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		if ownerLogin == "" || !strings.EqualFold(session.Login, ownerLogin) {
			ClearSession(c)
			c.Redirect(http.StatusFound, "/login?error=not_owner")
			c.Abort()
			return
		}

		c.Next()
	}
}
