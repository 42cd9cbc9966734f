package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"luxe-studio/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const loginPath = "/staff/login"

// LoginRedirect builds the login URL that sends the user back to next
// after signing in. Only local staff paths are kept.
func LoginRedirect(next string) string {
	if !SafeNext(next) {
		return loginPath
	}
	return loginPath + "?next=" + url.QueryEscape(next)
}

// SafeNext reports whether next is a staff page on this site.
func SafeNext(next string) bool {
	return strings.HasPrefix(next, "/staff/") && !strings.HasPrefix(next, "//")
}

func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		if _, ok := sess.Get("user_id").(uint); !ok {
			c.Redirect(http.StatusFound, LoginRedirect(c.Request.URL.RequestURI()))
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireRole must run after InjectUser; it checks the role stored in the
// database, not the one cached in the cookie.
func RequireRole(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := map[models.UserRole]struct{}{}
	for _, r := range roles {
		roleSet[r] = struct{}{}
	}

	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}

		if _, ok := roleSet[user.Role]; !ok {
			c.String(http.StatusForbidden, "access denied")
			c.Abort()
			return
		}
		c.Next()
	}
}
