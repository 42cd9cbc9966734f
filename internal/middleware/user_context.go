package middleware

import (
	"net/http"

	"luxe-studio/internal/database"
	"luxe-studio/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const currentUserKey = "CurrentUser"

// InjectUser loads the signed-in staff member for the staff area. A session
// pointing at a deleted account is signed out.
func InjectUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		uid, ok := sess.Get("user_id").(uint)
		if !ok || uid == 0 || database.DB == nil {
			c.Next()
			return
		}

		var user models.User
		if err := database.DB.First(&user, uid).Error; err != nil {
			sess.Delete("user_id")
			_ = sess.Save()
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}

		c.Set(currentUserKey, &user)
		c.Next()
	}
}

func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil, false
	}
	u, ok := v.(*models.User)
	return u, ok
}
