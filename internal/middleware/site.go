package middleware

import (
	"luxe-studio/internal/content"

	"github.com/gin-gonic/gin"
)

// InjectSite makes the static site content available to every page.
func InjectSite(site *content.Site) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("Site", site)
		c.Next()
	}
}
