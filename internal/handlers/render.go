package handlers

import (
	"luxe-studio/internal/middleware"

	"github.com/gin-gonic/gin"
)

// render: обёртка над c.HTML, которая во все шаблоны прокидывает Site и текущего сотрудника.
func render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	if site, ok := c.Get("Site"); ok {
		data["Site"] = site
	}

	data["CurrentUsername"] = ""
	data["CurrentUserRole"] = ""

	// пользователя кладёт middleware.InjectUser только в разделе /staff
	if u, ok := middleware.CurrentUser(c); ok {
		data["CurrentUsername"] = u.Username
		data["CurrentUserRole"] = string(u.Role)
	}

	c.HTML(status, tmpl, data)
}
