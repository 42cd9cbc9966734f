package server

import (
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"luxe-studio/internal/catalog"
	"luxe-studio/internal/config"
	"luxe-studio/internal/content"
	"luxe-studio/internal/handlers"
	"luxe-studio/internal/middleware"
	"luxe-studio/internal/models"
	"luxe-studio/web"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// maskEmail скрывает почту заявителя для роли viewer
func maskEmail(email string) string {
	local, domain, ok := strings.Cut(email, "@")
	if !ok || local == "" {
		return "***"
	}
	r := []rune(local)
	if len(r) > 2 {
		r = r[:2]
	}
	return string(r) + "***@" + domain
}

var funcMap = template.FuncMap{
	"add":       func(a, b int) int { return a + b },
	"join":      strings.Join,
	"maskEmail": maskEmail,
}

func loadTemplates() *template.Template {
	return template.Must(template.New("").Funcs(funcMap).ParseFS(web.FS, "templates/*.html"))
}

func NewRouter(cfg *config.Config, cat *catalog.Catalog, site *content.Site) *gin.Engine {
	r := gin.Default()

	static, err := fs.Sub(web.FS, "static")
	if err != nil {
		panic(err)
	}
	r.StaticFS("/static", http.FS(static))
	r.SetHTMLTemplate(loadTemplates())

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   60 * 60 * 24 * 7,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions("luxe_session", store))

	r.Use(middleware.InjectSite(site))

	// ГЛАВНАЯ + ПОРТФОЛИО
	portfolio := handlers.NewPortfolioHandler(cat)
	visitor := r.Group("/")
	visitor.Use(middleware.LoadShowcase(cat))

	visitor.GET("/", portfolio.Home)
	visitor.POST("/portfolio/category", portfolio.SetCategory)
	visitor.POST("/portfolio/projects/:id/open", portfolio.Open)
	visitor.POST("/portfolio/close", portfolio.Close)
	visitor.POST("/portfolio/gallery/next", portfolio.NextImage)
	visitor.POST("/portfolio/gallery/previous", portfolio.PreviousImage)
	visitor.POST("/portfolio/gallery/:index", portfolio.JumpToImage)

	// СТРАНИЦЫ
	r.GET("/about", handlers.AboutPage)
	r.GET("/services", handlers.ServicesPage)
	r.GET("/contact", handlers.ContactPage)
	r.POST("/contact", handlers.SubmitContact)

	// API
	api := handlers.NewAPIHandler(cat)
	r.GET("/api/categories", api.ListCategories)
	r.GET("/api/projects", api.ListProjects)
	r.GET("/api/projects/:id", api.GetProject)
	visitor.GET("/api/showcase", api.Showcase)

	// СОТРУДНИКИ: только при наличии БД
	if cfg.DatabaseEnabled() {
		r.GET("/staff/login", handlers.ShowLogin)
		r.POST("/staff/login", handlers.Login)
		r.GET("/staff/logout", handlers.Logout)

		staff := r.Group("/staff")
		staff.Use(middleware.RequireAuth(), middleware.InjectUser())

		staff.GET("/inquiries",
			middleware.RequireRole(models.RoleAdmin, models.RoleViewer),
			handlers.ListInquiries,
		)
		staff.POST("/inquiries/:id/handled",
			middleware.RequireRole(models.RoleAdmin),
			handlers.MarkInquiryHandled,
		)
		staff.GET("/audit",
			middleware.RequireRole(models.RoleAdmin),
			handlers.ListAuditLogs,
		)
	}

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
