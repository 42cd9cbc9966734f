package handlers

import (
	"net/http"

	"luxe-studio/internal/catalog"
	"luxe-studio/internal/middleware"
	"luxe-studio/internal/showcase"

	"github.com/gin-gonic/gin"
)

// APIHandler exposes the catalog and the visitor's showcase state as JSON.
type APIHandler struct {
	catalog *catalog.Catalog
}

func NewAPIHandler(cat *catalog.Catalog) *APIHandler {
	return &APIHandler{catalog: cat}
}

// ListCategories handles GET /api/categories
func (h *APIHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Categories())
}

// ListProjects handles GET /api/projects?category=
func (h *APIHandler) ListProjects(c *gin.Context) {
	category := c.DefaultQuery("category", catalog.AllCategoryID)
	c.JSON(http.StatusOK, h.catalog.Visible(category))
}

// GetProject handles GET /api/projects/:id
func (h *APIHandler) GetProject(c *gin.Context) {
	project, ok := h.catalog.Project(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}
	c.JSON(http.StatusOK, project)
}

type showcaseResponse struct {
	showcase.State
	Phase        string   `json:"phase"`
	ScrollLocked bool     `json:"scrollLocked"`
	Visible      []string `json:"visible"`
}

// Showcase handles GET /api/showcase
func (h *APIHandler) Showcase(c *gin.Context) {
	ctrl := middleware.Showcase(c)

	visible := ctrl.Visible()
	ids := make([]string, 0, len(visible))
	for _, p := range visible {
		ids = append(ids, p.ID)
	}

	c.JSON(http.StatusOK, showcaseResponse{
		State:        ctrl.Snapshot(),
		Phase:        ctrl.Phase().String(),
		ScrollLocked: ctrl.ScrollLocked(),
		Visible:      ids,
	})
}
