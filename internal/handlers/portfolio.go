package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"luxe-studio/internal/catalog"
	"luxe-studio/internal/middleware"
	"luxe-studio/internal/showcase"

	"github.com/gin-gonic/gin"
)

const portfolioAnchor = "/#portfolio"

// PortfolioHandler serves the home page grid and the gestures that change
// the visitor's filter and modal.
type PortfolioHandler struct {
	catalog *catalog.Catalog
}

func NewPortfolioHandler(cat *catalog.Catalog) *PortfolioHandler {
	return &PortfolioHandler{catalog: cat}
}

type categoryView struct {
	catalog.Category
	Active bool
}

type thumbView struct {
	Index  int
	Active bool
}

type modalView struct {
	Project      catalog.Project
	CategoryName string
	Image        string
	Index        int
	Count        int
	Thumbs       []thumbView
}

func (h *PortfolioHandler) categories(active string) []categoryView {
	cats := h.catalog.Categories()
	out := make([]categoryView, 0, len(cats))
	for _, cat := range cats {
		out = append(out, categoryView{Category: cat, Active: cat.ID == active})
	}
	return out
}

func (h *PortfolioHandler) modal(ctrl *showcase.Controller) *modalView {
	p, ok := ctrl.Selected()
	if !ok {
		return nil
	}

	m := &modalView{
		Project: p,
		Index:   ctrl.ImageIndex(),
		Count:   len(p.GalleryImages),
	}
	if cat, ok := h.catalog.Category(p.Category); ok {
		m.CategoryName = cat.Name
	}
	m.Image, _ = ctrl.CurrentImage()
	for i := range p.GalleryImages {
		m.Thumbs = append(m.Thumbs, thumbView{Index: i, Active: i == m.Index})
	}
	return m
}

// Home renders GET /.
func (h *PortfolioHandler) Home(c *gin.Context) {
	ctrl := middleware.Showcase(c)

	render(c, http.StatusOK, "index.html", gin.H{
		"Categories":   h.categories(ctrl.Category()),
		"Projects":     ctrl.Visible(),
		"Modal":        h.modal(ctrl),
		"ScrollLocked": ctrl.ScrollLocked(),
	})
}

// SetCategory handles POST /portfolio/category.
func (h *PortfolioHandler) SetCategory(c *gin.Context) {
	middleware.Showcase(c).SetCategory(c.PostForm("category"))
	h.commit(c)
}

// Open handles POST /portfolio/projects/:id/open.
func (h *PortfolioHandler) Open(c *gin.Context) {
	if err := middleware.Showcase(c).Select(c.Param("id")); err != nil {
		if errors.Is(err, showcase.ErrUnknownProject) {
			c.String(http.StatusNotFound, "Project not found")
			return
		}
		c.String(http.StatusInternalServerError, "Failed to open project")
		return
	}
	h.commit(c)
}

// Close handles POST /portfolio/close.
func (h *PortfolioHandler) Close(c *gin.Context) {
	middleware.Showcase(c).Close()
	h.commit(c)
}

// NextImage handles POST /portfolio/gallery/next.
func (h *PortfolioHandler) NextImage(c *gin.Context) {
	middleware.Showcase(c).Next()
	h.commit(c)
}

// PreviousImage handles POST /portfolio/gallery/previous.
func (h *PortfolioHandler) PreviousImage(c *gin.Context) {
	middleware.Showcase(c).Previous()
	h.commit(c)
}

// JumpToImage handles POST /portfolio/gallery/:index.
func (h *PortfolioHandler) JumpToImage(c *gin.Context) {
	idx, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid image index")
		return
	}
	if err := middleware.Showcase(c).JumpTo(idx); err != nil {
		c.String(http.StatusBadRequest, "Image index out of range")
		return
	}
	h.commit(c)
}

func (h *PortfolioHandler) commit(c *gin.Context) {
	if err := middleware.SaveShowcase(c); err != nil {
		c.String(http.StatusInternalServerError, "Failed to save state")
		return
	}
	c.Redirect(http.StatusFound, portfolioAnchor)
}
