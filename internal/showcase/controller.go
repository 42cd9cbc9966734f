// Package showcase holds one visitor's portfolio state: the active category
// filter and the project detail modal with its image gallery.
package showcase

import (
	"errors"
	"fmt"

	"luxe-studio/internal/catalog"
)

var (
	// ErrUnknownProject is returned by Select for an ID the catalog lacks.
	ErrUnknownProject = errors.New("project is not in the catalog")
	// ErrImageOutOfRange is returned by JumpTo for an index outside the gallery.
	ErrImageOutOfRange = errors.New("gallery index out of range")
)

// Phase is the state of the project detail modal.
type Phase int

const (
	Closed Phase = iota
	Open
)

func (p Phase) String() string {
	if p == Open {
		return "open"
	}
	return "closed"
}

// Controller is not safe for concurrent use; each request restores its own
// from the visitor's session.
type Controller struct {
	catalog  *catalog.Catalog
	category string

	selected *catalog.Project
	image    int
}

// New returns a controller showing every project with the modal closed.
func New(cat *catalog.Catalog) *Controller {
	return &Controller{
		catalog:  cat,
		category: catalog.AllCategoryID,
	}
}

// SetCategory accepts any key; unknown keys simply match nothing.
// The modal is left as it is.
func (c *Controller) SetCategory(id string) {
	c.category = id
}

func (c *Controller) Category() string {
	return c.category
}

// Visible is recomputed from the catalog on every call.
func (c *Controller) Visible() []catalog.Project {
	return c.catalog.Visible(c.category)
}

// Select opens the modal on a project. The project need not be in the
// visible subset. Switching to another project resets the gallery; selecting
// the open project again keeps the current image.
func (c *Controller) Select(projectID string) error {
	p, ok := c.catalog.Project(projectID)
	if !ok {
		return fmt.Errorf("select %q: %w", projectID, ErrUnknownProject)
	}

	if c.selected != nil && c.selected.ID == p.ID {
		return nil
	}
	c.selected = &p
	c.image = 0
	return nil
}

// Close hides the modal; it does nothing when the modal is already closed.
func (c *Controller) Close() {
	c.selected = nil
	c.image = 0
}

func (c *Controller) Phase() Phase {
	if c.selected == nil {
		return Closed
	}
	return Open
}

func (c *Controller) Selected() (catalog.Project, bool) {
	if c.selected == nil {
		return catalog.Project{}, false
	}
	return *c.selected, true
}

// ScrollLocked reports whether the page behind the modal must not scroll.
func (c *Controller) ScrollLocked() bool {
	return c.selected != nil
}

func (c *Controller) ImageIndex() int {
	return c.image
}

func (c *Controller) galleryLen() int {
	if c.selected == nil {
		return 0
	}
	return len(c.selected.GalleryImages)
}

// Next advances the gallery, wrapping to the first image.
func (c *Controller) Next() {
	if n := c.galleryLen(); n > 1 {
		c.image = (c.image + 1) % n
	}
}

// Previous steps the gallery back, wrapping to the last image.
func (c *Controller) Previous() {
	if n := c.galleryLen(); n > 1 {
		c.image = (c.image - 1 + n) % n
	}
}

// JumpTo rejects indices outside the gallery and leaves the state unchanged.
func (c *Controller) JumpTo(i int) error {
	n := c.galleryLen()
	if i < 0 || i >= n {
		return fmt.Errorf("jump to %d of %d: %w", i, n, ErrImageOutOfRange)
	}
	c.image = i
	return nil
}

// CurrentImage returns the gallery image being shown, if any.
func (c *Controller) CurrentImage() (string, bool) {
	if c.galleryLen() == 0 {
		return "", false
	}
	return c.selected.GalleryImages[c.image], true
}
