package showcase

import "luxe-studio/internal/catalog"

// State is the serialisable form of a Controller, kept in the visitor's
// session between requests.
type State struct {
	Category  string `json:"category"`
	ProjectID string `json:"projectId,omitempty"`
	Image     int    `json:"image"`
}

func (c *Controller) Snapshot() State {
	s := State{Category: c.category, Image: c.image}
	if c.selected != nil {
		s.ProjectID = c.selected.ID
	}
	return s
}

// Restore rebuilds a controller from a snapshot. Snapshots that no longer
// fit the catalog degrade instead of failing: an unknown project leaves the
// modal closed and an out-of-range image falls back to the first one.
func Restore(cat *catalog.Catalog, s State) *Controller {
	c := New(cat)
	if s.Category != "" {
		c.SetCategory(s.Category)
	}
	if s.ProjectID == "" {
		return c
	}
	if err := c.Select(s.ProjectID); err != nil {
		return c
	}
	_ = c.JumpTo(s.Image)
	return c
}
