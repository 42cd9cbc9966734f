package catalog

import (
	"errors"
	"fmt"
	"slices"
)

// AllCategoryID is the reserved category key that disables filtering.
const AllCategoryID = "all"

var ErrInvalidCatalog = errors.New("invalid catalog")

type Category struct {
	ID   string `yaml:"id" json:"id"`
	Name string `yaml:"name" json:"name"`
	Slug string `yaml:"slug" json:"slug"`
}

type Project struct {
	ID               string   `yaml:"id" json:"id"`
	Title            string   `yaml:"title" json:"title"`
	Slug             string   `yaml:"slug" json:"slug"`
	Category         string   `yaml:"category" json:"category"`
	FeaturedImage    string   `yaml:"featured_image" json:"featuredImage"`
	GalleryImages    []string `yaml:"gallery_images" json:"galleryImages"`
	ShortDescription string   `yaml:"short_description" json:"shortDescription"`
	BodyContent      string   `yaml:"body_content" json:"bodyContent"`
	Year             string   `yaml:"year" json:"year"`
	Client           string   `yaml:"client,omitempty" json:"client,omitempty"`
	Location         string   `yaml:"location,omitempty" json:"location,omitempty"`
}

func (p Project) clone() Project {
	p.GalleryImages = slices.Clone(p.GalleryImages)
	return p
}

// Catalog is the read-only set of projects and categories for the
// lifetime of the process. It is safe for concurrent use.
type Catalog struct {
	categories []Category
	projects   []Project
	byID       map[string]int
}

// New builds a catalog, keeping the given order as catalog order.
func New(categories []Category, projects []Project) (*Catalog, error) {
	c := &Catalog{
		categories: make([]Category, 0, len(categories)),
		projects:   make([]Project, 0, len(projects)),
		byID:       make(map[string]int, len(projects)),
	}

	seenCat := map[string]struct{}{}
	for i, cat := range categories {
		if cat.ID == "" {
			return nil, fmt.Errorf("%w: category #%d has no id", ErrInvalidCatalog, i+1)
		}
		if _, dup := seenCat[cat.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate category id %q", ErrInvalidCatalog, cat.ID)
		}
		seenCat[cat.ID] = struct{}{}
		if cat.Slug == "" {
			cat.Slug = Slugify(cat.Name)
		}
		c.categories = append(c.categories, cat)
	}

	for i, p := range projects {
		if p.ID == "" {
			return nil, fmt.Errorf("%w: project #%d has no id", ErrInvalidCatalog, i+1)
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate project id %q", ErrInvalidCatalog, p.ID)
		}
		if p.Slug == "" {
			p.Slug = Slugify(p.Title)
		}
		c.byID[p.ID] = len(c.projects)
		c.projects = append(c.projects, p.clone())
	}

	return c, nil
}

func (c *Catalog) Categories() []Category {
	return slices.Clone(c.categories)
}

// Projects returns every project in catalog order.
func (c *Catalog) Projects() []Project {
	out := make([]Project, len(c.projects))
	for i, p := range c.projects {
		out[i] = p.clone()
	}
	return out
}

func (c *Catalog) Project(id string) (Project, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Project{}, false
	}
	return c.projects[i].clone(), true
}

func (c *Catalog) Category(id string) (Category, bool) {
	for _, cat := range c.categories {
		if cat.ID == id {
			return cat, true
		}
	}
	return Category{}, false
}

func (c *Catalog) Len() int {
	return len(c.projects)
}

// Visible applies VisibleProjects to the catalog's own projects.
func (c *Catalog) Visible(category string) []Project {
	return VisibleProjects(c.Projects(), category)
}

// VisibleProjects returns the projects shown for a category key.
// AllCategoryID keeps every project; any other key keeps the projects whose
// Category equals it, in their original order. An unknown key is not an
// error and yields an empty list. The input slice is never modified.
func VisibleProjects(all []Project, category string) []Project {
	if category == AllCategoryID {
		out := make([]Project, len(all))
		copy(out, all)
		return out
	}

	visible := make([]Project, 0, len(all))
	for _, p := range all {
		if p.Category == category {
			visible = append(visible, p)
		}
	}
	return visible
}
