package catalog

import "fmt"

type IssueKind string

const (
	IssueUnknownCategory  IssueKind = "unknown_category"
	IssueEmptyGallery     IssueKind = "empty_gallery"
	IssueMissingAll       IssueKind = "missing_all_category"
	IssueReservedCategory IssueKind = "reserved_category"
)

// Issue is a data problem that does not stop the catalog from loading.
type Issue struct {
	Kind      IssueKind
	ProjectID string
	Detail    string
}

func (i Issue) String() string {
	if i.ProjectID == "" {
		return fmt.Sprintf("%s: %s", i.Kind, i.Detail)
	}
	return fmt.Sprintf("%s: project %s: %s", i.Kind, i.ProjectID, i.Detail)
}

// Validate reports catalog content the site can still serve but that is
// probably a mistake. Projects with an unknown category stay visible under
// AllCategoryID only.
func (c *Catalog) Validate() []Issue {
	var issues []Issue

	known := make(map[string]struct{}, len(c.categories))
	for _, cat := range c.categories {
		known[cat.ID] = struct{}{}
	}
	if _, ok := known[AllCategoryID]; !ok {
		issues = append(issues, Issue{
			Kind:   IssueMissingAll,
			Detail: fmt.Sprintf("no %q category, the unfiltered view has no filter button", AllCategoryID),
		})
	}

	for _, p := range c.projects {
		switch _, ok := known[p.Category]; {
		case p.Category == AllCategoryID:
			issues = append(issues, Issue{
				Kind:      IssueReservedCategory,
				ProjectID: p.ID,
				Detail:    fmt.Sprintf("category %q is reserved", AllCategoryID),
			})
		case !ok:
			issues = append(issues, Issue{
				Kind:      IssueUnknownCategory,
				ProjectID: p.ID,
				Detail:    fmt.Sprintf("category %q is not defined", p.Category),
			})
		}
		if len(p.GalleryImages) == 0 {
			issues = append(issues, Issue{
				Kind:      IssueEmptyGallery,
				ProjectID: p.ID,
				Detail:    "gallery has no images",
			})
		}
	}

	return issues
}
