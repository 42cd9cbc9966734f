// Package data holds the built-in catalog and site content used when no
// external files are configured.
package data

import "embed"

//go:embed catalog.yaml site.yaml
var FS embed.FS

const (
	CatalogFile = "catalog.yaml"
	SiteFile    = "site.yaml"
)
