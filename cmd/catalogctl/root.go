package main

import (
	"github.com/spf13/cobra"

	"luxe-studio/internal/catalog"
)

var catalogPath string

var rootCmd = &cobra.Command{
	Use:   "catalogctl",
	Short: "Inspect and seed the portfolio catalog",
	Long: styleTitle.Render("catalogctl") + " - portfolio catalog tool\n\n" +
		"Lists, validates and seeds the projects and categories shown on the site.\n" +
		"Without --file the built-in catalog is used.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&catalogPath, "file", "f", "", "catalog YAML file (default: built-in catalog)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(seedCmd)
}

func loadCatalog() (*catalog.Catalog, error) {
	return catalog.Load(catalogPath)
}
