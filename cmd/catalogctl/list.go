package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"luxe-studio/internal/catalog"
)

var listCategory string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the projects visible under a category",
	Example: `  catalogctl list
  catalogctl list --category residential`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		return printProjects(cmd.OutOrStdout(), cat, listCategory)
	},
}

func init() {
	listCmd.Flags().StringVarP(&listCategory, "category", "c", catalog.AllCategoryID, "category key to filter by")
}

func printProjects(w io.Writer, cat *catalog.Catalog, category string) error {
	projects := cat.Visible(category)
	if len(projects) == 0 {
		_, err := fmt.Fprintln(w, styleMuted.Render(fmt.Sprintf("no projects in category %q", category)))
		return err
	}

	rows := [][]string{{"ID", "TITLE", "CATEGORY", "YEAR", "IMAGES"}}
	for _, p := range projects {
		rows = append(rows, []string{p.ID, p.Title, p.Category, p.Year, fmt.Sprint(len(p.GalleryImages))})
	}

	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	for r, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			style := styleCell.Width(widths[i] + 2)
			if r == 0 {
				style = style.Inherit(styleHeader)
			}
			cells[i] = style.Render(cell)
		}
		if _, err := fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top, cells...)); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w, styleMuted.Render(fmt.Sprintf("%d of %d projects", len(projects), cat.Len())))
	return err
}
