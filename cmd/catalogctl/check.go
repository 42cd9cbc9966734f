package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"luxe-studio/internal/catalog"
)

var errCatalogIssues = errors.New("catalog has issues")

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the catalog",
	Long:  "Loads the catalog and reports unknown categories, empty galleries and other data problems.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		return reportIssues(cmd.OutOrStdout(), cat)
	},
}

func reportIssues(w io.Writer, cat *catalog.Catalog) error {
	issues := cat.Validate()
	if len(issues) == 0 {
		fmt.Fprintln(w, styleSuccess.Render(fmt.Sprintf("%s catalog ok: %d projects, %d categories",
			iconSuccess, cat.Len(), len(cat.Categories()))))
		return nil
	}

	for _, issue := range issues {
		fmt.Fprintln(w, styleWarning.Render(iconWarning+" "+issue.String()))
	}
	return fmt.Errorf("%w: %d found", errCatalogIssues, len(issues))
}
