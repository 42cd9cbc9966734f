package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"luxe-studio/internal/catalog"
	"luxe-studio/internal/config"
	"luxe-studio/internal/database"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the catalog into the database",
	Long: "Copies the catalog into empty postgres tables (DB_DSN). Tables that\n" +
		"already hold projects are left untouched.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Parse()
		if err != nil {
			return err
		}
		if !cfg.DatabaseEnabled() {
			return errors.New("DB_DSN is not set")
		}

		r, err := catalog.Open(catalogPath)
		if err != nil {
			return err
		}
		defer r.Close()

		src, err := catalog.DecodeFile(r)
		if err != nil {
			return err
		}

		database.Init(cfg.DBDSN)
		seeded, err := database.SeedCatalog(src)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if !seeded {
			fmt.Fprintln(out, styleMuted.Render("catalog tables already populated, nothing to do"))
			return nil
		}
		fmt.Fprintln(out, styleSuccess.Render(fmt.Sprintf("%s seeded %d projects", iconSuccess, len(src.Projects))))
		return nil
	},
}
