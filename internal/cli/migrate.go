package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/msomdec/knit-designer/internal/repository/sqlite"
	"github.com/msomdec/knit-designer/internal/service"
	"github.com/spf13/cobra"
)

func (a *app) migrateCmd() *cobra.Command {
	var status bool
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and seed the stitch pattern catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if status {
				db, err := sqlite.New(a.cfg.DatabasePath)
				if err != nil {
					return fmt.Errorf("open database: %w", err)
				}
				defer db.Close()
				return printMigrationStatus(cmd, db)
			}

			db, err := a.openDB(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			catalog, err := service.NewStitchPatternService(db.StitchPatterns(), a.cfg.CatalogCacheSize)
			if err != nil {
				return err
			}
			if err := catalog.SeedPredefined(ctx); err != nil {
				return fmt.Errorf("seed predefined stitch patterns: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s database at %s is up to date\n",
				color.New(color.FgGreen).Sprint("✓"), a.cfg.DatabasePath)
			return nil
		},
	}
	cmd.Flags().BoolVar(&status, "status", false, "list applied and pending migrations without applying them")
	return cmd
}

func printMigrationStatus(cmd *cobra.Command, db *sqlite.DB) error {
	all, err := db.MigrationStatus(cmd.Context())
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	pending := 0
	for _, m := range all {
		mark := color.New(color.FgGreen).Sprint("applied")
		if !m.Applied {
			mark = color.New(color.FgYellow).Sprint("pending")
			pending++
		}
		fmt.Fprintf(out, "%03d  %-7s  %s\n", m.Version, mark, m.File)
	}
	writePendingSummary(out, pending)
	return nil
}

func writePendingSummary(w io.Writer, pending int) {
	if pending == 0 {
		fmt.Fprintln(w, "schema is up to date")
		return
	}
	fmt.Fprintf(w, "%d migration(s) pending; run `knit-designer migrate`\n", pending)
}
