package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/msomdec/knit-designer/internal/catalogfile"
	"github.com/msomdec/knit-designer/internal/service"
	"github.com/spf13/cobra"
)

func (a *app) catalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the predefined stitch pattern catalog",
	}

	cmd.AddCommand(a.catalogImportCmd())
	cmd.AddCommand(a.catalogListCmd())

	return cmd
}

func (a *app) catalogImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <glob>",
		Short: "Import predefined stitch patterns from JSONC catalog files",
		Long: `Read every catalog file matching the glob and upsert its patterns into
the predefined catalog by name. Globs support ** for nested directories.

Examples:
  knit-designer catalog import 'catalog/**/*.jsonc'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, refs, err := catalogfile.Glob(args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			db, err := a.openDB(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			catalog, err := service.NewStitchPatternService(db.StitchPatterns(), a.cfg.CatalogCacheSize)
			if err != nil {
				return err
			}
			created, updated, err := catalog.Import(ctx, refs)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, p := range paths {
				fmt.Fprintf(out, "  read %s\n", p)
			}
			fmt.Fprintf(out, "%s %d created, %d updated, %d unchanged\n",
				color.New(color.FgGreen).Sprint("✓"), created, updated, len(refs)-created-updated)
			return nil
		},
	}
}

func (a *app) catalogListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the predefined stitch patterns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
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
				return err
			}
			refs, err := catalog.ListPredefined(ctx)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tCATEGORY\tWIDTH\tHEIGHT")
			for _, r := range refs {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%d\n", r.Name, r.Category, r.RepeatWidth, r.RepeatHeight)
			}
			return tw.Flush()
		},
	}
}
