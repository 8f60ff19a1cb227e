// Package cli wires the knit-designer command tree.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/msomdec/knit-designer/internal/config"
	"github.com/spf13/cobra"
)

type app struct {
	cfg *config.Config
}

// RootCmd returns the knit-designer command with all subcommands attached.
func RootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "knit-designer",
		Short: "Knitting pattern design service and tools",
		Long: `knit-designer serves the pattern-definition workspace API and offers
offline tools for fitting stitch repeats, checking definition readiness
and filling in default garment parameters.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			a.cfg = cfg
			setupLogging(cfg.LogLevel)
			return nil
		},
	}

	root.AddCommand(a.serveCmd())
	root.AddCommand(a.migrateCmd())
	root.AddCommand(fitCmd())
	root.AddCommand(a.readinessCmd())
	root.AddCommand(a.defaultsCmd())
	root.AddCommand(a.catalogCmd())

	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := RootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.New(color.FgRed).Sprint("Error:"), err)
		os.Exit(1)
	}
}

func setupLogging(level slog.Level) {
	logOpts := &slog.HandlerOptions{Level: level}
	logger := slog.New(slog.NewMultiHandler(
		slog.NewTextHandler(os.Stdout, logOpts),
		slog.NewJSONHandler(os.Stderr, logOpts),
	))
	slog.SetDefault(logger)
}
