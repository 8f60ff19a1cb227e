package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/msomdec/knit-designer/internal/domain"
	"github.com/msomdec/knit-designer/internal/service"
	"github.com/spf13/cobra"
)

func (a *app) readinessCmd() *cobra.Command {
	var (
		steps  []string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "readiness <snapshot.json|->",
		Short: "Report how complete a pattern definition is",
		Long: `Evaluate a session snapshot against the workspace steps for its garment
type, or against an explicit --steps list.

Examples:
  knit-designer readiness sweater.json
  knit-designer readiness --steps garment-type,gauge,summary - < scarf.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshot, err := readSnapshot(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			policy, err := a.cfg.Policy()
			if err != nil {
				return fmt.Errorf("load policy: %w", err)
			}

			available := service.StepsFor(snapshot.GarmentType)
			if len(steps) > 0 {
				available = make([]domain.SectionKey, len(steps))
				for i, s := range steps {
					available[i] = domain.SectionKey(strings.TrimSpace(s))
				}
			}

			summary, err := policy.Evaluate(snapshot, available)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeIndentedJSON(out, summary)
			}
			text := service.RenderSummaryText(summary, available)
			if summary.ReadyForCalculation {
				text = strings.Replace(text, "ready for calculation", color.New(color.FgGreen).Sprint("ready for calculation"), 1)
			}
			fmt.Fprintln(out, text)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&steps, "steps", nil, "comma-separated section keys to evaluate")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the summary as JSON")

	return cmd
}
