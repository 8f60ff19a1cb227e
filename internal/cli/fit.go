package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/msomdec/knit-designer/internal/domain"
	"github.com/msomdec/knit-designer/internal/service"
	"github.com/spf13/cobra"
)

func fitCmd() *cobra.Command {
	var (
		req    domain.IntegrationRequest
		name   string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "fit",
		Short: "Fit a stitch pattern repeat into a stitch count",
		Long: `Work out how many full repeats fit between the edge stitches and list
the ways to place the leftover stitches.

Examples:
  knit-designer fit --stitches 103 --repeat 8 --edges 2
  knit-designer fit --stitches 96 --repeat 12 --name "Horseshoe Cable" --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			analysis, err := service.AnalyzeIntegration(req)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				return writeIndentedJSON(out, analysis)
			}
			displayAnalysis(out, analysis, name)
			return nil
		},
	}

	cmd.Flags().IntVar(&req.TargetStitchCount, "stitches", 0, "target stitch count for the piece")
	cmd.Flags().IntVar(&req.RepeatWidth, "repeat", 0, "stitches in one pattern repeat")
	cmd.Flags().IntVar(&req.DesiredEdgeStitchesPerSide, "edges", 0, "edge stitches wanted on each side")
	cmd.Flags().StringVar(&name, "name", "", "stitch pattern name used in the set-up rows")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the analysis as JSON")
	_ = cmd.MarkFlagRequired("stitches")
	_ = cmd.MarkFlagRequired("repeat")

	return cmd
}

func displayAnalysis(w io.Writer, a *domain.IntegrationAnalysis, name string) {
	fmt.Fprintf(w, "Target: %d stitches, repeat %d, %d edge stitches each side\n",
		a.Request.TargetStitchCount, a.Request.RepeatWidth, a.Request.DesiredEdgeStitchesPerSide)
	fmt.Fprintf(w, "Fit:    %s\n", fitLabel(a.Fit))

	if a.Fit == domain.FitDoesNotFit {
		fmt.Fprintf(w, "\n%s\n", a.Notice)
		return
	}

	fmt.Fprintf(w, "        %d full repeats use %d of %d stitches, %d left over\n\n",
		a.FullRepeats, a.StitchesUsedByRepeats, a.AvailableForRepeats, a.RemainingStitches)
	for i, o := range a.Options {
		fmt.Fprintf(w, "%d. %s\n", i+1, color.New(color.FgCyan).Sprint(o.Kind))
		fmt.Fprintf(w, "   %s\n", o.Description)
		fmt.Fprintf(w, "   %s\n", service.RenderOptionText(o, name, a.Request.RepeatWidth))
	}
}

func fitLabel(f domain.FitStatus) string {
	switch f {
	case domain.FitExact:
		return color.New(color.FgGreen).Sprint(f)
	case domain.FitRemainder:
		return color.New(color.FgYellow).Sprint(f)
	}
	return color.New(color.FgRed).Sprint(f)
}

func writeIndentedJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
