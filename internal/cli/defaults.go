package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) defaultsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "defaults <snapshot.json|->",
		Short: "Print a snapshot with default garment parameters filled in",
		Long: `Fill in the garment structure, neckline and sleeves a sweater or cardigan
left unspecified and print the resulting snapshot as JSON. Other garment
types are printed unchanged.`,
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
			return writeIndentedJSON(cmd.OutOrStdout(), policy.ApplyDefaults(snapshot))
		},
	}
}
