package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/recast/internal/adapters/manifest"
)

func (c *CLI) newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch [manifest]",
		Short: "Precompile the manifest's sources into the transform cache",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := manifest.DefaultFilename
			if len(args) == 1 {
				path = args[0]
			}
			workers, _ := cmd.Flags().GetInt("workers")

			summary, err := c.components.App.Batch(cmd.Context(), path, workers)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d files: %d transformed, %d cached\n",
				summary.Files, summary.Transformed, summary.Cached)
			return err
		},
	}

	cmd.Flags().Int("workers", 0, "Number of parallel workers (0 = one per CPU)")

	return cmd
}
