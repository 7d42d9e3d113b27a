package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/recast/internal/core/domain"
)

func (c *CLI) newTransformCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transform <file>",
		Short: "Compile a source file into an executable module",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			esm, _ := cmd.Flags().GetBool("esm")
			coverage, _ := cmd.Flags().GetBool("coverage")
			async, _ := cmd.Flags().GetBool("async")

			cc := domain.CallContext{
				WantsCoverage:     coverage,
				SupportsStaticESM: esm,
			}

			res, err := c.components.App.TransformFile(cmd.Context(), args[0], cc, async)
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), res.Code)
			return err
		},
	}

	cmd.Flags().Bool("esm", false, "Emit ECMAScript modules instead of commonJS")
	cmd.Flags().Bool("coverage", false, "Request coverage instrumentation for this run")
	cmd.Flags().Bool("async", false, "Use the asynchronous delegation path (always emits ES modules)")

	return cmd
}
