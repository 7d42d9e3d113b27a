package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/recast/internal/core/domain"
)

func (c *CLI) newKeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key <file>",
		Short: "Derive the cache key for a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			esm, _ := cmd.Flags().GetBool("esm")

			key, err := c.components.App.DeriveKey(args[0], domain.CallContext{SupportsStaticESM: esm})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), key)
			return err
		},
	}

	cmd.Flags().Bool("esm", false, "Derive the key for ECMAScript-module output")

	return cmd
}
