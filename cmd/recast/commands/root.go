// Package commands implements the CLI commands for the recast transformer.
package commands

import (
	"context"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/recast/internal/adapters/execcompiler"
	"go.trai.ch/recast/internal/app"
)

// CLI represents the command line interface for recast.
type CLI struct {
	components *app.Components
	rootCmd    *cobra.Command
}

// New creates a new CLI instance with the given components.
func New(components *app.Components) *CLI {
	rootCmd := &cobra.Command{
		Use:           "recast",
		Short:         "Adapt source files into executable modules via an external compiler",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringP("dir", "C", ".", "Directory for compiler config discovery")
	rootCmd.PersistentFlags().String("compiler-cmd", "", "External compiler command to delegate to instead of the built-in engine")
	rootCmd.PersistentFlags().String("compiler-version", "unknown", "Version fingerprint of the external compiler command")

	c := &CLI{
		components: components,
		rootCmd:    rootCmd,
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		return c.configure(cmd)
	}

	rootCmd.AddCommand(c.newTransformCmd())
	rootCmd.AddCommand(c.newKeyCmd())
	rootCmd.AddCommand(c.newBatchCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// configure applies the persistent flags to the application.
func (c *CLI) configure(cmd *cobra.Command) error {
	dir, err := cmd.Flags().GetString("dir")
	if err != nil {
		return err
	}
	c.components.App.WithDir(dir)

	command, err := cmd.Flags().GetString("compiler-cmd")
	if err != nil {
		return err
	}
	if command != "" {
		version, err := cmd.Flags().GetString("compiler-version")
		if err != nil {
			return err
		}
		c.components.App.WithCompiler(execcompiler.New(strings.Fields(command), version, c.components.Logger))
	}

	return nil
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOut redirects command output. Used for testing.
func (c *CLI) SetOut(w io.Writer) {
	c.rootCmd.SetOut(w)
}
