package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Fetch dependencies, build the native library and print link directives",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := runOptions(cmd)
			opts.EnvFile, _ = cmd.Flags().GetString("env-file")
			return c.app.Run(cmd.Context(), opts)
		},
	}
	cmd.Flags().String("env-file", "", "Dotenv file merged into the environment; process variables win")
	return cmd
}
