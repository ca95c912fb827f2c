package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newPathsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "paths <profile>",
		Short: "Print the directories derived from a build profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := c.app.Paths(runOptions(cmd), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "generate: %s\n", paths.GenerateTarget)
			_, _ = fmt.Fprintf(out, "build:    %s\n", paths.BuildDir)
			_, _ = fmt.Fprintf(out, "link:     %s\n", paths.LinkSearchDir)
			return nil
		},
	}
}
