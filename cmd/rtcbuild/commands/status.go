package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.trai.ch/rtcbuild/internal/core/domain"
)

func (c *CLI) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether each submodule is checked out at its pinned commit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			statuses, err := c.app.Status(runOptions(cmd))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(statuses) == 0 {
				_, _ = fmt.Fprintln(out, "no submodules registered")
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for _, st := range statuses {
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", st.Path, state(st), short(st.Current))
			}
			return w.Flush()
		},
	}
}

func state(st domain.SubmoduleStatus) string {
	switch {
	case !st.Initialized():
		return "uninitialized"
	case st.Pinned():
		return "pinned"
	default:
		return "modified"
	}
}

func short(hash string) string {
	if len(hash) > 12 {
		return hash[:12]
	}
	if hash == "" {
		return "-"
	}
	return hash
}
