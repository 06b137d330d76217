package commands

import (
	"github.com/spf13/cobra"
)

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <image>",
		Short: "Show header fields, capacity and LSB statistics of a bitmap",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, inspectMode{path: args[0]})
		},
	}
}
