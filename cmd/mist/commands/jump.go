package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/mist/internal/app"
)

func (c *CLI) newJumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jump FILE:LINE:COLUMN",
		Short: "Print where a source location is rendered",
		Long: "Print one \"page X Y\" line for every position at which the source location\n" +
			"is rendered. Coordinates are in points from the top left corner of the page.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := app.JumpOptions{Location: args[0]}
			if stdin, _ := cmd.Flags().GetBool("stdin"); stdin {
				opts.Unsaved = cmd.InOrStdin()
			}
			return c.app.Jump(cmd.Context(), opts, cmd.OutOrStdout())
		},
	}
	cmd.Flags().Bool("stdin", false, "Read unsaved content of FILE from standard input")
	return cmd
}
