package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/mist/internal/app"
)

func (c *CLI) newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the configured tasks once",
		Long: "Compile the project and export every selected task that is not disabled.\n" +
			"Without --task all configured tasks are exported.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tasks, _ := cmd.Flags().GetStringSlice("task")
			return c.app.Export(cmd.Context(), app.ExportOptions{Tasks: tasks})
		},
	}
	cmd.Flags().StringSliceP("task", "t", nil, "Export only the named task (repeatable)")
	return cmd
}

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Export tasks whenever project files change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tasks, _ := cmd.Flags().GetStringSlice("task")
			return c.app.Watch(cmd.Context(), app.ExportOptions{Tasks: tasks})
		},
	}
	cmd.Flags().StringSliceP("task", "t", nil, "Watch only the named task (repeatable)")
	return cmd
}
