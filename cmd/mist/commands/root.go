// Package commands implements the CLI commands for mist.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/mist/internal/app"
	"go.trai.ch/mist/internal/build"
)

// CLI represents the command line interface for mist.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Export(ctx context.Context, opts app.ExportOptions) error
	Watch(ctx context.Context, opts app.ExportOptions) error
	Jump(ctx context.Context, opts app.JumpOptions, out io.Writer) error
	Clean(ctx context.Context) error
}

// LogConfigurer is implemented by loggers whose format can be changed by flags.
type LogConfigurer interface {
	SetJSON(enable bool)
	SetDebug(enable bool)
}

// New creates a new CLI instance with the given app. log may be nil.
func New(a Application, log LogConfigurer) *CLI {
	rootCmd := &cobra.Command{
		Use:           "mist",
		Short:         "Incremental exporter for plain-text documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	// Registered before the version flag so that -v stays verbose.
	rootCmd.PersistentFlags().Bool("json", false, "Log as JSON lines")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug messages")

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if log == nil {
			return
		}
		jsonLogs, _ := cmd.Flags().GetBool("json")
		verbose, _ := cmd.Flags().GetBool("verbose")
		log.SetJSON(jsonLogs)
		log.SetDebug(verbose)
	}

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newExportCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newJumpCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
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

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// SetIn sets the input stream for the root command. Used for testing.
func (c *CLI) SetIn(in io.Reader) {
	c.rootCmd.SetIn(in)
}
