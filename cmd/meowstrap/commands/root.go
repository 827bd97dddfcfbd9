// Package commands implements the CLI for meowstrap.
package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/meowstrap/internal/app"
	"go.trai.ch/meowstrap/internal/build"
	"go.trai.ch/meowstrap/internal/core/domain"
	"go.trai.ch/meowstrap/internal/core/ports"
)

// Builder resolves the application components for the parsed settings.
type Builder func(ctx context.Context, settings domain.Settings) (*app.Components, error)

// CLI represents the command line interface for meowstrap.
type CLI struct {
	build      Builder
	components *app.Components
	rootCmd    *cobra.Command
}

// New creates a new CLI instance that builds its components with b.
func New(b Builder) *CLI {
	c := &CLI{build: b}

	rootCmd := &cobra.Command{
		Use:   "meowstrap <root>",
		Short: "Bootstrap a meow system into a target root",
		Long: "meowstrap prepares <root>, writes a meow configuration into it, syncs the base\n" +
			"packages with the meow package manager and installs meow itself into the root.",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE:          c.run,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	flags := rootCmd.Flags()
	flags.Bool("rm", false, "Remove everything inside the root before bootstrapping")
	flags.StringP("manifest", "m", "", "Path to a YAML manifest (defaults to the built-in base system)")
	flags.String("index", "", "Override the package index URL")
	flags.StringArray("key", nil, "Override the trust keys (repeatable)")
	flags.String("meow", domain.DefaultPackageManager, "Path to the meow binary")
	flags.String("sudo", "sudo", `Command used to gain superuser privilege ("" runs commands directly)`)
	flags.Bool("dry-run", false, "Log privileged operations instead of running them")
	flags.Bool("json", false, "Write logs as JSON")
	flags.String("journal", "", "Record every step status update to this file as JSON lines")

	c.rootCmd = rootCmd
	return c
}

func (c *CLI) run(cmd *cobra.Command, args []string) (err error) {
	flags := cmd.Flags()

	settings := domain.DefaultSettings()
	settings.PackageManager, _ = flags.GetString("meow")
	sudo, _ := flags.GetString("sudo")
	settings.Escalation = strings.Fields(sudo)
	settings.DryRun, _ = flags.GetBool("dry-run")
	settings.JSONLogs, _ = flags.GetBool("json")
	settings.Journal, _ = flags.GetString("journal")

	components, err := c.build(cmd.Context(), settings)
	if err != nil {
		return err
	}
	c.components = components
	defer func() {
		if closeErr := components.Close(); err == nil {
			err = closeErr
		}
	}()

	var opts app.RunOptions
	opts.Reset, _ = flags.GetBool("rm")
	opts.Manifest, _ = flags.GetString("manifest")
	opts.Index, _ = flags.GetString("index")
	opts.Keys, _ = flags.GetStringArray("key")

	_, err = components.App.Run(cmd.Context(), args[0], opts)
	return err
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// Logger returns the logger of the built components, or nil if the command
// failed before they were built.
func (c *CLI) Logger() ports.Logger {
	if c.components == nil {
		return nil
	}
	return c.components.Logger
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}
