// Package commands implements the CLI commands for nix-bisect.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/nixbisect/internal/adapters/config"
	"go.trai.ch/nixbisect/internal/app"
	"go.trai.ch/nixbisect/internal/build"
	"go.trai.ch/nixbisect/internal/core/domain"
	"go.trai.ch/nixbisect/internal/core/ports"
	"go.trai.ch/zerr"
)

// CLI represents the command line interface for nix-bisect.
type CLI struct {
	app      Application
	reporter Reporter
	logger   ports.Logger
	rootCmd  *cobra.Command
	exitCode int
}

// Application represents the application logic interface.
type Application interface {
	Bisect(ctx context.Context, opts app.BisectOptions) (domain.Decision, error)
	LogContains(ctx context.Context, opts app.LogContainsOptions) (domain.LogMatch, error)
	Clean(ctx context.Context, configPath string) error
}

// Reporter turns a decision into the process exit code.
type Reporter interface {
	Quit(d domain.Decision) int
}

// verbosity is implemented by loggers with a debug switch.
type verbosity interface {
	SetVerbose(enable bool)
}

// New creates a new CLI instance with the given app.
func New(a Application, r Reporter, log ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:   "nix-bisect <attribute>",
		Short: "Decide whether a revision is good, bad or should be skipped, for git bisect run",
		Long: "Builds a Nix attribute and exits with the git bisect run protocol:\n" +
			"0 for good, 1 for bad, 125 to skip and 128 to abort the bisection.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		Args:          cobra.ExactArgs(1),
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:      a,
		reporter: r,
		logger:   log,
		rootCmd:  rootCmd,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringP("config", "c", "", "Path to the settings file (default: discover "+domain.SettingsFileName+")")
	pf.Bool("verbose", false, "Print debug output")
	pf.String("log-format", "", "Log format: pretty or json (default: settings file, then pretty)")
	pf.String("system", "", "Build for this system instead of the host platform")
	pf.StringArray("build-option", nil, "Pass name=value to the build tool (repeatable)")
	rootCmd.PersistentPreRunE = c.configureLogging

	c.addBisectFlags(rootCmd)
	rootCmd.RunE = c.runBisect

	rootCmd.AddCommand(c.newLogContainsCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// ExitCode returns the exit code chosen by the executed command.
func (c *CLI) ExitCode() int {
	return c.exitCode
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

func (c *CLI) configureLogging(cmd *cobra.Command, _ []string) error {
	format, _ := cmd.Flags().GetString("log-format")
	switch format {
	case "", config.LogFormatPretty, config.LogFormatJSON:
	default:
		return zerr.With(zerr.New("unknown log format"), "format", format)
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	if v, ok := c.logger.(verbosity); ok && verbose {
		v.SetVerbose(true)
	}
	return nil
}

// commonOptions reads the flags shared by every command.
func commonOptions(cmd *cobra.Command) (app.CommonOptions, error) {
	configPath, _ := cmd.Flags().GetString("config")
	format, _ := cmd.Flags().GetString("log-format")
	system, _ := cmd.Flags().GetString("system")
	raw, _ := cmd.Flags().GetStringArray("build-option")

	opts, err := parseBuildOptions(raw)
	if err != nil {
		return app.CommonOptions{}, err
	}

	return app.CommonOptions{
		ConfigPath:   configPath,
		LogFormat:    format,
		System:       system,
		BuildOptions: opts,
	}, nil
}
