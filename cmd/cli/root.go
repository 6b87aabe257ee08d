package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kcaldas/shellfolio/cmd/di"
	"github.com/kcaldas/shellfolio/cmd/repl"
	"github.com/kcaldas/shellfolio/cmd/tui"
	"github.com/kcaldas/shellfolio/pkg/config"
	"github.com/kcaldas/shellfolio/pkg/logging"
	"github.com/kcaldas/shellfolio/pkg/version"
)

// DebugLogFile receives the logs of the interactive front-ends, which own
// the terminal.
const DebugLogFile = "shellfolio-debug.log"

// options are the global flags.
type options struct {
	verbose    bool
	quiet      bool
	tui        string
	theme      string
	contentDir string
}

func (o *options) overrides() config.Overrides {
	return config.Overrides{Theme: o.theme, ContentDir: o.contentDir, TUI: o.tui}
}

// RootCmd represents the base command when called without any subcommands
var RootCmd = NewRootCommand()

// NewRootCommand builds the command tree. Without a subcommand the
// interactive shell starts.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:     "shellfolio",
		Short:   "A portfolio you explore from a shell",
		Long:    `shellfolio presents a personal portfolio as an interactive terminal: type commands like 'about', 'skills' or 'projects', or click them in the sidebar.`,
		Version: version.GetVersion(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadDotEnv(config.DotEnvFile); err != nil {
				return fmt.Errorf("failed to load %s: %w", config.DotEnvFile, err)
			}
			logging.SetGlobalLogger(newLogger(opts))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(opts)
		},
		SilenceUsage: true,
	}
	cmd.SetVersionTemplate(version.GetInfo().String() + "\n")

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output (debug level)")
	cmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "quiet output (errors only)")
	cmd.PersistentFlags().StringVar(&opts.theme, "theme", "", "colour theme (dark or light)")
	cmd.PersistentFlags().StringVar(&opts.contentDir, "content-dir", "", "directory with the portfolio YAML files")

	// TUI engine selection (only for root command, not subcommands)
	cmd.Flags().StringVar(&opts.tui, "tui", "", "TUI engine to use (gocui or bubbletea)")

	cmd.AddCommand(
		newRunCommand(opts),
		newVersionCommand(),
		newUpdateCommand(),
	)
	return cmd
}

func newLogger(opts *options) logging.Logger {
	switch {
	case opts.quiet:
		return logging.NewQuietLogger()
	case opts.verbose:
		return logging.NewVerboseLogger()
	default:
		return logging.NewDefaultLogger()
	}
}

func runInteractive(opts *options) error {
	// The front-ends draw over stdout, so logs go to a file from here on.
	logging.SetGlobalLogger(logging.NewFileLoggerFromEnv(DebugLogFile))

	shell, err := di.InjectShell(opts.overrides())
	if err != nil {
		return err
	}
	logging.Debug("starting shell", "tui", shell.Settings.TUI, "theme", shell.Settings.Theme, "session", shell.Session.ID())

	switch shell.Settings.TUI {
	case config.TUIBubbletea:
		return repl.Run(repl.Deps{
			Session:  shell.Session,
			Themes:   shell.Themes,
			Painter:  shell.Painter,
			Prompt:   shell.Prompt,
			Settings: shell.Store,
			Logger:   logging.NewComponentLogger("repl"),
		})
	default:
		app, err := tui.NewApp(tui.Deps{
			Session:  shell.Session,
			Themes:   shell.Themes,
			Painter:  shell.Painter,
			Prompt:   shell.Prompt,
			Settings: shell.Store,
			Logger:   logging.NewComponentLogger("tui"),
		}, tui.OutputMode(shell.Settings.OutputMode))
		if err != nil {
			return err
		}
		defer app.Close()
		return app.Run()
	}
}
