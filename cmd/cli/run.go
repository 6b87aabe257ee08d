package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kcaldas/shellfolio/cmd/di"
	"github.com/kcaldas/shellfolio/pkg/logging"
	"github.com/kcaldas/shellfolio/pkg/portfolio"
	"github.com/kcaldas/shellfolio/pkg/render"
	"github.com/kcaldas/shellfolio/pkg/terminal"
)

// plainWidth is the line width used when the output is not a terminal.
const plainWidth = 80

var errNoInput = errors.New("no command given: pass a line or pipe commands on stdin")

type runOptions struct {
	echo  bool
	color string
}

func newRunCommand(global *options) *cobra.Command {
	ro := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run [command line]",
		Short: "Run shell commands without the interactive terminal",
		Long: `Run one command line given as arguments, or one line per command read
from stdin, and print the responses.

Examples:
  shellfolio run about
  shellfolio run cat about.txt
  printf 'whoami\nskills\n' | shellfolio run --echo`,
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := inputLines(cmd, args)
			if err != nil {
				return err
			}
			shell, err := di.InjectShell(global.overrides())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var paint func(render.Doc) string
			switch ro.color {
			case "always":
				paint = func(doc render.Doc) string { return shell.Painter.Paint(doc, plainWidth) }
			case "never":
				paint = func(doc render.Doc) string { return render.Plain(doc, plainWidth) }
			case "auto":
				paint = func(doc render.Doc) string { return render.Plain(doc, plainWidth) }
				if isTerminal(out) {
					paint = func(doc render.Doc) string { return shell.Painter.Paint(doc, plainWidth) }
				}
			default:
				return fmt.Errorf("invalid --color %q: use auto, always or never", ro.color)
			}

			r := &runner{session: shell.Session, prompt: shell.Prompt, out: out, paint: paint, echo: ro.echo}
			return r.run(lines)
		},
	}

	cmd.Flags().BoolVar(&ro.echo, "echo", false, "print each line after the prompt before its response")
	cmd.Flags().StringVar(&ro.color, "color", "auto", "colour the output: auto, always or never")
	return cmd
}

// inputLines returns the line given as arguments, or the lines on stdin when
// it is not a terminal.
func inputLines(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return []string{strings.Join(args, " ")}, nil
	}
	in := cmd.InOrStdin()
	if isTerminal(in) {
		return nil, errNoInput
	}
	lines, err := readLines(in)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, errNoInput
	}
	return lines, nil
}

// runner feeds lines to a session and prints what each one produced.
type runner struct {
	session *terminal.Session[render.Doc]
	prompt  portfolio.Prompt
	out     io.Writer
	paint   func(render.Doc) string
	echo    bool
}

func (r *runner) run(lines []string) error {
	var failed []string
	for _, line := range lines {
		if r.echo {
			fmt.Fprintln(r.out, r.paint(r.prompt.Echo(line)))
		}
		outcome := r.session.Dispatch(line)
		logging.Debug("line dispatched", "line", outcome.Line, "outcome", outcome.Kind)

		switch outcome.Kind {
		case terminal.OutcomeEmpty, terminal.OutcomeCleared:
			continue
		case terminal.OutcomeUnrecognized:
			failed = append(failed, outcome.Command)
		case terminal.OutcomeExecuted:
			if outcome.Err != nil {
				failed = append(failed, outcome.Command)
			}
		}
		if text := r.paint(outcome.Result); text != "" {
			fmt.Fprintln(r.out, text)
		}
	}
	if len(failed) > 0 {
		return fmt.Errorf("failed commands: %s", strings.Join(failed, ", "))
	}
	return nil
}
