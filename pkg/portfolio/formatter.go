package portfolio

import (
	"strings"

	"github.com/kcaldas/shellfolio/pkg/render"
	"github.com/kcaldas/shellfolio/pkg/terminal"
)

const banner = ` ____              ___
|  _ \  _____   __/ _ \ _ __  ___
| | | |/ _ \ \ / / | | | '_ \/ __|
| |_| |  __/\ V /| |_| | |_) \__ \
|____/ \___| \_/  \___/| .__/|___/
                       |_|`

// Formatter renders the messages the shell prints on its own.
type Formatter struct{}

var _ terminal.Formatter[render.Doc] = Formatter{}

// Welcome is the banner shown when a session starts.
func (Formatter) Welcome() render.Doc {
	return render.NewBuilder().
		Pre(render.StyleAccent, banner).
		Blank().
		Styled(render.StyleGreen, "Welcome to my interactive portfolio!").
		Line(render.Styled(render.StyleMuted, "Type '"), render.Styled(render.StyleAccent, "help"),
			render.Styled(render.StyleMuted, "' to see available commands.")).
		Styled(render.StyleMuted, "Click on commands in the sidebar or type them below.").
		Doc()
}

// NotFound answers an unknown command name.
func (Formatter) NotFound(command string) render.Doc {
	return render.NewBuilder().
		Styled(render.StyleAccent, "Command not found: "+command).
		Styled(render.StyleMuted, "Type 'help' to see available commands.").
		Doc()
}

// Matches lists completion candidates.
func (Formatter) Matches(names []string) render.Doc {
	return render.NewBuilder().Styled(render.StyleMuted, strings.Join(names, "  ")).Doc()
}

// Failure answers a command that failed unexpectedly. The error itself is
// logged by the session, not shown.
func (Formatter) Failure(command string, err error) render.Doc {
	return render.NewBuilder().
		Styled(render.StyleAccent, command+": something went wrong while running this command").
		Styled(render.StyleMuted, "Try again, or type 'help' to see available commands.").
		Doc()
}

// Prompt is the shell prompt, visitor@portfolio:~$ by default.
type Prompt struct {
	User string
	Host string
	Path string
}

// DefaultPrompt returns the prompt used when none is configured.
func DefaultPrompt() Prompt {
	return Prompt{User: "visitor", Host: "portfolio", Path: "~"}
}

// Spans returns the prompt as styled spans, ending with "$ ".
func (p Prompt) Spans() []render.Span {
	return []render.Span{
		render.Bold(render.StyleGreen, p.User),
		render.Styled(render.StyleSecondary, "@"),
		render.Bold(render.StyleCyan, p.Host),
		render.Styled(render.StyleSecondary, ":"),
		render.Styled(render.StyleYellow, p.Path),
		render.Text("$ "),
	}
}

// String returns the unstyled prompt.
func (p Prompt) String() string {
	return p.User + "@" + p.Host + ":" + p.Path + "$ "
}

// Title is the window title shown above the transcript.
func (p Prompt) Title() string {
	return p.User + "@" + p.Host + " — zsh"
}

// Echo renders a submitted line after the prompt.
func (p Prompt) Echo(line string) render.Doc {
	return render.NewBuilder().Line(append(p.Spans(), render.Text(line))...).Doc()
}

// TranscriptDoc turns transcript entries into one document, echoes after the
// prompt and a blank line after every response.
func TranscriptDoc(prompt Prompt, entries []terminal.Entry[render.Doc]) render.Doc {
	var blocks []render.Block
	for _, entry := range entries {
		switch entry.Kind {
		case terminal.CommandEcho:
			blocks = append(blocks, prompt.Echo(entry.Text).Blocks...)
		case terminal.Response:
			blocks = append(blocks, entry.Content.Blocks...)
			blocks = append(blocks, render.Block{Kind: render.BlockBlank})
		}
	}
	return render.Doc{Blocks: blocks}
}
