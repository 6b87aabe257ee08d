package tui

import (
	"fmt"

	"github.com/muesli/reflow/truncate"

	"github.com/kcaldas/shellfolio/pkg/portfolio"
	"github.com/kcaldas/shellfolio/pkg/render"
	"github.com/kcaldas/shellfolio/pkg/version"
)

// sidebarDoc lists the main commands with their shortcuts and the easter
// eggs. The second result maps each line to the command it runs, "" for
// headers and spacing.
func sidebarDoc(keymap *Keymap) (render.Doc, []string) {
	b := render.NewBuilder()
	var commands []string
	line := func(command string, spans ...render.Span) {
		b.Line(spans...)
		commands = append(commands, command)
	}

	line("", render.Bold(render.StyleAccent, "Commands"))
	for _, name := range portfolio.MainCommands {
		spans := []render.Span{render.Styled(render.StyleGreen, fmt.Sprintf("  %-12s", name))}
		if key, ok := keymap.ShortcutFor(name); ok {
			spans = append(spans, render.Styled(render.StyleMuted, keyName(key)))
		}
		line(name, spans...)
	}
	line("")
	line("", render.Bold(render.StyleAccent, "Easter Eggs"))
	for _, name := range portfolio.EasterEggCommands {
		line(name, render.Styled(render.StyleYellow, "  "+name))
	}
	line("")
	line("", render.Styled(render.StyleMuted, "Ctrl+T theme"))
	line("", render.Styled(render.StyleMuted, "Ctrl+Y copy output"))
	line("", render.Styled(render.StyleMuted, "Ctrl+D quit"))

	return b.Doc(), commands
}

// sidebarCommandAt returns the command on sidebar line y.
func sidebarCommandAt(commands []string, y int) (string, bool) {
	if y < 0 || y >= len(commands) || commands[y] == "" {
		return "", false
	}
	return commands[y], true
}

// titleDoc is the window title bar: traffic lights, the shell title and the
// version, cut to width.
func titleDoc(prompt portfolio.Prompt, theme string, width int) render.Doc {
	title := truncate.StringWithTail(prompt.Title(), uint(max(width-24, 8)), "…")
	return render.NewBuilder().Line(
		render.Styled(render.StyleAccent, "● "),
		render.Styled(render.StyleYellow, "● "),
		render.Styled(render.StyleGreen, "●  "),
		render.Styled(render.StyleSecondary, title),
		render.Styled(render.StyleMuted, fmt.Sprintf("  %s · %s", theme, version.GetVersion())),
	).Doc()
}
