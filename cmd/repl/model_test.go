package repl

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kcaldas/shellfolio/pkg/config"
	"github.com/kcaldas/shellfolio/pkg/content"
	"github.com/kcaldas/shellfolio/pkg/logging"
	"github.com/kcaldas/shellfolio/pkg/portfolio"
	"github.com/kcaldas/shellfolio/pkg/render"
	"github.com/kcaldas/shellfolio/pkg/terminal"
	"github.com/kcaldas/shellfolio/pkg/theme"
)

// replTestFramework drives the model the way bubbletea would.
type replTestFramework struct {
	t       *testing.T
	model   Model
	copied  []string
	lastCmd tea.Cmd
}

func newReplTestFramework(t *testing.T) *replTestFramework {
	t.Helper()
	bundle, err := content.Default()
	require.NoError(t, err)
	reg, err := portfolio.NewRegistry(bundle, portfolio.Options{})
	require.NoError(t, err)
	session := terminal.NewSession[render.Doc](reg, portfolio.Formatter{}, terminal.Options{Logger: logging.NewDisabledLogger()})

	store, err := config.NewStore(t.TempDir())
	require.NoError(t, err)

	themes := theme.NewProvider(theme.DarkTheme())
	f := &replTestFramework{t: t}
	f.model = New(Deps{
		Session:  session,
		Themes:   themes,
		Painter:  render.NewPainter(themes),
		Prompt:   portfolio.DefaultPrompt(),
		Settings: store,
		Copy: func(text string) error {
			f.copied = append(f.copied, text)
			return nil
		},
		Logger: logging.NewDisabledLogger(),
	})
	f.send(tea.WindowSizeMsg{Width: 100, Height: 30})
	return f
}

func (f *replTestFramework) send(msg tea.Msg) {
	f.t.Helper()
	next, cmd := f.model.Update(msg)
	f.model = next.(Model)
	f.lastCmd = cmd
}

func (f *replTestFramework) typeText(text string) {
	f.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func (f *replTestFramework) press(k tea.KeyType) {
	f.send(tea.KeyMsg{Type: k})
}

func (f *replTestFramework) run(line string) {
	f.typeText(line)
	f.press(tea.KeyEnter)
}

func (f *replTestFramework) transcript() string {
	return render.Plain(portfolio.TranscriptDoc(f.model.Prompt, f.model.Session.Transcript()), 0)
}

func (f *replTestFramework) quit() bool {
	if f.lastCmd == nil {
		return false
	}
	_, ok := f.lastCmd().(tea.QuitMsg)
	return ok
}

func TestModel_NotReadyBeforeSize(t *testing.T) {
	m := New(Deps{})
	assert.Equal(t, "Starting shell...", m.View())
	assert.Nil(t, m.Init())
}

func TestModel_WindowSize(t *testing.T) {
	f := newReplTestFramework(t)

	assert.True(t, f.model.ready)
	assert.Equal(t, 98, f.model.viewport.Width)
	assert.Equal(t, 25, f.model.viewport.Height)

	f.send(tea.WindowSizeMsg{Width: 3, Height: 2})
	assert.Equal(t, 1, f.model.viewport.Width)
	assert.Equal(t, 1, f.model.viewport.Height)
}

func TestModel_TypeAndSubmit(t *testing.T) {
	f := newReplTestFramework(t)

	f.typeText("abo")
	assert.Equal(t, "abo", f.model.Session.Buffer())
	f.typeText("ut")
	f.press(tea.KeyEnter)

	assert.Empty(t, f.model.Session.Buffer())
	out := f.transcript()
	assert.Contains(t, out, "visitor@portfolio:~$ about")
	assert.Contains(t, out, "Type 'skills'")
	assert.Equal(t, []string{"about"}, f.model.Session.History())
}

func TestModel_EditingKeys(t *testing.T) {
	f := newReplTestFramework(t)

	f.typeText("helx")
	f.press(tea.KeyBackspace)
	f.send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.Equal(t, "hel ", f.model.Session.Buffer())
	f.press(tea.KeyBackspace)

	f.press(tea.KeyTab)
	assert.Equal(t, "help", f.model.Session.Buffer())
	f.press(tea.KeyEnter)

	f.run("skills")
	f.press(tea.KeyUp)
	assert.Equal(t, "skills", f.model.Session.Buffer())
	f.press(tea.KeyUp)
	assert.Equal(t, "help", f.model.Session.Buffer())
	f.press(tea.KeyDown)
	f.press(tea.KeyDown)
	assert.Equal(t, "", f.model.Session.Buffer())

	f.press(tea.KeyLeft)
	assert.False(t, f.quit())
}

func TestModel_CtrlC(t *testing.T) {
	f := newReplTestFramework(t)

	f.typeText("half typed")
	f.press(tea.KeyCtrlC)
	assert.False(t, f.quit())
	assert.Empty(t, f.model.Session.Buffer())
	assert.Contains(t, f.transcript(), "visitor@portfolio:~$ half typed^C")

	f.press(tea.KeyCtrlC)
	assert.True(t, f.quit(), "ctrl+c on an empty line quits")
}

func TestModel_CtrlD(t *testing.T) {
	f := newReplTestFramework(t)
	f.typeText("x")
	f.press(tea.KeyCtrlD)
	assert.True(t, f.quit())
}

func TestModel_CtrlLClearsScreen(t *testing.T) {
	f := newReplTestFramework(t)
	f.run("about")
	f.typeText("keep")

	f.press(tea.KeyCtrlL)

	assert.Empty(t, f.model.Session.Transcript())
	assert.Equal(t, "keep", f.model.Session.Buffer())
}

func TestModel_ClearCommand(t *testing.T) {
	f := newReplTestFramework(t)
	f.run("about")
	f.run("clear")

	assert.Empty(t, f.model.Session.Transcript())
}

func TestModel_FunctionKeyShortcuts(t *testing.T) {
	f := newReplTestFramework(t)
	f.typeText("draft")

	f.press(tea.KeyF7)

	out := f.transcript()
	assert.Contains(t, out, "visitor@portfolio:~$ contact")
	assert.Empty(t, f.model.Session.Buffer(), "a shortcut replaces the pending line")
	assert.Equal(t, []string{"contact"}, f.model.Session.History())
}

func TestModel_ToggleThemeIsSaved(t *testing.T) {
	f := newReplTestFramework(t)

	f.press(tea.KeyCtrlT)

	assert.Equal(t, theme.Light, f.model.Themes.Theme().Name)
	assert.Equal(t, theme.Light, f.model.Settings.Get().Theme)
	assert.Contains(t, f.model.View(), "theme: light")

	saved, err := f.model.Settings.Load()
	require.NoError(t, err)
	assert.Equal(t, theme.Light, saved.Theme)
}

func TestModel_CopyLastResponse(t *testing.T) {
	f := newReplTestFramework(t)
	f.run("whoami")

	f.press(tea.KeyCtrlY)

	require.Len(t, f.copied, 1)
	assert.Contains(t, f.copied[0], "visitor")
	assert.NotContains(t, f.copied[0], "\x1b[")
	assert.Contains(t, f.model.View(), "copied")
}

func TestModel_CopyFailure(t *testing.T) {
	f := newReplTestFramework(t)
	f.model.Copy = func(string) error { return errors.New("no clipboard") }

	f.press(tea.KeyCtrlY)

	assert.Contains(t, f.model.View(), "clipboard unavailable")
}

func TestModel_View(t *testing.T) {
	f := newReplTestFramework(t)
	f.typeText("hel")

	view := f.model.View()

	assert.Contains(t, view, "visitor@portfolio — zsh")
	assert.Contains(t, view, "hel█")
	assert.Contains(t, view, "f1-f8 commands")
	assert.Contains(t, view, "ctrl+t theme")
}

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want []terminal.KeyEvent
	}{
		{name: "enter", msg: tea.KeyMsg{Type: tea.KeyEnter}, want: []terminal.KeyEvent{terminal.SpecialKey(terminal.KeyEnter)}},
		{name: "tab", msg: tea.KeyMsg{Type: tea.KeyTab}, want: []terminal.KeyEvent{terminal.SpecialKey(terminal.KeyTab)}},
		{name: "ctrl+l", msg: tea.KeyMsg{Type: tea.KeyCtrlL}, want: []terminal.KeyEvent{terminal.CtrlKey('l')}},
		{name: "space", msg: tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, want: []terminal.KeyEvent{terminal.RuneKey(' ')}},
		{name: "pasted runes", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ls")}, want: []terminal.KeyEvent{terminal.RuneKey('l'), terminal.RuneKey('s')}},
		{name: "alt rune", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}, Alt: true}, want: []terminal.KeyEvent{{Key: terminal.KeyRune, Rune: 'b', Mod: terminal.ModAlt}}},
		{name: "left", msg: tea.KeyMsg{Type: tea.KeyLeft}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TranslateKey(tt.msg))
		})
	}
}

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	require.Len(t, km.Shortcuts, len(portfolio.MainCommands))
	assert.Equal(t, "help", km.Shortcuts[0].Command)
	assert.Equal(t, []string{"f1"}, km.Shortcuts[0].Binding.Keys())
	assert.Len(t, km.ShortHelp(), 4)
}
