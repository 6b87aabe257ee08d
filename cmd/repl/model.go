// Package repl is the bubbletea front-end of the portfolio shell. It routes
// keys exactly like the gocui front-end and shows the transcript in a
// viewport that follows the newest output.
package repl

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kcaldas/shellfolio/pkg/config"
	"github.com/kcaldas/shellfolio/pkg/logging"
	"github.com/kcaldas/shellfolio/pkg/portfolio"
	"github.com/kcaldas/shellfolio/pkg/render"
	"github.com/kcaldas/shellfolio/pkg/terminal"
	"github.com/kcaldas/shellfolio/pkg/theme"
)

// chrome is the number of rows taken by the title, viewport border, prompt
// and footer.
const chrome = 5

// Deps are the collaborators of the model.
type Deps struct {
	Session  *terminal.Session[render.Doc]
	Themes   *theme.Provider
	Painter  *render.Painter
	Prompt   portfolio.Prompt
	Settings *config.Store
	Copy     func(text string) error // defaults to the system clipboard
	Logger   logging.Logger
}

// Model is the bubbletea model.
type Model struct {
	Deps
	keys     KeyMap
	viewport viewport.Model
	width    int
	height   int
	ready    bool
	status   string
}

// New creates the model. It is not ready until the first window size message.
func New(deps Deps) Model {
	if deps.Copy == nil {
		deps.Copy = clipboard.WriteAll
	}
	if deps.Logger == nil {
		deps.Logger = logging.NewComponentLogger("repl")
	}
	return Model{
		Deps:     deps,
		keys:     DefaultKeyMap(),
		viewport: viewport.New(80, 20),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = max(msg.Width-2, 1)
		m.viewport.Height = max(msg.Height-chrome, 1)
		m.ready = true
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Interrupt):
		if m.Session.Buffer() == "" {
			return m, tea.Quit
		}
		m.Session.Interrupt()
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.ToggleTheme):
		m.toggleTheme()
	case key.Matches(msg, m.keys.Copy):
		m.copyLastResponse()
		return m, nil
	case key.Matches(msg, m.keys.Scroll):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	default:
		if name, ok := m.shortcut(msg); ok {
			m.Session.SubmitExternal(name, nil)
			break
		}
		handled := false
		for _, ev := range TranslateKey(msg) {
			handled = m.Session.HandleKey(ev) || handled
		}
		if !handled {
			return m, nil
		}
	}

	m.refresh()
	return m, nil
}

func (m Model) shortcut(msg tea.KeyMsg) (string, bool) {
	for _, s := range m.keys.Shortcuts {
		if key.Matches(msg, s.Binding) {
			return s.Command, true
		}
	}
	return "", false
}

func (m *Model) toggleTheme() {
	next := m.Themes.Toggle()
	m.Logger.Debug("theme toggled", "theme", next.Name)
	if m.Settings != nil {
		if err := m.Settings.Update(func(s *config.Settings) { s.Theme = next.Name }, true); err != nil {
			m.Logger.Warn("failed to save theme", "error", err)
		}
	}
	m.status = "theme: " + next.Name
}

func (m *Model) copyLastResponse() {
	entry, ok := m.Session.LastResponse()
	if !ok {
		return
	}
	if err := m.Copy(render.Plain(entry.Content, 0)); err != nil {
		m.Logger.Warn("failed to copy to clipboard", "error", err)
		m.status = "clipboard unavailable"
		return
	}
	m.status = "copied"
}

// refresh repaints the transcript and sticks the viewport to the bottom.
func (m *Model) refresh() {
	doc := portfolio.TranscriptDoc(m.Prompt, m.Session.Transcript())
	m.viewport.SetContent(m.Painter.Paint(doc, m.viewport.Width))
	m.viewport.GotoBottom()
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Starting shell..."
	}
	styles := m.Themes.Styles()

	title := styles.TitleBar.Width(m.width).Render(m.Prompt.Title())
	body := styles.Viewport.Render(m.viewport.View())
	prompt := m.Painter.Paint(render.Doc{Blocks: []render.Block{{Kind: render.BlockLine, Spans: m.Prompt.Spans()}}}, 0)
	input := prompt + m.Session.Buffer() + styles.Accent.Render("█")

	return lipgloss.JoinVertical(lipgloss.Left, title, body, input, m.footer(styles))
}

func (m Model) footer(styles theme.Styles) string {
	parts := []string{"f1-f8 commands"}
	for _, b := range m.keys.ShortHelp() {
		parts = append(parts, b.Help().Key+" "+b.Help().Desc)
	}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	return styles.Help.Render(strings.Join(parts, " · "))
}

// Run starts the program on the alternate screen and blocks until the user
// quits.
func Run(deps Deps) error {
	_, err := tea.NewProgram(New(deps), tea.WithAltScreen()).Run()
	return err
}
