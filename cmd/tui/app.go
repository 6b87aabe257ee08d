// Package tui is the gocui front-end of the portfolio shell: a title bar, a
// sidebar of commands, the transcript and a single prompt line.
package tui

import (
	"errors"
	"fmt"

	"github.com/awesome-gocui/gocui"

	"github.com/kcaldas/shellfolio/pkg/config"
	"github.com/kcaldas/shellfolio/pkg/logging"
	"github.com/kcaldas/shellfolio/pkg/portfolio"
	"github.com/kcaldas/shellfolio/pkg/render"
	"github.com/kcaldas/shellfolio/pkg/terminal"
	"github.com/kcaldas/shellfolio/pkg/theme"
)

// Deps are the collaborators of the app.
type Deps struct {
	Session   *terminal.Session[render.Doc]
	Themes    *theme.Provider
	Painter   *render.Painter
	Prompt    portfolio.Prompt
	Settings  *config.Store // theme toggles are saved here when set
	Clipboard Clipboard
	Logger    logging.Logger
}

// App owns the gocui loop.
type App struct {
	gui *gocui.Gui
	Deps

	keymap          *Keymap
	layout          *LayoutManager
	scroller        *Scroller
	sidebarCommands []string
}

// NewApp creates the gui in the given output mode and wires views and keys.
func NewApp(deps Deps, mode gocui.OutputMode) (*App, error) {
	if deps.Logger == nil {
		deps.Logger = logging.NewComponentLogger("tui")
	}
	if deps.Clipboard == nil {
		deps.Clipboard = NewClipboard()
	}

	g, err := gocui.NewGui(mode, true)
	if err != nil {
		return nil, fmt.Errorf("failed to start terminal ui: %w", err)
	}
	g.Cursor = true
	g.Mouse = true

	app := &App{
		gui:      g,
		Deps:     deps,
		scroller: NewScroller(g, ViewTranscript),
	}
	app.keymap = app.createKeymap()
	app.layout = NewLayoutManager(DefaultLayoutConfig(), app.onViewCreated, app.renderAll)
	app.applyTheme()

	g.SetManager(app.layout)
	if err := app.setupKeybindings(); err != nil {
		g.Close()
		return nil, err
	}
	return app, nil
}

func (app *App) createKeymap() *Keymap {
	keymap := NewKeymap()
	sidebarShortcuts(keymap)

	keymap.AddEntry(KeymapEntry{
		Key:         gocui.KeyCtrlT,
		Mod:         gocui.ModNone,
		Action:      FunctionAction(app.toggleTheme),
		Description: "Toggle dark and light theme",
	})
	keymap.AddEntry(KeymapEntry{
		Key:         gocui.KeyCtrlY,
		Mod:         gocui.ModNone,
		Action:      FunctionAction(app.copyLastResponse),
		Description: "Copy the last output",
	})
	keymap.AddEntry(KeymapEntry{
		Key:         gocui.KeyPgup,
		Mod:         gocui.ModNone,
		Action:      FunctionAction(app.scroller.PageUp),
		Description: "Scroll output up",
	})
	keymap.AddEntry(KeymapEntry{
		Key:         gocui.KeyPgdn,
		Mod:         gocui.ModNone,
		Action:      FunctionAction(app.scroller.PageDown),
		Description: "Scroll output down",
	})
	keymap.AddEntry(KeymapEntry{
		Key:         gocui.KeyHome,
		Mod:         gocui.ModNone,
		Action:      FunctionAction(app.scroller.ScrollToTop),
		Description: "Scroll to top of output",
	})
	keymap.AddEntry(KeymapEntry{
		Key:         gocui.KeyEnd,
		Mod:         gocui.ModNone,
		Action:      FunctionAction(app.scroller.ScrollToBottom),
		Description: "Scroll to bottom of output",
	})
	keymap.AddEntry(KeymapEntry{
		Key:         gocui.KeyCtrlC,
		Mod:         gocui.ModNone,
		Action:      FunctionAction(app.interrupt),
		Description: "Abandon the line, or exit on an empty line",
	})
	keymap.AddEntry(KeymapEntry{
		Key:         gocui.KeyCtrlD,
		Mod:         gocui.ModNone,
		Action:      FunctionAction(func() error { return gocui.ErrQuit }),
		Description: "Exit application",
	})
	return keymap
}

func (app *App) createKeymapHandler(entry KeymapEntry) func(*gocui.Gui, *gocui.View) error {
	return func(g *gocui.Gui, v *gocui.View) error {
		switch entry.Action.Type {
		case "command":
			app.submitExternal(entry.Action.CommandName)
		case "function":
			return entry.Action.Function()
		}
		return nil
	}
}

func (app *App) setupKeybindings() error {
	for _, entry := range app.keymap.GetEntries() {
		if err := app.gui.SetKeybinding("", entry.Key, entry.Mod, app.createKeymapHandler(entry)); err != nil {
			return err
		}
	}

	if err := app.gui.SetKeybinding(ViewSidebar, gocui.MouseLeft, gocui.ModNone, app.onSidebarClick); err != nil {
		return err
	}
	if err := app.gui.SetKeybinding(ViewTranscript, gocui.MouseWheelUp, gocui.ModNone, func(*gocui.Gui, *gocui.View) error {
		return app.scroller.ScrollBy(-3)
	}); err != nil {
		return err
	}
	return app.gui.SetKeybinding(ViewTranscript, gocui.MouseWheelDown, gocui.ModNone, func(*gocui.Gui, *gocui.View) error {
		return app.scroller.ScrollBy(3)
	})
}

func (app *App) onViewCreated(g *gocui.Gui, v *gocui.View) error {
	switch v.Name() {
	case ViewTitle:
		v.Frame = true
	case ViewSidebar:
		v.Frame = true
		v.Title = " menu "
	case ViewTranscript:
		v.Wrap = true
		v.Title = " " + app.Prompt.Title() + " "
	case ViewInput:
		v.Editable = true
		v.Editor = NewInputEditor(app.Session, func() { _ = app.renderAll(g) })
		if _, err := g.SetCurrentView(ViewInput); err != nil {
			return err
		}
	}
	app.colorView(v)
	return app.renderAll(g)
}

// renderAll redraws every view from the session state and keeps the
// transcript scrolled to the bottom.
func (app *App) renderAll(g *gocui.Gui) error {
	snapshot := app.Session.Snapshot()

	if v, err := g.View(ViewTitle); err == nil {
		width, _ := v.Size()
		v.Clear()
		fmt.Fprint(v, app.Painter.Paint(titleDoc(app.Prompt, app.Themes.Theme().Name, width), width))
	}

	if v, err := g.View(ViewSidebar); err == nil {
		width, _ := v.Size()
		doc, commands := sidebarDoc(app.keymap)
		app.sidebarCommands = commands
		v.Clear()
		fmt.Fprint(v, app.Painter.Paint(doc, width))
	}

	if v, err := g.View(ViewTranscript); err == nil {
		width, _ := v.Size()
		v.Clear()
		fmt.Fprint(v, app.Painter.Paint(portfolio.TranscriptDoc(app.Prompt, snapshot.Entries), width))
		if err := app.scroller.ScrollToBottom(); err != nil {
			return err
		}
	}

	if v, err := g.View(ViewInput); err == nil {
		prompt := app.Painter.Paint(render.Doc{Blocks: []render.Block{{Kind: render.BlockLine, Spans: app.Prompt.Spans()}}}, 0)
		drawInput(v, prompt, snapshot.Buffer)
	}
	return nil
}

// submitExternal runs a sidebar command as if it had been typed. The redraw
// is queued on the gui loop so it is safe from any goroutine.
func (app *App) submitExternal(line string) {
	app.Session.SubmitExternal(line, func() {
		app.gui.Update(app.renderAll)
	})
}

func (app *App) onSidebarClick(g *gocui.Gui, v *gocui.View) error {
	_, oy := v.Origin()
	_, cy := v.Cursor()
	if name, ok := sidebarCommandAt(app.sidebarCommands, oy+cy); ok {
		app.Logger.Debug("sidebar command clicked", "command", name)
		app.submitExternal(name)
	}
	_, err := g.SetCurrentView(ViewInput)
	return err
}

func (app *App) interrupt() error {
	if app.Session.Buffer() == "" {
		return gocui.ErrQuit
	}
	app.Session.Interrupt()
	return app.renderAll(app.gui)
}

func (app *App) toggleTheme() error {
	next := app.Themes.Toggle()
	app.Logger.Debug("theme toggled", "theme", next.Name)
	if app.Settings != nil {
		if err := app.Settings.Update(func(s *config.Settings) { s.Theme = next.Name }, true); err != nil {
			app.Logger.Warn("failed to save theme", "error", err)
		}
	}
	app.applyTheme()
	for _, v := range app.gui.Views() {
		app.colorView(v)
	}
	return app.renderAll(app.gui)
}

func (app *App) copyLastResponse() error {
	entry, ok := app.Session.LastResponse()
	if !ok {
		return nil
	}
	if err := app.Clipboard.Copy(render.Plain(entry.Content, 0)); err != nil {
		app.Logger.Warn("failed to copy to clipboard", "error", err)
	}
	return nil
}

func (app *App) applyTheme() {
	colors := app.Themes.Theme().Colors
	app.gui.FgColor = gocui.GetColor(colors.TextPrimary)
	app.gui.BgColor = gocui.GetColor(colors.Background)
	app.gui.FrameColor = gocui.GetColor(colors.Border)
	app.gui.SelFrameColor = gocui.GetColor(colors.Accent)
}

func (app *App) colorView(v *gocui.View) {
	colors := app.Themes.Theme().Colors
	v.FgColor = gocui.GetColor(colors.TextPrimary)
	v.BgColor = gocui.GetColor(colors.Background)
	if v.Name() == ViewTitle || v.Name() == ViewSidebar {
		v.BgColor = gocui.GetColor(colors.Surface)
	}
}

// Run starts the main loop and returns when the user quits.
func (app *App) Run() error {
	app.Logger.Info("terminal ui started", "session_id", app.Session.ID())
	if err := app.gui.MainLoop(); err != nil && !errors.Is(err, gocui.ErrQuit) {
		return err
	}
	return nil
}

// Close restores the terminal.
func (app *App) Close() {
	if app.gui != nil {
		app.gui.Close()
	}
}
