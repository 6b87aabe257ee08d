package tui

import (
	"errors"

	"github.com/awesome-gocui/gocui"
	"github.com/jesseduffield/lazycore/pkg/boxlayout"
)

// View names
const (
	ViewTitle      = "title"      // top bar
	ViewSidebar    = "sidebar"    // command list on the left
	ViewTranscript = "transcript" // shell output
	ViewInput      = "input"      // prompt line at the bottom
)

// LayoutConfig sizes the fixed panels; the transcript takes the rest.
type LayoutConfig struct {
	TitleHeight     int
	InputHeight     int
	SidebarWidth    int
	MinSidebarWidth int // terminal width below which the sidebar is hidden
}

// DefaultLayoutConfig returns the layout used by the app.
func DefaultLayoutConfig() LayoutConfig {
	return LayoutConfig{
		TitleHeight:     3,
		InputHeight:     3,
		SidebarWidth:    22,
		MinSidebarWidth: 70,
	}
}

// LayoutManager places the views with boxlayout on every gocui layout pass.
type LayoutManager struct {
	config     LayoutConfig
	lastWidth  int
	lastHeight int
	onCreate   func(g *gocui.Gui, v *gocui.View) error
	onResize   func(g *gocui.Gui) error
}

// NewLayoutManager creates a manager. onCreate runs once per view when it is
// first created; onResize runs after the terminal size changed.
func NewLayoutManager(config LayoutConfig, onCreate func(*gocui.Gui, *gocui.View) error, onResize func(*gocui.Gui) error) *LayoutManager {
	return &LayoutManager{config: config, onCreate: onCreate, onResize: onResize}
}

// Arrange computes the view dimensions for a width x height terminal.
func (lm *LayoutManager) Arrange(width, height int) map[string]boxlayout.Dimensions {
	return boxlayout.ArrangeWindows(lm.buildLayoutTree(width), 0, 0, width, height)
}

func (lm *LayoutManager) showSidebar(width int) bool {
	return width >= lm.config.MinSidebarWidth
}

func (lm *LayoutManager) buildLayoutTree(width int) *boxlayout.Box {
	columns := []*boxlayout.Box{}
	if lm.showSidebar(width) {
		columns = append(columns, &boxlayout.Box{Window: ViewSidebar, Size: lm.config.SidebarWidth})
	}
	columns = append(columns, &boxlayout.Box{
		Direction: boxlayout.ROW,
		Weight:    1,
		Children: []*boxlayout.Box{
			{Window: ViewTranscript, Weight: 1},
			{Window: ViewInput, Size: lm.config.InputHeight},
		},
	})

	return &boxlayout.Box{
		Direction: boxlayout.ROW,
		Children: []*boxlayout.Box{
			{Window: ViewTitle, Size: lm.config.TitleHeight},
			{Direction: boxlayout.COLUMN, Weight: 1, Children: columns},
		},
	}
}

// Layout implements gocui.Manager.
func (lm *LayoutManager) Layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	if maxX <= 0 || maxY <= 0 {
		return nil
	}

	sizeChanged := lm.lastWidth != maxX || lm.lastHeight != maxY
	lm.lastWidth, lm.lastHeight = maxX, maxY

	dims := lm.Arrange(maxX, maxY)
	if _, ok := dims[ViewSidebar]; !ok {
		if err := g.DeleteView(ViewSidebar); err != nil && !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
	}

	for _, name := range []string{ViewTitle, ViewSidebar, ViewTranscript, ViewInput} {
		d, ok := dims[name]
		if !ok {
			continue
		}
		v, err := g.SetView(name, d.X0, d.Y0, d.X1-1, d.Y1, 0)
		if err != nil && !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		if errors.Is(err, gocui.ErrUnknownView) && lm.onCreate != nil {
			if err := lm.onCreate(g, v); err != nil {
				return err
			}
		}
	}

	if sizeChanged && lm.onResize != nil {
		return lm.onResize(g)
	}
	return nil
}
