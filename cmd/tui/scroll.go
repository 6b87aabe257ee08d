package tui

import (
	"strings"

	"github.com/awesome-gocui/gocui"
)

// scrollView is the part of *gocui.View needed to scroll it.
type scrollView interface {
	Origin() (int, int)
	SetOrigin(x, y int) error
	Size() (int, int)
	ViewBuffer() string
}

// Scroller scrolls the transcript view. A nil view is ignored so the
// handlers can run before the first layout.
type Scroller struct {
	getView func() scrollView
}

// NewScroller creates a scroller over the named view of g.
func NewScroller(g *gocui.Gui, name string) *Scroller {
	return &Scroller{getView: func() scrollView {
		v, err := g.View(name)
		if err != nil {
			return nil
		}
		return v
	}}
}

// PageUp scrolls the view up by one page
func (s *Scroller) PageUp() error {
	v := s.getView()
	if v == nil {
		return nil
	}
	ox, oy := v.Origin()
	_, height := v.Size()
	return v.SetOrigin(ox, max(oy-height, 0))
}

// PageDown scrolls the view down by one page, stopping at the bottom
func (s *Scroller) PageDown() error {
	v := s.getView()
	if v == nil {
		return nil
	}
	ox, oy := v.Origin()
	_, height := v.Size()
	return v.SetOrigin(ox, min(oy+height, bottomOrigin(v)))
}

// ScrollToTop scrolls the view to the top
func (s *Scroller) ScrollToTop() error {
	v := s.getView()
	if v == nil {
		return nil
	}
	return v.SetOrigin(0, 0)
}

// ScrollToBottom shows the last page of the view's buffer
func (s *Scroller) ScrollToBottom() error {
	v := s.getView()
	if v == nil {
		return nil
	}
	return v.SetOrigin(0, bottomOrigin(v))
}

func bottomOrigin(v scrollView) int {
	lines := strings.Count(v.ViewBuffer(), "\n")
	_, height := v.Size()
	return max(lines-height+1, 0)
}

// ScrollBy moves the view n lines, negative for up, within the buffer.
func (s *Scroller) ScrollBy(n int) error {
	v := s.getView()
	if v == nil {
		return nil
	}
	ox, oy := v.Origin()
	return v.SetOrigin(ox, min(max(oy+n, 0), bottomOrigin(v)))
}
