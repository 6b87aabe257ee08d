package render

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/kcaldas/shellfolio/pkg/theme"
)

const (
	// RuleChar draws section dividers.
	RuleChar = "━"
	// MinRuleWidth is the narrowest divider drawn.
	MinRuleWidth = 20
	// DefaultWidth is used when the available width is unknown.
	DefaultWidth = 58
)

// RuleWidth returns the divider length for the available width.
func RuleWidth(width int) int {
	if width <= 0 {
		return DefaultWidth
	}
	if width < MinRuleWidth {
		return MinRuleWidth
	}
	return width
}

// Plain renders doc without any escape sequences.
func Plain(doc Doc, width int) string {
	lines := make([]string, 0, len(doc.Blocks))
	for _, block := range doc.Blocks {
		switch block.Kind {
		case BlockLine:
			var b strings.Builder
			b.WriteString(strings.Repeat(" ", block.Indent))
			for _, span := range block.Spans {
				b.WriteString(span.Text)
			}
			lines = append(lines, b.String())
		case BlockRule:
			lines = append(lines, strings.Repeat(RuleChar, RuleWidth(width)))
		case BlockPre, BlockMarkdown:
			lines = append(lines, strings.TrimRight(block.Text, "\n"))
		case BlockBlank:
			lines = append(lines, "")
		}
	}
	return strings.Join(lines, "\n")
}

// Painter renders docs to ANSI text using the styles of the current theme.
// Markdown blocks go through glamour with the theme's glamour style.
type Painter struct {
	themes *theme.Provider

	mu       sync.Mutex
	markdown *glamour.TermRenderer
	mdKey    string
}

// NewPainter creates a painter following the provider's current theme.
func NewPainter(themes *theme.Provider) *Painter {
	return &Painter{themes: themes}
}

// Paint renders doc for a view width columns wide.
func (p *Painter) Paint(doc Doc, width int) string {
	styles := p.themes.Styles()
	current := p.themes.Theme()

	lines := make([]string, 0, len(doc.Blocks))
	for _, block := range doc.Blocks {
		switch block.Kind {
		case BlockLine:
			var b strings.Builder
			b.WriteString(strings.Repeat(" ", block.Indent))
			for _, span := range block.Spans {
				b.WriteString(paintSpan(styles, span))
			}
			lines = append(lines, b.String())
		case BlockRule:
			rule := strings.Repeat(RuleChar, RuleWidth(width))
			lines = append(lines, styleFor(styles, block.Style).Render(rule))
		case BlockPre:
			style := styleFor(styles, block.Style)
			for _, line := range strings.Split(strings.TrimRight(block.Text, "\n"), "\n") {
				lines = append(lines, style.Render(line))
			}
		case BlockMarkdown:
			lines = append(lines, p.renderMarkdown(current.Glamour, width, block.Text))
		case BlockBlank:
			lines = append(lines, "")
		}
	}
	return strings.Join(lines, "\n")
}

func (p *Painter) renderMarkdown(style string, width int, text string) string {
	if style == "" {
		style = "dark"
	}
	wrap := RuleWidth(width)

	p.mu.Lock()
	defer p.mu.Unlock()

	key := fmt.Sprintf("%s/%d", style, wrap)
	if p.markdown == nil || p.mdKey != key {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(wrap),
		)
		if err != nil {
			return text
		}
		p.markdown = renderer
		p.mdKey = key
	}

	out, err := p.markdown.Render(text)
	if err != nil {
		return text
	}
	return strings.Trim(out, "\n")
}

func paintSpan(styles theme.Styles, span Span) string {
	style := styleFor(styles, span.Style)
	if span.Bold {
		style = style.Bold(true)
	}
	return style.Render(span.Text)
}

func styleFor(styles theme.Styles, style Style) lipgloss.Style {
	switch style {
	case StyleSecondary:
		return styles.Secondary
	case StyleMuted:
		return styles.Muted
	case StyleAccent:
		return styles.Accent
	case StyleGreen:
		return styles.Green
	case StyleCyan:
		return styles.Cyan
	case StyleYellow:
		return styles.Yellow
	case StyleLink:
		return styles.Link
	default:
		return styles.Text
	}
}
