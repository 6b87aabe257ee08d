// Package theme provides the colour themes of the portfolio shell.
// Themes define the palette roles used by the renderers and the chrome of
// the terminal front-ends.
package theme

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Built-in theme names.
const (
	Dark  = "dark"
	Light = "light"
)

// Theme defines all colors used by the shell
type Theme struct {
	Name        string `json:"name"`
	Description string `json:"description"`

	// Glamour standard style used for Markdown blocks
	Glamour string `json:"glamour"`

	Colors ColorPalette `json:"colors"`
}

// ColorPalette defines the colour roles of the shell
type ColorPalette struct {
	Accent       string `json:"accent"`        // Headers, command names, rules
	PromptGreen  string `json:"prompt_green"`  // Prompt user, success lines
	PromptCyan   string `json:"prompt_cyan"`   // Prompt host, tips
	PromptYellow string `json:"prompt_yellow"` // Prompt path, warnings

	TextPrimary   string `json:"text_primary"`
	TextSecondary string `json:"text_secondary"`
	TextMuted     string `json:"text_muted"`

	Background string `json:"background"`
	Surface    string `json:"surface"` // Title bar and sidebar
	Border     string `json:"border"`
}

// Styles holds the computed lipgloss styles for a theme
type Styles struct {
	Text      lipgloss.Style
	Secondary lipgloss.Style
	Muted     lipgloss.Style
	Accent    lipgloss.Style
	Green     lipgloss.Style
	Cyan      lipgloss.Style
	Yellow    lipgloss.Style
	Link      lipgloss.Style

	PromptUser lipgloss.Style
	PromptHost lipgloss.Style
	PromptPath lipgloss.Style

	TitleBar lipgloss.Style
	Sidebar  lipgloss.Style
	Viewport lipgloss.Style
	Help     lipgloss.Style
}

// DarkTheme returns the default theme
func DarkTheme() Theme {
	return Theme{
		Name:        Dark,
		Description: "Dark terminal with red accents",
		Glamour:     "dark",
		Colors: ColorPalette{
			Accent:       "#E63946",
			PromptGreen:  "#4ADE80",
			PromptCyan:   "#22D3EE",
			PromptYellow: "#FACC15",

			TextPrimary:   "#E5E7EB",
			TextSecondary: "#9CA3AF",
			TextMuted:     "#6B7280",

			Background: "#0D1117",
			Surface:    "#161B22",
			Border:     "#30363D",
		},
	}
}

// LightTheme returns a light variant for bright environments
func LightTheme() Theme {
	return Theme{
		Name:        Light,
		Description: "Light paper with darker accents",
		Glamour:     "light",
		Colors: ColorPalette{
			Accent:       "#C1121F",
			PromptGreen:  "#15803D",
			PromptCyan:   "#0E7490",
			PromptYellow: "#A16207",

			TextPrimary:   "#111827",
			TextSecondary: "#4B5563",
			TextMuted:     "#6B7280",

			Background: "#FFFFFF",
			Surface:    "#F3F4F6",
			Border:     "#D1D5DB",
		},
	}
}

var builtin = map[string]func() Theme{
	Dark:  DarkTheme,
	Light: LightTheme,
}

// Names returns the built-in theme names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByName returns a built-in theme. Names are matched case-insensitively.
func ByName(name string) (Theme, error) {
	ctor, ok := builtin[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Theme{}, fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return ctor(), nil
}

// LoadFile reads a theme from a JSON file. Colors missing from the file are
// taken from the dark theme.
func LoadFile(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("failed to read theme file: %w", err)
	}

	t := DarkTheme()
	if err := json.Unmarshal(data, &t); err != nil {
		return Theme{}, fmt.Errorf("failed to parse theme file %s: %w", path, err)
	}
	if t.Name == "" {
		return Theme{}, fmt.Errorf("theme file %s has no name", path)
	}
	return t, nil
}

// Opposite returns the theme the toggle switches to.
func (t Theme) Opposite() Theme {
	if t.Name == Light {
		return DarkTheme()
	}
	return LightTheme()
}

// ComputeStyles generates all lipgloss styles from the theme
func (t Theme) ComputeStyles() Styles {
	fg := func(color string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	}

	return Styles{
		Text:      fg(t.Colors.TextPrimary),
		Secondary: fg(t.Colors.TextSecondary),
		Muted:     fg(t.Colors.TextMuted),
		Accent:    fg(t.Colors.Accent),
		Green:     fg(t.Colors.PromptGreen),
		Cyan:      fg(t.Colors.PromptCyan),
		Yellow:    fg(t.Colors.PromptYellow),
		Link:      fg(t.Colors.PromptCyan).Underline(true),

		PromptUser: fg(t.Colors.PromptGreen).Bold(true),
		PromptHost: fg(t.Colors.PromptCyan).Bold(true),
		PromptPath: fg(t.Colors.PromptYellow),

		TitleBar: fg(t.Colors.TextMuted).
			Background(lipgloss.Color(t.Colors.Surface)).
			Align(lipgloss.Center),
		Sidebar: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Colors.Border)).
			Padding(0, 1),
		Viewport: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Colors.Border)),
		Help: fg(t.Colors.TextMuted).Italic(true),
	}
}
