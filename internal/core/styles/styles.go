// Package styles provides shared lipgloss styles for CLI and TUI components.
package styles

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Palette defines a minimal semantic theme palette.
type Palette struct {
	Primary    lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Surface    lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
}

// themes holds the built-in named palettes. "auto" aliases dark.
var themes = map[string]Palette{
	"dark": {
		Primary:    lipgloss.Color("#7aa2f7"),
		Foreground: lipgloss.Color("#c0caf5"),
		Muted:      lipgloss.Color("#565f89"),
		Surface:    lipgloss.Color("#3b4261"),
		Success:    lipgloss.Color("#9ece6a"),
		Warning:    lipgloss.Color("#e0af68"),
		Error:      lipgloss.Color("#f7768e"),
	},
	"light": {
		Primary:    lipgloss.Color("#2e7de9"),
		Foreground: lipgloss.Color("#3760bf"),
		Muted:      lipgloss.Color("#848cb5"),
		Surface:    lipgloss.Color("#c4c8da"),
		Success:    lipgloss.Color("#587539"),
		Warning:    lipgloss.Color("#8c6c3e"),
		Error:      lipgloss.Color("#f52a65"),
	},
}

// ThemeNames returns sorted names of all built-in themes.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Current holds the active theme palette. Defaults to dark until Apply is
// called.
var Current = themes["dark"]

// Apply activates the named theme and rebuilds the shared styles. Unknown
// names fall back to dark.
func Apply(name string) {
	p, ok := themes[name]
	if !ok {
		p = themes["dark"]
	}
	Current = p
	rebuild()
}

// Shared styles used across the TUI and CLI output.
var (
	Title        lipgloss.Style
	Label        lipgloss.Style
	LabelFocused lipgloss.Style
	Help         lipgloss.Style
	ErrorText    lipgloss.Style
	SuccessText  lipgloss.Style
	Pill         lipgloss.Style
	Dialog       lipgloss.Style
)

func rebuild() {
	Title = lipgloss.NewStyle().Bold(true).Foreground(Current.Primary)
	Label = lipgloss.NewStyle().Foreground(Current.Muted)
	LabelFocused = lipgloss.NewStyle().Bold(true).Foreground(Current.Primary)
	Help = lipgloss.NewStyle().Foreground(Current.Muted).Italic(true)
	ErrorText = lipgloss.NewStyle().Foreground(Current.Error)
	SuccessText = lipgloss.NewStyle().Foreground(Current.Success)
	Pill = lipgloss.NewStyle().Foreground(Current.Foreground).Background(Current.Surface).Padding(0, 1)
	Dialog = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Current.Surface).Padding(1, 2)
}

func init() {
	rebuild()
}
