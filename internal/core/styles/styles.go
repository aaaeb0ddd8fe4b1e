// Package styles provides the shared lipgloss palette and styles for the CLI
// and TUI.
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

	// GlamourStyle names the glamour standard style used for markdown.
	GlamourStyle string
}

// DefaultTheme is the name of the default theme.
const DefaultTheme = "tokyo-night"

var themes = map[string]Palette{
	"tokyo-night": {
		Primary:      lipgloss.Color("#7aa2f7"),
		Foreground:   lipgloss.Color("#c0caf5"),
		Muted:        lipgloss.Color("#565f89"),
		Surface:      lipgloss.Color("#3b4261"),
		Success:      lipgloss.Color("#9ece6a"),
		Warning:      lipgloss.Color("#e0af68"),
		Error:        lipgloss.Color("#f7768e"),
		GlamourStyle: "tokyo-night",
	},
	"gruvbox": {
		Primary:      lipgloss.Color("#83a598"),
		Foreground:   lipgloss.Color("#ebdbb2"),
		Muted:        lipgloss.Color("#665c54"),
		Surface:      lipgloss.Color("#3c3836"),
		Success:      lipgloss.Color("#b8bb26"),
		Warning:      lipgloss.Color("#fabd2f"),
		Error:        lipgloss.Color("#fb4934"),
		GlamourStyle: "dark",
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

// GetPalette returns the palette for the given theme name.
func GetPalette(name string) (Palette, bool) {
	p, ok := themes[name]
	return p, ok
}

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Style exports, rebuilt by SetTheme.
var (
	TitleStyle       lipgloss.Style
	LabelStyle       lipgloss.Style
	SelectedStyle    lipgloss.Style
	DoneStyle        lipgloss.Style
	PendingStyle     lipgloss.Style
	MutedStyle       lipgloss.Style
	HelpStyle        lipgloss.Style
	ErrorStyle       lipgloss.Style
	InfoStyle        lipgloss.Style
	FocusedBoxStyle  lipgloss.Style
	BlurredBoxStyle  lipgloss.Style
	TableHeaderStyle lipgloss.Style
)

// SetTheme applies p and rebuilds every exported style.
func SetTheme(p Palette) {
	CurrentPalette = p

	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(p.Primary).MarginBottom(1)
	LabelStyle = lipgloss.NewStyle().Foreground(p.Foreground)
	SelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(p.Primary)
	DoneStyle = lipgloss.NewStyle().Foreground(p.Success)
	PendingStyle = lipgloss.NewStyle().Foreground(p.Warning)
	MutedStyle = lipgloss.NewStyle().Foreground(p.Muted)
	HelpStyle = lipgloss.NewStyle().Foreground(p.Muted).MarginTop(1)
	ErrorStyle = lipgloss.NewStyle().Bold(true).Foreground(p.Error)
	InfoStyle = lipgloss.NewStyle().Foreground(p.Success)
	FocusedBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.Primary).Padding(0, 1)
	BlurredBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.Surface).Padding(0, 1)
	TableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(p.Primary)
}

func init() {
	SetTheme(themes[DefaultTheme])
}
