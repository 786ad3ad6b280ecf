package widget

import "github.com/charmbracelet/lipgloss"

// Theme holds the colors of the widget card.
type Theme struct {
	Name string

	Surface string
	Border  string
	Text    string
	Muted   string
	Accent  string
	Streak  string
}

// Styles returns the lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Background(lipgloss.Color(t.Surface)).
			Padding(0, 1),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Bold(true),
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),
		Value: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),
		Streak: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Streak)).
			Bold(true),
		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Italic(true),
	}
}

// Styles contains pre-built lipgloss styles for a theme.
type Styles struct {
	Card   lipgloss.Style
	Title  lipgloss.Style
	Label  lipgloss.Style
	Value  lipgloss.Style
	Streak lipgloss.Style
	Footer lipgloss.Style
}

var themes = map[string]Theme{
	"Paper": {
		Name:    "Paper",
		Surface: "#fbf7ef",
		Border:  "#c9bfae",
		Text:    "#3b3228",
		Muted:   "#8a7f70",
		Accent:  "#5a7d9a",
		Streak:  "#c46a3a",
	},
	"Ink": {
		Name:    "Ink",
		Surface: "#1b1d24",
		Border:  "#3a3f4b",
		Text:    "#d8dae0",
		Muted:   "#7d8290",
		Accent:  "#7aa2f7",
		Streak:  "#e0af68",
	},
	"Dusk": {
		Name:    "Dusk",
		Surface: "#2a2136",
		Border:  "#4d3f60",
		Text:    "#eadff5",
		Muted:   "#9c8fb0",
		Accent:  "#c3a6ff",
		Streak:  "#ff9e80",
	},
}

var themeOrder = []string{"Paper", "Ink", "Dusk"}

// GetTheme returns a theme by name, or the first theme when name is unknown.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes[themeOrder[0]]
}

// NextTheme returns the theme name following current in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

func ThemeNames() []string {
	return append([]string(nil), themeOrder...)
}
