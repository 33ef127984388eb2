package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the colours used by the terminal displays. Series colours
// are applied in series order.
type Theme struct {
	Name    string
	Title   lipgloss.Color
	Frame   lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Warning lipgloss.Color
	Series  []lipgloss.Color
}

var (
	ThemeDefault = Theme{
		Name:    "default",
		Title:   lipgloss.Color("#00ffff"),
		Frame:   lipgloss.Color("#444466"),
		Text:    lipgloss.Color("#cccccc"),
		Muted:   lipgloss.Color("#666688"),
		Warning: lipgloss.Color("#ffaa00"),
		Series:  []lipgloss.Color{"#4f9bff", "#ff8c42", "#00ff88"},
	}

	ThemeRetro = Theme{
		Name:    "retro",
		Title:   lipgloss.Color("#88ff88"),
		Frame:   lipgloss.Color("#005500"),
		Text:    lipgloss.Color("#00ff00"),
		Muted:   lipgloss.Color("#007700"),
		Warning: lipgloss.Color("#ffff00"),
		Series:  []lipgloss.Color{"#00ff00", "#ffff00", "#88ff88"},
	}

	ThemeMinimal = Theme{
		Name:    "minimal",
		Title:   lipgloss.Color("#ffffff"),
		Frame:   lipgloss.Color("#888888"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#888888"),
		Warning: lipgloss.Color("#ffaa00"),
		Series:  []lipgloss.Color{"#ffffff", "#0088ff"},
	}
)

var themes = []Theme{ThemeDefault, ThemeRetro, ThemeMinimal}

// ThemeByName returns the named theme, falling back to the default one.
func ThemeByName(name string) Theme {
	for _, t := range themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeDefault
}

// ThemeNames lists the available themes.
func ThemeNames() []string {
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}

func nextTheme(current string) Theme {
	for i, t := range themes {
		if t.Name == current {
			return themes[(i+1)%len(themes)]
		}
	}
	return themes[0]
}
