package viz

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/sortwiz/internal/layout"
)

// Theme defines the color scheme for the TUI and its bars.
type Theme struct {
	Name string
	// Primary and Secondary are the ends of the title gradient.
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	// Success and Error accent the primary and secondary highlighted bars.
	Success lipgloss.Color
	Error   lipgloss.Color

	// Bars holds the three gradient colors cycled over resting bars.
	Bars [3]lipgloss.Color
}

var (
	ThemeOcean = Theme{
		Name:      "ocean",
		Primary:   lipgloss.Color("#0077be"),
		Secondary: lipgloss.Color("#00a8cc"),
		Text:      lipgloss.Color("#e0f0ff"),
		Muted:     lipgloss.Color("#4488aa"),
		Success:   lipgloss.Color("#008000"),
		Error:     lipgloss.Color("#ff0000"),
		Bars:      [3]lipgloss.Color{"#0000ff", "#0000e6", "#0000cd"},
	}

	ThemeCyberpunk = Theme{
		Name:      "cyberpunk",
		Primary:   lipgloss.Color("#ff00ff"),
		Secondary: lipgloss.Color("#00ffff"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#666666"),
		Success:   lipgloss.Color("#00ff00"),
		Error:     lipgloss.Color("#ff0000"),
		Bars:      [3]lipgloss.Color{"#ff00ff", "#cc00cc", "#990099"},
	}

	ThemeRetroGreen = Theme{
		Name:      "retro",
		Primary:   lipgloss.Color("#00ff00"), // green phosphor
		Secondary: lipgloss.Color("#00cc00"),
		Text:      lipgloss.Color("#00ff00"),
		Muted:     lipgloss.Color("#005500"),
		Success:   lipgloss.Color("#ffffff"),
		Error:     lipgloss.Color("#ff0000"),
		Bars:      [3]lipgloss.Color{"#00cc00", "#00aa00", "#008800"},
	}

	ThemeMinimal = Theme{
		Name:      "minimal",
		Primary:   lipgloss.Color("#ffffff"),
		Secondary: lipgloss.Color("#cccccc"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#888888"),
		Success:   lipgloss.Color("#00ff00"),
		Error:     lipgloss.Color("#ff0000"),
		Bars:      [3]lipgloss.Color{"#dddddd", "#bbbbbb", "#999999"},
	}

	ThemeSunset = Theme{
		Name:      "sunset",
		Primary:   lipgloss.Color("#ff6b6b"),
		Secondary: lipgloss.Color("#feca57"),
		Text:      lipgloss.Color("#fff5f5"),
		Muted:     lipgloss.Color("#8b6b8c"),
		Success:   lipgloss.Color("#5fd068"),
		Error:     lipgloss.Color("#ff4757"),
		Bars:      [3]lipgloss.Color{"#ff6b6b", "#ff8e53", "#feca57"},
	}

	Themes = []Theme{
		ThemeOcean,
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to ocean.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeOcean
}

// NextTheme returns the theme following t in Themes, wrapping around.
func NextTheme(t Theme) Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// BarColor maps a bar tint to the theme's color. Primary highlights use
// Success and secondary highlights use Error.
func (t Theme) BarColor(tint layout.Tint) lipgloss.Color {
	switch tint {
	case layout.Accent1:
		return t.Success
	case layout.Accent2:
		return t.Error
	case layout.Gradient1:
		return t.Bars[1]
	case layout.Gradient2:
		return t.Bars[2]
	default:
		return t.Bars[0]
	}
}

func (t Theme) BarStyle(tint layout.Tint) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.BarColor(tint))
}
