package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name         string
	Base         lipgloss.Style
	Border       lipgloss.Color
	Header       lipgloss.Style
	Item         lipgloss.Style
	DoneItem     lipgloss.Style
	Input        lipgloss.Style
	Focused      lipgloss.Style
	Dim          lipgloss.Style
	Highlight    lipgloss.Style
	Positive     lipgloss.Style
	Negative     lipgloss.Style
	Warning      lipgloss.Style
	CatEquipment lipgloss.Style
	CatVenue     lipgloss.Style
	CatFood      lipgloss.Style
	CatTravel    lipgloss.Style
	CatSocial    lipgloss.Style
	CatDefault   lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:         "Default",
		Base:         lipgloss.NewStyle().Margin(1, 2),
		Border:       lipgloss.Color("63"),
		Header:       lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Align(lipgloss.Center),
		Item:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		DoneItem:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true),
		Input:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1).Width(50),
		Focused:      lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:          lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight:    lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		Positive:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		Negative:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Warning:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		CatEquipment: lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true),
		CatVenue:     lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		CatFood:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		CatTravel:    lipgloss.NewStyle().Foreground(lipgloss.Color("170")).Bold(true),
		CatSocial:    lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true),
		CatDefault:   lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	},
	"dracula": {
		Name:         "Dracula",
		Base:         lipgloss.NewStyle().Margin(1, 2),
		Border:       lipgloss.Color("62"),
		Header:       lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true).Align(lipgloss.Center),
		Item:         lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		DoneItem:     lipgloss.NewStyle().Foreground(lipgloss.Color("60")).Strikethrough(true),
		Input:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1).Width(50),
		Focused:      lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Dim:          lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Highlight:    lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
		Positive:     lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true),
		Negative:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Warning:      lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true),
		CatEquipment: lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true),
		CatVenue:     lipgloss.NewStyle().Foreground(lipgloss.Color("117")).Bold(true),
		CatFood:      lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true),
		CatTravel:    lipgloss.NewStyle().Foreground(lipgloss.Color("141")).Bold(true),
		CatSocial:    lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true),
		CatDefault:   lipgloss.NewStyle().Foreground(lipgloss.Color("120")),
	},
}

// CurrentTheme holds the currently active theme.
// Initialized to default to avoid nil lookups before settings load.
var CurrentTheme = Themes["default"]

func SetTheme(name string) {
	if t, ok := Themes[name]; ok {
		CurrentTheme = t
	}
}

// ThemeNames lists themes in a stable picker order.
func ThemeNames() []string {
	return []string{"default", "dracula"}
}

func (t Theme) CategoryStyle(category string) lipgloss.Style {
	switch category {
	case "equipment":
		return t.CatEquipment
	case "venue":
		return t.CatVenue
	case "food":
		return t.CatFood
	case "travel":
		return t.CatTravel
	case "social":
		return t.CatSocial
	default:
		return t.CatDefault
	}
}
