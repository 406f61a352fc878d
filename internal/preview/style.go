package preview

import "github.com/charmbracelet/lipgloss"

// styleFunc is a single-string styling function.
type styleFunc func(string) string

// sf wraps a lipgloss.Style into a styleFunc.
func sf(s lipgloss.Style) styleFunc {
	return func(str string) string { return s.Render(str) }
}

func plain(s string) string { return s }

var (
	colorAccent = lipgloss.Color("#7c3aed")
	colorGold   = lipgloss.Color("#eab308")
	colorDim    = lipgloss.Color("#6b7280")
	colorWhite  = lipgloss.Color("#f9fafb")
)

// Style decides how rendered text is decorated.
type Style struct {
	Title       styleFunc
	Heading     styleFunc
	Kind        styleFunc
	Body        styleFunc
	Placeholder styleFunc
	Hint        styleFunc
	Chip        styleFunc
	Star        styleFunc
}

// Colored is the style for terminals.
var Colored = Style{
	Title:       sf(lipgloss.NewStyle().Bold(true).Foreground(colorWhite)),
	Heading:     sf(lipgloss.NewStyle().Bold(true)),
	Kind:        sf(lipgloss.NewStyle().Foreground(colorAccent)),
	Body:        plain,
	Placeholder: sf(lipgloss.NewStyle().Foreground(colorDim).Italic(true)),
	Hint:        sf(lipgloss.NewStyle().Foreground(colorDim)),
	Chip:        sf(lipgloss.NewStyle().Foreground(colorGold).Padding(0, 1).Border(lipgloss.RoundedBorder(), false, true)),
	Star:        sf(lipgloss.NewStyle().Foreground(colorGold)),
}

// Plain renders text without escape sequences, for pipes and files.
var Plain = Style{
	Title:       plain,
	Heading:     plain,
	Kind:        plain,
	Body:        plain,
	Placeholder: plain,
	Hint:        plain,
	Chip:        func(s string) string { return "[" + s + "]" },
	Star:        plain,
}
