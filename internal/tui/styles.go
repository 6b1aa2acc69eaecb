package tui

import "github.com/charmbracelet/lipgloss"

// Lipgloss styles for the board view.
var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("51")).
			Bold(true).
			Padding(0, 1)

	columnStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1).
			Width(30)

	// Target highlight while a card is picked up, mirroring the web
	// drag-over ring.
	dropTargetStyle = columnStyle.
			BorderForeground(lipgloss.Color("51"))

	columnTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("231"))

	badgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Width(26)

	selectedCardStyle = cardStyle.
				BorderForeground(lipgloss.Color("51"))

	pickedCardStyle = cardStyle.
			BorderForeground(lipgloss.Color("226"))

	cardTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("231"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			MarginTop(1)

	footerKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("51")).
			Bold(true)

	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("51")).
			Padding(1, 2)

	dialogTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("51"))
)

// priorityStyles colors the priority badge on a card.
var priorityStyles = map[string]lipgloss.Style{
	"high":   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	"medium": lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
	"low":    lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
}

// paletteColors maps the column color tokens to terminal colors for the
// column dot and the dialog color picker.
var paletteColors = map[string]lipgloss.Color{
	"slate":   lipgloss.Color("245"),
	"red":     lipgloss.Color("196"),
	"orange":  lipgloss.Color("208"),
	"amber":   lipgloss.Color("214"),
	"yellow":  lipgloss.Color("226"),
	"lime":    lipgloss.Color("190"),
	"green":   lipgloss.Color("46"),
	"emerald": lipgloss.Color("42"),
	"teal":    lipgloss.Color("44"),
	"cyan":    lipgloss.Color("51"),
	"sky":     lipgloss.Color("45"),
	"blue":    lipgloss.Color("33"),
	"indigo":  lipgloss.Color("63"),
	"violet":  lipgloss.Color("99"),
	"purple":  lipgloss.Color("129"),
	"fuchsia": lipgloss.Color("201"),
	"pink":    lipgloss.Color("205"),
	"rose":    lipgloss.Color("211"),
}

// colorDot renders the colored marker for a column color token.
func colorDot(token string) string {
	c, ok := paletteColors[token]
	if !ok {
		c = paletteColors["slate"]
	}
	return lipgloss.NewStyle().Foreground(c).Render("●")
}
