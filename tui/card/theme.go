package card

import "github.com/charmbracelet/lipgloss"

// Theme maps a class label to the style the terminal renderer applies.
// Classes missing from the theme render unstyled.
type Theme map[string]lipgloss.Style

// DefaultTheme returns the terminal look of a card.
func DefaultTheme() Theme {
	return Theme{
		ClassCard: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#45475A")).
			Padding(0, 1),
		ClassHeaderImage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D")).
			Italic(true),
		ClassAvatar: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8BD5CA")).
			Faint(true),
		ClassAuthor: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7DC4E4")),
		ClassDate: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D")),
		ClassTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F5A97F")),
		ClassBodyText: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CAD3F5")),
		ClassCommentIcon: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#89B4FA")),
		ClassLikeIcon: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F38BA8")),
		ClassCount: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D")),
		ClassDeleteIcon: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ED8796")),
		ClassEditLabel: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A6DA95")),
	}
}

// SelectedCardStyle highlights the card under the cursor.
var SelectedCardStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("#FF6600")).
	Padding(0, 1)

// FocusedControlStyle highlights the control that enter would activate.
var FocusedControlStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#111111")).
	Background(lipgloss.Color("#FFB454")).
	Bold(true)
