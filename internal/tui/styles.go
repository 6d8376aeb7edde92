package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))
	discountStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	tabStyle      = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("245"))
	activeTab     = tabStyle.Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	cursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	helpStyle     = lipgloss.NewStyle().Faint(true)
)

// cauldronColors maps each cauldron to its display color
var cauldronColors = map[string]lipgloss.Color{
	"Orange": lipgloss.Color("208"),
	"Green":  lipgloss.Color("34"),
	"Purple": lipgloss.Color("135"),
	"Yellow": lipgloss.Color("220"),
}
