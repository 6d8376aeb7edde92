// Package tui is an interactive goal planner for a player's bubbles.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/napolitain/alchemy/internal/alchemy"
	"github.com/napolitain/alchemy/internal/loader"
	"github.com/napolitain/alchemy/internal/models"
)

// Model shows the bubbles of one cauldron at a time with their current and
// goal effects. Goals are edited in place on the profile.
type Model struct {
	profile  *loader.Profile
	calc     *alchemy.Calculator
	colors   []models.Color
	color    int
	cursor   int
	quitting bool
}

// New creates a planner over the bubbles of p
func New(p *loader.Profile, calc *alchemy.Calculator) Model {
	if calc == nil {
		calc = alchemy.NewCalculator(nil, nil)
	}
	if p.Data == nil {
		p.Data = models.NewAlchemyData()
	}
	var colors []models.Color
	for _, c := range models.AllColors() {
		if len(p.Bubbles[c]) > 0 {
			colors = append(colors, c)
		}
	}
	return Model{profile: p, calc: calc, colors: colors}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "q", "esc":
		m.quitting = true
		return m, tea.Quit
	case "tab", "right", "l":
		m.switchColor(1)
	case "shift+tab", "left", "h":
		m.switchColor(-1)
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.bubbles())-1 {
			m.cursor++
		}
	case "+", "=":
		m.adjustGoal(1)
	case "-":
		m.adjustGoal(-1)
	case "pgup":
		m.adjustGoal(10)
	case "pgdown":
		m.adjustGoal(-10)
	}
	return m, nil
}

func (m *Model) switchColor(step int) {
	if len(m.colors) == 0 {
		return
	}
	m.color = (m.color + step + len(m.colors)) % len(m.colors)
	m.cursor = 0
}

// adjustGoal moves the selected goal by step. Goals start from the current
// level and never go below it.
func (m *Model) adjustGoal(step int) {
	ref, ok := m.selected()
	if !ok {
		return
	}
	now := m.profile.Data.UpgradeLevel(ref)
	goal := max(m.profile.Data.GoalLevel(ref), now)
	m.profile.Data.SetGoal(ref, max(goal+step, now))
}

func (m Model) bubbles() []models.Bubble {
	if len(m.colors) == 0 {
		return nil
	}
	return m.profile.Bubbles[m.colors[m.color]]
}

func (m Model) selected() (models.BubbleRef, bool) {
	if len(m.bubbles()) == 0 {
		return models.BubbleRef{}, false
	}
	return models.BubbleRef{Color: m.colors[m.color], Index: m.cursor}, true
}

// Selected returns the highlighted bubble, if any
func (m Model) Selected() (models.BubbleRef, bool) {
	return m.selected()
}

// Profile returns the profile with the edited goals
func (m Model) Profile() *loader.Profile {
	return m.profile
}

// View implements tea.Model
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	d := m.calc.Discount(m.profile.DiscountLevels())
	b.WriteString(titleStyle.Render("Alchemy planner"))
	b.WriteString("  ")
	b.WriteString(discountStyle.Render(fmt.Sprintf("bubble discount %s%%", alchemy.FormatFixed(d.Total))))
	b.WriteString("\n\n")

	if len(m.colors) == 0 {
		b.WriteString("No bubbles in profile.\n")
		b.WriteString(helpStyle.Render("q quit"))
		return b.String()
	}

	tabs := make([]string, 0, len(m.colors))
	for i, c := range m.colors {
		style := tabStyle
		if i == m.color {
			style = activeTab
		}
		tabs = append(tabs, style.Render(string(c)))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n\n")

	color := m.colors[m.color]
	nameStyle := lipgloss.NewStyle().Foreground(cauldronColors[string(color)])
	for i, bubble := range m.bubbles() {
		ref := models.BubbleRef{Color: color, Index: i}
		now := m.profile.Data.UpgradeLevel(ref)
		goal := max(m.profile.Data.GoalLevel(ref), now)

		prefix := "  "
		if i == m.cursor {
			prefix = cursorStyle.Render("> ")
		}
		fmt.Fprintf(&b, "%s%s %4d -> %-4d %s\n",
			prefix,
			nameStyle.Render(fmt.Sprintf("%-24s", bubble.Name)),
			now, goal,
			m.calc.EffectChange(bubble, float64(now), float64(goal)))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab switch cauldron  up/down select  +/- goal  pgup/pgdown goal x10  q quit"))
	return b.String()
}
