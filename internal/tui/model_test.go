package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/napolitain/alchemy/internal/loader"
	"github.com/napolitain/alchemy/internal/models"
)

func testProfile() *loader.Profile {
	data := models.NewAlchemyData()
	data.Upgrades[models.Orange] = []int{10, 0}
	data.Upgrades[models.Green] = []int{3}
	data.Goals[models.Orange] = []int{5}

	return &loader.Profile{
		Data: data,
		Bubbles: map[models.Color][]models.Bubble{
			models.Orange: {
				{Name: "Roid Ragin", X1: 40, X2: 12, Func: "decay"},
				{Name: "Warriors Rule", X1: 2, X2: 0, Func: "add"},
			},
			models.Green: {
				{Name: "Swift Steppin", X1: 15, X2: 50, Func: "decay"},
			},
		},
	}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func TestNewSkipsEmptyCauldrons(t *testing.T) {
	m := New(testProfile(), nil)

	assert.Equal(t, []models.Color{models.Orange, models.Green}, m.colors)
	ref, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, models.BubbleRef{Color: models.Orange, Index: 0}, ref)
}

func TestNavigation(t *testing.T) {
	m := New(testProfile(), nil)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown})
	ref, _ := m.Selected()
	assert.Equal(t, 1, ref.Index, "cursor stops at the last bubble")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	ref, _ = m.Selected()
	assert.Equal(t, models.BubbleRef{Color: models.Green, Index: 0}, ref)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	ref, _ = m.Selected()
	assert.Equal(t, models.Orange, ref.Color, "tabs wrap around")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	ref, _ = m.Selected()
	assert.Equal(t, 0, ref.Index)
}

func TestAdjustGoalStartsAtCurrentLevel(t *testing.T) {
	m := New(testProfile(), nil)
	ref := models.BubbleRef{Color: models.Orange, Index: 0}

	// stored goal 5 is below the current level 10
	m = update(t, m, keyRunes("+"))
	assert.Equal(t, 11, m.Profile().Data.GoalLevel(ref))

	m = update(t, m, keyRunes("-"), keyRunes("-"), keyRunes("-"))
	assert.Equal(t, 10, m.Profile().Data.GoalLevel(ref), "goal never drops below current")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyPgUp})
	assert.Equal(t, 20, m.Profile().Data.GoalLevel(ref))
}

func TestViewShowsEffectChange(t *testing.T) {
	m := New(testProfile(), nil)
	m = update(t, m, keyRunes("+"), keyRunes("+"))

	view := m.View()

	assert.Contains(t, view, "Roid Ragin")
	// decay(10, 40, 12) = 18.18, decay(12, 40, 12) = 20
	assert.Contains(t, view, " 18.18 =>  20.00")
	assert.Contains(t, view, "bubble discount 0.00%")
	assert.True(t, strings.Contains(view, "Orange") && strings.Contains(view, "Green"))
}

func TestQuit(t *testing.T) {
	m := New(testProfile(), nil)

	next, cmd := m.Update(keyRunes("q"))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, next.View())
}

func TestEmptyProfile(t *testing.T) {
	m := New(&loader.Profile{}, nil)

	m = update(t, m, keyRunes("+"), tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyDown})

	_, ok := m.Selected()
	assert.False(t, ok)
	assert.Contains(t, m.View(), "No bubbles in profile.")
}
