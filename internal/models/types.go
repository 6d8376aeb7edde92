package models

import "github.com/napolitain/alchemy/internal/growth"

// Color identifies one of the four alchemy cauldrons
type Color string

const (
	Orange Color = "Orange"
	Green  Color = "Green"
	Purple Color = "Purple"
	Yellow Color = "Yellow"
)

// AllColors returns all cauldron colors in deterministic order
func AllColors() []Color {
	return []Color{Orange, Green, Purple, Yellow}
}

// ParseColor returns the Color for name. Names are case sensitive.
func ParseColor(name string) (Color, bool) {
	for _, c := range AllColors() {
		if string(c) == name {
			return c, true
		}
	}
	return "", false
}

// Vial is a consumable that grants a bonus per level.
// Roll is the percentile (0-100) from which the vial can be drawn.
type Vial struct {
	Name     string
	Roll     int
	Material string
	Base     float64
	Effect   string
}

// Material is one crafting cost line of a bubble
type Material struct {
	Name     string
	Amount   float64
	IsLiquid bool
}

// Bubble is an upgradeable bonus whose effect at a level comes from the
// growth curve named by Func with shape parameters X1 and X2
type Bubble struct {
	Name      string
	X1        float64
	X2        float64
	Func      string
	Materials []Material
}

// Kind resolves Func to a growth curve kind. Unknown names yield growth.KindUnknown.
func (b Bubble) Kind() growth.Kind {
	return growth.ParseKind(b.Func)
}

// BubbleRef points at a bubble by cauldron and index within that cauldron
type BubbleRef struct {
	Color Color
	Index int
}

// AlchemyData holds a player's vial levels and the current and goal level
// of every bubble, indexed by cauldron
type AlchemyData struct {
	Vials    map[string]int
	Upgrades map[Color][]int
	Goals    map[Color][]int
}

// NewAlchemyData creates empty alchemy data
func NewAlchemyData() *AlchemyData {
	return &AlchemyData{
		Vials:    make(map[string]int),
		Upgrades: make(map[Color][]int),
		Goals:    make(map[Color][]int),
	}
}

// VialLevel returns the level of the named vial, 0 if unknown
func (a *AlchemyData) VialLevel(name string) int {
	if a == nil {
		return 0
	}
	return a.Vials[name]
}

// UpgradeLevel returns the current level of a bubble, 0 if not tracked
func (a *AlchemyData) UpgradeLevel(ref BubbleRef) int {
	if a == nil {
		return 0
	}
	return levelAt(a.Upgrades[ref.Color], ref.Index)
}

// GoalLevel returns the goal level of a bubble, 0 if not tracked
func (a *AlchemyData) GoalLevel(ref BubbleRef) int {
	if a == nil {
		return 0
	}
	return levelAt(a.Goals[ref.Color], ref.Index)
}

// SetGoal sets the goal level of a bubble, growing the goal slice as needed
func (a *AlchemyData) SetGoal(ref BubbleRef, level int) {
	goals := a.Goals[ref.Color]
	for len(goals) <= ref.Index {
		goals = append(goals, 0)
	}
	goals[ref.Index] = level
	a.Goals[ref.Color] = goals
}

func levelAt(levels []int, i int) int {
	if i < 0 || i >= len(levels) {
		return 0
	}
	return levels[i]
}
