package alchemy

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/napolitain/alchemy/internal/growth"
	"github.com/napolitain/alchemy/internal/models"
)

// nanCurves stands in for a provider that knows no curve at all
type nanCurves struct{}

func (nanCurves) Eval(growth.Kind, float64, float64, float64) float64 { return math.NaN() }

var decayBubble = models.Bubble{Name: "Bubble XII", X1: 40, X2: 12, Func: "Decay"}

func TestEffect(t *testing.T) {
	tests := []struct {
		name   string
		bubble models.Bubble
		level  float64
		want   float64
	}{
		{"decay", decayBubble, 12, 20},
		{"decay lowercase func", models.Bubble{X1: 40, X2: 12, Func: "decay"}, 12, 20},
		{"add", models.Bubble{X1: 2, X2: 4, Func: "add"}, 2, 16},
		{"big base", models.Bubble{X1: 10, X2: 2, Func: "bigBase"}, 5, 20},
		{"level zero", decayBubble, 0, 0},
		{"unknown curve", models.Bubble{X1: 1, X2: 1, Func: "sqrtish"}, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Effect(tt.bubble, tt.level), delta)
		})
	}
}

func TestEffect_ZeroLevelForEveryBubble(t *testing.T) {
	for _, b := range []models.Bubble{models.CauldronCostReduction, models.BubbleTwelve, models.UndevelopedCosts} {
		assert.Equal(t, 0.0, Effect(b, 0), b.Name)
	}
}

func TestEffect_NaNProviderFailsSoft(t *testing.T) {
	calc := NewCalculator(nanCurves{}, nil)

	assert.Equal(t, 0.0, calc.Effect(decayBubble, 5))
	assert.Equal(t, 0.0, calc.VialEffect(models.Vial{Base: 1}, 5))
	assert.Equal(t, "  0.00 =>   0.00", calc.EffectChange(decayBubble, 1, 2))
}

func TestEffectDelta_ClampsGoal(t *testing.T) {
	now, goal := EffectDelta(decayBubble, 10, 5)
	assert.InDelta(t, 400.0/22, now, delta)
	assert.Equal(t, now, goal)

	now, goal = EffectDelta(decayBubble, 0, 12)
	assert.Equal(t, 0.0, now)
	assert.InDelta(t, 20, goal, delta)
}

func TestEffectChange(t *testing.T) {
	tests := []struct {
		name string
		now  float64
		goal float64
		want string
	}{
		{"goal below now", 10, 5, " 18.18 =>  18.18"},
		{"from zero", 0, 12, "  0.00 =>  20.00"},
		{"same level", 12, 12, " 20.00 =>  20.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EffectChange(decayBubble, tt.now, tt.goal))
		})
	}

	big := models.Bubble{X1: 1000, X2: 0, Func: "add"}
	assert.Equal(t, "1000.00 => 2000.00", EffectChange(big, 1, 2))
}

func TestVialEffect(t *testing.T) {
	barley, ok := models.GetVial(models.IronBarVial)
	assert.True(t, ok)
	assert.InDelta(t, 5, VialEffect(barley, 5), delta)

	copper, ok := models.GetVial("Copper Corona")
	assert.True(t, ok)
	assert.InDelta(t, 6, VialEffect(copper, 2), delta)
	assert.Equal(t, 0.0, VialEffect(copper, 0))
}

func TestFormatFixed(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{math.Copysign(0, -1), "0.00"},
		{1, "1.00"},
		{18.181818, "18.18"},
		{0.125, "0.13"},
		{0.625, "0.63"},
		{10.125, "10.13"},
		{-0.125, "-0.13"},
		{1.005, "1.00"}, // stored just below the tie
		{2.675, "2.67"},
		{-0.001, "-0.00"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatFixed(tt.in), "FormatFixed(%v)", tt.in)
	}
}
