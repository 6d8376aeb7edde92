package alchemy

import (
	"fmt"
	"math"

	"github.com/napolitain/alchemy/internal/growth"
	"github.com/napolitain/alchemy/internal/models"
)

// Effect returns a bubble's effect at level. Level 0 and curves that
// evaluate to NaN (unknown curve names included) give 0.
func (c *Calculator) Effect(b models.Bubble, level float64) float64 {
	if level == 0 {
		return 0
	}
	v := c.eval(b, level)
	if math.IsNaN(v) {
		return 0
	}
	return v
}

// EffectDelta returns the effect at now and at goal. A goal below now is
// raised to now.
func (c *Calculator) EffectDelta(b models.Bubble, now, goal float64) (float64, float64) {
	effectNow := c.Effect(b, now)
	effectGoal := c.Effect(b, goal)
	if effectGoal < effectNow {
		effectGoal = effectNow
	}
	return effectNow, effectGoal
}

// EffectChange formats the effect at now and at goal as "  1.00 =>   2.50"
func (c *Calculator) EffectChange(b models.Bubble, now, goal float64) string {
	effectNow, effectGoal := c.EffectDelta(b, now, goal)
	return fmt.Sprintf("%6s => %6s", FormatFixed(effectNow), FormatFixed(effectGoal))
}

// VialEffect returns a vial's bonus at level. Vials grow along the add curve
// from their base value.
func (c *Calculator) VialEffect(v models.Vial, level float64) float64 {
	if level == 0 {
		return 0
	}
	e := c.curves().Eval(growth.KindAdd, level, v.Base, 0)
	if math.IsNaN(e) {
		return 0
	}
	return e
}

// Effect evaluates a bubble with the default curves
func Effect(b models.Bubble, level float64) float64 {
	return std.Effect(b, level)
}

// EffectDelta evaluates a level change with the default curves
func EffectDelta(b models.Bubble, now, goal float64) (float64, float64) {
	return std.EffectDelta(b, now, goal)
}

// EffectChange formats a level change with the default curves
func EffectChange(b models.Bubble, now, goal float64) string {
	return std.EffectChange(b, now, goal)
}

// VialEffect evaluates a vial with the default curves
func VialEffect(v models.Vial, level float64) float64 {
	return std.VialEffect(v, level)
}
