// Package alchemy computes bubble cost discounts and bubble effects from
// upgrade levels.
package alchemy

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/napolitain/alchemy/internal/growth"
	"github.com/napolitain/alchemy/internal/models"
)

// Discount floors: the lowest fraction of the price each source can leave
const (
	CauldronFloor     = 0.1
	BubbleTwelveFloor = 0.05
	UndevVialFloor    = 0.05
	BargainFloor      = 0.1

	// BargainRate is the cost multiplier applied per bargain tag level
	BargainRate = 0.75
)

// DiscountLevels are the upgrade levels that reduce bubble costs
type DiscountLevels struct {
	CauldronCostReduction float64
	BubbleCostBubble      float64
	BubbleCostVial        float64
	BubbleTwelve          float64
	BargainTag            float64
}

// DiscountLevelsFromData fills the undeveloped-cost bubble and vial levels
// from a player's alchemy data. The remaining levels are left as given.
func DiscountLevelsFromData(base DiscountLevels, data *models.AlchemyData) DiscountLevels {
	out := base
	if data == nil {
		return out
	}
	if lvl := data.UpgradeLevel(models.UndevCostBubble); lvl > 0 {
		out.BubbleCostBubble = float64(lvl)
	}
	if lvl := data.VialLevel(models.IronBarVial); lvl > 0 {
		out.BubbleCostVial = float64(lvl)
	}
	return out
}

// Factors are the cost multipliers of each discount source, each in [floor, 1],
// and their product
type Factors struct {
	Cauldron     float64
	Bargain      float64
	BubbleTwelve float64
	UndevVial    float64
	Total        float64
}

// Discount is the percentage taken off bubble costs by each source
type Discount struct {
	Cauldron     float64
	Bargain      float64
	BubbleTwelve float64
	UndevVial    float64
	Total        float64
}

// Discount converts every factor to its percent-off value.
// The cauldron value is the rounded cauldron boost, which does not exactly
// match its share of Total; Total is computed from the unrounded product.
func (f Factors) Discount() Discount {
	return Discount{
		Cauldron:     PercentOff(f.Cauldron),
		Bargain:      PercentOff(f.Bargain),
		BubbleTwelve: PercentOff(f.BubbleTwelve),
		UndevVial:    PercentOff(f.UndevVial),
		Total:        PercentOff(f.Total),
	}
}

// Values returns cauldron, bargain, bubble XII, undev + vial and total in that order
func (d Discount) Values() [5]float64 {
	return [5]float64{d.Cauldron, d.Bargain, d.BubbleTwelve, d.UndevVial, d.Total}
}

// Labels of Report, in Values order
var reportLabels = [5]string{"Cauldron:", "Bargain:", "Bubble XII:", "Undev + vial:", "Total:"}

// Report renders the breakdown one source per line
func (d Discount) Report() string {
	var sb strings.Builder
	for i, v := range d.Values() {
		fmt.Fprintf(&sb, "%-13s %5s\n", reportLabels[i], FormatFixed(v))
	}
	return sb.String()
}

// Calculator evaluates discounts and effects against a curve provider.
// A nil Curves uses growth.Default. When Log is set, Discount logs its
// breakdown at debug level.
type Calculator struct {
	Curves growth.Provider
	Log    *slog.Logger
}

// NewCalculator creates a calculator
func NewCalculator(curves growth.Provider, log *slog.Logger) *Calculator {
	return &Calculator{Curves: curves, Log: log}
}

func (c *Calculator) curves() growth.Provider {
	if c == nil || c.Curves == nil {
		return growth.Default()
	}
	return c.Curves
}

func (c *Calculator) eval(b models.Bubble, level float64) float64 {
	return c.curves().Eval(b.Kind(), level, b.X1, b.X2)
}

// Factors computes the clamped cost multiplier of every discount source.
// NaN levels propagate to the factor they feed and to Total.
func (c *Calculator) Factors(l DiscountLevels) Factors {
	boost := math.Round(10*c.eval(models.CauldronCostReduction, l.CauldronCostReduction)) / 10
	cauldron := math.Max(CauldronFloor, 1-boost/100)

	twelve := math.Max(BubbleTwelveFloor, 1-c.eval(models.BubbleTwelve, l.BubbleTwelve)/100)

	undevCost := c.eval(models.UndevelopedCosts, l.BubbleCostBubble)
	vialCost := c.curves().Eval(growth.KindAdd, l.BubbleCostVial, 1, 0)
	undevVial := math.Max(UndevVialFloor, 1-(undevCost+vialCost)/100)

	bargain := math.Max(math.Pow(BargainRate, l.BargainTag), BargainFloor)

	return Factors{
		Cauldron:     cauldron,
		Bargain:      bargain,
		BubbleTwelve: twelve,
		UndevVial:    undevVial,
		Total:        cauldron * twelve * undevVial * bargain,
	}
}

// Discount computes the percent-off breakdown for the given levels
func (c *Calculator) Discount(l DiscountLevels) Discount {
	d := c.Factors(l).Discount()
	if c != nil && c.Log != nil {
		c.Log.Debug("bubble discount",
			"cauldron", d.Cauldron,
			"bargain", d.Bargain,
			"bubble_xii", d.BubbleTwelve,
			"undev_vial", d.UndevVial,
			"total", d.Total,
			"report", d.Report())
	}
	return d
}

var std = &Calculator{}

// ComputeFactors computes discount factors with the default curves
func ComputeFactors(l DiscountLevels) Factors {
	return std.Factors(l)
}

// ComputeDiscount computes the discount breakdown with the default curves
func ComputeDiscount(l DiscountLevels) Discount {
	return std.Discount(l)
}
