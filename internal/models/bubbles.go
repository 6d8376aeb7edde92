package models

// Curves of the bubbles and upgrades that reduce bubble costs
var (
	CauldronCostReduction = Bubble{Name: "Cauldron Cost Reduction", X1: 90, X2: 100, Func: "Decay"}
	BubbleTwelve          = Bubble{Name: "Bubble XII", X1: 40, X2: 12, Func: "Decay"}
	UndevelopedCosts      = Bubble{Name: "Undeveloped Costs", X1: 40, X2: 70, Func: "Decay"}
)
