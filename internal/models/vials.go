package models

// IronBarVial is the vial that reduces bubble costs. Its level feeds the
// vial term of the bubble discount.
const IronBarVial = "Barley Brew"

// MaxRoll is the highest value of a vial draw
const MaxRoll = 100

// UndevCostBubble is the bubble whose level feeds the undeveloped-cost term
// of the bubble discount
var UndevCostBubble = BubbleRef{Color: Yellow, Index: 6}

// VialCost is the cost to upgrade a vial, indexed by its current tier
var VialCost = []float64{
	0,
	100,
	1e3,
	2.5e3,
	10e3,
	50e3,
	100e3,
	500e3,
	1e6 + 1,
	5e6,
	25e6,
	100e6,
	1e9,
}

// MaxVialTier is the highest tier present in VialCost
func MaxVialTier() int {
	return len(VialCost) - 1
}

// VialCostForTier returns the upgrade cost at tier, false when tier is out of range
func VialCostForTier(tier int) (float64, bool) {
	if tier < 0 || tier >= len(VialCost) {
		return 0, false
	}
	return VialCost[tier], true
}

// Vials is the full vial table in game order
var Vials = []Vial{
	{Name: "Copper Corona", Roll: 1, Material: "Copper_Ore", Base: 3, Effect: "% Orange Bubble Cauldron Brew Speed"},
	{Name: "Sippy Splinters", Roll: 10, Material: "Oak_Logs", Base: 3, Effect: "% Green Bubble Cauldron brew speed"},
	{Name: "Mushroom Soup", Roll: 20, Material: "Spore_Cap", Base: 3, Effect: "% Yellow Bubble Cauldron brew speed"},
	{Name: "Spool Sprite", Roll: 30, Material: "Thread", Base: 3, Effect: "% Purple Bubble Cauldron brew speed"},
	{Name: "Barium Mixture", Roll: 40, Material: "Copper_Bar", Base: 3, Effect: "Water Droplet max capacity"},
	{Name: "Dieter Drenk", Roll: 40, Material: "Bean_Slices", Base: 1, Effect: "% money from Monsters"},
	{Name: "Thumb Pow", Roll: 50, Material: "Trusty_Nails", Base: 1, Effect: "% Class EXP when converting"},
	{Name: "Skinny O Cal", Roll: 60, Material: "Snake_Skin", Base: 2.5, Effect: "% double statue points chance"},
	{Name: "Jungle Juice", Roll: 60, Material: "Jungle_Logs", Base: 1, Effect: "% liquid regen rate"},
	{Name: "Barley Brew", Roll: 65, Material: "Iron_Bar", Base: 1, Effect: "% discount on alchemy bubbles"},
	{Name: "Anearful", Roll: 70, Material: "Goblin_Ear", Base: 2, Effect: "% Card Drop rate"},
	{Name: "Tea with Pea", Roll: 75, Material: "Potty_Rolls", Base: 3, Effect: "% Liquid Nitrogen max capacity"},
	{Name: "Gold Guzzler", Roll: 83, Material: "Gold_Ore", Base: 1, Effect: "% Shop sell Price"},
	{Name: "Ramificoction", Roll: 84, Material: "Bullfrog_Horn", Base: 1, Effect: " talent points for Tab 1"},
	{Name: "Seawater", Roll: 87, Material: "Goldfish", Base: 1, Effect: " chance for a kill to count double"},
	{Name: "Fly in my Drink", Roll: 87, Material: "Fly", Base: 3, Effect: " base Accuracy"},
	{Name: "Slug Slurp", Roll: 89, Material: "Hermit_Can", Base: 2, Effect: " Post Office box Points"},
	{Name: "Mimicraught", Roll: 90, Material: "Megalodon_Tooth", Base: 1, Effect: "% Exp from Monsters"},
	{Name: "Tail Time", Roll: 91, Material: "Rats_Tail", Base: 0.5, Effect: " Weapon Power"},
	{Name: "Blue Flav", Roll: 93, Material: "Platinum_Ore", Base: -3.33, Effect: "% material cost for stamps"},
	{Name: "Pickle Jar", Roll: 99, Material: "BobJoePickle", Base: 50, Effect: "% Nothing. Absolutely nothing"},
	{Name: "Fur Refresher", Roll: 75, Material: "Floof Ploof", Base: 2, Effect: "% higher Shiny Critter chance."},
	{Name: "Slippy Soul", Roll: 75, Material: "Forest Soul", Base: 1, Effect: "Talent Points for Tab 2"},
	{Name: "Crab Juice", Roll: 80, Material: "Crabbo", Base: 4, Effect: "Starting Points in Tower Defence"},
	{Name: "Void Vial", Roll: 80, Material: "Void Ore", Base: 1, Effect: "% Mining Efficiency"},
	{Name: "Red Malt", Roll: 85, Material: "Redox Salts", Base: 1, Effect: "% Refinery Cycle Speed"},
	{Name: "Ew Gross Gross", Roll: 86, Material: "Mosquisnow", Base: 1, Effect: "% Catching Efficiency"},
	{Name: "The Spanish Sahara", Roll: 87, Material: "Tundra Logs", Base: 1, Effect: "% Chopping Efficiency"},
	{Name: "Poison Tincture", Roll: 95, Material: "Poison Froge", Base: 1, Effect: "% Eagle Trap-O-Vision more critters"},
	{Name: "Etruscan Lager", Roll: 88, Material: "Mamooth Tusk", Base: 1, Effect: "% Fishing Efficiency"},
	{Name: "Chonker Chug", Roll: 90, Material: "Dune Soul", Base: 1, Effect: "% Talent Library Checkout Speed"},
	{Name: "Bubonic Burp", Roll: 91, Material: "Mousey", Base: 1, Effect: " Cog Inventory Spaces"},
	{Name: "Visible Ink", Roll: 93, Material: "Pen", Base: 1, Effect: "% Construction Exp Gain"},
	{Name: "Orange Malt", Roll: 95, Material: "Explosive Salts", Base: 1, Effect: "% Higher Shiny Critter Chance"},
	{Name: "Snow Slurry", Roll: 96, Material: "Snow Ball", Base: 0.5, Effect: "% Printer Sample Size"},
	{Name: "Slowergy Drink", Roll: 97, Material: "Frigid Soul", Base: 0, Effect: "% Base Multikill per Mk tier"},
	{Name: "Sippy Cup", Roll: 97, Material: "Sippy Straw", Base: 1, Effect: "% Cogs Production Speed"},
	{Name: "Bunny Brew", Roll: 98, Material: "Bunny", Base: 1, Effect: "Talent Point for Tab 3"},
	{Name: "40 40 Purity", Roll: 98, Material: "Contact Lense", Base: 3, Effect: "Liquid Mercury Droplet max capacity"},
	{Name: "Spook Pint", Roll: 99, Material: "Cryo Soul", Base: 0, Effect: "% base Giant Monsters Spawn"},
	{Name: "Goosey Glug", Roll: 99, Material: "Honker", Base: 0, Effect: "None"},
}

// AllVials returns a copy of the vial table
func AllVials() []Vial {
	out := make([]Vial, len(Vials))
	copy(out, Vials)
	return out
}

// GetVial returns the vial with the given name
func GetVial(name string) (Vial, bool) {
	for _, v := range Vials {
		if v.Name == name {
			return v, true
		}
	}
	return Vial{}, false
}

// VialsForRoll returns the vials obtainable with a draw of roll, in table order
func VialsForRoll(roll int) []Vial {
	var out []Vial
	for _, v := range Vials {
		if v.Roll <= roll {
			out = append(out, v)
		}
	}
	return out
}
