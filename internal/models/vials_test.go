package models

import (
	"testing"

	"github.com/napolitain/alchemy/internal/growth"
)

func TestVialTableSize(t *testing.T) {
	if len(Vials) != 41 {
		t.Errorf("expected 41 vials, got %d", len(Vials))
	}
}

func TestVialNamesUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, v := range Vials {
		if seen[v.Name] {
			t.Errorf("duplicate vial name %q", v.Name)
		}
		seen[v.Name] = true
	}
}

func TestVialRollsInRange(t *testing.T) {
	for _, v := range Vials {
		if v.Roll < 0 || v.Roll > MaxRoll {
			t.Errorf("%s: roll %d outside [0, 100]", v.Name, v.Roll)
		}
	}
}

func TestKnownVials(t *testing.T) {
	expected := map[string]Vial{
		"Copper Corona": {Name: "Copper Corona", Roll: 1, Material: "Copper_Ore", Base: 3, Effect: "% Orange Bubble Cauldron Brew Speed"},
		"Barley Brew":   {Name: "Barley Brew", Roll: 65, Material: "Iron_Bar", Base: 1, Effect: "% discount on alchemy bubbles"},
		"Blue Flav":     {Name: "Blue Flav", Roll: 93, Material: "Platinum_Ore", Base: -3.33, Effect: "% material cost for stamps"},
		"Tail Time":     {Name: "Tail Time", Roll: 91, Material: "Rats_Tail", Base: 0.5, Effect: " Weapon Power"},
		"Goosey Glug":   {Name: "Goosey Glug", Roll: 99, Material: "Honker", Base: 0, Effect: "None"},
	}

	for name, want := range expected {
		got, ok := GetVial(name)
		if !ok {
			t.Errorf("vial %q not found", name)
			continue
		}
		if got != want {
			t.Errorf("%s: expected %+v, got %+v", name, want, got)
		}
	}

	if _, ok := GetVial("Not A Vial"); ok {
		t.Error("unknown vial should not be found")
	}
}

func TestIronBarVialIsUnitAddCurve(t *testing.T) {
	v, ok := GetVial(IronBarVial)
	if !ok {
		t.Fatalf("%s missing from vial table", IronBarVial)
	}
	if v.Base != 1 {
		t.Errorf("%s base: expected 1, got %v", IronBarVial, v.Base)
	}
	if v.Material != "Iron_Bar" {
		t.Errorf("%s material: expected Iron_Bar, got %q", IronBarVial, v.Material)
	}
}

func TestVialsForRoll(t *testing.T) {
	tests := []struct {
		roll  int
		count int
		first string
	}{
		{0, 0, ""},
		{1, 1, "Copper Corona"},
		{40, 6, "Copper Corona"},
		{100, 41, "Copper Corona"},
	}

	for _, tt := range tests {
		got := VialsForRoll(tt.roll)
		if len(got) != tt.count {
			t.Errorf("roll %d: expected %d vials, got %d", tt.roll, tt.count, len(got))
			continue
		}
		if tt.count > 0 && got[0].Name != tt.first {
			t.Errorf("roll %d: expected first vial %q, got %q", tt.roll, tt.first, got[0].Name)
		}
		for _, v := range got {
			if v.Roll > tt.roll {
				t.Errorf("roll %d: %s needs roll %d", tt.roll, v.Name, v.Roll)
			}
		}
	}
}

func TestAllVialsIsCopy(t *testing.T) {
	all := AllVials()
	all[0].Name = "changed"
	if Vials[0].Name != "Copper Corona" {
		t.Error("AllVials must not expose the backing table")
	}
}

func TestVialCostMonotonic(t *testing.T) {
	for i := 1; i < len(VialCost); i++ {
		if VialCost[i] < VialCost[i-1] {
			t.Errorf("tier %d cost %v below tier %d cost %v", i, VialCost[i], i-1, VialCost[i-1])
		}
	}
	if VialCost[0] != 0 || VialCost[MaxVialTier()] != 1e9 {
		t.Errorf("expected costs from 0 to 1e9, got %v to %v", VialCost[0], VialCost[MaxVialTier()])
	}
}

func TestVialCostForTier(t *testing.T) {
	tests := []struct {
		tier int
		want float64
		ok   bool
	}{
		{-1, 0, false},
		{0, 0, true},
		{3, 2500, true},
		{8, 1000001, true},
		{12, 1e9, true},
		{13, 0, false},
	}

	for _, tt := range tests {
		got, ok := VialCostForTier(tt.tier)
		if ok != tt.ok || got != tt.want {
			t.Errorf("VialCostForTier(%d) = %v, %v; want %v, %v", tt.tier, got, ok, tt.want, tt.ok)
		}
	}
}

func TestDiscountBubblesUseDecay(t *testing.T) {
	for _, b := range []Bubble{CauldronCostReduction, BubbleTwelve, UndevelopedCosts} {
		if b.Kind() != growth.KindDecay {
			t.Errorf("%s: expected decay curve, got %v", b.Name, b.Kind())
		}
	}
}
