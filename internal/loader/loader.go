// Package loader reads player profiles: discount levels, vial and bubble
// levels, goals and the bubble descriptors of each cauldron.
package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/napolitain/alchemy/internal/alchemy"
	"github.com/napolitain/alchemy/internal/models"
)

// ErrInvalidProfile is returned when a profile parses but fails validation
var ErrInvalidProfile = errors.New("invalid profile")

// ProfileYAML represents the YAML structure of a profile file
type ProfileYAML struct {
	Discount DiscountYAML            `yaml:"discount"`
	Vials    map[string]int          `yaml:"vials,omitempty" validate:"dive,keys,vial,endkeys,gte=0"`
	Upgrades map[string][]int        `yaml:"upgrades,omitempty" validate:"dive,keys,color,endkeys,dive,gte=0"`
	Goals    map[string][]int        `yaml:"goals,omitempty" validate:"dive,keys,color,endkeys,dive,gte=0"`
	Bubbles  map[string][]BubbleYAML `yaml:"bubbles,omitempty" validate:"dive,keys,color,endkeys,dive"`
}

// DiscountYAML represents the discount levels of a profile
type DiscountYAML struct {
	CauldronCostReduction float64 `yaml:"cauldron_cost_reduction" validate:"gte=0"`
	BubbleCostBubble      float64 `yaml:"bubble_cost_bubble" validate:"gte=0"`
	BubbleCostVial        float64 `yaml:"bubble_cost_vial" validate:"gte=0"`
	BubbleTwelve          float64 `yaml:"bubble_twelve" validate:"gte=0"`
	BargainTag            float64 `yaml:"bargain_tag" validate:"gte=0"`
}

// BubbleYAML represents one bubble descriptor
type BubbleYAML struct {
	Name string  `yaml:"name" validate:"required"`
	X1   float64 `yaml:"x1"`
	X2   float64 `yaml:"x2"`
	Func string  `yaml:"func" validate:"required,curve"`
}

// Profile is a validated player profile
type Profile struct {
	Levels  alchemy.DiscountLevels
	Data    *models.AlchemyData
	Bubbles map[models.Color][]models.Bubble
}

// LoadProfile loads a profile from a YAML file
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}
	p, err := ParseProfile(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// ParseProfile decodes and validates a YAML profile. Unknown keys are rejected.
func ParseProfile(data []byte) (*Profile, error) {
	var raw ProfileYAML
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}

	if err := Validate(&raw); err != nil {
		return nil, err
	}
	return raw.toProfile(), nil
}

// MarshalProfile encodes a profile back to YAML
func MarshalProfile(p *Profile) ([]byte, error) {
	out, err := yaml.Marshal(FromProfile(p))
	if err != nil {
		return nil, fmt.Errorf("failed to encode profile: %w", err)
	}
	return out, nil
}

func (raw *ProfileYAML) toProfile() *Profile {
	p := &Profile{
		Levels: alchemy.DiscountLevels{
			CauldronCostReduction: raw.Discount.CauldronCostReduction,
			BubbleCostBubble:      raw.Discount.BubbleCostBubble,
			BubbleCostVial:        raw.Discount.BubbleCostVial,
			BubbleTwelve:          raw.Discount.BubbleTwelve,
			BargainTag:            raw.Discount.BargainTag,
		},
		Data:    models.NewAlchemyData(),
		Bubbles: make(map[models.Color][]models.Bubble),
	}

	for name, level := range raw.Vials {
		p.Data.Vials[name] = level
	}
	// Color keys are validated, so the conversions below cannot fail
	for name, levels := range raw.Upgrades {
		c, _ := models.ParseColor(name)
		p.Data.Upgrades[c] = append([]int(nil), levels...)
	}
	for name, levels := range raw.Goals {
		c, _ := models.ParseColor(name)
		p.Data.Goals[c] = append([]int(nil), levels...)
	}
	for name, bubbles := range raw.Bubbles {
		c, _ := models.ParseColor(name)
		out := make([]models.Bubble, 0, len(bubbles))
		for _, b := range bubbles {
			out = append(out, models.Bubble{Name: b.Name, X1: b.X1, X2: b.X2, Func: b.Func})
		}
		p.Bubbles[c] = out
	}
	return p
}

// FromProfile converts a profile to its YAML structure
func FromProfile(p *Profile) ProfileYAML {
	raw := ProfileYAML{
		Discount: DiscountYAML{
			CauldronCostReduction: p.Levels.CauldronCostReduction,
			BubbleCostBubble:      p.Levels.BubbleCostBubble,
			BubbleCostVial:        p.Levels.BubbleCostVial,
			BubbleTwelve:          p.Levels.BubbleTwelve,
			BargainTag:            p.Levels.BargainTag,
		},
	}
	if p.Data != nil {
		if len(p.Data.Vials) > 0 {
			raw.Vials = make(map[string]int, len(p.Data.Vials))
			for name, level := range p.Data.Vials {
				raw.Vials[name] = level
			}
		}
		raw.Upgrades = colorLevels(p.Data.Upgrades)
		raw.Goals = colorLevels(p.Data.Goals)
	}
	if len(p.Bubbles) > 0 {
		raw.Bubbles = make(map[string][]BubbleYAML, len(p.Bubbles))
		for c, bubbles := range p.Bubbles {
			out := make([]BubbleYAML, 0, len(bubbles))
			for _, b := range bubbles {
				out = append(out, BubbleYAML{Name: b.Name, X1: b.X1, X2: b.X2, Func: b.Func})
			}
			raw.Bubbles[string(c)] = out
		}
	}
	return raw
}

func colorLevels(in map[models.Color][]int) map[string][]int {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string][]int, len(in))
	for c, levels := range in {
		out[string(c)] = append([]int(nil), levels...)
	}
	return out
}

// DiscountLevels returns the discount inputs of the profile. The undeveloped
// costs bubble and Barley Brew levels come from the tracked upgrades when set.
func (p *Profile) DiscountLevels() alchemy.DiscountLevels {
	return alchemy.DiscountLevelsFromData(p.Levels, p.Data)
}

// Bubble returns the descriptor at ref, if the profile has one
func (p *Profile) Bubble(ref models.BubbleRef) (models.Bubble, bool) {
	bubbles := p.Bubbles[ref.Color]
	if ref.Index < 0 || ref.Index >= len(bubbles) {
		return models.Bubble{}, false
	}
	return bubbles[ref.Index], true
}
