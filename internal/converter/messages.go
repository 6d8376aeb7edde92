package converter

import (
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/napolitain/alchemy/internal/alchemy"
	"github.com/napolitain/alchemy/internal/models"
)

// Discount request fields
const (
	FieldCauldronCostReduction = "cauldron_cost_reduction"
	FieldBubbleCostBubble      = "bubble_cost_bubble"
	FieldBubbleCostVial        = "bubble_cost_vial"
	FieldBubbleTwelve          = "bubble_twelve"
	FieldBargainTag            = "bargain_tag"
)

// EffectRequest asks for a bubble's effect at one level
type EffectRequest struct {
	Bubble models.Bubble
	Level  float64
}

// EffectChangeRequest asks for a bubble's effect at two levels
type EffectChangeRequest struct {
	Bubble models.Bubble
	Now    float64
	Goal   float64
}

// EffectChangeResult is the answer to an EffectChangeRequest
type EffectChangeResult struct {
	Now     float64
	Goal    float64
	Display string
}

// LevelsToDiscountRequest converts discount levels to a request message
func LevelsToDiscountRequest(l alchemy.DiscountLevels) *structpb.Struct {
	return numbers(map[string]float64{
		FieldCauldronCostReduction: l.CauldronCostReduction,
		FieldBubbleCostBubble:      l.BubbleCostBubble,
		FieldBubbleCostVial:        l.BubbleCostVial,
		FieldBubbleTwelve:          l.BubbleTwelve,
		FieldBargainTag:            l.BargainTag,
	})
}

// DiscountRequestToLevels converts a discount request. Missing levels are 0.
func DiscountRequestToLevels(req *structpb.Struct) (alchemy.DiscountLevels, error) {
	var l alchemy.DiscountLevels
	fields := []struct {
		key string
		dst *float64
	}{
		{FieldCauldronCostReduction, &l.CauldronCostReduction},
		{FieldBubbleCostBubble, &l.BubbleCostBubble},
		{FieldBubbleCostVial, &l.BubbleCostVial},
		{FieldBubbleTwelve, &l.BubbleTwelve},
		{FieldBargainTag, &l.BargainTag},
	}
	for _, f := range fields {
		v, err := numberField(req, f.key, 0, false)
		if err != nil {
			return alchemy.DiscountLevels{}, err
		}
		*f.dst = v
	}
	return l, nil
}

// DiscountToStruct converts a discount breakdown to a response message
func DiscountToStruct(d alchemy.Discount) *structpb.Struct {
	return numbers(map[string]float64{
		"cauldron":      d.Cauldron,
		"bargain":       d.Bargain,
		"bubble_twelve": d.BubbleTwelve,
		"undev_vial":    d.UndevVial,
		"total":         d.Total,
	})
}

// StructToDiscount converts a discount response message
func StructToDiscount(s *structpb.Struct) (alchemy.Discount, error) {
	var d alchemy.Discount
	fields := []struct {
		key string
		dst *float64
	}{
		{"cauldron", &d.Cauldron},
		{"bargain", &d.Bargain},
		{"bubble_twelve", &d.BubbleTwelve},
		{"undev_vial", &d.UndevVial},
		{"total", &d.Total},
	}
	for _, f := range fields {
		v, err := numberField(s, f.key, 0, true)
		if err != nil {
			return alchemy.Discount{}, err
		}
		*f.dst = v
	}
	return d, nil
}

// EffectRequestToStruct converts an effect request to its message form
func EffectRequestToStruct(req EffectRequest) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"bubble": structpb.NewStructValue(BubbleToStruct(req.Bubble)),
		"level":  structpb.NewNumberValue(req.Level),
	}}
}

// StructToEffectRequest converts an effect request message
func StructToEffectRequest(s *structpb.Struct) (EffectRequest, error) {
	b, err := requestBubble(s)
	if err != nil {
		return EffectRequest{}, err
	}
	level, err := numberField(s, "level", 0, true)
	if err != nil {
		return EffectRequest{}, err
	}
	return EffectRequest{Bubble: b, Level: level}, nil
}

// EffectToStruct wraps an effect value in a response message
func EffectToStruct(effect float64) *structpb.Struct {
	return numbers(map[string]float64{"effect": effect})
}

// StructToEffect reads an effect response message
func StructToEffect(s *structpb.Struct) (float64, error) {
	return numberField(s, "effect", 0, true)
}

// EffectChangeRequestToStruct converts an effect change request to its message form
func EffectChangeRequestToStruct(req EffectChangeRequest) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"bubble":     structpb.NewStructValue(BubbleToStruct(req.Bubble)),
		"level_now":  structpb.NewNumberValue(req.Now),
		"level_goal": structpb.NewNumberValue(req.Goal),
	}}
}

// StructToEffectChangeRequest converts an effect change request message.
// A missing goal defaults to the current level.
func StructToEffectChangeRequest(s *structpb.Struct) (EffectChangeRequest, error) {
	b, err := requestBubble(s)
	if err != nil {
		return EffectChangeRequest{}, err
	}
	now, err := numberField(s, "level_now", 0, true)
	if err != nil {
		return EffectChangeRequest{}, err
	}
	goal, err := numberField(s, "level_goal", now, false)
	if err != nil {
		return EffectChangeRequest{}, err
	}
	return EffectChangeRequest{Bubble: b, Now: now, Goal: goal}, nil
}

// EffectChangeToStruct converts an effect change result to a response message
func EffectChangeToStruct(r EffectChangeResult) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"now":     structpb.NewNumberValue(r.Now),
		"goal":    structpb.NewNumberValue(r.Goal),
		"display": structpb.NewStringValue(r.Display),
	}}
}

// StructToEffectChange converts an effect change response message
func StructToEffectChange(s *structpb.Struct) (EffectChangeResult, error) {
	var r EffectChangeResult
	var err error

	if r.Now, err = numberField(s, "now", 0, true); err != nil {
		return EffectChangeResult{}, err
	}
	if r.Goal, err = numberField(s, "goal", 0, true); err != nil {
		return EffectChangeResult{}, err
	}
	if r.Display, err = stringField(s, "display", true); err != nil {
		return EffectChangeResult{}, err
	}
	return r, nil
}

// ListVialsRequestToStruct builds a vial listing request. A negative roll
// asks for every vial.
func ListVialsRequestToStruct(roll int) *structpb.Struct {
	if roll < 0 {
		return &structpb.Struct{}
	}
	return numbers(map[string]float64{"roll": float64(roll)})
}

// StructToListVialsRoll reads the roll of a vial listing request. Without a
// roll every vial is listed.
func StructToListVialsRoll(s *structpb.Struct) (int, error) {
	return intField(s, "roll", models.MaxRoll, false)
}

// VialsToStruct converts a vial list to a response message
func VialsToStruct(vials []models.Vial) *structpb.Struct {
	values := make([]*structpb.Value, 0, len(vials))
	for _, v := range vials {
		values = append(values, structpb.NewStructValue(VialToStruct(v)))
	}
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"vials": structpb.NewListValue(&structpb.ListValue{Values: values}),
	}}
}

// StructToVials converts a vial list response message
func StructToVials(s *structpb.Struct) ([]models.Vial, error) {
	values, err := listField(s, "vials")
	if err != nil {
		return nil, err
	}
	vials := make([]models.Vial, 0, len(values))
	for i, v := range values {
		st, ok := v.GetKind().(*structpb.Value_StructValue)
		if !ok {
			return nil, fmt.Errorf("%w: vials[%d] must be an object", ErrWrongType, i)
		}
		vial, err := StructToVial(st.StructValue)
		if err != nil {
			return nil, fmt.Errorf("vials[%d]: %w", i, err)
		}
		vials = append(vials, vial)
	}
	return vials, nil
}

func requestBubble(s *structpb.Struct) (models.Bubble, error) {
	bs, err := structField(s, "bubble")
	if err != nil {
		return models.Bubble{}, err
	}
	b, err := StructToBubble(bs)
	if err != nil {
		return models.Bubble{}, fmt.Errorf("bubble: %w", err)
	}
	return b, nil
}
