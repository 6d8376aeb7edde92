// Package converter provides conversions between wire messages and model types
package converter

import (
	"errors"
	"fmt"
	"math"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/napolitain/alchemy/internal/models"
)

var (
	// ErrMissingField is returned when a required field is absent
	ErrMissingField = errors.New("missing field")
	// ErrWrongType is returned when a field holds the wrong kind of value
	ErrWrongType = errors.New("wrong field type")
)

func lookup(s *structpb.Struct, key string) (*structpb.Value, bool) {
	if s == nil {
		return nil, false
	}
	v, ok := s.GetFields()[key]
	if !ok || v == nil {
		return nil, false
	}
	if _, isNull := v.GetKind().(*structpb.Value_NullValue); isNull {
		return nil, false
	}
	return v, true
}

// numberField reads a number. Absent fields give def unless required.
func numberField(s *structpb.Struct, key string, def float64, required bool) (float64, error) {
	v, ok := lookup(s, key)
	if !ok {
		if required {
			return 0, fmt.Errorf("%w: %s", ErrMissingField, key)
		}
		return def, nil
	}
	n, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return 0, fmt.Errorf("%w: %s must be a number", ErrWrongType, key)
	}
	return n.NumberValue, nil
}

// intField reads a whole number. NaN, infinities and values outside the int32
// range are rejected.
func intField(s *structpb.Struct, key string, def int, required bool) (int, error) {
	n, err := numberField(s, key, float64(def), required)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(n) || math.IsInf(n, 0) || n < math.MinInt32 || n > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %s must be a finite integer", ErrWrongType, key)
	}
	return int(n), nil
}

func boolField(s *structpb.Struct, key string) (bool, error) {
	v, ok := lookup(s, key)
	if !ok {
		return false, nil
	}
	b, ok := v.GetKind().(*structpb.Value_BoolValue)
	if !ok {
		return false, fmt.Errorf("%w: %s must be a boolean", ErrWrongType, key)
	}
	return b.BoolValue, nil
}

func stringField(s *structpb.Struct, key string, required bool) (string, error) {
	v, ok := lookup(s, key)
	if !ok {
		if required {
			return "", fmt.Errorf("%w: %s", ErrMissingField, key)
		}
		return "", nil
	}
	str, ok := v.GetKind().(*structpb.Value_StringValue)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a string", ErrWrongType, key)
	}
	return str.StringValue, nil
}

func structField(s *structpb.Struct, key string) (*structpb.Struct, error) {
	v, ok := lookup(s, key)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingField, key)
	}
	st, ok := v.GetKind().(*structpb.Value_StructValue)
	if !ok {
		return nil, fmt.Errorf("%w: %s must be an object", ErrWrongType, key)
	}
	return st.StructValue, nil
}

func listField(s *structpb.Struct, key string) ([]*structpb.Value, error) {
	v, ok := lookup(s, key)
	if !ok {
		return nil, nil
	}
	l, ok := v.GetKind().(*structpb.Value_ListValue)
	if !ok {
		return nil, fmt.Errorf("%w: %s must be a list", ErrWrongType, key)
	}
	return l.ListValue.GetValues(), nil
}

func numbers(fields map[string]float64) *structpb.Struct {
	out := &structpb.Struct{Fields: make(map[string]*structpb.Value, len(fields))}
	for k, v := range fields {
		out.Fields[k] = structpb.NewNumberValue(v)
	}
	return out
}

// BubbleToStruct converts a bubble descriptor to its message form.
// Materials are only sent when the bubble has any.
func BubbleToStruct(b models.Bubble) *structpb.Struct {
	out := &structpb.Struct{Fields: map[string]*structpb.Value{
		"name": structpb.NewStringValue(b.Name),
		"x1":   structpb.NewNumberValue(b.X1),
		"x2":   structpb.NewNumberValue(b.X2),
		"func": structpb.NewStringValue(b.Func),
	}}
	if len(b.Materials) > 0 {
		values := make([]*structpb.Value, 0, len(b.Materials))
		for _, m := range b.Materials {
			values = append(values, structpb.NewStructValue(MaterialToStruct(m)))
		}
		out.Fields["materials"] = structpb.NewListValue(&structpb.ListValue{Values: values})
	}
	return out
}

// StructToBubble converts a bubble message. The curve name is required, the
// bubble name is not; x1 and x2 default to 0.
func StructToBubble(s *structpb.Struct) (models.Bubble, error) {
	var b models.Bubble
	var err error

	if b.Name, err = stringField(s, "name", false); err != nil {
		return models.Bubble{}, err
	}
	if b.Func, err = stringField(s, "func", true); err != nil {
		return models.Bubble{}, err
	}
	if b.X1, err = numberField(s, "x1", 0, false); err != nil {
		return models.Bubble{}, err
	}
	if b.X2, err = numberField(s, "x2", 0, false); err != nil {
		return models.Bubble{}, err
	}

	values, err := listField(s, "materials")
	if err != nil {
		return models.Bubble{}, err
	}
	for i, v := range values {
		st, ok := v.GetKind().(*structpb.Value_StructValue)
		if !ok {
			return models.Bubble{}, fmt.Errorf("%w: materials[%d] must be an object", ErrWrongType, i)
		}
		m, err := StructToMaterial(st.StructValue)
		if err != nil {
			return models.Bubble{}, fmt.Errorf("materials[%d]: %w", i, err)
		}
		b.Materials = append(b.Materials, m)
	}
	return b, nil
}

// MaterialToStruct converts a material cost line to its message form
func MaterialToStruct(m models.Material) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"name":      structpb.NewStringValue(m.Name),
		"amount":    structpb.NewNumberValue(m.Amount),
		"is_liquid": structpb.NewBoolValue(m.IsLiquid),
	}}
}

// StructToMaterial converts a material message. The name is required.
func StructToMaterial(s *structpb.Struct) (models.Material, error) {
	var m models.Material
	var err error

	if m.Name, err = stringField(s, "name", true); err != nil {
		return models.Material{}, err
	}
	if m.Amount, err = numberField(s, "amount", 0, false); err != nil {
		return models.Material{}, err
	}
	if m.IsLiquid, err = boolField(s, "is_liquid"); err != nil {
		return models.Material{}, err
	}
	return m, nil
}

// VialToStruct converts a vial to its message form
func VialToStruct(v models.Vial) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"name":     structpb.NewStringValue(v.Name),
		"roll":     structpb.NewNumberValue(float64(v.Roll)),
		"material": structpb.NewStringValue(v.Material),
		"base":     structpb.NewNumberValue(v.Base),
		"effect":   structpb.NewStringValue(v.Effect),
	}}
}

// StructToVial converts a vial message
func StructToVial(s *structpb.Struct) (models.Vial, error) {
	var v models.Vial
	var err error

	if v.Name, err = stringField(s, "name", true); err != nil {
		return models.Vial{}, err
	}
	if v.Roll, err = intField(s, "roll", 0, true); err != nil {
		return models.Vial{}, err
	}
	if v.Material, err = stringField(s, "material", false); err != nil {
		return models.Vial{}, err
	}
	if v.Base, err = numberField(s, "base", 0, false); err != nil {
		return models.Vial{}, err
	}
	if v.Effect, err = stringField(s, "effect", false); err != nil {
		return models.Vial{}, err
	}
	return v, nil
}
