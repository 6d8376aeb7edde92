// Package growth provides the named growth curves that map an upgrade level
// and two shape parameters to an effect magnitude.
package growth

import (
	"math"
	"strings"
)

// Kind identifies a growth curve formula
type Kind int

const (
	KindUnknown Kind = iota
	KindAdd
	KindDecay
	KindDecayMulti
	KindBigBase
	KindIntervalAdd
	KindReduce
)

var kindNames = map[Kind]string{
	KindAdd:         "Add",
	KindDecay:       "Decay",
	KindDecayMulti:  "DecayMulti",
	KindBigBase:     "BigBase",
	KindIntervalAdd: "IntervalAdd",
	KindReduce:      "Reduce",
}

// AllKinds returns every known curve kind in deterministic order
func AllKinds() []Kind {
	return []Kind{KindAdd, KindDecay, KindDecayMulti, KindBigBase, KindIntervalAdd, KindReduce}
}

// String returns the curve name as it appears in bubble data
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// ParseKind maps a curve name to its Kind. Matching ignores case, so both
// "Decay" and "decay" resolve. Unrecognized names return KindUnknown.
func ParseKind(name string) Kind {
	name = strings.TrimSpace(name)
	for _, k := range AllKinds() {
		if strings.EqualFold(kindNames[k], name) {
			return k
		}
	}
	return KindUnknown
}

// Provider evaluates a growth curve. Implementations return NaN for unknown
// kinds or when the formula is undefined for the inputs.
type Provider interface {
	Eval(kind Kind, level, x1, x2 float64) float64
}

// Curves is the default Provider
type Curves struct{}

// Default returns the default curve provider
func Default() Provider {
	return Curves{}
}

// Eval dispatches to the formula for kind
func (Curves) Eval(kind Kind, level, x1, x2 float64) float64 {
	switch kind {
	case KindAdd:
		return Add(level, x1, x2)
	case KindDecay:
		return Decay(level, x1, x2)
	case KindDecayMulti:
		return DecayMulti(level, x1, x2)
	case KindBigBase:
		return BigBase(level, x1, x2)
	case KindIntervalAdd:
		return IntervalAdd(level, x1, x2)
	case KindReduce:
		return Reduce(level, x1, x2)
	}
	return math.NaN()
}

// Add grows linearly with an optional per-level ramp.
// Formula: x2 == 0 ? x1*level : (((x1+x2)/x2 + 0.5*(level-1)) / (x1/x2)) * level * x1
func Add(level, x1, x2 float64) float64 {
	if x2 != 0 {
		return (((x1+x2)/x2 + 0.5*(level-1)) / (x1 / x2)) * level * x1
	}
	return x1 * level
}

// Decay approaches x1 as level grows; x2 is the level at which half of x1 is reached.
// Formula: level*x1 / (level+x2)
func Decay(level, x1, x2 float64) float64 {
	return level * x1 / (level + x2)
}

// DecayMulti is Decay expressed as a multiplier starting at 1
func DecayMulti(level, x1, x2 float64) float64 {
	return 1 + level*x1/(level+x2)
}

// BigBase is a flat base plus a linear per-level term
func BigBase(level, x1, x2 float64) float64 {
	return x1 + x2*level
}

// IntervalAdd adds one step every x2 levels on top of x1
func IntervalAdd(level, x1, x2 float64) float64 {
	return x1 + math.Floor(level/x2)
}

// Reduce decreases linearly from x1
func Reduce(level, x1, x2 float64) float64 {
	return x1 - x2*level
}
