package growth

import (
	"fmt"
	"math"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultMemoSize is the number of evaluations kept by NewMemo when size <= 0
const DefaultMemoSize = 1024

type memoKey struct {
	kind  Kind
	level float64
	x1    float64
	x2    float64
}

// Memo caches evaluations of a wrapped Provider. It is safe for concurrent use.
type Memo struct {
	next  Provider
	cache *lru.Cache[memoKey, float64]
}

// NewMemo wraps next with an LRU cache holding up to size evaluations
func NewMemo(next Provider, size int) (*Memo, error) {
	if next == nil {
		next = Default()
	}
	if size <= 0 {
		size = DefaultMemoSize
	}
	cache, err := lru.New[memoKey, float64](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create curve cache: %w", err)
	}
	return &Memo{next: next, cache: cache}, nil
}

// Eval returns the cached value or evaluates and stores it.
// NaN results are never cached.
func (m *Memo) Eval(kind Kind, level, x1, x2 float64) float64 {
	key := memoKey{kind: kind, level: level, x1: x1, x2: x2}
	if v, ok := m.cache.Get(key); ok {
		return v
	}
	v := m.next.Eval(kind, level, x1, x2)
	if !math.IsNaN(v) {
		m.cache.Add(key, v)
	}
	return v
}

// Len reports how many evaluations are cached
func (m *Memo) Len() int {
	return m.cache.Len()
}
