package types

import (
	"slices"
)

// PalindromeGroup is one distinct palindromic product value together with all the factor pairs that produce it.
//
// The value is set once on creation and never changes.
// The factors only grow: inserting a pair that is already present is a no-op.
// Every stored pair satisfies A * B == value, [PalindromeGroup.Insert] refuses the rest.
//
// A group is not safe for concurrent use.
type PalindromeGroup struct {
	value   uint64
	factors map[FactorPair]Void
}

// NewPalindromeGroup creates an empty group for the provided product value.
func NewPalindromeGroup(value uint64) *PalindromeGroup {
	return &PalindromeGroup{
		value:   value,
		factors: make(map[FactorPair]Void),
	}
}

// NewPalindromeGroupOf creates a group for the product of the pair with the pair already inserted.
func NewPalindromeGroupOf(p FactorPair) *PalindromeGroup {
	g := NewPalindromeGroup(p.Product())
	g.factors[p] = Void{}
	return g
}

func (g *PalindromeGroup) Value() uint64 {
	return g.value
}

// Insert adds the pair to the group.
// It returns false if the pair is already present or if its product is not the group value.
func (g *PalindromeGroup) Insert(p FactorPair) bool {
	if p.Product() != g.value {
		return false
	}
	if _, ok := g.factors[p]; ok {
		return false
	}
	g.factors[p] = Void{}
	return true
}

func (g *PalindromeGroup) Contains(p FactorPair) bool {
	_, ok := g.factors[p]
	return ok
}

func (g *PalindromeGroup) Len() int {
	return len(g.factors)
}

// Factors returns a snapshot of the factor pairs sorted by the smaller factor.
// The order exists only to make the output stable, the group itself is unordered.
func (g *PalindromeGroup) Factors() []FactorPair {
	res := make([]FactorPair, 0, len(g.factors))
	for p := range g.factors {
		res = append(res, p)
	}
	slices.SortFunc(res, func(a, b FactorPair) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		default:
			return 0
		}
	})
	return res
}

// Merge inserts all the factors of the other group into this one.
// Groups with different values are never merged: false is returned and nothing changes.
func (g *PalindromeGroup) Merge(other *PalindromeGroup) bool {
	if other == nil || other.value != g.value {
		return false
	}
	for p := range other.factors {
		g.factors[p] = Void{}
	}
	return true
}

// Equal reports whether both groups have the same value and the same set of factors.
func (g *PalindromeGroup) Equal(other *PalindromeGroup) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.value != other.value || len(g.factors) != len(other.factors) {
		return false
	}
	for p := range g.factors {
		if _, ok := other.factors[p]; !ok {
			return false
		}
	}
	return true
}
