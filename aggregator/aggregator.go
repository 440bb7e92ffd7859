// Package aggregator groups palindromic factor pairs by product and picks the extremal groups.
package aggregator

import (
	"github.com/n0rdy/palindromes/digits"
	"github.com/n0rdy/palindromes/types"
)

// Aggregator accumulates palindromic products and their factor pairs.
// The smallest and the largest product seen so far are tracked on every insertion,
// so no scan over the groups is needed at the end.
//
// The zero value is not usable, create it with [New].
// An Aggregator is not safe for concurrent use: give every goroutine its own one and [Aggregator.Merge] them.
type Aggregator struct {
	groups map[uint64]*types.PalindromeGroup
	min    uint64
	max    uint64
}

func New() *Aggregator {
	return &Aggregator{
		groups: make(map[uint64]*types.PalindromeGroup),
	}
}

// Observe classifies the pair and adds it if its product is a palindrome.
// It reports whether the pair was palindromic.
func (a *Aggregator) Observe(p types.FactorPair) bool {
	if !digits.IsPalindromicProduct(p) {
		return false
	}
	a.Add(p)
	return true
}

// Add inserts an already classified pair into the group of its product, creating the group on first sighting.
// It returns false if the pair was already present.
func (a *Aggregator) Add(p types.FactorPair) bool {
	value := p.Product()

	g, ok := a.groups[value]
	if !ok {
		a.groups[value] = types.NewPalindromeGroupOf(p)
		a.track(value)
		return true
	}
	return g.Insert(p)
}

// Merge moves the groups of the other aggregator into this one.
// Groups with the same product are united. The other aggregator must not be used afterwards.
func (a *Aggregator) Merge(other *Aggregator) {
	if other == nil {
		return
	}
	for value, og := range other.groups {
		if g, ok := a.groups[value]; ok {
			g.Merge(og)
			continue
		}
		a.groups[value] = og
		a.track(value)
	}
	other.groups = nil
}

// Len returns the number of distinct palindromic products.
func (a *Aggregator) Len() int {
	return len(a.groups)
}

// Result hands over the groups with the smallest and the largest product.
// It returns nil if nothing was added.
// Both groups are removed from the aggregator; if they are the same product, both fields hold the same group.
func (a *Aggregator) Result() *types.Result {
	if len(a.groups) == 0 {
		return nil
	}

	minGroup := a.groups[a.min]
	maxGroup := a.groups[a.max]
	delete(a.groups, a.min)
	delete(a.groups, a.max)

	a.reset()

	return &types.Result{
		Min: minGroup,
		Max: maxGroup,
	}
}

func (a *Aggregator) track(value uint64) {
	if len(a.groups) == 1 {
		a.min, a.max = value, value
		return
	}
	if value < a.min {
		a.min = value
	}
	if value > a.max {
		a.max = value
	}
}

// reset recomputes the bounds after groups were taken out.
func (a *Aggregator) reset() {
	first := true
	for value := range a.groups {
		if first {
			a.min, a.max = value, value
			first = false
			continue
		}
		if value < a.min {
			a.min = value
		}
		if value > a.max {
			a.max = value
		}
	}
}
