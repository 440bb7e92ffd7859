package types

import (
	"golang.org/x/exp/constraints"
)

// Unsigned is the set of integer types the digit helpers work with.
type Unsigned interface {
	constraints.Unsigned
}

type Void struct{}

// FactorPair is one way to produce a product: A * B with A <= B.
// It is comparable, so it can be used as a map key or a set element.
type FactorPair struct {
	A uint64
	B uint64
}

// NewFactorPair creates a [FactorPair] from two factors in any order.
func NewFactorPair(a, b uint64) FactorPair {
	if a > b {
		a, b = b, a
	}
	return FactorPair{A: a, B: b}
}

// Product returns A * B.
// The caller is responsible for keeping the factors small enough for the product to fit into uint64.
func (p FactorPair) Product() uint64 {
	return p.A * p.B
}

// Less reports whether p sorts before other: by A first, then by B.
func (p FactorPair) Less(other FactorPair) bool {
	if p.A != other.A {
		return p.A < other.A
	}
	return p.B < other.B
}
