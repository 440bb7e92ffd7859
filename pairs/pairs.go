// Package pairs enumerates the unordered factor pairs of an inclusive range.
package pairs

import (
	"iter"
	"math"
	"math/bits"

	"github.com/n0rdy/palindromes/types"
)

// Range is the inclusive range [Min, Max] the factors are drawn from.
// A range with Min > Max is empty.
type Range struct {
	Min uint64
	Max uint64
}

func NewRange(min, max uint64) Range {
	return Range{Min: min, Max: max}
}

func (r Range) Empty() bool {
	return r.Min > r.Max
}

// Size returns the number of values in the range, saturated at math.MaxUint64.
func (r Range) Size() uint64 {
	if r.Empty() {
		return 0
	}
	if r.Max-r.Min == math.MaxUint64 {
		return math.MaxUint64
	}
	return r.Max - r.Min + 1
}

// Len returns the number of pairs [Range.All] yields, saturated at math.MaxUint64.
func (r Range) Len() uint64 {
	n := r.Size()
	if n == math.MaxUint64 {
		return math.MaxUint64
	}
	// n * (n + 1) / 2, one of the two factors is even
	x, y := n, n+1
	if x%2 == 0 {
		x /= 2
	} else {
		y /= 2
	}
	hi, lo := bits.Mul64(x, y)
	if hi != 0 {
		return math.MaxUint64
	}
	return lo
}

// All yields every pair (a, b) with Min <= a <= b <= Max exactly once:
// first the strict combinations a < b, then the diagonal (c, c).
// The sequence is lazy and can be iterated any number of times.
func (r Range) All() iter.Seq[types.FactorPair] {
	return func(yield func(types.FactorPair) bool) {
		for p := range r.Combinations() {
			if !yield(p) {
				return
			}
		}
		for p := range r.Diagonal() {
			if !yield(p) {
				return
			}
		}
	}
}

// Combinations yields every pair (a, b) with Min <= a < b <= Max.
func (r Range) Combinations() iter.Seq[types.FactorPair] {
	return func(yield func(types.FactorPair) bool) {
		if r.Empty() {
			return
		}
		for a := r.Min; a < r.Max; a++ {
			for b := a + 1; ; b++ {
				if !yield(types.FactorPair{A: a, B: b}) {
					return
				}
				if b == r.Max {
					break
				}
			}
		}
	}
}

// Diagonal yields (c, c) for every c in the range.
func (r Range) Diagonal() iter.Seq[types.FactorPair] {
	return func(yield func(types.FactorPair) bool) {
		if r.Empty() {
			return
		}
		for c := r.Min; ; c++ {
			if !yield(types.FactorPair{A: c, B: c}) {
				return
			}
			if c == r.Max {
				return
			}
		}
	}
}

// Shards splits the pairs of the range into n disjoint parts by the smaller factor.
// Shard i owns the rows a = Min+i, Min+i+n, Min+i+2n, ..., so the rows are spread evenly.
// Together the shards yield exactly the pairs of [Range.All], in a different order.
// n < 1 is treated as 1.
func (r Range) Shards(n int) []Shard {
	if n < 1 {
		n = 1
	}

	shards := make([]Shard, n)
	for i := range shards {
		shards[i] = Shard{
			rng:    r,
			offset: uint64(i),
			stride: uint64(n),
		}
	}
	return shards
}

// Shard is a part of a [Range] created by [Range.Shards].
type Shard struct {
	rng    Range
	offset uint64
	stride uint64
}

// All yields the pairs (a, b) of the shard rows, with a <= b <= Max.
func (s Shard) All() iter.Seq[types.FactorPair] {
	return func(yield func(types.FactorPair) bool) {
		r := s.rng
		if r.Empty() || r.Max-r.Min < s.offset {
			return
		}

		for a := r.Min + s.offset; ; a += s.stride {
			for b := a; ; b++ {
				if !yield(types.FactorPair{A: a, B: b}) {
					return
				}
				if b == r.Max {
					break
				}
			}
			if r.Max-a < s.stride {
				return
			}
		}
	}
}
