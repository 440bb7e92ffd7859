package palindromes

import (
	"errors"
	"fmt"
	"math"
)

// MaxFactor is the largest factor whose square still fits into uint64.
const MaxFactor uint64 = math.MaxUint32

// ErrOutOfRange is returned when the range contains a factor so large that a product might overflow uint64.
var ErrOutOfRange = errors.New("input out of supported range")

// CheckRange validates that every product of the range fits into uint64.
// An empty range (min > max) is always valid.
func CheckRange(min, max uint64) error {
	if min > max {
		return nil
	}
	if max > MaxFactor {
		return fmt.Errorf("max factor %d exceeds %d: %w", max, MaxFactor, ErrOutOfRange)
	}
	return nil
}
