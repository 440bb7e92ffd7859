package digits

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/n0rdy/palindromes/types"
)

func TestReverse(t *testing.T) {
	tests := []struct {
		in   uint64
		want uint64
	}{
		{in: 0, want: 0},
		{in: 7, want: 7},
		{in: 10, want: 1},
		{in: 120, want: 21},
		{in: 123, want: 321},
		{in: 9009, want: 9009},
		{in: 1000000000000000000, want: 1},
	}

	for _, tt := range tests {
		if got := Reverse(tt.in); got != tt.want {
			t.Errorf("Reverse(%d): expected %d, got %d", tt.in, tt.want, got)
		}
	}
}

func TestReverse_OtherWidths(t *testing.T) {
	if got := Reverse(uint8(120)); got != 21 {
		t.Errorf("expected 21, got %d", got)
	}
	if got := Reverse(uint16(4321)); got != 1234 {
		t.Errorf("expected 1234, got %d", got)
	}
	if got := Reverse(uint32(1001)); got != 1001 {
		t.Errorf("expected 1001, got %d", got)
	}
	if got := Reverse(uint(560)); got != 65 {
		t.Errorf("expected 65, got %d", got)
	}
}

func TestIsPalindrome(t *testing.T) {
	palindromes := []uint64{0, 1, 9, 11, 121, 9009, 906609, 1234554321}
	for _, n := range palindromes {
		if !IsPalindrome(n) {
			t.Errorf("expected %d to be a palindrome", n)
		}
	}

	notPalindromes := []uint64{10, 12, 120, 1231, 9008}
	for _, n := range notPalindromes {
		if IsPalindrome(n) {
			t.Errorf("expected %d not to be a palindrome", n)
		}
	}
}

func TestIsPalindromicProduct(t *testing.T) {
	if !IsPalindromicProduct(types.NewFactorPair(91, 99)) {
		t.Error("expected 91*99 = 9009 to be a palindrome")
	}
	if IsPalindromicProduct(types.NewFactorPair(10, 12)) {
		t.Error("expected 10*12 = 120 not to be a palindrome")
	}
}

func TestLen(t *testing.T) {
	tests := map[uint64]int{0: 1, 9: 1, 10: 2, 999: 3, 1000: 4, math.MaxUint64: 20}
	for in, want := range tests {
		if got := Len(in); got != want {
			t.Errorf("Len(%d): expected %d, got %d", in, want, got)
		}
	}
}

func TestReverse_Properties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	// Property: reversing twice restores numbers that don't end with zero
	properties.Property("double reverse is identity without trailing zeros", prop.ForAll(
		func(n uint32) bool {
			if n%radix == 0 {
				return true
			}
			return Reverse(Reverse(uint64(n))) == uint64(n)
		},
		gen.UInt32(),
	))

	// Property: reversal never adds digits
	properties.Property("reverse keeps or shrinks the digit count", prop.ForAll(
		func(n uint64) bool {
			return Len(Reverse(n)) <= Len(n)
		},
		gen.UInt64Range(0, math.MaxUint64/10),
	))

	// Property: a number built as x followed by reverse(x) is a palindrome
	properties.Property("mirrored numbers are palindromes", prop.ForAll(
		func(x uint32) bool {
			if x == 0 || x%radix == 0 {
				return true
			}
			n := uint64(x)
			mirrored := n
			for m := n; m != 0; m /= radix {
				mirrored = mirrored*radix + m%radix
			}
			return IsPalindrome(mirrored)
		},
		gen.UInt32Range(1, 99999),
	))

	properties.TestingRun(t)
}
