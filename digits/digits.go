// Package digits holds the base-10 helpers behind the palindrome classification.
package digits

import (
	"github.com/n0rdy/palindromes/types"
)

const radix = 10

// Reverse reverses the decimal digits of n: 123 -> 321.
// Trailing zeros disappear, so Reverse(120) == 21.
func Reverse[T types.Unsigned](n T) T {
	var reversed T
	for n != 0 {
		reversed = reversed*radix + n%radix
		n /= radix
	}
	return reversed
}

// IsPalindrome reports whether n reads the same in both directions.
// Zero and every single digit number are palindromes.
func IsPalindrome[T types.Unsigned](n T) bool {
	return n == Reverse(n)
}

// IsPalindromicProduct reports whether the product of the pair is a palindrome.
func IsPalindromicProduct(p types.FactorPair) bool {
	return IsPalindrome(p.Product())
}

// Len returns the number of decimal digits of n, 1 for zero.
func Len[T types.Unsigned](n T) int {
	l := 1
	for n >= radix {
		n /= radix
		l++
	}
	return l
}
