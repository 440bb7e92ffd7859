package types

// Result holds the groups with the smallest and the largest palindromic product found in a range.
//
// A nil *Result is the empty result: the range contains no palindromic product at all.
// If the range has exactly one distinct palindromic product, Min and Max point to the same group.
type Result struct {
	Min *PalindromeGroup
	Max *PalindromeGroup
}

// Single reports whether the minimum and the maximum are the same product.
func (r *Result) Single() bool {
	return r != nil && r.Min == r.Max
}

// Equal compares two results by values and factor sets.
// Two nil results are equal.
func (r *Result) Equal(other *Result) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.Min.Equal(other.Min) && r.Max.Equal(other.Max)
}
