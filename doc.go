// Package palindromes finds the smallest and the largest palindromic products of two factors drawn from an inclusive range,
// together with every factor pair that yields them.
//
// The computation is a single pass:
// the [pairs] package enumerates every unordered pair (a, b) with min <= a <= b <= max,
// the [digits] package decides whether a*b reads the same in both directions,
// and the [aggregator] package groups the palindromic products and picks the extremal ones.
//
// [Products] runs the pass synchronously, [ProductsContext] does the same but gives up once its context is done,
// and [ProductsParallel] shards the pairs across goroutines.
// The pipeline package offers the same flow as a channel based pipeline,
// the search package picks one of these strategies from the configuration.
package palindromes
