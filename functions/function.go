package functions

// FilterFunc is a function that takes an input and returns a boolean.
// The use-case for it is to keep only the inputs the next stage is interested in,
// for example the factor pairs whose product is a palindrome.
type FilterFunc[In any] func(In) bool

// AggregateFunc folds one more input into the aggregation and returns the updated aggregation.
// The first call receives the zero value of Aggr.
type AggregateFunc[Aggr, In any] func(aggr Aggr, in In) Aggr

// ResultFunc turns the final aggregation into the result of the terminal stage.
type ResultFunc[Aggr, Res any] func(aggr Aggr) Res
