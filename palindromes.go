package palindromes

import (
	"context"
	"iter"
	"runtime"

	"github.com/n0rdy/palindromes/aggregator"
	"github.com/n0rdy/palindromes/pairs"
	"github.com/n0rdy/palindromes/types"
	"golang.org/x/sync/errgroup"
)

// checkEvery is how many pairs a parallel worker processes between two context checks.
const checkEvery = 1 << 14

// Products returns the groups with the smallest and the largest palindromic product of two factors from [min, max].
//
// A nil result with a nil error means that there is no palindromic product in the range, which is the case for min > max.
// [ErrOutOfRange] is returned if max is greater than [MaxFactor].
func Products(min, max uint64) (*types.Result, error) {
	if err := CheckRange(min, max); err != nil {
		return nil, err
	}

	agg := aggregator.New()
	for p := range pairs.NewRange(min, max).All() {
		agg.Observe(p)
	}
	return agg.Result(), nil
}

// ProductsContext is [Products] that gives up once ctx is done, returning ctx.Err().
func ProductsContext(ctx context.Context, min, max uint64) (*types.Result, error) {
	if err := CheckRange(min, max); err != nil {
		return nil, err
	}

	agg := aggregator.New()
	if err := observe(ctx, agg, pairs.NewRange(min, max).All()); err != nil {
		return nil, err
	}
	return agg.Result(), nil
}

// ProductsParallel is [Products] with the pairs sharded by the smaller factor across workers goroutines.
// Every worker fills its own aggregator, the aggregators are merged once all the workers are finished,
// so the result is exactly the one of [Products].
//
// workers < 1 means one worker per CPU.
// If ctx is done before the search finishes, ctx.Err() is returned.
func ProductsParallel(ctx context.Context, min, max uint64, workers int) (*types.Result, error) {
	if err := CheckRange(min, max); err != nil {
		return nil, err
	}
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	shards := pairs.NewRange(min, max).Shards(workers)
	aggs := make([]*aggregator.Aggregator, len(shards))

	eg, egCtx := errgroup.WithContext(ctx)
	for i, shard := range shards {
		eg.Go(func() error {
			agg := aggregator.New()
			if err := observe(egCtx, agg, shard.All()); err != nil {
				return err
			}
			aggs[i] = agg
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	merged := aggregator.New()
	for _, agg := range aggs {
		merged.Merge(agg)
	}
	return merged.Result(), nil
}

func observe(ctx context.Context, agg *aggregator.Aggregator, seq iter.Seq[types.FactorPair]) error {
	seen := 0
	for p := range seq {
		seen++
		if seen%checkEvery == 0 && ctx.Err() != nil {
			return ctx.Err()
		}
		agg.Observe(p)
	}
	return ctx.Err()
}
