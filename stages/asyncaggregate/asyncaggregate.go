package asyncaggregate

import (
	"github.com/n0rdy/palindromes/configs"
	"github.com/n0rdy/palindromes/stages"
	"github.com/n0rdy/palindromes/stages/aggregate"
	"github.com/n0rdy/palindromes/types"
)

// Extremes is an async aggregation function that groups the factor pairs from the stage channel by product
// and picks the groups with the smallest and the largest product.
// This function returns a [types.Future] that will be completed with the result, or failed if the pipeline is interrupted.
// The future can be completed with a nil result, which means that no pair reached the stage.
// Check [types.Future] for more details.
//
// This is a final stage function, which means that it leads to the end of the pipeline.
// If you need the sync version of this function, use the aggregate.Extremes instead.
func Extremes(prevStage stages.Stage[types.FactorPair], confs ...configs.StageConfig) *types.Future[*types.Result] {
	return async(func() (*types.Result, error) {
		return aggregate.Extremes(prevStage, confs...)
	})
}

// Count is an async aggregation function that counts the elements from the stage channel.
func Count[In any](prevStage stages.Stage[In], confs ...configs.StageConfig) *types.Future[int64] {
	return async(func() (int64, error) {
		return aggregate.Count(prevStage, confs...)
	})
}

func async[Res any](syncFunc func() (Res, error)) *types.Future[Res] {
	future := types.NewFuture[Res]()

	go func() {
		res, err := syncFunc()
		if err != nil {
			future.Fail(err)
			return
		}
		future.Complete(res)
	}()

	return future
}
