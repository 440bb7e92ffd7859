package aggregate

import (
	"context"
	"strconv"
	"time"

	"github.com/n0rdy/palindromes/aggregator"
	"github.com/n0rdy/palindromes/configs"
	"github.com/n0rdy/palindromes/functions"
	"github.com/n0rdy/palindromes/stages"
	"github.com/n0rdy/palindromes/types"
	"github.com/n0rdy/palindromes/types/statuses"
	"github.com/n0rdy/palindromes/utils"
)

// Extremes is a sync aggregation function that groups the factor pairs from the stage channel by product
// and returns the groups with the smallest and the largest product.
// The pairs are expected to be palindromic already, use [transform.Filter] with [digits.IsPalindromicProduct] before this stage.
//
// A nil result with a nil error means that no pair reached the stage.
// This function returns error if the pipeline is interrupted or timed out before the stage finishes.
//
// This is a final stage function, which means that it leads to the end of the pipeline.
// If you need the async version of this function, use the asyncaggregate.Extremes instead.
func Extremes(prevStage stages.Stage[types.FactorPair], confs ...configs.StageConfig) (*types.Result, error) {
	return Aggregate(
		prevStage,
		func(agg *aggregator.Aggregator, in types.FactorPair) *aggregator.Aggregator {
			if agg == nil {
				agg = aggregator.New()
			}
			agg.Add(in)
			return agg
		},
		func(agg *aggregator.Aggregator) *types.Result {
			if agg == nil {
				return nil
			}
			return agg.Result()
		},
		confs...,
	)
}

// Count is a sync aggregation function that counts the elements from the stage channel.
// This function returns error if the pipeline is interrupted or timed out before the stage finishes.
func Count[In any](prevStage stages.Stage[In], confs ...configs.StageConfig) (int64, error) {
	return Aggregate(
		prevStage,
		func(aggrRes int64, in In) int64 {
			return aggrRes + 1
		},
		func(aggrRes int64) int64 {
			return aggrRes
		},
		confs...,
	)
}

// Aggregate folds every element of the stage channel with aggFunc, starting from the zero value of Aggr,
// and converts the final aggregation with resFunc.
// On success, the pipeline is marked as done.
//
// This function returns error if the pipeline is interrupted or timed out before the stage finishes.
// The error is obtained internally by calling the `context.Err()` function.
func Aggregate[In, Aggr, Res any](prevStage stages.Stage[In], aggFunc functions.AggregateFunc[Aggr, In], resFunc functions.ResultFunc[Aggr, Res], confs ...configs.StageConfig) (Res, error) {
	var zero Res
	conf := configs.FirstStageConfig(confs...)

	inChan := prevStage.Chan
	ctx := prevStage.Context()

	localLogger := prevStage.Logger
	if conf.Logger != nil {
		// stage configs overrides pipeline configs for logger
		localLogger = conf.Logger
	}

	stagePrefix := prevStage.Prefix(prevStage.NextId(conf.CustomId))
	localLogger.Debug(stagePrefix + "started")

	var timeoutTimer *time.Timer
	if conf.Timeout > 0 {
		timeoutTimer = time.AfterFunc(conf.Timeout, func() {
			localLogger.Info(stagePrefix + "timeout reached for stage - interrupting the pipeline")
			prevStage.SetPipelineStatus(statuses.TimedOut)
		})
	}
	defer utils.StopSafely(timeoutTimer)

	var result Aggr
	var received int64

	running := true
	for running {
		select {
		case in, ok := <-inChan:
			if ok {
				received++
				result = aggFunc(result, in)
			} else {
				localLogger.Debug(stagePrefix + "input channel closed after " + strconv.FormatInt(received, 10) + " elements")
				running = false
			}
		case <-ctx.Done():
			localLogger.Debug(stagePrefix + "context done signal received")
			utils.DrainChan(inChan)
			return zero, ctx.Err()
		}
	}

	// the input might have been closed because the previous stages were interrupted
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	if !prevStage.SetPipelineStatus(statuses.Done) {
		return zero, context.Canceled
	}

	localLogger.Info(stagePrefix + "finished")
	return resFunc(result), nil
}
