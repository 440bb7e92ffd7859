package transform

import (
	"context"
	"sync"
	"time"

	"github.com/n0rdy/palindromes/configs"
	"github.com/n0rdy/palindromes/functions"
	"github.com/n0rdy/palindromes/ratelimiter"
	"github.com/n0rdy/palindromes/stages"
	"github.com/n0rdy/palindromes/types/statuses"
	"github.com/n0rdy/palindromes/utils"
)

// Filter passes to the next stage only the inputs the filterFunc returns true for.
// It returns a new stage that can be used to chain other stages.
// The function is executed in the async manner: every input is checked in its own goroutine,
// the number of concurrent goroutines is bounded by the stage rate limiter.
// That's why the order of the inputs is not preserved.
//
// This is an intermediate stage function, which means that it can be used only in the middle of the pipeline.
// If you need to set up the pipeline, use functions from the [pipeline] package.
// If you need to get the result of the pipeline, use functions from the [aggregate] and/or [asyncaggregate] packages.
//
// Among other arguments, the function accepts optional stage configs.
// Only the first stage config is used. See [configs.StageConfig] for more details.
func Filter[In any](prevStage stages.Stage[In], filterFunc functions.FilterFunc[In], confs ...configs.StageConfig) stages.Stage[In] {
	return transform(prevStage, func(ctx context.Context, inArg In, outChan chan<- In) {
		if !filterFunc(inArg) {
			return
		}
		select {
		case outChan <- inArg:
		case <-ctx.Done():
		}
	}, confs...)
}

func transform[In, Out any](prevStage stages.Stage[In], transformFunc func(ctx context.Context, inArg In, outChan chan<- Out), confs ...configs.StageConfig) stages.Stage[Out] {
	conf := configs.FirstStageConfig(confs...)

	inChan := prevStage.Chan
	outChan := make(chan Out, prevStage.ChannelBuffer)
	ctx := prevStage.Context()

	localRateLimiter := localRateLimiter(prevStage.StageRateLimiter, conf)
	localLogger := prevStage.Logger
	if conf.Logger != nil {
		// stage configs overrides pipeline configs for logger
		localLogger = conf.Logger
	}

	stageId := prevStage.NextId(conf.CustomId)
	stagePrefix := prevStage.Prefix(stageId)

	go func() {
		defer ratelimiter.CloseSafely(localRateLimiter)
		defer close(outChan)

		localLogger.Debug(stagePrefix + "started")

		var timeoutTimer *time.Timer
		if conf.Timeout > 0 {
			timeoutTimer = time.AfterFunc(conf.Timeout, func() {
				localLogger.Info(stagePrefix + "timeout reached for stage - interrupting the pipeline")
				prevStage.SetPipelineStatus(statuses.TimedOut)
			})
		}
		defer utils.StopSafely(timeoutTimer)

		localWg := &sync.WaitGroup{}
		running := true
		for running {
			select {
			case in, ok := <-inChan:
				if ok {
					ratelimiter.AcquireSafely(localRateLimiter)
					localWg.Add(1)

					go func(inArg In) {
						defer localWg.Done()
						defer ratelimiter.ReleaseSafely(localRateLimiter)

						transformFunc(ctx, inArg, outChan)
					}(in)
				} else {
					localLogger.Debug(stagePrefix + "input channel closed")
					running = false
				}
			case <-ctx.Done():
				localLogger.Debug(stagePrefix + "context done signal received")
				utils.DrainChan(inChan)
				running = false
			}
		}

		// the output channel can be closed only once no worker writes to it
		localWg.Wait()
		localLogger.Debug(stagePrefix + "finished")
	}()

	return stages.FromStage(prevStage, outChan, stageId)
}

func localRateLimiter(stageRateLimiter *ratelimiter.RateLimiter, conf configs.StageConfig) *ratelimiter.RateLimiter {
	if conf.MaxGoroutines > 0 {
		// stage configs overrides pipeline configs for stage rate limiting
		return ratelimiter.NewRateLimiter(conf.MaxGoroutines)
	}
	return ratelimiter.Copy(stageRateLimiter)
}
