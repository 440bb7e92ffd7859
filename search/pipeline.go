package search

import (
	"context"
	"time"

	"github.com/n0rdy/palindromes"
	"github.com/n0rdy/palindromes/configs"
	"github.com/n0rdy/palindromes/digits"
	"github.com/n0rdy/palindromes/logging"
	"github.com/n0rdy/palindromes/pipeline"
	"github.com/n0rdy/palindromes/stages/asyncaggregate"
	"github.com/n0rdy/palindromes/stages/transform"
	"github.com/n0rdy/palindromes/types"
	"github.com/n0rdy/palindromes/types/statuses"
)

// Pipeline streams the pairs through a pipeline: the range source, the palindrome filter
// and the extremes aggregation, each stage limited to workers goroutines.
//
// The search timeout becomes the pipeline timeout,
// the cancellation of the caller's context interrupts the pipeline.
type Pipeline struct {
	workers int
	timeout time.Duration
	logger  logging.Logger
}

func (s *Pipeline) Search(ctx context.Context, min, max uint64) (*types.Result, error) {
	if err := palindromes.CheckRange(min, max); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	started := time.Now()
	logStart(s.logger, configs.SearchModePipeline, min, max)

	p := pipeline.FromRange(min, max, configs.PipelineConfig{
		MaxGoroutinesPerStage: s.workers,
		ChannelBuffer:         s.workers,
		Timeout:               s.timeout,
		Logger:                s.logger,
	})
	defer p.Close()

	palindromicStage := transform.Filter(p.InitStage, digits.IsPalindromicProduct)
	future := asyncaggregate.Extremes(palindromicStage)

	res, err := future.Get(ctx)
	if err != nil {
		if ctx.Err() != nil {
			p.Interrupt()
			// wait for the stages to wind down, so no goroutine outlives the search
			_, _ = future.Get(context.Background())
			s.logger.Warn(configs.SearchModePipeline+" search cancelled", ctx.Err())
			return nil, ctx.Err()
		}
		if p.Status() == statuses.TimedOut {
			err = ErrTimeout
		}
		s.logger.Warn(configs.SearchModePipeline+" search failed", err)
		return nil, err
	}

	logFinish(s.logger, configs.SearchModePipeline, res, started)
	return res, nil
}
