package pipeline

import (
	"context"
	"iter"
	"slices"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/n0rdy/palindromes/configs"
	"github.com/n0rdy/palindromes/logging"
	"github.com/n0rdy/palindromes/pairs"
	"github.com/n0rdy/palindromes/ratelimiter"
	"github.com/n0rdy/palindromes/stages"
	"github.com/n0rdy/palindromes/types"
	"github.com/n0rdy/palindromes/types/statuses"
	"github.com/n0rdy/palindromes/utils"
)

// Pipeline is a data processing pipeline.
// It is created with the [FromRange], [FromSeq] or [FromSlice] functions.
// The pipeline consists of stages, which are created with the functions from the [stages] subpackages:
// [transform] for the intermediate ones and [aggregate] / [asyncaggregate] for the terminal one.
//
// The pipeline object contains only the initial stage.
//
// The pipeline exposes:
// the [Pipeline.Interrupt] method, which gracefully interrupts the pipeline;
// the [Pipeline.Close] method, which releases the pipeline resources;
// the [Pipeline.Status] method, which returns the current status of the pipeline;
// the [Pipeline.InitStage] field, which is the initial stage of the pipeline;
// the [Pipeline.Id] field, which identifies the pipeline in the logs.
type Pipeline[A any] struct {
	Id            uuid.UUID
	InitStage     stages.Stage[A]
	status        atomic.Int32
	mu            sync.Mutex
	timeoutTimer  *time.Timer
	ctx           context.Context
	ctxCancelFunc context.CancelFunc
	logger        logging.Logger
}

type parsedConfigs struct {
	stageRateLimiter *ratelimiter.RateLimiter
	channelBuffer    int
	timeout          time.Duration
	logger           logging.Logger
	initStageConfig  configs.StageConfig
}

// Status returns the current status of the pipeline.
func (p *Pipeline[A]) Status() statuses.Status {
	return statuses.Status(p.status.Load())
}

// Interrupt gracefully interrupts the pipeline.
// The stages notice it asynchronously, the terminal stage returns [context.Canceled].
// Interrupting a finished pipeline does nothing.
func (p *Pipeline[A]) Interrupt() {
	p.setStatus(statuses.Interrupted)
}

// Close releases the pipeline resources.
// A running pipeline is interrupted.
func (p *Pipeline[A]) Close() error {
	p.setStatus(statuses.Interrupted)
	return nil
}

// Context returns the pipeline context, it is done once the pipeline reaches a terminal status.
func (p *Pipeline[A]) Context() context.Context {
	return p.ctx
}

// setStatus moves the pipeline from running to the terminal status.
// Only the first terminal status is kept, false is returned for the rest.
func (p *Pipeline[A]) setStatus(status statuses.Status) bool {
	if !status.IsTerminal() {
		return false
	}
	if !p.status.CompareAndSwap(int32(statuses.Running), int32(status)) {
		return false
	}

	p.mu.Lock()
	utils.StopSafely(p.timeoutTimer)
	p.mu.Unlock()

	p.ctxCancelFunc()
	p.logger.Info(utils.PipelinePrefix(p.Id) + "finished with status " + status.String())
	return true
}

// FromRange creates a pipeline that emits every factor pair (a, b) with min <= a <= b <= max exactly once.
func FromRange(min, max uint64, confs ...configs.PipelineConfig) *Pipeline[types.FactorPair] {
	return FromSeq(pairs.NewRange(min, max).All(), confs...)
}

// FromSlice creates a pipeline from a slice.
func FromSlice[T any](s []T, confs ...configs.PipelineConfig) *Pipeline[T] {
	return FromSeq(slices.Values(s), confs...)
}

// FromSeq creates a pipeline from a sequence.
// The sequence is iterated once in a separate goroutine, the iteration stops as soon as the pipeline is finished.
//
// The function accepts pipeline configs as optional parameters. Only the first config is used, the rest are ignored.
// See [configs.PipelineConfig] for the available options.
func FromSeq[T any](seq iter.Seq[T], confs ...configs.PipelineConfig) *Pipeline[T] {
	pc := parseConfigs(confs...)
	ctx, ctxCancelFunc := context.WithCancel(context.Background())

	p := &Pipeline[T]{
		Id:            uuid.New(),
		ctx:           ctx,
		ctxCancelFunc: ctxCancelFunc,
		logger:        pc.logger,
	}
	p.status.Store(int32(statuses.Running))

	initChan := make(chan T, pc.channelBuffer)

	initLogger := pc.logger
	if pc.initStageConfig.Logger != nil {
		// stage configs overrides pipeline configs for logger
		initLogger = pc.initStageConfig.Logger
	}
	initStageId := int64(stages.InitStageId)
	if pc.initStageConfig.CustomId != 0 {
		initStageId = pc.initStageConfig.CustomId
	}

	p.InitStage = stages.NewInitStage(p.Id, initChan, pc.stageRateLimiter, pc.channelBuffer, ctx, p.setStatus, pc.logger)
	p.InitStage.Id = initStageId
	stagePrefix := utils.StagePrefix(p.Id, initStageId)

	p.mu.Lock()
	if pc.timeout > 0 {
		p.timeoutTimer = time.AfterFunc(pc.timeout, func() {
			pc.logger.Info(utils.PipelinePrefix(p.Id) + "timeout reached - interrupting the pipeline")
			p.setStatus(statuses.TimedOut)
		})
	}
	p.mu.Unlock()

	pc.logger.Info(utils.PipelinePrefix(p.Id) + "started")

	go func() {
		defer close(initChan)

		var stageTimeoutTimer *time.Timer
		if pc.initStageConfig.Timeout > 0 {
			stageTimeoutTimer = time.AfterFunc(pc.initStageConfig.Timeout, func() {
				initLogger.Info(stagePrefix + "timeout reached for stage - interrupting the pipeline")
				p.setStatus(statuses.TimedOut)
			})
		}
		defer utils.StopSafely(stageTimeoutTimer)

		initLogger.Debug(stagePrefix + "started")

		var sent int64
		for e := range seq {
			select {
			case initChan <- e:
				sent++
			case <-ctx.Done():
				initLogger.Debug(stagePrefix + "context done signal received")
				return
			}
		}

		initLogger.Debug(stagePrefix + "finished, emitted " + strconv.FormatInt(sent, 10) + " elements")
	}()

	return p
}

func parseConfigs(confs ...configs.PipelineConfig) *parsedConfigs {
	pc := &parsedConfigs{}

	if len(confs) > 0 {
		conf := confs[0]
		pc.stageRateLimiter = ratelimiter.NewRateLimiter(conf.MaxGoroutinesPerStage)
		if conf.ChannelBuffer > 0 {
			pc.channelBuffer = conf.ChannelBuffer
		}
		if conf.Timeout > 0 {
			pc.timeout = conf.Timeout
		}
		pc.logger = conf.Logger
		if conf.InitStageConfig != nil {
			pc.initStageConfig = *conf.InitStageConfig
		}
	}

	pc.logger = logging.OrNoOps(pc.logger)
	return pc
}
