package stages

import (
	"context"

	"github.com/google/uuid"
	"github.com/n0rdy/palindromes/logging"
	"github.com/n0rdy/palindromes/ratelimiter"
	"github.com/n0rdy/palindromes/types/statuses"
	"github.com/n0rdy/palindromes/utils"
)

const (
	InitStageId = 1
)

// StatusFunc moves the pipeline to a terminal status.
// It returns false if the pipeline already has a terminal status, the first one wins.
type StatusFunc func(status statuses.Status) bool

// Stage is a struct that represents a stage in a pipeline.
// It is created either by a pipeline (the initial stage only) via the [NewInitStage] function, or by another stage via the [FromStage] function.
//
// The stage exposes:
//
// the [Stage.Id] field, which is the id of the stage, used to identify the stage in the logs;
//
// the [Stage.PipelineId] field, which is the id of the pipeline the stage belongs to;
//
// the [Stage.Chan] field, which is the read-only channel of the stage.
// The next stage reads from this channel. The channel is created and closed by the stage that writes to it;
//
// the [Stage.StageRateLimiter] field, the default limit of goroutines for the stages created from this one.
// Each stage makes its own copy of it, unless [configs.StageConfig.MaxGoroutines] overrides it;
//
// the [Stage.Logger] field, the logger of the pipeline;
//
// the [Stage.SetPipelineStatus] and [Stage.Context] functions
// which connect the stage to the lifecycle of the pipeline.
type Stage[T any] struct {
	Id               int64
	PipelineId       uuid.UUID
	Chan             <-chan T
	StageRateLimiter *ratelimiter.RateLimiter
	Logger           logging.Logger
	ChannelBuffer    int
	pipelineCtx      context.Context
	statusFunc       StatusFunc
}

// NewInitStage is a function that creates the initial stage of a pipeline based on the provided parameters.
func NewInitStage[T any](pipelineId uuid.UUID, ch <-chan T, stageRateLimiter *ratelimiter.RateLimiter, channelBuffer int, pipelineCtx context.Context, statusFunc StatusFunc, logger logging.Logger) Stage[T] {
	return Stage[T]{
		Id:               InitStageId,
		PipelineId:       pipelineId,
		Chan:             ch,
		StageRateLimiter: stageRateLimiter,
		Logger:           logging.OrNoOps(logger),
		ChannelBuffer:    channelBuffer,
		pipelineCtx:      pipelineCtx,
		statusFunc:       statusFunc,
	}
}

// FromStage is a function that creates a new stage based on the previous stage.
// The id of the new stage is the id of the previous one + 1, unless customId is not 0.
// Everything but the channel is reused from the previous stage.
func FromStage[In, Out any](stage Stage[In], ch <-chan Out, customId int64) Stage[Out] {
	id := stage.Id + 1
	if customId != 0 {
		id = customId
	}

	return Stage[Out]{
		Id:               id,
		PipelineId:       stage.PipelineId,
		Chan:             ch,
		StageRateLimiter: stage.StageRateLimiter,
		Logger:           stage.Logger,
		ChannelBuffer:    stage.ChannelBuffer,
		pipelineCtx:      stage.pipelineCtx,
		statusFunc:       stage.statusFunc,
	}
}

// NextId returns the id the stage consuming this one should have.
func (s *Stage[T]) NextId(customId int64) int64 {
	if customId != 0 {
		return customId
	}
	return s.Id + 1
}

// SetPipelineStatus moves the pipeline to the provided terminal status.
// It returns false if the pipeline had a terminal status already.
// Any terminal status cancels the pipeline context.
func (s *Stage[T]) SetPipelineStatus(status statuses.Status) bool {
	return s.statusFunc(status)
}

// Context returns the context of the pipeline, it is done once the pipeline is finished in any way.
func (s *Stage[T]) Context() context.Context {
	return s.pipelineCtx
}

// Prefix returns the log prefix of a stage with the provided id in the same pipeline.
func (s *Stage[T]) Prefix(stageId int64) string {
	return utils.StagePrefix(s.PipelineId, stageId)
}
