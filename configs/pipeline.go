package configs

import (
	"time"

	"github.com/n0rdy/palindromes/logging"
)

// PipelineConfig tunes a search pipeline created by the pipeline package.
//
// MaxGoroutinesPerStage caps the workers every stage may run at once, 0 or less means unbounded.
// A single stage can override it with [StageConfig.MaxGoroutines].
//
// ChannelBuffer is the capacity of the channels between the stages, 0 or less gives unbuffered channels.
//
// Timeout interrupts the whole pipeline with the TimedOut status once reached, 0 or less disables it.
//
// Logger receives the lifecycle logs of the pipeline and of its stages, nil discards them.
//
// InitStageConfig applies to the source stage that emits the factor pairs.
// Its MaxGoroutines is ignored: the source is always a single goroutine.
type PipelineConfig struct {
	MaxGoroutinesPerStage int
	ChannelBuffer         int
	Timeout               time.Duration
	Logger                logging.Logger
	InitStageConfig       *StageConfig
}
