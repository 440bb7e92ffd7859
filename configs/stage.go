package configs

import (
	"time"

	"github.com/n0rdy/palindromes/logging"
)

// StageConfig overrides the pipeline settings for one stage.
//
// MaxGoroutines caps the workers of this stage, 0 or less falls back to [PipelineConfig.MaxGoroutinesPerStage].
//
// Timeout interrupts the pipeline with the TimedOut status if the stage is still running once it is reached.
// 0 or less disables it.
//
// CustomId replaces the id the stage appears with in the logs.
// By default the source stage has id 1 and every following stage has the id of its predecessor + 1.
//
// Logger replaces the pipeline logger for this stage only.
type StageConfig struct {
	MaxGoroutines int
	Timeout       time.Duration
	CustomId      int64
	Logger        logging.Logger
}

// FirstStageConfig returns the first of the optional stage configs, or the zero config.
func FirstStageConfig(confs ...StageConfig) StageConfig {
	if len(confs) == 0 {
		return StageConfig{}
	}
	return confs[0]
}
