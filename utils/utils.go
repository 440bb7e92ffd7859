package utils

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// StopSafely stops the timer if it is not nil.
func StopSafely(t *time.Timer) {
	if t != nil {
		t.Stop()
	}
}

// DrainChan reads from the channel until it is closed.
// An interrupted stage calls it so that the goroutines writing to its input don't stay blocked forever.
func DrainChan[In any](inChan <-chan In) {
	for range inChan {
	}
}

// PipelinePrefix is the log prefix of the pipeline with the given id.
func PipelinePrefix(pipelineId uuid.UUID) string {
	return "pipeline " + pipelineId.String() + ": "
}

// StagePrefix is the log prefix of a stage of the pipeline with the given id.
func StagePrefix(pipelineId uuid.UUID, stageId int64) string {
	return "pipeline " + pipelineId.String() + " stage " + strconv.FormatInt(stageId, 10) + ": "
}
