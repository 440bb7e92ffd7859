package pipeline

import (
	"slices"
	"testing"
	"time"

	"github.com/n0rdy/palindromes/configs"
	"github.com/n0rdy/palindromes/pairs"
	"github.com/n0rdy/palindromes/types/statuses"
	"github.com/n0rdy/palindromes/utils"
	"go.uber.org/goleak"
)

// tests goroutines memory leaks
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestFromSlice_Success(t *testing.T) {
	s := []int{1, 2, 3}

	p := FromSlice(s)

	if p.Status() != statuses.Running {
		t.Errorf("Expected status %s, got %s", statuses.Running, p.Status())
	}

	for _, e := range s {
		eFromChan := <-p.InitStage.Chan
		if e != eFromChan {
			t.Errorf("Expected element %d, got %d", e, eFromChan)
		}
	}

	p.Interrupt()

	if p.Status() != statuses.Interrupted {
		t.Errorf("Expected status %s, got %s", statuses.Interrupted, p.Status())
	}
	utils.DrainChan(p.InitStage.Chan)
}

func TestFromRange_EmitsEveryPair(t *testing.T) {
	p := FromRange(1, 9, configs.PipelineConfig{ChannelBuffer: 8})
	defer p.Close()

	var got []uint64
	for pair := range p.InitStage.Chan {
		got = append(got, pair.Product())
	}

	var expected []uint64
	for pair := range pairs.NewRange(1, 9).All() {
		expected = append(expected, pair.Product())
	}

	if !slices.Equal(expected, got) {
		t.Errorf("Expected products %v, got %v", expected, got)
	}
	if p.InitStage.Id != 1 {
		t.Errorf("Expected init stage id 1, got %d", p.InitStage.Id)
	}
}

func TestFromRange_Empty(t *testing.T) {
	p := FromRange(5, 3)
	defer p.Close()

	count := 0
	for range p.InitStage.Chan {
		count++
	}
	if count != 0 {
		t.Errorf("Expected no pairs, got %d", count)
	}
}

func TestInterrupt_Twice(t *testing.T) {
	p := FromRange(1, 1000)

	p.Interrupt()
	p.Interrupt()

	select {
	case <-p.Context().Done():
	case <-time.After(time.Second):
		t.Fatal("Expected the pipeline context to be done")
	}
	if p.Status() != statuses.Interrupted {
		t.Errorf("Expected status %s, got %s", statuses.Interrupted, p.Status())
	}
	utils.DrainChan(p.InitStage.Chan)
}

func TestPipelineTimeoutReached(t *testing.T) {
	p := FromRange(1, 1000, configs.PipelineConfig{Timeout: 50 * time.Millisecond})

	select {
	case <-p.Context().Done():
	case <-time.After(5 * time.Second):
		t.Fatal("Expected the pipeline to time out")
	}
	if p.Status() != statuses.TimedOut {
		t.Errorf("Expected status %s, got %s", statuses.TimedOut, p.Status())
	}

	// late interruption doesn't change the status
	p.Interrupt()
	if p.Status() != statuses.TimedOut {
		t.Errorf("Expected status %s, got %s", statuses.TimedOut, p.Status())
	}
	utils.DrainChan(p.InitStage.Chan)
}

func TestInitStageTimeoutReached(t *testing.T) {
	p := FromRange(1, 1000, configs.PipelineConfig{
		InitStageConfig: &configs.StageConfig{Timeout: 50 * time.Millisecond, CustomId: 10},
	})

	if p.InitStage.Id != 10 {
		t.Errorf("Expected init stage id 10, got %d", p.InitStage.Id)
	}

	select {
	case <-p.Context().Done():
	case <-time.After(5 * time.Second):
		t.Fatal("Expected the pipeline to time out")
	}
	if p.Status() != statuses.TimedOut {
		t.Errorf("Expected status %s, got %s", statuses.TimedOut, p.Status())
	}
	utils.DrainChan(p.InitStage.Chan)
}
