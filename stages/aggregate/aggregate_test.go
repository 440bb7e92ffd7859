package aggregate_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/n0rdy/palindromes/configs"
	"github.com/n0rdy/palindromes/digits"
	"github.com/n0rdy/palindromes/pipeline"
	"github.com/n0rdy/palindromes/stages/aggregate"
	"github.com/n0rdy/palindromes/stages/transform"
	"github.com/n0rdy/palindromes/types"
	"github.com/n0rdy/palindromes/types/statuses"
	"go.uber.org/goleak"
)

// tests goroutines memory leaks
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestFromRange_Filter_Extremes_NoConfigs_Success(t *testing.T) {
	p := pipeline.FromRange(1, 9)

	palindromicStage := transform.Filter(p.InitStage, digits.IsPalindromicProduct)

	res, err := aggregate.Extremes(palindromicStage)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if res == nil {
		t.Fatal("expected a result, got nil")
	}

	if res.Min.Value() != 1 {
		t.Errorf("expected min 1, got %d", res.Min.Value())
	}
	if res.Max.Value() != 9 {
		t.Errorf("expected max 9, got %d", res.Max.Value())
	}
	if !res.Max.Contains(types.FactorPair{A: 1, B: 9}) || !res.Max.Contains(types.FactorPair{A: 3, B: 3}) || res.Max.Len() != 2 {
		t.Errorf("expected max factors (1, 9) and (3, 3), got %v", res.Max.Factors())
	}
	if p.Status() != statuses.Done {
		t.Errorf("expected status Done, got %s", p.Status())
	}
}

func TestFromRange_Filter_Extremes_RateLimiting_Success(t *testing.T) {
	p := pipeline.FromRange(10, 99, configs.PipelineConfig{
		MaxGoroutinesPerStage: 4,
		ChannelBuffer:         32,
	})

	palindromicStage := transform.Filter(p.InitStage, digits.IsPalindromicProduct, configs.StageConfig{MaxGoroutines: 2})

	res, err := aggregate.Extremes(palindromicStage, configs.StageConfig{CustomId: 42})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if res.Min.Value() != 121 || !res.Min.Contains(types.FactorPair{A: 11, B: 11}) {
		t.Errorf("expected min 121 with (11, 11), got %d %v", res.Min.Value(), res.Min.Factors())
	}
	if res.Max.Value() != 9009 || !res.Max.Contains(types.FactorPair{A: 91, B: 99}) {
		t.Errorf("expected max 9009 with (91, 99), got %d %v", res.Max.Value(), res.Max.Factors())
	}
}

func TestFromRange_Extremes_EmptyRange(t *testing.T) {
	p := pipeline.FromRange(5, 3)

	res, err := aggregate.Extremes(transform.Filter(p.InitStage, digits.IsPalindromicProduct))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if res != nil {
		t.Errorf("expected the empty result, got %v", res)
	}
	if p.Status() != statuses.Done {
		t.Errorf("expected status Done, got %s", p.Status())
	}
}

func TestFromSlice_Count_Success(t *testing.T) {
	p := pipeline.FromSlice([]int{1, 2, 3, 4, 5, 6})

	oddStage := transform.Filter(p.InitStage, func(in int) bool {
		return in%2 != 0
	})

	count, err := aggregate.Count(oddStage)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if count != 3 {
		t.Errorf("expected 3, got %d", count)
	}
}

func TestFromRange_Extremes_Interrupted(t *testing.T) {
	p := pipeline.FromRange(1, 3000)

	once := &sync.Once{}
	stage := transform.Filter(p.InitStage, func(in types.FactorPair) bool {
		once.Do(p.Interrupt)
		return digits.IsPalindromicProduct(in)
	})

	res, err := aggregate.Extremes(stage)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if res != nil {
		t.Errorf("expected no result, got %v", res)
	}
	if p.Status() != statuses.Interrupted {
		t.Errorf("expected status Interrupted, got %s", p.Status())
	}
}

func TestFromRange_Extremes_StageTimeoutReached(t *testing.T) {
	p := pipeline.FromRange(1, 1000, configs.PipelineConfig{MaxGoroutinesPerStage: 1})

	slowStage := transform.Filter(p.InitStage, func(in types.FactorPair) bool {
		time.Sleep(time.Millisecond)
		return digits.IsPalindromicProduct(in)
	})

	_, err := aggregate.Extremes(slowStage, configs.StageConfig{Timeout: 30 * time.Millisecond})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if p.Status() != statuses.TimedOut {
		t.Errorf("expected status TimedOut, got %s", p.Status())
	}
}
