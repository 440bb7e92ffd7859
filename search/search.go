// Package search runs the palindromic product search with one of the available strategies:
// sequential, parallel (sharded across goroutines) or pipeline (streamed through pipeline stages).
//
// All strategies return the same result for the same range,
// they only differ in how the work is scheduled.
package search

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"time"

	"github.com/n0rdy/palindromes"
	"github.com/n0rdy/palindromes/configs"
	"github.com/n0rdy/palindromes/digits"
	"github.com/n0rdy/palindromes/logging"
	"github.com/n0rdy/palindromes/types"
)

var (
	// ErrTimeout is returned when the search exceeds the configured timeout.
	ErrTimeout = errors.New("search: timeout")

	ErrUnknownMode = errors.New("search: unknown mode")
)

// Searcher finds the smallest and the largest palindromic products of a range.
//
// A nil result with a nil error is the empty result.
// [palindromes.ErrOutOfRange] is returned before any work is done if the range is too large.
type Searcher interface {
	Search(ctx context.Context, min, max uint64) (*types.Result, error)
}

// New creates the searcher selected by [configs.SearchConfig.Mode].
func New(conf configs.SearchConfig, logger logging.Logger) (Searcher, error) {
	logger = logging.OrNoOps(logger)

	switch conf.Mode {
	case configs.SearchModeSequential, "":
		return &Sequential{timeout: conf.Timeout, logger: logger}, nil
	case configs.SearchModeParallel:
		return &Parallel{workers: workers(conf.Workers), timeout: conf.Timeout, logger: logger}, nil
	case configs.SearchModePipeline:
		return &Pipeline{workers: workers(conf.Workers), timeout: conf.Timeout, logger: logger}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, conf.Mode)
	}
}

func workers(n int) int {
	if n < 1 {
		return runtime.NumCPU()
	}
	return n
}

// withTimeout derives the search context, the returned cancel func must be called.
func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeoutCause(ctx, timeout, ErrTimeout)
}

// searchErr translates the error of a search that ran with the derived searchCtx.
// The caller's cancellation is returned as is, the own timeout becomes [ErrTimeout].
func searchErr(ctx, searchCtx context.Context, err error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if errors.Is(context.Cause(searchCtx), ErrTimeout) {
		return ErrTimeout
	}
	return err
}

func logStart(logger logging.Logger, mode string, min, max uint64) {
	logger.Debug(mode + " search of [" + strconv.FormatUint(min, 10) + ", " + strconv.FormatUint(max, 10) + "] started, " +
		"factors have up to " + strconv.Itoa(digits.Len(max)) + " digits")
}

func logFinish(logger logging.Logger, mode string, res *types.Result, started time.Time) {
	took := time.Since(started).String()
	if res == nil {
		logger.Debug(mode + " search finished in " + took + ": no palindromic products")
		return
	}
	logger.Debug(mode + " search finished in " + took + ": min " + strconv.FormatUint(res.Min.Value(), 10) +
		", max " + strconv.FormatUint(res.Max.Value(), 10))
}

// Sequential searches in the calling goroutine.
type Sequential struct {
	timeout time.Duration
	logger  logging.Logger
}

func (s *Sequential) Search(ctx context.Context, min, max uint64) (*types.Result, error) {
	if err := palindromes.CheckRange(min, max); err != nil {
		return nil, err
	}
	searchCtx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	started := time.Now()
	logStart(s.logger, configs.SearchModeSequential, min, max)

	res, err := palindromes.ProductsContext(searchCtx, min, max)
	if err != nil {
		err = searchErr(ctx, searchCtx, err)
		s.logger.Warn(configs.SearchModeSequential+" search failed", err)
		return nil, err
	}

	logFinish(s.logger, configs.SearchModeSequential, res, started)
	return res, nil
}

// Parallel shards the pairs across a fixed number of goroutines.
type Parallel struct {
	workers int
	timeout time.Duration
	logger  logging.Logger
}

func (s *Parallel) Search(ctx context.Context, min, max uint64) (*types.Result, error) {
	if err := palindromes.CheckRange(min, max); err != nil {
		return nil, err
	}
	searchCtx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	started := time.Now()
	logStart(s.logger, configs.SearchModeParallel, min, max)

	res, err := palindromes.ProductsParallel(searchCtx, min, max, s.workers)
	if err != nil {
		err = searchErr(ctx, searchCtx, err)
		s.logger.Warn(configs.SearchModeParallel+" search failed", err)
		return nil, err
	}

	logFinish(s.logger, configs.SearchModeParallel, res, started)
	return res, nil
}
