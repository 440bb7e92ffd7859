package types

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"golang.org/x/sync/semaphore"
)

var ErrFutureTimeout = errors.New("future: timeout")

// Future is a value that will be available once an asynchronous search finishes.
//
// The creation and completion of the future is done internally by the async aggregation, the user only obtains the value.
// There are two ways to do that:
// 1. [Future.Get] blocks until the value is available or the provided context is done.
// 2. [Future.GetWithTimeout] blocks until the value is available or the timeout is reached.
//
// The returned error means that either the computation failed (for example, the pipeline was interrupted),
// or the wait itself was given up.
//
// [Future.IsDone] can be used to check the state without blocking.
type Future[T any] struct {
	sem   *semaphore.Weighted
	done  atomic.Bool
	value T
	err   error
}

// NewFuture creates a new, not yet completed future.
func NewFuture[T any]() *Future[T] {
	sem := semaphore.NewWeighted(1)
	if !sem.TryAcquire(1) {
		// the semaphore is created one line above, so it can't be taken
		panic("future: fresh semaphore is already acquired")
	}

	return &Future[T]{
		sem: sem,
	}
}

// Get blocks until the future is completed or ctx is done.
// If ctx is done first, ctx.Err() is returned.
func (f *Future[T]) Get(ctx context.Context) (T, error) {
	if !f.done.Load() {
		if err := f.sem.Acquire(ctx, 1); err != nil {
			var zero T
			return zero, err
		}
		// let the other waiters through as well
		f.sem.Release(1)
	}
	return f.value, f.err
}

// GetWithTimeout blocks until the future is completed or the timeout is reached.
// On timeout [ErrFutureTimeout] is returned.
func (f *Future[T]) GetWithTimeout(timeout time.Duration) (T, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	value, err := f.Get(ctx)
	if err != nil && errors.Is(err, context.DeadlineExceeded) && !f.done.Load() {
		return value, ErrFutureTimeout
	}
	return value, err
}

// IsDone reports whether the future is completed. It never blocks.
func (f *Future[T]) IsDone() bool {
	return f.done.Load()
}

// Complete completes the future with the provided value.
func (f *Future[T]) Complete(value T) {
	f.value = value
	f.done.Store(true)
	f.sem.Release(1)
}

// Fail completes the future with the provided error.
func (f *Future[T]) Fail(err error) {
	f.err = err
	f.done.Store(true)
	f.sem.Release(1)
}
