package ratelimiter

import "context"

// RateLimiter is a simple limiter that uses a buffered channel with defined size to limit the number of concurrent goroutines.
// It limits the workers of a pipeline stage and the concurrent searches of the HTTP server.
type RateLimiter struct {
	ch  chan struct{}
	max int
}

// AcquireSafely acquires a resource from the rate limiter.
// The function is safe to call with a nil rate limiter.
func AcquireSafely(rl *RateLimiter) {
	if rl != nil {
		rl.Acquire()
	}
}

// AcquireContextSafely acquires a resource from the rate limiter, giving up once ctx is done.
// The function is safe to call with a nil rate limiter, it never blocks then.
func AcquireContextSafely(ctx context.Context, rl *RateLimiter) error {
	if rl == nil {
		return ctx.Err()
	}
	return rl.AcquireContext(ctx)
}

// ReleaseSafely releases a resource from the rate limiter.
// The function is safe to call with a nil rate limiter.
func ReleaseSafely(rl *RateLimiter) {
	if rl != nil {
		rl.Release()
	}
}

// CloseSafely closes the rate limiter.
// The function is safe to call with a nil rate limiter.
func CloseSafely(rl *RateLimiter) {
	if rl != nil {
		rl.Close()
	}
}

// NewRateLimiter creates a new rate limiter with the given max number of goroutines.
// It returns nil for max <= 0, which means no limit for all the *Safely functions.
func NewRateLimiter(max int) *RateLimiter {
	if max <= 0 {
		return nil
	}
	return &RateLimiter{
		ch:  make(chan struct{}, max),
		max: max,
	}
}

// Copy creates a copy of the given rate limiter.
// The "copy" means that the new rate limiter will have the same max number of goroutines, but its own channel.
func Copy(rateLimiter *RateLimiter) *RateLimiter {
	if rateLimiter == nil {
		return nil
	}
	return NewRateLimiter(rateLimiter.max)
}

// Max returns the max number of concurrent holders.
func (r *RateLimiter) Max() int {
	return r.max
}

// InUse returns the number of currently acquired resources.
func (r *RateLimiter) InUse() int {
	return len(r.ch)
}

// Acquire acquires a resource from the rate limiter.
// If the rate limiter is full, the function blocks until a resource is released.
// Use [RateLimiter.Release] to release a resource.
func (r *RateLimiter) Acquire() {
	r.ch <- struct{}{}
}

// AcquireContext is [RateLimiter.Acquire] that gives up once ctx is done.
func (r *RateLimiter) AcquireContext(ctx context.Context) error {
	select {
	case r.ch <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Release releases a resource from the rate limiter.
// If the rate limiter is empty, the function blocks until a resource is acquired,
// which means that Release was called more times than Acquire.
func (r *RateLimiter) Release() {
	<-r.ch
}

// Close closes the rate limiter.
// No resource can be acquired after that.
func (r *RateLimiter) Close() error {
	close(r.ch)
	return nil
}
