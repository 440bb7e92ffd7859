package types

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestFuture_Success_Get(t *testing.T) {
	future := NewFuture[int]()
	if future.IsDone() {
		t.Error("Future should not be completed")
	}

	future.Complete(42)
	if !future.IsDone() {
		t.Error("Future should be completed")
	}

	result, err := future.Get(context.Background())
	if err != nil {
		t.Error("Expected no error, got: ", err)
	}
	if result != 42 {
		t.Error("Expected result 42, got: ", result)
	}
}

func TestFuture_Success_GetTwice(t *testing.T) {
	future := NewFuture[string]()

	go func() {
		future.Complete("done")
	}()

	for i := 0; i < 2; i++ {
		result, err := future.GetWithTimeout(time.Second)
		if err != nil {
			t.Error("Expected no error, got: ", err)
		}
		if result != "done" {
			t.Error("Expected result done, got: ", result)
		}
	}
}

func TestFuture_Failure_GetWithTimeout(t *testing.T) {
	future := NewFuture[int]()

	result, err := future.GetWithTimeout(50 * time.Millisecond)
	if !errors.Is(err, ErrFutureTimeout) {
		t.Error("Expected timeout error, got: ", err)
	}
	if result != 0 {
		t.Error("Expected zero result, got: ", result)
	}

	future.Complete(42)

	result, err = future.GetWithTimeout(time.Second)
	if err != nil {
		t.Error("Expected no error, got: ", err)
	}
	if result != 42 {
		t.Error("Expected result 42, got: ", result)
	}
}

func TestFuture_Failure_ContextCancelled(t *testing.T) {
	future := NewFuture[int]()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := future.Get(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Error("Expected context.Canceled, got: ", err)
	}
}

func TestFuture_Fail(t *testing.T) {
	future := NewFuture[int]()
	failure := errors.New("interrupted")

	future.Fail(failure)

	_, err := future.Get(context.Background())
	if !errors.Is(err, failure) {
		t.Error("Expected failure error, got: ", err)
	}
}
