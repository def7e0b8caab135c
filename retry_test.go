package pathkit

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestWaitUntilEvaluatesExactly(t *testing.T) {
	calls := 0
	ok, err := WaitUntil(context.Background(), func() bool {
		calls++
		return false
	}, time.Millisecond, 3)
	if err != nil {
		t.Fatalf("WaitUntil unexpected error: %v", err)
	}
	if ok {
		t.Error("WaitUntil = true for a never-true condition")
	}
	if calls != 3 {
		t.Errorf("condition evaluated %d times, want 3", calls)
	}
}

func TestWaitUntilImmediateSuccess(t *testing.T) {
	calls := 0
	// An interval this long would hang the test if the first success
	// still slept.
	ok, err := WaitUntil(context.Background(), func() bool {
		calls++
		return true
	}, time.Hour, 5)
	if err != nil {
		t.Fatalf("WaitUntil unexpected error: %v", err)
	}
	if !ok {
		t.Error("WaitUntil = false for an immediately true condition")
	}
	if calls != 1 {
		t.Errorf("condition evaluated %d times, want 1", calls)
	}
}

func TestWaitUntilEventualSuccess(t *testing.T) {
	calls := 0
	ok, err := WaitUntil(context.Background(), func() bool {
		calls++
		return calls == 3
	}, time.Millisecond, 10)
	if err != nil {
		t.Fatalf("WaitUntil unexpected error: %v", err)
	}
	if !ok {
		t.Error("WaitUntil = false, want true on third evaluation")
	}
	if calls != 3 {
		t.Errorf("condition evaluated %d times, want 3", calls)
	}
}

func TestWaitUntilInvalidArguments(t *testing.T) {
	if _, err := WaitUntil(context.Background(), nil, time.Millisecond, 1); !errors.Is(err, ErrInvalidCondition) {
		t.Errorf("nil condition error = %v, want ErrInvalidCondition", err)
	}
	cond := func() bool { return true }
	if _, err := WaitUntil(context.Background(), cond, time.Millisecond, 0); !errors.Is(err, ErrInvalidCondition) {
		t.Errorf("zero attempts error = %v, want ErrInvalidCondition", err)
	}
	if _, err := WaitUntil(context.Background(), cond, time.Millisecond, -1); !errors.Is(err, ErrInvalidCondition) {
		t.Errorf("negative attempts error = %v, want ErrInvalidCondition", err)
	}
}

func TestWaitUntilContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ok, err := WaitUntil(ctx, func() bool { return false }, time.Hour, 10)
	if ok {
		t.Error("WaitUntil = true after context cancellation")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}
