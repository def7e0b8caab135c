package pathkit

import (
	"context"
	"fmt"
	"time"
)

// Condition reports whether an awaited external state has been reached,
// e.g. "does object X now appear in listings". It captures whatever it
// needs and takes no arguments.
type Condition func() bool

// WaitUntil polls cond until it reports true, sleeping interval between
// evaluations, for at most maxAttempts evaluations in total. A true
// result on the first evaluation returns immediately with no sleep.
// Exhausting the attempt budget is a normal outcome and returns
// (false, nil); callers decide whether that is fatal.
//
// A nil cond or a non-positive attempt budget fails with
// ErrInvalidCondition before any polling happens. The sleep honors ctx
// cancellation.
//
// Object-store writes are not always immediately visible to subsequent
// listings; WaitUntil decouples waiting for that eventual consistency
// from any one backend's semantics.
func WaitUntil(ctx context.Context, cond Condition, interval time.Duration, maxAttempts int) (bool, error) {
	if cond == nil {
		return false, fmt.Errorf("%w: condition must be callable", ErrInvalidCondition)
	}
	if maxAttempts < 1 {
		return false, fmt.Errorf("%w: maxAttempts must be at least 1, got %d", ErrInvalidCondition, maxAttempts)
	}

	for attempt := 1; ; attempt++ {
		if cond() {
			return true, nil
		}
		if attempt >= maxAttempts {
			return false, nil
		}
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-time.After(interval):
		}
	}
}

func secondsToDuration(s int) time.Duration {
	return time.Duration(s) * time.Second
}
