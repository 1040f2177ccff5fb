package pagecheck

import (
	"errors"
	"fmt"
	"runtime"
	"testing"
	"time"
)

// A Condition reports whether the awaited state has been reached.
// It may block, for example while querying the browser. A non-nil error
// stops polling immediately.
type Condition func() (bool, error)

// Check adapts a predicate that cannot fail to a Condition.
func Check(f func() bool) Condition {
	return func() (bool, error) {
		return f(), nil
	}
}

// Poll evaluates cond until it returns true or the timeout elapses.
//
// The condition is always evaluated at least once. After each false result
// Poll compares the time elapsed since the first evaluation with the
// timeout; once it is reached Poll returns ErrTimeoutExceeded, otherwise it
// sleeps for the poll interval and tries again. There is no limit on how
// long a single evaluation may take.
//
// Defaults: 5s timeout, 100ms poll interval.
func Poll(cond Condition, wopts ...WaitOption) error {
	wo := resolveWait(defaultTimeout, defaultPollInterval, nil, wopts)
	return poll(cond, wo)
}

func poll(cond Condition, wo waitOptions) error {
	if wo.timeout < 0 {
		return &Error{Op: "poll", Err: fmt.Errorf("%w: timeout %v", ErrNegativeDuration, wo.timeout)}
	}
	if wo.pollInterval < 0 {
		return &Error{Op: "poll", Err: fmt.Errorf("%w: poll interval %v", ErrNegativeDuration, wo.pollInterval)}
	}

	start := time.Now()
	attempts := 0
	for {
		attempts++
		ok, err := cond()
		if err != nil {
			wo.logger.Debug("condition failed", "attempt", attempts, "err", err)
			return &Error{Op: "poll", Err: fmt.Errorf("condition: %w", err)}
		}
		if ok {
			return nil
		}

		if time.Since(start) >= wo.timeout {
			wo.logger.Debug("condition timed out",
				"timeout", wo.timeout, "interval", wo.pollInterval, "attempts", attempts)
			return ErrTimeoutExceeded
		}

		if wo.pollInterval > 0 {
			time.Sleep(wo.pollInterval)
		} else {
			runtime.Gosched()
		}
	}
}

// WaitFor polls cond like Poll and calls t.Fatal if it times out or fails.
func WaitFor(t testing.TB, cond Condition, wopts ...WaitOption) {
	t.Helper()
	wo := resolveWait(defaultTimeout, defaultPollInterval, nil, wopts)
	waitFor(t, cond, wo)
}

func waitFor(t testing.TB, cond Condition, wo waitOptions) {
	t.Helper()
	if err := poll(cond, wo); err != nil {
		if errors.Is(err, ErrTimeoutExceeded) {
			t.Fatalf("pagecheck: wait-for: timed out after %v (poll interval %v)", wo.timeout, wo.pollInterval)
		}
		t.Fatalf("%v", err)
	}
}
