package starsays

import (
	"context"
	"errors"
	"time"
)

// Policy controls the retry schedule for a remote call. The zero value
// means a single attempt with no delay. Policies are cheap value types;
// build one per call chain, never share mutable state through them.
type Policy struct {
	// MaxAttempts is the number of retries after the first attempt, so an
	// always-failing operation is invoked 1+MaxAttempts times.
	MaxAttempts int
	// InitialDelay is the pause before the first retry.
	InitialDelay time.Duration
	// Multiplier scales the delay after every retry. Values below 1 are
	// treated as 1 (constant delay).
	Multiplier float64
}

// TerminalError marks a failure that retrying cannot fix: missing
// credentials, rejected requests, unparseable model output. Do surfaces
// these immediately without consuming the attempt budget.
type TerminalError struct {
	Err error
}

func (e *TerminalError) Error() string { return e.Err.Error() }
func (e *TerminalError) Unwrap() error { return e.Err }

// Terminal wraps err so IsTerminal reports true for it. A nil err stays nil.
func Terminal(err error) error {
	if err == nil {
		return nil
	}
	return &TerminalError{Err: err}
}

// IsTerminal reports whether err (anywhere in its chain) is terminal.
func IsTerminal(err error) bool {
	var te *TerminalError
	return errors.As(err, &te)
}

// Do invokes op, retrying transient failures per pol with exponential
// backoff. The final failure is returned unchanged once the attempt
// budget is exhausted. An explicit loop, not recursion, so pathological
// policies cannot grow the stack. Context cancellation aborts the backoff
// sleep and wins over whatever op last returned.
func Do[T any](ctx context.Context, pol Policy, log Logger, op func(context.Context) (T, error)) (T, error) {
	var zero T

	delay := pol.InitialDelay
	mult := pol.Multiplier
	if mult < 1 {
		mult = 1
	}

	for attempt := 0; ; attempt++ {
		v, err := op(ctx)
		if err == nil {
			return v, nil
		}
		if IsTerminal(err) {
			return zero, err
		}
		if ctx.Err() != nil {
			return zero, ctx.Err()
		}
		if attempt >= pol.MaxAttempts {
			return zero, err
		}

		log.Warn("remote call failed, retrying", Fields{
			"attempt": attempt + 1,
			"max":     pol.MaxAttempts + 1,
			"delay":   delay.String(),
			"err":     err,
		})

		if delay > 0 {
			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return zero, ctx.Err()
			case <-timer.C:
			}
		}
		delay = time.Duration(float64(delay) * mult)
	}
}
