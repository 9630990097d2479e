// Package retry implements the bounded retry policy wrapping the
// install-and-persist sequence. The policy is an explicit value
// parameterized by attempt count, backoff, and an error classifier so tests
// can drive it with a fake clock instead of real delays.
package retry

import "time"

// DefaultMaxAttempts is the total number of attempts for transient failures.
const DefaultMaxAttempts = 3

// Policy retries an operation on retryable failures with backoff between
// attempts. Non-retryable failures propagate immediately.
type Policy struct {
	// MaxAttempts is the total attempt budget, including the first try.
	MaxAttempts int
	// Retryable decides whether a failure is worth another attempt.
	Retryable func(error) bool
	// Backoff returns the delay after the given attempt (counted from 1).
	Backoff func(attempt int) time.Duration
	// Sleep suspends between attempts; nil means time.Sleep.
	Sleep func(time.Duration)
}

// New returns a policy with the default attempt budget and exponential
// backoff, using retryable to classify failures.
func New(retryable func(error) bool) Policy {
	return Policy{
		MaxAttempts: DefaultMaxAttempts,
		Retryable:   retryable,
		Backoff:     ExponentialBackoff,
	}
}

// ExponentialBackoff returns 2^attempt seconds for attempt counted from 1.
func ExponentialBackoff(attempt int) time.Duration {
	return time.Duration(1<<uint(attempt)) * time.Second
}

// Do runs op until it succeeds, fails permanently, or exhausts the attempt
// budget. After exhaustion the last observed error is returned.
func (p Policy) Do(op func() error) error {
	sleep := p.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	var err error
	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		err = op()
		if err == nil {
			return nil
		}
		if p.Retryable == nil || !p.Retryable(err) {
			return err
		}
		if attempt < p.MaxAttempts {
			sleep(p.Backoff(attempt))
		}
	}
	return err
}
