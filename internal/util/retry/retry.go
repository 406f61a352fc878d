package retry

import (
	"context"
	"errors"
	"fmt"
	"time"
)

type policy struct {
	retries  int
	delay    time.Duration
	maxDelay time.Duration
	onRetry  func(attempt int, err error)
}

// Option adjusts the retry policy.
type Option func(*policy)

// Do calls op until it succeeds, returns a Fatal error, ctx ends, or the
// retries are used up. The wait before each retry doubles, capped by the
// max delay. Defaults: 3 retries, 1s initial delay, 30s max delay.
func Do(ctx context.Context, op func() error, opts ...Option) error {
	p := policy{retries: 3, delay: time.Second, maxDelay: 30 * time.Second}
	for _, opt := range opts {
		opt(&p)
	}

	wait := p.delay
	for attempt := 1; ; attempt++ {
		err := op()
		switch {
		case err == nil:
			return nil
		case IsFatal(err):
			return err
		case attempt > p.retries:
			return fmt.Errorf("giving up after %d attempts: %w", attempt, err)
		}

		if p.onRetry != nil {
			p.onRetry(attempt, err)
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("canceled after %d attempts: %w", attempt, errors.Join(ctx.Err(), err))
		case <-timer.C:
		}
		wait = min(2*wait, p.maxDelay)
	}
}

// WithMaxRetries sets how many times a failed call is repeated.
func WithMaxRetries(n int) Option {
	return func(p *policy) { p.retries = max(n, 0) }
}

// WithInitialDelay sets the wait before the first retry.
func WithInitialDelay(d time.Duration) Option {
	return func(p *policy) { p.delay = d }
}

// WithMaxDelay caps the wait between retries.
func WithMaxDelay(d time.Duration) Option {
	return func(p *policy) { p.maxDelay = d }
}

// WithOnRetry calls fn after each failed attempt that will be retried.
func WithOnRetry(fn func(attempt int, err error)) Option {
	return func(p *policy) { p.onRetry = fn }
}

// FatalError marks an error that retrying cannot fix.
type FatalError struct {
	Err error
}

func (e *FatalError) Error() string { return e.Err.Error() }

func (e *FatalError) Unwrap() error { return e.Err }

// Fatal wraps err so that Do returns it without retrying. Fatal(nil) is nil.
func Fatal(err error) error {
	if err == nil {
		return nil
	}
	return &FatalError{Err: err}
}

// IsFatal reports whether err carries a FatalError.
func IsFatal(err error) bool {
	var fe *FatalError
	return errors.As(err, &fe)
}
