// Package retry runs operations with exponential backoff on top of
// avast/retry-go. nodewatch uses it around single block fetches and the
// chain-head query, where the transport-level retries of the HTTP client
// are not enough to ride out a node restart.
package retry

import (
	"context"
	"time"

	retry "github.com/avast/retry-go/v4"
)

// Retry executes an operation until it succeeds, the attempts run out or ctx is done.
type Retry interface {
	// Execute runs operation at least once. It returns nil on the first
	// success, otherwise the last error seen (or the context error).
	Execute(ctx context.Context, operation func() error) error
}

// OnRetryFunc is invoked after a failed attempt that will be retried.
// attempt is zero-based.
type OnRetryFunc func(attempt uint, err error)

type config struct {
	attempts uint
	delay    time.Duration
	maxDelay time.Duration
	onRetry  OnRetryFunc
}

// Option configures a Retry.
type Option func(*config)

type retrier struct {
	cfg config
}

var _ Retry = (*retrier)(nil)

// New returns a Retry with exponential backoff.
//
// Defaults: 3 attempts, 1s base delay, 5s max delay.
func New(opts ...Option) Retry {
	cfg := config{
		attempts: 3,
		delay:    1 * time.Second,
		maxDelay: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &retrier{
		cfg: cfg,
	}
}

func (r *retrier) Execute(ctx context.Context, operation func() error) error {
	options := []retry.Option{
		retry.Attempts(r.cfg.attempts),
		retry.Delay(r.cfg.delay),
		retry.MaxDelay(r.cfg.maxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.Context(ctx),
	}
	if r.cfg.onRetry != nil {
		options = append(options, retry.OnRetry(retry.OnRetryFunc(r.cfg.onRetry)))
	}

	return retry.Do(operation, options...)
}

// WithAttempts sets the total number of attempts, including the first one.
// A value of 1 disables retrying.
func WithAttempts(n uint) Option {
	return func(c *config) {
		c.attempts = n
	}
}

// WithDelay sets the base backoff delay.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithMaxDelay caps the backoff delay.
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) {
		c.maxDelay = d
	}
}

// WithOnRetry registers a callback for failed attempts, typically to log them.
func WithOnRetry(f OnRetryFunc) Option {
	return func(c *config) {
		c.onRetry = f
	}
}
