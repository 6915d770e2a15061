// Package chflow holds channel helpers that give up as soon as a context is done.
package chflow

import "context"

// Receive waits for a value on ch or for ctx to be done, whichever comes first.
// ok is false if ctx was done or ch was closed; the value is then T's zero value.
func Receive[T any](ctx context.Context, ch <-chan T) (value T, ok bool) {
	select {
	case <-ctx.Done():
		return value, false
	case value, ok = <-ch:
		return value, ok
	}
}

// Send delivers data on ch unless ctx is done first. It reports whether the
// value was delivered.
func Send[T any](ctx context.Context, ch chan<- T, data T) bool {
	select {
	case <-ctx.Done():
		return false
	case ch <- data:
		return true
	}
}
