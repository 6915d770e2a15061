package chflow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReceive(t *testing.T) {
	t.Run("returns a buffered value", func(t *testing.T) {
		ch := make(chan uint64, 1)
		ch <- 101

		value, ok := Receive(t.Context(), ch)

		assert.True(t, ok)
		assert.Equal(t, uint64(101), value)
	})

	t.Run("closed channel", func(t *testing.T) {
		ch := make(chan string)
		close(ch)

		value, ok := Receive(t.Context(), ch)

		assert.False(t, ok)
		assert.Empty(t, value)
	})

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		value, ok := Receive(ctx, make(chan int))

		assert.False(t, ok)
		assert.Zero(t, value)
	})
}

func TestSend(t *testing.T) {
	t.Run("delivers to a ready receiver", func(t *testing.T) {
		ch := make(chan []string)
		received := make(chan []string)
		go func() {
			v, _ := Receive(t.Context(), ch)
			received <- v
		}()

		assert.True(t, Send(t.Context(), ch, []string{"a", "b"}))
		assert.Equal(t, []string{"a", "b"}, <-received)
	})

	t.Run("canceled context drops the value", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		ch := make(chan int)
		assert.False(t, Send(ctx, ch, 42))

		select {
		case <-ch:
			t.Fatal("value was delivered after cancellation")
		default:
		}
	})
}
