package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"math/big"
	"testing"

	"github.com/gabapcia/nodewatch/internal/txscan"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func sampleMatch() txscan.TransactionMatch {
	return txscan.TransactionMatch{
		Account:     "0x71C7656EC7ab88b098defB751B7401B5f6d8976F",
		BlockNumber: 100,
		Hash:        "0xa1",
		From:        "0x71c7656ec7ab88b098defb751b7401b5f6d8976f",
		To:          "0x1111111111111111111111111111111111111111",
		Value:       decimal.RequireFromString("1.5"),
		ValueWei:    big.NewInt(1_500_000_000_000_000_000),
		Gas:         21000,
		GasPrice:    decimal.RequireFromString("20"),
		GasPriceWei: big.NewInt(20_000_000_000),
	}
}

func TestNotifier_NotifyMatch(t *testing.T) {
	t.Run("writes one message keyed by hash", func(t *testing.T) {
		w := &fakeWriter{}
		n := &notifier{writer: w}

		require.NoError(t, n.NotifyMatch(t.Context(), sampleMatch()))
		require.Len(t, w.messages, 1)

		msg := w.messages[0]
		assert.Equal(t, "0xa1", string(msg.Key))
		assert.Equal(t, []kafka.Header{{Key: "account", Value: []byte("0x71C7656EC7ab88b098defB751B7401B5f6d8976F")}}, msg.Headers)

		var payload map[string]any
		require.NoError(t, json.Unmarshal(msg.Value, &payload))
		assert.Equal(t, "1.5", payload["value"])
		assert.Equal(t, "20", payload["gasPrice"])
		assert.EqualValues(t, 100, payload["blockNumber"])
		assert.EqualValues(t, 1.5e18, payload["valueWei"])
	})

	t.Run("wraps writer errors", func(t *testing.T) {
		brokerErr := errors.New("dial tcp 127.0.0.1:9092: connect: connection refused")
		n := &notifier{writer: &fakeWriter{err: brokerErr}}

		err := n.NotifyMatch(t.Context(), sampleMatch())

		assert.ErrorIs(t, err, brokerErr)
		assert.ErrorContains(t, err, "kafka write")
	})
}

func TestNotifier_Close(t *testing.T) {
	w := &fakeWriter{}
	n := &notifier{writer: w}

	require.NoError(t, n.Close())
	assert.True(t, w.closed)
}

func TestNewNotifier(t *testing.T) {
	t.Run("defaults the topic", func(t *testing.T) {
		n := NewNotifier([]string{"localhost:9092"}, "")

		w, ok := n.writer.(*kafka.Writer)
		require.True(t, ok)
		assert.Equal(t, DefaultTopic, w.Topic)
		assert.Equal(t, "localhost:9092", w.Addr.String())
	})

	t.Run("keeps an explicit topic", func(t *testing.T) {
		n := NewNotifier([]string{"a:9092", "b:9092"}, "scans")

		w := n.writer.(*kafka.Writer)
		assert.Equal(t, "scans", w.Topic)
	})
}
