// Package kafka publishes transaction matches to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gabapcia/nodewatch/internal/txscan"

	"github.com/segmentio/kafka-go"
)

// DefaultTopic receives matches when no topic is configured.
const DefaultTopic = "nodewatch.transactions"

// messageWriter is the part of *kafka.Writer the notifier uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type notifier struct {
	writer messageWriter
}

var _ txscan.MatchNotifier = (*notifier)(nil)

// newMessage encodes m as JSON keyed by transaction hash, so retries of the
// same transaction land on the same partition.
func newMessage(m txscan.TransactionMatch) (kafka.Message, error) {
	payload, err := json.Marshal(m)
	if err != nil {
		return kafka.Message{}, err
	}

	return kafka.Message{
		Key:   []byte(m.Hash),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "account", Value: []byte(m.Account)},
		},
	}, nil
}

// NotifyMatch blocks until the brokers acknowledge the message or ctx is done.
func (n *notifier) NotifyMatch(ctx context.Context, m txscan.TransactionMatch) error {
	msg, err := newMessage(m)
	if err != nil {
		return fmt.Errorf("encode match %s: %w", m.Hash, err)
	}

	if err := n.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka write: %w", err)
	}

	return nil
}

// Close flushes pending messages and closes the writer.
func (n *notifier) Close() error {
	return n.writer.Close()
}

// NewNotifier creates a notifier writing to topic on brokers. An empty topic
// selects DefaultTopic.
func NewNotifier(brokers []string, topic string) *notifier {
	if topic == "" {
		topic = DefaultTopic
	}

	return &notifier{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
			RequiredAcks:           kafka.RequireAll,
			BatchSize:              100,
			BatchTimeout:           10 * time.Millisecond,
		},
	}
}
