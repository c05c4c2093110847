package kafka

import (
	"context"
	"log"
	"time"

	skafka "github.com/segmentio/kafka-go"
)

// Consumer wraps a kafka reader bound to one topic and consumer group.
type Consumer struct {
	reader *skafka.Reader
}

// Handler processes a single fetched message. Returning an error leaves the
// offset uncommitted so the message is redelivered.
type Handler func(ctx context.Context, key []byte, value []byte) error

// NewConsumer creates a consumer for the given topic. The groupID splits work
// between running copies of the same service instead of duplicating it.
func NewConsumer(brokers []string, topic string, groupID string) *Consumer {
	return &Consumer{
		reader: skafka.NewReader(skafka.ReaderConfig{
			Brokers:  brokers,
			Topic:    topic,
			GroupID:  groupID,
			MinBytes: 10e3, // 10KB
			MaxBytes: 10e6, // 10MB
		}),
	}
}

// Start consumes messages until ctx is cancelled, invoking handler for each.
// Offsets are committed only after the handler succeeds, so a downstream
// outage results in redelivery rather than message loss.
func (c *Consumer) Start(ctx context.Context, handler Handler) {
	log.Printf("kafka consumer started. topic=%s group=%s",
		c.reader.Config().Topic, c.reader.Config().GroupID)

	for {
		if ctx.Err() != nil {
			return
		}

		m, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("error fetching message: %v", err)
			time.Sleep(time.Second)
			continue
		}

		// Bound each message so a stuck handler cannot stall the partition
		// forever.
		processCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		err = handler(processCtx, m.Key, m.Value)
		cancel()

		if err != nil {
			log.Printf("processing failed (offset %d): %v", m.Offset, err)
			// Leave the offset uncommitted; kafka redelivers shortly.
			continue
		}

		if err := c.reader.CommitMessages(ctx, m); err != nil {
			log.Printf("failed to commit offset: %v", err)
		}
	}
}

// Close disconnects from the broker.
func (c *Consumer) Close() error {
	return c.reader.Close()
}
