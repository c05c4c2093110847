package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	skafka "github.com/segmentio/kafka-go"
)

// fakeWriter is a test writer that records messages written.
type fakeWriter struct {
	msgs []skafka.Message
	err  error
}

func (f *fakeWriter) WriteMessages(ctx context.Context, msgs ...skafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error { return nil }

func TestPublish(t *testing.T) {
	fw := &fakeWriter{}
	p := NewKafkaProducerWithWriter(fw)

	event := map[string]string{"event": "load.created", "id": "FF-ATL-MIA-V-00042"}
	if err := p.Publish(context.Background(), "FF-ATL-MIA-V-00042", event); err != nil {
		t.Fatalf("publish failed: %v", err)
	}
	if len(fw.msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(fw.msgs))
	}
	if string(fw.msgs[0].Key) != "FF-ATL-MIA-V-00042" {
		t.Errorf("unexpected key %q", fw.msgs[0].Key)
	}

	var decoded map[string]string
	if err := json.Unmarshal(fw.msgs[0].Value, &decoded); err != nil {
		t.Fatalf("payload is not valid JSON: %v", err)
	}
	if decoded["event"] != "load.created" {
		t.Errorf("expected event load.created, got %q", decoded["event"])
	}
}

func TestPublishMarshalError(t *testing.T) {
	fw := &fakeWriter{}
	p := NewKafkaProducerWithWriter(fw)

	// Channels cannot be marshalled to JSON.
	if err := p.Publish(context.Background(), "k", make(chan int)); err == nil {
		t.Fatal("expected marshal error, got nil")
	}
	if len(fw.msgs) != 0 {
		t.Errorf("no message should be written on marshal failure")
	}
}

func TestPublishWriteError(t *testing.T) {
	fw := &fakeWriter{err: errors.New("broker down")}
	p := NewKafkaProducerWithWriter(fw)

	if err := p.Publish(context.Background(), "k", "v"); err == nil {
		t.Fatal("expected write error, got nil")
	}
}
