package communications

import (
	"context"
	"encoding/json"
	"log"
)

const (
	EmailQueue = "email_jobs"
	SMSQueue   = "sms_jobs"
)

// QueuePublisher is the slice of the RabbitMQ client the bridge needs.
type QueuePublisher interface {
	Publish(ctx context.Context, queueName string, body []byte) error
}

// Bridge translates kafka load events into RabbitMQ notification jobs. It
// returns an error (leaving the kafka offset uncommitted) only when a queue
// publish fails, so broker outages result in redelivery instead of lost
// notifications.
type Bridge struct {
	queues QueuePublisher
}

func NewBridge(queues QueuePublisher) *Bridge {
	return &Bridge{queues: queues}
}

// eventEnvelope matches the {event, payload} shape every producer in the
// system publishes.
type eventEnvelope struct {
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
}

// Handle processes one kafka message from the load event stream.
func (b *Bridge) Handle(ctx context.Context, key, value []byte) error {
	var event eventEnvelope
	if err := json.Unmarshal(value, &event); err != nil {
		log.Printf("bridge: failed to unmarshal kafka message: %v", err)
		return nil
	}

	switch event.Event {
	case "load.assigned":
		// The assigned dispatcher/driver gets a text.
		return b.enqueue(ctx, SMSQueue, "assignment_alert", event.Payload)
	case "notification.status_changed":
		// Status changes fan to both channels: a text for the field, an
		// email for the office.
		if err := b.enqueue(ctx, SMSQueue, "status_alert", event.Payload); err != nil {
			return err
		}
		return b.enqueue(ctx, EmailQueue, "status_email", event.Payload)
	case "notification.driver_event":
		return b.enqueue(ctx, SMSQueue, "driver_alert", event.Payload)
	case "notification.customer_inquiry":
		return b.enqueue(ctx, EmailQueue, "inquiry_email", event.Payload)
	default:
		// load.created, load.updated and the rest need no human ping.
		return nil
	}
}

func (b *Bridge) enqueue(ctx context.Context, queue, jobType string, payload json.RawMessage) error {
	job := map[string]interface{}{
		"type":    jobType,
		"payload": payload,
	}
	body, err := json.Marshal(job)
	if err != nil {
		log.Printf("bridge: failed to marshal %s job: %v", jobType, err)
		return nil
	}
	if err := b.queues.Publish(ctx, queue, body); err != nil {
		log.Printf("bridge: failed to publish %s job: %v", jobType, err)
		return err
	}
	return nil
}
