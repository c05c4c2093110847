// Package communications carries load events out to people: it implements
// the lifecycle Notifier over kafka, bridges those events into RabbitMQ job
// queues, and runs the sms/email workers that drain them.
package communications

import (
	"context"

	"github.com/DEEDAVISINC/FLEETFLOW-SK-sub015/pkg/kafka"
	"github.com/DEEDAVISINC/FLEETFLOW-SK-sub015/shared/contracts"
)

// KafkaNotifier implements the lifecycle Notifier contract by publishing
// notification events onto the load event stream. Delivery to actual phones
// and inboxes happens in the workers downstream.
type KafkaNotifier struct {
	producer kafka.Publisher
}

func NewKafkaNotifier(producer kafka.Publisher) *KafkaNotifier {
	return &KafkaNotifier{producer: producer}
}

func (n *KafkaNotifier) LoadStatusChanged(ctx context.Context, loadID string, oldStatus, newStatus contracts.LoadStatus, data map[string]string) error {
	return n.producer.Publish(ctx, loadID, map[string]interface{}{
		"event": "notification.status_changed",
		"payload": map[string]interface{}{
			"loadId":    loadID,
			"oldStatus": oldStatus,
			"newStatus": newStatus,
			"data":      data,
		},
	})
}

func (n *KafkaNotifier) DriverEvent(ctx context.Context, loadID, eventType string, data map[string]string) error {
	return n.producer.Publish(ctx, loadID, map[string]interface{}{
		"event": "notification.driver_event",
		"payload": map[string]interface{}{
			"loadId":    loadID,
			"eventType": eventType,
			"data":      data,
		},
	})
}

func (n *KafkaNotifier) CustomerInquiry(ctx context.Context, customerID, inquiryType string, data map[string]string) error {
	return n.producer.Publish(ctx, customerID, map[string]interface{}{
		"event": "notification.customer_inquiry",
		"payload": map[string]interface{}{
			"customerId":  customerID,
			"inquiryType": inquiryType,
			"data":        data,
		},
	})
}
