package communications

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/DEEDAVISINC/FLEETFLOW-SK-sub015/shared/rabbitmq"
)

// StartEmailWorker drains the email job queue until ctx is cancelled.
// Messages are acked only after the (simulated) provider send.
func StartEmailWorker(ctx context.Context, client *rabbitmq.RabbitmqClient, wg *sync.WaitGroup) {
	defer wg.Done()

	msgs, err := client.Consume(EmailQueue)
	if err != nil {
		log.Printf("email worker: failed to start consuming: %v", err)
		return
	}
	for {
		select {
		case <-ctx.Done():
			log.Println("email worker: shutting down")
			return
		case d, ok := <-msgs:
			if !ok {
				return
			}
			log.Printf("email worker: sending job: %s", string(d.Body))

			// Placeholder for the provider call (SendGrid et al).
			time.Sleep(500 * time.Millisecond)

			if err := d.Ack(false); err != nil {
				log.Printf("email worker: failed to ack: %v", err)
			}
		}
	}
}

// StartSMSWorker drains the sms job queue until ctx is cancelled.
func StartSMSWorker(ctx context.Context, client *rabbitmq.RabbitmqClient, wg *sync.WaitGroup) {
	defer wg.Done()

	msgs, err := client.Consume(SMSQueue)
	if err != nil {
		log.Printf("sms worker: failed to start consuming: %v", err)
		return
	}
	for {
		select {
		case <-ctx.Done():
			log.Println("sms worker: shutting down")
			return
		case d, ok := <-msgs:
			if !ok {
				return
			}
			log.Printf("sms worker: sending job: %s", string(d.Body))

			if err := d.Ack(false); err != nil {
				log.Printf("sms worker: failed to ack: %v", err)
			}
		}
	}
}
