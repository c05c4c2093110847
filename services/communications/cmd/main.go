// communications/cmd/main.go
package main

import (
	"context"
	"log"
	"os/signal"
	"sync"
	"syscall"

	pkgkafka "github.com/DEEDAVISINC/FLEETFLOW-SK-sub015/pkg/kafka"
	"github.com/DEEDAVISINC/FLEETFLOW-SK-sub015/services/communications"
	"github.com/DEEDAVISINC/FLEETFLOW-SK-sub015/shared/config"
	"github.com/DEEDAVISINC/FLEETFLOW-SK-sub015/shared/rabbitmq"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	cfg := config.LoadCommonConfig()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rabbitClient, err := rabbitmq.NewClient(cfg.GetRabbitMQURL())
	if err != nil {
		log.Fatalf("failed to connect to rabbitmq: %v", err)
	}
	defer rabbitClient.Close()

	if err := rabbitClient.CreateQueue(communications.EmailQueue); err != nil {
		log.Fatalf("failed to create email queue: %v", err)
	}
	if err := rabbitClient.CreateQueue(communications.SMSQueue); err != nil {
		log.Fatalf("failed to create sms queue: %v", err)
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go communications.StartEmailWorker(ctx, rabbitClient, &wg)
	go communications.StartSMSWorker(ctx, rabbitClient, &wg)

	// Load events and notifications come in over kafka and fan out to the
	// rabbit job queues the workers drain.
	bridge := communications.NewBridge(rabbitClient)
	consumer := pkgkafka.NewConsumer(
		[]string{cfg.KAFKA_BROKER}, cfg.KAFKA_LOAD_TOPIC, "communications-bridge")
	defer consumer.Close()

	wg.Add(1)
	go func() {
		defer wg.Done()
		consumer.Start(ctx, bridge.Handle)
	}()

	log.Println("communications service running")
	<-ctx.Done()
	log.Println("shutdown signal received, draining workers")
	wg.Wait()
	log.Println("communications service shutdown complete")
}
