// loadboard/cmd/main.go
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	pkgkafka "github.com/DEEDAVISINC/FLEETFLOW-SK-sub015/pkg/kafka"
	"github.com/DEEDAVISINC/FLEETFLOW-SK-sub015/services/communications"
	"github.com/DEEDAVISINC/FLEETFLOW-SK-sub015/services/loadboard/lifecycle"
	"github.com/DEEDAVISINC/FLEETFLOW-SK-sub015/services/loadboard/store"
	"github.com/DEEDAVISINC/FLEETFLOW-SK-sub015/services/loadboard/sync"
	"github.com/DEEDAVISINC/FLEETFLOW-SK-sub015/services/scheduler"
	schedstore "github.com/DEEDAVISINC/FLEETFLOW-SK-sub015/services/scheduler/store"
	"github.com/DEEDAVISINC/FLEETFLOW-SK-sub015/services/tracking"
	"github.com/DEEDAVISINC/FLEETFLOW-SK-sub015/shared/config"
	"go.temporal.io/sdk/client"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	cfg := config.LoadCommonConfig()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Repository: postgres when configured, in-memory otherwise. The store
	// is the single source of truth; everything below is computed from it.
	var loadStore store.LoadStore
	if cfg.DB_HOST != "" {
		pgStore, err := store.NewPostgresStore(cfg.GetDBURL())
		if err != nil {
			log.Fatalf("failed to create store: %v", err)
		}
		defer pgStore.Close()
		loadStore = pgStore
		log.Println("using postgres load store")
	} else {
		loadStore = store.NewMemoryStore()
		log.Println("using in-memory load store")
	}

	var producer pkgkafka.Publisher
	if cfg.KAFKA_BROKER != "" {
		producer = pkgkafka.NewKafkaProducer(cfg.KAFKA_BROKER, cfg.KAFKA_LOAD_TOPIC)
		defer producer.Close()
		log.Println("connected to kafka at", cfg.KAFKA_BROKER)
	} else {
		log.Println("warning: kafka config missing, load events will not be published")
	}

	engine := sync.NewEngine(sync.StoreSources(loadStore))
	manager := lifecycle.NewManager(loadStore, engine, producer)

	// Scheduling collaborator: Temporal when reachable, in-process planner
	// otherwise. Either way a planner outage never blocks dispatch.
	if temporalClient, err := client.Dial(client.Options{HostPort: cfg.TEMPORAL_HOST_PORT}); err == nil {
		defer temporalClient.Close()
		manager.SetSchedulePlanner(scheduler.NewTemporalPlanner(temporalClient))
		log.Println("connected to temporal at", cfg.TEMPORAL_HOST_PORT)
	} else {
		log.Printf("temporal unavailable (%v), using local schedule planner", err)
		manager.SetSchedulePlanner(scheduler.NewLocalPlanner(schedstore.NewMemoryScheduleStore()))
	}

	if producer != nil {
		manager.SetNotifier(communications.NewKafkaNotifier(producer))
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		engine.Run(ctx)
		return nil
	})

	if cfg.KAFKA_BROKER != "" {
		tracker := tracking.NewTracker(manager)
		consumer := pkgkafka.NewConsumer(
			[]string{cfg.KAFKA_BROKER}, cfg.KAFKA_DRIVER_TOPIC, "loadboard-tracking")
		defer consumer.Close()
		g.Go(func() error {
			consumer.Start(ctx, tracker.Handle)
			return nil
		})
	}

	log.Println("loadboard service running")
	if err := g.Wait(); err != nil {
		log.Fatalf("loadboard service stopped: %v", err)
	}
	log.Println("loadboard service shutdown complete")
}
