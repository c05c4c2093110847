// scheduler/cmd/main.go
package main

import (
	"log"

	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"

	pkgkafka "github.com/DEEDAVISINC/FLEETFLOW-SK-sub015/pkg/kafka"
	"github.com/DEEDAVISINC/FLEETFLOW-SK-sub015/services/scheduler/activities"
	schedstore "github.com/DEEDAVISINC/FLEETFLOW-SK-sub015/services/scheduler/store"
	"github.com/DEEDAVISINC/FLEETFLOW-SK-sub015/services/scheduler/workflow"
	"github.com/DEEDAVISINC/FLEETFLOW-SK-sub015/shared/config"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	cfg := config.LoadCommonConfig()

	var producer pkgkafka.Publisher
	if cfg.KAFKA_BROKER != "" {
		producer = pkgkafka.NewKafkaProducer(cfg.KAFKA_BROKER, cfg.KAFKA_LOAD_TOPIC)
		defer producer.Close()
		log.Println("worker connected to kafka")
	} else {
		log.Println("warning: kafka config missing, worker will not publish events")
	}

	c, err := client.Dial(client.Options{HostPort: cfg.TEMPORAL_HOST_PORT})
	if err != nil {
		log.Fatalln("unable to create temporal client:", err)
	}
	defer c.Close()
	log.Println("worker connected to temporal at", cfg.TEMPORAL_HOST_PORT)

	activityHost := &activities.ScheduleActivities{
		Store:    schedstore.NewMemoryScheduleStore(),
		Producer: producer,
	}

	w := worker.New(c, workflow.TaskQueue, worker.Options{})

	w.RegisterWorkflow(workflow.CreateScheduleWorkflow)
	w.RegisterActivity(activityHost.ACTIVITY_CheckDriverConflicts)
	w.RegisterActivity(activityHost.ACTIVITY_SaveSchedule)
	w.RegisterActivity(activityHost.ACTIVITY_PublishScheduleEvent)

	log.Println("schedule worker started, pollers are running")
	if err := w.Run(worker.InterruptCh()); err != nil {
		log.Fatalln("unable to start worker:", err)
	}
}
