package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/nats-io/nats.go"

	"github.com/pm-platform/registry/config"
	"github.com/pm-platform/registry/events"
	"github.com/pm-platform/registry/logger"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("could not load service configuration: %v", err)
	}

	zapLogger, err := logger.NewProductionLogger()
	if err != nil {
		log.Fatalf("could not create logger: %v", err)
	}
	sugared := logger.Suggar(zapLogger)

	conn, err := nats.Connect(cfg.NatsUrl, nats.Name("analytics"))
	if err != nil {
		log.Fatalf("could not connect to message bus: %v", err)
	}
	defer conn.Drain()

	consumer := events.NewConsumer(conn, &events.LoggingSink{Logger: sugared}, sugared)
	if err := consumer.Start(); err != nil {
		log.Fatalf("could not subscribe to patient events: %v", err)
	}
	defer consumer.Stop()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
}
