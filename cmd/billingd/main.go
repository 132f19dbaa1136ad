package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpcHealth "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/pm-platform/registry/billing"
	"github.com/pm-platform/registry/config"
	"github.com/pm-platform/registry/logger"
)

const serviceName = "billing"

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

	lis, err := createListener(cfg.BillingPort)
	if err != nil {
		log.Fatalln(err.Error())
	}

	grpcServer := grpc.NewServer()
	healthServer := health.NewServer()
	billing.RegisterServer(grpcServer, billing.NewServer(sugared))
	grpcHealth.RegisterHealthServer(grpcServer, healthServer)

	// listen to signals to stop server
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	ctx, cancelFunc := context.WithCancel(context.Background())
	go func() {
		<-stop
		cancelFunc()
	}()
	go func() {
		<-ctx.Done()
		healthServer.SetServingStatus(serviceName, grpcHealth.HealthCheckResponse_NOT_SERVING)
		grpcServer.GracefulStop()
	}()

	healthServer.SetServingStatus(serviceName, grpcHealth.HealthCheckResponse_SERVING)
	sugared.Infow("serving grpc requests", "address", lis.Addr().String())
	if err := grpcServer.Serve(lis); err != nil {
		log.Fatalln(fmt.Sprintf("failed to start grpc server: %v", err))
	}
}

func createListener(port uint16) (net.Listener, error) {
	addr := fmt.Sprintf("0.0.0.0:%v", port)
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, errors.Wrap(err, "error creating listener")
	}
	return lis, nil
}
