package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fieldscout/interactionintel/config"
	"github.com/fieldscout/interactionintel/internal/clients"
	"github.com/fieldscout/interactionintel/internal/clients/kafka_client"
	"github.com/fieldscout/interactionintel/internal/consumers"
	"github.com/fieldscout/interactionintel/internal/db"
	"github.com/fieldscout/interactionintel/internal/logging"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
		<-sigs
		slog.Info("[Main] Shutdown signal received")
		cancel()
	}()

	cfg := kafka_client.GetKafkaConfig()

	for {
		err := kafka_client.InitProducer(cfg)
		if err == nil {
			break
		}

		slog.Warn("Kafka init failed, retrying...", slog.String("error", err.Error()))
		time.Sleep(5 * time.Second)
	}
	defer kafka_client.CloseProducer()

	clients.InitValkey()
	defer clients.CloseValkey()
	db.InitDynamoDB()

	kafka_client.RegisterConsumer(kafka_client.KAFKA_TOPIC_ANALYSIS_REQUESTS, consumers.StartAnalysisConsumer)

	if err := kafka_client.StartConsumer(ctx, cfg); err != nil {
		slog.Error("[Main] Failed to start consumer",
			slog.String("error", err.Error()))
	}
}
