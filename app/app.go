package app

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/eslib/lending-service/config"
	"github.com/eslib/lending-service/internal/handler"
	"github.com/eslib/lending-service/internal/repository"
	"github.com/eslib/lending-service/internal/server"
	"github.com/eslib/lending-service/internal/service"
	"github.com/eslib/lending-service/migrations"
	"github.com/eslib/lending-service/pkg/cache"
	"github.com/eslib/lending-service/pkg/kafka"
	"github.com/eslib/lending-service/pkg/logger"
	"github.com/eslib/lending-service/pkg/postgres"
)

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "lending")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return fmt.Errorf("db init %w", err)
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return fmt.Errorf("repo init %w", err)
	}

	var (
		enqueuer service.Enqueuer
		producer sarama.SyncProducer
		consumer sarama.ConsumerGroup
	)
	if cfg.Kafka.Enabled {
		producer, err = kafka.NewProducer(cfg.Kafka)
		if err != nil {
			return fmt.Errorf("kafka.NewProducer %w", err)
		}
		enqueuer = service.NewEnqueuer(producer)
	}

	svc := service.NewService(repo, enqueuer, cache.New(cfg.Redis), log)

	if cfg.Kafka.Enabled {
		consumer, err = kafka.NewConsumer(cfg.Kafka, kafka.StatsConsumerGroup)
		if err != nil {
			return fmt.Errorf("kafka.NewConsumer %w", err)
		}
		go func() {
			if err := kafka.Consume(ctx, consumer, handler.NewConsumer(svc.RecordActivity, log), kafka.LendingTopic); err != nil {
				log.Error("kafka consume", zap.Error(err))
			}
		}()
	}

	h := handler.New(svc, svc, svc, svc, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))
	cancel()

	closeCtx, closeCancel := context.WithTimeout(context.Background(), time.Second*5)
	defer closeCancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	if consumer != nil {
		if err = consumer.Close(); err != nil {
			log.Error("consumer close", zap.Error(err))
		}
	}
	if producer != nil {
		if err = producer.Close(); err != nil {
			log.Error("producer close", zap.Error(err))
		}
	}
	db.Close()
	log.Info("Graceful shutdown finished")
	return nil
}
