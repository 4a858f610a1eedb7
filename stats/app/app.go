package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Astemirdum/lending-service/pkg/kafka"
	"github.com/Astemirdum/lending-service/pkg/logger"
	"github.com/Astemirdum/lending-service/pkg/postgres"
	"github.com/Astemirdum/lending-service/pkg/server"
	"github.com/Astemirdum/lending-service/stats/config"
	"github.com/Astemirdum/lending-service/stats/internal/handler"
	"github.com/Astemirdum/lending-service/stats/internal/repository"
	"github.com/Astemirdum/lending-service/stats/internal/service"
	"github.com/Astemirdum/lending-service/stats/migrations"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "stats")
	if !cfg.Kafka.Enabled() {
		return errors.New("KAFKA_ADDRS is required")
	}
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles,
		postgres.WithVersionTable(migrations.VersionTable))
	if err != nil {
		return errors.Wrap(err, "postgres.NewPostgresDB")
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return errors.Wrap(err, "repository.NewRepository")
	}
	svc := service.NewService(repo, log)

	consumer, err := kafka.NewConsumer(cfg.Kafka, cfg.ConsumerGroup)
	if err != nil {
		return errors.Wrap(err, "kafka.NewConsumer")
	}
	ctx, cancelConsume := context.WithCancel(context.Background())
	defer cancelConsume()
	go kafka.Consume(ctx, consumer, handler.NewConsumer(svc.Record, log), log, cfg.Kafka.Topic)

	h := handler.New(svc, cfg.Auth, log)
	srv := server.NewServer(cfg.ServerConfig(), h.NewRouter())
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

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	cancelConsume()
	if err = consumer.Close(); err != nil {
		log.Warn("consumer close", zap.Error(err))
	}
	if err = db.Close(); err != nil {
		log.Error("db.Close", zap.Error(err))
	}
	log.Info("Graceful shutdown finished")
	return nil
}
