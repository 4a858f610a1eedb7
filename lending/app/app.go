package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Astemirdum/lending-service/lending/config"
	"github.com/Astemirdum/lending-service/lending/internal/handler"
	"github.com/Astemirdum/lending-service/lending/internal/repository"
	"github.com/Astemirdum/lending-service/lending/internal/service"
	"github.com/Astemirdum/lending-service/lending/migrations"
	"github.com/Astemirdum/lending-service/pkg/circuit_breaker"
	"github.com/Astemirdum/lending-service/pkg/kafka"
	"github.com/Astemirdum/lending-service/pkg/logger"
	"github.com/Astemirdum/lending-service/pkg/postgres"
	"github.com/Astemirdum/lending-service/pkg/server"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "lending")
	ctx := context.Background()

	var (
		repo repository.Repository
		db   *sqlx.DB
		err  error
	)
	switch cfg.Storage {
	case config.StoragePostgres:
		db, err = postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
		if err != nil {
			log.Fatal("db init", zap.Error(err))
		}
		if repo, err = repository.NewRepository(db, log); err != nil {
			log.Fatal("repo", zap.Error(err))
		}
	default:
		repo = repository.NewMemory(log)
	}

	opts := make([]service.Option, 0, 1)
	var publisher *kafka.Publisher
	if cfg.Kafka.Enabled() {
		producer, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			log.Fatal("kafka.NewProducer", zap.Error(err))
		}
		publisher = kafka.NewPublisher(producer, cfg.Kafka.Topic, circuit_breaker.NewCircuitBreaker(circuit_breaker.Settings{
			RecordLength:     20,
			Timeout:          10 * time.Second,
			Percentile:       0.5,
			RecoveryRequests: 3,
		}))
		opts = append(opts, service.WithPublisher(publisher))
	}

	svc := service.NewService(repo, log, cfg.ServiceConfig(), opts...)
	stopJanitor := svc.StartJanitor()
	if cfg.Lending.SeedEnabled() {
		if err := svc.Seed(ctx); err != nil {
			log.Fatal("seed", zap.Error(err))
		}
	}

	h := handler.New(svc, svc, cfg.Auth, log)
	srv := server.NewServer(cfg.Server.Config(), h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)),
		zap.String("storage", cfg.Storage))
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
	stopJanitor()
	if publisher != nil {
		if err := publisher.Close(); err != nil {
			log.Warn("producer close", zap.Error(err))
		}
	}
	if db != nil {
		_ = db.Close()
	}
	log.Info("Graceful shutdown finished")
}
