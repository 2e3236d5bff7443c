package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"

	// pulls .env into the environment before any other package init
	// (the logger reads LOG_ENV during its own init)
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/clients/cache"
	"max.ks1230/expense-tracker/internal/clients/kafka"
	"max.ks1230/expense-tracker/internal/clients/tg"
	"max.ks1230/expense-tracker/internal/config"
	budgetent "max.ks1230/expense-tracker/internal/entity/budget"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/model/budget"
	"max.ks1230/expense-tracker/internal/model/ledger"
	"max.ks1230/expense-tracker/internal/model/messages"
	"max.ks1230/expense-tracker/internal/model/storage"
	"max.ks1230/expense-tracker/internal/tracing"
)

const serviceName = "expense-tracker-bot"

type storageBackend interface {
	LoadLedgers(ctx context.Context) (map[string]expense.Ledger, error)
	SaveLedgers(ctx context.Context, ledgers map[string]expense.Ledger) error
	LoadBudgets(ctx context.Context) (map[string]budgetent.Limits, error)
	SaveBudgets(ctx context.Context, budgets map[string]budgetent.Limits) error
}

func main() {
	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config", zap.Error(err))
	}

	closer, err := tracing.Init(serviceName)
	if err != nil {
		logger.Fatal("failed to init tracing", zap.Error(err))
	}
	defer closer.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	store, err := newStorage(conf)
	if err != nil {
		logger.Fatal("failed to init storage", zap.Error(err))
	}

	ledgerSvc, err := ledger.NewService(ctx, store)
	if err != nil {
		logger.Fatal("failed to init ledger service", zap.Error(err))
	}
	tracker, err := budget.NewTracker(ctx, store, ledgerSvc)
	if err != nil {
		logger.Fatal("failed to init budget tracker", zap.Error(err))
	}

	var opts []messages.Option
	if conf.Memcached().Enabled() {
		mc, err := cache.NewMemcache(conf.Memcached())
		if err != nil {
			logger.Fatal("failed to init memcache", zap.Error(err))
		}
		opts = append(opts, messages.WithReportCache(mc))
	}
	if conf.Kafka().Enabled() {
		producer, err := kafka.NewProducer(conf.Kafka())
		if err != nil {
			logger.Fatal("failed to init kafka producer", zap.Error(err))
		}
		defer producer.Close()
		opts = append(opts, messages.WithAlertProducer(producer))
	}

	client, err := tg.New(conf.Telegram())
	if err != nil {
		logger.Fatal("failed to init client", zap.Error(err))
	}

	go serveMetrics(conf.App().MetricsAddr())

	msgService := messages.NewService(client, ledgerSvc, tracker, conf.App(), opts...)
	client.ListenUpdates(ctx, msgService)
}

func newStorage(conf *config.Service) (storageBackend, error) {
	if conf.Storage().Driver() == config.DriverPostgres {
		return storage.NewPostgresStorage(conf.Postgres())
	}
	return storage.NewFileStorage(conf.Storage())
}

func serveMetrics(addr string) {
	http.Handle("/metrics", promhttp.Handler())
	logger.Info("metrics listening", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, nil); err != nil {
		logger.Error("metrics server stopped", zap.Error(err))
	}
}
