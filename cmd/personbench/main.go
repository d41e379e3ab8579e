package main

import (
	"context"
	"log/slog"
	"os"

	"personbench/config"
	"personbench/internal/delivery"
	"personbench/internal/delivery/api"
	"personbench/internal/delivery/api/router/handler"
	"personbench/internal/domain/repository"
	"personbench/internal/infra/faker"
	logs "personbench/internal/infra/log"
	"personbench/internal/infra/metrics"
	"personbench/internal/infra/persistence/memory"
	"personbench/internal/infra/persistence/postgres"
	"personbench/internal/usecase/impl"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	// Config is read before the graph is built because it decides which storage is wired.
	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	fx.New(
		fx.Supply(cfg),
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		injectInfra(),
		injectStorage(cfg),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		logs.New,
		context.Background,
		metrics.New,
		func(m *metrics.Metrics) prometheus.Registerer {
			return m.Registerer()
		},
	)
}

func injectStorage(cfg *config.Config) fx.Option {
	if cfg.Storage.Driver == config.StorageDriverMemory {
		return fx.Provide(
			newMemorySessionManager,
		)
	}

	return fx.Provide(
		postgres.New,
		postgres.NewSessionManager,
	)
}

// newMemorySessionManager caps memory sessions at the configured pool size so both drivers queue alike.
func newMemorySessionManager(cfg *config.Config, logger *slog.Logger) repository.SessionManager {
	logger.Warn("Using in-memory storage; data is lost on exit")

	return memory.NewSessionManager(memory.NewStore(nil), cfg.PG.MaxOpenConns)
}

func injectService() fx.Option {
	return fx.Provide(
		faker.NewPersonGenerator,
	)
}

func injectUsecase() fx.Option {
	return fx.Provide(
		impl.NewPersonService,
	)
}

func injectHandler() fx.Option {
	return fx.Provide(
		handler.NewPersonHandler,
	)
}

func injectDelivery() fx.Option {
	return fx.Provide(
		fx.Annotate(
			api.NewServer,
			fx.ResultTags(`group:"deliveries"`),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
