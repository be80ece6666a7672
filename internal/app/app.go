package app

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/avc-dev/shortener-frontend/internal/config"
	"github.com/avc-dev/shortener-frontend/internal/handler"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

// App представляет HTTP фронтенд сокращателя ссылок
type App struct {
	config   *config.Config
	logger   *zap.Logger
	handler  *handler.Handler
	registry *prometheus.Registry
}

// New создает новый экземпляр приложения
func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	app, err := newApp(cfg, logger)
	if err != nil {
		logger.Sync()
		return nil, err
	}

	return app, nil
}

func newApp(cfg *config.Config, logger *zap.Logger) (*App, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	h, err := initDependencies(cfg, logger, registry)
	if err != nil {
		return nil, err
	}

	return &App{
		config:   cfg,
		logger:   logger,
		handler:  h,
		registry: registry,
	}, nil
}

// Run запускает приложение и останавливает его по SIGINT/SIGTERM
func Run() error {
	app, err := New()
	if err != nil {
		return err
	}
	defer app.logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return app.start(ctx)
}
