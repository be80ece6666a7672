package app

import (
	"fmt"
	"net/http"

	"github.com/avc-dev/shortener-frontend/internal/client"
	"github.com/avc-dev/shortener-frontend/internal/config"
	"github.com/avc-dev/shortener-frontend/internal/env"
	"github.com/avc-dev/shortener-frontend/internal/handler"
	"github.com/avc-dev/shortener-frontend/internal/metrics"
	"github.com/avc-dev/shortener-frontend/internal/service"
	"github.com/avc-dev/shortener-frontend/internal/usecase"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// initDependencies инициализирует все зависимости приложения
func initDependencies(cfg *config.Config, logger *zap.Logger, reg prometheus.Registerer) (*handler.Handler, error) {
	apiClient, err := client.New(cfg.APIBaseURL.String(), &http.Client{Timeout: cfg.RequestTimeout}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize API client: %w", err)
	}

	logger.Info("Using shortener API",
		zap.String("endpoint", apiClient.Endpoint()),
		zap.String("public_origin", cfg.PublicOrigin.String()),
	)

	environment := env.Environment{
		Origin: env.StaticOrigin(cfg.PublicOrigin.String()),
	}

	interpreter := service.NewResponseInterpreter(logger)
	urlUsecase := usecase.NewURLUsecase(apiClient, interpreter, environment, metrics.New(reg), logger)

	return handler.New(urlUsecase, logger), nil
}
