package usecase

import (
	"context"
	"time"

	"github.com/avc-dev/shortener-frontend/internal/env"
	"github.com/avc-dev/shortener-frontend/internal/model"
	"go.uber.org/zap"
)

//go:generate mockery --name APIClient
//go:generate mockery --name Metrics

// APIClient определяет интерфейс сетевого вызова к бэкенду сокращателя
type APIClient interface {
	Shorten(ctx context.Context, requestID string, payload model.RequestPayload) model.RawOutcome
}

// ResponseInterpreter определяет интерфейс классификации результата вызова
type ResponseInterpreter interface {
	Interpret(raw model.RawOutcome) model.Outcome
}

// Metrics определяет интерфейс учета отправок
type Metrics interface {
	ObserveSubmission(kind model.OutcomeKind, d time.Duration)
	ObserveCopy(err error)
}

// URLUsecase содержит сценарии формы сокращения: отправку и копирование результата
type URLUsecase struct {
	client      APIClient
	interpreter ResponseInterpreter
	env         env.Environment
	metrics     Metrics
	logger      *zap.Logger
}

// NewURLUsecase создает новый экземпляр URLUsecase
func NewURLUsecase(client APIClient, interpreter ResponseInterpreter, environment env.Environment, metrics Metrics, logger *zap.Logger) *URLUsecase {
	return &URLUsecase{
		client:      client,
		interpreter: interpreter,
		env:         environment,
		metrics:     metrics,
		logger:      logger,
	}
}

func (u *URLUsecase) emit(state model.UiState) {
	if u.env.Listener != nil {
		u.env.Listener.OnState(state)
	}
}
