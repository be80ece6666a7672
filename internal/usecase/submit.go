package usecase

import (
	"context"
	"time"

	"github.com/avc-dev/shortener-frontend/internal/env"
	"github.com/avc-dev/shortener-frontend/internal/model"
	"github.com/avc-dev/shortener-frontend/internal/reqid"
	"github.com/avc-dev/shortener-frontend/internal/service"
	"github.com/avc-dev/shortener-frontend/internal/state"
	"go.uber.org/zap"
)

// Submit выполняет одну отправку формы и возвращает итоговое состояние.
//
// Состояние Loading выставляется синхронно до сетевого вызова и снимается ровно
// один раз по его завершении. Ошибки наружу не выходят: результатом всегда
// является либо короткий URL, либо готовое к показу сообщение.
// Параллельные отправки не блокируются, каждая возвращает свой собственный итог.
func (u *URLUsecase) Submit(ctx context.Context, current model.UiState, in model.SubmissionInput) model.UiState {
	loading := state.Reduce(current, model.SubmissionStarted{})
	u.emit(loading)

	requestID := reqid.FromContextOrNew(ctx)
	payload := service.BuildPayloadFromInput(in)

	start := time.Now()
	raw := u.client.Shorten(ctx, requestID, payload)
	outcome := u.interpreter.Interpret(raw)
	u.metrics.ObserveSubmission(outcome.Kind(), time.Since(start))

	final := state.Reduce(loading, u.event(requestID, payload, outcome))
	u.emit(final)

	return final
}

// event переводит итог отправки в событие и пишет в лог подробности, которые не показываются пользователю
func (u *URLUsecase) event(requestID string, payload model.RequestPayload, outcome model.Outcome) model.Event {
	switch o := outcome.(type) {
	case model.Success:
		shortenedURL := env.ShortenedURL(u.env.Origin, string(o.ShortCode))
		u.logger.Info("URL shortened",
			zap.String("request_id", requestID),
			zap.String("original_url", payload.OriginalURL),
			zap.String("short_url", shortenedURL),
		)
		return model.SubmissionSucceeded{ShortenedURL: shortenedURL}

	case model.BusinessError:
		fields := []zap.Field{
			zap.String("request_id", requestID),
			zap.Int("status", o.StatusCode),
			zap.Stringer("body_kind", o.Body.Kind),
			zap.String("message", o.Message),
		}
		if o.Cause != nil {
			fields = append(fields, zap.Error(o.Cause))
		}
		u.logger.Warn("error response from server", fields...)
		return model.SubmissionFailed{Message: o.Message}

	case model.TransportError:
		u.logger.Error("network error",
			zap.String("request_id", requestID),
			zap.Error(o.Cause),
		)
		return model.SubmissionFailed{Message: o.Message()}

	default:
		u.logger.Error("unexpected outcome", zap.String("request_id", requestID), zap.Any("outcome", outcome))
		return model.SubmissionFailed{Message: model.NetworkErrorMessage}
	}
}
