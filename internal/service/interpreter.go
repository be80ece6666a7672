package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/avc-dev/shortener-frontend/internal/model"
	"go.uber.org/zap"
)

// ResponseInterpreter превращает результат сетевого вызова в итог отправки
type ResponseInterpreter struct {
	logger *zap.Logger
}

// NewResponseInterpreter создает новый экземпляр ResponseInterpreter
func NewResponseInterpreter(logger *zap.Logger) *ResponseInterpreter {
	return &ResponseInterpreter{logger: logger}
}

// Interpret классифицирует результат вызова. Метод тотален: любые нечитаемые
// тела сводятся к сообщению со статусом ответа, ошибки наружу не выходят.
func (i *ResponseInterpreter) Interpret(raw model.RawOutcome) model.Outcome {
	if raw.Err != nil {
		return model.TransportError{Cause: raw.Err}
	}
	if raw.Response == nil {
		return model.TransportError{Cause: ErrNoResponse}
	}

	resp := raw.Response
	if isSuccessStatus(resp.StatusCode) {
		return i.interpretSuccess(resp)
	}

	body := ParseErrorBody(resp.Body)
	message := body.Message()
	if message == "" {
		message = StatusFallbackMessage(resp.StatusCode, resp.StatusText)
	}

	return model.BusinessError{
		StatusCode: resp.StatusCode,
		Body:       body,
		Message:    message,
	}
}

func (i *ResponseInterpreter) interpretSuccess(resp *model.HTTPResponse) model.Outcome {
	var data model.ShortenResponse
	err := json.Unmarshal(resp.Body, &data)
	if err == nil && strings.TrimSpace(string(data.ShortCode)) == "" {
		err = errShortCodeMissing
	}

	if err != nil {
		cause := fmt.Errorf("%w: %w", ErrMalformedResponse, err)
		i.logger.Warn("malformed success response",
			zap.Int("status", resp.StatusCode),
			zap.Error(cause),
		)
		return model.BusinessError{
			StatusCode: resp.StatusCode,
			Body:       model.ErrorBody{Kind: model.ErrorBodyUnknown},
			Message:    StatusFallbackMessage(resp.StatusCode, resp.StatusText),
			Cause:      cause,
		}
	}

	return model.Success{ShortCode: data.ShortCode}
}

// StatusFallbackMessage возвращает сообщение вида "Error: 500 Internal Server Error"
func StatusFallbackMessage(statusCode int, statusText string) string {
	return strings.TrimSpace(fmt.Sprintf("Error: %d %s", statusCode, statusText))
}

func isSuccessStatus(code int) bool {
	return code >= 200 && code < 300
}
