package model

import (
	"net/http"
	"strconv"
	"strings"
)

// NetworkErrorMessage показывается пользователю при любой транспортной ошибке
const NetworkErrorMessage = "Network error or server is unreachable. Please try again."

// HTTPResponse содержит то, что сетевой клиент получил от бэкенда
type HTTPResponse struct {
	StatusCode int
	StatusText string
	Body       []byte
}

// RawOutcome: результат сетевого вызова до интерпретации.
// Заполнено ровно одно из полей: Response или Err.
type RawOutcome struct {
	Response *HTTPResponse
	Err      error
}

// ResponseOutcome создает RawOutcome для полученного HTTP ответа.
// status может быть как "404 Not Found" (http.Response.Status), так и "Not Found".
func ResponseOutcome(statusCode int, status string, body []byte) RawOutcome {
	text := strings.TrimSpace(strings.TrimPrefix(status, strconv.Itoa(statusCode)))
	if text == "" {
		text = http.StatusText(statusCode)
	}

	return RawOutcome{
		Response: &HTTPResponse{
			StatusCode: statusCode,
			StatusText: text,
			Body:       body,
		},
	}
}

// TransportFailure создает RawOutcome для вызова, не получившего HTTP ответа
func TransportFailure(err error) RawOutcome {
	return RawOutcome{Err: err}
}

type OutcomeKind int

const (
	OutcomeSuccess OutcomeKind = iota
	OutcomeBusinessError
	OutcomeTransportError
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeBusinessError:
		return "business_error"
	case OutcomeTransportError:
		return "transport_error"
	default:
		return "unknown"
	}
}

// Outcome: итог одной попытки отправки: Success, BusinessError или TransportError
type Outcome interface {
	Kind() OutcomeKind
}

type Success struct {
	ShortCode Code
}

func (Success) Kind() OutcomeKind { return OutcomeSuccess }

// BusinessError: ответ бэкенда с ошибочным статусом или нечитаемым телом.
// Message всегда содержит готовый к показу текст.
type BusinessError struct {
	StatusCode int
	Body       ErrorBody
	Message    string
	// Cause заполняется, если успешный статус пришел с некорректным телом
	Cause error
}

func (BusinessError) Kind() OutcomeKind { return OutcomeBusinessError }

// TransportError: сетевой вызов не завершился. Cause только для логов.
type TransportError struct {
	Cause error
}

func (TransportError) Kind() OutcomeKind { return OutcomeTransportError }

// Message возвращает фиксированный текст независимо от причины
func (TransportError) Message() string {
	return NetworkErrorMessage
}
