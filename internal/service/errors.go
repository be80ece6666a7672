package service

import "errors"

var (
	// ErrMalformedResponse возвращается, когда успешный ответ не содержит short_code
	// или его тело не является корректным JSON
	ErrMalformedResponse = errors.New("malformed response")

	// ErrNoResponse используется, если сетевой клиент не вернул ни ответа, ни ошибки
	ErrNoResponse = errors.New("no response received")

	errShortCodeMissing = errors.New("short_code is missing")
)
