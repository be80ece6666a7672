package service

import (
	"strings"

	"github.com/avc-dev/shortener-frontend/internal/model"
)

// BuildPayload собирает тело запроса на сокращение.
// originalURL передается как есть, customCode очищается от пробелов по краям;
// пустой после очистки код не попадает в запрос, и бэкенд генерирует его сам.
func BuildPayload(originalURL, customCode string) model.RequestPayload {
	payload := model.RequestPayload{OriginalURL: originalURL}

	if code := strings.TrimSpace(customCode); code != "" {
		payload.ShortCode = &code
	}

	return payload
}

// BuildPayloadFromInput: то же самое для готового SubmissionInput
func BuildPayloadFromInput(in model.SubmissionInput) model.RequestPayload {
	return BuildPayload(in.OriginalURL, in.CustomCode)
}
