package handler

import (
	"errors"
	"strings"

	"github.com/avc-dev/shortener-frontend/internal/model"
	"github.com/go-playground/validator/v10"
)

const (
	fieldOriginalURL     = "original_url"
	fieldCustomShortCode = "custom_short_code"
)

// ShortenForm: значения полей формы. Проверки повторяют атрибуты полей ввода
// (type="url" required), сам usecase ввод не валидирует.
type ShortenForm struct {
	OriginalURL     string `json:"original_url" validate:"required,url"`
	CustomShortCode string `json:"custom_short_code"`
}

func (f ShortenForm) input() model.SubmissionInput {
	return model.SubmissionInput{
		OriginalURL: f.OriginalURL,
		CustomCode:  f.CustomShortCode,
	}
}

// validateForm возвращает сообщение для пользователя или пустую строку
func (h *Handler) validateForm(form ShortenForm) string {
	form.OriginalURL = strings.TrimSpace(form.OriginalURL)

	err := h.validate.Struct(form)
	if err == nil {
		return ""
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, fe := range validationErrors {
			switch fe.Tag() {
			case "required":
				return "Please fill out the Original URL field."
			case "url":
				return "Please enter a URL."
			}
		}
	}

	return "Invalid form data."
}
