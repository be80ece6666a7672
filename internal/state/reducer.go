// Package state содержит переходы UiState между событиями отправки формы.
package state

import "github.com/avc-dev/shortener-frontend/internal/model"

// Reduce возвращает новое состояние после события ev.
//
// Idle -> Loading -> {Succeeded, Failed}. Повторная отправка снова проходит через Loading
// и сбрасывает предыдущий результат; автоматических повторов нет.
func Reduce(current model.UiState, ev model.Event) model.UiState {
	switch e := ev.(type) {
	case model.SubmissionStarted:
		return model.UiState{Loading: true}
	case model.SubmissionSucceeded:
		return model.UiState{ShortenedURL: e.ShortenedURL}
	case model.SubmissionFailed:
		return model.UiState{ErrorMessage: e.Message}
	case model.InputChanged:
		current.ErrorMessage = ""
		return current
	default:
		return current
	}
}
