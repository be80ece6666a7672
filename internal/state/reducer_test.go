package state

import (
	"testing"

	"github.com/avc-dev/shortener-frontend/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestReduce(t *testing.T) {
	tests := []struct {
		name     string
		current  model.UiState
		event    model.Event
		expected model.UiState
	}{
		{
			name:     "Idle to loading",
			current:  model.UiState{},
			event:    model.SubmissionStarted{},
			expected: model.UiState{Loading: true},
		},
		{
			name:     "Start clears previous result",
			current:  model.UiState{ShortenedURL: "http://localhost:8080/abc12"},
			event:    model.SubmissionStarted{},
			expected: model.UiState{Loading: true},
		},
		{
			name:     "Start clears previous error",
			current:  model.UiState{ErrorMessage: "short code taken"},
			event:    model.SubmissionStarted{},
			expected: model.UiState{Loading: true},
		},
		{
			name:     "Loading to succeeded",
			current:  model.UiState{Loading: true},
			event:    model.SubmissionSucceeded{ShortenedURL: "http://localhost:8080/abc12"},
			expected: model.UiState{ShortenedURL: "http://localhost:8080/abc12"},
		},
		{
			name:     "Loading to failed",
			current:  model.UiState{Loading: true},
			event:    model.SubmissionFailed{Message: "short code taken"},
			expected: model.UiState{ErrorMessage: "short code taken"},
		},
		{
			name:     "Input change clears error",
			current:  model.UiState{ErrorMessage: "short code taken"},
			event:    model.InputChanged{},
			expected: model.UiState{},
		},
		{
			name:     "Input change keeps result",
			current:  model.UiState{ShortenedURL: "http://localhost:8080/abc12"},
			event:    model.InputChanged{},
			expected: model.UiState{ShortenedURL: "http://localhost:8080/abc12"},
		},
		{
			name:     "Input change keeps loading",
			current:  model.UiState{Loading: true},
			event:    model.InputChanged{},
			expected: model.UiState{Loading: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Reduce(tt.current, tt.event))
		})
	}
}

// TestReduce_CompletedAttemptInvariant проверяет, что после завершения заполнено ровно одно поле
func TestReduce_CompletedAttemptInvariant(t *testing.T) {
	completions := []model.Event{
		model.SubmissionSucceeded{ShortenedURL: "http://localhost:8080/abc12"},
		model.SubmissionFailed{Message: "Error: 500 Internal Server Error"},
		model.SubmissionFailed{Message: model.NetworkErrorMessage},
	}
	previous := []model.UiState{
		{},
		{ShortenedURL: "http://localhost:8080/old"},
		{ErrorMessage: "old error"},
	}

	for _, prev := range previous {
		for _, done := range completions {
			s := Reduce(Reduce(prev, model.SubmissionStarted{}), done)

			assert.False(t, s.Loading)
			assert.True(t, (s.ShortenedURL == "") != (s.ErrorMessage == ""), "state %+v", s)
			assert.True(t, s.Succeeded() != s.Failed())
		}
	}
}
