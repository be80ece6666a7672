package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/avc-dev/shortener-frontend/internal/mocks"
	"github.com/avc-dev/shortener-frontend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// TestSubmitJSON_Success проверяет JSON ответ с состоянием
func TestSubmitJSON_Success(t *testing.T) {
	tests := []struct {
		name         string
		state        model.UiState
		expectedJSON string
	}{
		{
			name:         "Shortened URL",
			state:        model.UiState{ShortenedURL: "http://localhost:8080/abc12"},
			expectedJSON: `{"loading": false, "shortened_url": "http://localhost:8080/abc12"}`,
		},
		{
			name:         "Error message",
			state:        model.UiState{ErrorMessage: model.NetworkErrorMessage},
			expectedJSON: `{"loading": false, "error_message": "Network error or server is unreachable. Please try again."}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			mockUsecase := mocks.NewMockURLUsecase(t)
			mockUsecase.EXPECT().
				Submit(mock.Anything, model.UiState{}, model.SubmissionInput{OriginalURL: "https://example.com", CustomCode: "abc12"}).
				Return(tt.state).
				Once()

			handler := New(mockUsecase, zap.NewNop())

			req := httptest.NewRequest(http.MethodPost, "/api/submit", strings.NewReader(`{"original_url": "https://example.com", "custom_short_code": "abc12"}`))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			// Act
			handler.SubmitJSON(w, req)

			// Assert
			resp := w.Result()
			defer resp.Body.Close()

			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
			assert.JSONEq(t, tt.expectedJSON, w.Body.String())
		})
	}
}

// TestSubmitJSON_InvalidJSON проверяет обработку невалидного JSON
func TestSubmitJSON_InvalidJSON(t *testing.T) {
	tests := []struct {
		name        string
		requestBody string
	}{
		{name: "Malformed JSON", requestBody: `{"original_url": "https://example.com"`},
		{name: "Empty body", requestBody: ""},
		{name: "Not a JSON", requestBody: "just plain text"},
		{name: "Array instead of object", requestBody: `["https://example.com"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsecase := mocks.NewMockURLUsecase(t)
			handler := New(mockUsecase, zap.NewNop())

			req := httptest.NewRequest(http.MethodPost, "/api/submit", strings.NewReader(tt.requestBody))
			w := httptest.NewRecorder()

			handler.SubmitJSON(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			mockUsecase.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

// TestSubmitJSON_ValidationError проверяет ответ на некорректный URL
func TestSubmitJSON_ValidationError(t *testing.T) {
	mockUsecase := mocks.NewMockURLUsecase(t)
	handler := New(mockUsecase, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/submit", strings.NewReader(`{"original_url": "not a url"}`))
	w := httptest.NewRecorder()

	handler.SubmitJSON(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var response ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, "Please enter a URL.", response.Error)
}

func TestPing(t *testing.T) {
	handler := New(nil, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()

	handler.Ping(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
}
