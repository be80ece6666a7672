package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/avc-dev/shortener-frontend/internal/mocks"
	"github.com/avc-dev/shortener-frontend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func postForm(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// TestIndex проверяет отображение пустой формы
func TestIndex(t *testing.T) {
	// Arrange
	mockUsecase := mocks.NewMockURLUsecase(t)
	handler := New(mockUsecase, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	// Act
	handler.Index(w, req)

	// Assert
	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/html; charset=utf-8", resp.Header.Get("Content-Type"))

	body := w.Body.String()
	assert.Contains(t, body, `name="original_url"`)
	assert.Contains(t, body, `name="custom_short_code"`)
	assert.NotContains(t, body, "Shortened URL:")
	assert.NotContains(t, body, `class="error-message"`)
}

// TestSubmit_Success проверяет отображение короткой ссылки
func TestSubmit_Success(t *testing.T) {
	// Arrange
	mockUsecase := mocks.NewMockURLUsecase(t)
	mockUsecase.EXPECT().
		Submit(mock.Anything, model.UiState{}, model.SubmissionInput{OriginalURL: "https://example.com", CustomCode: " mylink "}).
		Return(model.UiState{ShortenedURL: "http://localhost:8080/mylink"}).
		Once()

	handler := New(mockUsecase, zap.NewNop())
	w := httptest.NewRecorder()

	// Act
	handler.Submit(w, postForm(url.Values{
		"original_url":      {"https://example.com"},
		"custom_short_code": {" mylink "},
	}))

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, `href="http://localhost:8080/mylink"`)
	assert.Contains(t, body, "Copy to Clipboard")
	assert.NotContains(t, body, `<p class="error-message">`)
	assert.Contains(t, body, `value="https://example.com"`)
}

// TestSubmit_Failure проверяет отображение сообщения об ошибке
func TestSubmit_Failure(t *testing.T) {
	// Arrange
	mockUsecase := mocks.NewMockURLUsecase(t)
	mockUsecase.EXPECT().
		Submit(mock.Anything, model.UiState{}, mock.Anything).
		Return(model.UiState{ErrorMessage: "Custom short code 'mylink' is already in use by another URL."}).
		Once()

	handler := New(mockUsecase, zap.NewNop())
	w := httptest.NewRecorder()

	// Act
	handler.Submit(w, postForm(url.Values{
		"original_url":      {"https://example.com"},
		"custom_short_code": {"mylink"},
	}))

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "Custom short code &#39;mylink&#39; is already in use by another URL.")
	assert.NotContains(t, body, "Shortened URL:")
}

// TestSubmit_InvalidForm проверяет, что некорректная форма не доходит до usecase
func TestSubmit_InvalidForm(t *testing.T) {
	tests := []struct {
		name            string
		originalURL     string
		expectedMessage string
	}{
		{name: "Empty URL", originalURL: "", expectedMessage: "Please fill out the Original URL field."},
		{name: "Whitespace URL", originalURL: "   ", expectedMessage: "Please fill out the Original URL field."},
		{name: "Not a URL", originalURL: "not a url", expectedMessage: "Please enter a URL."},
		{name: "Missing scheme", originalURL: "example.com", expectedMessage: "Please enter a URL."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			mockUsecase := mocks.NewMockURLUsecase(t)
			handler := New(mockUsecase, zap.NewNop())
			w := httptest.NewRecorder()

			// Act
			handler.Submit(w, postForm(url.Values{"original_url": {tt.originalURL}}))

			// Assert
			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedMessage)
			mockUsecase.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}
