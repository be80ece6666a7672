package app

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/avc-dev/shortener-frontend/internal/config"
	"github.com/avc-dev/shortener-frontend/internal/model"
	"github.com/avc-dev/shortener-frontend/internal/reqid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newTestFrontend поднимает фронтенд поверх фейкового бэкенда
func newTestFrontend(t *testing.T, backend http.HandlerFunc) *httptest.Server {
	t.Helper()

	api := httptest.NewServer(backend)
	t.Cleanup(api.Close)

	cfg := config.NewDefaultConfig()
	require.NoError(t, cfg.APIBaseURL.Set(api.URL))
	require.NoError(t, cfg.PublicOrigin.Set("https://sho.rt/"))

	app, err := newApp(cfg, zap.NewNop())
	require.NoError(t, err)

	srv := httptest.NewServer(newRouter(app.handler, app.logger, app.registry))
	t.Cleanup(srv.Close)

	return srv
}

func respond(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		io.WriteString(w, body)
	}
}

func submitJSON(t *testing.T, srv *httptest.Server, body string) model.UiState {
	t.Helper()

	resp, err := http.Post(srv.URL+"/api/submit", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var state model.UiState
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&state))

	return state
}

func TestApp_SubmitJSON(t *testing.T) {
	tests := []struct {
		name    string
		backend http.HandlerFunc
		want    model.UiState
	}{
		{
			name:    "created",
			backend: respond(http.StatusCreated, `{"id":1,"original_url":"https://example.com","short_code":"abc123","created_at":"2024-01-01T00:00:00Z"}`),
			want:    model.UiState{ShortenedURL: "https://sho.rt/abc123"},
		},
		{
			name:    "already existed",
			backend: respond(http.StatusOK, `{"short_code":"old"}`),
			want:    model.UiState{ShortenedURL: "https://sho.rt/old"},
		},
		{
			name:    "field errors",
			backend: respond(http.StatusBadRequest, `{"original_url":["Enter a valid URL."],"short_code":["Too long."]}`),
			want:    model.UiState{ErrorMessage: "original url: Enter a valid URL.; short code: Too long."},
		},
		{
			name:    "single message",
			backend: respond(http.StatusConflict, `{"error":"Short code already in use"}`),
			want:    model.UiState{ErrorMessage: "Short code already in use"},
		},
		{
			name:    "unknown body",
			backend: respond(http.StatusBadGateway, `<html>bad gateway</html>`),
			want:    model.UiState{ErrorMessage: "Error: 502 Bad Gateway"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestFrontend(t, tt.backend)

			state := submitJSON(t, srv, `{"original_url":"https://example.com","custom_short_code":"  "}`)

			assert.Equal(t, tt.want, state)
		})
	}
}

func TestApp_SubmitJSON_BackendUnreachable(t *testing.T) {
	// Arrange
	api := httptest.NewServer(http.NotFoundHandler())
	cfg := config.NewDefaultConfig()
	require.NoError(t, cfg.APIBaseURL.Set(api.URL))
	api.Close()

	app, err := newApp(cfg, zap.NewNop())
	require.NoError(t, err)
	srv := httptest.NewServer(newRouter(app.handler, app.logger, app.registry))
	defer srv.Close()

	// Act
	state := submitJSON(t, srv, `{"original_url":"https://example.com"}`)

	// Assert
	assert.Equal(t, model.UiState{ErrorMessage: model.NetworkErrorMessage}, state)
}

func TestApp_ForwardsRequestIDAndPayload(t *testing.T) {
	// Arrange
	var (
		gotID   string
		gotBody map[string]any
	)
	srv := newTestFrontend(t, func(w http.ResponseWriter, r *http.Request) {
		gotID = r.Header.Get(reqid.Header)
		json.NewDecoder(r.Body).Decode(&gotBody)
		respond(http.StatusCreated, `{"short_code":"mine"}`)(w, r)
	})

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/submit",
		strings.NewReader(`{"original_url":"https://example.com/long","custom_short_code":" mine "}`))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(reqid.Header, "trace-42")

	// Act
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	// Assert
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "trace-42", resp.Header.Get(reqid.Header))
	assert.Equal(t, "trace-42", gotID)
	assert.Equal(t, map[string]any{"original_url": "https://example.com/long", "short_code": "mine"}, gotBody)
}

func TestApp_HTMLForm(t *testing.T) {
	// Arrange
	srv := newTestFrontend(t, respond(http.StatusCreated, `{"short_code":"xyz"}`))

	// Act
	resp, err := http.PostForm(srv.URL+"/", url.Values{"original_url": {"https://example.com"}})
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	// Assert
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, string(body), "https://sho.rt/xyz")
}

func TestApp_PingAndMetrics(t *testing.T) {
	// Arrange
	srv := newTestFrontend(t, respond(http.StatusCreated, `{"short_code":"m1"}`))
	submitJSON(t, srv, `{"original_url":"https://example.com"}`)

	// Act
	ping, err := http.Get(srv.URL + "/ping")
	require.NoError(t, err)
	defer ping.Body.Close()
	pong, err := io.ReadAll(ping.Body)
	require.NoError(t, err)

	metricsResp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer metricsResp.Body.Close()
	exposition, err := io.ReadAll(metricsResp.Body)
	require.NoError(t, err)

	// Assert
	assert.Equal(t, "pong", string(pong))
	assert.Equal(t, http.StatusOK, metricsResp.StatusCode)
	assert.Contains(t, string(exposition), `shortener_frontend_submissions_total{outcome="success"} 1`)
	assert.Contains(t, string(exposition), "go_goroutines")
}

func TestApp_StartStopsOnContextCancel(t *testing.T) {
	// Arrange
	cfg := config.NewDefaultConfig()
	require.NoError(t, cfg.ServerAddress.Set("127.0.0.1:0"))

	app, err := newApp(cfg, zap.NewNop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	// Act
	go func() { done <- app.start(ctx) }()
	cancel()

	// Assert
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestNewLogger(t *testing.T) {
	logger, err := newLogger("debug")
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zap.DebugLevel))

	_, err = newLogger("loud")
	assert.Error(t, err)
}
