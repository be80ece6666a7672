// Package client отправляет запросы на сокращение во внешний API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/avc-dev/shortener-frontend/internal/model"
	"github.com/avc-dev/shortener-frontend/internal/reqid"
	"go.uber.org/zap"
)

const (
	// ShortenPath: путь эндпоинта сокращения относительно базового адреса API
	ShortenPath = "/api/shorten/"

	// MaxResponseBytes ограничивает объем читаемого тела ответа
	MaxResponseBytes = 1 << 20

	// DefaultTimeout используется, если http.Client не передан
	DefaultTimeout = 10 * time.Second
)

var (
	// ErrTransport оборачивает любую ошибку, из-за которой HTTP ответ не был получен целиком
	ErrTransport = errors.New("transport failure")

	ErrInvalidBaseURL = errors.New("invalid API base URL")
)

// Client: HTTP клиент бэкенда сокращателя
type Client struct {
	httpClient *http.Client
	endpoint   string
	logger     *zap.Logger
}

// New создает клиент для API по адресу baseURL.
// Если httpClient равен nil, используется клиент с DefaultTimeout.
func New(baseURL string, httpClient *http.Client, logger *zap.Logger) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, baseURL)
	}

	endpoint, err := url.JoinPath(baseURL, ShortenPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}

	return &Client{
		httpClient: httpClient,
		endpoint:   endpoint,
		logger:     logger,
	}, nil
}

// Endpoint возвращает полный адрес эндпоинта сокращения
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Shorten отправляет payload и возвращает то, что удалось получить от бэкенда.
// Метод не интерпретирует статус: любой полученный ответ возвращается как есть,
// а всё, что помешало его получить, возвращается как транспортная ошибка.
func (c *Client) Shorten(ctx context.Context, requestID string, payload model.RequestPayload) model.RawOutcome {
	body, err := json.Marshal(payload)
	if err != nil {
		return model.TransportFailure(fmt.Errorf("%w: encode payload: %w", ErrTransport, err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return model.TransportFailure(fmt.Errorf("%w: build request: %w", ErrTransport, err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if requestID != "" {
		req.Header.Set(reqid.Header, requestID)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.TransportFailure(fmt.Errorf("%w: %w", ErrTransport, err))
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseBytes))
	if err != nil {
		return model.TransportFailure(fmt.Errorf("%w: read response: %w", ErrTransport, err))
	}

	c.logger.Debug("shorten request completed",
		zap.String("request_id", requestID),
		zap.String("endpoint", c.endpoint),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
		zap.Int("size", len(data)),
	)

	return model.ResponseOutcome(resp.StatusCode, resp.Status, data)
}
