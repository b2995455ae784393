package openpanel

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	TrackPath = "/track"

	HeaderClientID     = "openpanel-client-id"
	HeaderClientSecret = "openpanel-client-secret"
)

var ErrMissingCredentials = errors.New("Missing OPENPANEL_CLIENT_ID or OPENPANEL_CLIENT_SECRET")

// Client пересылает события в OpenPanel track API
type Client struct {
	httpClient *http.Client
	config     ClientConfig
}

// ClientConfig конфигурация клиента
type ClientConfig struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	// Timeout of zero leaves the call bounded only by the request context
	Timeout time.Duration
}

// TrackRequest событие для пересылки
type TrackRequest struct {
	Payload   json.RawMessage
	UserAgent string // пустой - заголовок не выставляется
}

// TrackResponse ответ OpenPanel
type TrackResponse struct {
	StatusCode int
	// Body is the decoded JSON value, or the raw text when the body is not JSON
	Body     any
	Duration time.Duration
}

func NewClient(config ClientConfig) *Client {
	config.BaseURL = strings.TrimRight(config.BaseURL, "/")

	return &Client{
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		config: config,
	}
}

func (c *Client) TrackURL() string {
	return c.config.BaseURL + TrackPath
}

func (c *Client) HasCredentials() bool {
	return c.config.ClientID != "" && c.config.ClientSecret != ""
}

// Track отправляет payload без изменений. Статус ответа ошибкой не считается
func (c *Client) Track(ctx context.Context, req TrackRequest) (*TrackResponse, error) {
	if !c.HasCredentials() {
		return nil, ErrMissingCredentials
	}

	startTime := time.Now()

	body, err := compact(req.Payload)
	if err != nil {
		return nil, fmt.Errorf("encoding payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.TrackURL(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set(HeaderClientID, c.config.ClientID)
	httpReq.Header.Set(HeaderClientSecret, c.config.ClientSecret)
	if req.UserAgent != "" {
		httpReq.Header.Set("User-Agent", req.UserAgent)
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	return &TrackResponse{
		StatusCode: httpResp.StatusCode,
		Body:       decodeBody(raw),
		Duration:   time.Since(startTime),
	}, nil
}

func compact(payload json.RawMessage) ([]byte, error) {
	if len(payload) == 0 {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, payload); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeBody(raw []byte) any {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return string(raw)
	}
	return v
}
