// Package backend is the HTTP client for the hotel's REST backend.
//
// Content endpoints return arbitrary JSON; reservation endpoints wrap their
// payload in a {success, data, message} envelope. Both are checked here so
// callers only see decoded payloads or *APIError.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"hotelfront/internal/infra"

	"golang.org/x/time/rate"
)

const maxResponseSize = 10 * 1024 * 1024

// Client talks to the backend. Safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
}

type Option func(*Client)

func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) {
		client.httpClient = c
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(client *Client) {
		client.logger = logger
	}
}

// WithRateLimit caps outbound requests per second. A non-positive limit disables it.
func WithRateLimit(limit float64, burst int) Option {
	return func(client *Client) {
		if limit <= 0 {
			client.limiter = nil
			return
		}
		client.limiter = rate.NewLimiter(rate.Limit(limit), max(1, burst))
	}
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type envelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

func (e envelope) message() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}

// FetchContent GETs a public content endpoint and returns the raw body.
// fallback is used as the error message when the server supplies none.
func (c *Client) FetchContent(ctx context.Context, path, fallback string) (json.RawMessage, error) {
	status, body, err := c.do(ctx, http.MethodGet, path, nil, "", nil)
	if err != nil {
		return nil, err
	}

	env, isObject := decodeEnvelope(body)
	if status < 200 || status >= 300 || (isObject && env.Success != nil && !*env.Success) {
		return nil, c.apiError(path, status, env.message(), fallback)
	}
	return body, nil
}

// GetEnvelope GETs path and returns the envelope's data on success=true.
func (c *Client) GetEnvelope(ctx context.Context, path, token string) (json.RawMessage, error) {
	return c.envelopeCall(ctx, http.MethodGet, path, nil, token, nil)
}

// PostEnvelope POSTs body as JSON and returns the envelope's data on success=true.
func (c *Client) PostEnvelope(ctx context.Context, path string, body any, token string, header http.Header) (json.RawMessage, error) {
	return c.envelopeCall(ctx, http.MethodPost, path, body, token, header)
}

func (c *Client) envelopeCall(ctx context.Context, method, path string, body any, token string, header http.Header) (json.RawMessage, error) {
	status, raw, err := c.do(ctx, method, path, body, token, header)
	if err != nil {
		return nil, err
	}

	env, _ := decodeEnvelope(raw)
	if status < 200 || status >= 300 || env.Success == nil || !*env.Success {
		return nil, c.apiError(path, status, env.message(), "")
	}
	return env.Data, nil
}

func (c *Client) do(ctx context.Context, method, path string, body any, token string, header http.Header) (int, []byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return 0, nil, err
		}
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return 0, nil, infra.WrapInfraErr(c.logger, infra.KindDecodeFailure, "encode request body", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/"+strings.TrimLeft(path, "/"), reader)
	if err != nil {
		return 0, nil, infra.WrapInfraErr(c.logger, infra.KindTransport, "build request", err)
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return 0, nil, ctx.Err()
		}
		return 0, nil, infra.WrapInfraErr(c.logger, infra.KindTransport, method+" "+path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return 0, nil, infra.WrapInfraErr(c.logger, infra.KindTransport, "read response body", err)
	}

	c.logger.Debug("backend request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)
	return resp.StatusCode, raw, nil
}

func (c *Client) apiError(path string, status int, serverMsg, fallback string) *APIError {
	msg := serverMsg
	if msg == "" {
		msg = fallback
	}
	c.logger.Warn("backend request unsuccessful", "path", path, "status", status, "message", msg)
	return &APIError{Status: status, Message: msg, Path: path}
}

// decodeEnvelope reports false when body is not a JSON object.
func decodeEnvelope(body []byte) (envelope, bool) {
	var env envelope
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return env, false
	}
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return envelope{}, false
	}
	return env, true
}
