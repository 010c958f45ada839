// Package api implements the HTTP client for the advisor service.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"policyadvisor/internal/config"
	apierrors "policyadvisor/internal/errors"
)

// maxErrorBody limits how much of a failed response body is kept for
// diagnostics.
const maxErrorBody = 4096

// Answer is the advisor's reply to one question.
type Answer struct {
	// Text is the answer body, typically markdown-formatted.
	Text string

	// Source is the provenance tag, when the backend provides one.
	// May be empty.
	Source string
}

// Client talks to the advisor chat endpoint. One request at a time is the
// expected usage; the caller guards against overlapping calls.
type Client struct {
	httpClient *http.Client
	endpoint   string
	logger     *zap.Logger
}

// ClientOption is a function that configures the client
type ClientOption func(*Client)

// WithEndpoint sets the advisor endpoint URL
func WithEndpoint(endpoint string) ClientOption {
	return func(c *Client) {
		if endpoint != "" {
			c.endpoint = endpoint
		}
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithLogger sets the logger used for request diagnostics
func WithLogger(logger *zap.Logger) ClientOption {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates a new advisor client
func NewClient(opts ...ClientOption) *Client {
	client := &Client{
		// No client-side timeout: failure is reported solely through the
		// transport's own error signaling.
		httpClient: &http.Client{},
		endpoint:   config.DefaultEndpoint,
		logger:     zap.NewNop(),
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Endpoint returns the configured endpoint URL
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Ask sends one question to the advisor and returns its answer.
//
// Network failure, a non-2xx status and an unparseable body all come back
// as typed errors matching apierrors.ErrRequestFailed; the caller is not
// expected to tell them apart.
func (c *Client) Ask(ctx context.Context, question string) (*Answer, error) {
	if question == "" {
		return nil, fmt.Errorf("question cannot be empty")
	}

	payload, err := json.Marshal(map[string]string{"question": question})
	if err != nil {
		return nil, fmt.Errorf("failed to build payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("request failed",
			zap.String("endpoint", c.endpoint),
			zap.Error(err),
		)
		return nil, apierrors.NewNetworkError(c.endpoint, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.logger.Warn("non-2xx response",
			zap.String("endpoint", c.endpoint),
			zap.Int("status", resp.StatusCode),
		)
		return nil, apierrors.NewAPIError(resp.StatusCode, c.endpoint, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apierrors.NewNetworkError(c.endpoint, err)
	}

	answer, err := parseAnswer(body)
	if err != nil {
		c.logger.Warn("unparseable response",
			zap.String("endpoint", c.endpoint),
			zap.Error(err),
		)
		return nil, err
	}

	c.logger.Info("question answered",
		zap.String("endpoint", c.endpoint),
		zap.String("source", answer.Source),
		zap.Duration("took", time.Since(start)),
	)

	return answer, nil
}

// parseAnswer extracts the answer and optional source from a response body.
func parseAnswer(body []byte) (*Answer, error) {
	if !gjson.ValidBytes(body) {
		return nil, apierrors.NewParseError("response body is not valid JSON")
	}

	answer := gjson.GetBytes(body, "answer")
	if !answer.Exists() || answer.String() == "" {
		return nil, apierrors.NewParseError("response has no answer field")
	}

	return &Answer{
		Text:   answer.String(),
		Source: gjson.GetBytes(body, "source").String(),
	}, nil
}
