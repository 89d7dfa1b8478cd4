// Package upstream is the typed HTTP client for the remote turf backend.
// The backend owns every business record (venues, courts, bookings and
// operator accounts); this gateway only reads snapshots and submits form
// payloads on the operator's behalf.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"turfdesk/config"
	"turfdesk/utils"
)

// APIError carries the upstream HTTP status and message through to handlers
// so user-facing failures ("Selected slot is NOT available") survive the hop.
type APIError struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upstream returned %d: %s", e.StatusCode, e.Message)
}

// Client talks to the turf backend's admin, auth and booking route groups.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient builds a client for the configured upstream base URL.
func NewClient() *Client {
	return &Client{
		baseURL: strings.TrimRight(config.AppConfig.UpstreamBaseURL, "/"),
		httpClient: &http.Client{
			Timeout: time.Duration(config.AppConfig.UpstreamTimeoutMS) * time.Millisecond,
		},
		logger: utils.GetLogger(),
	}
}

// NewClientWithBase builds a client against an explicit base URL (tests).
func NewClientWithBase(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     utils.GetLogger(),
	}
}

// do executes one upstream request, optionally with a bearer token and JSON
// body, decoding a JSON response into out when out is non-nil. Non-2xx
// responses become *APIError with the upstream message when one is present.
func (c *Client) do(ctx context.Context, method, path, token string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build upstream request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("upstream request failed",
			zap.String("method", method), zap.String("path", path), zap.Error(err))
		return fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read upstream response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var envelope struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		if err := json.Unmarshal(data, &envelope); err == nil {
			if envelope.Message != "" {
				apiErr.Message = envelope.Message
			} else if envelope.Error != "" {
				apiErr.Message = envelope.Error
			}
		}
		c.logger.Warn("upstream returned error status",
			zap.String("method", method), zap.String("path", path),
			zap.Int("status", resp.StatusCode), zap.String("message", apiErr.Message))
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode upstream response: %w", err)
	}
	return nil
}
