package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/domain"
)

const (
	apiPrefix         = "/api/v1"
	defaultTimeout    = 10 * time.Second
	defaultMaxRetries = 3
	defaultRetryDelay = 500 * time.Millisecond
)

// APIClient handles communication with the GrowPod HTTP API
type APIClient struct {
	BaseURL string
	Client  *http.Client
	APIKey  string

	maxRetries int
	retryDelay time.Duration
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL, apiKey string) *APIClient {
	return &APIClient{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: defaultTimeout,
		},
		APIKey:     apiKey,
		maxRetries: defaultMaxRetries,
		retryDelay: defaultRetryDelay,
	}
}

// APIError is a non-2xx reply from the API
type APIError struct {
	Status  int
	Message string
	// Rejected is set when the game refused the action
	Rejected bool
}

func (e *APIError) Error() string {
	return "API error: " + e.Message
}

// InvokeResponse is the subset of an action result the bot renders
type InvokeResponse struct {
	Action  string               `json:"action"`
	Pod     int                  `json:"pod"`
	Account *domain.AccountState `json:"account,omitempty"`
	Effects []domain.Receipt     `json:"effects"`
	Events  []domain.ActionEvent `json:"events"`
}

type invokeRequest struct {
	Action   string   `json:"action"`
	UintArgs []uint64 `json:"uint_args,omitempty"`
}

// retryable reports whether a status is worth another attempt. Rejections
// and invariant failures are final.
func retryable(status int) bool {
	return status == http.StatusBadGateway || status == http.StatusServiceUnavailable || status == http.StatusGatewayTimeout
}

// doRequest performs an HTTP request with retry logic
func (c *APIClient) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reqBody []byte
	if body != nil {
		var err error
		reqBody, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
	}

	target := c.BaseURL + path

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			// exponential backoff with jitter
			jitter := time.Duration(time.Now().UnixNano()%100) * time.Millisecond
			delay := c.retryDelay*time.Duration(1<<uint(attempt-1)) + jitter
			slog.Info("Retrying API request", "attempt", attempt, "path", path, "delay", delay)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		req, err := http.NewRequestWithContext(ctx, method, target, bytes.NewReader(reqBody))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		if c.APIKey != "" {
			req.Header.Set("X-API-Key", c.APIKey)
		}

		resp, err := c.Client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
			slog.Warn("API request failed", "error", err, "attempt", attempt)
			continue
		}

		if !retryable(resp.StatusCode) {
			return resp, nil
		}

		resp.Body.Close()
		lastErr = fmt.Errorf("server error: %d", resp.StatusCode)
		slog.Warn("Server error, will retry", "status", resp.StatusCode, "attempt", attempt)
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

// call sends a request and decodes a 2xx body into out
func (c *APIClient) call(ctx context.Context, method, path string, body, out interface{}) error {
	resp, err := c.doRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	var errResp struct {
		Error    string `json:"error"`
		Rejected bool   `json:"rejected"`
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err := json.Unmarshal(raw, &errResp); err != nil || errResp.Error == "" {
		errResp.Error = fmt.Sprintf("unexpected status %d", resp.StatusCode)
	}
	return &APIError{Status: resp.StatusCode, Message: errResp.Error, Rejected: errResp.Rejected}
}

func accountPath(address string, suffix string) string {
	return apiPrefix + "/accounts/" + url.PathEscape(address) + suffix
}

// GetGlobal fetches the application-wide state
func (c *APIClient) GetGlobal(ctx context.Context) (*domain.GlobalConfig, error) {
	var g domain.GlobalConfig
	if err := c.call(ctx, http.MethodGet, apiPrefix+"/global", nil, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

// GetAccount fetches one account's pods and progress
func (c *APIClient) GetAccount(ctx context.Context, address string) (*domain.AccountState, error) {
	var a domain.AccountState
	if err := c.call(ctx, http.MethodGet, accountPath(address, ""), nil, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// OptIn creates the account's growth state
func (c *APIClient) OptIn(ctx context.Context, address string) (*domain.AccountState, error) {
	var a domain.AccountState
	if err := c.call(ctx, http.MethodPost, accountPath(address, "/optin"), nil, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// Invoke runs an action tag for address
func (c *APIClient) Invoke(ctx context.Context, address, tag string, args ...uint64) (*InvokeResponse, error) {
	var res InvokeResponse
	req := invokeRequest{Action: tag, UintArgs: args}
	if err := c.call(ctx, http.MethodPost, accountPath(address, "/actions"), req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Healthy reports whether the API answers its liveness check
func (c *APIClient) Healthy(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/healthz", nil)
	if err != nil {
		return false
	}
	resp, err := c.Client.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
