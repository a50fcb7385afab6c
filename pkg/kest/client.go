package kest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/goccy/go-json"
	"github.com/hashicorp/go-hclog"
)

// Client talks to the Kest backend REST API. It holds no per-request state
// and is safe for concurrent use.
type Client struct {
	settings *settings
	client   *http.Client
	logger   hclog.Logger
}

// APIError is returned when the backend answers with a non-2xx status.
type APIError struct {
	StatusCode int
	Message    string
	Detail     string
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	if e.Detail != "" && e.Detail != msg {
		return fmt.Sprintf("API error (status %d): %s: %s", e.StatusCode, msg, e.Detail)
	}
	return fmt.Sprintf("API error (status %d): %s", e.StatusCode, msg)
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// NewClient creates a new Kest API client. Unset config fields take their
// defaults; cfg is not modified. A nil logger discards logs.
func NewClient(cfg *Config, logger hclog.Logger) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	s, err := cfg.resolve()
	if err != nil {
		return nil, fmt.Errorf("invalid API client config: %w", err)
	}

	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	return &Client{
		settings: s,
		client:   s.httpClient(),
		logger:   logger.Named("kest"),
	}, nil
}

// BaseURL returns the configured backend root.
func (c *Client) BaseURL() string {
	return c.settings.baseURL
}

// Health checks that the backend is reachable.
func (c *Client) Health(ctx context.Context) error {
	if err := c.doRequest(ctx, http.MethodGet, "/v1/health", nil, nil, nil); err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	return nil
}

// envelope is the backend's success wrapper: {"success": true, "data": ...}.
type envelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
}

// errorBody covers the backend's error shapes: a flat {code, message, error}
// object, or a nested {"error": {code, message, detail}} object.
type errorBody struct {
	Message string          `json:"message"`
	Error   json.RawMessage `json:"error"`
}

// doRequest executes an HTTP request with retry logic and error handling.
// query may be nil. When result is non-nil the response payload is decoded
// into it, unwrapping the success envelope when present.
func (c *Client) doRequest(ctx context.Context, method, path string, query map[string]string, body, result interface{}) error {
	endpoint, err := c.buildURL(path, query)
	if err != nil {
		return err
	}

	var bodyBytes []byte
	if body != nil {
		bodyBytes, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
	}

	var respBody []byte
	attempt := 0
	operation := func() error {
		attempt++
		c.logger.Debug("sending request", "method", method, "path", path, "attempt", attempt)

		var bodyReader io.Reader
		if bodyBytes != nil {
			bodyReader = bytes.NewReader(bodyBytes)
		}

		req, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to create request: %w", err))
		}

		req.Header.Set("Authorization", "Bearer "+c.settings.authToken)
		req.Header.Set("Accept", "application/json")
		if bodyBytes != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(ctx.Err())
			}
			return fmt.Errorf("request failed: %w", err)
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("failed to read response: %w", err)
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			apiErr := parseAPIError(resp.StatusCode, data)
			if resp.StatusCode >= 500 {
				return apiErr
			}
			return backoff.Permanent(apiErr)
		}

		respBody = data
		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = c.settings.retryDelay
	policy.MaxElapsedTime = 0
	retry := backoff.WithContext(
		backoff.WithMaxRetries(policy, uint64(c.settings.maxRetries)), ctx)

	notify := func(err error, wait time.Duration) {
		c.logger.Warn("request failed, retrying",
			"method", method, "path", path, "attempt", attempt, "wait", wait, "error", err)
	}

	if err := backoff.RetryNotify(operation, retry, notify); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		if attempt > 1 {
			return fmt.Errorf("request failed after %d attempts: %w", attempt, err)
		}
		return err
	}

	if result == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	return decodePayload(respBody, result)
}

// decodePayload decodes data into result, unwrapping {"success": ..., "data": ...}.
// A *[]byte result receives the raw body untouched.
func decodePayload(data []byte, result interface{}) error {
	if raw, ok := result.(*[]byte); ok {
		*raw = append((*raw)[:0], data...)
		return nil
	}

	payload := data
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '{' {
		var env envelope
		if err := json.Unmarshal(trimmed, &env); err == nil && env.Success != nil && len(env.Data) > 0 {
			payload = env.Data
		}
	}

	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()
	if err := dec.Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func parseAPIError(status int, data []byte) *APIError {
	apiErr := &APIError{StatusCode: status}

	var body errorBody
	if err := json.Unmarshal(data, &body); err != nil {
		apiErr.Detail = strings.TrimSpace(string(data))
		return apiErr
	}
	apiErr.Message = body.Message

	raw := bytes.TrimSpace(body.Error)
	switch {
	case len(raw) == 0 || string(raw) == "null":
	case raw[0] == '"':
		_ = json.Unmarshal(raw, &apiErr.Detail)
	case raw[0] == '{':
		var nested struct {
			Message string `json:"message"`
			Detail  string `json:"detail"`
		}
		if err := json.Unmarshal(raw, &nested); err == nil {
			if apiErr.Message == "" {
				apiErr.Message = nested.Message
			}
			apiErr.Detail = nested.Detail
		}
	}
	return apiErr
}

// buildURL constructs a URL with query parameters
func (c *Client) buildURL(path string, params map[string]string) (string, error) {
	u, err := url.Parse(c.settings.baseURL + path)
	if err != nil {
		return "", fmt.Errorf("invalid request URL: %w", err)
	}

	if len(params) > 0 {
		q := u.Query()
		for k, v := range params {
			if v == "" {
				continue
			}
			q.Set(k, v)
		}
		u.RawQuery = q.Encode()
	}

	return u.String(), nil
}
