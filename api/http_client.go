package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

const (
	requestTimeout = 10 * time.Second

	// Transient network failures are retried with exponential backoff:
	// three attempts total, waiting 2s..10s between them.
	retryMaxAttempts     = 3
	retryInitialInterval = 2 * time.Second
	retryMaxInterval     = 10 * time.Second
)

// HTTPClient wraps a base URL with a retrying HTTP client. Only transport
// errors are retried; an HTTP error status is returned to the caller as-is.
type HTTPClient struct {
	BaseURL    string
	HTTPClient *http.Client
	logger     *zap.Logger
}

// NewHTTPClient creates a new HTTPClient with default timeout settings.
func NewHTTPClient(baseURL string, logger *zap.Logger) *HTTPClient {
	return &HTTPClient{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: requestTimeout,
		},
		logger: logger,
	}
}

// GetJSON issues a GET request and decodes the JSON response body.
func (c *HTTPClient) GetJSON(ctx context.Context, endpoint string, response interface{}) error {
	body, status, err := c.do(ctx, http.MethodGet, endpoint, "", nil)
	if err != nil {
		return err
	}
	if status < 200 || status >= 300 {
		return fmt.Errorf("unexpected status code %d from GET %s", status, endpoint)
	}
	if response != nil {
		if err := json.Unmarshal(body, response); err != nil {
			return fmt.Errorf("decode response from GET %s: %w", endpoint, err)
		}
	}
	return nil
}

// PostForm issues a form-encoded POST request and returns the raw response
// body.
func (c *HTTPClient) PostForm(ctx context.Context, endpoint string, form url.Values) ([]byte, error) {
	body, status, err := c.do(ctx, http.MethodPost, endpoint, "application/x-www-form-urlencoded", []byte(form.Encode()))
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, fmt.Errorf("unexpected status code %d from POST %s", status, endpoint)
	}
	return body, nil
}

// PostJSON issues a JSON POST request and returns the response status code
// along with the raw body. Callers that care about a specific success status
// (e.g. GroupMe's 202) inspect the code themselves.
func (c *HTTPClient) PostJSON(ctx context.Context, endpoint string, payload interface{}) ([]byte, int, error) {
	requestBody, err := json.Marshal(payload)
	if err != nil {
		return nil, 0, fmt.Errorf("encode request for POST %s: %w", endpoint, err)
	}
	return c.do(ctx, http.MethodPost, endpoint, "application/json", requestBody)
}

func (c *HTTPClient) do(ctx context.Context, method, endpoint, contentType string, requestBody []byte) ([]byte, int, error) {
	fullURL := c.BaseURL + endpoint

	var responseBody []byte
	var status int
	attempt := 0

	operation := func() error {
		attempt++
		req, err := http.NewRequestWithContext(ctx, method, fullURL, bytes.NewReader(requestBody))
		if err != nil {
			return backoff.Permanent(err)
		}
		if contentType != "" {
			req.Header.Set("Content-Type", contentType)
		}

		res, err := c.HTTPClient.Do(req)
		if err != nil {
			c.logger.Warn("request failed, will retry",
				zap.String("method", method),
				zap.String("url", fullURL),
				zap.Int("attempt", attempt),
				zap.Error(err),
			)
			return err
		}
		defer res.Body.Close()

		body, err := io.ReadAll(res.Body)
		if err != nil {
			c.logger.Warn("reading response failed, will retry",
				zap.String("url", fullURL),
				zap.Int("attempt", attempt),
				zap.Error(err),
			)
			return err
		}

		responseBody = body
		status = res.StatusCode
		return nil
	}

	expo := backoff.NewExponentialBackOff()
	expo.InitialInterval = retryInitialInterval
	expo.MaxInterval = retryMaxInterval

	policy := backoff.WithContext(backoff.WithMaxRetries(expo, retryMaxAttempts-1), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, 0, fmt.Errorf("%s %s: %w", method, fullURL, err)
	}

	c.logger.Debug("request completed",
		zap.String("method", method),
		zap.String("url", fullURL),
		zap.Int("status", status),
	)
	return responseBody, status, nil
}
