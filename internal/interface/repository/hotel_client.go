package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"partner-portal-service/internal/domain/apperror"
	"partner-portal-service/internal/domain/entity"
	"partner-portal-service/pkg/logger"
	"partner-portal-service/pkg/metrics"

	"golang.org/x/oauth2"
)

// Endpoints whose responses are passed through without a shape check.
// The live hotel API diverges from its published schema on these.
var uncheckedEndpoints = map[string]bool{
	"content.hotel":     true,
	"content.roomTypes": true,
}

// maxErrorBody bounds how much of a failed response is kept for the log
const maxErrorBody = 4 << 10

// HotelClientConfig configures the hotel API client
type HotelClientConfig struct {
	BaseURL string
	Timeout time.Duration
	// StrictResponses turns a shape mismatch into an UpstreamFailure
	StrictResponses bool
	// Tokens supplies a bearer token when the caller sent no Authorization header. Optional.
	Tokens oauth2.TokenSource
}

// HotelClient performs calls against the hotel API
type HotelClient struct {
	logger     logger.Logger
	metrics    *metrics.Metrics
	httpClient *http.Client
	baseURL    string
	strict     bool
	tokens     oauth2.TokenSource
}

// NewHotelClient creates a new hotel API client
func NewHotelClient(cfg HotelClientConfig, log logger.Logger, m *metrics.Metrics) *HotelClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &HotelClient{
		logger:     log,
		metrics:    m,
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    cfg.BaseURL,
		strict:     cfg.StrictResponses,
		tokens:     cfg.Tokens,
	}
}

// hotelCall describes one outbound request
type hotelCall struct {
	// endpoint names the call in logs and metrics, e.g. "content.hotel"
	endpoint string
	method   string
	path     string
	query    url.Values
	body     any
	headers  entity.Headers
	// shape is a pointer the response is decoded into to check it. Nil skips the check.
	shape any
}

// do sends the call and returns the raw response body of a 2xx answer
func (c *HotelClient) do(ctx context.Context, call hotelCall) ([]byte, error) {
	start := time.Now()
	defer func() {
		c.metrics.UpstreamDuration.WithLabelValues(call.endpoint).Observe(time.Since(start).Seconds())
	}()

	req, err := c.newRequest(ctx, call)
	if err != nil {
		c.metrics.UpstreamRequests.WithLabelValues(call.endpoint, "failure").Inc()
		return nil, err
	}

	c.logger.Debug("Calling hotel API",
		"endpoint", call.endpoint,
		"method", call.method,
		"url", req.URL.String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.UpstreamRequests.WithLabelValues(call.endpoint, "failure").Inc()
		c.logger.Error("Hotel API request failed", "endpoint", call.endpoint, "error", err)
		return nil, apperror.UpstreamUnavailable(fmt.Errorf("failed to send request: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		appErr := apperror.Upstream(resp.StatusCode, fmt.Errorf("hotel API returned status %d", resp.StatusCode))

		outcome := "failure"
		if appErr.Kind == apperror.KindUpstreamRejected {
			outcome = "rejected"
		}
		c.metrics.UpstreamRequests.WithLabelValues(call.endpoint, outcome).Inc()
		c.logger.Warn("Hotel API returned an error",
			"endpoint", call.endpoint,
			"status", resp.StatusCode,
			"body", string(snippet))
		return nil, appErr
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.UpstreamRequests.WithLabelValues(call.endpoint, "failure").Inc()
		return nil, apperror.UpstreamUnavailable(fmt.Errorf("failed to read response: %w", err))
	}

	if err := c.checkShape(call, body); err != nil {
		c.metrics.UpstreamRequests.WithLabelValues(call.endpoint, "failure").Inc()
		return nil, err
	}

	c.metrics.UpstreamRequests.WithLabelValues(call.endpoint, "ok").Inc()
	return body, nil
}

func (c *HotelClient) newRequest(ctx context.Context, call hotelCall) (*http.Request, error) {
	target := c.baseURL + call.path
	if len(call.query) > 0 {
		target += "?" + call.query.Encode()
	}

	var body io.Reader
	if call.body != nil {
		jsonData, err := json.Marshal(call.body)
		if err != nil {
			return nil, apperror.Unknown(fmt.Errorf("failed to marshal body: %w", err))
		}
		body = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, call.method, target, body)
	if err != nil {
		return nil, apperror.Unknown(fmt.Errorf("failed to create request: %w", err))
	}

	for name, value := range call.headers {
		req.Header.Set(name, value)
	}
	req.Header.Set("Accept", "application/json")
	if call.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if _, forwarded := call.headers.Get("Authorization"); !forwarded && c.tokens != nil {
		token, err := c.tokens.Token()
		if err != nil {
			return nil, apperror.UpstreamUnavailable(fmt.Errorf("failed to obtain upstream token: %w", err))
		}
		token.SetAuthHeader(req)
	}

	return req, nil
}

// checkShape decodes body into the expected shape. A mismatch is logged and
// counted, and only fails the call in strict mode.
func (c *HotelClient) checkShape(call hotelCall, body []byte) error {
	if call.shape == nil || uncheckedEndpoints[call.endpoint] {
		return nil
	}

	err := json.Unmarshal(body, call.shape)
	if err == nil {
		return nil
	}

	c.metrics.ShapeMismatches.WithLabelValues(call.endpoint).Inc()
	c.logger.Warn("Hotel API response does not match the expected shape",
		"endpoint", call.endpoint,
		"strict", c.strict,
		"error", err)

	if c.strict {
		return apperror.UpstreamUnavailable(fmt.Errorf("unexpected response shape: %w", err))
	}
	return nil
}

// hotelPath joins a path template with escaped path parameters
func hotelPath(format string, params ...string) string {
	args := make([]any, len(params))
	for i, p := range params {
		args[i] = url.PathEscape(p)
	}
	return fmt.Sprintf(format, args...)
}
