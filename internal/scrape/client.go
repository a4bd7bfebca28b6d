package scrape

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"
)

const (
	// userAgent matches a current desktop Chrome. Hosts behind bot-filtering
	// CDNs serve the anonymous-client error page otherwise.
	userAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"

	acceptLanguage = "pl-PL,pl;q=0.9,en-US;q=0.8"

	requestTimeout = 10 * time.Second
	maxBodyBytes   = 2 << 20
)

type browserTransport struct {
	base http.RoundTripper
}

func (t *browserTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept-Language", acceptLanguage)
	return t.base.RoundTrip(req)
}

// Client fetches feeds, API payloads and pages with browser-like headers,
// retrying transient upstream failures.
type Client struct {
	http *http.Client
	log  *zap.Logger
}

func NewClient(log *zap.Logger) *Client {
	return &Client{
		http: &http.Client{
			Timeout:   requestTimeout,
			Transport: &browserTransport{base: http.DefaultTransport},
		},
		log: log,
	}
}

type statusError struct {
	url        string
	status     int
	retryAfter time.Duration
}

func (e *statusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d", e.url, e.status)
}

func (e *statusError) transient() bool {
	return e.status == http.StatusTooManyRequests || e.status >= 500
}

// Get fetches url and returns at most the first 2 MiB of the body. Responses
// with status 429 or 5xx are retried with exponential backoff; a Retry-After
// header overrides the computed delay.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	maxRetries := 3
	baseDelay := 1 * time.Second

	for attempt := 0; attempt <= maxRetries; attempt++ {
		body, err := c.get(ctx, url)
		if err == nil {
			return body, nil
		}

		var statusErr *statusError
		ok := errors.As(err, &statusErr)
		if !ok || !statusErr.transient() {
			return nil, err
		}

		if attempt == maxRetries {
			return nil, fmt.Errorf("max retries reached: %w", err)
		}

		waitDuration := statusErr.retryAfter
		if waitDuration <= 0 {
			waitDuration = baseDelay * time.Duration(1<<attempt)
		}

		c.log.Debug("retrying fetch",
			zap.String("url", url),
			zap.Int("status", statusErr.status),
			zap.Duration("wait", waitDuration))

		select {
		case <-time.After(waitDuration):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	return nil, fmt.Errorf("unexpected retry loop exit")
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", url, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &statusError{
			url:        url,
			status:     resp.StatusCode,
			retryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", url, err)
	}
	return body, nil
}

// parseRetryAfter handles both forms the header allows, seconds and an HTTP
// date. Anything unparseable counts as absent.
func parseRetryAfter(value string) time.Duration {
	if value == "" {
		return 0
	}
	if secs, err := strconv.Atoi(value); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(value); err == nil {
		if d := time.Until(at); d > 0 {
			return d
		}
	}
	return 0
}
