// Package httpclient provides the HTTP client used for anonymous bucket probes:
// a fixed per-request timeout, optional rate limiting and proxy, and no retries.
package httpclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"syscall"
	"time"

	"golang.org/x/time/rate"

	"bucketx/internal/platform/errors"
	"bucketx/internal/platform/logx"
)

// Client performs single-shot GET requests. A transport failure is returned
// as-is; callers decide what it means.
type Client struct {
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	logger      logx.Logger
	config      Config
}

// Config holds the configuration for the HTTP client.
type Config struct {
	// Timeout bounds the whole request, body included.
	// Default: 5 seconds
	Timeout time.Duration

	// UserAgent is the User-Agent header value.
	// Default: "bucketx/1.0"
	UserAgent string

	// RateLimit is the maximum requests per second across all workers.
	// 0 means no rate limiting.
	RateLimit float64

	// RateLimitBurst is the burst size for rate limiting.
	// Default: 1
	RateLimitBurst int

	// ProxyURL routes every request through an HTTP(S) or SOCKS5 proxy.
	ProxyURL string

	// MaxBodyBytes caps how much of a response body is read.
	// Default: 1 MiB
	MaxBodyBytes int64

	// FollowRedirects lets net/http follow 3xx responses. Off by default so
	// a redirect page is classified as what it is.
	FollowRedirects bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Timeout:        5 * time.Second,
		UserAgent:      "bucketx/1.0",
		RateLimit:      0,
		RateLimitBurst: 1,
		MaxBodyBytes:   1 << 20,
	}
}

// Response is a fully read HTTP response.
type Response struct {
	StatusCode int
	Body       []byte
	Truncated  bool
}

// New creates a new HTTP client with the given configuration.
func New(config Config, logger logx.Logger) (*Client, error) {
	def := DefaultConfig()
	if config.Timeout <= 0 {
		config.Timeout = def.Timeout
	}
	if config.UserAgent == "" {
		config.UserAgent = def.UserAgent
	}
	if config.RateLimitBurst <= 0 {
		config.RateLimitBurst = def.RateLimitBurst
	}
	if config.MaxBodyBytes <= 0 {
		config.MaxBodyBytes = def.MaxBodyBytes
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if config.ProxyURL != "" {
		proxy, err := url.Parse(config.ProxyURL)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrConfiguration, "invalid proxy url %q", config.ProxyURL)
		}
		transport.Proxy = http.ProxyURL(proxy)
	}

	httpClient := &http.Client{
		Timeout:   config.Timeout,
		Transport: transport,
	}
	if !config.FollowRedirects {
		httpClient.CheckRedirect = func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	var limiter *rate.Limiter
	if config.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(config.RateLimit), config.RateLimitBurst)
	}

	return &Client{
		httpClient:  httpClient,
		rateLimiter: limiter,
		logger:      logger.With("component", "httpclient"),
		config:      config,
	}, nil
}

// Get performs one anonymous GET and reads the body up to MaxBodyBytes.
// Non-2xx statuses are not errors.
func (c *Client) Get(ctx context.Context, rawURL string) (*Response, error) {
	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, errors.Wrap(err, "rate limit wait failed")
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "build request for %s", rawURL), errors.ErrInvalidInput)
	}
	req.Header.Set("User-Agent", c.config.UserAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("HTTP request failed",
			"url", rawURL,
			"error", err.Error(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
		if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) {
			return nil, errors.Mark(err, errors.ErrConnectionFailed)
		}
		return nil, err
	}
	defer resp.Body.Close()

	// Lee un byte de más para detectar truncado
	body, err := io.ReadAll(io.LimitReader(resp.Body, c.config.MaxBodyBytes+1))
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "read body of %s", rawURL), errors.ErrInvalidResponse)
	}
	truncated := int64(len(body)) > c.config.MaxBodyBytes
	if truncated {
		body = body[:c.config.MaxBodyBytes]
	}

	c.logger.Debug("HTTP response received",
		"url", rawURL,
		"status", resp.StatusCode,
		"bytes", len(body),
		"truncated", truncated,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return &Response{StatusCode: resp.StatusCode, Body: body, Truncated: truncated}, nil
}

// String returns a human-readable representation of the client configuration.
func (c *Client) String() string {
	return fmt.Sprintf("HTTPClient{timeout=%s, rate_limit=%.1f/s, proxy=%t}",
		c.config.Timeout,
		c.config.RateLimit,
		c.config.ProxyURL != "",
	)
}
