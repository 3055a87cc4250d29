package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"bucketx/internal/platform/errors"
	"bucketx/internal/platform/logx"
	"bucketx/internal/testutil"
)

func TestNew(t *testing.T) {
	logger := logx.NewSilent()

	t.Run("applies defaults for zero values", func(t *testing.T) {
		client, err := New(Config{}, logger)
		testutil.RequireNoError(t, err, "new client")

		testutil.AssertEqual(t, client.config.Timeout, 5*time.Second, "default timeout")
		testutil.AssertEqual(t, client.config.UserAgent, "bucketx/1.0", "default user agent")
		testutil.AssertEqual(t, client.config.MaxBodyBytes, int64(1<<20), "default body cap")
		testutil.AssertTrue(t, client.rateLimiter == nil, "no limiter by default")
	})

	t.Run("creates rate limiter when configured", func(t *testing.T) {
		client, err := New(Config{RateLimit: 10, RateLimitBurst: 2}, logger)
		testutil.RequireNoError(t, err, "new client")
		testutil.AssertNotNil(t, client.rateLimiter, "limiter should be created")
	})

	t.Run("rejects bad proxy", func(t *testing.T) {
		_, err := New(Config{ProxyURL: "http://[::1"}, logger)
		testutil.AssertTrue(t, errors.IsConfiguration(err), "bad proxy is a configuration error")
	})
}

func TestClient_Get(t *testing.T) {
	logger := logx.NewSilent()

	t.Run("returns status and body without treating 404 as error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			testutil.AssertEqual(t, r.Method, http.MethodGet, "method")
			testutil.AssertEqual(t, r.Header.Get("User-Agent"), "probe-test", "user agent")
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(testutil.FixtureNoSuchBucketBody))
		}))
		defer server.Close()

		client, err := New(Config{UserAgent: "probe-test"}, logger)
		testutil.RequireNoError(t, err, "new client")

		resp, err := client.Get(context.Background(), server.URL)
		testutil.RequireNoError(t, err, "request should succeed")
		testutil.AssertEqual(t, resp.StatusCode, http.StatusNotFound, "status")
		testutil.AssertEqual(t, string(resp.Body), testutil.FixtureNoSuchBucketBody, "body")
	})

	t.Run("does not retry on server errors", func(t *testing.T) {
		var calls int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client, _ := New(DefaultConfig(), logger)
		resp, err := client.Get(context.Background(), server.URL)
		testutil.RequireNoError(t, err, "503 is a response, not a failure")
		testutil.AssertEqual(t, resp.StatusCode, http.StatusServiceUnavailable, "status")
		testutil.AssertEqual(t, atomic.LoadInt32(&calls), int32(1), "single attempt")
	})

	t.Run("times out", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-time.After(2 * time.Second):
			case <-r.Context().Done():
			}
		}))
		defer server.Close()

		client, _ := New(Config{Timeout: 50 * time.Millisecond}, logger)
		_, err := client.Get(context.Background(), server.URL)
		testutil.AssertError(t, err, "request should time out")
		testutil.AssertTrue(t, errors.IsTimeout(err), "error should be a timeout")
	})

	t.Run("truncates large bodies", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(strings.Repeat("x", 100)))
		}))
		defer server.Close()

		client, _ := New(Config{MaxBodyBytes: 10}, logger)
		resp, err := client.Get(context.Background(), server.URL)
		testutil.RequireNoError(t, err, "request")
		testutil.AssertEqual(t, len(resp.Body), 10, "body length")
		testutil.AssertTrue(t, resp.Truncated, "truncated flag")
	})

	t.Run("does not follow redirects by default", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/" {
				http.Redirect(w, r, "/elsewhere", http.StatusMovedPermanently)
				return
			}
			w.Write([]byte(testutil.FixtureListBucketBody))
		}))
		defer server.Close()

		client, _ := New(DefaultConfig(), logger)
		resp, err := client.Get(context.Background(), server.URL+"/")
		testutil.RequireNoError(t, err, "request")
		testutil.AssertEqual(t, resp.StatusCode, http.StatusMovedPermanently, "redirect status kept")
	})

	t.Run("invalid url is an input error", func(t *testing.T) {
		client, _ := New(DefaultConfig(), logger)
		_, err := client.Get(context.Background(), "http://bad name.example")
		testutil.AssertError(t, err, "invalid url")
		testutil.AssertTrue(t, errors.IsInvalidInput(err), "should be marked as invalid input")
	})

	t.Run("refused connection is marked", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		addr := server.URL
		server.Close()

		client, _ := New(DefaultConfig(), logger)
		_, err := client.Get(context.Background(), addr)
		testutil.AssertError(t, err, "closed listener")
		testutil.AssertTrue(t, errors.IsConnectionFailed(err), "should be marked as connection failed")
		testutil.AssertEqual(t, errors.Describe(err), "connection refused", "detail")
	})

	t.Run("routes through proxy", func(t *testing.T) {
		server := testutil.NewBucketServer(map[string]testutil.CannedResponse{
			"media": {Body: testutil.FixtureListBucketBody},
		})
		defer server.Close()

		client, err := New(Config{ProxyURL: server.URL}, logger)
		testutil.RequireNoError(t, err, "new client")

		resp, err := client.Get(context.Background(), "http://media.s3.amazonaws.com")
		testutil.RequireNoError(t, err, "request via proxy")
		testutil.AssertEqual(t, resp.StatusCode, http.StatusOK, "status")
		testutil.AssertEqual(t, server.Hits("media"), 1, "proxy should see the request")
	})
}

func TestClient_String(t *testing.T) {
	client, _ := New(Config{Timeout: 2 * time.Second, RateLimit: 3, ProxyURL: "http://127.0.0.1:8080"}, logx.NewSilent())
	testutil.AssertEqual(t, client.String(), "HTTPClient{timeout=2s, rate_limit=3.0/s, proxy=true}", "string")
}
