// internal/adapters/probe/prober_test.go
package probe

import (
	"context"
	"net/http"
	"testing"
	"time"

	"bucketx/internal/core/classifier"
	"bucketx/internal/core/domain"
	"bucketx/internal/platform/errors"
	"bucketx/internal/platform/httpclient"
	"bucketx/internal/platform/logx"
	"bucketx/internal/testutil"
)

func newTestProber(t *testing.T, server *testutil.BucketServer, timeout time.Duration) *HTTPProber {
	t.Helper()
	client, err := httpclient.New(httpclient.Config{Timeout: timeout, ProxyURL: server.URL}, logx.NewSilent())
	testutil.RequireNoError(t, err, "http client")
	return NewHTTPProber(client, domain.DefaultStorageHost, logx.NewSilent())
}

func TestHTTPProber_Endpoint(t *testing.T) {
	client, _ := httpclient.New(httpclient.DefaultConfig(), logx.NewSilent())

	p := NewHTTPProber(client, "", logx.NewSilent())
	testutil.AssertEqual(t, p.Endpoint("media").String(), "http://media.s3.amazonaws.com", "default host")

	p = NewHTTPProber(client, "storage.googleapis.com", logx.NewSilent())
	testutil.AssertEqual(t, p.Endpoint("media").String(), "http://media.storage.googleapis.com", "custom host")
}

func TestHTTPProber_Probe(t *testing.T) {
	server := testutil.NewBucketServer(map[string]testutil.CannedResponse{
		"public":  {Status: http.StatusOK, Body: testutil.FixtureListBucketBody},
		"private": {Status: http.StatusForbidden, Body: testutil.FixtureAccessDeniedBody},
		"weird":   {Status: http.StatusOK, Body: testutil.FixtureHTMLBody},
	})
	defer server.Close()

	p := newTestProber(t, server, 2*time.Second)

	tests := []struct {
		candidate domain.Candidate
		status    int
		kind      domain.OutcomeKind
	}{
		{"public", http.StatusOK, domain.OutcomePubliclyListable},
		{"private", http.StatusForbidden, domain.OutcomeNotFoundOrPrivate},
		{"missing", http.StatusNotFound, domain.OutcomeNotFoundOrPrivate},
		{"weird", http.StatusOK, domain.OutcomeIndeterminate},
	}

	for _, tt := range tests {
		t.Run(tt.candidate.String(), func(t *testing.T) {
			resp, err := p.Probe(context.Background(), tt.candidate)
			testutil.RequireNoError(t, err, "probe")
			testutil.AssertEqual(t, resp.StatusCode, tt.status, "status")
			testutil.AssertEqual(t, classifier.Classify(resp, err), tt.kind, "kind")
			testutil.AssertEqual(t, server.Hits(tt.candidate.String()), 1, "single request, no retries")
		})
	}
}

func TestHTTPProber_TimeoutIsTransportError(t *testing.T) {
	server := testutil.NewBucketServer(map[string]testutil.CannedResponse{
		"slow": {Body: testutil.FixtureListBucketBody, Delay: time.Second},
	})
	defer server.Close()

	p := newTestProber(t, server, 50*time.Millisecond)

	resp, err := p.Probe(context.Background(), "slow")
	testutil.AssertError(t, err, "probe should time out")
	testutil.AssertTrue(t, errors.IsTimeout(err), "timeout error")

	o := classifier.Outcome("slow", p.Endpoint("slow"), resp, err)
	testutil.AssertEqual(t, o.Kind, domain.OutcomeTransportError, "kind")
	testutil.AssertEqual(t, o.Detail, "timeout", "detail")
	testutil.AssertEqual(t, server.Hits("slow"), 1, "no retry after timeout")
}

func TestHTTPProber_CanceledContextDoesNotAbortProbe(t *testing.T) {
	server := testutil.NewBucketServer(map[string]testutil.CannedResponse{
		"inflight": {Body: testutil.FixtureListBucketBody, Delay: 20 * time.Millisecond},
	})
	defer server.Close()

	p := newTestProber(t, server, 2*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	resp, err := p.Probe(ctx, "inflight")
	testutil.RequireNoError(t, err, "probe should ignore interrupt cancellation")
	testutil.AssertEqual(t, classifier.Classify(resp, err), domain.OutcomePubliclyListable, "kind")
}

func TestHTTPProber_MalformedCandidate(t *testing.T) {
	client, _ := httpclient.New(httpclient.DefaultConfig(), logx.NewSilent())
	p := NewHTTPProber(client, domain.DefaultStorageHost, logx.NewSilent())

	resp, err := p.Probe(context.Background(), "has space")
	testutil.AssertError(t, err, "invalid host should fail")
	testutil.AssertEqual(t, classifier.Classify(resp, err), domain.OutcomeTransportError, "kind")
}
