package classifier

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"testing"

	"bucketx/internal/core/domain"
	"bucketx/internal/core/ports"
	"bucketx/internal/testutil"
)

func response(status int, body string) *ports.ProbeResponse {
	return &ports.ProbeResponse{StatusCode: status, Body: []byte(body)}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		resp *ports.ProbeResponse
		err  error
		want domain.OutcomeKind
	}{
		{"listable bucket", response(200, testutil.FixtureListBucketBody), nil, domain.OutcomePubliclyListable},
		{"no such bucket", response(404, testutil.FixtureNoSuchBucketBody), nil, domain.OutcomeNotFoundOrPrivate},
		{"access denied", response(403, testutil.FixtureAccessDeniedBody), nil, domain.OutcomeNotFoundOrPrivate},
		{"html redirect page", response(301, testutil.FixtureHTMLBody), nil, domain.OutcomeIndeterminate},
		{"empty body", response(200, ""), nil, domain.OutcomeIndeterminate},
		{"plain text", response(200, "hello world"), nil, domain.OutcomeIndeterminate},
		{"json body", response(200, `{"error":"nope"}`), nil, domain.OutcomeIndeterminate},
		{"lowercase markers", response(200, "<listbucketresult></listbucketresult>"), nil, domain.OutcomePubliclyListable},
		{"mixed case error", response(400, "<ERROR><Code>x</Code></ERROR>"), nil, domain.OutcomeNotFoundOrPrivate},
		{"unclosed listing", response(200, "<ListBucketResult><Name>x"), nil, domain.OutcomePubliclyListable},
		{"marker as text only", response(200, "ListBucketResult Error"), nil, domain.OutcomeIndeterminate},
		{"binary garbage", response(200, "\x00\xff\xfe<\x01>"), nil, domain.OutcomeIndeterminate},
		{"transport error", nil, context.DeadlineExceeded, domain.OutcomeTransportError},
		{"error wins over response", response(200, testutil.FixtureListBucketBody), fmt.Errorf("reset"), domain.OutcomeTransportError},
		{"nil response", nil, nil, domain.OutcomeTransportError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.resp, tt.err)
			testutil.AssertEqual(t, got, tt.want, "kind")
		})
	}
}

func TestClassify_ListingBeatsError(t *testing.T) {
	bodies := []string{
		testutil.FixtureBothMarkersBody,
		"<ListBucketResult/><Error/>",
		"<Error><ListBucketResult></ListBucketResult></Error>",
	}
	for _, body := range bodies {
		got := Classify(response(200, body), nil)
		testutil.AssertEqual(t, got, domain.OutcomePubliclyListable, "both markers: "+body)
	}
}

func TestClassify_Deterministic(t *testing.T) {
	inputs := []*ports.ProbeResponse{
		response(200, testutil.FixtureListBucketBody),
		response(404, testutil.FixtureNoSuchBucketBody),
		response(200, testutil.FixtureHTMLBody),
	}
	for _, in := range inputs {
		first := Classify(in, nil)
		for i := 0; i < 20; i++ {
			testutil.AssertEqual(t, Classify(in, nil), first, "same input, same kind")
		}
	}
}

func TestClassify_StatusIgnored(t *testing.T) {
	for _, status := range []int{200, 301, 403, 404, 500} {
		got := Classify(response(status, testutil.FixtureNoSuchBucketBody), nil)
		testutil.AssertEqual(t, got, domain.OutcomeNotFoundOrPrivate, fmt.Sprintf("status %d", status))
	}
}

func TestOutcome(t *testing.T) {
	c := domain.Candidate("media")
	e := domain.NewEndpoint(c, domain.DefaultStorageHost)

	t.Run("transport error carries detail", func(t *testing.T) {
		err := &url.Error{Op: "Get", URL: e.String(), Err: &net.DNSError{Err: "no such host", Name: "media.s3.amazonaws.com", IsNotFound: true}}
		o := Outcome(c, e, nil, err)

		testutil.AssertEqual(t, o.Kind, domain.OutcomeTransportError, "kind")
		testutil.AssertEqual(t, o.Detail, "dns: no such host", "detail")
		testutil.AssertEqual(t, o.Endpoint, e, "endpoint")
		testutil.AssertEqual(t, o.Candidate, c, "candidate")
	})

	t.Run("nil response without error still has detail", func(t *testing.T) {
		o := Outcome(c, e, nil, nil)
		testutil.AssertEqual(t, o.Detail, "no response", "detail")
	})

	t.Run("classified response has no detail", func(t *testing.T) {
		o := Outcome(c, e, response(200, testutil.FixtureListBucketBody), nil)
		testutil.AssertEqual(t, o.Kind, domain.OutcomePubliclyListable, "kind")
		testutil.AssertEqual(t, o.Detail, "", "detail")
		testutil.AssertEqual(t, o.Record().Label, "Working Bucket", "label")
	})
}
