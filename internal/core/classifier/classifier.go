// Package classifier maps a probe result to an OutcomeKind.
//
// The body is parsed as HTML with golang.org/x/net/html, which lowercases
// element names, so marker lookup is case-insensitive. The listing marker is
// always checked before the error marker: a body carrying both is listable.
package classifier

import (
	"bytes"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"bucketx/internal/core/domain"
	"bucketx/internal/core/ports"
	"bucketx/internal/platform/errors"
)

const (
	// ListingElement is the root of an S3 ListObjects document.
	ListingElement = "listbucketresult"

	// ErrorElement is the root of an S3 error document (NoSuchBucket, AccessDenied, ...).
	ErrorElement = "error"
)

// Classify returns the outcome kind for a probe. A non-nil err means no
// response was received. The HTTP status is not consulted.
func Classify(resp *ports.ProbeResponse, err error) domain.OutcomeKind {
	if err != nil || resp == nil {
		return domain.OutcomeTransportError
	}

	doc, perr := parse(resp.Body)
	if perr != nil {
		return domain.OutcomeIndeterminate
	}

	switch {
	case has(doc, ListingElement):
		return domain.OutcomePubliclyListable
	case has(doc, ErrorElement):
		return domain.OutcomeNotFoundOrPrivate
	default:
		return domain.OutcomeIndeterminate
	}
}

// Outcome classifies and builds the immutable Outcome for a candidate.
func Outcome(c domain.Candidate, e domain.Endpoint, resp *ports.ProbeResponse, err error) domain.Outcome {
	kind := Classify(resp, err)

	detail := ""
	if kind == domain.OutcomeTransportError {
		detail = errors.Describe(err)
		if detail == "" {
			detail = "no response"
		}
	}
	return domain.NewOutcome(c, e, kind, detail)
}

func parse(body []byte) (*goquery.Document, error) {
	root, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, errors.Mark(err, errors.ErrInvalidResponse)
	}
	return goquery.NewDocumentFromNode(root), nil
}

func has(doc *goquery.Document, element string) bool {
	return doc.Find(element).Length() > 0
}
