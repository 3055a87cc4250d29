// internal/core/domain/candidate.go
package domain

import (
	"fmt"
	"strings"
)

// DefaultStorageHost is the public S3 endpoint candidates resolve against.
const DefaultStorageHost = "s3.amazonaws.com"

// Candidate es un nombre de bucket leído de la wordlist. Inmutable.
type Candidate string

// NewCandidate trims surrounding whitespace. Blank lines yield ErrEmptyCandidate.
func NewCandidate(raw string) (Candidate, error) {
	c := strings.TrimSpace(raw)
	if c == "" {
		return "", ErrEmptyCandidate
	}
	return Candidate(c), nil
}

func (c Candidate) String() string {
	return string(c)
}

// Endpoint es la URL derivada de un candidate: http://{candidate}.{host}
type Endpoint string

// NewEndpoint substitutes the candidate into the endpoint template.
// The candidate is used verbatim, so names that are not valid host labels
// surface later as transport errors.
func NewEndpoint(c Candidate, host string) Endpoint {
	return Endpoint(fmt.Sprintf("http://%s.%s", c, host))
}

func (e Endpoint) String() string {
	return string(e)
}
