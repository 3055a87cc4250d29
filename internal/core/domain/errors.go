// internal/core/domain/errors.go
package domain

import "errors"

// Errores de dominio comunes.
var (
	// Candidate errors
	ErrEmptyCandidate = errors.New("candidate cannot be empty")

	// Record errors
	ErrMalformedRecord = errors.New("malformed result record")
)
