// internal/core/ports/prober.go
package ports

import (
	"context"

	"bucketx/internal/core/domain"
)

// ProbeResponse es la respuesta cruda de un probe: status y body leído.
type ProbeResponse struct {
	StatusCode int
	Body       []byte
}

// Prober es el port para sondear un candidate.
// Un error no nil significa que no hubo respuesta (fallo de transporte);
// los status no 2xx llegan como respuesta normal.
type Prober interface {
	// Endpoint retorna la URL que se sondea para el candidate
	Endpoint(c domain.Candidate) domain.Endpoint

	// Probe emite un único GET anónimo, sin reintentos
	Probe(ctx context.Context, c domain.Candidate) (*ProbeResponse, error)
}
