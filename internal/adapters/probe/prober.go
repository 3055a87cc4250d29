// internal/adapters/probe/prober.go
package probe

import (
	"context"

	"bucketx/internal/core/domain"
	"bucketx/internal/core/ports"
	"bucketx/internal/platform/errors"
	"bucketx/internal/platform/httpclient"
	"bucketx/internal/platform/logx"
)

// HTTPProber sondea http://{candidate}.{host} con un GET anónimo.
type HTTPProber struct {
	client *httpclient.Client
	host   string
	logger logx.Logger
}

var _ ports.Prober = (*HTTPProber)(nil)

// NewHTTPProber crea un prober contra el storage host dado.
func NewHTTPProber(client *httpclient.Client, host string, logger logx.Logger) *HTTPProber {
	if host == "" {
		host = domain.DefaultStorageHost
	}
	return &HTTPProber{
		client: client,
		host:   host,
		logger: logger.With("component", "prober", "host", host),
	}
}

// Endpoint retorna la URL sondeada para c.
func (p *HTTPProber) Endpoint(c domain.Candidate) domain.Endpoint {
	return domain.NewEndpoint(c, p.host)
}

// Probe issues the request. The request is detached from ctx cancellation so
// an interrupt never cuts a probe short; the client timeout still bounds it.
func (p *HTTPProber) Probe(ctx context.Context, c domain.Candidate) (*ports.ProbeResponse, error) {
	endpoint := p.Endpoint(c)

	resp, err := p.client.Get(context.WithoutCancel(ctx), endpoint.String())
	if err != nil {
		p.logger.Debug("probe failed",
			"candidate", c,
			"connection_failed", errors.IsConnectionFailed(err),
			"error", err.Error(),
		)
		return nil, err
	}
	if resp.Truncated {
		p.logger.Debug("probe body truncated", "candidate", c, "bytes", len(resp.Body))
	}

	return &ports.ProbeResponse{StatusCode: resp.StatusCode, Body: resp.Body}, nil
}
