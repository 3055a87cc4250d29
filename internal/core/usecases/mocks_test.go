// internal/core/usecases/mocks_test.go
package usecases

import (
	"context"
	"fmt"
	"sync"
	"time"

	"bucketx/internal/core/domain"
	"bucketx/internal/core/ports"
	"bucketx/internal/platform/errors"
)

// mockProber responde según un mapa candidate -> respuesta. Los candidates
// ausentes reciben NoSuchBucket.
type mockProber struct {
	mu        sync.Mutex
	responses map[domain.Candidate]mockResponse
	calls     map[domain.Candidate]int
	delay     time.Duration
	onProbe   func(c domain.Candidate)
}

type mockResponse struct {
	body string
	err  error
}

func newMockProber(responses map[domain.Candidate]mockResponse) *mockProber {
	if responses == nil {
		responses = make(map[domain.Candidate]mockResponse)
	}
	return &mockProber{responses: responses, calls: make(map[domain.Candidate]int)}
}

func (m *mockProber) Endpoint(c domain.Candidate) domain.Endpoint {
	return domain.NewEndpoint(c, domain.DefaultStorageHost)
}

func (m *mockProber) Probe(ctx context.Context, c domain.Candidate) (*ports.ProbeResponse, error) {
	m.mu.Lock()
	m.calls[c]++
	resp, ok := m.responses[c]
	hook := m.onProbe
	m.mu.Unlock()

	if hook != nil {
		hook(c)
	}
	if m.delay > 0 {
		time.Sleep(m.delay)
	}
	if !ok {
		resp = mockResponse{body: "<Error><Code>NoSuchBucket</Code></Error>"}
	}
	if resp.err != nil {
		return nil, resp.err
	}
	return &ports.ProbeResponse{StatusCode: 200, Body: []byte(resp.body)}, nil
}

func (m *mockProber) totalCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := 0
	for _, n := range m.calls {
		total += n
	}
	return total
}

// mockSink guarda outcomes en memoria; failAt > 0 hace fallar esa llamada y
// todas las siguientes.
type mockSink struct {
	mu       sync.Mutex
	outcomes []domain.Outcome
	stats    domain.ScanStats
	failAt   int
	calls    int
}

func newMockSink() *mockSink {
	return &mockSink{stats: domain.NewScanStats(0)}
}

func (m *mockSink) Record(o domain.Outcome) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls++
	if m.failAt > 0 && m.calls >= m.failAt {
		return errors.Mark(fmt.Errorf("disk full"), errors.ErrOutputWrite)
	}
	m.outcomes = append(m.outcomes, o)
	m.stats.Add(o.Kind)
	return nil
}

func (m *mockSink) Stats() domain.ScanStats {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := m.stats
	out.ByKind = make(map[domain.OutcomeKind]int)
	for k, v := range m.stats.ByKind {
		out.ByKind[k] = v
	}
	return out
}

func (m *mockSink) Close() error { return nil }

func (m *mockSink) records() []domain.ResultRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.ResultRecord, len(m.outcomes))
	for i, o := range m.outcomes {
		out[i] = o.Record()
	}
	return out
}
