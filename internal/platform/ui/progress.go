// internal/platform/ui/progress.go
package ui

import (
	"sync"
	"time"

	"bucketx/internal/core/domain"
)

// Progress lleva la cuenta de outcomes mostrados y calcula rate y ETA.
type Progress struct {
	mu     sync.Mutex
	total  int
	done   int
	byKind map[domain.OutcomeKind]int
	start  time.Time
	now    func() time.Time
}

// NewProgress crea un tracker para total candidates.
func NewProgress(total int) *Progress {
	return &Progress{
		total:  total,
		byKind: make(map[domain.OutcomeKind]int, len(domain.AllOutcomeKinds)),
		start:  time.Now(),
		now:    time.Now,
	}
}

// Add cuenta un outcome y retorna el snapshot resultante.
func (p *Progress) Add(kind domain.OutcomeKind) ProgressSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.done++
	p.byKind[kind]++
	return p.snapshotLocked()
}

// Snapshot retorna el estado actual.
func (p *Progress) Snapshot() ProgressSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshotLocked()
}

func (p *Progress) snapshotLocked() ProgressSnapshot {
	elapsed := p.now().Sub(p.start)
	s := ProgressSnapshot{
		Done:    p.done,
		Total:   p.total,
		Public:  p.byKind[domain.OutcomePubliclyListable],
		Errors:  p.byKind[domain.OutcomeTransportError],
		Elapsed: elapsed,
	}
	if elapsed > 0 {
		s.Rate = float64(p.done) / elapsed.Seconds()
	}
	if p.total > 0 {
		s.Percentage = float64(p.done) / float64(p.total) * 100
	}
	if s.Rate > 0 && p.total > p.done {
		s.ETA = time.Duration(float64(p.total-p.done) / s.Rate * float64(time.Second))
	}
	return s
}

// ProgressSnapshot es una foto inmutable del progreso.
type ProgressSnapshot struct {
	Done       int
	Total      int
	Public     int
	Errors     int
	Rate       float64 // probes/s
	Percentage float64
	Elapsed    time.Duration
	ETA        time.Duration
}
