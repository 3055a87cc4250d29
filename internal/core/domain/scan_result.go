// internal/core/domain/scan_result.go
package domain

import (
	"fmt"
	"time"
)

// ScanStats resume un escaneo terminado.
type ScanStats struct {
	// Candidates número de candidates entregados al scanner
	Candidates int

	// Recorded número de outcomes persistidos
	Recorded int

	// ByKind cuenta de outcomes por kind
	ByKind map[OutcomeKind]int

	// StartTime / EndTime delimitan la ejecución del pool
	StartTime time.Time
	EndTime   time.Time

	// Canceled indica que se dejó de despachar antes de agotar la entrada
	Canceled bool
}

// NewScanStats crea stats vacías para n candidates.
func NewScanStats(n int) ScanStats {
	return ScanStats{
		Candidates: n,
		ByKind:     make(map[OutcomeKind]int, len(AllOutcomeKinds)),
		StartTime:  time.Now(),
	}
}

// Add counts one recorded outcome.
func (s *ScanStats) Add(kind OutcomeKind) {
	if s.ByKind == nil {
		s.ByKind = make(map[OutcomeKind]int, len(AllOutcomeKinds))
	}
	s.ByKind[kind]++
	s.Recorded++
}

// Finish sella EndTime.
func (s *ScanStats) Finish() {
	s.EndTime = time.Now()
}

// Duration retorna la duración del escaneo (cero si no terminó).
func (s ScanStats) Duration() time.Duration {
	if s.EndTime.IsZero() {
		return 0
	}
	return s.EndTime.Sub(s.StartTime)
}

// Complete reports whether every candidate produced a record.
func (s ScanStats) Complete() bool {
	return s.Recorded == s.Candidates
}

func (s ScanStats) String() string {
	return fmt.Sprintf("candidates=%d recorded=%d public=%d private=%d unknown=%d errors=%d",
		s.Candidates,
		s.Recorded,
		s.ByKind[OutcomePubliclyListable],
		s.ByKind[OutcomeNotFoundOrPrivate],
		s.ByKind[OutcomeIndeterminate],
		s.ByKind[OutcomeTransportError],
	)
}
