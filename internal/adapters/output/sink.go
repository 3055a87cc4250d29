// Package output implements the result sink and its record writers.
//
// The Sink is the single point where concurrent workers persist outcomes.
// It serializes every append behind one mutex so a record reaches all
// artifacts atomically, and latches the first write failure: after it, every
// Record call fails with ErrOutputWrite and the scan aborts.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"bucketx/internal/core/domain"
	"bucketx/internal/core/ports"
	"bucketx/internal/platform/errors"
	"bucketx/internal/platform/logx"
)

// Sink fan-out de registros hacia uno o más RecordWriters.
type Sink struct {
	mu      sync.Mutex
	writers []ports.RecordWriter
	stats   domain.ScanStats
	failed  error
	closed  bool
	logger  logx.Logger
}

var _ ports.Sink = (*Sink)(nil)

// NewSink crea un Sink sobre writers ya abiertos.
func NewSink(logger logx.Logger, writers ...ports.RecordWriter) *Sink {
	return &Sink{
		writers: writers,
		stats:   domain.NewScanStats(0),
		logger:  logger.With("component", "sink"),
	}
}

// Record persiste el outcome en todos los writers bajo el mismo lock.
// Exactamente una llamada por outcome; dos outcomes nunca se intercalan.
func (s *Sink) Record(o domain.Outcome) error {
	rec := o.Record()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failed != nil {
		return s.failed
	}
	if s.closed {
		return errors.Wrap(errors.ErrOutputWrite, "sink is closed")
	}

	for _, w := range s.writers {
		if err := w.Write(rec); err != nil {
			s.failed = errors.Mark(errors.Wrapf(err, "append to %s", w.Name()), errors.ErrOutputWrite)
			s.logger.Err(err, "phase", "output", "artifact", w.Name(), "endpoint", rec.Endpoint)
			return s.failed
		}
	}

	s.stats.Add(o.Kind)
	s.logger.Debug("record persisted", "endpoint", rec.Endpoint, "result", rec.Label)
	return nil
}

// Stats retorna una copia de los conteos.
func (s *Sink) Stats() domain.ScanStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.stats
	out.ByKind = make(map[domain.OutcomeKind]int, len(s.stats.ByKind))
	for k, v := range s.stats.ByKind {
		out.ByKind[k] = v
	}
	return out
}

// Err retorna el fallo latcheado, si lo hay.
func (s *Sink) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failed
}

// Close cierra todos los writers. Es idempotente.
func (s *Sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	var errs []error
	for _, w := range s.writers {
		if err := w.Close(); err != nil {
			errs = append(errs, errors.Wrapf(err, "close %s", w.Name()))
		}
	}
	if len(errs) > 0 {
		return errors.Mark(errors.Join(errs...), errors.ErrOutputWrite)
	}
	return nil
}

// Options selecciona qué artefactos abre Open. Las rutas vacías se omiten.
type Options struct {
	TextPath  string
	CSVPath   string
	XLSXPath  string
	DBPath    string
	JSONLPath string

	// ScanID etiqueta las filas en sqlite y ndjson
	ScanID string
}

// Open abre los artefactos configurados y construye el Sink. Si alguno falla,
// cierra los ya abiertos y retorna ErrOutputWrite.
func Open(opts Options, logger logx.Logger) (*Sink, error) {
	var writers []ports.RecordWriter

	fail := func(err error) (*Sink, error) {
		for _, w := range writers {
			_ = w.Close()
		}
		return nil, errors.Mark(err, errors.ErrOutputWrite)
	}

	if opts.TextPath != "" {
		w, err := OpenText(opts.TextPath)
		if err != nil {
			return fail(err)
		}
		writers = append(writers, w)
	}
	if opts.CSVPath != "" {
		w, err := OpenCSV(opts.CSVPath)
		if err != nil {
			return fail(err)
		}
		writers = append(writers, w)
	}
	if opts.XLSXPath != "" {
		w, err := OpenXLSX(opts.XLSXPath)
		if err != nil {
			return fail(err)
		}
		writers = append(writers, w)
	}
	if opts.DBPath != "" {
		w, err := OpenSQLite(opts.DBPath, opts.ScanID)
		if err != nil {
			return fail(err)
		}
		writers = append(writers, w)
	}
	if opts.JSONLPath != "" {
		w, err := OpenStreaming(opts.JSONLPath, opts.ScanID)
		if err != nil {
			return fail(err)
		}
		writers = append(writers, w)
	}

	if len(writers) == 0 {
		return nil, errors.Wrap(errors.ErrConfiguration, "no output artifacts configured")
	}

	names := make([]string, len(writers))
	for i, w := range writers {
		names[i] = w.Name()
	}
	logger.Debug("output artifacts opened", "artifacts", fmt.Sprint(names))

	return NewSink(logger, writers...), nil
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	return nil
}
