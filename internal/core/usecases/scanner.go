// internal/core/usecases/scanner.go
package usecases

import (
	"context"
	"time"

	"bucketx/internal/core/classifier"
	"bucketx/internal/core/domain"
	"bucketx/internal/core/ports"
	"bucketx/internal/platform/errors"
	"bucketx/internal/platform/logx"
	"bucketx/internal/platform/workerpool"
)

// Scanner reparte los candidates entre un pool fijo de workers. Cada worker
// sondea, clasifica y persiste un candidate por vez.
type Scanner struct {
	prober    ports.Prober
	sink      ports.Sink
	observers []ports.Observer
	workers   int
	logger    logx.Logger
}

// ScannerOptions configura el Scanner.
type ScannerOptions struct {
	Prober    ports.Prober
	Sink      ports.Sink
	Observers []ports.Observer
	Workers   int
	Logger    logx.Logger
}

// NewScanner crea un Scanner. Workers <= 0 usa 5.
func NewScanner(opts ScannerOptions) *Scanner {
	if opts.Workers <= 0 {
		opts.Workers = 5
	}
	if opts.Logger == nil {
		opts.Logger = logx.New()
	}
	return &Scanner{
		prober:    opts.Prober,
		sink:      opts.Sink,
		observers: opts.Observers,
		workers:   opts.Workers,
		logger:    opts.Logger.With("component", "scanner"),
	}
}

// Run sondea cada candidate y retorna cuando el pool ha drenado.
//
// Cada candidate despachado deja exactamente un registro en el Sink. Un fallo
// de escritura detiene el despacho y se retorna envuelto en ErrOutputWrite.
// Cancelar ctx también detiene el despacho; los probes en vuelo terminan y se
// registran, y Run retorna ErrScanCanceled.
func (s *Scanner) Run(ctx context.Context, candidates []domain.Candidate) (domain.ScanStats, error) {
	if s.prober == nil || s.sink == nil {
		return domain.ScanStats{}, errors.Wrap(errors.ErrConfiguration, "scanner requires a prober and a sink")
	}

	start := time.Now()
	s.logger.Info("scan started", "candidates", len(candidates), "workers", s.workers)

	tasks := make([]workerpool.Task, len(candidates))
	for i, c := range candidates {
		tasks[i] = s.task(c)
	}

	pool := workerpool.NewWorkerPool(workerpool.WorkerPoolConfig{
		Workers: s.workers,
		Logger:  s.logger,
	})
	poolStats, err := pool.Run(ctx, tasks)

	stats := s.sink.Stats()
	stats.Candidates = len(candidates)
	stats.StartTime = start
	stats.Canceled = errors.IsCanceled(err)
	stats.Finish()

	if err != nil {
		s.logger.Warn("scan stopped early",
			"dispatched", poolStats.Dispatched,
			"recorded", stats.Recorded,
			"error", err.Error(),
		)
		return stats, err
	}

	s.logger.Info("scan finished",
		"recorded", stats.Recorded,
		"duration_ms", stats.Duration().Milliseconds(),
	)
	return stats, nil
}

// task construye la unidad de trabajo de un candidate: probe, clasificación,
// registro y notificación, en ese orden.
func (s *Scanner) task(c domain.Candidate) workerpool.Task {
	return workerpool.TaskFunc{
		Label: c.String(),
		Fn: func(ctx context.Context) error {
			endpoint := s.prober.Endpoint(c)
			resp, perr := s.prober.Probe(ctx, c)
			outcome := classifier.Outcome(c, endpoint, resp, perr)

			if err := s.sink.Record(outcome); err != nil {
				return err
			}

			for _, o := range s.observers {
				o.OnOutcome(outcome)
			}
			return nil
		},
	}
}
