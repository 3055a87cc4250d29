// internal/platform/workerpool/worker_pool.go
package workerpool

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"bucketx/internal/platform/errors"
	"bucketx/internal/platform/logx"
)

// Task representa una tarea a ejecutar en el worker pool.
type Task interface {
	// Execute ejecuta la tarea. Un error no nil detiene el despacho.
	Execute(ctx context.Context) error

	// Name retorna el nombre de la tarea
	Name() string
}

// TaskFunc adapta una función a Task.
type TaskFunc struct {
	Label string
	Fn    func(ctx context.Context) error
}

func (t TaskFunc) Execute(ctx context.Context) error { return t.Fn(ctx) }
func (t TaskFunc) Name() string                      { return t.Label }

// State is the pool lifecycle: Idle → Running → Drained.
type State int32

const (
	StateIdle State = iota
	StateRunning
	StateDrained
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateDrained:
		return "drained"
	default:
		return "unknown"
	}
}

// WorkerPool runs tasks on a fixed number of goroutines. Each worker pulls
// the next unclaimed task from a shared queue until the input is exhausted.
// A pool runs once.
type WorkerPool struct {
	workers int
	logger  logx.Logger

	state      atomic.Int32
	dispatched atomic.Int64
	completed  atomic.Int64
	dropped    atomic.Int64

	stopOnce sync.Once
	stop     chan struct{}

	errMu    sync.Mutex
	firstErr error
}

// WorkerPoolConfig configura el worker pool.
type WorkerPoolConfig struct {
	Workers int
	Logger  logx.Logger
}

// NewWorkerPool crea un nuevo worker pool.
func NewWorkerPool(cfg WorkerPoolConfig) *WorkerPool {
	if cfg.Workers <= 0 {
		cfg.Workers = 5
	}
	if cfg.Logger == nil {
		cfg.Logger = logx.New()
	}
	return &WorkerPool{
		workers: cfg.Workers,
		logger:  cfg.Logger.With("component", "worker-pool"),
		stop:    make(chan struct{}),
	}
}

// Run dispatches tasks in order and blocks until every dispatched task has
// finished. It stops dispatching when ctx is canceled or a task fails; tasks
// already running are allowed to complete. The first task error is returned;
// otherwise a cancellation that left tasks undispatched yields ErrScanCanceled.
func (wp *WorkerPool) Run(ctx context.Context, tasks []Task) (Stats, error) {
	if !wp.state.CompareAndSwap(int32(StateIdle), int32(StateRunning)) {
		return wp.Stats(), errors.New("worker pool already used")
	}
	defer wp.state.Store(int32(StateDrained))

	start := time.Now()
	wp.logger.Debug("starting worker pool", "workers", wp.workers, "tasks", len(tasks))

	// Sin buffer: una tarea solo sale del dispatcher cuando un worker la toma
	queue := make(chan Task)

	var wg sync.WaitGroup
	for i := 0; i < wp.workers; i++ {
		wg.Add(1)
		go wp.worker(ctx, i, queue, &wg)
	}

	undispatched := wp.dispatch(ctx, tasks, queue)
	wg.Wait()
	undispatched += int(wp.dropped.Load())

	stats := wp.Stats()
	stats.Duration = time.Since(start)

	wp.logger.Debug("worker pool drained",
		"dispatched", stats.Dispatched,
		"completed", stats.Completed,
		"duration_ms", stats.Duration.Milliseconds(),
	)

	if err := wp.err(); err != nil {
		return stats, err
	}
	if undispatched > 0 {
		return stats, errors.Wrapf(errors.ErrScanCanceled, "%d tasks not dispatched", undispatched)
	}
	return stats, nil
}

// dispatch feeds the queue and closes it. Returns how many tasks were left out.
func (wp *WorkerPool) dispatch(ctx context.Context, tasks []Task, queue chan<- Task) int {
	defer close(queue)

	for i, task := range tasks {
		// Comprobación previa: select elige al azar si hay varios casos listos
		if wp.halted(ctx) {
			return len(tasks) - i
		}
		select {
		case queue <- task:
			wp.dispatched.Add(1)
		case <-ctx.Done():
			return len(tasks) - i
		case <-wp.stop:
			return len(tasks) - i
		}
	}
	return 0
}

func (wp *WorkerPool) halted(ctx context.Context) bool {
	if ctx.Err() != nil {
		return true
	}
	select {
	case <-wp.stop:
		return true
	default:
		return false
	}
}

// worker es el goroutine que procesa tareas hasta que se cierra la cola.
func (wp *WorkerPool) worker(ctx context.Context, id int, queue <-chan Task, wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range queue {
		// select pudo entregar la tarea aunque stop ya estuviera cerrado
		if wp.halted(ctx) {
			wp.dropped.Add(1)
			continue
		}

		start := time.Now()
		err := task.Execute(ctx)
		wp.completed.Add(1)

		if err != nil {
			wp.fail(err)
			wp.logger.Debug("task failed, stopping dispatch",
				"worker_id", id,
				"task", task.Name(),
				"error", err.Error(),
			)
			continue
		}

		wp.logger.Debug("task completed",
			"worker_id", id,
			"task", task.Name(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}

func (wp *WorkerPool) fail(err error) {
	wp.errMu.Lock()
	if wp.firstErr == nil {
		wp.firstErr = err
	}
	wp.errMu.Unlock()
	wp.stopOnce.Do(func() { close(wp.stop) })
}

func (wp *WorkerPool) err() error {
	wp.errMu.Lock()
	defer wp.errMu.Unlock()
	return wp.firstErr
}

// State retorna el estado actual del pool.
func (wp *WorkerPool) State() State {
	return State(wp.state.Load())
}

// Stats retorna estadísticas del worker pool.
func (wp *WorkerPool) Stats() Stats {
	return Stats{
		Workers:    wp.workers,
		Dispatched: int(wp.dispatched.Load() - wp.dropped.Load()),
		Completed:  int(wp.completed.Load()),
	}
}

// Stats contiene estadísticas del worker pool.
type Stats struct {
	Workers    int
	Dispatched int
	Completed  int
	Duration   time.Duration
}
