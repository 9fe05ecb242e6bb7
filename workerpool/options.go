package workerpool

import "github.com/joeycumines/logiface"

// PoolOption configures a Pool at construction time, following the
// functional-options shape used throughout this codebase for construction
// configuration (one option per concern, applied in order).
type PoolOption interface {
	applyPool(*Pool)
}

type poolOptionFunc func(*Pool)

func (f poolOptionFunc) applyPool(p *Pool) { f(p) }

// WithLogger attaches a structured logger used for diagnostic events: pool
// start and close, task backlog waits, and donation enter/exit. Logging never
// participates in correctness — omit this option and diagnostics are
// silently dropped.
func WithLogger(logger *logiface.Logger[logiface.Event]) PoolOption {
	return poolOptionFunc(func(p *Pool) {
		p.logger = logger
	})
}

// WithTaskQueueCapacity overrides the default bound on the number of queued,
// not-yet-picked-up tasks a Pool will hold at once. Push blocks (donating
// via WaitAll on the submitting group) once this bound is reached. Panics if
// capacity < 1.
func WithTaskQueueCapacity(capacity int) PoolOption {
	if capacity < 1 {
		panic(`workerpool: task queue capacity must be >= 1`)
	}
	return poolOptionFunc(func(p *Pool) {
		p.taskQueueCap = capacity
	})
}
