package workerpool

import (
	"sync"

	"github.com/joeycumines/logiface"
)

// defaultTaskQueueCapacity bounds the number of queued-but-not-yet-picked-up
// tasks a Pool holds by default. The original C implementation used a
// fixed-size array for the same purpose; since Go has no equivalent
// const-generic array dimension this is instead a construction-time
// parameter (see WithTaskQueueCapacity), defaulted to a value generous
// enough for typical fan-out workloads.
const defaultTaskQueueCapacity = 64

// task is an opaque unit of work: an erased function plus its single
// argument, tagged with the Group that submitted it so the pool can update
// that group's bookkeeping once the task completes.
type task struct {
	group *Group
	fn    func(any)
	data  any
}

// Pool is a bounded set of worker goroutines, started once at construction
// and shared by any number of Groups created from it.
//
// The zero value is not usable; construct with NewPool.
type Pool struct {
	mu        sync.Mutex
	available sync.Cond

	tasks        []task
	taskQueueCap int

	initialWorkerLimit uint32
	workerLimit        uint32
	workingCount       uint32
	threadCount        uint32

	running    bool
	namePrefix string
	wg         sync.WaitGroup

	logger *logiface.Logger[logiface.Event]
}

// NewPool constructs a Pool with threadCount worker goroutines, of which at
// most initialWorkerLimit may run concurrently at any given instant (the
// remainder start parked, available to be woken as other workers donate
// their slots via Group.WaitAll). namePrefix identifies the pool in log
// fields and diagnostics.
//
// Returns an InvalidArgumentError if threadCount == 0 or initialWorkerLimit
// exceeds threadCount — a pool can never allow more concurrent workers than
// it has threads.
func NewPool(initialWorkerLimit, threadCount uint32, namePrefix string, opts ...PoolOption) (*Pool, error) {
	if threadCount == 0 {
		return nil, &InvalidArgumentError{Field: `threadCount`, Reason: `must be >= 1`}
	}
	if initialWorkerLimit > threadCount {
		return nil, &InvalidArgumentError{
			Field:  `initialWorkerLimit`,
			Reason: `must not exceed threadCount`,
		}
	}

	p := &Pool{
		taskQueueCap:       defaultTaskQueueCapacity,
		initialWorkerLimit: initialWorkerLimit,
		workerLimit:        initialWorkerLimit,
		threadCount:        threadCount,
		running:            true,
		namePrefix:         namePrefix,
	}
	for _, opt := range opts {
		opt.applyPool(p)
	}
	p.available.L = &p.mu

	p.wg.Add(int(threadCount))
	for i := uint32(0); i < threadCount; i++ {
		go p.workerLoop(i)
	}

	if p.logger != nil {
		p.logger.Info().Str(`pool`, p.namePrefix).Int(`threads`, int(threadCount)).
			Int(`initialWorkerLimit`, int(initialWorkerLimit)).Log(`worker pool started`)
	}

	return p, nil
}

// Name returns the pool's configured name prefix, for diagnostics/logging.
func (p *Pool) Name() string { return p.namePrefix }

// NewGroup creates a new Group of tasks backed by this Pool.
func (p *Pool) NewGroup() *Group {
	g := &Group{pool: p}
	g.waiting.cond = sync.NewCond(&p.mu)
	return g
}

// Close stops all worker goroutines and blocks until they have exited. Any
// tasks still queued are discarded without running. Close does not wait for
// in-flight task bodies beyond letting them finish naturally — it does not
// cancel them.
func (p *Pool) Close() {
	p.mu.Lock()
	p.running = false
	p.available.Broadcast()
	p.mu.Unlock()

	p.wg.Wait()

	if p.logger != nil {
		p.logger.Info().Str(`pool`, p.namePrefix).Log(`worker pool closed`)
	}
}

// lockedPopTask removes and returns the oldest queued task, if any. Must be
// called with p.mu held.
func (p *Pool) lockedPopTask() (task, bool) {
	if len(p.tasks) == 0 {
		return task{}, false
	}
	t := p.tasks[0]
	p.tasks = p.tasks[1:]
	return t, true
}

// lockedPushTask appends a task to the queue, returning false if the queue
// is already at capacity. Must be called with p.mu held.
func (p *Pool) lockedPushTask(g *Group, fn func(any), data any) bool {
	if len(p.tasks) >= p.taskQueueCap {
		return false
	}
	p.tasks = append(p.tasks, task{group: g, fn: fn, data: data})
	return true
}

// lockedWakeWorkerIfAllowed signals one parked worker, if the current
// worker-limit headroom allows another to start working. Must be called
// with p.mu held.
func (p *Pool) lockedWakeWorkerIfAllowed() {
	if p.workingCount < p.workerLimit {
		p.available.Signal()
	}
}

// lockedAllowedToWork reports whether a worker may currently claim a task:
// the pool is still running and there is concurrency headroom under the
// (possibly donation-inflated) worker limit.
func (p *Pool) lockedAllowedToWork() bool {
	return p.running && p.workingCount < p.workerLimit
}

func (p *Pool) workerLoop(id uint32) {
	defer p.wg.Done()

	p.mu.Lock()
	for {
		for p.running && !p.lockedAllowedToWork() {
			p.available.Wait()
		}
		if !p.running {
			p.mu.Unlock()
			return
		}

		t, ok := p.lockedPopTask()
		if !ok {
			// allowed to work, but nothing queued right now: park again.
			p.available.Wait()
			continue
		}

		p.workingCount++
		// opportunistically wake a sibling if there's more queued and room
		// under the limit for it too.
		if len(p.tasks) > 0 {
			p.lockedWakeWorkerIfAllowed()
		}
		p.mu.Unlock()

		t.fn(t.data)

		p.mu.Lock()
		p.workingCount--
		g := t.group
		g.outstanding--
		g.lockedWakeWaiterIfAllowed()
	}
}
